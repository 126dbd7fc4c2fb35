package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/benchmark"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

// techBenchmark mirrors the built-in Tecnologia entry used across tests.
func techBenchmark(t *testing.T) model.SectorBenchmark {
	t.Helper()
	b := benchmark.Default().Resolve("tecnologia")
	require.Equal(t, 20.0, b.AvgMarginPercent)
	return b
}

func TestValidateWeights(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateWeights())
}

func TestScoreFinancialMarginRatio(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)

	// Margin equal to the sector average adds min(20, 1.0*15) = 15.
	r := model.CompanyRecord{NetMarginPercent: 20, SixMonthRevenue: 500_000}
	assert.Equal(t, 65, scoreFinancial(r, b))

	// The margin bonus is capped at 20 even for very high ratios.
	r.NetMarginPercent = 60 // ratio 3.0 -> 45 uncapped
	assert.Equal(t, 70, scoreFinancial(r, b))

	// Negative margin subtracts 15.
	r.NetMarginPercent = -5
	assert.Equal(t, 35, scoreFinancial(r, b))
}

func TestScoreFinancialAllBranches(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)

	r := model.CompanyRecord{
		NetMarginPercent:   20,   // +15
		DelinquencyPercent: 1.5,  // +5
		LTV:                3000, // ratio 6 with CAC 500 -> +15
		CAC:                500,
		SelfFinancial:      8, // +5
	}
	assert.Equal(t, 90, scoreFinancial(r, b))
}

func TestScoreFinancialSkipsZeroRatios(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)

	// CAC of zero must not divide; the LTV/CAC adjustment is skipped.
	r := model.CompanyRecord{LTV: 10_000, CAC: 0}
	assert.Equal(t, 50, scoreFinancial(r, b))
}

func TestScoreCommercialScenarioBonuses(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)

	r := model.CompanyRecord{
		NPS:            75,                  // +20
		ConversionRate: 30,                  // ratio 1.2 vs 25 -> +10
		SalesFunnel:    "Sim, estruturado",  // +10
		CRMTool:        "HubSpot",           // +5
	}
	assert.Equal(t, 95, scoreCommercial(r, b))
}

func TestScoreCommercialClampsAt100(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)

	r := model.CompanyRecord{
		NPS:            80,
		ConversionRate: 40, // ratio 1.6 -> +15
		SalesFunnel:    "Sim",
		CRMTool:        "Pipedrive",
		AverageTicket:  20_000, // >= 15000 -> +5
		SalesCycleDays: 30,     // <= 45 -> +5
		SelfCommercial: 9,      // +5
	}
	// Uncapped sum is 115.
	assert.Equal(t, 100, scoreCommercial(r, b))
}

func TestScoreOperational(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)

	tests := []struct {
		name string
		rec  model.CompanyRecord
		want int
	}{
		{"empty stays at base", model.CompanyRecord{}, 50},
		{
			"structured planning with goals",
			model.CompanyRecord{
				PlanningMaturity: "Sim, estruturado e revisado", // +15
				RevenueTarget:    1_000_000,
				TargetMargin:     15, // goals plan +10
			},
			75,
		},
		{
			"no planning penalty",
			model.CompanyRecord{PlanningMaturity: "Não existe"},
			40,
		},
		{
			"kpi text heuristic needs more than 20 chars",
			model.CompanyRecord{KPIs: "faturamento e margem"}, // exactly 20 chars
			50,
		},
		{
			"kpi text beyond threshold",
			model.CompanyRecord{KPIs: "faturamento, margem, NPS e turnover"},
			60,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scoreOperational(tt.rec, b))
		})
	}
}

func TestScorePeopleTurnoverBands(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t) // turnover average 18

	tests := []struct {
		name     string
		turnover float64
		want     int
	}{
		{"zero skips the ratio", 0, 50},
		{"well below average", 9, 65},   // <= 0.5x -> +15
		{"at average", 18, 60},          // <= 1x -> +10
		{"above average", 22, 40},       // > 1x -> -10
		{"far above average", 30, 35},   // > 1.5x -> -15
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := model.CompanyRecord{TurnoverPercent: tt.turnover}
			assert.Equal(t, tt.want, scorePeople(r, b))
		})
	}
}

func TestScoreTechnologyBase40(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)

	assert.Equal(t, 40, scoreTechnology(model.CompanyRecord{}, b))

	r := model.CompanyRecord{
		TechStack:      "ERP Omie, RD Station, Slack e Notion", // +15
		Dashboards:     "Sim, Looker Studio",                   // +20
		AIUsage:        "Sim, no atendimento",                  // +15
		SelfTechnology: 9,                                      // +10
	}
	assert.Equal(t, 100, scoreTechnology(r, b))

	negative := model.CompanyRecord{Dashboards: "Não", AIUsage: "Não usamos"}
	assert.Equal(t, 30, scoreTechnology(negative, b))
}

func TestOverallScoreWeights(t *testing.T) {
	t.Parallel()

	s := model.DimensionScores{Financial: 80, Commercial: 60, Operational: 50, People: 40, Technology: 40}
	// 80*.25 + 60*.25 + 50*.20 + 40*.15 + 40*.15 = 57
	assert.Equal(t, 57, overallScore(s))

	// Rounding half up through math.Round.
	s = model.DimensionScores{Financial: 50, Commercial: 50, Operational: 50, People: 50, Technology: 40}
	// 12.5 + 12.5 + 10 + 7.5 + 6 = 48.5
	assert.Equal(t, 49, overallScore(s))
}

func TestScoresAlwaysInRange(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)

	records := []model.CompanyRecord{
		{},
		{NetMarginPercent: -100, DelinquencyPercent: 90, LTV: 1, CAC: 100, DebtLevel: "Alto", SelfFinancial: 1},
		{NPS: 100, ConversionRate: 99, SalesFunnel: "Sim", CRMTool: "CRM", AverageTicket: 1e9, SalesCycleDays: 1, SelfCommercial: 10},
		{TurnoverPercent: 500, AbsenteeismPercent: 50, OrgChart: "Não", SelfPeople: 1},
	}

	for _, r := range records {
		for _, score := range []int{
			scoreFinancial(r, b), scoreCommercial(r, b), scoreOperational(r, b),
			scorePeople(r, b), scoreTechnology(r, b),
		} {
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}
