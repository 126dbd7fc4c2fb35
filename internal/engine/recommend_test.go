package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

func titles(recs []model.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func findByTitle(t *testing.T, recs []model.Recommendation, title string) model.Recommendation {
	t.Helper()
	for _, r := range recs {
		if r.Title == title {
			return r
		}
	}
	require.Failf(t, "recommendation not found", "title %q, have %v", title, titles(recs))
	return model.Recommendation{}
}

func TestTalentRetentionFiresAboveSectorTurnover(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t) // turnover average 18

	r := model.CompanyRecord{TurnoverPercent: 27} // 1.5x the average
	s := model.DimensionScores{People: scorePeople(r, b)}
	require.Less(t, s.People, recommendationGate)

	recs := generateRecommendations(r, b, s)
	rec := findByTitle(t, recs, "Programa de Retenção de Talentos")
	assert.Equal(t, model.PriorityMedium, rec.Priority)
	assert.Equal(t, model.DimensionPeople, rec.Area)
	assert.Contains(t, rec.Description, "27")
	assert.Contains(t, rec.Description, "18")
}

func TestDimensionGateSuppressesTriggers(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)

	// High turnover but a people score at the gate: no people recommendation.
	r := model.CompanyRecord{TurnoverPercent: 27}
	s := model.DimensionScores{People: recommendationGate}
	for _, rec := range generateRecommendations(r, b, s) {
		assert.NotEqual(t, model.DimensionPeople, rec.Area)
	}
}

func TestRevenueGapTrigger(t *testing.T) {
	t.Parallel()

	r := model.CompanyRecord{RevenueTarget: 1_000_000, SixMonthRevenue: 300_000}
	rec, ok := revenueGapTrigger(r)
	require.True(t, ok)
	assert.Equal(t, "Plano de Aceleração de Receita", rec.Title)
	assert.Equal(t, model.PriorityHigh, rec.Priority)
	assert.Equal(t, model.DimensionStrategy, rec.Area)
	// 1.000.000 - 2*300.000 = 400.000, formatted pt-BR.
	assert.Contains(t, rec.Description, "R$ 400.000")
	assert.Contains(t, rec.Impact, "R$ 400.000")

	// On pace or ahead: no trigger.
	_, ok = revenueGapTrigger(model.CompanyRecord{RevenueTarget: 500_000, SixMonthRevenue: 300_000})
	assert.False(t, ok)

	// Missing either figure: no trigger.
	_, ok = revenueGapTrigger(model.CompanyRecord{RevenueTarget: 1_000_000})
	assert.False(t, ok)
	_, ok = revenueGapTrigger(model.CompanyRecord{SixMonthRevenue: 300_000})
	assert.False(t, ok)
}

func TestRevenueGapIgnoresScoreGates(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)

	// All dimension scores at 100 still let the strategy trigger through.
	r := model.CompanyRecord{RevenueTarget: 1_000_000, SixMonthRevenue: 100_000}
	s := model.DimensionScores{Financial: 100, Commercial: 100, Operational: 100, People: 100, Technology: 100}

	recs := generateRecommendations(r, b, s)
	require.Len(t, recs, 1)
	assert.Equal(t, "Plano de Aceleração de Receita", recs[0].Title)
	assert.Equal(t, 1, recs[0].ID)
}

func TestFunnelRecommendationMentionsCRMOnlyWhenMissing(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)
	low := model.DimensionScores{} // every gate open

	withCRM := model.CompanyRecord{SalesFunnel: "Não", CRMTool: "HubSpot"}
	rec := findByTitle(t, generateRecommendations(withCRM, b, low), "Estruturação do Funil de Vendas")
	assert.NotContains(t, rec.Description, "CRM para sustentar")
	assert.Empty(t, rec.Tools)

	withoutCRM := model.CompanyRecord{SalesFunnel: "Não"}
	rec = findByTitle(t, generateRecommendations(withoutCRM, b, low), "Estruturação do Funil de Vendas")
	assert.Contains(t, rec.Description, "Implantar um CRM")
	assert.NotEmpty(t, rec.Tools)
}

// strugglingRecord produces eleven candidate recommendations, forcing the
// cap and the priority ordering to both matter.
func strugglingRecord() model.CompanyRecord {
	// Dashboards, AI usage and KPIs left blank add the dashboards (medium),
	// AI adoption (low) and indicator panel (medium) candidates. The unset
	// margin target also fires the planning trigger (high).
	return model.CompanyRecord{
		Name:               "Comércio Silva ME",
		Sector:             "Tecnologia",
		SixMonthRevenue:    100_000,
		NetMarginPercent:   1,         // margin recovery, high
		DelinquencyPercent: 8,         // delinquency program, high
		NPS:                20,        // customer experience, medium
		SalesFunnel:        "Não",     // funnel, high
		TurnoverPercent:    30,        // retention, medium
		OrgChart:           "Não",     // org chart, low
		RevenueTarget:      1_000_000, // revenue gap, high
	}
}

func TestRecommendationCapAndOrdering(t *testing.T) {
	t.Parallel()

	result := New(nil).Analyze(strugglingRecord())
	recs := result.Recommendations

	require.Len(t, recs, maxRecommendations)

	// Priorities never increase down the list, and the cap drops the lows.
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i-1].Priority.Rank(), recs[i].Priority.Rank(),
			"position %d out of order", i)
	}
	for _, r := range recs {
		assert.NotEqual(t, model.PriorityLow, r.Priority)
	}

	// IDs are assigned after the cap, sequential from 1.
	for i, r := range recs {
		assert.Equal(t, i+1, r.ID)
	}

	// All five high-priority candidates survive the cut.
	got := titles(recs)
	for _, want := range []string{
		"Plano de Recuperação de Margem",
		"Programa de Redução de Inadimplência",
		"Estruturação do Funil de Vendas",
		"Planejamento Estratégico e Metas",
		"Plano de Aceleração de Receita",
	} {
		assert.Contains(t, got, want)
	}
}

func TestHealthyDimensionsProduceNoRecommendations(t *testing.T) {
	t.Parallel()
	b := techBenchmark(t)

	r := model.CompanyRecord{
		NetMarginPercent: 25,
		SixMonthRevenue:  600_000,
		RevenueTarget:    1_000_000, // pace 1.2M, no gap
		NPS:              75,
		SalesFunnel:      "Sim",
		OrgChart:         "Sim",
		AIUsage:          "Sim",
		Dashboards:       "Sim, Power BI",
	}
	s := model.DimensionScores{Financial: 90, Commercial: 90, Operational: 90, People: 90, Technology: 90}
	assert.Empty(t, generateRecommendations(r, b, s))
}
