package engine

import (
	"math"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

// scoreFinancial maps financial answers to [0, 100]. Adjustments are
// independent of one another; ratio checks are skipped when a divisor is
// zero so an empty record stays at the base value.
func scoreFinancial(r model.CompanyRecord, b model.SectorBenchmark) int {
	score := baseFinancial

	// Margin relative to the sector average, capped at +20.
	if r.NetMarginPercent > 0 && b.AvgMarginPercent > 0 {
		score += math.Min(20, r.NetMarginPercent/b.AvgMarginPercent*15)
	} else if r.NetMarginPercent < 0 {
		score -= 15
	}

	// Delinquency bands.
	switch {
	case r.DelinquencyPercent > 10:
		score -= 15
	case r.DelinquencyPercent > 5:
		score -= 10
	case r.DelinquencyPercent > 0 && r.DelinquencyPercent <= 2:
		score += 5
	}

	// LTV/CAC bands, guarded against zero divisors.
	if r.CAC > 0 && r.LTV > 0 {
		switch ratio := r.LTV / r.CAC; {
		case ratio >= 5:
			score += 15
		case ratio >= 3:
			score += 10
		case ratio < 1:
			score -= 10
		}
	}

	// Declared debt level.
	if answered(r.DebtLevel) {
		switch l := normalizeLevel(r.DebtLevel); {
		case l == levelHigh:
			score -= 10
		case l == levelLow:
			score += 5
		}
	}

	score += selfRatingAdjustment(r.SelfFinancial, 5)

	return clampScore(score)
}

// scoreCommercial maps commercial answers to [0, 100].
func scoreCommercial(r model.CompanyRecord, b model.SectorBenchmark) int {
	score := baseCommercial

	// NPS bands.
	switch {
	case r.NPS >= 70:
		score += 20
	case r.NPS >= 50:
		score += 10
	case r.NPS > 0 && r.NPS < 30:
		score -= 10
	}

	// Conversion relative to the sector average.
	if r.ConversionRate > 0 && b.AvgConversionRate > 0 {
		switch ratio := r.ConversionRate / b.AvgConversionRate; {
		case ratio >= 1.5:
			score += 15
		case ratio >= 1:
			score += 10
		case ratio < 0.5:
			score -= 10
		}
	}

	// Sales structure.
	if yes(r.SalesFunnel) {
		score += 10
	} else if no(r.SalesFunnel) {
		score -= 5
	}
	if answered(r.CRMTool) && !no(r.CRMTool) {
		score += 5
	}

	// Ticket and cycle against the benchmark.
	if r.AverageTicket > 0 && b.AvgTicket > 0 && r.AverageTicket >= b.AvgTicket {
		score += 5
	}
	if r.SalesCycleDays > 0 && b.AvgSalesCycleDays > 0 {
		switch {
		case r.SalesCycleDays <= b.AvgSalesCycleDays:
			score += 5
		case r.SalesCycleDays > 1.5*b.AvgSalesCycleDays:
			score -= 5
		}
	}

	score += selfRatingAdjustment(r.SelfCommercial, 5)

	return clampScore(score)
}

// scoreOperational maps planning and process answers to [0, 100].
func scoreOperational(r model.CompanyRecord, _ model.SectorBenchmark) int {
	score := baseOperational

	// Planning maturity.
	if answered(r.PlanningMaturity) {
		switch m := normalizeMaturity(r.PlanningMaturity); m {
		case maturityStructured:
			score += 15
		case maturityPartial:
			score += 5
		case maturityNone:
			score -= 10
		}
	}

	// A goals plan requires both a revenue target and a target margin.
	if hasGoalsPlan(r) {
		score += 10
	}

	if yes(r.ProcessesDocumented) {
		score += 10
	} else if no(r.ProcessesDocumented) {
		score -= 5
	}

	// KPI text length as a proxy for "indicators are actually defined".
	if filledBeyond(r.KPIs, kpiTextThreshold) {
		score += 10
	}

	score += selfRatingAdjustment(r.SelfOperational, 5)

	return clampScore(score)
}

// scorePeople maps people answers to [0, 100].
func scorePeople(r model.CompanyRecord, b model.SectorBenchmark) int {
	score := basePeople

	// Turnover relative to the sector average.
	if r.TurnoverPercent > 0 && b.AvgTurnoverPercent > 0 {
		switch {
		case r.TurnoverPercent > 1.5*b.AvgTurnoverPercent:
			score -= 15
		case r.TurnoverPercent > b.AvgTurnoverPercent:
			score -= 10
		case r.TurnoverPercent <= 0.5*b.AvgTurnoverPercent:
			score += 15
		default:
			score += 10
		}
	}

	// Absenteeism bands.
	switch {
	case r.AbsenteeismPercent > 5:
		score -= 10
	case r.AbsenteeismPercent > 0 && r.AbsenteeismPercent <= 2:
		score += 10
	}

	if yes(r.OrgChart) {
		score += 10
	} else if no(r.OrgChart) {
		score -= 5
	}

	score += selfRatingAdjustment(r.SelfPeople, 5)

	return clampScore(score)
}

// scoreTechnology maps technology answers to [0, 100]. It starts from a
// lower base than the other dimensions.
func scoreTechnology(r model.CompanyRecord, _ model.SectorBenchmark) int {
	score := baseTechnology

	// Stack description length as a proxy for an established toolset.
	if filledBeyond(r.TechStack, stackTextThreshold) {
		score += 15
	}

	if answered(r.Dashboards) && !no(r.Dashboards) {
		score += 20
	} else if no(r.Dashboards) {
		score -= 5
	}

	if yes(r.AIUsage) {
		score += 15
	} else if no(r.AIUsage) {
		score -= 5
	}

	score += selfRatingAdjustment(r.SelfTechnology, 10)

	return clampScore(score)
}

// overallScore computes the weighted average of the five final sub-scores,
// rounded to the nearest integer.
func overallScore(s model.DimensionScores) int {
	return int(math.Round(
		float64(s.Financial)*weightFinancial +
			float64(s.Commercial)*weightCommercial +
			float64(s.Operational)*weightOperational +
			float64(s.People)*weightPeople +
			float64(s.Technology)*weightTechnology,
	))
}

// selfRatingAdjustment converts a 1-10 self-assessment into a bonus for
// confident answers (>=8) and a fixed -5 for low ones (1-3). A zero value
// means the question was skipped.
func selfRatingAdjustment(rating int, bonus float64) float64 {
	switch {
	case rating >= 8:
		return bonus
	case rating >= 1 && rating <= 3:
		return -5
	default:
		return 0
	}
}

// hasGoalsPlan reports whether the company declared both an annual revenue
// target and a target margin.
func hasGoalsPlan(r model.CompanyRecord) bool {
	return r.RevenueTarget > 0 && r.TargetMargin > 0
}
