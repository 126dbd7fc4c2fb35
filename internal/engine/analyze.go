package engine

import (
	"go.uber.org/zap"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/benchmark"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

// Analyzer runs the full analysis against a fixed benchmark table. It is
// stateless apart from the read-only table and safe for concurrent use.
type Analyzer struct {
	benchmarks *benchmark.Table
}

// New creates an Analyzer. A nil table falls back to the built-in
// benchmarks.
func New(table *benchmark.Table) *Analyzer {
	if table == nil {
		table = benchmark.Default()
	}
	return &Analyzer{benchmarks: table}
}

// Analyze maps a survey record to the full analysis result: benchmark
// resolution, the five sub-scores and weighted overall, per-dimension
// diagnoses, the capped recommendation list and the 90-day plan. It is
// deterministic, never mutates the record, and never fails on zero or
// empty fields.
func (a *Analyzer) Analyze(r model.CompanyRecord) model.AnalysisResult {
	b := a.benchmarks.Resolve(r.Sector)

	scores := model.DimensionScores{
		Financial:   scoreFinancial(r, b),
		Commercial:  scoreCommercial(r, b),
		Operational: scoreOperational(r, b),
		People:      scorePeople(r, b),
		Technology:  scoreTechnology(r, b),
	}
	scores.Overall = overallScore(scores)

	diagnoses := model.Diagnoses{
		Financial:   diagnoseFinancial(r, b, scores.Financial),
		Commercial:  diagnoseCommercial(r, b, scores.Commercial),
		Operational: diagnoseOperational(r, b, scores.Operational),
		People:      diagnosePeople(r, b, scores.People),
		Technology:  diagnoseTechnology(r, b, scores.Technology),
	}

	recommendations := generateRecommendations(r, b, scores)

	result := model.AnalysisResult{
		CompanyName:     r.Name,
		Sector:          r.Sector,
		City:            r.City,
		Scores:          scores,
		Diagnoses:       diagnoses,
		Recommendations: recommendations,
		ActionPlan:      generateActionPlan(recommendations),
		Benchmark:       b,
	}

	zap.L().Debug("engine: analysis complete",
		zap.String("company", r.Name),
		zap.String("sector", b.Sector),
		zap.Int("overall", scores.Overall),
		zap.Int("recommendations", len(recommendations)),
	)

	return result
}
