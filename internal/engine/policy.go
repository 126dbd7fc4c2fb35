// Package engine implements the deterministic analysis engine: five
// dimension score calculators, diagnosis generation, the recommendation
// generator, and the 90-day action-plan template, orchestrated by Analyze.
// Every function is pure given its inputs; the engine performs no I/O and
// never fails on incomplete-but-well-typed records.
package engine

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Score bases. Technology starts lower: small companies typically enter the
// assessment with less tooling in place than process maturity.
const (
	baseFinancial   = 50.0
	baseCommercial  = 50.0
	baseOperational = 50.0
	basePeople      = 50.0
	baseTechnology  = 40.0
)

// Overall-score weights. Validated to sum to 1 by ValidateWeights and the
// package tests.
const (
	weightFinancial   = 0.25
	weightCommercial  = 0.25
	weightOperational = 0.20
	weightPeople      = 0.15
	weightTechnology  = 0.15
)

// recommendationGate is the per-dimension score below which that
// dimension's trigger conditions are evaluated.
const recommendationGate = 70

// maxRecommendations caps the returned recommendation list.
const maxRecommendations = 8

// Text-length heuristics: a free-text answer longer than the threshold is
// treated as meaningfully filled in.
const (
	kpiTextThreshold   = 20
	stackTextThreshold = 20
)

// ValidateWeights checks that the overall-score weights form a weighted
// average.
func ValidateWeights() error {
	sum := weightFinancial + weightCommercial + weightOperational + weightPeople + weightTechnology
	if math.Abs(sum-1.0) > 1e-9 {
		return eris.Errorf("engine: overall weights must sum to 1, got %.4f", sum)
	}
	return nil
}

// clampScore bounds an accumulated score to [0, 100] and rounds it to an
// integer. Additive adjustments may overshoot either bound; the clamp is
// part of the scoring contract.
func clampScore(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return int(math.Round(v))
}

// yes reports whether a free-text answer is affirmative.
func yes(s string) bool {
	return strings.Contains(strings.ToLower(s), "sim")
}

// no reports whether a free-text answer is an explicit negative.
func no(s string) bool {
	l := strings.ToLower(strings.TrimSpace(s))
	if l == "nenhum" || l == "nenhuma" {
		return true
	}
	return strings.Contains(l, "não") || strings.Contains(l, "nao ") || l == "nao"
}

// answered reports whether a free-text field was filled in at all.
func answered(s string) bool {
	return strings.TrimSpace(s) != ""
}

// filledBeyond applies the text-length heuristic for "meaningfully filled".
func filledBeyond(s string, threshold int) bool {
	return len(strings.TrimSpace(s)) > threshold
}

// Declared debt levels after normalization.
type debtLevel int

const (
	levelUnknown debtLevel = iota
	levelLow
	levelHigh
)

// normalizeLevel folds the free-text debt answer into a coarse level.
func normalizeLevel(s string) debtLevel {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "alto") || strings.Contains(l, "elevado"):
		return levelHigh
	case strings.Contains(l, "baixo") || strings.Contains(l, "sem dívida") || strings.Contains(l, "controlado"):
		return levelLow
	default:
		return levelUnknown
	}
}

// Planning maturity after normalization.
type planningMaturity int

const (
	maturityUnknown planningMaturity = iota
	maturityNone
	maturityPartial
	maturityStructured
)

// normalizeMaturity folds the free-text planning answer into a coarse
// maturity level.
func normalizeMaturity(s string) planningMaturity {
	l := strings.ToLower(s)
	// Negations and qualifiers first: "não estruturado" and "parcialmente
	// estruturado" both contain "estruturado".
	switch {
	case strings.Contains(l, "não") || strings.Contains(l, "nao") || strings.Contains(l, "inexistente"):
		return maturityNone
	case strings.Contains(l, "parcial") || strings.Contains(l, "informal"):
		return maturityPartial
	case strings.Contains(l, "estruturado") || strings.Contains(l, "avançado") || strings.Contains(l, "avancado"):
		return maturityStructured
	default:
		return maturityUnknown
	}
}
