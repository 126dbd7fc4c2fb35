package model

import "time"

// AssessmentStatus tracks an assessment through its lifecycle.
type AssessmentStatus string

const (
	AssessmentPending  AssessmentStatus = "pending"
	AssessmentComplete AssessmentStatus = "complete"
)

// Assessment is a stored analysis: the survey record as submitted plus,
// once the engine has run, its result.
type Assessment struct {
	ID        string           `json:"id"`
	Record    CompanyRecord    `json:"empresa"`
	Result    *AnalysisResult  `json:"resultado,omitempty"`
	Status    AssessmentStatus `json:"status"`
	CreatedAt time.Time        `json:"criadoEm"`
	UpdatedAt time.Time        `json:"atualizadoEm"`
}
