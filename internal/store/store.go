// Package store persists assessments. Two implementations are provided:
// SQLite for single-machine use and Postgres for shared deployments.
package store

import (
	"context"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

// AssessmentFilter specifies criteria for listing assessments.
type AssessmentFilter struct {
	Status model.AssessmentStatus `json:"status,omitempty"`
	Sector string                 `json:"setor,omitempty"`
	Limit  int                    `json:"limit,omitempty"`
	Offset int                    `json:"offset,omitempty"`
}

// Store defines the persistence interface for assessments.
type Store interface {
	CreateAssessment(ctx context.Context, record model.CompanyRecord) (*model.Assessment, error)
	CompleteAssessment(ctx context.Context, id string, result *model.AnalysisResult) error
	GetAssessment(ctx context.Context, id string) (*model.Assessment, error)
	ListAssessments(ctx context.Context, filter AssessmentFilter) ([]model.Assessment, error)

	Migrate(ctx context.Context) error
	Close() error
}
