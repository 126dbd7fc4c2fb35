package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func sampleRecord() model.CompanyRecord {
	return model.CompanyRecord{
		Name:             "Tech Alfa",
		Sector:           "Tecnologia",
		City:             "São Paulo",
		SixMonthRevenue:  500_000,
		NetMarginPercent: 18.5,
		NPS:              72,
	}
}

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		CompanyName: "Tech Alfa",
		Sector:      "Tecnologia",
		Scores:      model.DimensionScores{Financial: 80, Overall: 70},
	}
}

func TestSQLiteCreateAndGet(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateAssessment(ctx, sampleRecord())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, model.AssessmentPending, created.Status)

	got, err := s.GetAssessment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Tech Alfa", got.Record.Name)
	assert.InDelta(t, 18.5, got.Record.NetMarginPercent, 1e-9)
	assert.Nil(t, got.Result)
}

func TestSQLiteCompleteAssessment(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateAssessment(ctx, sampleRecord())
	require.NoError(t, err)

	require.NoError(t, s.CompleteAssessment(ctx, created.ID, sampleResult()))

	got, err := s.GetAssessment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AssessmentComplete, got.Status)
	require.NotNil(t, got.Result)
	assert.Equal(t, 80, got.Result.Scores.Financial)
	assert.Equal(t, 70, got.Result.Scores.Overall)
}

func TestSQLiteCompleteUnknownAssessment(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	err := s.CompleteAssessment(context.Background(), "no-such-id", sampleResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteGetUnknownAssessment(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	_, err := s.GetAssessment(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteListAssessments(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateAssessment(ctx, sampleRecord())
	require.NoError(t, err)

	other := sampleRecord()
	other.Name = "Loja Beta"
	other.Sector = "Varejo"
	_, err = s.CreateAssessment(ctx, other)
	require.NoError(t, err)

	require.NoError(t, s.CompleteAssessment(ctx, first.ID, sampleResult()))

	all, err := s.ListAssessments(ctx, AssessmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := s.ListAssessments(ctx, AssessmentFilter{Status: model.AssessmentPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Loja Beta", pending[0].Record.Name)

	varejo, err := s.ListAssessments(ctx, AssessmentFilter{Sector: "Varejo"})
	require.NoError(t, err)
	require.Len(t, varejo, 1)
	assert.Equal(t, "Loja Beta", varejo[0].Record.Name)

	limited, err := s.ListAssessments(ctx, AssessmentFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
