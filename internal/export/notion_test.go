package export

import (
	"context"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

// MockClient implements Client for testing.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) CreatePage(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notionapi.Page), args.Error(1)
}

func completeAssessment() model.Assessment {
	return model.Assessment{
		ID:     "a-1",
		Record: model.CompanyRecord{Name: "Tech Alfa", Sector: "Tecnologia"},
		Status: model.AssessmentComplete,
		Result: &model.AnalysisResult{
			CompanyName: "Tech Alfa",
			Benchmark:   model.SectorBenchmark{Sector: "Tecnologia"},
			Scores:      model.DimensionScores{Financial: 65, Overall: 58},
			Recommendations: []model.Recommendation{
				{ID: 1, Priority: model.PriorityHigh, Title: "Plano de Recuperação de Margem", Description: "Revisar preços."},
			},
		},
	}
}

func TestExport(t *testing.T) {
	t.Parallel()

	mc := new(MockClient)
	mc.On("CreatePage", mock.Anything, mock.MatchedBy(func(req *notionapi.PageCreateRequest) bool {
		title, ok := req.Properties["Empresa"].(notionapi.TitleProperty)
		if !ok || len(title.Title) == 0 || title.Title[0].Text.Content != "Tech Alfa" {
			return false
		}
		number, ok := req.Properties["Nota Geral"].(notionapi.NumberProperty)
		// Two headings plus one score paragraph plus one recommendation.
		return ok && number.Number == 58 && len(req.Children) == 4
	})).Return(&notionapi.Page{ID: "page-123"}, nil)

	e := NewExporter(mc, "db-1")
	id, err := e.Export(context.Background(), completeAssessment())
	require.NoError(t, err)
	assert.Equal(t, "page-123", id)
	mc.AssertExpectations(t)
}

func TestExportRejectsPendingAssessment(t *testing.T) {
	t.Parallel()

	e := NewExporter(new(MockClient), "db-1")
	a := completeAssessment()
	a.Result = nil

	_, err := e.Export(context.Background(), a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no result")
}

func TestExportPropagatesAPIError(t *testing.T) {
	t.Parallel()

	mc := new(MockClient)
	mc.On("CreatePage", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	e := NewExporter(mc, "db-1")
	_, err := e.Export(context.Background(), completeAssessment())
	assert.Error(t, err)
}
