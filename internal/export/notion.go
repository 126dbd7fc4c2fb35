// Package export publishes finished assessments to Notion, one page per
// company inside a configured database.
package export

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

// Client defines the Notion API operations the exporter uses.
type Client interface {
	CreatePage(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error)
}

// notionClient wraps a *notionapi.Client behind the Notion rate limit
// (3 req/s).
type notionClient struct {
	inner   *notionapi.Client
	limiter *rate.Limiter
}

// NewClient creates a Notion client with the given integration token.
func NewClient(token string) Client {
	return &notionClient{
		inner:   notionapi.NewClient(notionapi.Token(token)),
		limiter: rate.NewLimiter(3, 1),
	}
}

func (c *notionClient) CreatePage(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "notion: rate limit")
	}
	page, err := c.inner.Page.Create(ctx, req)
	if err != nil {
		return nil, eris.Wrap(err, "notion: create page")
	}
	return page, nil
}

// Exporter writes assessments into a Notion database.
type Exporter struct {
	client     Client
	databaseID string
}

// NewExporter creates an Exporter targeting one database.
func NewExporter(client Client, databaseID string) *Exporter {
	return &Exporter{client: client, databaseID: databaseID}
}

// Export creates one page for the assessment and returns its ID. The
// assessment must be complete.
func (e *Exporter) Export(ctx context.Context, a model.Assessment) (string, error) {
	if a.Result == nil {
		return "", eris.Errorf("export: assessment %s has no result", a.ID)
	}

	page, err := e.client.CreatePage(ctx, e.pageRequest(a))
	if err != nil {
		return "", eris.Wrapf(err, "export: assessment %s", a.ID)
	}
	return string(page.ID), nil
}

func (e *Exporter) pageRequest(a model.Assessment) *notionapi.PageCreateRequest {
	r := a.Result

	props := notionapi.Properties{
		"Empresa": notionapi.TitleProperty{
			Title: richText(a.Record.Name),
		},
		"Setor": notionapi.SelectProperty{
			Select: notionapi.Option{Name: r.Benchmark.Sector},
		},
		"Nota Geral": notionapi.NumberProperty{
			Number: float64(r.Scores.Overall),
		},
		"Status": notionapi.SelectProperty{
			Select: notionapi.Option{Name: string(model.StatusFor(r.Scores.Overall))},
		},
	}

	blocks := []notionapi.Block{
		heading("Notas por dimensão"),
		paragraph(fmt.Sprintf(
			"Financeiro %d · Comercial %d · Operacional %d · Pessoas %d · Tecnologia %d",
			r.Scores.Financial, r.Scores.Commercial, r.Scores.Operational,
			r.Scores.People, r.Scores.Technology)),
		heading("Recomendações"),
	}
	for _, rec := range r.Recommendations {
		blocks = append(blocks, paragraph(fmt.Sprintf(
			"%d. [%s] %s — %s", rec.ID, rec.Priority, rec.Title, rec.Description)))
	}

	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(e.databaseID),
		},
		Properties: props,
		Children:   blocks,
	}
}

func richText(s string) []notionapi.RichText {
	return []notionapi.RichText{{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: s},
	}}
}

func heading(s string) notionapi.Block {
	return &notionapi.Heading2Block{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeHeading2,
		},
		Heading2: notionapi.Heading{RichText: richText(s)},
	}
}

func paragraph(s string) notionapi.Block {
	return &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeParagraph,
		},
		Paragraph: notionapi.Paragraph{RichText: richText(s)},
	}
}
