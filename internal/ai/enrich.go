package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

const systemPrompt = "Você é um conselheiro de gestão para pequenas e médias empresas " +
	"brasileiras. Escreva em português claro e direto, sem jargão, falando com o CEO. " +
	"Nunca invente números: use apenas os dados fornecidos."

// EnricherOptions configures the enricher.
type EnricherOptions struct {
	Model             string  // default claude-sonnet-4-5-20250929
	MaxTokens         int64   // default 1024
	RequestsPerMinute float64 // default 20
}

// Enricher produces an executive summary for a completed analysis. Calls
// are rate limited so batch enrichment stays inside API limits.
type Enricher struct {
	client  Client
	opts    EnricherOptions
	limiter *rate.Limiter
}

// NewEnricher creates an Enricher around an API client.
func NewEnricher(client Client, opts EnricherOptions) *Enricher {
	if opts.Model == "" {
		opts.Model = "claude-sonnet-4-5-20250929"
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 1024
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 20
	}
	return &Enricher{
		client:  client,
		opts:    opts,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerMinute/60), 1),
	}
}

// Summarize asks the model for a short executive commentary on the
// assessment. The deterministic result is the source of truth; the
// commentary only restates it in prose.
func (e *Enricher) Summarize(ctx context.Context, record model.CompanyRecord, result model.AnalysisResult) (string, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return "", eris.Wrap(err, "ai: rate limit wait")
	}

	resp, err := e.client.CreateMessage(ctx, MessageRequest{
		Model:     e.opts.Model,
		MaxTokens: e.opts.MaxTokens,
		System:    systemPrompt,
		Messages: []Message{
			{Role: "user", Content: buildPrompt(record, result)},
		},
	})
	if err != nil {
		return "", err
	}
	resp.Usage.LogCost(resp.Model)

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", eris.New("ai: empty response")
	}
	return text, nil
}

// buildPrompt lays out the scores and top recommendations as plain text.
func buildPrompt(record model.CompanyRecord, result model.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Empresa: %s (%s", record.Name, result.Benchmark.Sector)
	if record.City != "" {
		fmt.Fprintf(&b, ", %s", record.City)
	}
	b.WriteString(")\n\n")

	s := result.Scores
	fmt.Fprintf(&b, "Notas (0-100): financeiro %d, comercial %d, operacional %d, pessoas %d, tecnologia %d. Nota geral: %d.\n\n",
		s.Financial, s.Commercial, s.Operational, s.People, s.Technology, s.Overall)

	if len(result.Recommendations) > 0 {
		b.WriteString("Principais recomendações:\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", rec.Priority, rec.Title, rec.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("Escreva um resumo executivo de no máximo três parágrafos: " +
		"onde a empresa está bem, onde está o maior risco e qual deve ser o foco dos próximos 90 dias.")
	return b.String()
}
