package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/benchmark"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/engine"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

func TestMarkdown(t *testing.T) {
	t.Parallel()

	result := engine.New(benchmark.Default()).Analyze(model.CompanyRecord{
		Name:             "Tech Alfa",
		Sector:           "Tecnologia",
		City:             "São Paulo",
		SixMonthRevenue:  100_000,
		NetMarginPercent: 5,
		RevenueTarget:    1_000_000,
	})

	md := Markdown(result)

	assert.Contains(t, md, "# Diagnóstico Empresarial — Tech Alfa")
	assert.Contains(t, md, "Tecnologia · São Paulo")
	assert.Contains(t, md, "## Notas por dimensão")
	assert.Contains(t, md, "| Financeiro |")
	assert.Contains(t, md, "## Diagnóstico")
	assert.Contains(t, md, "## Recomendações")
	assert.Contains(t, md, "Plano de Recuperação de Margem")
	assert.Contains(t, md, "## Plano de 90 dias")
	assert.Contains(t, md, "### Semana 1 — Diagnóstico")
	assert.Contains(t, md, "### Semana 12 — Encerramento")
}

func TestMarkdownEmptySections(t *testing.T) {
	t.Parallel()

	result := model.AnalysisResult{
		CompanyName: "Sem Dados",
		Scores:      model.DimensionScores{Financial: 50, Commercial: 50, Operational: 50, People: 50, Technology: 40, Overall: 49},
	}

	md := Markdown(result)
	assert.Contains(t, md, "Sem Dados")
	// Diagnosis headers render even with empty bucket lists.
	assert.Equal(t, 1, strings.Count(md, "### Financeiro"))
	assert.NotContains(t, md, "## Recomendações")
	assert.NotContains(t, md, "## Plano de 90 dias")
}
