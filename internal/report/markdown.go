// Package report renders a finished analysis as a Markdown document for
// delivery to the company.
package report

import (
	"fmt"
	"strings"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

var statusLabels = map[model.Status]string{
	model.StatusExcellent: "Excelente",
	model.StatusAdequate:  "Adequado",
	model.StatusAttention: "Atenção",
	model.StatusCritical:  "Crítico",
}

var priorityLabels = map[model.Priority]string{
	model.PriorityHigh:   "Alta",
	model.PriorityMedium: "Média",
	model.PriorityLow:    "Baixa",
}

// Markdown renders the full report: header, score table, per-dimension
// diagnosis, ranked recommendations and the 90-day plan.
func Markdown(r model.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Diagnóstico Empresarial — %s\n\n", r.CompanyName)
	if r.Sector != "" || r.City != "" {
		fmt.Fprintf(&b, "%s", r.Sector)
		if r.Sector != "" && r.City != "" {
			b.WriteString(" · ")
		}
		fmt.Fprintf(&b, "%s\n\n", r.City)
	}
	fmt.Fprintf(&b, "**Nota geral: %d/100**\n\n", r.Scores.Overall)

	b.WriteString("## Notas por dimensão\n\n")
	b.WriteString("| Dimensão | Nota | Situação |\n|---|---|---|\n")
	writeScoreRow(&b, "Financeiro", r.Scores.Financial)
	writeScoreRow(&b, "Comercial", r.Scores.Commercial)
	writeScoreRow(&b, "Operacional", r.Scores.Operational)
	writeScoreRow(&b, "Pessoas", r.Scores.People)
	writeScoreRow(&b, "Tecnologia", r.Scores.Technology)
	b.WriteString("\n")

	b.WriteString("## Diagnóstico\n\n")
	writeDiagnosis(&b, "Financeiro", r.Diagnoses.Financial)
	writeDiagnosis(&b, "Comercial", r.Diagnoses.Commercial)
	writeDiagnosis(&b, "Operacional", r.Diagnoses.Operational)
	writeDiagnosis(&b, "Pessoas", r.Diagnoses.People)
	writeDiagnosis(&b, "Tecnologia", r.Diagnoses.Technology)

	if len(r.Recommendations) > 0 {
		b.WriteString("## Recomendações\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "### %d. %s (prioridade %s)\n\n", rec.ID, rec.Title, priorityLabels[rec.Priority])
			fmt.Fprintf(&b, "%s\n\n", rec.Description)
			fmt.Fprintf(&b, "- **Impacto esperado:** %s\n", rec.Impact)
			fmt.Fprintf(&b, "- **Prazo sugerido:** %s\n", rec.Timeframe)
			fmt.Fprintf(&b, "- **Recursos:** %s\n", rec.Resources)
			for _, step := range rec.Steps {
				fmt.Fprintf(&b, "  - %s\n", step)
			}
			b.WriteString("\n")
		}
	}

	if len(r.ActionPlan) > 0 {
		b.WriteString("## Plano de 90 dias\n\n")
		for _, week := range r.ActionPlan {
			fmt.Fprintf(&b, "### Semana %d — %s\n\n", week.Week, week.Phase)
			if week.Objective != "" {
				fmt.Fprintf(&b, "%s\n\n", week.Objective)
			}
			for _, action := range week.Actions {
				fmt.Fprintf(&b, "- %s (%s → %s)\n", action.Description, action.Responsible, action.Deliverable)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeScoreRow(b *strings.Builder, label string, score int) {
	fmt.Fprintf(b, "| %s | %d | %s |\n", label, score, statusLabels[model.StatusFor(score)])
}

func writeDiagnosis(b *strings.Builder, label string, d model.DimensionDiagnosis) {
	fmt.Fprintf(b, "### %s — %s\n\n", label, statusLabels[d.Status])
	writeBullets(b, "Pontos fortes", d.Strengths)
	writeBullets(b, "Pontos de atenção", d.Concerns)
	writeBullets(b, "Oportunidades", d.Opportunities)
}

func writeBullets(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
