package model

// ActionItem is a single task inside an action-plan week.
type ActionItem struct {
	Description string    `json:"descricao"`
	Responsible string    `json:"responsavel"`
	Deliverable string    `json:"entregavel"`
	Area        Dimension `json:"area"`
}

// ActionWeek is one populated week of the 90-day plan. The type covers two
// wire forms: the minimal form carries only the week number and actions
// (Phase and Objective empty), the rich form carries all four fields.
// Normalized upgrades the minimal form by deriving the phase from the week
// number; an empty Phase is the discriminant.
type ActionWeek struct {
	Week      int          `json:"semana"`
	Phase     string       `json:"fase,omitempty"`
	Objective string       `json:"objetivo,omitempty"`
	Actions   []ActionItem `json:"acoes"`
}

// phaseObjectives maps each derived phase to its default objective.
var phaseObjectives = map[string]string{
	"Diagnóstico":    "Levantar dados e validar o retrato atual da empresa",
	"Ganhos Rápidos": "Capturar melhorias de baixo esforço e alto impacto",
	"Estruturação":   "Implantar processos, rotinas e ferramentas de gestão",
	"Execução":       "Rodar o plano e acompanhar indicadores semanalmente",
	"Encerramento":   "Consolidar resultados e planejar o próximo ciclo",
}

// PhaseForWeek derives the phase label from a week number using fixed
// bands: <=2 diagnosis, <=4 quick wins, <=8 structuring, <=11 execution,
// else closing.
func PhaseForWeek(week int) string {
	switch {
	case week <= 2:
		return "Diagnóstico"
	case week <= 4:
		return "Ganhos Rápidos"
	case week <= 8:
		return "Estruturação"
	case week <= 11:
		return "Execução"
	default:
		return "Encerramento"
	}
}

// Normalized returns the rich form of the week. Weeks that already carry a
// phase are returned unchanged.
func (w ActionWeek) Normalized() ActionWeek {
	if w.Phase != "" {
		return w
	}
	w.Phase = PhaseForWeek(w.Week)
	if w.Objective == "" {
		w.Objective = phaseObjectives[w.Phase]
	}
	return w
}

// NormalizeActionPlan upgrades every week of a plan to the rich form.
func NormalizeActionPlan(weeks []ActionWeek) []ActionWeek {
	out := make([]ActionWeek, len(weeks))
	for i, w := range weeks {
		out[i] = w.Normalized()
	}
	return out
}
