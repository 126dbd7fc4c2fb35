package model

// Dimension identifies one of the five assessed business areas. Strategy is
// a pseudo-dimension used only as a recommendation area tag.
type Dimension string

const (
	DimensionFinancial   Dimension = "financeiro"
	DimensionCommercial  Dimension = "comercial"
	DimensionOperational Dimension = "operacional"
	DimensionPeople      Dimension = "pessoas"
	DimensionTechnology  Dimension = "tecnologia"
	DimensionStrategy    Dimension = "estrategia"
)

// DimensionScores bundles the five sub-scores and the weighted overall
// score. All values are integers in [0, 100].
type DimensionScores struct {
	Financial   int `json:"scoreFinanceiro"`
	Commercial  int `json:"scoreComercial"`
	Operational int `json:"scoreOperacional"`
	People      int `json:"scorePessoas"`
	Technology  int `json:"scoreTecnologia"`
	Overall     int `json:"scoreGeral"`
}

// Status classifies a dimension score against fixed thresholds.
type Status string

const (
	StatusExcellent Status = "excellent" // score >= 80
	StatusAdequate  Status = "adequate"  // score >= 60
	StatusAttention Status = "attention" // score >= 40
	StatusCritical  Status = "critical"  // score < 40
)

// StatusFor derives the status for a score. It is a pure function of the
// numeric value; diagnosis text never influences it.
func StatusFor(score int) Status {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusAdequate
	case score >= 40:
		return StatusAttention
	default:
		return StatusCritical
	}
}

// DimensionDiagnosis holds the qualitative reading of one dimension.
type DimensionDiagnosis struct {
	Status        Status   `json:"status"`
	Strengths     []string `json:"pontosFortes"`
	Concerns      []string `json:"pontosAtencao"`
	Opportunities []string `json:"oportunidades"`
}

// Diagnoses groups the per-dimension diagnoses.
type Diagnoses struct {
	Financial   DimensionDiagnosis `json:"financeiro"`
	Commercial  DimensionDiagnosis `json:"comercial"`
	Operational DimensionDiagnosis `json:"operacional"`
	People      DimensionDiagnosis `json:"pessoas"`
	Technology  DimensionDiagnosis `json:"tecnologia"`
}

// Priority orders recommendations. High sorts before medium, medium before
// low; ties keep their original relative order.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank maps a priority to its sort position. Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Recommendation is one prioritized, actionable suggestion tied to a
// detected weakness. IDs are sequential within a single analysis, assigned
// after the list is sorted and capped.
type Recommendation struct {
	ID          int       `json:"id"`
	Area        Dimension `json:"area"`
	Priority    Priority  `json:"prioridade"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Impact      string    `json:"impactoEsperado"`
	Timeframe   string    `json:"prazoSugerido"`
	Resources   string    `json:"recursosNecessarios"`
	Steps       []string  `json:"passos,omitempty"`
	Tools       []string  `json:"ferramentas,omitempty"`
	Metrics     []string  `json:"metricasSucesso,omitempty"`
}

// AnalysisResult is the full output bundle of one analysis invocation.
// Treated as an immutable value by rendering, export, and persistence.
type AnalysisResult struct {
	CompanyName     string           `json:"nomeEmpresa"`
	Sector          string           `json:"setor"`
	City            string           `json:"cidade"`
	Scores          DimensionScores  `json:"scores"`
	Diagnoses       Diagnoses        `json:"diagnosticos"`
	Recommendations []Recommendation `json:"recomendacoes"`
	ActionPlan      []ActionWeek     `json:"planoAcao"`
	Benchmark       SectorBenchmark  `json:"benchmark"`
}
