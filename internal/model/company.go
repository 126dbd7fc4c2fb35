// Package model defines the value types exchanged between the analysis
// engine and its collaborators: the survey record, sector benchmarks, and
// the assembled analysis result. JSON tags follow the survey's pt-BR field
// names so records round-trip unchanged through ingestion and persistence.
package model

// CompanyRecord is the complete survey answer set for one company snapshot.
// It is an immutable input to the engine: every numeric field defaults to 0
// and every string field to "" when the answer is absent, and the engine
// must tolerate both without error.
type CompanyRecord struct {
	// Identity.
	Name   string `json:"nomeEmpresa"`
	Sector string `json:"setor"`
	City   string `json:"cidade"`
	TaxID  string `json:"cnpj"`

	// Structure.
	PartnerCount     int    `json:"numeroSocios"`
	EmployeeCount    int    `json:"numeroFuncionarios"`
	PlanningMaturity string `json:"maturidadePlanejamento"`

	// Goals.
	RevenueTarget float64 `json:"metaFaturamentoAnual"`
	TargetMargin  float64 `json:"margemAlvoPercent"`

	// Commercial metrics.
	ConversionRate float64 `json:"taxaConversaoGeral"`
	AverageTicket  float64 `json:"ticketMedio"`
	NPS            float64 `json:"nps"`
	WinRate        float64 `json:"taxaFechamento"`

	// Financial metrics.
	SixMonthRevenue    float64 `json:"faturamento6Meses"`
	NetMarginPercent   float64 `json:"lucroLiquido6MesesPercent"`
	CAC                float64 `json:"cac"`
	LTV                float64 `json:"ltv"`
	DelinquencyPercent float64 `json:"inadimplenciaPercent"`
	DebtLevel          string  `json:"nivelEndividamento"`

	// CRM and marketing.
	CRMTool        string  `json:"crmUtilizado"`
	SalesFunnel    string  `json:"funilDefinido"`
	SalesCycleDays float64 `json:"cicloVendasDias"`
	LeadsPerMonth  float64 `json:"leadsMes"`

	// People metrics.
	TurnoverPercent    float64 `json:"turnover12Meses"`
	AbsenteeismPercent float64 `json:"absenteismoPercent"`
	OrgChart           string  `json:"organogramaExiste"`

	// Operational structure.
	ProcessesDocumented string `json:"processosDocumentados"`
	KPIs                string `json:"principaisKpis"`

	// Technology.
	TechStack  string `json:"stackTecnologia"`
	Dashboards string `json:"dashboardsUtilizados"`
	AIUsage    string `json:"usoIA"`

	// Self-assessment ratings, 1-10, one per dimension plus strategy.
	SelfFinancial   int `json:"autoavaliacaoFinanceiro"`
	SelfCommercial  int `json:"autoavaliacaoComercial"`
	SelfOperational int `json:"autoavaliacaoOperacional"`
	SelfPeople      int `json:"autoavaliacaoPessoas"`
	SelfTechnology  int `json:"autoavaliacaoTecnologia"`
	SelfStrategy    int `json:"autoavaliacaoEstrategia"`
}

// SectorBenchmark holds the reference metrics for one sector. Loaded once at
// process start and read-only thereafter.
type SectorBenchmark struct {
	Sector             string  `json:"setor" yaml:"setor"`
	AvgMarginPercent   float64 `json:"margemMedia" yaml:"margem_media"`
	AvgTicket          float64 `json:"ticketMedio" yaml:"ticket_medio"`
	AvgConversionRate  float64 `json:"conversaoMedia" yaml:"conversao_media"`
	ReferenceNPS       float64 `json:"npsReferencia" yaml:"nps_referencia"`
	AvgTurnoverPercent float64 `json:"turnoverMedio" yaml:"turnover_medio"`
	AvgSalesCycleDays  float64 `json:"cicloVendasMedio" yaml:"ciclo_vendas_medio"`
}
