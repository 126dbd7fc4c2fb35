package engine

import (
	"sort"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

// generateRecommendations evaluates the trigger catalog against the record
// and the five sub-scores. Each dimension is gated independently on its own
// score; the strategy check runs regardless. The candidate list is sorted
// by priority (stable) and capped at maxRecommendations, then IDs are
// assigned sequentially.
func generateRecommendations(r model.CompanyRecord, b model.SectorBenchmark, s model.DimensionScores) []model.Recommendation {
	candidates := make([]model.Recommendation, 0, 12)

	if s.Financial < recommendationGate {
		candidates = append(candidates, financialTriggers(r, b)...)
	}
	if s.Commercial < recommendationGate {
		candidates = append(candidates, commercialTriggers(r, b)...)
	}
	if s.Operational < recommendationGate {
		candidates = append(candidates, operationalTriggers(r)...)
	}
	if s.People < recommendationGate {
		candidates = append(candidates, peopleTriggers(r, b)...)
	}
	if s.Technology < recommendationGate {
		candidates = append(candidates, technologyTriggers(r)...)
	}

	// Strategy is not score-gated: the revenue-gap check fires whenever
	// both figures are present and the annualized pace misses the target.
	if rec, ok := revenueGapTrigger(r); ok {
		candidates = append(candidates, rec)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority.Rank() < candidates[j].Priority.Rank()
	})
	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}
	for i := range candidates {
		candidates[i].ID = i + 1
	}
	return candidates
}

func financialTriggers(r model.CompanyRecord, b model.SectorBenchmark) []model.Recommendation {
	var out []model.Recommendation

	// Margin below benchmark, only when there is revenue to read it from.
	if r.SixMonthRevenue > 0 && b.AvgMarginPercent > 0 && r.NetMarginPercent < b.AvgMarginPercent {
		out = append(out, model.Recommendation{
			Area:     model.DimensionFinancial,
			Priority: model.PriorityHigh,
			Title:    "Plano de Recuperação de Margem",
			Description: ptBR.Sprintf(
				"A margem líquida de %s está abaixo da média do setor (%s). Revisar precificação, renegociar custos fixos e cortar despesas sem retorno.",
				formatPercent(r.NetMarginPercent), formatPercent(b.AvgMarginPercent)),
			Impact:    "Elevar a margem líquida até a referência do setor em dois trimestres",
			Timeframe: "60 dias",
			Resources: "Responsável financeiro e planilha de formação de preço",
			Steps: []string{
				"Levantar margem de contribuição por produto ou serviço",
				"Reajustar preços dos itens deficitários",
				"Renegociar os três maiores custos fixos",
			},
			Metrics: []string{"Margem líquida mensal", "Margem de contribuição por produto"},
		})
	}

	if r.DelinquencyPercent > 5 {
		out = append(out, model.Recommendation{
			Area:     model.DimensionFinancial,
			Priority: model.PriorityHigh,
			Title:    "Programa de Redução de Inadimplência",
			Description: ptBR.Sprintf(
				"A inadimplência de %s está acima do limite saudável de 5%%. Estruturar régua de cobrança e políticas de crédito.",
				formatPercent(r.DelinquencyPercent)),
			Impact:    "Reduzir a inadimplência para menos de 3% da carteira",
			Timeframe: "45 dias",
			Resources: "Rotina de cobrança e política de crédito documentada",
			Tools:     []string{"Régua de cobrança automatizada", "Análise de crédito na venda"},
			Metrics:   []string{"% de títulos vencidos", "Prazo médio de recebimento"},
		})
	}

	return out
}

func commercialTriggers(r model.CompanyRecord, b model.SectorBenchmark) []model.Recommendation {
	var out []model.Recommendation

	if !yes(r.SalesFunnel) {
		rec := model.Recommendation{
			Area:        model.DimensionCommercial,
			Priority:    model.PriorityHigh,
			Title:       "Estruturação do Funil de Vendas",
			Description: "A operação comercial não tem funil definido. Mapear etapas da jornada de compra, critérios de passagem e taxas de conversão por etapa.",
			Impact:      "Dar previsibilidade à receita e identificar onde os negócios travam",
			Timeframe:   "30 dias",
			Resources:   "Responsável comercial e registro padronizado de oportunidades",
			Steps: []string{
				"Definir as etapas do funil e os critérios de cada uma",
				"Registrar todas as oportunidades em aberto",
				"Medir conversão etapa a etapa por 30 dias",
			},
			Metrics: []string{"Conversão por etapa", "Tempo médio por etapa"},
		}
		if !answered(r.CRMTool) || no(r.CRMTool) {
			rec.Description += " Implantar um CRM para sustentar o processo."
			rec.Tools = []string{"CRM (RD Station, Pipedrive ou HubSpot)"}
		}
		out = append(out, rec)
	}

	if r.NPS > 0 && r.NPS < 50 {
		out = append(out, model.Recommendation{
			Area:     model.DimensionCommercial,
			Priority: model.PriorityMedium,
			Title:    "Programa de Experiência do Cliente",
			Description: ptBR.Sprintf(
				"O NPS de %v está abaixo da referência do setor (%v). Implantar pesquisa recorrente, tratativa de detratores e plano de melhoria dos pontos críticos.",
				int(r.NPS), int(b.ReferenceNPS)),
			Impact:    "Elevar o NPS acima de 50 e reduzir perda de clientes",
			Timeframe: "90 dias",
			Resources: "Pesquisa NPS recorrente e dono definido para a jornada do cliente",
			Metrics:   []string{"NPS mensal", "% de detratores respondidos em 48h"},
		})
	}

	return out
}

func operationalTriggers(r model.CompanyRecord) []model.Recommendation {
	var out []model.Recommendation

	if !hasGoalsPlan(r) {
		out = append(out, model.Recommendation{
			Area:        model.DimensionOperational,
			Priority:    model.PriorityHigh,
			Title:       "Planejamento Estratégico e Metas",
			Description: "A empresa não tem meta anual de faturamento e margem definidas. Construir plano anual com metas desdobradas por área e revisão mensal.",
			Impact:      "Alinhar o time em torno de objetivos mensuráveis",
			Timeframe:   "30 dias",
			Resources:   "Sócios e lideranças em workshop de planejamento",
			Steps: []string{
				"Definir meta anual de faturamento e margem",
				"Desdobrar metas por área e por trimestre",
				"Agendar ritual mensal de revisão",
			},
			Metrics: []string{"% de metas com dono definido", "Aderência ao ritual mensal"},
		})
	}

	if !filledBeyond(r.KPIs, kpiTextThreshold) {
		out = append(out, model.Recommendation{
			Area:        model.DimensionOperational,
			Priority:    model.PriorityMedium,
			Title:       "Painel de Indicadores",
			Description: "Os indicadores de desempenho não estão claramente definidos. Selecionar de 5 a 8 KPIs por área e acompanhar em rotina semanal.",
			Impact:      "Decisões baseadas em dados em vez de percepção",
			Timeframe:   "45 dias",
			Resources:   "Planilha ou ferramenta de BI e rotina semanal de leitura",
			Metrics:     []string{"KPIs com meta e dono", "Frequência de atualização do painel"},
		})
	}

	return out
}

func peopleTriggers(r model.CompanyRecord, b model.SectorBenchmark) []model.Recommendation {
	var out []model.Recommendation

	if r.TurnoverPercent > 0 && b.AvgTurnoverPercent > 0 && r.TurnoverPercent > b.AvgTurnoverPercent {
		out = append(out, model.Recommendation{
			Area:     model.DimensionPeople,
			Priority: model.PriorityMedium,
			Title:    "Programa de Retenção de Talentos",
			Description: ptBR.Sprintf(
				"O turnover de %s está acima da média do setor (%s). Mapear causas de saída, revisar remuneração e criar plano de desenvolvimento.",
				formatPercent(r.TurnoverPercent), formatPercent(b.AvgTurnoverPercent)),
			Impact:    "Trazer o turnover para dentro da média do setor",
			Timeframe: "90 dias",
			Resources: "Entrevistas de desligamento e pesquisa de clima",
			Metrics:   []string{"Turnover mensal", "eNPS"},
		})
	}

	if !yes(r.OrgChart) && answered(r.OrgChart) {
		out = append(out, model.Recommendation{
			Area:        model.DimensionPeople,
			Priority:    model.PriorityLow,
			Title:       "Definição de Organograma e Papéis",
			Description: "A estrutura organizacional não está formalizada. Desenhar organograma, descrever responsabilidades e eliminar sobreposições de função.",
			Impact:      "Reduzir retrabalho e conflitos de responsabilidade",
			Timeframe:   "30 dias",
			Resources:   "Sócios e lideranças diretas",
			Metrics:     []string{"Funções com descrição formal"},
		})
	}

	return out
}

func technologyTriggers(r model.CompanyRecord) []model.Recommendation {
	var out []model.Recommendation

	if !answered(r.Dashboards) || no(r.Dashboards) {
		out = append(out, model.Recommendation{
			Area:        model.DimensionTechnology,
			Priority:    model.PriorityMedium,
			Title:       "Implantação de Dashboards de Gestão",
			Description: "A gestão não conta com dashboards de indicadores. Centralizar os dados das áreas em um painel único de acompanhamento.",
			Impact:      "Visão consolidada do negócio em tempo real",
			Timeframe:   "60 dias",
			Resources:   "Ferramenta de BI e levantamento das fontes de dados",
			Tools:       []string{"Google Looker Studio", "Power BI"},
			Metrics:     []string{"Áreas cobertas pelo painel", "Uso semanal pelos gestores"},
		})
	}

	if !yes(r.AIUsage) {
		out = append(out, model.Recommendation{
			Area:        model.DimensionTechnology,
			Priority:    model.PriorityLow,
			Title:       "Adoção de IA nos Processos",
			Description: "A empresa ainda não aplica IA. Começar por casos de baixo risco: atendimento, resumos de reunião e produção de conteúdo.",
			Impact:      "Ganho de produtividade nas rotinas administrativas e comerciais",
			Timeframe:   "90 dias",
			Resources:   "Piloto com uma área e avaliação mensal de resultado",
			Metrics:     []string{"Horas economizadas por semana", "Processos com IA em produção"},
		})
	}

	return out
}

// revenueGapTrigger compares the annualized six-month revenue pace against
// the declared target. Fires only when both figures are present and the gap
// is positive.
func revenueGapTrigger(r model.CompanyRecord) (model.Recommendation, bool) {
	if r.RevenueTarget <= 0 || r.SixMonthRevenue <= 0 {
		return model.Recommendation{}, false
	}
	gap := r.RevenueTarget - 2*r.SixMonthRevenue
	if gap <= 0 {
		return model.Recommendation{}, false
	}
	return model.Recommendation{
		Area:     model.DimensionStrategy,
		Priority: model.PriorityHigh,
		Title:    "Plano de Aceleração de Receita",
		Description: ptBR.Sprintf(
			"No ritmo atual, faltarão %s para a meta anual de %s. Montar plano de aceleração combinando geração de demanda, conversão e ticket médio.",
			formatCurrency(gap), formatCurrency(r.RevenueTarget)),
		Impact:    ptBR.Sprintf("Fechar o gap de %s até o fim do ano", formatCurrency(gap)),
		Timeframe: "90 dias",
		Resources: "Plano comercial revisado e orçamento de marketing",
		Steps: []string{
			"Quantificar o gap por linha de receita",
			"Definir as três alavancas de maior impacto",
			"Revisar o plano a cada 30 dias",
		},
		Metrics: []string{"Receita mensal vs. meta", "Pipeline gerado por mês"},
	}, true
}
