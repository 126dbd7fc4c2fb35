package engine

import (
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

// diagnosisBuckets accumulates the three string lists of a diagnosis. The
// zero value is ready to use.
type diagnosisBuckets struct {
	strengths     []string
	concerns      []string
	opportunities []string
}

func (d *diagnosisBuckets) strength(msg string)    { d.strengths = append(d.strengths, msg) }
func (d *diagnosisBuckets) concern(msg string)     { d.concerns = append(d.concerns, msg) }
func (d *diagnosisBuckets) opportunity(msg string) { d.opportunities = append(d.opportunities, msg) }

// build finalizes the diagnosis. Status comes from the score alone, never
// from bucket contents.
func (d *diagnosisBuckets) build(score int) model.DimensionDiagnosis {
	return model.DimensionDiagnosis{
		Status:        model.StatusFor(score),
		Strengths:     emptyIfNil(d.strengths),
		Concerns:      emptyIfNil(d.concerns),
		Opportunities: emptyIfNil(d.opportunities),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func diagnoseFinancial(r model.CompanyRecord, b model.SectorBenchmark, score int) model.DimensionDiagnosis {
	var d diagnosisBuckets

	// Margin: above benchmark is a strength, positive-but-below is a
	// concern plus opportunity, non-positive stays silent.
	if r.NetMarginPercent > b.AvgMarginPercent && r.NetMarginPercent > 0 {
		d.strength(ptBR.Sprintf("Margem líquida de %s acima da média do setor (%s)",
			formatPercent(r.NetMarginPercent), formatPercent(b.AvgMarginPercent)))
	} else if r.NetMarginPercent > 0 {
		d.concern(ptBR.Sprintf("Margem líquida de %s abaixo da média do setor (%s)",
			formatPercent(r.NetMarginPercent), formatPercent(b.AvgMarginPercent)))
		d.opportunity("Revisar precificação e estrutura de custos para recuperar margem")
	}

	if r.DelinquencyPercent > 5 {
		d.concern(ptBR.Sprintf("Inadimplência de %s compromete o fluxo de caixa",
			formatPercent(r.DelinquencyPercent)))
		d.opportunity("Implantar régua de cobrança e renegociação ativa de títulos vencidos")
	} else if r.DelinquencyPercent > 0 && r.DelinquencyPercent <= 2 {
		d.strength(ptBR.Sprintf("Inadimplência controlada em %s", formatPercent(r.DelinquencyPercent)))
	}

	if r.CAC > 0 && r.LTV > 0 {
		ratio := r.LTV / r.CAC
		if ratio >= 3 {
			d.strength(ptBR.Sprintf("Relação LTV/CAC saudável de %.1f", ratio))
		} else if ratio < 1 {
			d.concern(ptBR.Sprintf("Relação LTV/CAC de %.1f: cada cliente custa mais do que devolve", ratio))
			d.opportunity("Aumentar retenção e ticket médio para elevar o LTV acima do CAC")
		}
	}

	if normalizeLevel(r.DebtLevel) == levelHigh {
		d.concern("Nível de endividamento declarado como alto")
	}

	return d.build(score)
}

func diagnoseCommercial(r model.CompanyRecord, b model.SectorBenchmark, score int) model.DimensionDiagnosis {
	var d diagnosisBuckets

	if r.NPS >= 70 {
		d.strength(ptBR.Sprintf("NPS de %v indica clientes promotores da marca", int(r.NPS)))
	} else if r.NPS > 0 && r.NPS < 50 {
		d.concern(ptBR.Sprintf("NPS de %v abaixo da referência do setor (%v)", int(r.NPS), int(b.ReferenceNPS)))
		d.opportunity("Estruturar pesquisa recorrente de satisfação e plano de resposta a detratores")
	}

	if r.ConversionRate > 0 && b.AvgConversionRate > 0 {
		if r.ConversionRate >= b.AvgConversionRate {
			d.strength(ptBR.Sprintf("Taxa de conversão de %s acima da média do setor (%s)",
				formatPercent(r.ConversionRate), formatPercent(b.AvgConversionRate)))
		} else {
			d.concern(ptBR.Sprintf("Taxa de conversão de %s abaixo da média do setor (%s)",
				formatPercent(r.ConversionRate), formatPercent(b.AvgConversionRate)))
			d.opportunity("Qualificar leads na entrada do funil para elevar a conversão")
		}
	}

	if yes(r.SalesFunnel) {
		d.strength("Funil de vendas definido e acompanhado")
	} else if answered(r.SalesFunnel) {
		d.concern("Funil de vendas sem etapas definidas")
		d.opportunity("Mapear as etapas do funil e definir critérios de passagem")
	}

	if answered(r.CRMTool) && !no(r.CRMTool) {
		d.strength(ptBR.Sprintf("Operação comercial apoiada em CRM (%s)", r.CRMTool))
	}

	if r.AverageTicket > 0 && b.AvgTicket > 0 && r.AverageTicket < b.AvgTicket {
		d.opportunity(ptBR.Sprintf("Ticket médio de %s abaixo da referência de %s: explorar upsell e pacotes",
			formatCurrency(r.AverageTicket), formatCurrency(b.AvgTicket)))
	}

	if r.SalesCycleDays > 0 && b.AvgSalesCycleDays > 0 && r.SalesCycleDays > 1.5*b.AvgSalesCycleDays {
		d.concern(ptBR.Sprintf("Ciclo de vendas de %s bem acima da média do setor (%s)",
			formatDays(r.SalesCycleDays), formatDays(b.AvgSalesCycleDays)))
	}

	return d.build(score)
}

func diagnoseOperational(r model.CompanyRecord, _ model.SectorBenchmark, score int) model.DimensionDiagnosis {
	var d diagnosisBuckets

	switch normalizeMaturity(r.PlanningMaturity) {
	case maturityStructured:
		d.strength("Planejamento estratégico estruturado e revisado")
	case maturityPartial:
		d.concern("Planejamento existe, mas sem rotina formal de acompanhamento")
		d.opportunity("Formalizar ciclo de planejamento com revisões mensais")
	case maturityNone:
		d.concern("Empresa opera sem planejamento estratégico")
		d.opportunity("Construir plano anual com metas por área")
	}

	if hasGoalsPlan(r) {
		d.strength(ptBR.Sprintf("Metas definidas: faturamento de %s com margem alvo de %s",
			formatCurrency(r.RevenueTarget), formatPercent(r.TargetMargin)))
	} else {
		d.opportunity("Definir meta anual de faturamento e margem alvo")
	}

	if filledBeyond(r.KPIs, kpiTextThreshold) {
		d.strength("Indicadores de desempenho definidos")
	} else if answered(r.KPIs) {
		d.opportunity("Evoluir os indicadores atuais para um painel acompanhado semanalmente")
	}

	if yes(r.ProcessesDocumented) {
		d.strength("Processos principais documentados")
	} else if no(r.ProcessesDocumented) {
		d.concern("Processos dependem de pessoas, não de documentação")
	}

	return d.build(score)
}

func diagnosePeople(r model.CompanyRecord, b model.SectorBenchmark, score int) model.DimensionDiagnosis {
	var d diagnosisBuckets

	if r.TurnoverPercent > 0 && b.AvgTurnoverPercent > 0 {
		if r.TurnoverPercent > b.AvgTurnoverPercent {
			d.concern(ptBR.Sprintf("Turnover de %s acima da média do setor (%s)",
				formatPercent(r.TurnoverPercent), formatPercent(b.AvgTurnoverPercent)))
			d.opportunity("Investigar causas de saída e estruturar plano de retenção")
		} else {
			d.strength(ptBR.Sprintf("Turnover de %s dentro da média do setor (%s)",
				formatPercent(r.TurnoverPercent), formatPercent(b.AvgTurnoverPercent)))
		}
	}

	if r.AbsenteeismPercent > 5 {
		d.concern(ptBR.Sprintf("Absenteísmo de %s indica problemas de engajamento",
			formatPercent(r.AbsenteeismPercent)))
	} else if r.AbsenteeismPercent > 0 && r.AbsenteeismPercent <= 2 {
		d.strength(ptBR.Sprintf("Absenteísmo baixo, em %s", formatPercent(r.AbsenteeismPercent)))
	}

	if yes(r.OrgChart) {
		d.strength("Organograma definido com papéis claros")
	} else if answered(r.OrgChart) {
		d.concern("Estrutura organizacional sem organograma formal")
		d.opportunity("Desenhar organograma e descrever responsabilidades por função")
	}

	return d.build(score)
}

func diagnoseTechnology(r model.CompanyRecord, _ model.SectorBenchmark, score int) model.DimensionDiagnosis {
	var d diagnosisBuckets

	if filledBeyond(r.TechStack, stackTextThreshold) {
		d.strength("Conjunto de ferramentas consolidado na operação")
	} else if answered(r.TechStack) {
		d.opportunity("Mapear ferramentas atuais e lacunas de sistema")
	}

	if answered(r.Dashboards) && !no(r.Dashboards) {
		d.strength("Decisões apoiadas em dashboards de indicadores")
	} else if answered(r.Dashboards) {
		d.concern("Gestão sem dashboards: decisões tomadas sem dados consolidados")
		d.opportunity("Implantar painel de BI com os indicadores principais")
	}

	if yes(r.AIUsage) {
		d.strength("Empresa já aplica IA em processos do dia a dia")
	} else if answered(r.AIUsage) {
		d.opportunity("Testar IA em atendimento, marketing e rotinas administrativas")
	}

	return d.build(score)
}
