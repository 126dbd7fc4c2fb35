package engine

import (
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

// generateActionPlan returns the 90-day schedule. The plan is a fixed
// template: it takes the recommendation list to honor the orchestration
// interface, but its content does not depend on which recommendations were
// generated. Weeks 1-4, 6, 8, 10 and 12 are populated with two actions
// each; the remaining weeks are intentionally free for execution.
func generateActionPlan(_ []model.Recommendation) []model.ActionWeek {
	return model.NormalizeActionPlan(actionPlanTemplate())
}

func actionPlanTemplate() []model.ActionWeek {
	return []model.ActionWeek{
		{Week: 1, Actions: []model.ActionItem{
			{
				Description: "Consolidar os números do diagnóstico e validar com os sócios",
				Responsible: "CEO",
				Deliverable: "Diagnóstico validado",
				Area:        model.DimensionStrategy,
			},
			{
				Description: "Levantar fluxo de caixa das últimas 12 semanas",
				Responsible: "Financeiro",
				Deliverable: "Mapa de fluxo de caixa",
				Area:        model.DimensionFinancial,
			},
		}},
		{Week: 2, Actions: []model.ActionItem{
			{
				Description: "Definir metas de faturamento e margem para o trimestre",
				Responsible: "CEO",
				Deliverable: "Metas documentadas",
				Area:        model.DimensionStrategy,
			},
			{
				Description: "Mapear o funil de vendas atual com taxas por etapa",
				Responsible: "Comercial",
				Deliverable: "Funil mapeado",
				Area:        model.DimensionCommercial,
			},
		}},
		{Week: 3, Actions: []model.ActionItem{
			{
				Description: "Revisar precificação dos principais produtos e serviços",
				Responsible: "Financeiro",
				Deliverable: "Tabela de preços revisada",
				Area:        model.DimensionFinancial,
			},
			{
				Description: "Implantar registro padronizado de oportunidades comerciais",
				Responsible: "Comercial",
				Deliverable: "Rotina de registro ativa",
				Area:        model.DimensionCommercial,
			},
		}},
		{Week: 4, Actions: []model.ActionItem{
			{
				Description: "Selecionar os KPIs de cada área e definir donos",
				Responsible: "CEO",
				Deliverable: "Lista de KPIs com donos",
				Area:        model.DimensionOperational,
			},
			{
				Description: "Iniciar régua de cobrança para títulos vencidos",
				Responsible: "Financeiro",
				Deliverable: "Régua de cobrança ativa",
				Area:        model.DimensionFinancial,
			},
		}},
		{Week: 6, Actions: []model.ActionItem{
			{
				Description: "Montar painel de indicadores com atualização semanal",
				Responsible: "Operações",
				Deliverable: "Painel publicado",
				Area:        model.DimensionTechnology,
			},
			{
				Description: "Documentar os três processos mais críticos da operação",
				Responsible: "Operações",
				Deliverable: "Processos documentados",
				Area:        model.DimensionOperational,
			},
		}},
		{Week: 8, Actions: []model.ActionItem{
			{
				Description: "Revisar organograma e responsabilidades por função",
				Responsible: "RH",
				Deliverable: "Organograma atualizado",
				Area:        model.DimensionPeople,
			},
			{
				Description: "Rodar primeira pesquisa de satisfação de clientes",
				Responsible: "Comercial",
				Deliverable: "NPS medido",
				Area:        model.DimensionCommercial,
			},
		}},
		{Week: 10, Actions: []model.ActionItem{
			{
				Description: "Avaliar resultados parciais contra as metas do trimestre",
				Responsible: "CEO",
				Deliverable: "Revisão registrada",
				Area:        model.DimensionStrategy,
			},
			{
				Description: "Pilotar uma automação ou uso de IA em rotina administrativa",
				Responsible: "Operações",
				Deliverable: "Piloto em produção",
				Area:        model.DimensionTechnology,
			},
		}},
		{Week: 12, Actions: []model.ActionItem{
			{
				Description: "Consolidar resultados do ciclo e lições aprendidas",
				Responsible: "CEO",
				Deliverable: "Relatório do ciclo",
				Area:        model.DimensionStrategy,
			},
			{
				Description: "Planejar o próximo ciclo de 90 dias com novas prioridades",
				Responsible: "CEO",
				Deliverable: "Plano do próximo ciclo",
				Area:        model.DimensionStrategy,
			},
		}},
	}
}
