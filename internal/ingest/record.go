package ingest

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

type setter func(r *model.CompanyRecord, cell string)

func text(f func(r *model.CompanyRecord) *string) setter {
	return func(r *model.CompanyRecord, cell string) { *f(r) = strings.TrimSpace(cell) }
}

func number(f func(r *model.CompanyRecord) *float64) setter {
	return func(r *model.CompanyRecord, cell string) { *f(r) = parseNumber(cell) }
}

func integer(f func(r *model.CompanyRecord) *int) setter {
	return func(r *model.CompanyRecord, cell string) { *f(r) = parseInt(cell) }
}

// columnSetters maps normalized header keys to record fields. Keys cover
// both the short machine names and the long survey-form questions, all
// normalized through normalizeHeader.
var columnSetters = map[string]setter{
	"nomeempresa":    text(func(r *model.CompanyRecord) *string { return &r.Name }),
	"nomedaempresa":  text(func(r *model.CompanyRecord) *string { return &r.Name }),
	"empresa":        text(func(r *model.CompanyRecord) *string { return &r.Name }),
	"setor":          text(func(r *model.CompanyRecord) *string { return &r.Sector }),
	"setordeatuacao": text(func(r *model.CompanyRecord) *string { return &r.Sector }),
	"cidade":         text(func(r *model.CompanyRecord) *string { return &r.City }),
	"cnpj":           text(func(r *model.CompanyRecord) *string { return &r.TaxID }),

	"numerosocios":       integer(func(r *model.CompanyRecord) *int { return &r.PartnerCount }),
	"numerodesocios":     integer(func(r *model.CompanyRecord) *int { return &r.PartnerCount }),
	"numerofuncionarios": integer(func(r *model.CompanyRecord) *int { return &r.EmployeeCount }),
	"funcionarios":       integer(func(r *model.CompanyRecord) *int { return &r.EmployeeCount }),

	"maturidadeplanejamento":  text(func(r *model.CompanyRecord) *string { return &r.PlanningMaturity }),
	"planejamentoestrategico": text(func(r *model.CompanyRecord) *string { return &r.PlanningMaturity }),
	"metafaturamentoanual":    number(func(r *model.CompanyRecord) *float64 { return &r.RevenueTarget }),
	"metadefaturamento":       number(func(r *model.CompanyRecord) *float64 { return &r.RevenueTarget }),
	"margemalvo":              number(func(r *model.CompanyRecord) *float64 { return &r.TargetMargin }),
	"margemalvopercent":       number(func(r *model.CompanyRecord) *float64 { return &r.TargetMargin }),

	"taxaconversaogeral": number(func(r *model.CompanyRecord) *float64 { return &r.ConversionRate }),
	"taxadeconversao":    number(func(r *model.CompanyRecord) *float64 { return &r.ConversionRate }),
	"ticketmedio":        number(func(r *model.CompanyRecord) *float64 { return &r.AverageTicket }),
	"nps":                number(func(r *model.CompanyRecord) *float64 { return &r.NPS }),
	"taxafechamento":     number(func(r *model.CompanyRecord) *float64 { return &r.WinRate }),
	"crmutilizado":       text(func(r *model.CompanyRecord) *string { return &r.CRMTool }),
	"crm":                text(func(r *model.CompanyRecord) *string { return &r.CRMTool }),
	"funildefinido":      text(func(r *model.CompanyRecord) *string { return &r.SalesFunnel }),
	"funildevendas":      text(func(r *model.CompanyRecord) *string { return &r.SalesFunnel }),
	"ciclovendasdias":    number(func(r *model.CompanyRecord) *float64 { return &r.SalesCycleDays }),
	"ciclodevendas":      number(func(r *model.CompanyRecord) *float64 { return &r.SalesCycleDays }),
	"leadsmes":           number(func(r *model.CompanyRecord) *float64 { return &r.LeadsPerMonth }),
	"leadspormes":        number(func(r *model.CompanyRecord) *float64 { return &r.LeadsPerMonth }),

	"faturamento6meses":         number(func(r *model.CompanyRecord) *float64 { return &r.SixMonthRevenue }),
	"faturamentoultimos6meses":  number(func(r *model.CompanyRecord) *float64 { return &r.SixMonthRevenue }),
	"lucroliquido6mesespercent": number(func(r *model.CompanyRecord) *float64 { return &r.NetMarginPercent }),
	"margemliquida":             number(func(r *model.CompanyRecord) *float64 { return &r.NetMarginPercent }),
	"cac":                       number(func(r *model.CompanyRecord) *float64 { return &r.CAC }),
	"ltv":                       number(func(r *model.CompanyRecord) *float64 { return &r.LTV }),
	"inadimplencia":             number(func(r *model.CompanyRecord) *float64 { return &r.DelinquencyPercent }),
	"inadimplenciapercent":      number(func(r *model.CompanyRecord) *float64 { return &r.DelinquencyPercent }),
	"nivelendividamento":        text(func(r *model.CompanyRecord) *string { return &r.DebtLevel }),
	"endividamento":             text(func(r *model.CompanyRecord) *string { return &r.DebtLevel }),

	"turnover12meses":    number(func(r *model.CompanyRecord) *float64 { return &r.TurnoverPercent }),
	"turnover":           number(func(r *model.CompanyRecord) *float64 { return &r.TurnoverPercent }),
	"absenteismo":        number(func(r *model.CompanyRecord) *float64 { return &r.AbsenteeismPercent }),
	"absenteismopercent": number(func(r *model.CompanyRecord) *float64 { return &r.AbsenteeismPercent }),
	"organogramaexiste":  text(func(r *model.CompanyRecord) *string { return &r.OrgChart }),
	"organograma":        text(func(r *model.CompanyRecord) *string { return &r.OrgChart }),

	"processosdocumentados": text(func(r *model.CompanyRecord) *string { return &r.ProcessesDocumented }),
	"principaiskpis":        text(func(r *model.CompanyRecord) *string { return &r.KPIs }),
	"kpis":                  text(func(r *model.CompanyRecord) *string { return &r.KPIs }),

	"stacktecnologia":       text(func(r *model.CompanyRecord) *string { return &r.TechStack }),
	"ferramentasutilizadas": text(func(r *model.CompanyRecord) *string { return &r.TechStack }),
	"dashboardsutilizados":  text(func(r *model.CompanyRecord) *string { return &r.Dashboards }),
	"dashboards":            text(func(r *model.CompanyRecord) *string { return &r.Dashboards }),
	"usoia":                 text(func(r *model.CompanyRecord) *string { return &r.AIUsage }),
	"usodeia":               text(func(r *model.CompanyRecord) *string { return &r.AIUsage }),

	"autoavaliacaofinanceiro":  integer(func(r *model.CompanyRecord) *int { return &r.SelfFinancial }),
	"autoavaliacaocomercial":   integer(func(r *model.CompanyRecord) *int { return &r.SelfCommercial }),
	"autoavaliacaooperacional": integer(func(r *model.CompanyRecord) *int { return &r.SelfOperational }),
	"autoavaliacaopessoas":     integer(func(r *model.CompanyRecord) *int { return &r.SelfPeople }),
	"autoavaliacaotecnologia":  integer(func(r *model.CompanyRecord) *int { return &r.SelfTechnology }),
	"autoavaliacaoestrategia":  integer(func(r *model.CompanyRecord) *int { return &r.SelfStrategy }),
}

// columnMap resolves a header row to per-column setters. Unknown columns
// map to nil and are skipped; they are logged once so a renamed survey
// question shows up in the output.
func columnMap(headers []string) []setter {
	setters := make([]setter, len(headers))
	for i, h := range headers {
		key := normalizeHeader(h)
		if key == "" {
			continue
		}
		s, ok := columnSetters[key]
		if !ok {
			zap.L().Debug("ingest: unmapped column", zap.String("header", h))
			continue
		}
		setters[i] = s
	}
	return setters
}

// RecordFromRow builds a CompanyRecord from one data row using the setters
// resolved from the header row. Short rows are fine; extra cells are
// ignored.
func recordFromRow(setters []setter, row []string) model.CompanyRecord {
	var r model.CompanyRecord
	for i, cell := range row {
		if i >= len(setters) || setters[i] == nil {
			continue
		}
		setters[i](&r, cell)
	}
	return r
}

// RecordsFromRows maps a header row plus data rows to company records.
// Rows without a company name are dropped, since nothing downstream can
// identify them.
func RecordsFromRows(headers []string, rows [][]string) ([]model.CompanyRecord, error) {
	if len(headers) == 0 {
		return nil, eris.New("ingest: empty header row")
	}
	setters := columnMap(headers)

	records := make([]model.CompanyRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		rec := recordFromRow(setters, row)
		if rec.Name == "" {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if skipped > 0 {
		zap.L().Warn("ingest: rows without company name dropped", zap.Int("count", skipped))
	}
	return records, nil
}
