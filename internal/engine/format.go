package engine

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ptBR renders numbers the way the report reads them: comma decimals,
// dot thousand separators.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// formatPercent renders a percentage with one decimal place ("12,5%").
func formatPercent(v float64) string {
	return ptBR.Sprintf("%v%%", number.Decimal(v, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
}

// formatCurrency renders a value in local currency format ("R$ 10.000").
func formatCurrency(v float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// formatDays renders a day count ("45 dias").
func formatDays(v float64) string {
	return ptBR.Sprintf("%v dias", number.Decimal(v, number.MaxFractionDigits(0)))
}
