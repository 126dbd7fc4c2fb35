// Package ingest turns survey exports (XLSX, CSV, local or FTP) into
// company records. Parsing is lenient: headers match regardless of accents
// and casing, and numeric cells accept Brazilian formatting. Cells that
// cannot be read become zero values, which downstream scoring treats as
// unanswered.
package ingest

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips diacritics: decompose, drop combining marks,
// recompose.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader reduces a column header to a canonical key: lowercase,
// accents removed, anything that is not a letter or digit dropped.
// "Margem Alvo (%)" and "margem_alvo" both become "margemalvo".
func normalizeHeader(h string) string {
	folded, _, err := transform.String(foldTransformer, h)
	if err != nil {
		folded = h
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseNumber reads a Brazilian-formatted number: thousands separated by
// dots, decimals by comma, optional currency prefix and percent suffix.
// Plain machine formats ("12.5") still parse. Unreadable cells return 0.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}

	if strings.Contains(s, ",") {
		// pt-BR: "1.234,56" -> "1234.56"
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if dots := strings.Count(s, "."); dots > 1 {
		// "1.234.567" is grouping, not a decimal point.
		s = strings.ReplaceAll(s, ".", "")
	} else if dots == 1 {
		// A single dot with exactly three trailing digits reads as
		// grouping ("10.000"); anything else as a decimal ("12.5").
		if i := strings.Index(s, "."); len(s)-i-1 == 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	s = strings.ReplaceAll(s, " ", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseInt rounds parseNumber to the nearest integer.
func parseInt(s string) int {
	v := parseNumber(s)
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
