package ingest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func TestRecordsFromRows(t *testing.T) {
	t.Parallel()

	headers := []string{
		"Nome da Empresa", "Setor", "Cidade", "Faturamento 6 Meses",
		"Margem Líquida", "NPS", "Funil Definido", "Autoavaliação Financeiro",
		"Coluna Desconhecida",
	}
	rows := [][]string{
		{"Tech Alfa", "Tecnologia", "São Paulo", "R$ 500.000", "18,5", "72", "Sim", "8", "x"},
		{"", "Varejo", "", "1", "1", "1", "", "1"}, // no name, dropped
		{"Loja Beta", "Varejo", "Recife", "120.000", "7"},
	}

	records, err := RecordsFromRows(headers, rows)
	require.NoError(t, err)
	require.Len(t, records, 2)

	alfa := records[0]
	assert.Equal(t, "Tech Alfa", alfa.Name)
	assert.Equal(t, "Tecnologia", alfa.Sector)
	assert.Equal(t, "São Paulo", alfa.City)
	assert.InDelta(t, 500000, alfa.SixMonthRevenue, 1e-9)
	assert.InDelta(t, 18.5, alfa.NetMarginPercent, 1e-9)
	assert.InDelta(t, 72, alfa.NPS, 1e-9)
	assert.Equal(t, "Sim", alfa.SalesFunnel)
	assert.Equal(t, 8, alfa.SelfFinancial)

	beta := records[1]
	assert.Equal(t, "Loja Beta", beta.Name)
	assert.InDelta(t, 120000, beta.SixMonthRevenue, 1e-9)
	assert.InDelta(t, 7, beta.NetMarginPercent, 1e-9)
	// Columns missing from the short row stay at zero.
	assert.Zero(t, beta.NPS)
}

func TestRecordsFromRowsEmptyHeader(t *testing.T) {
	t.Parallel()

	_, err := RecordsFromRows(nil, [][]string{{"x"}})
	assert.Error(t, err)
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"nomeEmpresa;setor;ticketMedio;usoIA",
		"Consultoria Gama;Consultoria;R$ 12.500,00;Sim",
		"Clínica Delta;Saúde;350,75;Não",
	}, "\n")

	records, err := ReadCSV(context.Background(), strings.NewReader(input), CSVOptions{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Consultoria Gama", records[0].Name)
	assert.InDelta(t, 12500, records[0].AverageTicket, 1e-9)
	assert.Equal(t, "Sim", records[0].AIUsage)
	assert.InDelta(t, 350.75, records[1].AverageTicket, 1e-9)
}

func TestReadCSVCommaDelimiter(t *testing.T) {
	t.Parallel()

	input := "empresa,cidade\nPadaria Eps,Curitiba\n"
	records, err := ReadCSV(context.Background(), strings.NewReader(input), CSVOptions{Delimiter: ','})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Padaria Eps", records[0].Name)
	assert.Equal(t, "Curitiba", records[0].City)
}

func TestReadCSVEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(context.Background(), strings.NewReader(""), CSVOptions{})
	assert.Error(t, err)
}

func TestReadCSVCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "empresa\nUma\nOutra\n"
	_, err := ReadCSV(ctx, strings.NewReader(input), CSVOptions{})
	assert.Error(t, err)
}

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Respostas")
	require.NoError(t, err)

	header := sheet.AddRow()
	for _, h := range []string{"Nome da Empresa", "Setor", "NPS", "Turnover"} {
		header.AddCell().SetString(h)
	}
	row := sheet.AddRow()
	row.AddCell().SetString("Indústria Zeta")
	row.AddCell().SetString("Indústria")
	row.AddCell().SetString("55")
	row.AddCell().SetString("22,5")

	path := filepath.Join(t.TempDir(), "survey.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadWorkbook(t *testing.T) {
	t.Parallel()

	path := writeTestWorkbook(t)

	records, err := ReadWorkbook(path, WorkbookOptions{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Indústria Zeta", records[0].Name)
	assert.InDelta(t, 55, records[0].NPS, 1e-9)
	assert.InDelta(t, 22.5, records[0].TurnoverPercent, 1e-9)

	// Selecting the sheet by name works the same way.
	records, err = ReadWorkbook(path, WorkbookOptions{SheetName: "Respostas"})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = ReadWorkbook(path, WorkbookOptions{SheetName: "nope"})
	assert.Error(t, err)
	_, err = ReadWorkbook(path, WorkbookOptions{SheetIndex: 9})
	assert.Error(t, err)
}

func TestReadWorkbookMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadWorkbook(filepath.Join(t.TempDir(), "absent.xlsx"), WorkbookOptions{})
	assert.Error(t, err)
}

func TestParseFTPURL(t *testing.T) {
	t.Parallel()

	host, path, err := parseFTPURL("ftp://exports.example.com/surveys/latest.csv")
	require.NoError(t, err)
	assert.Equal(t, "exports.example.com:21", host)
	assert.Equal(t, "/surveys/latest.csv", path)

	host, _, err = parseFTPURL("ftp://exports.example.com:2121/a.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "exports.example.com:2121", host)

	_, _, err = parseFTPURL("https://example.com/a.csv")
	assert.Error(t, err)
	_, _, err = parseFTPURL("ftp://example.com")
	assert.Error(t, err)
}
