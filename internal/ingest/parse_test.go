package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"nomeEmpresa", "nomeempresa"},
		{"Nome da Empresa", "nomedaempresa"},
		{"Margem Alvo (%)", "margemalvo"},
		{"Inadimplência", "inadimplencia"},
		{"AUTOAVALIAÇÃO FINANCEIRO", "autoavaliacaofinanceiro"},
		{"ciclo_vendas_dias", "ciclovendasdias"},
		{"  Absenteísmo % ", "absenteismo"},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeHeader(tt.in))
		})
	}
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"12,5", 12.5},
		{"1.234,56", 1234.56},
		{"R$ 10.000", 10000},
		{"R$ 1.500.000,00", 1500000},
		{"45%", 45},
		{"12.5", 12.5},
		{"1.234.567", 1234567},
		{"10.000", 10000},
		{"0.5", 0.5},
		{"-3,2", -3.2},
		{"", 0},
		{"-", 0},
		{"não sei", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, parseNumber(tt.in), 1e-9)
		})
	}
}

func TestParseInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, parseInt("8"))
	assert.Equal(t, 8, parseInt("7,6"))
	assert.Equal(t, -4, parseInt("-3,6"))
	assert.Equal(t, 0, parseInt(""))
}
