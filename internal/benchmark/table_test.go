package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

func TestResolve(t *testing.T) {
	t.Parallel()
	table := Default()

	tests := []struct {
		name   string
		sector string
		want   string
	}{
		{"exact key", "tecnologia", "Tecnologia"},
		{"mixed case", "Tecnologia", "Tecnologia"},
		{"substring containment", "Tecnologia e Inovação", "Tecnologia"},
		{"substring with prefix", "Empresa de Varejo de moda", "Varejo"},
		{"unknown sector falls back", "agronegócio", "Geral"},
		{"empty sector falls back", "", "Geral"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := table.Resolve(tt.sector)
			assert.Equal(t, tt.want, got.Sector)
		})
	}
}

func TestResolveFirstEntryWins(t *testing.T) {
	t.Parallel()

	table, err := New([]Entry{
		{Key: "varejo", Benchmark: model.SectorBenchmark{Sector: "Varejo"}},
		{Key: "tecnologia", Benchmark: model.SectorBenchmark{Sector: "Tecnologia"}},
		{Key: DefaultKey, Benchmark: model.SectorBenchmark{Sector: "Geral"}},
	})
	require.NoError(t, err)

	// Label contains both keys; insertion order decides.
	got := table.Resolve("tecnologia para varejo")
	assert.Equal(t, "Varejo", got.Sector)
}

func TestNewRequiresDefault(t *testing.T) {
	t.Parallel()

	_, err := New([]Entry{{Key: "varejo"}})
	assert.Error(t, err)

	_, err = New([]Entry{{Key: ""}, {Key: DefaultKey}})
	assert.Error(t, err)
}

func TestDefaultTableIsDeterministic(t *testing.T) {
	t.Parallel()
	table := Default()

	a := table.Resolve("Saúde e bem-estar")
	b := table.Resolve("Saúde e bem-estar")
	assert.Equal(t, a, b)
	assert.Equal(t, "Saúde", a.Sector)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "benchmarks.yaml")
	content := `benchmarks:
  - chave: varejo
    valores:
      setor: Varejo
      margem_media: 9
      ticket_medio: 400
      conversao_media: 16
      nps_referencia: 44
      turnover_medio: 33
      ciclo_vendas_medio: 5
  - chave: default
    valores:
      setor: Geral
      margem_media: 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := Load(path)
	require.NoError(t, err)

	got := table.Resolve("varejo de bairro")
	assert.Equal(t, 9.0, got.AvgMarginPercent)
	assert.Equal(t, "Geral", table.Resolve("outro").Sector)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
