// Package benchmark holds the sector reference table and its resolution
// rule. The table is immutable after load; resolution walks the entries in
// order and matches by case-insensitive substring containment, falling back
// to the mandatory default entry.
package benchmark

import (
	"strings"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
)

// DefaultKey marks the fallback entry every table must carry.
const DefaultKey = "default"

// Entry pairs a lookup key with its sector benchmark. Keys are stored
// lowercase.
type Entry struct {
	Key       string                `yaml:"chave"`
	Benchmark model.SectorBenchmark `yaml:"valores"`
}

// Table is an ordered benchmark lookup. Entry order is significant: a
// sector label containing more than one key resolves to whichever key
// appears first.
type Table struct {
	entries  []Entry
	fallback model.SectorBenchmark
}

// New builds a table from ordered entries. The entry keyed DefaultKey
// becomes the fallback and is removed from the match list.
func New(entries []Entry) (*Table, error) {
	t := &Table{}
	haveDefault := false
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Key))
		if key == "" {
			return nil, errEmptyKey
		}
		if key == DefaultKey {
			t.fallback = e.Benchmark
			haveDefault = true
			continue
		}
		t.entries = append(t.entries, Entry{Key: key, Benchmark: e.Benchmark})
	}
	if !haveDefault {
		return nil, errNoDefault
	}
	return t, nil
}

// Resolve returns exactly one benchmark for any sector label, including the
// empty string. The first entry whose key is a substring of the lowercased
// label wins; no fuzzy matching.
func (t *Table) Resolve(sector string) model.SectorBenchmark {
	label := strings.ToLower(sector)
	for _, e := range t.entries {
		if strings.Contains(label, e.Key) {
			return e.Benchmark
		}
	}
	return t.fallback
}

// Entries returns a copy of the ordered match list, without the fallback.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Default returns the built-in table used when no benchmarks file is
// configured.
func Default() *Table {
	t, err := New(builtinEntries)
	if err != nil {
		// The built-in table is validated by tests; a bad entry here is a
		// programming error.
		panic(err)
	}
	return t
}

var builtinEntries = []Entry{
	{Key: "tecnologia", Benchmark: model.SectorBenchmark{
		Sector: "Tecnologia", AvgMarginPercent: 20, AvgTicket: 15000,
		AvgConversionRate: 25, ReferenceNPS: 60, AvgTurnoverPercent: 18, AvgSalesCycleDays: 45,
	}},
	{Key: "varejo", Benchmark: model.SectorBenchmark{
		Sector: "Varejo", AvgMarginPercent: 8, AvgTicket: 350,
		AvgConversionRate: 15, ReferenceNPS: 45, AvgTurnoverPercent: 35, AvgSalesCycleDays: 7,
	}},
	{Key: "serviços", Benchmark: model.SectorBenchmark{
		Sector: "Serviços", AvgMarginPercent: 15, AvgTicket: 2500,
		AvgConversionRate: 20, ReferenceNPS: 50, AvgTurnoverPercent: 25, AvgSalesCycleDays: 30,
	}},
	{Key: "indústria", Benchmark: model.SectorBenchmark{
		Sector: "Indústria", AvgMarginPercent: 12, AvgTicket: 45000,
		AvgConversionRate: 18, ReferenceNPS: 48, AvgTurnoverPercent: 20, AvgSalesCycleDays: 60,
	}},
	{Key: "saúde", Benchmark: model.SectorBenchmark{
		Sector: "Saúde", AvgMarginPercent: 18, AvgTicket: 800,
		AvgConversionRate: 30, ReferenceNPS: 65, AvgTurnoverPercent: 22, AvgSalesCycleDays: 15,
	}},
	{Key: "educação", Benchmark: model.SectorBenchmark{
		Sector: "Educação", AvgMarginPercent: 14, AvgTicket: 600,
		AvgConversionRate: 22, ReferenceNPS: 55, AvgTurnoverPercent: 28, AvgSalesCycleDays: 20,
	}},
	{Key: "alimentação", Benchmark: model.SectorBenchmark{
		Sector: "Alimentação", AvgMarginPercent: 10, AvgTicket: 120,
		AvgConversionRate: 35, ReferenceNPS: 50, AvgTurnoverPercent: 40, AvgSalesCycleDays: 3,
	}},
	{Key: "construção", Benchmark: model.SectorBenchmark{
		Sector: "Construção", AvgMarginPercent: 11, AvgTicket: 85000,
		AvgConversionRate: 12, ReferenceNPS: 42, AvgTurnoverPercent: 30, AvgSalesCycleDays: 90,
	}},
	{Key: "consultoria", Benchmark: model.SectorBenchmark{
		Sector: "Consultoria", AvgMarginPercent: 25, AvgTicket: 12000,
		AvgConversionRate: 28, ReferenceNPS: 58, AvgTurnoverPercent: 15, AvgSalesCycleDays: 40,
	}},
	{Key: "financeiro", Benchmark: model.SectorBenchmark{
		Sector: "Financeiro", AvgMarginPercent: 22, AvgTicket: 5000,
		AvgConversionRate: 20, ReferenceNPS: 52, AvgTurnoverPercent: 18, AvgSalesCycleDays: 35,
	}},
	{Key: DefaultKey, Benchmark: model.SectorBenchmark{
		Sector: "Geral", AvgMarginPercent: 12, AvgTicket: 1500,
		AvgConversionRate: 18, ReferenceNPS: 50, AvgTurnoverPercent: 25, AvgSalesCycleDays: 30,
	}},
}
