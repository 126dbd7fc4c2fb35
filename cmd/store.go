package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/benchmark"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/store"
)

// openStore builds the configured store backend and runs migrations.
func openStore(ctx context.Context) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case "sqlite", "":
		st, err = store.NewSQLite(cfg.Store.Path)
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

// loadBenchmarks returns the configured benchmark table, or the built-in
// one when no file is set.
func loadBenchmarks() (*benchmark.Table, error) {
	if cfg.Benchmarks.Path == "" {
		return benchmark.Default(), nil
	}
	return benchmark.Load(cfg.Benchmarks.Path)
}
