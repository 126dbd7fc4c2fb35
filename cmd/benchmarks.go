package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var benchmarksSector string

var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "Show the sector benchmark table, or resolve one sector",
	RunE: func(_ *cobra.Command, _ []string) error {
		table, err := loadBenchmarks()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if benchmarksSector != "" {
			return eris.Wrap(enc.Encode(table.Resolve(benchmarksSector)), "encode benchmark")
		}
		return eris.Wrap(enc.Encode(table.Entries()), "encode benchmarks")
	},
}

func init() {
	benchmarksCmd.Flags().StringVar(&benchmarksSector, "sector", "", "resolve a single sector label")
	rootCmd.AddCommand(benchmarksCmd)
}
