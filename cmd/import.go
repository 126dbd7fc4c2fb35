package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/engine"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/ingest"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/store"
)

var (
	importFile   string
	importFTPURL string
	importSheet  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a survey export (XLSX, CSV or FTP) and analyze every row",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		records, err := fetchRecords(ctx)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return eris.New("no importable rows found")
		}

		table, err := loadBenchmarks()
		if err != nil {
			return err
		}
		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		analyzed, err := analyzeAll(ctx, st, engine.New(table), records)
		if err != nil {
			return err
		}

		zap.L().Info("import complete",
			zap.Int("records", len(records)),
			zap.Int("analyzed", analyzed),
		)
		return nil
	},
}

func fetchRecords(ctx context.Context) ([]model.CompanyRecord, error) {
	if importFTPURL != "" {
		fetcher := ingest.NewFTPFetcher(ingest.FTPOptions{
			Timeout:  time.Duration(cfg.Ingest.FTPTimeout) * time.Second,
			User:     cfg.Ingest.FTPUser,
			Password: cfg.Ingest.FTPPassword,
		})
		return fetcher.FetchRecords(ctx, importFTPURL)
	}

	sheet := importSheet
	if sheet == "" {
		sheet = cfg.Ingest.Sheet
	}

	switch filepath.Ext(importFile) {
	case ".xlsx":
		return ingest.ReadWorkbook(importFile, ingest.WorkbookOptions{SheetName: sheet})
	case ".csv":
		f, err := os.Open(importFile)
		if err != nil {
			return nil, eris.Wrap(err, "open csv")
		}
		defer f.Close()

		opts := ingest.CSVOptions{}
		if cfg.Ingest.Delimiter != "" {
			opts.Delimiter = rune(cfg.Ingest.Delimiter[0])
		}
		return ingest.ReadCSV(ctx, f, opts)
	default:
		return nil, eris.Errorf("unsupported file type %q (want .xlsx or .csv)", importFile)
	}
}

// analyzeAll stores and analyzes records with bounded concurrency. The
// engine is pure, so fan-out only matters for store round trips.
func analyzeAll(ctx context.Context, st store.Store, analyzer *engine.Analyzer, records []model.CompanyRecord) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Ingest.Concurrency, 1))

	for _, record := range records {
		record := record
		g.Go(func() error {
			a, err := st.CreateAssessment(ctx, record)
			if err != nil {
				return err
			}
			result := analyzer.Analyze(record)
			if err := st.CompleteAssessment(ctx, a.ID, &result); err != nil {
				return err
			}
			zap.L().Debug("record analyzed",
				zap.String("company", record.Name),
				zap.Int("overall", result.Scores.Overall),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, eris.Wrap(err, "analyze records")
	}
	return len(records), nil
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "path to the survey export (.xlsx or .csv)")
	importCmd.Flags().StringVar(&importFTPURL, "ftp-url", "", "FTP URL of the survey export (overrides --file)")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "workbook sheet name (default from config)")
	rootCmd.AddCommand(importCmd)
}
