package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/engine"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/report"
)

var (
	analyzeInput    string
	analyzeOutput   string
	analyzeMarkdown bool
	analyzeSave     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analysis for a single survey record (JSON file or stdin)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		in := os.Stdin
		if analyzeInput != "" {
			f, err := os.Open(analyzeInput)
			if err != nil {
				return eris.Wrap(err, "open input")
			}
			defer f.Close()
			in = f
		}

		var record model.CompanyRecord
		if err := json.NewDecoder(in).Decode(&record); err != nil {
			return eris.Wrap(err, "decode record")
		}
		if record.Name == "" {
			return eris.New("record has no nomeEmpresa")
		}

		table, err := loadBenchmarks()
		if err != nil {
			return err
		}
		result := engine.New(table).Analyze(record)

		if analyzeSave {
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			a, err := st.CreateAssessment(ctx, record)
			if err != nil {
				return err
			}
			if err := st.CompleteAssessment(ctx, a.ID, &result); err != nil {
				return err
			}
			zap.L().Info("assessment saved", zap.String("id", a.ID))
		}

		out := os.Stdout
		if analyzeOutput != "" {
			f, err := os.Create(analyzeOutput)
			if err != nil {
				return eris.Wrap(err, "create output")
			}
			defer f.Close()
			out = f
		}

		if analyzeMarkdown {
			_, err := out.WriteString(report.Markdown(result))
			return eris.Wrap(err, "write report")
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(result), "encode result")
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "path to record JSON (default stdin)")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "path to write the result (default stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeMarkdown, "markdown", false, "render a Markdown report instead of JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "persist the assessment in the store")
	rootCmd.AddCommand(analyzeCmd)
}
