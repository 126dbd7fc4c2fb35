package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/ai"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <assessment-id>",
	Short: "Generate an AI executive summary for a stored assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if cfg.Anthropic.Key == "" {
			return eris.New("anthropic key is required (CEOV_ANTHROPIC_KEY)")
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		a, err := st.GetAssessment(ctx, args[0])
		if err != nil {
			return err
		}
		if a.Result == nil {
			return eris.Errorf("assessment %s has no result yet", a.ID)
		}

		enricher := ai.NewEnricher(ai.NewClient(cfg.Anthropic.Key), ai.EnricherOptions{
			Model:             cfg.Anthropic.Model,
			MaxTokens:         cfg.Anthropic.MaxTokens,
			RequestsPerMinute: cfg.Anthropic.RequestsPerMinute,
		})

		summary, err := enricher.Summarize(ctx, a.Record, *a.Result)
		if err != nil {
			return err
		}

		fmt.Println(summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enrichCmd)
}
