package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <assessment-id>",
	Short: "Publish a stored assessment to Notion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if cfg.Notion.Token == "" {
			return eris.New("notion token is required (CEOV_NOTION_TOKEN)")
		}
		if cfg.Notion.DatabaseID == "" {
			return eris.New("notion database ID is required (CEOV_NOTION_DATABASE_ID)")
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

		exporter := export.NewExporter(export.NewClient(cfg.Notion.Token), cfg.Notion.DatabaseID)
		pageID, err := exporter.Export(ctx, *a)
		if err != nil {
			return err
		}

		zap.L().Info("export complete",
			zap.String("assessment", a.ID),
			zap.String("page", pageID),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
