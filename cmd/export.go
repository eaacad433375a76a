package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leads-cli/internal/export"
)

var (
	exportDir string
	exportOut string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a cleaned-output directory to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := exportDir
		if dir == "" {
			dir = cfg.Batch.OutputDir
		}

		leads, err := export.CollectDir(dir)
		if err != nil {
			return err
		}
		if err := export.WriteXLSX(exportOut, leads); err != nil {
			return eris.Wrap(err, "export leads")
		}

		zap.L().Info("exported leads",
			zap.String("dir", dir),
			zap.String("out", exportOut),
			zap.Int("leads", len(leads)),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "cleaned output directory (default from config)")
	exportCmd.Flags().StringVar(&exportOut, "out", "leads.xlsx", "destination workbook path")
	rootCmd.AddCommand(exportCmd)
}
