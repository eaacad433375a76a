package main

import (
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	processInputDir  string
	processOutputDir string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Clean and deduplicate every JSON document in the input directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		inDir := processInputDir
		if inDir == "" {
			inDir = cfg.Batch.InputDir
		}
		outDir := processOutputDir
		if outDir == "" {
			outDir = cfg.Batch.OutputDir
		}

		run, err := env.Processor.Process(ctx, inDir, outDir)
		if err != nil {
			return eris.Wrap(err, "process batch")
		}

		if env.Store != nil {
			if err := env.Store.RecordRun(ctx, run); err != nil {
				zap.L().Warn("failed to record run", zap.Error(err))
			}
		}
		return nil
	},
}

func init() {
	processCmd.Flags().StringVar(&processInputDir, "input", "", "input directory (default from config)")
	processCmd.Flags().StringVar(&processOutputDir, "output", "", "output directory (default from config)")
	rootCmd.AddCommand(processCmd)
}
