package main

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leads-cli/internal/dedupe"
	"github.com/sells-group/leads-cli/internal/lead"
)

var cleanOutput string

var cleanCmd = &cobra.Command{
	Use:   "clean <file.json>",
	Short: "Clean a single JSON document and print the canonical records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initPipeline(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrapf(err, "read %s", args[0])
		}

		raws, err := lead.DecodeDocument(data)
		if err != nil {
			return err
		}

		cleaned := dedupe.Dedupe(env.Cleaner.CleanBatch(raws), cfg.Dedupe.Keys)

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cleaned); err != nil {
			return eris.Wrap(err, "encode cleaned leads")
		}

		if cleanOutput == "" {
			_, err = os.Stdout.Write(buf.Bytes())
			return err
		}
		return eris.Wrapf(os.WriteFile(cleanOutput, buf.Bytes(), 0o644), "write %s", cleanOutput)
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanOutput, "out", "o", "", "write output to file instead of stdout")
	rootCmd.AddCommand(cleanCmd)
}
