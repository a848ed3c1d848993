// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the Pre-Op report for the current session",
	Long: `Render merges the parsed fields, your edits, and the configured defaults,
then prints the report. Required values still missing are shown as
placeholders such as "(isi tindakan)".`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("out", "o", "", "write the report to a file instead of stdout")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	if s.Raw == "" {
		logger.Warn().Msg("no note parsed yet; rendering defaults only")
	}

	report := s.Report(cfg)

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), report)
		return err
	}
	if err := os.WriteFile(out, []byte(report), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info().Str("file", out).Msg("report written")
	return nil
}
