// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/soap-preop/internal/extract"
)

var labCmd = &cobra.Command{
	Use:   "lab [file|-]",
	Short: "Mine blood-lab values into the supporting findings",
	Long: `Lab reads a pasted lab report, picks out the recognized analytes (WBC,
HGB, PLT, CT/BT, PT/aPTT, GDS, HBsAg, ...) and prints them as "KEY : value"
lines under a "Lab Darah" heading. With --use (the default) the lines are
appended to the supporting findings of the report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLab,
}

func init() {
	labCmd.Flags().Bool("use", true, "merge the mined lines into the report")

	rootCmd.AddCommand(labCmd)
}

func runLab(cmd *cobra.Command, args []string) error {
	text, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	items := extract.LabItems(text)
	if len(items) == 0 {
		logger.Warn().Msg("no recognized lab values found")
	}
	for _, item := range items {
		fmt.Fprintln(cmd.OutOrStdout(), item)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	use, _ := cmd.Flags().GetBool("use")
	if err := s.Set("lab", text, cfg, location(), now()); err != nil {
		return err
	}
	if err := s.Set("use_lab", strconv.FormatBool(use), cfg, location(), now()); err != nil {
		return err
	}
	return saveSession(s)
}
