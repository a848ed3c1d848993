// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/soap-preop/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Extract fields from a SOAP note into the session",
	Long: `Parse reads a free-text SOAP note from a file or stdin, extracts every
field it can recognize, and stores the note and the parsed fields in the
session. Edits made earlier with "edit" are kept.

Extraction never fails: unrecognized fields are left empty.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().Bool("yaml", false, "print the parsed fields as YAML")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	s.Parse(raw, now(), logger)
	if !s.Overrides.IsEmpty() {
		logger.Info().Msg("earlier edits kept; run reset to drop them")
	}
	if err := saveSession(s); err != nil {
		return err
	}

	asYAML, _ := cmd.Flags().GetBool("yaml")
	if asYAML {
		data, err := yaml.Marshal(s.Parsed)
		if err != nil {
			return fmt.Errorf("marshaling fields: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	printSummary(cmd.OutOrStdout(), s.Parsed)
	return nil
}

func printSummary(w io.Writer, m types.FieldModel) {
	fmt.Fprintf(w, "Nama        : %s\n", orDash(m.DisplayName()))
	fmt.Fprintf(w, "JK / Umur   : %s / %s\n", orDash(m.Sex), orDash(m.Age))
	fmt.Fprintf(w, "Penjamin    : %s\n", orDash(m.Payer))
	fmt.Fprintf(w, "Perawatan   : %s\n", orDash(m.CareType))
	fmt.Fprintf(w, "Kamar       : %s\n", orDash(m.Room))
	fmt.Fprintf(w, "RS          : %s\n", orDash(m.Facility))
	fmt.Fprintf(w, "RM          : %s\n", orDash(m.MedicalRecord))
	fmt.Fprintf(w, "BB / TB     : %s / %s\n", orDash(m.Vitals.Weight), orDash(m.Vitals.Height))
	fmt.Fprintf(w, "Penunjang   : %d item\n", len(m.SupportingItems))
	fmt.Fprintf(w, "Tindakan    : %s\n", orDash(m.Procedure))
	fmt.Fprintf(w, "Anestesi    : %s\n", orDash(m.Anesthesia))
	fmt.Fprintf(w, "Residen     : %s\n", orDash(m.Residents))
	fmt.Fprintf(w, "DPJP        : %s\n", orDash(m.Attending))
}
