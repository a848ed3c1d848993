// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/soap-preop/internal/calc"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Fluid and timing calculators",
}

var calcFluidCmd = &cobra.Command{
	Use:   "fluid",
	Short: "Maintenance fluid rate (4-2-1) and drip rate for a body weight",
	Args:  cobra.NoArgs,
	RunE:  runCalcFluid,
}

var calcTimeCmd = &cobra.Command{
	Use:   "time",
	Short: "Fasting onset and antibiotic time for an operation time",
	Args:  cobra.NoArgs,
	RunE:  runCalcTime,
}

func init() {
	calcFluidCmd.Flags().String("weight", "", "body weight in kg (e.g. 25 or 12,5)")
	calcFluidCmd.Flags().Int("drip", 0, "drip factor in drops/mL (default from config)")

	calcTimeCmd.Flags().String("at", "", "operation time HH.MM (default from config)")
	calcTimeCmd.Flags().Int("fasting-hours", 0, "fasting period in hours (default from config)")
	calcTimeCmd.Flags().Int("lead", 0, "antibiotic lead in minutes (default from config)")

	calcCmd.AddCommand(calcFluidCmd, calcTimeCmd)
	rootCmd.AddCommand(calcCmd)
}

func runCalcFluid(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("weight")
	w, ok := calc.ParseNumber(raw)
	if !ok {
		return fmt.Errorf("invalid --weight %q", raw)
	}
	drip, _ := cmd.Flags().GetInt("drip")
	if drip == 0 {
		drip = cfg.DripFactor
	}

	rate := calc.MaintenanceRate(w)
	fmt.Fprintf(cmd.OutOrStdout(), "Kebutuhan cairan : %.0f mL/jam\n", rate)
	fmt.Fprintf(cmd.OutOrStdout(), "Tetesan          : %d tpm (faktor tetes %d)\n", calc.DropsPerMinute(rate, drip), drip)
	if line, ok := calc.IVLine(cfg.Fluid, w, drip); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Plan             : %s\n", line)
	}
	return nil
}

func runCalcTime(cmd *cobra.Command, args []string) error {
	at, _ := cmd.Flags().GetString("at")
	if at == "" {
		at = cfg.OperationTime
	}
	op, ok := calc.ParseTime(at)
	if !ok {
		return fmt.Errorf("invalid operation time %q (want HH.MM)", at)
	}
	hours, _ := cmd.Flags().GetInt("fasting-hours")
	if hours == 0 {
		hours = cfg.FastingHours
	}
	lead, _ := cmd.Flags().GetInt("lead")
	if lead == 0 {
		lead = cfg.AntibioticLeadMinutes
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Operasi    : %s %s\n", op, cfg.TimeZoneLabel)
	fmt.Fprintln(cmd.OutOrStdout(), calc.FastingLine(op, hours, cfg.TimeZoneLabel))
	fmt.Fprintln(cmd.OutOrStdout(), calc.AntibioticLine(op, lead, cfg.Antibiotic, cfg.TimeZoneLabel))
	return nil
}
