// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit key=value...",
	Short: "Override parsed fields and set schedule values",
	Long: `Edit records values that win over the parsed note. An override set to an
empty value still wins; use --unset to return to the parsed value.

List values (plan, custom_plan, medications, supporting_items) are separated
by semicolons. Plan picks are library items or their 1-based numbers.
Dates use dd/mm/yyyy and times HH.MM.`,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringSlice("unset", nil, "keys to return to their parsed value")
	editCmd.Flags().Bool("keys", false, "list editable keys and exit")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	if list, _ := cmd.Flags().GetBool("keys"); list {
		for _, k := range s.Keys() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nPlan library:")
		for i, item := range cfg.PlanLibrary {
			fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", i+1, item)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nDPJP presets:")
		for i, a := range cfg.Attendings {
			fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", i, a)
		}
		return nil
	}

	unset, _ := cmd.Flags().GetStringSlice("unset")
	if len(args) == 0 && len(unset) == 0 {
		return fmt.Errorf("provide one or more key=value pairs or --unset keys")
	}

	for _, key := range unset {
		if err := s.Unset(key); err != nil {
			return err
		}
		logger.Debug().Str("key", key).Msg("override removed")
	}

	loc, t := location(), now()
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", arg)
		}
		if err := s.Set(strings.TrimSpace(key), value, cfg, loc, t); err != nil {
			return err
		}
		logger.Debug().Str("key", key).Msg("field set")
	}

	return saveSession(s)
}
