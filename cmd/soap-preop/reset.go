// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the note, parsed fields, and every edit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		s.Reset(now(), cfg)
		if err := saveSession(s); err != nil {
			return err
		}
		logger.Info().Str("session", s.ID).Msg("session reset")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
