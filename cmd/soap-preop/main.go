// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the soap-preop CLI. It turns a pasted
// SOAP note into a Pre-Op report through a parse → edit → render workflow
// whose context lives in a session file between commands.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/soap-preop/internal/session"
	"github.com/pdiddy/soap-preop/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfg    types.Config
	logger zerolog.Logger
)

// rootCmd is the base command for the soap-preop CLI.
var rootCmd = &cobra.Command{
	Use:   "soap-preop",
	Short: "Turn a free-text SOAP note into a Pre-Op report",
	Long: `soap-preop extracts patient identity, SOAP sections, vitals, residents,
and the planned procedure from a pasted clinical note, lets you correct any
field, and renders a fixed-format Indonesian Pre-Op report.

The workflow context lives in a session file between commands: parse a
note, edit fields, then render. Re-parsing keeps your edits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = newLogger(cfg.LogLevel, verbose)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug().Str("file", f).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./soap-preop.yaml or ~/.config/soap-preop/config.yaml)")
	rootCmd.PersistentFlags().String("session", "", "session file (default: .soap-preop/session.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")

	_ = viper.BindPFlag("session_file", rootCmd.PersistentFlags().Lookup("session"))
}

func initConfig() {
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("soap-preop")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "soap-preop"))
		}
	}

	viper.SetEnvPrefix("SOAP_PREOP")
	viper.AutomaticEnv()

	setDefaults(types.DefaultConfig())
	_ = viper.ReadInConfig()
}

// setDefaults registers every config key so AutomaticEnv can see it.
func setDefaults(d types.Config) {
	viper.SetDefault("facility", d.Facility)
	viper.SetDefault("payer", d.Payer)
	viper.SetDefault("care_type", d.CareType)
	viper.SetDefault("location", d.Location)
	viper.SetDefault("timezone_label", d.TimeZoneLabel)
	viper.SetDefault("operation_time", d.OperationTime)
	viper.SetDefault("anesthesia", d.Anesthesia)
	viper.SetDefault("greeting", d.Greeting)
	viper.SetDefault("closing", d.Closing)
	viper.SetDefault("attendings", d.Attendings)
	viper.SetDefault("plan_library", d.PlanLibrary)
	viper.SetDefault("default_plan", d.DefaultPlan)
	viper.SetDefault("fasting_hours", d.FastingHours)
	viper.SetDefault("antibiotic_lead_minutes", d.AntibioticLeadMinutes)
	viper.SetDefault("drip_factor", d.DripFactor)
	viper.SetDefault("fluid", d.Fluid)
	viper.SetDefault("antibiotic", d.Antibiotic)
	viper.SetDefault("session_file", d.SessionFile)
	viper.SetDefault("log_level", d.LogLevel)
}

func loadConfig() (types.Config, error) {
	var c types.Config
	if err := viper.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("loading config: %w", err)
	}
	if c.SessionFile == "" {
		c.SessionFile = types.DefaultConfig().SessionFile
	}
	return c, nil
}

func newLogger(level string, verbose bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger()
}

// location resolves the configured zone, falling back to local time.
func location() *time.Location {
	loc, err := time.LoadLocation(cfg.Location)
	if err != nil {
		logger.Warn().Str("location", cfg.Location).Err(err).Msg("unknown location, using local time")
		return time.Local
	}
	return loc
}

func now() time.Time {
	return time.Now().In(location())
}

// openSession loads the session file or starts a new one.
func openSession() (*session.Session, error) {
	return session.LoadOrNew(cfg.SessionFile, now(), cfg)
}

func saveSession(s *session.Session) error {
	if err := s.Save(cfg.SessionFile); err != nil {
		return err
	}
	logger.Debug().Str("session", s.ID).Str("file", cfg.SessionFile).Msg("session saved")
	return nil
}

// readInput returns the content of the file named by args[0], or stdin when
// no file or "-" is given.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// orDash renders empty values as "-" in summaries.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
