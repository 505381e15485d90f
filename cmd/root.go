/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// registration logic.
//
// Design: Execute owns process lifecycle - audit log open/close and the
// verdict-driven exit code. Commands never call os.Exit themselves; they
// record an invalid verdict via SetVerdict and Execute translates it to
// exit status 1, keeping the commands testable in-process.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/datecheck/internal/config"
	"github.com/jpl-au/datecheck/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "datecheck",
	Short: "Validate (year, month, day) triples, ordered or not",
	Long: `A date validation tool for a proleptic Julian calendar starting at year 1.

Judge a triple in known role order (check), search all role assignments
of three untagged integers (any), or resolve a month's day count (days).
Run 'datecheck guide calendar' before trusting February.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Detect author if not explicitly set
		if author == "" {
			author = detectAuthor()
		}

		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging (unless disabled by config), executes the command,
// and maps an invalid verdict to exit status 1.
func Execute() {
	// Initialise the audit logger (warn if it fails, but continue).
	// log.enabled=false in config skips it entirely; every log call
	// downstream is then a no-op.
	if cfg, err := config.Load(); err != nil || cfg.LogEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
		if wd, err := os.Getwd(); err == nil {
			log.SetWorkdir(wd)
		}
	}
	defer log.Close()

	registerExtensions()
	err := rootCmd.Execute()

	if err != nil {
		os.Exit(1)
	}
	if !verdictOK {
		// A cleanly-determined invalid date: not an error, but scripts
		// need to see it in the exit status.
		os.Exit(1)
	}
}

// RootCmd returns the root command with all extension commands attached,
// for in-process execution (tests, embedding) that bypasses Execute's
// process lifecycle.
func RootCmd() *cobra.Command {
	registerExtensions()
	return rootCmd
}
