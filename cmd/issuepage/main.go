// Package main provides the entry point for the issuepage CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/gorewood/issuepage/internal/config"
	"github.com/gorewood/issuepage/internal/envfile"
	"github.com/gorewood/issuepage/internal/logging"
	"github.com/gorewood/issuepage/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return boolFlag(cmd, "json")
}

// isVerbose reads the --verbose persistent flag from the command hierarchy.
func isVerbose(cmd *cobra.Command) bool {
	return boolFlag(cmd, "verbose")
}

// useColor resolves the --color flag against the TTY state of stdout.
// Invalid modes are rejected in PersistentPreRunE, so they read as no color here.
func useColor(cmd *cobra.Command) bool {
	enabled, err := output.ResolveColorMode(colorMode(cmd), output.IsTTY(cmd.OutOrStdout()))
	return err == nil && enabled
}

func colorMode(cmd *cobra.Command) string {
	flag := lookupFlag(cmd, "color")
	if flag == nil {
		return output.ColorAuto
	}
	return flag.Value.String()
}

func boolFlag(cmd *cobra.Command, name string) bool {
	flag := lookupFlag(cmd, name)
	return flag != nil && flag.Value.String() == "true"
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	return flag
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the issuepage CLI.
func newRootCmd() *cobra.Command {
	var previewFlag bool
	logger := logging.Nop()

	cmd := &cobra.Command{
		Use:   "issuepage [output-path]",
		Short: "Export Beads issues to a Markdown page",
		Long: `issuepage - Export a Beads issue log to a single Markdown page.

Reads <repo root>/.beads/issues.jsonl and writes a page with Jekyll front
matter, open issues grouped by category, a recently closed table, and
priority statistics. The repository root comes from git and falls back to
the working directory.

Configuration:
  .issuepage.yaml in the repository root, else <config dir>/config.yaml
  ISSUEPAGE_INPUT / ISSUEPAGE_OUTPUT override the configured paths
  (also read from .env.local and .env)

Examples:
  issuepage                          # Write docs/issues.md
  issuepage site/issues.md           # Write to a custom path
  issuepage --json                   # Summary as JSON
  issuepage --preview                # Also render the page in the terminal`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, logger, args, previewFlag)
		},
	}

	// Load .env.local (then .env) so paths can be pinned per checkout.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if _, err := output.ResolveColorMode(colorMode(cmd), false); err != nil {
			output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).
				WithStderr(cmd.ErrOrStderr()).
				Error(err)
			return err
		}

		logger = logging.New(cmd.ErrOrStderr(), isVerbose(cmd))
		loadEnvFiles(logger)
		return nil
	}
	cmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log pipeline details to stderr")
	cmd.Flags().BoolVar(&previewFlag, "preview", false, "Render the written page in the terminal")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local      (per-checkout override, gitignored)
//  2. $CWD/.env            (per-checkout)
//  3. <config dir>/env     (global fallback)
func loadEnvFiles(logger *zap.Logger) {
	files := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		files = append(files, filepath.Join(dir, "env"))
	}

	for _, path := range files {
		applied, err := envfile.Load(path)
		if err != nil {
			logger.Warn("skipping env file", zap.String("path", path), zap.Error(err))
			continue
		}
		if len(applied) > 0 {
			logger.Debug("loaded env file", zap.String("path", path), zap.Strings("keys", applied))
		}
	}
}
