package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorewood/issuepage/internal/config"
	"github.com/gorewood/issuepage/internal/export"
	"github.com/gorewood/issuepage/internal/git"
	"github.com/gorewood/issuepage/internal/issue"
	"github.com/gorewood/issuepage/internal/output"
)

// now is the page timestamp clock.
var now = time.Now

// exportResult is the summary of one run.
type exportResult struct {
	input  string
	output string
	counts issue.Counts
	doc    string
}

// runExport executes the export pipeline: resolve paths, load, render, write.
func runExport(cmd *cobra.Command, logger *zap.Logger, args []string, preview bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	cfg, err := resolveConfig(cmd.Context(), logger, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := exportPage(printer, logger, cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"input":  result.input,
			"output": result.output,
			"total":  result.counts.Total,
			"open":   result.counts.Open,
			"closed": result.counts.Closed,
		})
	}

	printer.Status("Open: %d, Closed: %d", result.counts.Open, result.counts.Closed)

	if preview {
		if err := printer.Markdown(export.StripFrontMatter(result.doc)); err != nil {
			sysErr := output.NewSystemErrorWithCause("failed to render preview", err)
			printer.Error(sysErr)
			return sysErr
		}
	}
	return nil
}

// resolveConfig finds the project root and loads configuration for it.
// A positional output path, relative to the working directory, wins over
// the configured output.
func resolveConfig(ctx context.Context, logger *zap.Logger, args []string) (*config.Config, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to get working directory", err)
	}
	root := git.ProjectRoot(ctx, cwd)
	logger.Debug("resolved project root", zap.String("root", root))

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if cfg.Source != "" {
		logger.Debug("loaded config", zap.String("path", cfg.Source))
	}

	if len(args) == 1 {
		cfg.Output = config.ResolvePath(cwd, args[0])
	}
	return cfg, nil
}

// exportPage loads the issues log, renders the page, and writes it.
// Status lines are printed as each stage completes in human mode.
func exportPage(printer *output.Printer, logger *zap.Logger, cfg *config.Config) (*exportResult, error) {
	input := filepath.Clean(cfg.Input)
	out := filepath.Clean(cfg.Output)

	printer.Field("Loading issues from", input)

	start := time.Now()
	issues, err := issue.Load(input)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded issues", zap.Int("count", len(issues)), zap.Duration("elapsed", time.Since(start)))

	printer.Status("Found %d issues", len(issues))

	opts, err := cfg.PageOptions()
	if err != nil {
		return nil, err
	}
	opts.Now = now

	start = time.Now()
	doc, err := export.RenderPage(issues, opts)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to render page", err)
	}
	logger.Debug("rendered page", zap.Int("bytes", len(doc)), zap.Duration("elapsed", time.Since(start)))

	if err := export.WritePage(out, doc); err != nil {
		return nil, err
	}
	logger.Debug("wrote page", zap.String("path", out))

	printer.Field("Exported to", out)

	counts := issue.CountByStatus(issues)
	if other := counts.Total - counts.Open - counts.Closed; other > 0 {
		printer.Warn("%d issues are neither open nor closed and only appear in the total", other)
	}

	return &exportResult{
		input:  input,
		output: out,
		counts: counts,
		doc:    doc,
	}, nil
}
