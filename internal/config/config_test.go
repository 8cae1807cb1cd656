package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gorewood/issuepage/internal/category"
	"github.com/gorewood/issuepage/internal/export"
	"github.com/gorewood/issuepage/internal/output"
)

// isolate points the global config dir and env overrides at nothing.
func isolate(t *testing.T) string {
	t.Helper()
	global := t.TempDir()
	t.Setenv(EnvConfigHome, global)
	t.Setenv(EnvInput, "")
	t.Setenv(EnvOutput, "")
	return global
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// mustLoad loads config for root and fails the test on error.
func mustLoad(t *testing.T, root string) *Config {
	t.Helper()
	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return cfg
}

// mustPageOptions converts cfg and fails the test on error.
func mustPageOptions(t *testing.T, cfg *Config) export.PageOptions {
	t.Helper()
	opts, err := cfg.PageOptions()
	if err != nil {
		t.Fatalf("PageOptions() error = %v", err)
	}
	return opts
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	cfg := mustLoad(t, root)

	if want := filepath.Join(root, ".beads", "issues.jsonl"); cfg.Input != want {
		t.Errorf("Input = %q, want %q", cfg.Input, want)
	}
	if want := filepath.Join(root, "docs", "issues.md"); cfg.Output != want {
		t.Errorf("Output = %q, want %q", cfg.Output, want)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}

	opts := mustPageOptions(t, cfg)
	if diff := cmp.Diff(category.DefaultRules(), opts.Classifier.Rules()); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
	if opts.ClosedLimit != 0 {
		t.Errorf("ClosedLimit = %d, want 0 (renderer default)", opts.ClosedLimit)
	}
}

func TestLoad_ProjectFile(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ProjectFile), `
input: data/issues.jsonl
output: /srv/site/issues.md
closed_limit: 5
page:
  title: Tracker
  permalink: /tracker/
  intro: Generated nightly.
categories:
  - match: "Net:"
    label: Networking
  - match: "UI"
    label: Interface
`)

	cfg := mustLoad(t, root)

	if want := filepath.Join(root, ProjectFile); cfg.Source != want {
		t.Errorf("Source = %q, want %q", cfg.Source, want)
	}
	if want := filepath.Join(root, "data", "issues.jsonl"); cfg.Input != want {
		t.Errorf("Input = %q, want %q", cfg.Input, want)
	}
	if cfg.Output != "/srv/site/issues.md" {
		t.Errorf("Output = %q, want %q", cfg.Output, "/srv/site/issues.md")
	}

	opts := mustPageOptions(t, cfg)
	if diff := cmp.Diff(export.FrontMatter{Title: "Tracker", Permalink: "/tracker/"}, opts.FrontMatter); diff != "" {
		t.Errorf("FrontMatter mismatch (-want +got):\n%s", diff)
	}
	if opts.Intro != "Generated nightly." {
		t.Errorf("Intro = %q", opts.Intro)
	}
	if opts.ClosedLimit != 5 {
		t.Errorf("ClosedLimit = %d, want 5", opts.ClosedLimit)
	}
	if got := opts.Classifier.Classify("Net: DNS timeout"); got != "Networking" {
		t.Errorf("Classify(Net:) = %q, want %q", got, "Networking")
	}
	if got := opts.Classifier.Classify("Boot: not configured"); got != category.Other {
		t.Errorf("Classify(Boot:) = %q, want %q", got, category.Other)
	}
}

func TestLoad_FileSelection(t *testing.T) {
	tests := []struct {
		name       string
		global     string
		project    string
		wantOutput string
		wantSource string
	}{
		{name: "global fallback", global: "output: site/issues.md\n", wantOutput: "site/issues.md", wantSource: "global"},
		{name: "project wins", global: "output: global.md\n", project: "output: project.md\n", wantOutput: "project.md", wantSource: "project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			global := isolate(t)
			root := t.TempDir()
			if tt.global != "" {
				writeFile(t, filepath.Join(global, "config.yaml"), tt.global)
			}
			if tt.project != "" {
				writeFile(t, filepath.Join(root, ProjectFile), tt.project)
			}

			cfg := mustLoad(t, root)

			if want := filepath.Join(root, tt.wantOutput); cfg.Output != want {
				t.Errorf("Output = %q, want %q", cfg.Output, want)
			}
			wantSource := filepath.Join(global, "config.yaml")
			if tt.wantSource == "project" {
				wantSource = filepath.Join(root, ProjectFile)
			}
			if cfg.Source != wantSource {
				t.Errorf("Source = %q, want %q", cfg.Source, wantSource)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ProjectFile), "input: from-file.jsonl\n")
	t.Setenv(EnvInput, "from-env.jsonl")
	t.Setenv(EnvOutput, "/abs/out.md")

	cfg := mustLoad(t, root)

	if want := filepath.Join(root, "from-env.jsonl"); cfg.Input != want {
		t.Errorf("Input = %q, want %q", cfg.Input, want)
	}
	if cfg.Output != "/abs/out.md" {
		t.Errorf("Output = %q, want %q", cfg.Output, "/abs/out.md")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantMessage string
	}{
		{name: "invalid yaml", content: "categories: [unterminated\n", wantMessage: "invalid config file"},
		{name: "negative closed limit", content: "closed_limit: -1\n", wantMessage: "closed_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			root := t.TempDir()
			writeFile(t, filepath.Join(root, ProjectFile), tt.content)

			_, err := Load(root)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMessage) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantMessage)
			}
			if got := output.GetExitCode(err); got != output.ExitUserError {
				t.Errorf("exit code = %d, want %d", got, output.ExitUserError)
			}
		})
	}
}

func TestConfig_InvalidCategories(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ProjectFile), "categories:\n  - match: \"\"\n    label: Everything\n")

	cfg := mustLoad(t, root)

	_, err := cfg.PageOptions()
	if err == nil {
		t.Fatal("PageOptions() expected error for empty match")
	}
	if got := output.GetExitCode(err); got != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", got, output.ExitUserError)
	}
	if !strings.Contains(err.Error(), "match is empty") {
		t.Errorf("error %q should mention the empty match", err.Error())
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		root, path, want string
	}{
		{"/repo", "out.md", filepath.Join("/repo", "out.md")},
		{"/repo", "/abs/out.md", "/abs/out.md"},
		{"", "out.md", "out.md"},
	}

	for _, tt := range tests {
		if got := ResolvePath(tt.root, tt.path); got != tt.want {
			t.Errorf("ResolvePath(%q, %q) = %q, want %q", tt.root, tt.path, got, tt.want)
		}
	}
}
