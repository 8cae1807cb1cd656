package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/issuepage/internal/category"
	"github.com/gorewood/issuepage/internal/export"
	"github.com/gorewood/issuepage/internal/output"
)

// Environment variables read by issuepage.
const (
	EnvConfigHome = "ISSUEPAGE_CONFIG_HOME"
	EnvInput      = "ISSUEPAGE_INPUT"
	EnvOutput     = "ISSUEPAGE_OUTPUT"
)

// Default locations, relative to the repository root.
const (
	DefaultInput   = ".beads/issues.jsonl"
	DefaultOutput  = "docs/issues.md"
	ProjectFile    = ".issuepage.yaml"
	globalFileName = "config.yaml"
)

// Config is the resolved configuration for one run.
type Config struct {
	Input       string          `yaml:"input"`
	Output      string          `yaml:"output"`
	ClosedLimit int             `yaml:"closed_limit"`
	Page        Page            `yaml:"page"`
	Categories  []category.Rule `yaml:"categories"`

	// Source is the config file that was read, empty when none was found.
	Source string `yaml:"-"`
}

// Page holds the page presentation settings.
type Page struct {
	Layout    string `yaml:"layout"`
	Title     string `yaml:"title"`
	Permalink string `yaml:"permalink"`
	Heading   string `yaml:"heading"`
	Intro     string `yaml:"intro"`
}

// Load reads configuration for the repository rooted at root.
// The project file (<root>/.issuepage.yaml) wins over the global file
// (<Dir()>/config.yaml); missing files yield defaults. ISSUEPAGE_INPUT and
// ISSUEPAGE_OUTPUT override the file values. Relative paths are resolved
// against root.
func Load(root string) (*Config, error) {
	cfg := &Config{}

	for _, path := range candidateFiles(root) {
		found, err := readFile(path, cfg)
		if err != nil {
			return nil, err
		}
		if found {
			cfg.Source = path
			break
		}
	}

	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}

	if cfg.Input == "" {
		cfg.Input = DefaultInput
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	cfg.Input = resolve(root, cfg.Input)
	cfg.Output = resolve(root, cfg.Output)

	if cfg.ClosedLimit < 0 {
		return nil, output.NewUserError(fmt.Sprintf("%s: closed_limit must not be negative", cfg.Source))
	}

	return cfg, nil
}

// Classifier builds the category classifier: configured rules when present,
// the built-in rules otherwise.
func (c *Config) Classifier() (*category.Classifier, error) {
	if len(c.Categories) == 0 {
		return category.Default(), nil
	}
	classifier, err := category.NewClassifier(c.Categories)
	if err != nil {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("%s: %v", c.Source, err), err)
	}
	return classifier, nil
}

// PageOptions converts the configuration into renderer options.
func (c *Config) PageOptions() (export.PageOptions, error) {
	classifier, err := c.Classifier()
	if err != nil {
		return export.PageOptions{}, err
	}
	return export.PageOptions{
		FrontMatter: export.FrontMatter{
			Layout:    c.Page.Layout,
			Title:     c.Page.Title,
			Permalink: c.Page.Permalink,
		},
		Heading:     c.Page.Heading,
		Intro:       c.Page.Intro,
		ClosedLimit: c.ClosedLimit,
		Classifier:  classifier,
	}, nil
}

// ResolvePath resolves p against the repository root unless it is absolute.
func ResolvePath(root, p string) string {
	return resolve(root, p)
}

// candidateFiles lists config files in priority order.
func candidateFiles(root string) []string {
	files := []string{filepath.Join(root, ProjectFile)}
	if dir := Dir(); dir != "" {
		files = append(files, filepath.Join(dir, globalFileName))
	}
	return files
}

// readFile decodes path into cfg. Returns false when the file does not exist.
func readFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, output.NewSystemErrorWithCause("failed to read config file: "+path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return false, output.NewUserErrorWithCause(fmt.Sprintf("invalid config file %s: %v", path, err), err)
	}
	return true, nil
}

// resolve joins relative paths onto root.
func resolve(root, p string) string {
	if filepath.IsAbs(p) || root == "" {
		return p
	}
	return filepath.Join(root, p)
}
