// Package config handles loading configuration from .problemgridrc.yaml files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/leonardomso/problemgrid/internal/scanner"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFileName is the default configuration file name.
const DefaultConfigFileName = ".problemgridrc.yaml"

// Defaults used when the config file leaves a value unset.
const (
	DefaultProblemsDir = "docs/problems"
	DefaultPriority    = 175
)

// Config represents the complete configuration structure.
type Config struct {
	// ProblemsDir is the directory holding one document per problem.
	ProblemsDir string `yaml:"problems_dir"`

	// Priority of the tag preprocessors in the preprocessing chain.
	// Higher runs earlier. Nil means DefaultPriority.
	Priority *int `yaml:"priority"`

	// Extensions recognised as problem documents (e.g. ".md").
	Extensions []string `yaml:"extensions"`

	Scan     ScanConfig     `yaml:"scan"`
	Markers  MarkersConfig  `yaml:"markers"`
	Defaults DefaultsConfig `yaml:"defaults"`

	// dir is where the file was found; relative paths resolve against it.
	dir string
}

// ScanConfig holds file selection patterns, matched against file names.
type ScanConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// MarkersConfig overrides the regular expressions that trigger each variant.
type MarkersConfig struct {
	Grid string `yaml:"grid"`
	Tile string `yaml:"tile"`
}

// DefaultsConfig holds per-variant field defaults.
type DefaultsConfig struct {
	Grid VariantDefaults `yaml:"grid"`
	Tile VariantDefaults `yaml:"tile"`
}

// VariantDefaults overrides placeholder values for one variant.
// Nil fields keep the built-in value; an explicit empty string is honoured.
type VariantDefaults struct {
	Source       *string `yaml:"source"`
	Difficulty   *string `yaml:"difficulty"`
	Tags         *string `yaml:"tags"`
	SolutionPath *string `yaml:"solution_path"`
}

// IsEmpty returns true if no override is set.
func (v VariantDefaults) IsEmpty() bool {
	return v.Source == nil && v.Difficulty == nil && v.Tags == nil && v.SolutionPath == nil
}

// Load reads configuration by walking up from the current directory.
// Returns an empty config if no file is found (not an error).
func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return LoadFrom(DefaultConfigFileName)
	}
	return FindAndLoad(wd)
}

// LoadFrom reads configuration from a specific path.
// Returns an empty config if the file doesn't exist (not an error).
// Returns an error only if the file exists but cannot be parsed.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// FindAndLoad searches for a config file starting from the given directory
// and walking up to parent directories until it finds one or reaches root.
// This allows project-specific configs to be found from subdirectories.
func FindAndLoad(startDir string) (*Config, error) {
	path, found := Find(startDir)
	if !found {
		return &Config{}, nil
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Dir returns the directory the config file was found in by FindAndLoad,
// or "" when no file was found.
func (c *Config) Dir() string {
	return c.dir
}

// Find returns the path of the nearest config file at or above startDir.
func Find(startDir string) (string, bool) {
	dir := startDir

	for {
		configPath := filepath.Join(dir, DefaultConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Validate checks that patterns compile and values are in range.
func (c *Config) Validate() error {
	if c.Priority != nil && *c.Priority < 0 {
		return fmt.Errorf("priority must be non-negative, got %d", *c.Priority)
	}
	if err := scanner.ValidatePatterns(c.Scan.Include); err != nil {
		return fmt.Errorf("scan.include: %w", err)
	}
	if err := scanner.ValidatePatterns(c.Scan.Exclude); err != nil {
		return fmt.Errorf("scan.exclude: %w", err)
	}
	for name, pattern := range map[string]string{"grid": c.Markers.Grid, "tile": c.Markers.Tile} {
		if pattern == "" {
			continue
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("markers.%s: %w", name, err)
		}
	}
	return nil
}

// IsEmpty returns true if the config sets nothing.
func (c *Config) IsEmpty() bool {
	return c.ProblemsDir == "" &&
		c.Priority == nil &&
		len(c.Extensions) == 0 &&
		len(c.Scan.Include) == 0 &&
		len(c.Scan.Exclude) == 0 &&
		c.Markers.Grid == "" &&
		c.Markers.Tile == "" &&
		c.Defaults.Grid.IsEmpty() &&
		c.Defaults.Tile.IsEmpty()
}

// GetProblemsDir returns the configured problems directory or the default.
// A relative path is resolved against the directory holding the config file.
func (c *Config) GetProblemsDir() string {
	dir := c.ProblemsDir
	if dir == "" {
		dir = DefaultProblemsDir
	}
	if c.dir != "" && !filepath.IsAbs(dir) {
		return filepath.Join(c.dir, dir)
	}
	return dir
}

// GetPriority returns the configured priority or the default.
func (c *Config) GetPriority() int {
	if c.Priority != nil {
		return *c.Priority
	}
	return DefaultPriority
}

// ScanOptions converts the selection settings for the scanner.
func (c *Config) ScanOptions() scanner.Options {
	return scanner.Options{
		Extensions: c.Extensions,
		Include:    c.Scan.Include,
		Exclude:    c.Scan.Exclude,
	}
}
