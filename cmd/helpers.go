package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leonardomso/problemgrid/internal/config"
	"github.com/leonardomso/problemgrid/internal/extension"
	"github.com/leonardomso/problemgrid/internal/preprocess"
	"github.com/leonardomso/problemgrid/internal/problem"
	"github.com/leonardomso/problemgrid/internal/render"
	"github.com/leonardomso/problemgrid/internal/stats"
	"github.com/leonardomso/problemgrid/internal/ui"
)

// LoadedConfig wraps a loaded configuration and provides helper methods
// for getting effective values that respect CLI overrides.
type LoadedConfig struct {
	cfg      *config.Config
	noConfig bool
}

// LoadConfig loads the configuration file unless noConfig is true.
// Returns an error if the config file exists but is invalid.
func LoadConfig(noConfig bool) (*LoadedConfig, error) {
	if noConfig {
		return &LoadedConfig{cfg: &config.Config{}, noConfig: true}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &LoadedConfig{cfg: cfg, noConfig: false}, nil
}

// Config returns the underlying config for direct access.
func (lc *LoadedConfig) Config() *config.Config {
	return lc.cfg
}

// GetProblemsDir returns the effective problems directory.
// CLI overrides config if set. A config value is relative to the config file.
func (lc *LoadedConfig) GetProblemsDir(cliValue string) string {
	if cliValue != "" {
		return cliValue
	}
	return lc.cfg.GetProblemsDir()
}

// BuildOptions creates extension options from config and CLI values.
func (lc *LoadedConfig) BuildOptions(cliProblemsDir string) extension.Options {
	opts := extension.OptionsFromConfig(lc.cfg)
	opts.ProblemsDir = lc.GetProblemsDir(cliProblemsDir)
	return opts
}

// NewExtension loads the config and builds an extension that records its
// timings into perf.
func NewExtension(cliProblemsDir string, perf *stats.Stats) (*extension.Extension, error) {
	lc, err := LoadConfig(noConfig)
	if err != nil {
		return nil, err
	}
	return extension.New(lc.BuildOptions(cliProblemsDir), perf), nil
}

// printConfigSummary reports which config file, if any, the run is using.
func printConfigSummary(w io.Writer, lc *LoadedConfig) {
	switch {
	case lc.noConfig:
		fmt.Fprintln(w, "config: disabled by --no-config")
	case lc.cfg.Dir() == "":
		fmt.Fprintf(w, "config: no %s found, using defaults\n", config.DefaultConfigFileName)
	case lc.cfg.IsEmpty():
		fmt.Fprintf(w, "config: %s sets nothing, using defaults\n",
			filepath.Join(lc.cfg.Dir(), config.DefaultConfigFileName))
	default:
		fmt.Fprintf(w, "config: %s\n", filepath.Join(lc.cfg.Dir(), config.DefaultConfigFileName))
	}
}

// printPreprocessors lists the registered preprocessors in execution order.
func printPreprocessors(w io.Writer, r *preprocess.Registry) {
	fmt.Fprintf(w, "preprocessors (%d): %s\n", r.Len(), strings.Join(r.Names(), ", "))
}

// resolveVariant parses the --variant flag. Empty means the grid variant.
func resolveVariant(name string) (render.Variant, error) {
	if name == "" {
		return render.GridList, nil
	}
	return render.ParseVariant(name)
}

// getDirArg returns the directory argument, falling back to the
// --problems-dir flag value.
func getDirArg(args []string, flagValue string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return flagValue
}

// exitOnError prints an error message and exits if err is not nil.
func exitOnError(err error, message string) {
	if err != nil {
		if message != "" {
			fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}

// printDiagnostics writes recovered per-file errors in warning style.
func printDiagnostics(w io.Writer, diags []problem.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	fmt.Fprintln(w, ui.WarningStyle.Render(fmt.Sprintf("%d warning(s):", len(diags))))
	for _, d := range diags {
		fmt.Fprintf(w, "  %s %s\n", ui.WarningBadge.Render(d.Kind), d.String())
	}
}

// printStats writes run statistics when --stats is set.
func printStats(w io.Writer, perf *stats.Stats) {
	if !showStats || perf == nil {
		return
	}
	fmt.Fprint(w, perf.String())
}
