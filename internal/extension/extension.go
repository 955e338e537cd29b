// Package extension wires the problem loader, natural sort and card renderer
// into tag preprocessors that expand "!problemlist" and "!problem_all".
package extension

import (
	"regexp"
	"time"

	"github.com/leonardomso/problemgrid/internal/config"
	"github.com/leonardomso/problemgrid/internal/preprocess"
	"github.com/leonardomso/problemgrid/internal/problem"
	"github.com/leonardomso/problemgrid/internal/render"
	"github.com/leonardomso/problemgrid/internal/scanner"
	"github.com/leonardomso/problemgrid/internal/stats"
)

// Registry names of the two tag preprocessors.
const (
	GridName = "problemlist"
	TileName = "problem_cards"
)

// Options configures an Extension.
type Options struct {
	ProblemsDir string
	Priority    int
	Scan        scanner.Options

	// Markers maps each variant to the pattern that triggers it.
	// Missing entries use the variant's literal marker.
	Markers map[render.Variant]string

	// Conventions maps each variant to its defaults.
	// Missing entries use render.DefaultConventions.
	Conventions map[render.Variant]render.Conventions
}

// DefaultOptions returns the options used without a config file.
func DefaultOptions() Options {
	return Options{
		ProblemsDir: config.DefaultProblemsDir,
		Priority:    config.DefaultPriority,
	}
}

// OptionsFromConfig applies cfg on top of DefaultOptions.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}

	opts.ProblemsDir = cfg.GetProblemsDir()
	opts.Priority = cfg.GetPriority()
	opts.Scan = cfg.ScanOptions()

	opts.Markers = map[render.Variant]string{}
	if cfg.Markers.Grid != "" {
		opts.Markers[render.GridList] = cfg.Markers.Grid
	}
	if cfg.Markers.Tile != "" {
		opts.Markers[render.TileCard] = cfg.Markers.Tile
	}

	opts.Conventions = map[render.Variant]render.Conventions{
		render.GridList: applyDefaults(render.DefaultConventions(render.GridList), cfg.Defaults.Grid),
		render.TileCard: applyDefaults(render.DefaultConventions(render.TileCard), cfg.Defaults.Tile),
	}

	return opts
}

func applyDefaults(c render.Conventions, v config.VariantDefaults) render.Conventions {
	if v.Source != nil {
		c.Defaults.Source = *v.Source
	}
	if v.Difficulty != nil {
		c.Defaults.Difficulty = *v.Difficulty
	}
	if v.Tags != nil {
		c.Defaults.Tags = *v.Tags
	}
	if v.SolutionPath != nil {
		c.SolutionPath = *v.SolutionPath
	}
	return c
}

// Extension expands marker tags into card fragments. Every expansion rescans
// the problems directory; nothing is cached between builds.
type Extension struct {
	opts  Options
	stats *stats.Stats
	diags []problem.Diagnostic
	seen  map[diagnosticKey]struct{}
}

// diagnosticKey identifies a diagnostic across rescans of the same directory.
type diagnosticKey struct {
	path string
	kind string
}

// New creates an Extension. perf may be nil.
func New(opts Options, perf *stats.Stats) *Extension {
	return &Extension{opts: opts, stats: perf}
}

// Options returns the extension's options.
func (e *Extension) Options() Options {
	return e.opts
}

// Marker returns the trigger pattern for v.
func (e *Extension) Marker(v render.Variant) string {
	if m, ok := e.opts.Markers[v]; ok && m != "" {
		return m
	}
	return regexp.QuoteMeta(v.Marker())
}

// Conventions returns the conventions for v.
func (e *Extension) Conventions(v render.Variant) render.Conventions {
	if c, ok := e.opts.Conventions[v]; ok {
		return c
	}
	return render.DefaultConventions(v)
}

// Loader returns a loader applying v's field defaults.
func (e *Extension) Loader(v render.Variant) *problem.Loader {
	return problem.NewLoader(e.opts.ProblemsDir, e.opts.Scan, e.Conventions(v).Defaults)
}

// Renderer returns the renderer for v.
func (e *Extension) Renderer(v render.Variant) *render.Renderer {
	return &render.Renderer{Variant: v, Conventions: e.Conventions(v)}
}

// Problems loads and naturally sorts the records for v.
// Recovered per-file errors are kept and available from Diagnostics. A file
// that fails the same way on several rescans is recorded once.
func (e *Extension) Problems(v render.Variant) ([]problem.Problem, error) {
	start := time.Now()
	problems, diags, err := e.Loader(v).LoadSorted()
	if err != nil {
		return nil, err
	}
	e.addDiagnostics(diags)
	if e.stats != nil {
		e.stats.AddLoad(time.Since(start), len(problems), len(diags))
	}
	return problems, nil
}

// Build loads the records and renders the fragment for v.
func (e *Extension) Build(v render.Variant) (string, error) {
	problems, err := e.Problems(v)
	if err != nil {
		return "", err
	}

	start := time.Now()
	fragment := e.Renderer(v).Render(problems)
	if e.stats != nil {
		e.stats.AddRender(time.Since(start), len(fragment))
	}
	return fragment, nil
}

// Preprocessor returns the tag preprocessor for v.
func (e *Extension) Preprocessor(v render.Variant) (*preprocess.TagPreprocessor, error) {
	return preprocess.NewTagPreprocessor(e.Marker(v), func() (string, error) {
		return e.Build(v)
	})
}

// Register adds both tag preprocessors to r at the configured priority.
func (e *Extension) Register(r *preprocess.Registry) error {
	for _, v := range render.Variants() {
		p, err := e.Preprocessor(v)
		if err != nil {
			return err
		}
		r.Register(RegistryName(v), e.opts.Priority, p)
	}
	return nil
}

// Diagnostics returns the distinct recovered per-file errors seen by every
// build so far, in the order they were first seen.
func (e *Extension) Diagnostics() []problem.Diagnostic {
	return e.diags
}

func (e *Extension) addDiagnostics(diags []problem.Diagnostic) {
	for _, d := range diags {
		key := diagnosticKey{path: d.Path, kind: d.Kind}
		if _, ok := e.seen[key]; ok {
			continue
		}
		if e.seen == nil {
			e.seen = make(map[diagnosticKey]struct{})
		}
		e.seen[key] = struct{}{}
		e.diags = append(e.diags, d)
	}
}

// RegistryName returns the registry name used for v.
func RegistryName(v render.Variant) string {
	if v == render.TileCard {
		return TileName
	}
	return GridName
}

// NewRegistry returns a registry with the extension already registered.
func NewRegistry(e *Extension) (*preprocess.Registry, error) {
	r := preprocess.NewRegistry()
	if err := e.Register(r); err != nil {
		return nil, err
	}
	return r, nil
}
