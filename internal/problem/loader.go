package problem

import (
	"errors"
	"fmt"
	"os"

	"github.com/leonardomso/problemgrid/internal/frontmatter"
	"github.com/leonardomso/problemgrid/internal/scanner"
)

// ErrProblemsDirNotFound is returned when the problems directory is missing
// or is not a directory.
var ErrProblemsDirNotFound = errors.New("problems directory not found")

// Diagnostic describes a per-file problem that was recovered from.
// The affected record is still produced, with default field values.
type Diagnostic struct {
	Path string
	Kind string // "read" or "header"
	Err  error
}

// Diagnostic kinds.
const (
	DiagnosticRead   = "read"
	DiagnosticHeader = "header"
)

// String returns a one-line description.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s error: %v", d.Path, d.Kind, d.Err)
}

// Loader reads problem records from a directory.
type Loader struct {
	Dir      string
	Scan     scanner.Options
	Defaults Defaults

	// readFile is swapped in tests to simulate unreadable files.
	readFile func(string) ([]byte, error)
}

// NewLoader creates a Loader for dir.
func NewLoader(dir string, scan scanner.Options, defaults Defaults) *Loader {
	return &Loader{
		Dir:      dir,
		Scan:     scan,
		Defaults: defaults,
		readFile: os.ReadFile,
	}
}

// Load scans the directory and returns one record per eligible document, in
// directory order. Unreadable files and malformed headers are recovered: the
// record keeps its defaults and a Diagnostic is returned alongside.
// A missing directory is an error wrapping ErrProblemsDirNotFound.
func (l *Loader) Load() ([]Problem, []Diagnostic, error) {
	entries, err := scanner.ListDir(l.Dir, l.Scan)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, scanner.ErrNotDirectory) {
			return nil, nil, fmt.Errorf("%w: %q", ErrProblemsDirNotFound, l.Dir)
		}
		return nil, nil, fmt.Errorf("listing problems directory %q: %w", l.Dir, err)
	}

	readFile := l.readFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	problems := make([]Problem, 0, len(entries))
	var diags []Diagnostic

	for _, e := range entries {
		meta := frontmatter.Meta{}

		content, err := readFile(e.Path)
		if err != nil {
			diags = append(diags, Diagnostic{Path: e.Path, Kind: DiagnosticRead, Err: err})
		} else if parsed, err := frontmatter.Read(content); err != nil {
			diags = append(diags, Diagnostic{Path: e.Path, Kind: DiagnosticHeader, Err: err})
		} else {
			meta = parsed
		}

		problems = append(problems, New(e.Stem, e.Path, meta, l.Defaults))
	}

	return problems, diags, nil
}

// LoadSorted is Load followed by SortByID.
func (l *Loader) LoadSorted() ([]Problem, []Diagnostic, error) {
	problems, diags, err := l.Load()
	if err != nil {
		return nil, nil, err
	}
	SortByID(problems)
	return problems, diags, nil
}
