// Package scanner lists the problem documents in a directory.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// ErrNotDirectory is returned when the scan root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// DefaultExtensions are the document extensions recognised when none are configured.
var DefaultExtensions = []string{".md", ".markdown", ".mdx"}

// IndexStem is the file stem of the listing page itself, which is never a problem.
const IndexStem = "index"

// Options controls which directory entries are returned.
type Options struct {
	// Extensions to accept, with the leading dot. Case-insensitive.
	// Defaults to DefaultExtensions.
	Extensions []string

	// Include patterns (glob) matched against the file name.
	// If set, only matching files are returned.
	Include []string

	// Exclude patterns (glob) matched against the file name.
	Exclude []string
}

// Entry is one eligible document.
type Entry struct {
	Path string // root joined with Name
	Name string // file name with extension
	Stem string // file name without extension
}

// ListDir returns the eligible documents directly inside root.
// Subdirectories are not descended into. Files named index.<ext> are skipped.
// Entries come back in the order os.ReadDir yields them.
func ListDir(root string, opts Options) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	normalizedExts := make(map[string]bool, len(exts))
	for _, ext := range exts {
		normalizedExts[normalizeExtension(ext)] = true
	}

	include, err := compileGlobs(opts.Include)
	if err != nil {
		return nil, err
	}
	exclude, err := compileGlobs(opts.Exclude)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if d.IsDir() {
			continue
		}

		name := d.Name()
		ext := filepath.Ext(name)
		if !normalizedExts[strings.ToLower(ext)] {
			continue
		}

		stem := strings.TrimSuffix(name, ext)
		if stem == IndexStem {
			continue
		}

		if len(include) > 0 && !matchesAnyGlob(name, include) {
			continue
		}
		if matchesAnyGlob(name, exclude) {
			continue
		}

		entries = append(entries, Entry{
			Path: filepath.Join(root, name),
			Name: name,
			Stem: stem,
		})
	}

	return entries, nil
}

// ValidatePatterns reports the first glob pattern that fails to compile.
func ValidatePatterns(patterns []string) error {
	_, err := compileGlobs(patterns)
	return err
}

// compileGlobs compiles every non-blank pattern.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

// matchesAnyGlob checks if a name matches any of the compiled glob patterns.
func matchesAnyGlob(name string, patterns []glob.Glob) bool {
	for _, g := range patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// normalizeExtension ensures the extension is lowercase and has a leading dot.
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
