// Package problem turns a directory of problem documents into typed records.
package problem

import (
	"github.com/leonardomso/problemgrid/internal/frontmatter"
	"github.com/leonardomso/problemgrid/internal/natsort"
)

// Header keys recognised in a problem document. Anything else is ignored.
const (
	KeyTitle      = "title"
	KeySource     = "source"
	KeyDifficulty = "difficulty"
	KeyTags       = "tags"
	KeyLink       = "link"
	KeySolution   = "solution"
)

// Problem is one problem document. Records are built fresh for every load and
// are never modified afterwards.
type Problem struct {
	ID         string // file name without extension
	Title      string
	Source     string
	Difficulty string
	Tags       string
	Link       string // external statement URL; empty means none
	Solution   string // solution page override; empty means the default path
	Path       string // document the record was read from
}

// HasLink reports whether the problem has an external statement URL.
func (p Problem) HasLink() bool {
	return p.Link != ""
}

// Defaults are the values used for fields a document does not set.
// The title always falls back to the problem ID.
type Defaults struct {
	Source     string
	Difficulty string
	Tags       string
}

// New builds a Problem from its ID and decoded header.
// Missing or null keys take the value from defaults. A falsy title (missing,
// null, empty, false or zero) falls back to id, and a falsy link means none.
func New(id, path string, meta frontmatter.Meta, defaults Defaults) Problem {
	p := Problem{
		ID:         id,
		Title:      id,
		Source:     defaults.Source,
		Difficulty: defaults.Difficulty,
		Tags:       defaults.Tags,
		Path:       path,
	}

	if meta.Truthy(KeyTitle) {
		p.Title, _ = meta.String(KeyTitle)
	}
	if source, ok := meta.String(KeySource); ok {
		p.Source = source
	}
	if difficulty, ok := meta.String(KeyDifficulty); ok {
		p.Difficulty = difficulty
	}
	if tags, ok := meta.String(KeyTags); ok {
		p.Tags = tags
	}
	if meta.Truthy(KeyLink) {
		p.Link, _ = meta.String(KeyLink)
	}
	if solution, ok := meta.String(KeySolution); ok {
		p.Solution = solution
	}

	return p
}

// SortByID orders problems naturally by ID, so "toi2" comes before "toi10".
func SortByID(problems []Problem) {
	natsort.Sort(problems, func(p Problem) string { return p.ID })
}
