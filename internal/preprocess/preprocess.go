// Package preprocess runs line-oriented transforms over a Markdown document
// before it is converted to HTML.
package preprocess

import (
	"fmt"
	"regexp"
	"strings"
)

// Preprocessor transforms the lines of a document.
type Preprocessor interface {
	Run(lines []string) ([]string, error)
}

// Func adapts a plain function to Preprocessor.
type Func func(lines []string) ([]string, error)

// Run implements Preprocessor.
func (f Func) Run(lines []string) ([]string, error) {
	return f(lines)
}

// TagPreprocessor replaces every line containing a marker with a generated fragment.
type TagPreprocessor struct {
	// Pattern is searched for anywhere in each line.
	Pattern *regexp.Regexp

	// Build produces the replacement. It is called once per matching line.
	Build func() (string, error)
}

// NewTagPreprocessor compiles pattern and returns a TagPreprocessor.
func NewTagPreprocessor(pattern string, build func() (string, error)) (*TagPreprocessor, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid marker pattern %q: %w", pattern, err)
	}
	return &TagPreprocessor{Pattern: re, Build: build}, nil
}

// Run implements Preprocessor. A matching line is replaced by exactly one
// element holding the whole fragment, which may itself span several lines.
// Non-matching lines pass through unchanged and in order.
func (p *TagPreprocessor) Run(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if !p.Pattern.MatchString(line) {
			out = append(out, line)
			continue
		}

		fragment, err := p.Build()
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", p.Pattern.String(), err)
		}
		out = append(out, fragment)
	}
	return out, nil
}

// SplitLines splits text into lines on "\n".
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
