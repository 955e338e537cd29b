package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonardomso/problemgrid/internal/problem"
)

// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
var ErrUnknownVariant = errors.New("unknown card variant")

// Variant selects the card markup.
type Variant int

const (
	// GridList renders Markdown-in-HTML list cards for a "grid cards" container.
	GridList Variant = iota
	// TileCard renders div-based tiles with a collapsible tags section.
	TileCard
)

// IDPlaceholder is replaced by the problem ID in a solution path template.
const IDPlaceholder = "{id}"

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{GridList, TileCard}
}

// String returns the canonical variant name.
func (v Variant) String() string {
	switch v {
	case GridList:
		return "grid"
	case TileCard:
		return "tile"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Marker returns the literal tag that triggers this variant in a document.
func (v Variant) Marker() string {
	switch v {
	case TileCard:
		return "!problem_all"
	default:
		return "!problemlist"
	}
}

// ContainerClass returns the class attribute of the wrapping div.
func (v Variant) ContainerClass() string {
	switch v {
	case TileCard:
		return "problem-grid"
	default:
		return "grid cards"
	}
}

// ParseVariant resolves a variant by name, alias or marker.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid", "grid-list", "gridlist", "problemlist", "!problemlist":
		return GridList, nil
	case "tile", "tile-card", "tilecard", "problem_all", "!problem_all":
		return TileCard, nil
	default:
		return GridList, fmt.Errorf("%w: %q (valid: grid, tile)", ErrUnknownVariant, s)
	}
}

// Conventions are the per-variant defaults applied while loading and rendering.
type Conventions struct {
	// Defaults for header fields a document leaves out.
	Defaults problem.Defaults

	// SolutionPath is the solution link template; IDPlaceholder is replaced by the ID.
	SolutionPath string

	// SolutionOverride lets a document's "solution" key replace SolutionPath.
	SolutionOverride bool
}

// DefaultConventions returns the conventions each variant has always used.
func DefaultConventions(v Variant) Conventions {
	if v == TileCard {
		return Conventions{
			Defaults:         problem.Defaults{Source: "?", Tags: ""},
			SolutionPath:     "/problems/" + IDPlaceholder,
			SolutionOverride: true,
		}
	}
	return Conventions{
		Defaults:     problem.Defaults{Source: "Unknown", Difficulty: "?"},
		SolutionPath: "/problems/" + IDPlaceholder + "/",
	}
}

// SolutionURL returns the solution link for p.
func (c Conventions) SolutionURL(p problem.Problem) string {
	if c.SolutionOverride && p.Solution != "" {
		return p.Solution
	}
	path := c.SolutionPath
	if path == "" {
		path = "/problems/" + IDPlaceholder
	}
	return strings.ReplaceAll(path, IDPlaceholder, p.ID)
}
