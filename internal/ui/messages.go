package ui

import (
	"github.com/leonardomso/problemgrid/internal/problem"
	"github.com/leonardomso/problemgrid/internal/render"
)

// ProblemsLoadedMsg is sent when the problems directory has been read.
type ProblemsLoadedMsg struct {
	Err         error
	Variant     render.Variant
	Problems    []problem.Problem
	Diagnostics []problem.Diagnostic
}
