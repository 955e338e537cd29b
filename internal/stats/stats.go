// Package stats tracks timing and counts for a preprocessing run.
// Loads and renders are accumulated, since every marker in a document
// triggers its own directory scan and render.
package stats

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Stats holds performance metrics for one run.
type Stats struct {
	Start time.Time
	End   time.Time

	// Accumulated phase durations
	LoadTime   time.Duration
	RenderTime time.Duration

	// Counts
	Builds         int // fragments rendered
	Loads          int // directory scans
	ProblemsLoaded int // records across all loads
	Diagnostics    int // recovered per-file errors
	BytesRendered  int

	// Memory stats (captured at end)
	HeapAlloc  uint64
	TotalAlloc uint64
	NumGC      uint32
}

// New creates a new Stats instance.
func New() *Stats {
	return &Stats{}
}

// Begin marks the start of the run.
func (s *Stats) Begin() {
	s.Start = time.Now()
}

// Finish marks the end of the run and captures memory stats.
func (s *Stats) Finish() {
	s.End = time.Now()
	s.captureMemoryStats()
}

// AddLoad records one directory scan.
func (s *Stats) AddLoad(d time.Duration, problems, diagnostics int) {
	s.Loads++
	s.LoadTime += d
	s.ProblemsLoaded += problems
	s.Diagnostics += diagnostics
}

// AddRender records one rendered fragment.
func (s *Stats) AddRender(d time.Duration, bytes int) {
	s.Builds++
	s.RenderTime += d
	s.BytesRendered += bytes
}

// captureMemoryStats reads current memory statistics from runtime.
func (s *Stats) captureMemoryStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.HeapAlloc = m.HeapAlloc
	s.TotalAlloc = m.TotalAlloc
	s.NumGC = m.NumGC
}

// TotalDuration returns the time from Begin to Finish.
func (s *Stats) TotalDuration() time.Duration {
	if s.End.IsZero() || s.Start.IsZero() {
		return 0
	}
	return s.End.Sub(s.Start)
}

// FormatDuration formats a duration for display.
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%.1fs", int(d.Minutes()), d.Seconds()-float64(int(d.Minutes())*60))
}

// FormatBytes formats bytes for human-readable display.
func FormatBytes(bytes uint64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// String returns a formatted string representation of the stats.
func (s *Stats) String() string {
	var b strings.Builder

	total := s.TotalDuration()

	b.WriteString("\n=== Run Statistics ===\n\n")

	b.WriteString("Timing:\n")
	b.WriteString(s.phaseLine("Load problems:", s.LoadTime, total))
	b.WriteString(s.phaseLine("Render cards:", s.RenderTime, total))
	b.WriteString("  ─────────────────────────\n")
	b.WriteString(fmt.Sprintf("  Total:         %8s\n", FormatDuration(total)))

	b.WriteString("\nCounts:\n")
	b.WriteString(fmt.Sprintf("  Directory scans:   %5d\n", s.Loads))
	b.WriteString(fmt.Sprintf("  Problems loaded:   %5d\n", s.ProblemsLoaded))
	b.WriteString(fmt.Sprintf("  Fragments:         %5d\n", s.Builds))
	if s.Diagnostics > 0 {
		b.WriteString(fmt.Sprintf("  Diagnostics:       %5d\n", s.Diagnostics))
	}
	b.WriteString(fmt.Sprintf("  Rendered:      %9s\n", FormatBytes(uint64(s.BytesRendered))))

	b.WriteString("\nMemory:\n")
	b.WriteString(fmt.Sprintf("  Heap in use:   %8s\n", FormatBytes(s.HeapAlloc)))
	b.WriteString(fmt.Sprintf("  Total alloc:   %8s\n", FormatBytes(s.TotalAlloc)))
	b.WriteString(fmt.Sprintf("  GC cycles:     %8d\n", s.NumGC))

	return b.String()
}

func (*Stats) phaseLine(label string, d, total time.Duration) string {
	line := fmt.Sprintf("  %-14s %8s", label, FormatDuration(d))
	if total > 0 {
		line += fmt.Sprintf("  (%4.1f%%)", float64(d)/float64(total)*100)
	}
	return line + "\n"
}

// ToMap returns a map suitable for structured output.
func (s *Stats) ToMap() map[string]any {
	return map[string]any{
		"timing": map[string]any{
			"load_ms":   s.LoadTime.Milliseconds(),
			"render_ms": s.RenderTime.Milliseconds(),
			"total_ms":  s.TotalDuration().Milliseconds(),
		},
		"counts": map[string]any{
			"loads":           s.Loads,
			"problems_loaded": s.ProblemsLoaded,
			"fragments":       s.Builds,
			"diagnostics":     s.Diagnostics,
			"bytes_rendered":  s.BytesRendered,
		},
		"memory": map[string]any{
			"heap_bytes":  s.HeapAlloc,
			"total_bytes": s.TotalAlloc,
			"gc_cycles":   s.NumGC,
		},
	}
}
