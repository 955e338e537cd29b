package preprocess

import (
	"fmt"
	"sort"
	"sync"
)

// entry is a registered preprocessor with its ordering data.
type entry struct {
	name     string
	priority int
	seq      int
	p        Preprocessor
}

// Registry holds named preprocessors and runs them by descending priority.
// Preprocessors with equal priority run in registration order.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	seq     int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: map[string]entry{},
	}
}

// Register adds p under name. Registering an existing name replaces it.
func (r *Registry) Register(name string, priority int, p Preprocessor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.entries[name] = entry{name: name, priority: priority, seq: r.seq, p: p}
}

// Names returns the registered names in execution order.
func (r *Registry) Names() []string {
	ordered := r.ordered()
	names := make([]string, len(ordered))
	for i, e := range ordered {
		names[i] = e.name
	}
	return names
}

// Len returns the number of registered preprocessors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Run passes lines through every preprocessor in execution order.
func (r *Registry) Run(lines []string) ([]string, error) {
	var err error
	for _, e := range r.ordered() {
		lines, err = e.p.Run(lines)
		if err != nil {
			return nil, fmt.Errorf("preprocessor %s: %w", e.name, err)
		}
	}
	return lines, nil
}

// Process runs the registry over a whole document.
func (r *Registry) Process(text string) (string, error) {
	lines, err := r.Run(SplitLines(text))
	if err != nil {
		return "", err
	}
	return JoinLines(lines), nil
}

// ordered returns a snapshot sorted by priority (high first), then registration.
func (r *Registry) ordered() []entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].priority != out[j].priority {
			return out[i].priority > out[j].priority
		}
		return out[i].seq < out[j].seq
	})
	return out
}
