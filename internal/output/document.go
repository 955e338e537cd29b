package output

import "time"

// document is the serialised shape shared by the JSON, YAML and TOML formatters.
type document struct {
	GeneratedAt string            `json:"generated_at"          yaml:"generated_at"          toml:"generated_at"`
	Dir         string            `json:"dir"                   yaml:"dir"                   toml:"dir"`
	Variant     string            `json:"variant"               yaml:"variant"               toml:"variant"`
	Summary     documentSummary   `json:"summary"               yaml:"summary"               toml:"summary"`
	Problems    []documentEntry   `json:"problems"              yaml:"problems"              toml:"problems"`
	Diagnostics []documentWarning `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty" toml:"diagnostics,omitempty"`
	Stats       map[string]any    `json:"stats,omitempty"       yaml:"stats,omitempty"       toml:"stats,omitempty"`
}

type documentSummary struct {
	Problems    int `json:"problems"    yaml:"problems"    toml:"problems"`
	WithLink    int `json:"with_link"   yaml:"with_link"   toml:"with_link"`
	Sources     int `json:"sources"     yaml:"sources"     toml:"sources"`
	Diagnostics int `json:"diagnostics" yaml:"diagnostics" toml:"diagnostics"`
}

type documentEntry struct {
	ID         string `json:"id"                   yaml:"id"                   toml:"id"`
	Title      string `json:"title"                yaml:"title"                toml:"title"`
	Source     string `json:"source"               yaml:"source"               toml:"source"`
	Difficulty string `json:"difficulty,omitempty" yaml:"difficulty,omitempty" toml:"difficulty,omitempty"`
	Tags       string `json:"tags,omitempty"       yaml:"tags,omitempty"       toml:"tags,omitempty"`
	Link       string `json:"link,omitempty"       yaml:"link,omitempty"       toml:"link,omitempty"`
	Solution   string `json:"solution"             yaml:"solution"             toml:"solution"`
	Path       string `json:"path"                 yaml:"path"                 toml:"path"`
}

type documentWarning struct {
	Path  string `json:"path"  yaml:"path"  toml:"path"`
	Kind  string `json:"kind"  yaml:"kind"  toml:"kind"`
	Error string `json:"error" yaml:"error" toml:"error"`
}

func newDocument(report *Report) document {
	s := report.Summary()
	doc := document{
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Dir:         report.Dir,
		Variant:     report.Variant,
		Summary: documentSummary{
			Problems:    s.Problems,
			WithLink:    s.WithLink,
			Sources:     s.Sources,
			Diagnostics: s.Diagnostics,
		},
		Problems: make([]documentEntry, 0, len(report.Entries)),
		Stats:    report.Stats,
	}

	for _, e := range report.Entries {
		doc.Problems = append(doc.Problems, documentEntry(e))
	}

	for _, d := range report.Diagnostics {
		w := documentWarning{Path: d.Path, Kind: d.Kind}
		if d.Err != nil {
			w.Error = d.Err.Error()
		}
		doc.Diagnostics = append(doc.Diagnostics, w)
	}

	return doc
}
