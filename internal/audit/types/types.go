package types

import "sort"

// RawHit is one pattern match of an environment variable reference in one
// file at one line. Hits are never mutated after extraction; the aggregator
// folds all hits with the same name into a single VariableRecord.
type RawHit struct {
	Name     string
	File     string
	Line     int // 1-based; 0 when the source format carries no positions
	Default  *string
	Language string
	Matcher  int // index of the matching rule within its group
}

// VariableRecord is the merged description of one environment variable
// across the whole scanned tree.
type VariableRecord struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Files       []string `json:"files"`
	Occurrences int      `json:"occurrences"`
	Required    bool     `json:"required"`
	Sensitive   bool     `json:"sensitive"`
	Default     *string  `json:"default"`
}

// Stats summarizes a registry for CLI output and renderers.
type Stats struct {
	Total     int
	Required  int
	Sensitive int
}

// Registry is the complete name→VariableRecord mapping produced by one scan.
// It is immutable once built; iteration order is always name-sorted.
type Registry struct {
	records map[string]*VariableRecord
	names   []string
}

// NewRegistry builds a registry from records. Records are keyed by name;
// the caller guarantees one record per name.
func NewRegistry(records []*VariableRecord) *Registry {
	byName := make(map[string]*VariableRecord, len(records))
	names := make([]string, 0, len(records))
	for _, rec := range records {
		byName[rec.Name] = rec
		names = append(names, rec.Name)
	}
	sort.Strings(names)

	return &Registry{records: byName, names: names}
}

func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns all variable names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Registry) Get(name string) (*VariableRecord, bool) {
	rec, ok := r.records[name]
	return rec, ok
}

// Records returns all records in name-sorted order.
func (r *Registry) Records() []*VariableRecord {
	out := make([]*VariableRecord, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.records[name])
	}
	return out
}

func (r *Registry) Stats() Stats {
	stats := Stats{Total: len(r.names)}
	for _, rec := range r.records {
		if rec.Required {
			stats.Required++
		}
		if rec.Sensitive {
			stats.Sensitive++
		}
	}
	return stats
}

// DiffResult compares a registry against an existing documentation artifact.
// Undocumented holds names present in code but missing from the docs; Stale
// holds documented names no longer referenced anywhere (informational only).
type DiffResult struct {
	Undocumented []string
	Stale        []string
	Clean        bool
}

// Warning records a non-fatal extraction problem, such as an unreadable file.
type Warning struct {
	File   string
	Reason string
}
