package configdomain

import (
	"sort"

	"modulerules.dev/cli/internal/core/facts"
)

// Field names shared by every facts source.
const (
	FieldTargetType  = "target_type"
	FieldLiveCoding  = "live_coding"
	FieldHostVersion = "host_version"
)

// Source priorities; lower wins.
const (
	PriorityFlag    = 1
	PriorityEnv     = 2
	PriorityFile    = 3
	PriorityDefault = 100
)

// Entry represents a single configuration value with provenance and priority.
// Values are kept as the raw strings the source supplied and parsed once all
// sources are merged.
type Entry struct {
	Key        string `json:"key" yaml:"key"`
	Value      string `json:"value" yaml:"value"`
	Source     string `json:"source" yaml:"source"`
	SourcePath string `json:"source_path,omitempty" yaml:"source_path,omitempty"`
	Priority   int    `json:"priority" yaml:"priority"`
}

// Snapshot is a collection of config entries keyed by field name.
type Snapshot map[string]Entry

// Merge merges another snapshot into this one respecting priority
// (lower number indicates higher priority).
func (s Snapshot) Merge(other Snapshot) {
	for k, e := range other {
		if existing, ok := s[k]; !ok || e.Priority <= existing.Priority {
			s[k] = e
		}
	}
}

// Entries returns the entries sorted by key
func (s Snapshot) Entries() []Entry {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, s[k])
	}
	return out
}

// LoadedFacts is the outcome of merging every facts source
type LoadedFacts struct {
	Facts    facts.EnvironmentFacts `json:"facts" yaml:"facts"`
	Snapshot Snapshot               `json:"sources" yaml:"sources"`
}
