package descriptor

// ListChange holds the identifiers added to and removed from one dependency list
type ListChange struct {
	List    string   `json:"list" yaml:"list"`
	Added   []string `json:"added,omitempty" yaml:"added,omitempty"`
	Removed []string `json:"removed,omitempty" yaml:"removed,omitempty"`
}

// Empty reports whether the list is unchanged
func (c ListChange) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}

// Difference describes how one descriptor's dependency lists differ from another's
type Difference struct {
	Changes []ListChange `json:"changes" yaml:"changes"`
}

// Empty reports whether the two descriptors have the same dependency sets
func (d Difference) Empty() bool {
	for _, c := range d.Changes {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// Diff compares the dependency lists of from and to as sets. Order and
// duplicate entries are ignored; only membership changes are reported.
func Diff(from, to ModuleDescriptor) Difference {
	lists := []struct {
		name     string
		from, to []string
	}{
		{"public_dependencies", from.PublicDependencies, to.PublicDependencies},
		{"private_dependencies", from.PrivateDependencies, to.PrivateDependencies},
		{"private_include_path_modules", from.PrivateIncludePathModules, to.PrivateIncludePathModules},
		{"dynamically_loaded_modules", from.DynamicallyLoadedModules, to.DynamicallyLoadedModules},
	}

	diff := Difference{Changes: make([]ListChange, 0, len(lists))}
	for _, l := range lists {
		diff.Changes = append(diff.Changes, ListChange{
			List:    l.name,
			Added:   missingFrom(l.to, l.from),
			Removed: missingFrom(l.from, l.to),
		})
	}
	return diff
}

// missingFrom returns the entries of src absent from other, in src order,
// each reported once
func missingFrom(src, other []string) []string {
	present := make(map[string]struct{}, len(other))
	for _, s := range other {
		present[s] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{})
	for _, s := range src {
		if _, ok := present[s]; ok {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
