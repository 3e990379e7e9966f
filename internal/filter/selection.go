package filter

// ActiveFilter is one rendered fragment held in the selection set. It is a
// value: once added it never mutates, only gets replaced or removed.
type ActiveFilter struct {
	ParamKey string
	Fragment string

	// Source points back at the config that rendered the fragment, for
	// re-rendering builder state. The set does not own the config.
	Source *Config
}

// SelectionSet holds the active filters per endpoint, in insertion order,
// unique by ParamKey. It is owned by a single session and must be mutated
// from one goroutine only; callers in multi-actor environments serialize
// Toggle/Clear per endpoint.
type SelectionSet struct {
	byEndpoint map[string][]ActiveFilter
}

// NewSelectionSet creates an empty selection set.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{byEndpoint: make(map[string][]ActiveFilter)}
}

// Toggle adds, removes, or replaces the active filter for paramKey on the
// given endpoint:
//
//   - no entry for paramKey: insert at the end, report added.
//   - entry with the identical fragment: remove it (the user un-toggled).
//   - entry with a different fragment: replace in place, preserving the
//     entry's position, report added. Live edits after an add re-render as
//     an update, never a stacked duplicate.
func (s *SelectionSet) Toggle(endpointID, paramKey, fragment string, source *Config) bool {
	active := s.byEndpoint[endpointID]

	for i, af := range active {
		if af.ParamKey != paramKey {
			continue
		}
		if af.Fragment == fragment {
			s.byEndpoint[endpointID] = append(active[:i], active[i+1:]...)
			return false
		}
		active[i] = ActiveFilter{ParamKey: paramKey, Fragment: fragment, Source: source}
		return true
	}

	s.byEndpoint[endpointID] = append(active, ActiveFilter{
		ParamKey: paramKey,
		Fragment: fragment,
		Source:   source,
	})
	return true
}

// Clear empties the set for an endpoint. Idempotent.
func (s *SelectionSet) Clear(endpointID string) {
	delete(s.byEndpoint, endpointID)
}

// List returns a snapshot of the endpoint's active filters in insertion
// order. Mutating the snapshot does not affect the set.
func (s *SelectionSet) List(endpointID string) []ActiveFilter {
	active := s.byEndpoint[endpointID]
	out := make([]ActiveFilter, len(active))
	copy(out, active)
	return out
}

// Len reports the number of active filters for an endpoint.
func (s *SelectionSet) Len(endpointID string) int {
	return len(s.byEndpoint[endpointID])
}

// Contains reports whether the endpoint has an active filter for paramKey
// with exactly the given fragment. UIs use this to render toggle state.
func (s *SelectionSet) Contains(endpointID, paramKey, fragment string) bool {
	for _, af := range s.byEndpoint[endpointID] {
		if af.ParamKey == paramKey && af.Fragment == fragment {
			return true
		}
	}
	return false
}
