package engine

import (
	"maps"
	"slices"
)

// Expansion is the set of expanded folder ids. It is a value: every method
// that changes the set returns a new Expansion and leaves the receiver alone.
// The zero value is an empty set.
type Expansion struct {
	ids map[string]struct{}
}

// NewExpansion returns a set holding ids.
func NewExpansion(ids ...string) Expansion {
	return Expansion{}.With(ids...)
}

// Has reports whether id is expanded.
func (e Expansion) Has(id string) bool {
	_, ok := e.ids[id]
	return ok
}

// Len returns the number of expanded ids.
func (e Expansion) Len() int {
	return len(e.ids)
}

// IDs returns the expanded ids in sorted order.
func (e Expansion) IDs() []string {
	var ids []string
	for id := range e.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Equal reports whether both sets hold the same ids.
func (e Expansion) Equal(other Expansion) bool {
	if len(e.ids) != len(other.ids) {
		return false
	}
	for id := range e.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Toggle flips id.
func (e Expansion) Toggle(id string) Expansion {
	if e.Has(id) {
		return e.Without(id)
	}
	return e.With(id)
}

// With adds ids.
func (e Expansion) With(ids ...string) Expansion {
	next := make(map[string]struct{}, len(e.ids)+len(ids))
	maps.Copy(next, e.ids)
	for _, id := range ids {
		next[id] = struct{}{}
	}
	return Expansion{ids: next}
}

// Without removes ids.
func (e Expansion) Without(ids ...string) Expansion {
	next := maps.Clone(e.ids)
	for _, id := range ids {
		delete(next, id)
	}
	return Expansion{ids: next}
}

// Retain keeps the ids for which keep returns true.
func (e Expansion) Retain(keep func(id string) bool) Expansion {
	next := make(map[string]struct{}, len(e.ids))
	for id := range e.ids {
		if keep(id) {
			next[id] = struct{}{}
		}
	}
	return Expansion{ids: next}
}
