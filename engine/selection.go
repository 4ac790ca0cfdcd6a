package engine

import "slices"

// Selection is an ordered set of selected row ids plus the anchor used as the
// origin of range selection. Like [Expansion] it is a value; the zero value is
// an empty selection without an anchor.
//
// Selection is keyed by id, not position, so it survives flattening: an id
// stays selected while a collapsed ancestor hides its row.
type Selection struct {
	order     []string
	set       map[string]struct{}
	anchor    int
	hasAnchor bool
}

// NewSelection returns a selection holding ids in order, without an anchor.
func NewSelection(ids ...string) Selection {
	return Selection{}.Union(ids...)
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s.set[id]
	return ok
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s.order)
}

// IDs returns the selected ids in the order they were selected.
func (s Selection) IDs() []string {
	return slices.Clone(s.order)
}

// Anchor returns the flat index used as the origin of the next range.
func (s Selection) Anchor() (int, bool) {
	return s.anchor, s.hasAnchor
}

// SameIDs reports whether both selections hold the same ids in the same order.
func (s Selection) SameIDs(other Selection) bool {
	return slices.Equal(s.order, other.order)
}

// Only replaces the selection with id and moves the anchor to index.
func (s Selection) Only(id string, index int) Selection {
	return Selection{
		order:     []string{id},
		set:       map[string]struct{}{id: {}},
		anchor:    index,
		hasAnchor: true,
	}
}

// Toggle adds id when absent and removes it otherwise. The anchor is kept.
func (s Selection) Toggle(id string) Selection {
	if !s.Has(id) {
		return s.Union(id)
	}
	next := Selection{
		order:     make([]string, 0, len(s.order)-1),
		set:       make(map[string]struct{}, len(s.set)-1),
		anchor:    s.anchor,
		hasAnchor: s.hasAnchor,
	}
	for _, existing := range s.order {
		if existing == id {
			continue
		}
		next.order = append(next.order, existing)
		next.set[existing] = struct{}{}
	}
	return next
}

// Union adds ids that are not selected yet, keeping the existing order first.
func (s Selection) Union(ids ...string) Selection {
	next := Selection{
		order:     make([]string, len(s.order), len(s.order)+len(ids)),
		set:       make(map[string]struct{}, len(s.set)+len(ids)),
		anchor:    s.anchor,
		hasAnchor: s.hasAnchor,
	}
	copy(next.order, s.order)
	for _, id := range s.order {
		next.set[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := next.set[id]; ok {
			continue
		}
		next.set[id] = struct{}{}
		next.order = append(next.order, id)
	}
	return next
}

// WithAnchor moves the anchor to index. A negative index clears it.
func (s Selection) WithAnchor(index int) Selection {
	next := s
	next.anchor, next.hasAnchor = index, index >= 0
	if !next.hasAnchor {
		next.anchor = 0
	}
	return next
}
