package engine

// FlatRow is one position of the flattened sequence. Rows are rebuilt on every
// flatten; Node is a weak reference into the Tree arena.
type FlatRow struct {
	ID    string
	Depth int
	// Index is the position in the full flattened sequence.
	Index       int
	GroupHeader bool
	GroupTitle  string
	// Group is the owning group index, -1 for ungrouped trees.
	Group int
	// Node is the arena index of the source node, -1 for group headers.
	Node     int
	Folder   bool
	Disabled bool
}

// Selectable reports whether the row can ever be part of a selection.
func (r FlatRow) Selectable() bool {
	return !r.GroupHeader
}

// Flatten projects the tree onto an ordered sequence of rows. Folders whose id
// is in expanded are followed by their descendants; everything else
// contributes exactly one row.
func (t *Tree) Flatten(expanded Expansion) []FlatRow {
	if t == nil {
		return nil
	}
	if t.grouped {
		return t.flattenGroups(expanded)
	}
	return t.flattenNodes(t.roots, expanded, 0, make([]FlatRow, 0, len(t.roots)))
}

// flattenNodes appends the pre-order projection of ids to rows. Index is the
// length of rows at the time a row is appended, so it stays gap free across
// nested calls and group headers.
func (t *Tree) flattenNodes(ids []int, expanded Expansion, depth int, rows []FlatRow) []FlatRow {
	for _, i := range ids {
		n := &t.nodes[i]
		rows = append(rows, FlatRow{
			ID:       n.ID,
			Depth:    depth,
			Index:    len(rows),
			Group:    n.Group,
			Node:     i,
			Folder:   n.Folder,
			Disabled: n.Disabled,
		})
		if n.Folder && expanded.Has(n.ID) {
			rows = t.flattenNodes(n.Children, expanded, depth+1, rows)
		}
	}
	return rows
}
