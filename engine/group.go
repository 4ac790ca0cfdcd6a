package engine

// GroupHeaderID returns the synthetic row id used for a group's header.
func GroupHeaderID(title string) string {
	return "group-" + title
}

func (t *Tree) flattenGroups(expanded Expansion) []FlatRow {
	rows := make([]FlatRow, 0, len(t.groups)+len(t.nodes))
	for gi, g := range t.groups {
		rows = append(rows, FlatRow{
			ID:          GroupHeaderID(g.title),
			Index:       len(rows),
			GroupHeader: true,
			GroupTitle:  g.title,
			Group:       gi,
			Node:        -1,
		})
		start := len(rows)
		rows = t.flattenNodes(g.roots, expanded, 0, rows)
		for i := start; i < len(rows); i++ {
			rows[i].GroupTitle = g.title
		}
	}
	return rows
}
