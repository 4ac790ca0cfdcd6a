package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenGroups(t *testing.T) {
	tree := NewGroupedTree([]Group{
		{Title: "Pinned", Items: []Item{folder("p", leaf("p1"))}},
		{Title: "Empty"},
		{Title: "Rest", Items: []Item{leaf("r1"), leaf("r2")}},
	})

	rows := tree.Flatten(NewExpansion("p"))
	require.Equal(t,
		[]string{"group-Pinned", "p", "p1", "group-Empty", "group-Rest", "r1", "r2"},
		rowIDs(rows))

	for i, row := range rows {
		assert.Equal(t, i, row.Index)
	}

	header := rows[0]
	assert.True(t, header.GroupHeader)
	assert.False(t, header.Selectable())
	assert.Equal(t, -1, header.Node)
	assert.Equal(t, 0, header.Depth)
	assert.Equal(t, "Pinned", header.GroupTitle)

	assert.Equal(t, "Pinned", rows[2].GroupTitle)
	assert.Equal(t, 1, rows[2].Depth)
	assert.Equal(t, 0, rows[2].Group)
	assert.Equal(t, "Rest", rows[6].GroupTitle)
	assert.Equal(t, 2, rows[6].Group)
}

func TestFlattenGroups_CollapsedFolder(t *testing.T) {
	tree := NewGroupedTree([]Group{{Title: "G", Items: []Item{folder("f", leaf("f1"))}}})
	assert.Equal(t, []string{"group-G", "f"}, rowIDs(tree.Flatten(Expansion{})))
}
