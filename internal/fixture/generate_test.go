package fixture

import (
	"testing"

	"github.com/ayn2op/hlist/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func countItems(items []engine.Item) int {
	n := len(items)
	for _, item := range items {
		n += countItems(item.Children)
	}
	return n
}

func TestGenerate(t *testing.T) {
	items := Generate(2, 3, 3)
	require.Len(t, items, 2)
	assert.Equal(t, 2+6+18, countItems(items))
	assert.Equal(t, 26, Count(2, 3, 3))

	assert.Equal(t, "0", items[0].ID)
	assert.True(t, items[0].Folder)
	assert.Equal(t, "0.2", items[0].Children[2].ID)
	assert.Equal(t, "0.2.1", items[0].Children[2].Children[1].ID)
	assert.False(t, items[0].Children[2].Children[1].Folder)

	leaves := items[0].Children[1].Children
	assert.Equal(t, "Item 0.1.1 echo foxtrot golf hotel india juliett kilo lima mike november oscar papa", leaves[1].Label, "fifth leaf")
}

func TestGenerateLarge(t *testing.T) {
	items := Generate(10, 10, 3)
	e := engine.New(engine.WithItems(items))
	assert.Equal(t, 10, e.Len())
	e.ExpandAll()
	assert.Equal(t, Count(10, 10, 3), e.Len())
	assert.Equal(t, 1110, e.Len())
}

func TestGenerateGroups(t *testing.T) {
	groups := GenerateGroups(5, 0, 1, 2)
	require.Len(t, groups, 3)
	assert.Equal(t, "Items 0-1", groups[0].Title)
	assert.Equal(t, "Items 4-4", groups[2].Title)
	assert.Len(t, groups[2].Items, 1)
}

func TestGenerateCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roots := rapid.IntRange(0, 5).Draw(t, "roots")
		fanout := rapid.IntRange(0, 4).Draw(t, "fanout")
		depth := rapid.IntRange(1, 4).Draw(t, "depth")
		items := Generate(roots, fanout, depth)
		if got, want := countItems(items), Count(roots, fanout, depth); got != want {
			t.Fatalf("generated %d items, want %d", got, want)
		}
		seen := map[string]bool{}
		var walk func([]engine.Item)
		walk = func(items []engine.Item) {
			for _, item := range items {
				if seen[item.ID] {
					t.Fatalf("duplicate id %q", item.ID)
				}
				seen[item.ID] = true
				walk(item.Children)
			}
		}
		walk(items)
	})
}
