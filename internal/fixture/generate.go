package fixture

import (
	"fmt"
	"strings"

	"github.com/ayn2op/hlist/engine"
)

var words = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel",
	"india", "juliett", "kilo", "lima", "mike", "november", "oscar", "papa",
}

// Generate builds a tree with roots top level items. Every item above depth
// is a folder with fanout children, so the tree has
// roots*(1+fanout+...+fanout^(depth-1)) items. Every fifth leaf has a long
// label that wraps in narrow lists and every eleventh leaf is disabled.
func Generate(roots, fanout, depth int) []engine.Item {
	g := generator{fanout: max(fanout, 0), depth: max(depth, 1)}
	items := make([]engine.Item, max(roots, 0))
	for i := range items {
		items[i] = g.item(fmt.Sprint(i), 1)
	}
	return items
}

// GenerateGroups splits Generate's items into groups of groupSize top level
// items each.
func GenerateGroups(roots, fanout, depth, groupSize int) []engine.Group {
	items := Generate(roots, fanout, depth)
	groupSize = max(groupSize, 1)
	var groups []engine.Group
	for start := 0; start < len(items); start += groupSize {
		end := min(start+groupSize, len(items))
		groups = append(groups, engine.Group{
			Title:  fmt.Sprintf("Items %d-%d", start, end-1),
			Items:  items[start:end],
			Sticky: true,
		})
	}
	return groups
}

// Count returns the number of items Generate builds.
func Count(roots, fanout, depth int) int {
	total, level := 0, max(roots, 0)
	for i, n := 0, max(depth, 1); i < n; i++ {
		total += level
		level *= max(fanout, 0)
	}
	return total
}

type generator struct {
	fanout, depth int
	leaves        int
}

func (g *generator) item(id string, level int) engine.Item {
	if level < g.depth && g.fanout > 0 {
		children := make([]engine.Item, g.fanout)
		for i := range children {
			children[i] = g.item(fmt.Sprintf("%s.%d", id, i), level+1)
		}
		return engine.Item{
			ID:            id,
			Label:         "Folder " + id,
			SecondaryText: fmt.Sprintf("%d items", g.fanout),
			Folder:        true,
			Children:      children,
		}
	}

	n := g.leaves
	g.leaves++
	label := "Item " + id
	if n%5 == 4 {
		label += " " + strings.Join(words[n%len(words):], " ")
	}
	return engine.Item{
		ID:       id,
		Label:    label,
		Disabled: n%11 == 10,
	}
}
