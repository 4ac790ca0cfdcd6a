package engine

// Item is one entry of a caller supplied item tree.
type Item struct {
	ID            string
	Label         string
	SecondaryText string
	// Icon is opaque to the engine and handed back to renderers untouched.
	Icon     any
	Folder   bool
	Children []Item
	Disabled bool
	Data     any
}

// Group is a titled run of items. A tree is built either from items or from
// groups, never from both.
type Group struct {
	Title  string
	Items  []Item
	Sticky bool
}

// Node is an item stored in a Tree. Nodes reference each other by arena index,
// so a node never owns its relatives.
type Node struct {
	ID            string
	Label         string
	SecondaryText string
	Icon          any
	Folder        bool
	Disabled      bool
	Data          any

	// Parent is the arena index of the parent node, -1 for top level nodes.
	Parent int
	// Children holds arena indices in sibling order.
	Children []int
	// Group is the index of the owning group, -1 when the tree is not grouped.
	Group int
}

type groupEntry struct {
	title  string
	sticky bool
	roots  []int
}

// Tree is an arena of nodes built once from caller data. It is immutable after
// construction; replacing the data means building a new Tree.
type Tree struct {
	nodes   []Node
	roots   []int
	groups  []groupEntry
	grouped bool
	byID    map[string]int

	duplicates []string
	ignored    []string
}

// NewTree builds an ungrouped tree. Items whose id was already used earlier in
// pre-order are dropped together with their subtree, see [Tree.Duplicates].
func NewTree(items []Item) *Tree {
	t := &Tree{byID: make(map[string]int)}
	t.roots = t.add(items, -1, -1)
	return t
}

// NewGroupedTree builds a tree whose top level is a list of groups.
func NewGroupedTree(groups []Group) *Tree {
	t := &Tree{byID: make(map[string]int), grouped: true}
	t.groups = make([]groupEntry, 0, len(groups))
	for gi, g := range groups {
		t.groups = append(t.groups, groupEntry{
			title:  g.Title,
			sticky: g.Sticky,
			roots:  t.add(g.Items, -1, gi),
		})
	}
	return t
}

func (t *Tree) add(items []Item, parent, group int) []int {
	indices := make([]int, 0, len(items))
	for i := range items {
		item := &items[i]
		if _, ok := t.byID[item.ID]; ok {
			t.duplicates = append(t.duplicates, item.ID)
			continue
		}

		index := len(t.nodes)
		t.nodes = append(t.nodes, Node{
			ID:            item.ID,
			Label:         item.Label,
			SecondaryText: item.SecondaryText,
			Icon:          item.Icon,
			Folder:        item.Folder,
			Disabled:      item.Disabled,
			Data:          item.Data,
			Parent:        parent,
			Group:         group,
		})
		t.byID[item.ID] = index
		indices = append(indices, index)

		if len(item.Children) == 0 {
			continue
		}
		if !item.Folder {
			t.ignored = append(t.ignored, item.ID)
			continue
		}
		children := t.add(item.Children, index, group)
		t.nodes[index].Children = children
	}
	return indices
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Node returns the node at the given arena index, or nil when out of range.
func (t *Tree) Node(index int) *Node {
	if t == nil || index < 0 || index >= len(t.nodes) {
		return nil
	}
	return &t.nodes[index]
}

// Lookup returns the arena index of the node with the given id.
func (t *Tree) Lookup(id string) (int, bool) {
	if t == nil {
		return -1, false
	}
	index, ok := t.byID[id]
	return index, ok
}

// Grouped reports whether the tree was built from groups.
func (t *Tree) Grouped() bool {
	return t != nil && t.grouped
}

// GroupCount returns the number of groups of a grouped tree.
func (t *Tree) GroupCount() int {
	if t == nil {
		return 0
	}
	return len(t.groups)
}

// GroupTitle returns the title of group gi.
func (t *Tree) GroupTitle(gi int) string {
	if t == nil || gi < 0 || gi >= len(t.groups) {
		return ""
	}
	return t.groups[gi].title
}

// GroupSticky reports whether group gi asked for a sticky header.
func (t *Tree) GroupSticky(gi int) bool {
	if t == nil || gi < 0 || gi >= len(t.groups) {
		return false
	}
	return t.groups[gi].sticky
}

// Duplicates returns the ids of items dropped because an earlier item already
// used the same id.
func (t *Tree) Duplicates() []string {
	if t == nil {
		return nil
	}
	return t.duplicates
}

// IgnoredChildren returns the ids of non-folder items that carried children.
// Those children are not part of the tree.
func (t *Tree) IgnoredChildren() []string {
	if t == nil {
		return nil
	}
	return t.ignored
}

// FolderIDs returns the ids of every folder in arena order.
func (t *Tree) FolderIDs() []string {
	if t == nil {
		return nil
	}
	var ids []string
	for i := range t.nodes {
		if t.nodes[i].Folder {
			ids = append(ids, t.nodes[i].ID)
		}
	}
	return ids
}
