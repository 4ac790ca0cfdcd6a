// Package engine turns a nested, optionally grouped item tree into the flat
// rows a list draws, slices those rows into pages and viewport windows, and
// runs the selection and expansion state machine that drives them.
//
// Invalid input never produces an error: sizes are clamped, stale ids are
// ignored and out of range pages render as empty.
//
// An Engine is not safe for concurrent use. Work done on other goroutines must
// be handed to the goroutine that owns the engine, for example through
// Application.QueueUpdate.
package engine

import "github.com/go-logr/logr"

// DefaultOverscan is the number of rows rendered beyond each viewport edge.
const DefaultOverscan = 3

// Engine owns the projection pipeline (tree, flat rows, page, window) and the
// expansion and selection state of one list.
type Engine struct {
	log logr.Logger

	tree   *Tree
	rows   []FlatRow
	state  State
	policy Policy

	controlledSelection bool

	paginated      bool
	controlledPage bool
	page           int
	pageSize       int

	heights  *HeightCache
	overscan int
	view     viewport

	selectionChanged func(ids []string)
	folderToggled    func(node *Node, expanded bool)
	pageChanged      func(page int)
}

// New returns an engine configured by opts. Without options it holds an empty
// tree with one-row-high rows and no pagination.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:      logr.Discard(),
		tree:     NewTree(nil),
		heights:  NewFixedHeights(minRowHeight),
		overscan: DefaultOverscan,
		page:     1,
		pageSize: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.adoptTree(e.tree)
	return e
}

// SetItems replaces the data with an ungrouped item tree.
func (e *Engine) SetItems(items []Item) *Engine {
	e.adoptTree(NewTree(items))
	return e
}

// SetGroups replaces the data with a grouped item tree.
func (e *Engine) SetGroups(groups []Group) *Engine {
	e.adoptTree(NewGroupedTree(groups))
	return e
}

func (e *Engine) adoptTree(t *Tree) {
	if dups := t.Duplicates(); len(dups) > 0 {
		e.log.Info("dropped items with duplicate ids", "ids", dups)
	}
	if ignored := t.IgnoredChildren(); len(ignored) > 0 {
		e.log.V(1).Info("ignored children of non-folder items", "ids", ignored)
	}

	anchorID, hasAnchor := e.anchorID()
	e.tree = t
	// Expanded ids that are no longer folders would otherwise come back to life
	// when a folder with the same id reappears in some later tree.
	e.state.Expansion = e.state.Expansion.Retain(func(id string) bool {
		i, ok := t.Lookup(id)
		return ok && t.nodes[i].Folder
	})
	e.heights.InvalidateAll()
	e.reflatten()
	e.remapAnchor(anchorID, hasAnchor)
}

func (e *Engine) reflatten() {
	e.rows = e.tree.Flatten(e.state.Expansion)
	if e.heights.Resize(len(e.rows)) {
		e.log.V(2).Info("row count changed", "rows", len(e.rows))
	}
	e.clampScroll()
}

// setExpansion replaces the expansion and re-flattens. Measured heights are
// keyed by position, so they are dropped whenever the set changes, even when
// the row count stays the same.
func (e *Engine) setExpansion(next Expansion) {
	anchorID, hasAnchor := e.anchorID()
	if !e.state.Expansion.Equal(next) {
		e.heights.InvalidateAll()
	}
	e.state.Expansion = next
	e.reflatten()
	e.remapAnchor(anchorID, hasAnchor)
}

// anchorID returns the id of the row the range anchor points at.
func (e *Engine) anchorID() (string, bool) {
	anchor, ok := e.state.Selection.Anchor()
	if !ok {
		return "", false
	}
	row, ok := rowAt(e.rows, anchor)
	if !ok || row.GroupHeader {
		return "", false
	}
	return row.ID, true
}

// remapAnchor moves the range anchor to the current position of the row with
// id. When that row is hidden the anchor moves to its nearest visible
// ancestor, and when the id is gone the anchor is cleared.
func (e *Engine) remapAnchor(id string, ok bool) {
	if !ok {
		return
	}
	index := -1
	for i, found := e.tree.Lookup(id); found; {
		if index = e.rowIndex(e.tree.Node(i).ID); index >= 0 {
			break
		}
		i = e.tree.Node(i).Parent
		found = i >= 0
	}
	e.state.Selection = e.state.Selection.WithAnchor(index)
}

// rowIndex returns the flat index of the row with id, or -1.
func (e *Engine) rowIndex(id string) int {
	for i, row := range e.rows {
		if !row.GroupHeader && row.ID == id {
			return i
		}
	}
	return -1
}

// Tree returns the current item arena.
func (e *Engine) Tree() *Tree {
	return e.tree
}

// Rows returns the full flattened sequence. The slice must not be modified.
func (e *Engine) Rows() []FlatRow {
	return e.rows
}

// Len returns the length of the full flattened sequence.
func (e *Engine) Len() int {
	return len(e.rows)
}

// Row returns the row at flat index.
func (e *Engine) Row(index int) (FlatRow, bool) {
	return rowAt(e.rows, index)
}

// Node resolves the source node of row. Group headers have none.
func (e *Engine) Node(row FlatRow) *Node {
	return e.tree.Node(row.Node)
}

// Expansion returns the expanded folder ids.
func (e *Engine) Expansion() Expansion {
	return e.state.Expansion
}

// SetExpansion replaces the expanded folder ids and re-flattens.
func (e *Engine) SetExpansion(expansion Expansion) *Engine {
	e.setExpansion(expansion)
	return e
}

// Toggle flips the folder with the given id. Unknown ids, leaves and disabled
// folders are ignored and reported as false.
func (e *Engine) Toggle(id string) bool {
	i, ok := e.tree.Lookup(id)
	if !ok {
		e.log.V(1).Info("ignored toggle of unknown id", "id", id)
		return false
	}
	n := e.tree.Node(i)
	if !n.Folder || n.Disabled {
		return false
	}
	e.applyExpansion(e.state.Expansion.Toggle(id), n)
	return true
}

// ExpandAll expands every folder of the tree.
func (e *Engine) ExpandAll() *Engine {
	return e.SetExpansion(NewExpansion(e.tree.FolderIDs()...))
}

// CollapseAll collapses every folder.
func (e *Engine) CollapseAll() *Engine {
	return e.SetExpansion(Expansion{})
}

func (e *Engine) applyExpansion(next Expansion, n *Node) {
	e.setExpansion(next)
	expanded := next.Has(n.ID)
	e.log.V(2).Info("toggled folder", "id", n.ID, "expanded", expanded, "rows", len(e.rows))
	if e.folderToggled != nil {
		e.folderToggled(n, expanded)
	}
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection {
	return e.state.Selection
}

// IsSelected reports whether id is selected.
func (e *Engine) IsSelected(id string) bool {
	return e.state.Selection.Has(id)
}

// SetSelection replaces the selection, anchor included.
func (e *Engine) SetSelection(selection Selection) *Engine {
	e.state.Selection = selection
	return e
}

// SetSelectedIDs replaces the selected ids and keeps the anchor. Callers that
// control the selection feed the ids they received from the selection
// changed handler back through here.
func (e *Engine) SetSelectedIDs(ids ...string) *Engine {
	next := NewSelection(ids...)
	if anchor, ok := e.state.Selection.Anchor(); ok {
		next = next.WithAnchor(anchor)
	}
	e.state.Selection = next
	return e
}

// Click feeds a click on the row at flat index to the state machine and
// applies the result.
func (e *Engine) Click(index int, mods Modifiers) Transition {
	tr := Click(e.state, e.rows, index, mods, e.policy)
	e.apply(tr)
	return tr
}

// CheckToggle feeds a checkbox toggle on the row at flat index to the state
// machine and applies the result.
func (e *Engine) CheckToggle(index int) Transition {
	tr := CheckToggle(e.state, e.rows, index, e.policy)
	e.apply(tr)
	return tr
}

func (e *Engine) apply(tr Transition) {
	switch tr.Action {
	case ActionToggleFolder:
		e.applyExpansion(tr.Next.Expansion, e.tree.Node(tr.Row.Node))
	case ActionSelect:
		e.applySelection(tr.Next.Selection, tr.SelectionChanged)
	}
}

func (e *Engine) applySelection(next Selection, changed bool) {
	if e.controlledSelection {
		// The caller owns the ids; the anchor is still ours to track.
		anchor, ok := next.Anchor()
		if !ok {
			anchor = -1
		}
		e.state.Selection = e.state.Selection.WithAnchor(anchor)
	} else {
		e.state.Selection = next
	}
	if changed && e.selectionChanged != nil {
		e.selectionChanged(next.IDs())
	}
}

// SelectionMode returns how leaf clicks select.
func (e *Engine) SelectionMode() SelectionMode {
	return e.policy.Mode
}

// SetSelectionMode sets how leaf clicks select.
func (e *Engine) SetSelectionMode(mode SelectionMode) *Engine {
	e.policy.Mode = mode
	return e
}

// Checkboxes reports whether checkbox toggles are honoured.
func (e *Engine) Checkboxes() bool {
	return e.policy.Checkboxes
}

// SetCheckboxes enables or disables checkbox toggles.
func (e *Engine) SetCheckboxes(enabled bool) *Engine {
	e.policy.Checkboxes = enabled
	return e
}

// Paginated reports whether pagination is enabled.
func (e *Engine) Paginated() bool {
	return e.paginated
}

// Page returns the current 1-based page.
func (e *Engine) Page() int {
	return e.page
}

// PageSize returns the number of rows per page.
func (e *Engine) PageSize() int {
	return e.pageSize
}

// TotalPages returns the number of pages of the flattened sequence. Without
// pagination everything is on a single page.
func (e *Engine) TotalPages() int {
	if !e.paginated {
		return 1
	}
	return TotalPages(len(e.rows), e.pageSize)
}

// PageRows returns the rows of the current page, which is every row when
// pagination is off. A page beyond TotalPages is empty.
func (e *Engine) PageRows() []FlatRow {
	if !e.paginated {
		return e.rows
	}
	return Paginate(e.rows, e.page, e.pageSize)
}

func (e *Engine) pageBase() int {
	if !e.paginated {
		return 0
	}
	return PageStart(e.page, e.pageSize)
}

// SetPagination enables pagination with the given page size and page.
func (e *Engine) SetPagination(pageSize, page int) *Engine {
	e.paginated = true
	e.SetPageSize(pageSize)
	return e.SetPage(page)
}

// DisablePagination shows every row on a single page.
func (e *Engine) DisablePagination() *Engine {
	e.paginated = false
	e.page = 1
	e.clampScroll()
	return e
}

// SetPageSize changes the page size. The page is left as is even when it ends
// up beyond TotalPages.
func (e *Engine) SetPageSize(pageSize int) *Engine {
	if pageSize < 1 {
		e.log.V(1).Info("clamped page size", "requested", pageSize, "used", clampPageSize(pageSize))
	}
	e.pageSize = clampPageSize(pageSize)
	e.clampScroll()
	return e
}

// SetPage sets the page. It is the authoritative setter used by callers that
// control pagination and does not emit a page change.
func (e *Engine) SetPage(page int) *Engine {
	if page != e.page {
		e.page = page
		e.view.offset = 0
	}
	e.clampScroll()
	return e
}

// RequestPage asks for a page change. Uncontrolled engines switch pages;
// controlled ones only report the request to the page changed handler.
func (e *Engine) RequestPage(page int) bool {
	if !e.paginated || page == e.page {
		return false
	}
	if !e.controlledPage {
		e.SetPage(page)
	}
	e.log.V(2).Info("page requested", "page", page, "controlled", e.controlledPage)
	if e.pageChanged != nil {
		e.pageChanged(page)
	}
	return true
}

// NextPage requests the page after the current one, if there is one.
func (e *Engine) NextPage() bool {
	if e.page >= e.TotalPages() {
		return false
	}
	return e.RequestPage(e.page + 1)
}

// PrevPage requests the page before the current one, if there is one.
func (e *Engine) PrevPage() bool {
	if e.page <= 1 {
		return false
	}
	return e.RequestPage(e.page - 1)
}

// SetSelectionChangedFunc sets the handler called with the selected ids
// whenever a click or checkbox toggle changes them.
func (e *Engine) SetSelectionChangedFunc(handler func(ids []string)) *Engine {
	e.selectionChanged = handler
	return e
}

// SetFolderToggledFunc sets the handler called after a folder was expanded or
// collapsed.
func (e *Engine) SetFolderToggledFunc(handler func(node *Node, expanded bool)) *Engine {
	e.folderToggled = handler
	return e
}

// SetPageChangedFunc sets the handler called when a page change is requested.
func (e *Engine) SetPageChangedFunc(handler func(page int)) *Engine {
	e.pageChanged = handler
	return e
}
