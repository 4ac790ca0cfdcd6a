package hlist

import (
	"fmt"
	"strings"

	"github.com/ayn2op/hlist/engine"
	"github.com/ayn2op/hlist/keybind"
	"github.com/gdamore/tcell/v2"
)

// wheelStep is the number of lines one wheel notch scrolls.
const wheelStep = 3

// measurePasses bounds how often one draw re-measures the window after
// committed heights moved it.
const measurePasses = 3

// TreeListStyles are the styles a TreeList draws rows with. Row styles set
// the background of the whole row; Marker, Checkbox and Secondary only
// contribute their foreground and attributes.
type TreeListStyles struct {
	Normal      tcell.Style
	Cursor      tcell.Style
	Selected    tcell.Style
	Disabled    tcell.Style
	GroupHeader tcell.Style
	Secondary   tcell.Style
	Marker      tcell.Style
	Checkbox    tcell.Style
}

func DefaultTreeListStyles() TreeListStyles {
	return NewTreeListStyles(Styles)
}

// NewTreeListStyles derives list styles from the colors of a theme.
func NewTreeListStyles(theme Theme) TreeListStyles {
	normal := tcell.StyleDefault.Foreground(theme.PrimaryTextColor).Background(theme.PrimitiveBackgroundColor)
	return TreeListStyles{
		Normal:      normal,
		Cursor:      normal.Background(theme.ContrastBackgroundColor),
		Selected:    normal.Background(theme.SelectedBackgroundColor).Bold(true),
		Disabled:    normal.Foreground(theme.SecondaryTextColor).Dim(true),
		GroupHeader: normal.Foreground(theme.TertiaryTextColor).Bold(true),
		Secondary:   tcell.StyleDefault.Foreground(theme.SecondaryTextColor),
		Marker:      tcell.StyleDefault.Foreground(theme.GraphicsColor),
		Checkbox:    tcell.StyleDefault.Foreground(theme.GraphicsColor),
	}
}

// TreeListKeyMap holds the keybinds of a TreeList.
type TreeListKeyMap struct {
	Up         keybind.Keybind
	Down       keybind.Keybind
	ExtendUp   keybind.Keybind
	ExtendDown keybind.Keybind
	PageUp     keybind.Keybind
	PageDown   keybind.Keybind
	Home       keybind.Keybind
	End        keybind.Keybind

	Activate keybind.Keybind
	Check    keybind.Keybind
	Collapse keybind.Keybind
	Expand   keybind.Keybind

	ExpandAll   keybind.Keybind
	CollapseAll keybind.Keybind
	PrevPage    keybind.Keybind
	NextPage    keybind.Keybind
}

func DefaultTreeListKeyMap() TreeListKeyMap {
	return TreeListKeyMap{
		Up:         keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		Down:       keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		ExtendUp:   keybind.NewKeybind(keybind.WithKeys("shift+up", "K"), keybind.WithHelp("shift+↑", "extend up")),
		ExtendDown: keybind.NewKeybind(keybind.WithKeys("shift+down", "J"), keybind.WithHelp("shift+↓", "extend down")),
		PageUp:     keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+b"), keybind.WithHelp("pgup", "scroll up")),
		PageDown:   keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+f"), keybind.WithHelp("pgdn", "scroll down")),
		Home:       keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("g/home", "first")),
		End:        keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("G/end", "last")),

		Activate: keybind.NewKeybind(keybind.WithKeys("enter"), keybind.WithHelp("enter", "open/select")),
		Check:    keybind.NewKeybind(keybind.WithKeys("space"), keybind.WithHelp("space", "toggle")),
		Collapse: keybind.NewKeybind(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "collapse")),
		Expand:   keybind.NewKeybind(keybind.WithKeys("right", "l"), keybind.WithHelp("→/l", "expand")),

		ExpandAll:   keybind.NewKeybind(keybind.WithKeys("*"), keybind.WithHelp("*", "expand all")),
		CollapseAll: keybind.NewKeybind(keybind.WithKeys("-"), keybind.WithHelp("-", "collapse all")),
		PrevPage:    keybind.NewKeybind(keybind.WithKeys("["), keybind.WithHelp("[", "prev page")),
		NextPage:    keybind.NewKeybind(keybind.WithKeys("]"), keybind.WithHelp("]", "next page")),
	}
}

// RowState is the per-row state a RowRenderer styles by.
type RowState struct {
	Cursor   bool
	Selected bool
	Expanded bool
	Focused  bool
}

// RowRenderer builds the content of one row. The line is word-wrapped to the
// list width when rows are taller than one line or measured.
type RowRenderer func(row engine.FlatRow, node *engine.Node, state RowState) Line

// TreeList draws the window of an [engine.Engine] and turns keys and clicks
// into engine transitions.
type TreeList struct {
	*Box

	Styles TreeListStyles
	KeyMap TreeListKeyMap

	engine   *engine.Engine
	renderer RowRenderer

	// cursor is a flat index; cursorID follows the row across re-flattens.
	cursor       int
	cursorID     string
	followCursor bool

	indent         int
	expandedGlyph  string
	collapsedGlyph string
	checkedGlyph   string
	uncheckedGlyph string

	scrollBar         *ScrollBar
	showScrollBar     bool
	draggingScrollBar bool

	pageFooter bool
	hasFooter  bool

	// measuredWidth is the width heights were measured at.
	measuredWidth int

	changed func(row engine.FlatRow)
}

// NewTreeList returns a list drawing e. A nil engine is replaced with an
// empty one.
func NewTreeList(e *engine.Engine) *TreeList {
	if e == nil {
		e = engine.New()
	}
	l := &TreeList{
		Box:            NewBox(),
		Styles:         DefaultTreeListStyles(),
		KeyMap:         DefaultTreeListKeyMap(),
		engine:         e,
		cursor:         -1,
		followCursor:   true,
		indent:         2,
		expandedGlyph:  string(GeometricSmallDownTriangle),
		collapsedGlyph: string(GeometricSmallRightTriangle),
		checkedGlyph:   "[x]",
		uncheckedGlyph: "[ ]",
		scrollBar:      NewScrollBar(),
		showScrollBar:  true,
		pageFooter:     true,
	}
	l.renderer = l.defaultRow
	return l
}

// Engine returns the engine behind the list.
func (l *TreeList) Engine() *engine.Engine {
	return l.engine
}

// SetRowRenderer replaces the default row content. Nil restores the default.
func (l *TreeList) SetRowRenderer(renderer RowRenderer) *TreeList {
	if renderer == nil {
		renderer = l.defaultRow
	}
	l.renderer = renderer
	l.invalidateHeights()
	return l
}

// SetIndent sets the number of cells each depth level is indented by.
func (l *TreeList) SetIndent(indent int) *TreeList {
	l.indent = max(indent, 0)
	l.invalidateHeights()
	return l
}

// SetFolderGlyphs sets the markers drawn in front of expanded and collapsed
// folders. Both should have the same width.
func (l *TreeList) SetFolderGlyphs(expanded, collapsed string) *TreeList {
	l.expandedGlyph, l.collapsedGlyph = expanded, collapsed
	l.invalidateHeights()
	return l
}

// SetCheckboxGlyphs sets the checked and unchecked checkbox markers.
func (l *TreeList) SetCheckboxGlyphs(checked, unchecked string) *TreeList {
	l.checkedGlyph, l.uncheckedGlyph = checked, unchecked
	l.invalidateHeights()
	return l
}

// ScrollBar returns the list's scrollbar for styling.
func (l *TreeList) ScrollBar() *ScrollBar {
	return l.scrollBar
}

// SetShowScrollBar reserves the rightmost column for a scrollbar.
func (l *TreeList) SetShowScrollBar(show bool) *TreeList {
	l.showScrollBar = show
	return l
}

// SetPageFooter controls whether a "page x/y" footer is shown while
// pagination is on.
func (l *TreeList) SetPageFooter(show bool) *TreeList {
	l.pageFooter = show
	return l
}

// SetChangedFunc sets a handler called when the cursor moves to another row.
func (l *TreeList) SetChangedFunc(handler func(row engine.FlatRow)) *TreeList {
	l.changed = handler
	return l
}

// Cursor returns the flat index of the cursor row, or -1 on an empty page.
func (l *TreeList) Cursor() int {
	l.syncCursor()
	return l.cursor
}

// CurrentRow returns the row under the cursor.
func (l *TreeList) CurrentRow() (engine.FlatRow, bool) {
	l.syncCursor()
	return l.engine.Row(l.cursor)
}

// SetCursor moves the cursor to the row at flat index and scrolls it into
// view on the next draw.
func (l *TreeList) SetCursor(index int) *TreeList {
	l.setCursor(index)
	l.syncCursor()
	l.followCursor = true
	return l
}

// SetCursorID moves the cursor to the row with the given id, if it is on the
// current page.
func (l *TreeList) SetCursorID(id string) bool {
	index := l.indexOf(id)
	if index < 0 {
		return false
	}
	lo, hi := l.pageRange()
	if index < lo || index >= hi {
		return false
	}
	l.SetCursor(index)
	return true
}

func (l *TreeList) setCursor(index int) {
	if index == l.cursor {
		return
	}
	l.cursor = index
	row, ok := l.engine.Row(index)
	if !ok {
		l.cursorID = ""
		return
	}
	l.cursorID = row.ID
	if l.changed != nil {
		l.changed(row)
	}
}

// pageRange returns the flat indices [lo, hi) of the current page.
func (l *TreeList) pageRange() (int, int) {
	rows := l.engine.PageRows()
	if len(rows) == 0 {
		return 0, 0
	}
	return rows[0].Index, rows[0].Index + len(rows)
}

func (l *TreeList) indexOf(id string) int {
	for _, row := range l.engine.Rows() {
		if row.ID == id {
			return row.Index
		}
	}
	return -1
}

// syncCursor re-resolves the cursor after the rows changed. A cursor row that
// disappeared into a collapsed folder moves to its nearest visible ancestor.
func (l *TreeList) syncCursor() {
	e := l.engine
	lo, hi := l.pageRange()
	if lo == hi {
		l.cursor = -1
		return
	}

	if l.cursorID != "" {
		if row, ok := e.Row(l.cursor); !ok || row.ID != l.cursorID {
			if index := l.visibleAncestor(l.cursorID); index >= 0 {
				l.setCursor(index)
			}
		}
	}

	switch {
	case l.cursor < lo:
		l.setCursor(lo)
	case l.cursor >= hi:
		l.setCursor(hi - 1)
	}
	if row, _ := e.Row(l.cursor); row.GroupHeader {
		l.step(1)
		if row, _ := e.Row(l.cursor); row.GroupHeader {
			l.step(-1)
		}
	}
	if row, ok := e.Row(l.cursor); ok {
		l.cursorID = row.ID
	}
}

func (l *TreeList) visibleAncestor(id string) int {
	tree := l.engine.Tree()
	i, ok := tree.Lookup(id)
	for ok && i >= 0 {
		if index := l.indexOf(tree.Node(i).ID); index >= 0 {
			return index
		}
		i = tree.Node(i).Parent
	}
	return -1
}

// step moves the cursor by delta selectable rows within the page.
func (l *TreeList) step(delta int) bool {
	lo, hi := l.pageRange()
	dir := 1
	if delta < 0 {
		dir, delta = -1, -delta
	}
	index := l.cursor
	moved := false
	for delta > 0 {
		next := index + dir
		for next >= lo && next < hi {
			if row, _ := l.engine.Row(next); !row.GroupHeader {
				break
			}
			next += dir
		}
		if next < lo || next >= hi {
			break
		}
		index = next
		delta--
		moved = true
	}
	if moved {
		l.setCursor(index)
	}
	return moved
}

func (l *TreeList) invalidateHeights() {
	l.measuredWidth = -1
}

// wraps reports whether rows are wrapped to the list width.
func (l *TreeList) wraps() bool {
	h, fixed := l.engine.Heights().Fixed()
	return !fixed || h > 1
}

func (l *TreeList) rowState(row engine.FlatRow) RowState {
	return RowState{
		Cursor:   row.Index == l.cursor,
		Selected: !row.GroupHeader && l.engine.IsSelected(row.ID),
		Expanded: row.Folder && l.engine.Expansion().Has(row.ID),
		Focused:  l.HasFocus(),
	}
}

func (l *TreeList) rowStyle(row engine.FlatRow, state RowState) tcell.Style {
	switch {
	case state.Cursor:
		return l.Styles.Cursor
	case row.GroupHeader:
		return l.Styles.GroupHeader
	case row.Disabled:
		return l.Styles.Disabled
	case state.Selected:
		return l.Styles.Selected
	}
	return l.Styles.Normal
}

// prefixWidth returns the number of cells in front of a row's checkbox.
func (l *TreeList) prefixWidth(row engine.FlatRow) int {
	return row.Depth*l.indent + TaggedStringWidth(l.collapsedGlyph) + 1
}

func (l *TreeList) defaultRow(row engine.FlatRow, node *engine.Node, state RowState) Line {
	base := l.rowStyle(row, state)
	if row.GroupHeader {
		return Line{}.Append(row.GroupTitle, base)
	}
	_, bg, _ := base.Decompose()

	line := Line{}.Append(strings.Repeat(" ", row.Depth*l.indent), base)
	marker := strings.Repeat(" ", TaggedStringWidth(l.collapsedGlyph))
	if row.Folder {
		marker = l.collapsedGlyph
		if state.Expanded {
			marker = l.expandedGlyph
		}
	}
	line = line.Append(marker, l.Styles.Marker.Background(bg)).Append(" ", base)

	if l.engine.Checkboxes() {
		box := l.uncheckedGlyph
		if state.Selected {
			box = l.checkedGlyph
		}
		line = line.Append(box, l.Styles.Checkbox.Background(bg)).Append(" ", base)
	}

	if node == nil {
		return line.Append(row.ID, base)
	}
	label := node.Label
	if label == "" {
		label = node.ID
	}
	line = line.Append(label, base)
	if node.SecondaryText != "" {
		line = line.Append(" ", base).Append(node.SecondaryText, l.Styles.Secondary.Background(bg))
	}
	return line
}

func (l *TreeList) rowLines(row engine.FlatRow, width int) []Line {
	line := l.renderer(row, l.engine.Node(row), l.rowState(row))
	if !l.wraps() {
		return []Line{line}
	}
	return WrapLine(line, width)
}

// measure commits the height of every row in the window until the window
// stops moving.
func (l *TreeList) measure(width int) {
	e := l.engine
	if !e.AutoRowHeight() {
		return
	}
	for i := 0; i < measurePasses; i++ {
		changed := false
		e.VisibleRows(func(row engine.FlatRow, index int) bool {
			if e.CommitHeight(index, len(l.rowLines(row, width))) {
				changed = true
			}
			return true
		})
		if l.followCursor && l.cursor >= 0 {
			e.ScrollToRow(l.cursor)
		}
		if !changed {
			return
		}
	}
}

func (l *TreeList) updateFooter() {
	e := l.engine
	switch {
	case l.pageFooter && e.Paginated():
		l.SetFooter(fmt.Sprintf("page %d/%d", e.Page(), e.TotalPages()))
		l.hasFooter = true
	case l.hasFooter:
		l.SetFooter("")
		l.hasFooter = false
	}
}

func (l *TreeList) updateKeyStates() {
	e := l.engine
	multi := e.SelectionMode() == engine.SelectionMulti
	l.KeyMap.ExtendUp.SetEnabled(multi)
	l.KeyMap.ExtendDown.SetEnabled(multi)
	l.KeyMap.Check.SetEnabled(e.Checkboxes() || multi)
	l.KeyMap.PrevPage.SetEnabled(e.Paginated() && e.Page() > 1)
	l.KeyMap.NextPage.SetEnabled(e.Paginated() && e.Page() < e.TotalPages())
	hasNodes := e.Tree().Len() > 0
	l.KeyMap.ExpandAll.SetEnabled(hasNodes)
	l.KeyMap.CollapseAll.SetEnabled(hasNodes)
}

// contentRect returns the inner rect without the scrollbar column.
func (l *TreeList) contentRect() (int, int, int, int) {
	x, y, width, height := l.GetInnerRect()
	if l.showScrollBar && width > 1 {
		width--
	}
	return x, y, width, height
}

// Draw draws the rows of the engine's window.
func (l *TreeList) Draw(screen tcell.Screen) {
	l.updateFooter()
	l.updateKeyStates()
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.contentRect()
	if width <= 0 || height <= 0 {
		return
	}

	e := l.engine
	e.SetViewportSize(height)
	if e.AutoRowHeight() && l.measuredWidth != width {
		e.Heights().InvalidateAll()
		e.ScrollBy(0)
	}
	l.measuredWidth = width

	l.syncCursor()
	l.measure(width)
	if l.followCursor && l.cursor >= 0 {
		e.ScrollToRow(l.cursor)
	}

	offset := e.ScrollOffset()
	e.VisibleRows(func(row engine.FlatRow, index int) bool {
		top := e.RowOffset(index) - offset
		if top >= height {
			return false
		}
		rowHeight := e.RowHeight(index)
		style := l.rowStyle(row, l.rowState(row))
		lines := l.rowLines(row, width)
		for i, n := 0, rowHeight; i < n; i++ {
			lineY := top + i
			if lineY < 0 || lineY >= height {
				continue
			}
			fill(screen, x, y+lineY, width, 1, style)
			if i < len(lines) {
				lines[i].Draw(screen, x, y+lineY, width)
			}
		}
		return true
	})

	l.drawStickyHeader(screen, x, y, width)

	if l.showScrollBar {
		innerX, _, innerWidth, _ := l.GetInnerRect()
		l.scrollBar.SetRect(innerX+innerWidth-1, y, 1, height)
		l.scrollBar.SetLengths(ScrollLengths{ContentLen: e.ContentHeight(), ViewportLen: height})
		l.scrollBar.SetOffset(offset)
		l.scrollBar.Draw(screen)
	}
}

// drawStickyHeader pins the header of the group at the viewport top when the
// header itself has scrolled out of view.
func (l *TreeList) drawStickyHeader(screen tcell.Screen, x, y, width int) {
	e := l.engine
	if !e.Tree().Grouped() {
		return
	}
	first, ok := e.RowAt(0)
	if !ok {
		return
	}
	row, _ := e.Row(first)
	if row.Group < 0 || !e.Tree().GroupSticky(row.Group) {
		return
	}
	if row.GroupHeader && e.RowOffset(first) == e.ScrollOffset() {
		return
	}
	title := e.Tree().GroupTitle(row.Group)
	header := engine.FlatRow{
		ID:          engine.GroupHeaderID(title),
		GroupHeader: true,
		GroupTitle:  title,
		Group:       row.Group,
		Node:        -1,
		Index:       -1,
	}
	fill(screen, x, y, width, 1, l.Styles.GroupHeader)
	l.renderer(header, nil, RowState{Focused: l.HasFocus()}).Draw(screen, x, y, width)
}

// InputHandler handles key events.
func (l *TreeList) InputHandler(event *tcell.EventKey) Command {
	l.updateKeyStates()
	l.syncCursor()
	e := l.engine
	km := l.KeyMap

	switch {
	case keybind.Matches(event, km.Up):
		l.step(-1)
	case keybind.Matches(event, km.Down):
		l.step(1)
	case keybind.Matches(event, km.ExtendUp):
		l.extend(-1)
	case keybind.Matches(event, km.ExtendDown):
		l.extend(1)
	case keybind.Matches(event, km.PageUp):
		l.movePage(-1)
	case keybind.Matches(event, km.PageDown):
		l.movePage(1)
	case keybind.Matches(event, km.Home):
		l.home()
	case keybind.Matches(event, km.End):
		l.end()
	case keybind.Matches(event, km.Activate):
		e.Click(l.cursor, 0)
	case keybind.Matches(event, km.Check):
		if e.Checkboxes() {
			e.CheckToggle(l.cursor)
		} else {
			e.Click(l.cursor, engine.ModPlatform)
		}
	case keybind.Matches(event, km.Collapse):
		l.collapse()
	case keybind.Matches(event, km.Expand):
		l.expand()
	case keybind.Matches(event, km.ExpandAll):
		e.ExpandAll()
	case keybind.Matches(event, km.CollapseAll):
		e.CollapseAll()
	case keybind.Matches(event, km.PrevPage):
		e.PrevPage()
	case keybind.Matches(event, km.NextPage):
		e.NextPage()
	default:
		return nil
	}

	l.syncCursor()
	l.followCursor = true
	return RedrawCommand{}
}

// extend moves the cursor and extends the selection from the anchor to it.
func (l *TreeList) extend(delta int) {
	if !l.step(delta) {
		return
	}
	if row, ok := l.engine.Row(l.cursor); ok && !row.Folder {
		l.engine.Click(l.cursor, engine.ModShift)
	}
}

func (l *TreeList) home() {
	lo, hi := l.pageRange()
	if lo == hi {
		return
	}
	l.setCursor(lo)
	if row, _ := l.engine.Row(lo); row.GroupHeader {
		l.step(1)
	}
}

func (l *TreeList) end() {
	lo, hi := l.pageRange()
	if lo == hi {
		return
	}
	l.setCursor(hi - 1)
	if row, _ := l.engine.Row(hi - 1); row.GroupHeader {
		l.step(-1)
	}
}

// movePage scrolls a viewport up or down and keeps the cursor on the same
// screen line.
func (l *TreeList) movePage(dir int) {
	e := l.engine
	size := e.ViewportSize()
	if l.cursor < 0 || size <= 0 {
		return
	}
	line := min(max(e.RowOffset(l.cursor)-e.ScrollOffset(), 0), size-1)
	e.ScrollBy(dir * size)
	index, ok := e.RowAt(line)
	if !ok || index == l.cursor {
		if dir > 0 {
			l.end()
		} else {
			l.home()
		}
		return
	}
	l.setCursor(index)
	if row, _ := e.Row(index); row.GroupHeader {
		l.step(dir)
	}
}

func (l *TreeList) collapse() {
	e := l.engine
	row, ok := e.Row(l.cursor)
	if !ok {
		return
	}
	if row.Folder && e.Expansion().Has(row.ID) {
		e.Toggle(row.ID)
		return
	}
	node := e.Node(row)
	if node == nil || node.Parent < 0 {
		return
	}
	parentID := e.Tree().Node(node.Parent).ID
	lo, _ := l.pageRange()
	for i := l.cursor - 1; i >= lo; i-- {
		if r, _ := e.Row(i); r.ID == parentID {
			l.setCursor(i)
			return
		}
	}
}

func (l *TreeList) expand() {
	e := l.engine
	row, ok := e.Row(l.cursor)
	if !ok || !row.Folder {
		return
	}
	if !e.Expansion().Has(row.ID) {
		e.Toggle(row.ID)
		return
	}
	if next, ok := e.Row(l.cursor + 1); ok && next.Depth > row.Depth {
		l.step(1)
	}
}

// MouseHandler handles clicks on rows, checkboxes and the scrollbar, and
// wheel scrolling.
func (l *TreeList) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	e := l.engine

	if l.draggingScrollBar {
		switch action {
		case MouseMove:
			e.ScrollTo(l.scrollBar.Drag(y))
			l.followCursor = false
			return l, RedrawCommand{}
		case MouseLeftUp:
			l.draggingScrollBar = false
			return nil, RedrawCommand{}
		}
		return l, nil
	}

	if !l.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		cmd := Command(SetFocusCommand{Target: l})
		if l.onScrollBar(x, y) {
			if offset, ok := l.scrollBar.Click(y); ok {
				e.ScrollTo(offset)
				l.followCursor = false
				return nil, AppendCommand(cmd, RedrawCommand{})
			}
			l.draggingScrollBar = true
			return l, cmd
		}
		return nil, cmd
	case MouseLeftClick, MouseLeftDoubleClick:
		if l.onScrollBar(x, y) {
			return nil, nil
		}
		return nil, l.clickRow(x, y, event.Modifiers())
	case MouseScrollUp:
		e.ScrollBy(-wheelStep)
		l.followCursor = false
		return nil, RedrawCommand{}
	case MouseScrollDown:
		e.ScrollBy(wheelStep)
		l.followCursor = false
		return nil, RedrawCommand{}
	}
	return nil, nil
}

func (l *TreeList) onScrollBar(x, y int) bool {
	if !l.showScrollBar {
		return false
	}
	_, _, _, height := l.contentRect()
	sx, sy, _, _ := l.scrollBar.GetRect()
	return x == sx && y >= sy && y < sy+height && l.scrollBar.Visible(height)
}

func (l *TreeList) clickRow(x, y int, mods tcell.ModMask) Command {
	cx, cy, width, _ := l.contentRect()
	if x < cx || x >= cx+width {
		return nil
	}
	e := l.engine
	index, ok := e.RowAt(y - cy)
	if !ok {
		return nil
	}
	row, _ := e.Row(index)
	if !row.GroupHeader {
		l.setCursor(index)
	}
	l.followCursor = false

	if e.Checkboxes() && !row.GroupHeader {
		start := cx + l.prefixWidth(row)
		if x >= start && x < start+TaggedStringWidth(l.checkedGlyph) {
			e.CheckToggle(index)
			return RedrawCommand{}
		}
	}
	e.Click(index, clickModifiers(mods))
	return RedrawCommand{}
}

// clickModifiers maps terminal modifiers onto the state machine's. Ctrl and
// meta both act as the platform modifier.
func clickModifiers(mods tcell.ModMask) engine.Modifiers {
	var m engine.Modifiers
	if mods&(tcell.ModCtrl|tcell.ModMeta) != 0 {
		m |= engine.ModPlatform
	}
	if mods&tcell.ModShift != 0 {
		m |= engine.ModShift
	}
	return m
}

// ShortHelp returns the keybinds shown in the one-line help.
func (l *TreeList) ShortHelp() []keybind.Keybind {
	l.updateKeyStates()
	km := l.KeyMap
	return []keybind.Keybind{km.Up, km.Down, km.Activate, km.Check, km.PrevPage, km.NextPage}
}

// FullHelp returns the keybinds shown in the full help, one column per group.
func (l *TreeList) FullHelp() [][]keybind.Keybind {
	l.updateKeyStates()
	km := l.KeyMap
	return [][]keybind.Keybind{
		{km.Up, km.Down, km.PageUp, km.PageDown, km.Home, km.End},
		{km.Activate, km.Check, km.ExtendUp, km.ExtendDown},
		{km.Expand, km.Collapse, km.ExpandAll, km.CollapseAll},
		{km.PrevPage, km.NextPage},
	}
}

var _ Primitive = &TreeList{}
