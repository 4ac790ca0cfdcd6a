package engine

type viewport struct {
	size   int
	offset int
}

// pageHeights views the absolute height cache through the current page, so
// index 0 is the first row of the page.
type pageHeights struct {
	c    *HeightCache
	base int
}

func (p pageHeights) Fixed() (int, bool) {
	return p.c.Fixed()
}

func (p pageHeights) Offset(index int) int {
	return p.c.Offset(p.base+index) - p.c.Offset(p.base)
}

func (p pageHeights) IndexAt(y, count int) int {
	if count <= 0 {
		return 0
	}
	y = max(y, 0)
	return p.c.IndexAt(p.c.Offset(p.base)+y, p.base+count) - p.base
}

func (e *Engine) pageView() pageHeights {
	return pageHeights{c: e.heights, base: e.pageBase()}
}

// Heights returns the row height cache.
func (e *Engine) Heights() *HeightCache {
	return e.heights
}

// AutoRowHeight reports whether rows are measured rather than fixed.
func (e *Engine) AutoRowHeight() bool {
	_, fixed := e.heights.Fixed()
	return !fixed
}

// SetRowHeight makes every row height rows tall.
func (e *Engine) SetRowHeight(height int) *Engine {
	if height < minRowHeight {
		e.log.V(1).Info("clamped row height", "requested", height, "used", minRowHeight)
	}
	e.setHeights(NewFixedHeights(height))
	return e
}

// SetAutoRowHeight switches to measured rows, laid out with estimate until
// their measurement is committed.
func (e *Engine) SetAutoRowHeight(estimate int) *Engine {
	e.setHeights(NewDynamicHeights(estimate))
	return e
}

func (e *Engine) setHeights(heights *HeightCache) {
	heights.Resize(len(e.rows))
	e.heights = heights
	e.clampScroll()
}

// Overscan returns the number of extra rows rendered past each viewport edge.
func (e *Engine) Overscan() int {
	return e.overscan
}

// SetOverscan sets the number of extra rows rendered past each viewport edge.
func (e *Engine) SetOverscan(rows int) *Engine {
	e.overscan = max(rows, 0)
	return e
}

// ViewportSize returns the viewport height.
func (e *Engine) ViewportSize() int {
	return e.view.size
}

// SetViewportSize sets the viewport height.
func (e *Engine) SetViewportSize(size int) *Engine {
	e.view.size = max(size, 0)
	e.clampScroll()
	return e
}

// ScrollOffset returns the distance between the top of the page and the top
// of the viewport.
func (e *Engine) ScrollOffset() int {
	return e.view.offset
}

// ScrollTo moves the viewport top to offset, clamped to the content.
func (e *Engine) ScrollTo(offset int) *Engine {
	e.view.offset = offset
	e.clampScroll()
	return e
}

// ScrollBy moves the viewport by delta. Positive values scroll down.
func (e *Engine) ScrollBy(delta int) *Engine {
	return e.ScrollTo(e.view.offset + delta)
}

// ContentHeight returns the height of the current page.
func (e *Engine) ContentHeight() int {
	if !e.paginated {
		return e.heights.Total()
	}
	return e.pageView().Offset(len(e.PageRows()))
}

func (e *Engine) clampScroll() {
	maxOffset := max(e.ContentHeight()-e.view.size, 0)
	e.view.offset = min(max(e.view.offset, 0), maxOffset)
}

// Window returns the rows of the current page to render, as page-relative
// indices.
func (e *Engine) Window() Window {
	return ComputeWindow(e.view.offset, e.view.size, len(e.PageRows()), e.pageView(), e.overscan)
}

// VisibleRows calls fn for every row of the window in order, passing the row
// and its index in the full flattened sequence. It stops when fn returns
// false.
func (e *Engine) VisibleRows(fn func(row FlatRow, absoluteIndex int) bool) {
	rows := e.PageRows()
	base := e.pageBase()
	w := e.Window()
	for i := w.Start; i <= w.End; i++ {
		if !fn(rows[i], base+i) {
			return
		}
	}
}

// RowHeight returns the height used for the row at flat index.
func (e *Engine) RowHeight(index int) int {
	return e.heights.RowHeight(index)
}

// RowOffset returns the top edge of the row at flat index, measured from the
// top of its page.
func (e *Engine) RowOffset(index int) int {
	return e.pageView().Offset(index - e.pageBase())
}

// RowAt returns the flat index of the row drawn at viewport line y.
func (e *Engine) RowAt(y int) (int, bool) {
	rows := e.PageRows()
	if len(rows) == 0 || y < 0 || y >= e.view.size {
		return -1, false
	}
	content := e.view.offset + y
	if content >= e.ContentHeight() {
		return -1, false
	}
	return e.pageBase() + e.pageView().IndexAt(content, len(rows)), true
}

// ScrollToRow scrolls as little as possible to bring the row at flat index
// into view. Rows taller than the viewport are aligned to their top.
func (e *Engine) ScrollToRow(index int) *Engine {
	local := index - e.pageBase()
	if local < 0 || local >= len(e.PageRows()) {
		return e
	}
	top := e.pageView().Offset(local)
	bottom := top + e.heights.RowHeight(index)
	switch {
	case top < e.view.offset:
		e.view.offset = top
	case bottom > e.view.offset+e.view.size:
		e.view.offset = min(bottom-e.view.size, top)
	}
	e.clampScroll()
	return e
}

// CommitHeight records the measured height of the row at flat index. It is
// the second half of the estimate/commit protocol: rows are laid out with
// their estimate, drawn, measured, and committed here.
//
// Late measurements are accepted for any row, visible or not. When the row
// lies above the first visible row the scroll offset absorbs the change, so
// the content on screen stays where it is; rows below the viewport top reflow.
func (e *Engine) CommitHeight(index, height int) bool {
	if index < 0 || index >= len(e.rows) {
		return false
	}

	anchored := false
	if local := index - e.pageBase(); local >= 0 && local < len(e.PageRows()) {
		first := e.pageView().IndexAt(e.view.offset, len(e.PageRows()))
		anchored = local < first
	}

	old := e.heights.RowHeight(index)
	if !e.heights.Commit(index, height) {
		return false
	}
	if anchored {
		e.view.offset += e.heights.RowHeight(index) - old
	}
	e.clampScroll()
	return true
}
