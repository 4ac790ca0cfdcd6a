package engine

// Window is an inclusive range of row indices to render. End < Start means
// there is nothing to render.
type Window struct {
	Start int
	End   int
}

// Len returns the number of rows in the window.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

// Contains reports whether index lies inside the window.
func (w Window) Contains(index int) bool {
	return index >= w.Start && index <= w.End
}

var emptyWindow = Window{Start: 0, End: -1}

// ComputeWindow returns the rows that intersect the viewport
// [scrollOffset, scrollOffset+viewportSize), widened by overscan rows on both
// sides. With fixed heights this is O(1); otherwise it is proportional to the
// window size once the height prefix is warm.
func ComputeWindow(scrollOffset, viewportSize, rowCount int, heights Heights, overscan int) Window {
	if rowCount <= 0 {
		return emptyWindow
	}
	if heights == nil {
		heights = NewFixedHeights(minRowHeight)
	}
	scrollOffset = max(scrollOffset, 0)
	viewportSize = max(viewportSize, 0)
	overscan = max(overscan, 0)

	if h, ok := heights.Fixed(); ok {
		first := scrollOffset / h
		last := (scrollOffset + viewportSize + h - 1) / h
		end := min(rowCount-1, last+overscan)
		start := min(max(0, first-overscan), end)
		return Window{Start: start, End: end}
	}

	first := heights.IndexAt(scrollOffset, rowCount)
	last := first
	bottom := scrollOffset + viewportSize
	for last < rowCount-1 && heights.Offset(last+1) < bottom {
		last++
	}
	return Window{
		Start: max(0, first-overscan),
		End:   min(rowCount-1, last+overscan),
	}
}
