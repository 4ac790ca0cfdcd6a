package engine

import "sort"

// Heights supplies row geometry to [ComputeWindow]. Heights are measured in
// terminal rows.
type Heights interface {
	// Fixed reports the constant row height when every row has the same height.
	Fixed() (int, bool)
	// Offset returns the top edge of row index: the sum of the heights of the
	// rows before it.
	Offset(index int) int
	// IndexAt returns the row, among the first count rows, that covers y.
	IndexAt(y, count int) int
}

const minRowHeight = 1

func clampHeight(height int) int {
	return max(height, minRowHeight)
}

// HeightCache maps flat row indices to heights. In fixed mode every row has
// the configured height and nothing is stored. In dynamic mode a row reports
// its last committed measurement, or the estimate until one arrives.
//
// Measurements are keyed by position, so they must be dropped whenever
// positions shift; [HeightCache.Resize] does that when the row count changes.
type HeightCache struct {
	fixed    int
	estimate int
	count    int

	measured map[int]int
	// delta is the sum of (measured - estimate) over measured rows.
	delta int
	// prefix[i] is Offset(i) for every i < len(prefix). A commit at index i
	// only invalidates entries after i.
	prefix []int
}

// NewFixedHeights returns a cache in which every row is height rows tall.
func NewFixedHeights(height int) *HeightCache {
	return &HeightCache{fixed: clampHeight(height)}
}

// NewDynamicHeights returns a cache that reports estimate for rows which have
// not been measured yet.
func NewDynamicHeights(estimate int) *HeightCache {
	return &HeightCache{
		estimate: clampHeight(estimate),
		measured: make(map[int]int),
		prefix:   []int{0},
	}
}

// Fixed implements [Heights].
func (c *HeightCache) Fixed() (int, bool) {
	return c.fixed, c.fixed > 0
}

// Estimate returns the height assumed for rows that were never measured. In
// fixed mode it is the fixed height.
func (c *HeightCache) Estimate() int {
	if c.fixed > 0 {
		return c.fixed
	}
	return c.estimate
}

// RowHeight returns the height used to lay out row index.
func (c *HeightCache) RowHeight(index int) int {
	if c.fixed > 0 {
		return c.fixed
	}
	if h, ok := c.measured[index]; ok {
		return h
	}
	return c.estimate
}

// Measured returns the committed measurement of row index, if any.
func (c *HeightCache) Measured(index int) (int, bool) {
	if c.fixed > 0 {
		return 0, false
	}
	h, ok := c.measured[index]
	return h, ok
}

// MeasuredCount returns the number of rows holding a measurement.
func (c *HeightCache) MeasuredCount() int {
	return len(c.measured)
}

// Commit records the measured height of row index and reports whether the
// height used for layout changed. Committing the same value twice is a no-op.
// Fixed caches ignore commits.
func (c *HeightCache) Commit(index, height int) bool {
	if c.fixed > 0 || index < 0 {
		return false
	}
	height = clampHeight(height)
	prev, had := c.measured[index]
	if had && prev == height {
		return false
	}
	if !had {
		prev = c.estimate
	}
	c.measured[index] = height
	c.delta += height - prev
	if prev == height {
		return false
	}
	if len(c.prefix) > index+1 {
		c.prefix = c.prefix[:index+1]
	}
	return true
}

// InvalidateAll drops every measurement.
func (c *HeightCache) InvalidateAll() {
	if c.fixed > 0 {
		return
	}
	clear(c.measured)
	c.delta = 0
	c.prefix = c.prefix[:1]
}

// Resize records the length of the flattened sequence. When it differs from
// the previous length every measurement is dropped, since cached heights at
// shifted positions would size unrelated rows.
func (c *HeightCache) Resize(count int) bool {
	count = max(count, 0)
	if count == c.count {
		return false
	}
	c.count = count
	c.InvalidateAll()
	return true
}

// Len returns the row count last passed to Resize.
func (c *HeightCache) Len() int {
	return c.count
}

// Total returns the summed height of all rows passed to Resize in O(1).
func (c *HeightCache) Total() int {
	if c.fixed > 0 {
		return c.count * c.fixed
	}
	return c.count*c.estimate + c.delta
}

// Offset implements [Heights]. Dynamic caches extend their prefix sums lazily,
// so repeated lookups cost O(1) once computed.
func (c *HeightCache) Offset(index int) int {
	if index <= 0 {
		return 0
	}
	if c.fixed > 0 {
		return index * c.fixed
	}
	for len(c.prefix) <= index {
		last := len(c.prefix) - 1
		c.prefix = append(c.prefix, c.prefix[last]+c.RowHeight(last))
	}
	return c.prefix[index]
}

// IndexAt implements [Heights].
func (c *HeightCache) IndexAt(y, count int) int {
	if count <= 0 || y <= 0 {
		return 0
	}
	if c.fixed > 0 {
		return min(y/c.fixed, count-1)
	}

	// Gallop first so the prefix only grows as far as y reaches.
	hi := 1
	for hi < count && c.Offset(hi) <= y {
		hi *= 2
	}
	hi = min(hi, count)
	k := sort.Search(hi+1, func(k int) bool {
		return c.Offset(k) > y
	})
	return min(max(k-1, 0), count-1)
}

var _ Heights = (*HeightCache)(nil)
