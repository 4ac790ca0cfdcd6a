package hlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScrollMetrics(t *testing.T) {
	tests := []struct {
		name                            string
		cells, content, viewport, offset int
		want                            scrollMetrics
	}{
		{"no track", 0, 100, 10, 0, scrollMetrics{}},
		{"top", 10, 100, 10, 0, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 0, maxOffset: 90}},
		{"middle", 10, 100, 10, 45, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 36, maxOffset: 90}},
		{"bottom", 10, 100, 10, 90, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 72, maxOffset: 90}},
		{"offset clamped", 10, 100, 10, 500, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 72, maxOffset: 90}},
		{"fits", 10, 5, 10, 0, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 80}},
		{"half", 4, 20, 10, 10, scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 16, thumbStart: 16, maxOffset: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeScrollMetrics(tt.cells, tt.content, tt.viewport, tt.offset))
		})
	}
}

func newTestScrollBar(offset int) *ScrollBar {
	s := NewScrollBar()
	s.SetRect(0, 0, 1, 10)
	s.SetLengths(ScrollLengths{ContentLen: 100, ViewportLen: 10})
	s.SetOffset(offset)
	return s
}

func TestScrollBarVisible(t *testing.T) {
	s := NewScrollBar().SetLengths(ScrollLengths{ContentLen: 5, ViewportLen: 10})
	assert.False(t, s.Visible(10), "auto hidden")
	s.SetAutoHide(false)
	assert.True(t, s.Visible(10))
	assert.False(t, s.Visible(0))
}

func TestScrollBarClick(t *testing.T) {
	s := newTestScrollBar(0)

	_, ok := s.Click(0)
	assert.False(t, ok, "thumb")

	offset, ok := s.Click(5)
	assert.True(t, ok)
	assert.Equal(t, 10, offset, "track clicks page by default")

	s.SetOffset(90)
	offset, _ = s.Click(0)
	assert.Equal(t, 80, offset)

	s.SetOffset(0).SetTrackClickBehavior(TrackClickBehaviorJumpToClick)
	offset, _ = s.Click(5)
	assert.Equal(t, 50, offset)

	_, ok = s.Click(20)
	assert.False(t, ok, "outside")
}

func TestScrollBarArrows(t *testing.T) {
	s := newTestScrollBar(20).SetArrows(ScrollBarArrowsBoth).SetScrollStep(3)
	offset, ok := s.Click(0)
	assert.True(t, ok)
	assert.Equal(t, 17, offset)

	offset, _ = s.Click(9)
	assert.Equal(t, 23, offset)
}

func TestScrollBarDrag(t *testing.T) {
	s := newTestScrollBar(0)
	assert.Equal(t, 0, s.Drag(-5))
	assert.Equal(t, 90, s.Drag(9))
	assert.Equal(t, 90, s.Drag(40))
}

func TestScrollBarDraw(t *testing.T) {
	screen := newTestScreen(t, 1, 10)
	s := newTestScrollBar(0)
	s.Draw(screen)

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '█', r)
	r, _, _, _ = screen.GetContent(0, 5)
	assert.Equal(t, ' ', r)

	s.SetOffset(90)
	s.Draw(screen)
	r, _, _, _ = screen.GetContent(0, 9)
	assert.Equal(t, '█', r)
}

func TestParseGlyphSet(t *testing.T) {
	g, ok := ParseGlyphSet("unicode")
	assert.True(t, ok)
	assert.Equal(t, "│", g.TrackVertical)
	_, ok = ParseGlyphSet("fancy")
	assert.False(t, ok)
}
