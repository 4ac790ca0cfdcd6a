package hlist

import "github.com/gdamore/tcell/v2"

// ScrollBarArrows controls which endcaps are rendered.
type ScrollBarArrows uint8

const (
	ScrollBarArrowsNone ScrollBarArrows = iota
	ScrollBarArrowsStart
	ScrollBarArrowsEnd
	ScrollBarArrowsBoth
)

func (a ScrollBarArrows) hasStart() bool {
	return a == ScrollBarArrowsStart || a == ScrollBarArrowsBoth
}

func (a ScrollBarArrows) hasEnd() bool {
	return a == ScrollBarArrowsEnd || a == ScrollBarArrowsBoth
}

// TrackClickBehavior configures behavior when clicking track cells outside
// the thumb.
type TrackClickBehavior uint8

const (
	TrackClickBehaviorPage TrackClickBehavior = iota
	TrackClickBehaviorJumpToClick
)

// ScrollLengths bundles content and viewport lengths in logical units. For a
// list these are rendered lines, not rows.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

const subcell = 8

// GlyphSet defines vertical track, arrow, and fractional thumb glyphs.
type GlyphSet struct {
	TrackVertical string

	ArrowVerticalStart string
	ArrowVerticalEnd   string

	ThumbVerticalLower [8]string
	ThumbVerticalUpper [8]string
}

var blockLower = [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// MinimalGlyphSet returns the minimal glyph set (space track, fractional thumbs).
func MinimalGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.TrackVertical = " "
	return g
}

// LegacyComputingGlyphSet returns legacy-computing symbols for full 1/8
// fractional fidelity.
func LegacyComputingGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:      "│",
		ArrowVerticalStart: "▲",
		ArrowVerticalEnd:   "▼",
		ThumbVerticalLower: blockLower,
		ThumbVerticalUpper: [8]string{"▔", "\U0001fb82", "\U0001fb83", "▀", "\U0001fb84", "\U0001fb85", "\U0001fb86", "█"},
	}
}

// UnicodeGlyphSet returns a standard-unicode-only approximation set.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:      "│",
		ArrowVerticalStart: "▲",
		ArrowVerticalEnd:   "▼",
		ThumbVerticalLower: blockLower,
		ThumbVerticalUpper: [8]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"},
	}
}

// ParseGlyphSet returns the glyph set with the given name: minimal, legacy or
// unicode.
func ParseGlyphSet(name string) (GlyphSet, bool) {
	switch name {
	case "minimal", "":
		return MinimalGlyphSet(), true
	case "legacy":
		return LegacyComputingGlyphSet(), true
	case "unicode":
		return UnicodeGlyphSet(), true
	}
	return GlyphSet{}, false
}

// ScrollBar renders a vertical scrollbar and translates clicks on it into
// offsets. It does not scroll anything by itself.
type ScrollBar struct {
	*Box

	autoHide    bool
	contentLen  int
	viewportLen int
	offset      int

	trackStyle tcell.Style
	thumbStyle tcell.Style
	arrowStyle tcell.Style

	glyphSet GlyphSet
	arrows   ScrollBarArrows

	trackClickBehavior TrackClickBehavior
	scrollStep         int

	showTrack bool
}

// NewScrollBar returns a new vertical scrollbar.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		Box:                NewBox(),
		autoHide:           true,
		trackStyle:         tcell.StyleDefault.Dim(true),
		thumbStyle:         tcell.StyleDefault,
		arrowStyle:         tcell.StyleDefault.Dim(true),
		glyphSet:           MinimalGlyphSet(),
		trackClickBehavior: TrackClickBehaviorPage,
		scrollStep:         1,
		showTrack:          true,
	}
}

// SetLengths sets content and viewport lengths.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	s.contentLen = max(lengths.ContentLen, 0)
	s.viewportLen = max(lengths.ViewportLen, 0)
	return s
}

// SetOffset sets the logical offset.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	return s
}

func (s *ScrollBar) SetArrows(arrows ScrollBarArrows) *ScrollBar {
	s.arrows = arrows
	return s
}

func (s *ScrollBar) SetTrackClickBehavior(behavior TrackClickBehavior) *ScrollBar {
	s.trackClickBehavior = behavior
	return s
}

// SetScrollStep sets the distance an arrow click scrolls.
func (s *ScrollBar) SetScrollStep(step int) *ScrollBar {
	s.scrollStep = max(step, 1)
	return s
}

// SetAutoHide controls whether the scrollbar is hidden when there is nothing
// to scroll.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	return s
}

func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

// SetTrackGlyph sets the track symbol and visibility.
func (s *ScrollBar) SetTrackGlyph(glyph string, visible bool) *ScrollBar {
	s.glyphSet.TrackVertical = glyph
	s.showTrack = visible
	return s
}

func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	return s
}

func (s *ScrollBar) SetArrowStyle(style tcell.Style) *ScrollBar {
	s.arrowStyle = style
	return s
}

func (s *ScrollBar) trackCells(length int) int {
	if length <= 0 {
		return 0
	}
	arrows := 0
	if s.arrows.hasStart() {
		arrows++
	}
	if s.arrows.hasEnd() {
		arrows++
	}
	return max(length-arrows, 0)
}

func (s *ScrollBar) viewportLength(length int) int {
	if s.viewportLen > 0 {
		return s.viewportLen
	}
	return max(length, 0)
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
	maxOffset  int
}

func (s *ScrollBar) metrics(length int) scrollMetrics {
	return computeScrollMetrics(s.trackCells(length), s.contentLen, s.viewportLength(length), s.offset)
}

// computeScrollMetrics computes the thumb geometry in subcell units so the
// thumb can move in 1/8-cell steps.
func computeScrollMetrics(trackCells, contentLen, viewportLen, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	return scrollMetrics{
		trackCells: trackCells,
		trackLen:   trackLen,
		thumbLen:   thumbLen,
		thumbStart: (thumbTravel * offset) / maxOffset,
		maxOffset:  maxOffset,
	}
}

// Visible reports whether the scrollbar draws anything in a track of the
// given height.
func (s *ScrollBar) Visible(length int) bool {
	m := s.metrics(length)
	if length <= 0 || m.trackLen == 0 || s.contentLen <= 0 {
		return false
	}
	if s.autoHide && m.maxOffset == 0 {
		return false
	}
	return true
}

// cellFill converts the thumb's subcell coverage of one cell into a
// cell-local start and length.
func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (s *ScrollBar) glyphForVertical(start, fillLen int) (string, tcell.Style) {
	if fillLen <= 0 {
		if !s.showTrack {
			return " ", s.trackStyle
		}
		return s.glyphSet.TrackVertical, s.trackStyle
	}
	if fillLen >= subcell {
		return s.glyphSet.ThumbVerticalLower[7], s.thumbStyle
	}
	ix := fillLen - 1
	if start == 0 {
		return s.glyphSet.ThumbVerticalUpper[ix], s.thumbStyle
	}
	return s.glyphSet.ThumbVerticalLower[ix], s.thumbStyle
}

// Click returns the offset that a primary click on screen row y scrolls to.
// Arrows move by the scroll step. Track clicks page or jump depending on the
// track click behavior. It returns false for clicks on the thumb or outside
// the bar.
func (s *ScrollBar) Click(y int) (int, bool) {
	_, top, _, height := s.GetInnerRect()
	if !s.Visible(height) || y < top || y >= top+height {
		return s.offset, false
	}
	m := s.metrics(height)
	index := y - top
	if s.arrows.hasStart() {
		if index == 0 {
			return s.clamp(s.offset-s.scrollStep, m), true
		}
		index--
	}
	if index >= m.trackCells {
		return s.clamp(s.offset+s.scrollStep, m), true
	}

	cellStart, cellEnd := index*subcell, (index+1)*subcell
	switch {
	case cellEnd <= m.thumbStart:
		if s.trackClickBehavior == TrackClickBehaviorPage {
			return s.clamp(s.offset-s.viewportLength(height), m), true
		}
	case cellStart >= m.thumbStart+m.thumbLen:
		if s.trackClickBehavior == TrackClickBehaviorPage {
			return s.clamp(s.offset+s.viewportLength(height), m), true
		}
	default:
		return s.offset, false
	}
	return s.offsetAtCell(index, m), true
}

// Drag returns the offset that centers the thumb on screen row y.
func (s *ScrollBar) Drag(y int) int {
	_, top, _, height := s.GetInnerRect()
	m := s.metrics(height)
	index := y - top
	if s.arrows.hasStart() {
		index--
	}
	return s.offsetAtCell(min(max(index, 0), max(m.trackCells-1, 0)), m)
}

func (s *ScrollBar) offsetAtCell(index int, m scrollMetrics) int {
	travel := m.trackLen - m.thumbLen
	if travel <= 0 {
		return 0
	}
	thumbStart := index*subcell + subcell/2 - m.thumbLen/2
	return s.clamp(thumbStart*m.maxOffset/travel, m)
}

func (s *ScrollBar) clamp(offset int, m scrollMetrics) int {
	return min(max(offset, 0), m.maxOffset)
}

// Draw draws the scrollbar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	x, y, _, height := s.GetInnerRect()
	if !s.Visible(height) {
		return
	}
	m := s.metrics(height)

	row := y
	if s.arrows.hasStart() {
		putGlyph(screen, x, row, s.glyphSet.ArrowVerticalStart, s.arrowStyle)
		row++
	}
	for cell := 0; cell < m.trackCells; cell++ {
		glyph, style := s.glyphForVertical(cellFill(m, cell))
		putGlyph(screen, x, row, glyph, style)
		row++
	}
	if s.arrows.hasEnd() {
		putGlyph(screen, x, row, s.glyphSet.ArrowVerticalEnd, s.arrowStyle)
	}
}

var _ Primitive = &ScrollBar{}
