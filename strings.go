package hlist

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Segment is a styled piece of text.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Line is a list of styled segments.
type Line []Segment

// Append adds text to the line, merging it into the last segment when the
// styles match.
func (l Line) Append(text string, style tcell.Style) Line {
	if text == "" {
		return l
	}
	if n := len(l); n > 0 && l[n-1].Style == style {
		l[n-1].Text += text
		return l
	}
	return append(l, Segment{Text: text, Style: style})
}

// Width returns the number of cells the line occupies.
func (l Line) Width() int {
	width := 0
	for _, segment := range l {
		width += TaggedStringWidth(segment.Text)
	}
	return width
}

// String returns the line's text without styles.
func (l Line) String() string {
	var b strings.Builder
	for _, segment := range l {
		b.WriteString(segment.Text)
	}
	return b.String()
}

// Draw prints the line at (x,y) without exceeding maxWidth cells and returns
// the width actually printed.
func (l Line) Draw(screen tcell.Screen, x, y, maxWidth int) int {
	printed := 0
	for _, segment := range l {
		if printed >= maxWidth {
			break
		}
		_, w := PrintWithStyle(screen, segment.Text, x+printed, y, maxWidth-printed, AlignmentLeft, segment.Style)
		printed += w
	}
	return printed
}

// WrapLine breaks a styled line into lines of at most width cells. Breaks
// happen at the last line-break opportunity when there is one, otherwise in
// the middle of a word. Spaces hang past the right edge instead of starting a
// line. An empty line wraps to a single empty line.
func WrapLine(line Line, width int) []Line {
	if width <= 0 {
		return nil
	}

	type cluster struct {
		text      string
		style     tcell.Style
		width     int
		optional  bool
		mandatory bool
	}
	var (
		clusters []cluster
		text     strings.Builder
		ends     []int
	)
	for _, segment := range line {
		text.WriteString(segment.Text)
		ends = append(ends, text.Len())
	}
	var (
		state *stepState
		str   = text.String()
		pos   int
		seg   int
	)
	for len(str) > 0 {
		var c string
		c, str, state = step(str, state)
		for seg < len(ends)-1 && pos >= ends[seg] {
			seg++
		}
		lineBreak, optional := state.LineBreak()
		clusters = append(clusters, cluster{
			text:      c,
			style:     line[seg].Style,
			width:     state.Width(),
			optional:  lineBreak && optional,
			mandatory: lineBreak && !optional,
		})
		pos += state.GrossLength()
	}

	var (
		lines     []Line
		start     int
		lineWidth int
		lastBreak = -1
	)
	emit := func(end int) {
		var l Line
		for _, c := range clusters[start:end] {
			l = l.Append(c.text, c.style)
		}
		lines = append(lines, l)
		start = end
		lineWidth = 0
		lastBreak = -1
	}
	for i, c := range clusters {
		for lineWidth+c.width > width && i > start && c.text != " " {
			end := i
			if lastBreak >= start {
				end = lastBreak + 1
			}
			emit(end)
			for j := start; j < i; j++ {
				lineWidth += clusters[j].width
				if clusters[j].optional {
					lastBreak = j
				}
			}
		}
		lineWidth += c.width
		switch {
		case c.mandatory:
			emit(i + 1)
		case c.optional:
			lastBreak = i
		}
	}
	if start < len(clusters) || len(lines) == 0 {
		emit(len(clusters))
	}
	return lines
}

// stepState represents the current state of the grapheme parser.
type stepState struct {
	unisegState int
	boundaries  int
	grossLength int
}

// LineBreak returns whether the string can be broken into the next line after
// the returned grapheme cluster.
func (s *stepState) LineBreak() (lineBreak, optional bool) {
	switch s.boundaries & uniseg.MaskLine {
	case uniseg.LineCanBreak:
		return true, true
	case uniseg.LineMustBreak:
		return true, false
	}
	return false, false
}

// Width returns the grapheme cluster's width in cells.
func (s *stepState) Width() int {
	return s.boundaries >> uniseg.ShiftWidth
}

// GrossLength returns the grapheme cluster's length in bytes.
func (s *stepState) GrossLength() int {
	return s.grossLength
}

// step iterates over grapheme clusters of a string.
func step(str string, state *stepState) (cluster, rest string, newState *stepState) {
	if state == nil {
		state = &stepState{
			unisegState: -1,
		}
	}
	if len(str) == 0 {
		newState = state
		return
	}

	preState := state.unisegState
	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, preState)
	state.grossLength = len(cluster)
	if rest == "" && !uniseg.HasTrailingLineBreakInString(cluster) {
		state.boundaries &^= uniseg.MaskLine
	}

	newState = state
	return
}

// TaggedStringWidth returns the width of the given string needed to print it on
// screen.
func TaggedStringWidth(text string) (width int) {
	var state *stepState
	for len(text) > 0 {
		_, text, state = step(text, state)
		width += state.Width()
	}
	return
}

// WordWrap splits a text such that each resulting line does not exceed the
// given screen width.
func WordWrap(text string, width int) (lines []string) {
	if width <= 0 {
		return
	}
	for _, line := range WrapLine(Line{{Text: text}}, width) {
		lines = append(lines, strings.TrimRight(line.String(), "\n\r"))
	}
	return
}
