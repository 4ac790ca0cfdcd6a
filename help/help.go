// Package help renders the key bindings of a primitive either as a single
// line or as aligned columns.
package help

import (
	"strings"

	"github.com/ayn2op/hlist"
	"github.com/ayn2op/hlist/keybind"
	"github.com/gdamore/tcell/v2"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

// Help draws the enabled bindings of a KeyMap. Disabled bindings are skipped,
// so the bar follows whatever the key map currently allows.
type Help struct {
	*hlist.Box
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

func New() *Help {
	return &Help{
		Box:            hlist.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       "…",
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

func (h *Help) ShowAll() bool {
	return h.showAll
}

func (h *Help) SetShortSeparator(separator string) *Help {
	h.shortSeparator = separator
	return h
}

func (h *Help) SetFullSeparator(separator string) *Help {
	h.fullSeparator = separator
	return h
}

// SetEllipsis sets the marker appended when bindings had to be left out.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

func (h *Help) SetStyles(styles Styles) *Help {
	h.Styles = styles
	return h
}

// Height returns the number of lines the help needs in its current mode.
func (h *Help) Height(width int) int {
	if h.keyMap == nil {
		return 0
	}
	if !h.showAll {
		return 1
	}
	return len(h.FullLines(width))
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	var lines []hlist.Line
	if h.showAll {
		lines = h.FullLines(width)
	} else {
		lines = []hlist.Line{h.ShortLine(width)}
	}
	for row := 0; row < len(lines) && row < height; row++ {
		lines[row].Draw(screen, x, y+row, width)
	}
}

// ShortLine renders the short help of the key map into at most maxWidth
// cells. A maxWidth of 0 or less means unlimited.
func (h *Help) ShortLine(maxWidth int) hlist.Line {
	if h.keyMap == nil {
		return nil
	}

	var items []hlist.Line
	for _, kb := range h.keyMap.ShortHelp() {
		if !kb.Enabled() {
			continue
		}
		if item := shortItem(kb.Help(), h.Styles); len(item) > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	sep := h.shortSeparator
	if sep == "" {
		sep = " "
	}

	out := append(hlist.Line(nil), items[0]...)
	for _, item := range items[1:] {
		next := out.Width() + hlist.TaggedStringWidth(sep) + item.Width()
		if maxWidth > 0 && next > maxWidth {
			return h.withEllipsis(out, maxWidth)
		}
		out = out.Append(sep, h.Styles.ShortSeparatorStyle)
		for _, segment := range item {
			out = out.Append(segment.Text, segment.Style)
		}
	}
	if maxWidth > 0 && out.Width() > maxWidth {
		return nil
	}
	return out
}

type column struct {
	entries []keybind.Help
	keyW    int
	width   int
}

func columnsOf(groups [][]keybind.Keybind) []column {
	columns := make([]column, 0, len(groups))
	for _, group := range groups {
		var col column
		for _, kb := range group {
			if !kb.Enabled() {
				continue
			}
			help := kb.Help()
			if help.Key == "" && help.Desc == "" {
				continue
			}
			col.entries = append(col.entries, help)
			col.keyW = max(col.keyW, hlist.TaggedStringWidth(help.Key))
		}
		if len(col.entries) == 0 {
			continue
		}
		for _, e := range col.entries {
			w := col.keyW + hlist.TaggedStringWidth(e.Desc)
			if e.Key != "" && e.Desc != "" {
				w++
			}
			col.width = max(col.width, w)
		}
		columns = append(columns, col)
	}
	return columns
}

// FullLines renders the full help as aligned columns. Columns that do not fit
// into maxWidth are left out and an ellipsis marks the first line.
func (h *Help) FullLines(maxWidth int) []hlist.Line {
	if h.keyMap == nil {
		return nil
	}
	columns := columnsOf(h.keyMap.FullHelp())
	if len(columns) == 0 {
		return nil
	}

	sep := h.fullSeparator
	if sep == "" {
		sep = " "
	}
	sepW := hlist.TaggedStringWidth(sep)

	included, total := 0, 0
	for i, col := range columns {
		w := col.width
		if i > 0 {
			w += sepW
		}
		if maxWidth > 0 && total+w > maxWidth {
			break
		}
		included++
		total += w
	}
	if included == 0 {
		return []hlist.Line{{{Text: h.ellipsis, Style: h.Styles.EllipsisStyle}}}
	}
	columns = columns[:included]

	rows := 0
	for _, col := range columns {
		rows = max(rows, len(col.entries))
	}

	lines := make([]hlist.Line, rows)
	for row := range lines {
		var line hlist.Line
		for i, col := range columns {
			if i > 0 {
				line = line.Append(sep, h.Styles.FullSeparatorStyle)
			}
			cell := h.fullCell(col, row)
			// Separators stay aligned when every column but the last is padded.
			if i < len(columns)-1 {
				if pad := col.width - cell.Width(); pad > 0 {
					cell = cell.Append(strings.Repeat(" ", pad), h.Styles.FullDescStyle)
				}
			}
			for _, segment := range cell {
				line = line.Append(segment.Text, segment.Style)
			}
		}
		lines[row] = line
	}

	if included < len(columnsOf(h.keyMap.FullHelp())) {
		lines[0] = h.withEllipsis(lines[0], maxWidth)
	}
	return lines
}

// FullHelpLines returns the full help as plain text.
func (h *Help) FullHelpLines(maxWidth int) []string {
	lines := h.FullLines(maxWidth)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.String()
	}
	return out
}

func (h *Help) fullCell(col column, row int) hlist.Line {
	if row >= len(col.entries) {
		return nil
	}
	e := col.entries[row]
	var cell hlist.Line
	cell = cell.Append(e.Key, h.Styles.FullKeyStyle)
	if pad := col.keyW - hlist.TaggedStringWidth(e.Key); pad > 0 {
		cell = cell.Append(strings.Repeat(" ", pad), h.Styles.FullKeyStyle)
	}
	if e.Key != "" && e.Desc != "" {
		cell = cell.Append(" ", h.Styles.FullDescStyle)
	}
	return cell.Append(e.Desc, h.Styles.FullDescStyle)
}

// withEllipsis appends the ellipsis when it fits completely.
func (h *Help) withEllipsis(line hlist.Line, maxWidth int) hlist.Line {
	if maxWidth <= 0 || h.ellipsis == "" {
		return line
	}
	if line.Width()+1+hlist.TaggedStringWidth(h.ellipsis) > maxWidth {
		return line
	}
	return line.Append(" "+h.ellipsis, h.Styles.EllipsisStyle)
}

func shortItem(help keybind.Help, styles Styles) hlist.Line {
	var item hlist.Line
	item = item.Append(help.Key, styles.ShortKeyStyle)
	if help.Key != "" && help.Desc != "" {
		item = item.Append(" ", styles.ShortDescStyle)
	}
	return item.Append(help.Desc, styles.ShortDescStyle)
}
