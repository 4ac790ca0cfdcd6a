package help

import "github.com/gdamore/tcell/v2"

type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles dims keys and separators and leaves descriptions in the
// terminal's default style.
func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Dim(true)
	return Styles{
		ShortKeyStyle:       dim,
		ShortDescStyle:      tcell.StyleDefault,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        dim,
		FullDescStyle:       tcell.StyleDefault,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}
