package hlist

import "github.com/gdamore/tcell/v2"

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	ContrastBackgroundColor  tcell.Color // Background color for contrasting elements, e.g. the cursor row.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles.
	GraphicsColor            tcell.Color // Graphics such as folder markers.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text, e.g. item descriptions.
	TertiaryTextColor        tcell.Color // Tertiary text, e.g. group headers.
	InverseTextColor         tcell.Color // Text on primary-colored backgrounds.
	SelectedBackgroundColor  tcell.Color // Background of selected rows.
}

// Styles defines the theme for applications. The default keeps the terminal's
// own background and uses a few basic colors.
var Styles = Theme{
	PrimitiveBackgroundColor: tcell.ColorDefault,
	ContrastBackgroundColor:  tcell.ColorBlue,
	BorderColor:              tcell.ColorWhite,
	TitleColor:               tcell.ColorWhite,
	GraphicsColor:            tcell.ColorGray,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorGray,
	TertiaryTextColor:        tcell.ColorYellow,
	InverseTextColor:         tcell.ColorBlack,
	SelectedBackgroundColor:  tcell.ColorNavy,
}
