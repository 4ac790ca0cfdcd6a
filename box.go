package hlist

import (
	"github.com/gdamore/tcell/v2"
)

// Box implements the Primitive interface with an empty background and optional
// elements such as a border, a title and a footer. Box holds no content itself
// but is embedded by the other primitives, which draw within its inner
// rectangle.
type Box struct {
	// The position of the rect.
	x, y, width, height int

	// Border padding.
	paddingTop, paddingBottom, paddingLeft, paddingRight int

	// The box's background color.
	backgroundColor tcell.Color

	// If set to true, the background of this box is not cleared while drawing.
	dontClear bool

	borders            Borders
	borderSet          BorderSet
	borderStyle        tcell.Style
	focusedBorderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	footer      string
	footerStyle tcell.Style

	hasFocus bool

	// Optional callback functions invoked when the primitive receives or loses
	// focus.
	focus, blur func()
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	borderStyle := tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor)
	return &Box{
		width:           15,
		height:          10,
		backgroundColor: Styles.PrimitiveBackgroundColor,

		borderSet:          BorderSetPlain(),
		borderStyle:        borderStyle,
		focusedBorderStyle: borderStyle,

		titleStyle:     tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment: AlignmentCenter,
		footerStyle:    tcell.StyleDefault.Foreground(Styles.TitleColor),
	}
}

// SetBorderPadding sets the size of the borders around the box content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
	return b
}

// GetRect returns the current position of the rectangle, x, y, width, and
// height.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the position of the inner rectangle (x, y, width,
// height), without the border and without any padding. Width and height values
// will clamp to 0 and thus never be negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	x, y, width, height := b.GetRect()

	if b.title != "" || b.borders.Has(BordersTop) {
		y++
		height--
	}
	if b.footer != "" || b.borders.Has(BordersBottom) {
		height--
	}
	if b.borders.Has(BordersLeft) {
		x++
		width--
	}
	if b.borders.Has(BordersRight) {
		width--
	}

	x += b.paddingLeft
	y += b.paddingTop
	width -= b.paddingLeft + b.paddingRight
	height -= b.paddingTop + b.paddingBottom
	return x, y, max(width, 0), max(height, 0)
}

// SetRect sets a new position of the primitive.
func (b *Box) SetRect(x, y, width, height int) {
	b.x, b.y, b.width, b.height = x, y, width, height
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// MouseHandler takes the focus on a left click inside the box.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// InRect returns true if the given coordinate is within the bounds of the box's
// rectangle.
func (b *Box) InRect(x, y int) bool {
	rectX, rectY, width, height := b.GetRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// InInnerRect returns true if the given coordinate is within the bounds of the
// box's inner rectangle (within the border and padding).
func (b *Box) InInnerRect(x, y int) bool {
	rectX, rectY, width, height := b.GetInnerRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// SetBackgroundColor sets the box's background color.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.backgroundColor = color
	b.borderStyle = b.borderStyle.Background(color)
	b.focusedBorderStyle = b.focusedBorderStyle.Background(color)
	return b
}

// GetBackgroundColor returns the box's background color.
func (b *Box) GetBackgroundColor() tcell.Color {
	return b.backgroundColor
}

// SetDontClear keeps whatever is below the box instead of painting its
// background.
func (b *Box) SetDontClear(dontClear bool) *Box {
	b.dontClear = dontClear
	return b
}

func (b *Box) GetBorders() Borders {
	return b.borders
}

// SetBorders sets which borders to draw.
func (b *Box) SetBorders(flag Borders) *Box {
	b.borders = flag
	return b
}

func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	b.borderSet = borderSet
	return b
}

func (b *Box) GetBorderSet() BorderSet {
	return b.borderSet
}

// SetBorderStyle sets the border style used while the box is not focused.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	b.borderStyle = style
	return b
}

// SetFocusedBorderStyle sets the border style used while the box has focus.
func (b *Box) SetFocusedBorderStyle(style tcell.Style) *Box {
	b.focusedBorderStyle = style
	return b
}

func (b *Box) GetTitle() string {
	return b.title
}

func (b *Box) SetTitle(title string) *Box {
	b.title = title
	return b
}

func (b *Box) SetTitleStyle(style tcell.Style) *Box {
	b.titleStyle = style
	return b
}

func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	b.titleAlignment = alignment
	return b
}

func (b *Box) GetFooter() string {
	return b.footer
}

// SetFooter sets the text drawn into the bottom border.
func (b *Box) SetFooter(footer string) *Box {
	b.footer = footer
	return b
}

func (b *Box) SetFooterStyle(style tcell.Style) *Box {
	b.footerStyle = style
	return b
}

// Draw draws this primitive onto the screen.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws this box under the assumption that primitive p is a
// subclass of this box. The border style depends on the subclass's focus.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	if !b.dontClear {
		fill(screen, b.x, b.y, b.width, b.height, tcell.StyleDefault.Background(b.backgroundColor))
	}

	borderStyle := b.borderStyle
	if p.HasFocus() {
		borderStyle = b.focusedBorderStyle
	}
	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		b.drawBorders(screen, borderStyle)
	}

	if b.title != "" {
		b.drawCaption(screen, b.title, b.y, b.titleAlignment, b.titleStyle)
	}
	if b.footer != "" {
		b.drawCaption(screen, b.footer, b.y+b.height-1, AlignmentRight, b.footerStyle)
	}
}

func (b *Box) drawBorders(screen tcell.Screen, style tcell.Style) {
	left, right := b.x, b.x+b.width-1
	top, bottom := b.y, b.y+b.height-1
	set := b.borderSet

	if b.borders.Has(BordersTop) {
		for x := left + 1; x < right; x++ {
			screen.SetContent(x, top, set.Top, nil, style)
		}
	}
	if b.borders.Has(BordersBottom) {
		for x := left + 1; x < right; x++ {
			screen.SetContent(x, bottom, set.Bottom, nil, style)
		}
	}
	if b.borders.Has(BordersLeft) {
		for y := top + 1; y < bottom; y++ {
			screen.SetContent(left, y, set.Left, nil, style)
		}
	}
	if b.borders.Has(BordersRight) {
		for y := top + 1; y < bottom; y++ {
			screen.SetContent(right, y, set.Right, nil, style)
		}
	}

	corner := func(x, y int, flags Borders, r rune) {
		if b.borders&flags == flags {
			screen.SetContent(x, y, r, nil, style)
		}
	}
	corner(left, top, BordersTop|BordersLeft, set.TopLeft)
	corner(right, top, BordersTop|BordersRight, set.TopRight)
	corner(left, bottom, BordersBottom|BordersLeft, set.BottomLeft)
	corner(right, bottom, BordersBottom|BordersRight, set.BottomRight)
}

// drawCaption prints a title or footer into row y, replacing the last visible
// cell with an ellipsis when the text does not fit.
func (b *Box) drawCaption(screen tcell.Screen, text string, y int, alignment Alignment, style tcell.Style) {
	if b.width < 4 {
		return
	}
	start, end, _ := printWithStyle(screen, text, b.x+1, y, 0, b.width-2, alignment, style, true)
	printed := end - start
	if len(text)-printed <= 0 || printed <= 0 {
		return
	}
	xEllipsis := b.x + b.width - 2
	if alignment == AlignmentRight {
		xEllipsis = b.x + 1
	}
	_, _, existing, _ := screen.GetContent(xEllipsis, y)
	fg, _, _ := existing.Decompose()
	Print(screen, string(SemigraphicsHorizontalEllipsis), xEllipsis, y, 1, AlignmentLeft, fg)
}

// SetFocusFunc sets a callback function which is invoked when this primitive
// receives focus. Set to nil to remove the callback function.
func (b *Box) SetFocusFunc(callback func()) *Box {
	b.focus = callback
	return b
}

// SetBlurFunc sets a callback function which is invoked when this primitive
// loses focus. Set to nil to remove the callback function.
func (b *Box) SetBlurFunc(callback func()) *Box {
	b.blur = callback
	return b
}

// Focus is called when this primitive directly receives focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	b.hasFocus = true
	if b.focus != nil {
		b.focus()
	}
}

// Blur is called when this primitive directly loses focus.
func (b *Box) Blur() {
	b.hasFocus = false
	if b.blur != nil {
		b.blur()
	}
}

// HasFocus returns whether or not this primitive has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}
