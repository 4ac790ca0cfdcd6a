package hlist

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestBoxInnerRect(t *testing.T) {
	b := NewBox()
	b.SetRect(2, 3, 10, 6)
	x, y, w, h := b.GetInnerRect()
	assert.Equal(t, []int{2, 3, 10, 6}, []int{x, y, w, h})

	b.SetBorders(BordersAll).SetBorderPadding(1, 0, 2, 1)
	x, y, w, h = b.GetInnerRect()
	assert.Equal(t, []int{5, 5, 5, 3}, []int{x, y, w, h})

	b.SetRect(0, 0, 1, 1)
	_, _, w, h = b.GetInnerRect()
	assert.Equal(t, 0, w, "never negative")
	assert.Equal(t, 0, h)

	b = NewBox().SetFooter("f")
	b.SetRect(0, 0, 10, 4)
	_, y, _, h = b.GetInnerRect()
	assert.Equal(t, 0, y)
	assert.Equal(t, 3, h, "a footer takes the bottom line")
}

func TestBoxDraw(t *testing.T) {
	screen := newTestScreen(t, 10, 3)
	b := NewBox().SetBorders(BordersAll).SetTitle("hello world").SetTitleAlignment(AlignmentLeft)
	b.SetRect(0, 0, 10, 3)
	b.Draw(screen)

	assert.Equal(t, []string{"┌hello w…┐", "│        │", "└────────┘"}, screenLines(screen))
}

func TestBoxBorderSets(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	b := NewBox().SetBorders(BordersAll).SetBorderSet(BorderSetRound())
	b.SetRect(0, 0, 4, 2)
	b.Draw(screen)
	assert.Equal(t, []string{"╭──╮", "╰──╯"}, screenLines(screen))

	set, ok := ParseBorderSet("double")
	assert.True(t, ok)
	assert.Equal(t, BoxDrawingsDoubleHorizontal, set.Top)
	_, ok = ParseBorderSet("dotted")
	assert.False(t, ok)
}

func TestBoxFocusedBorderStyle(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	focused := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	b := NewBox().SetBorders(BordersAll).SetFocusedBorderStyle(focused)
	b.SetRect(0, 0, 4, 2)

	var calls []string
	b.SetFocusFunc(func() { calls = append(calls, "focus") })
	b.SetBlurFunc(func() { calls = append(calls, "blur") })

	b.Focus(nil)
	b.Draw(screen)
	_, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.ColorGreen, fg)

	b.Blur()
	b.Draw(screen)
	_, _, style, _ = screen.GetContent(0, 0)
	fg, _, _ = style.Decompose()
	assert.Equal(t, Styles.BorderColor, fg)
	assert.Equal(t, []string{"focus", "blur"}, calls)
}

func TestBoxMouseHandler(t *testing.T) {
	b := NewBox()
	b.SetRect(0, 0, 5, 5)
	_, cmd := b.MouseHandler(MouseLeftDown, tcell.NewEventMouse(1, 1, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, SetFocusCommand{Target: b}, cmd)

	_, cmd = b.MouseHandler(MouseLeftDown, tcell.NewEventMouse(9, 9, tcell.ButtonPrimary, tcell.ModNone))
	assert.Nil(t, cmd)
}
