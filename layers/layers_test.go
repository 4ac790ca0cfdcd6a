package layers

import (
	"testing"

	"github.com/ayn2op/hlist"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)
	return screen
}

// focus mimics the application's focus handling.
type focus struct {
	current hlist.Primitive
}

func (f *focus) set(p hlist.Primitive) {
	if f.current != nil {
		f.current.Blur()
	}
	f.current = p
	p.Focus(f.set)
}

func TestLayerOrder(t *testing.T) {
	var changes int
	l := New().SetChangedFunc(func() { changes++ })
	l.AddLayer(hlist.NewBox(), WithName("main"), WithResize(true))
	l.AddLayer(hlist.NewBox(), WithName("help"), WithVisible(false))
	l.AddLayer(hlist.NewBox(), WithName("status"))

	assert.Equal(t, 3, l.LayerCount())
	assert.Equal(t, []string{"status", "help", "main"}, l.LayerNames(false))
	assert.Equal(t, []string{"status", "main"}, l.LayerNames(true))

	l.SendToBack("status")
	assert.Equal(t, []string{"help", "main", "status"}, l.LayerNames(false))
	l.SendToFront("status")
	assert.Equal(t, []string{"status", "help", "main"}, l.LayerNames(false))

	assert.True(t, l.ToggleLayer("help"))
	name, _ := l.FrontLayer()
	assert.Equal(t, "status", name)
	assert.False(t, l.ToggleLayer("help"))

	l.RemoveLayer("status")
	assert.False(t, l.HasLayer("status"))
	assert.Nil(t, l.Layer("status"))
	assert.NotNil(t, l.Layer("main"))
	assert.Equal(t, 8, changes)
}

func TestAddLayerReplacesName(t *testing.T) {
	l := New()
	first, second := hlist.NewBox(), hlist.NewBox()
	l.AddLayer(first, WithName("main"))
	l.AddLayer(second, WithName("main"))
	assert.Equal(t, 1, l.LayerCount())
	assert.Same(t, second, l.Layer("main"))
}

func TestFocusFollowsFrontLayer(t *testing.T) {
	main, dialog := hlist.NewBox(), hlist.NewBox()
	l := New()
	l.AddLayer(main, WithName("main"))
	l.AddLayer(dialog, WithName("dialog"), WithVisible(false))
	status := hlist.NewBox()
	l.AddLayer(status, WithName("status"), WithEnabled(false))

	var f focus
	f.set(l)
	assert.True(t, main.HasFocus())
	assert.False(t, status.HasFocus(), "disabled layers are passed over")
	assert.True(t, l.HasFocus())

	l.ShowLayer("dialog")
	assert.True(t, dialog.HasFocus())
	assert.False(t, main.HasFocus())

	l.HideLayer("dialog")
	assert.True(t, main.HasFocus())
	assert.False(t, dialog.HasFocus())

	l.SetLayerEnabled("main", false)
	assert.False(t, l.LayerEnabled("main"))
	assert.False(t, main.HasFocus())
	assert.True(t, l.HasFocus(), "the container keeps the focus itself")
}

type keyRecorder struct {
	*hlist.Box
	keys []rune
}

func (r *keyRecorder) InputHandler(event *tcell.EventKey) hlist.Command {
	r.keys = append(r.keys, event.Rune())
	return hlist.RedrawCommand{}
}

func TestInputGoesToFocusedLayer(t *testing.T) {
	main := &keyRecorder{Box: hlist.NewBox()}
	dialog := &keyRecorder{Box: hlist.NewBox()}
	l := New()
	l.AddLayer(main, WithName("main"))
	l.AddLayer(dialog, WithName("dialog"), WithVisible(false))
	var f focus
	f.set(l)

	event := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	assert.Equal(t, hlist.RedrawCommand{}, l.InputHandler(event))
	l.ShowLayer("dialog")
	l.InputHandler(event)
	assert.Equal(t, []rune{'x'}, main.keys)
	assert.Equal(t, []rune{'x'}, dialog.keys)
}

func TestMouseBlockedByOverlay(t *testing.T) {
	main, dialog := hlist.NewBox(), hlist.NewBox()
	l := New()
	l.SetRect(0, 0, 20, 10)
	l.AddLayer(main, WithName("main"), WithResize(true))
	l.AddLayer(dialog, WithName("dialog"), WithCentered(6, 2), WithOverlay())
	l.Draw(newScreen(t))

	x, y, w, h := dialog.GetRect()
	assert.Equal(t, []int{7, 4, 6, 2}, []int{x, y, w, h})

	_, cmd := l.MouseHandler(hlist.MouseLeftDown, tcell.NewEventMouse(8, 4, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, hlist.SetFocusCommand{Target: dialog}, cmd)

	_, cmd = l.MouseHandler(hlist.MouseLeftDown, tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, hlist.ConsumeEventCommand{}, cmd, "main is behind the overlay")

	l.HideLayer("dialog")
	_, cmd = l.MouseHandler(hlist.MouseLeftDown, tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, hlist.SetFocusCommand{Target: main}, cmd)

	_, cmd = l.MouseHandler(hlist.MouseLeftDown, tcell.NewEventMouse(30, 30, tcell.ButtonPrimary, tcell.ModNone))
	assert.Nil(t, cmd)
}

func TestOverlayDimsLayersBehind(t *testing.T) {
	screen := newScreen(t)
	main := hlist.NewBox().SetBackgroundColor(tcell.ColorRed)
	dialog := hlist.NewBox().SetBackgroundColor(tcell.ColorGreen)
	l := New()
	l.SetRect(0, 0, 20, 10)
	l.AddLayer(main, WithName("main"), WithResize(true))
	l.AddLayer(dialog, WithName("dialog"), WithCentered(4, 2), WithOverlay())
	l.Draw(screen)

	_, _, style, _ := screen.GetContent(0, 0)
	_, bg, attrs := style.Decompose()
	assert.Equal(t, tcell.ColorRed, bg)
	assert.NotZero(t, attrs&tcell.AttrDim)

	_, _, style, _ = screen.GetContent(9, 4)
	_, bg, attrs = style.Decompose()
	assert.Equal(t, tcell.ColorGreen, bg)
	assert.Zero(t, attrs&tcell.AttrDim)
}

func TestApplyBackgroundStyle(t *testing.T) {
	base := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Italic(true)
	got := applyBackgroundStyle(base, tcell.StyleDefault.Background(tcell.ColorBlack).Bold(true))
	fg, bg, attrs := got.Decompose()
	assert.Equal(t, tcell.ColorWhite, fg)
	assert.Equal(t, tcell.ColorBlack, bg)
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.NotZero(t, attrs&tcell.AttrItalic)
}

func TestSetLayerCentered(t *testing.T) {
	dialog := hlist.NewBox()
	l := New()
	l.SetRect(0, 0, 20, 10)
	l.AddLayer(dialog, WithName("dialog"), WithCentered(4, 4))
	l.SetLayerCentered("dialog", 40, 2)
	l.SetLayerCentered("missing", 1, 1)
	l.Draw(newScreen(t))

	x, y, w, h := dialog.GetRect()
	assert.Equal(t, []int{0, 4, 20, 2}, []int{x, y, w, h}, "clamped to the container")
}
