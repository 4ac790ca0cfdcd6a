package help

import (
	"strings"
	"testing"

	"github.com/ayn2op/hlist/keybind"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKeyMap struct {
	up, down, quit, check keybind.Keybind
}

func newTestKeyMap() testKeyMap {
	return testKeyMap{
		up:    keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		down:  keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		quit:  keybind.NewKeybind(keybind.WithKeys("q"), keybind.WithHelp("q", "quit"), keybind.WithDisabled()),
		check: keybind.NewKeybind(keybind.WithKeys("space"), keybind.WithHelp("space", "check")),
	}
}

func (k testKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.up, k.quit, k.down}
}

func (k testKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{{k.up, k.down, k.quit}, {k.check}}
}

func TestShortLine(t *testing.T) {
	h := New().SetKeyMap(newTestKeyMap())
	assert.Equal(t, "↑/k up • ↓/j down", h.ShortLine(0).String(), "disabled bindings are skipped")
	assert.Equal(t, "↑/k up …", h.ShortLine(12).String())

	h.SetEllipsis("")
	assert.Equal(t, "↑/k up", h.ShortLine(12).String())

	assert.Nil(t, New().ShortLine(10))
}

func TestShortLineStyles(t *testing.T) {
	h := New().SetKeyMap(newTestKeyMap())
	line := h.ShortLine(0)
	require.NotEmpty(t, line)
	assert.Equal(t, "↑/k", line[0].Text)
	assert.Equal(t, h.Styles.ShortKeyStyle, line[0].Style)
	assert.Equal(t, " up", line[1].Text)
	assert.Equal(t, h.Styles.ShortDescStyle, line[1].Style)
}

func TestFullHelpLines(t *testing.T) {
	h := New().SetKeyMap(newTestKeyMap())
	assert.Equal(t, []string{
		"↑/k up      space check",
		"↓/j down    ",
	}, h.FullHelpLines(0))

	assert.Equal(t, []string{"↑/k up …", "↓/j down"}, h.FullHelpLines(10), "columns that do not fit are dropped")
	assert.Equal(t, []string{"…"}, h.FullHelpLines(5))
}

func TestHeight(t *testing.T) {
	h := New()
	assert.Equal(t, 0, h.Height(40))
	h.SetKeyMap(newTestKeyMap())
	assert.Equal(t, 1, h.Height(40))
	h.SetShowAll(true)
	assert.True(t, h.ShowAll())
	assert.Equal(t, 2, h.Height(40))
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(30, 2)

	h := New().SetKeyMap(newTestKeyMap())
	h.SetRect(0, 0, 30, 2)
	h.Draw(screen)

	line := func(y int) string {
		var b strings.Builder
		for x := 0; x < 30; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		return strings.TrimRight(b.String(), " ")
	}
	assert.Equal(t, "↑/k up • ↓/j down", line(0))
	assert.Equal(t, "", line(1))

	h.SetShowAll(true)
	h.Draw(screen)
	assert.Equal(t, "↑/k up      space check", line(0))
	assert.Equal(t, "↓/j down", line(1))
}
