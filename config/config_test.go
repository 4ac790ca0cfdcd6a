package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayn2op/hlist"
	"github.com/ayn2op/hlist/engine"
	"github.com/ayn2op/hlist/help"
	"github.com/ayn2op/hlist/keybind"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, RowHeight{Lines: 1}, cfg.List.RowHeight)
	assert.Equal(t, 3, cfg.List.Overscan)
	assert.Equal(t, "single", cfg.List.Selection)
	assert.Zero(t, cfg.List.PageSize)
	assert.Equal(t, " • ", cfg.Help.ShortSeparator)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/hlist", ConfigDir())
	assert.Equal(t, "/tmp/xdg/hlist/config.yaml", ConfigPath())
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "hlist"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hlist", "config.yaml"), []byte("list:\n  page_size: 7\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.List.PageSize)
}

func TestLoadFrom_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
list:
  row_height: auto
  estimated_row_height: 2
  overscan: 5
  page_size: 50
  selection: Multi
  checkboxes: true
keys:
  down: [ctrl+n, j]
theme:
  cursor: red
`)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, RowHeight{Auto: true}, cfg.List.RowHeight)
	assert.Equal(t, 2, cfg.List.EstimatedRowHeight)
	assert.Equal(t, 5, cfg.List.Overscan)
	assert.Equal(t, 50, cfg.List.PageSize)
	assert.Equal(t, "multi", cfg.List.Selection)
	assert.True(t, cfg.List.Checkboxes)
	assert.Equal(t, []string{"ctrl+n", "j"}, cfg.Keys["down"])
	assert.Equal(t, "red", cfg.Theme.Cursor)
	assert.Equal(t, "round", cfg.List.Border, "unset fields keep their defaults")
}

func TestLoadFrom_Normalizes(t *testing.T) {
	path := writeConfig(t, `
list:
  row_height: 0
  estimated_row_height: -1
  overscan: -2
  page_size: -10
  selection: sometimes
`)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, RowHeight{Lines: 1}, cfg.List.RowHeight)
	assert.Equal(t, 1, cfg.List.EstimatedRowHeight)
	assert.Zero(t, cfg.List.Overscan)
	assert.Zero(t, cfg.List.PageSize)
	assert.Equal(t, "single", cfg.List.Selection)
}

func TestLoadFrom_Malformed(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, "list: [unclosed"))
	assert.ErrorContains(t, err, "parsing config")

	_, err = LoadFrom(writeConfig(t, "list:\n  row_height: tall\n"))
	assert.ErrorContains(t, err, "row_height")
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.List.RowHeight = RowHeight{Auto: true}
	cfg.List.PageSize = 20
	cfg.Keys = map[string][]string{"next_page": {"n"}}
	require.NoError(t, SaveTo(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "row_height: auto")

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, Save(DefaultConfig()))
	assert.FileExists(t, filepath.Join(dir, "hlist", "config.yaml"))
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultConfig().List
	cfg.Selection = "multi"
	cfg.Checkboxes = true
	cfg.PageSize = 10
	cfg.Overscan = 1

	e := engine.New(cfg.EngineOptions()...)
	assert.Equal(t, engine.SelectionMulti, e.SelectionMode())
	assert.True(t, e.Checkboxes())
	assert.True(t, e.Paginated())
	assert.Equal(t, 10, e.PageSize())
	assert.Equal(t, 1, e.Overscan())
	assert.False(t, e.AutoRowHeight())

	cfg.RowHeight = RowHeight{Auto: true}
	cfg.PageSize = 0
	e = engine.New(cfg.EngineOptions()...)
	assert.True(t, e.AutoRowHeight())
	assert.False(t, e.Paginated())
}

func TestApply(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keys = map[string][]string{
		"down":    {"ctrl+n"},
		"sideway": {"x"},
	}
	cfg.List.ScrollBar = "none"
	cfg.Theme.Cursor = "red"

	l := hlist.NewTreeList(engine.New())
	err := cfg.Apply(l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown key action "sideway"`)

	assert.Equal(t, []string{"ctrl+n"}, l.KeyMap.Down.Keys())
	assert.Equal(t, "ctrl+n", l.KeyMap.Down.Help().Key)
	assert.Equal(t, hlist.BordersAll, l.GetBorders())
	assert.Equal(t, hlist.BorderSetRound(), l.GetBorderSet())

	_, bg, _ := l.Styles.Cursor.Decompose()
	assert.Equal(t, tcell.ColorRed, bg)
	assert.Equal(t, tcell.ColorBlue, hlist.Styles.ContrastBackgroundColor, "the global theme is left alone")
}

func TestApply_InvalidValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.List.Border = "wavy"
	cfg.List.ScrollBar = "fancy"
	cfg.Theme.Text = "notacolor"

	l := hlist.NewTreeList(engine.New())
	err := cfg.Apply(l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown border "wavy"`)
	assert.Contains(t, err.Error(), `unknown scroll bar glyph set "fancy"`)
	assert.Contains(t, err.Error(), `unknown text color "notacolor"`)
	assert.Equal(t, hlist.BorderSetPlain(), l.GetBorderSet())
}

func TestApply_NoBorder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.List.Border = "none"
	l := hlist.NewTreeList(engine.New())
	require.NoError(t, cfg.Apply(l))
	assert.Equal(t, hlist.BordersNone, l.GetBorders())
}

// findRune returns the first column of row y holding r, or -1.
func findRune(screen tcell.Screen, y int, r rune) int {
	width, _ := screen.Size()
	for x := 0; x < width; x++ {
		if c, _, _, _ := screen.GetContent(x, y); c == r {
			return x
		}
	}
	return -1
}

func foreground(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return fg
}

func TestApply_ThemeColorsDecorations(t *testing.T) {
	items := make([]engine.Item, 20)
	for i := range items {
		items[i] = engine.Item{ID: fmt.Sprintf("item-%d", i)}
	}
	cfg := DefaultConfig()
	cfg.Theme.Title = "green"
	cfg.Theme.Secondary = "yellow"
	cfg.Theme.Text = "red"

	l := hlist.NewTreeList(engine.New(engine.WithItems(items), engine.WithPagination(10, 1)))
	l.SetTitle("T")
	require.NoError(t, cfg.Apply(l))

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 6)
	l.SetRect(0, 0, 20, 6)
	l.Draw(screen)

	x := findRune(screen, 0, 'T')
	require.GreaterOrEqual(t, x, 0)
	assert.Equal(t, tcell.ColorGreen, foreground(screen, x, 0), "title")

	x = findRune(screen, 5, 'p')
	require.GreaterOrEqual(t, x, 0)
	assert.Equal(t, tcell.ColorYellow, foreground(screen, x, 5), "footer")

	assert.Equal(t, tcell.ColorRed, foreground(screen, 18, 1), "scroll bar thumb")
}

type helpKeys struct {
	up, quit keybind.Keybind
}

func (k helpKeys) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.up, k.quit}
}

func (k helpKeys) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{{k.up}, {k.quit}}
}

func TestApplyHelp(t *testing.T) {
	keys := helpKeys{
		up:   keybind.NewKeybind(keybind.WithKeys("k"), keybind.WithHelp("k", "up")),
		quit: keybind.NewKeybind(keybind.WithKeys("q"), keybind.WithHelp("q", "quit")),
	}
	cfg := DefaultConfig()
	cfg.Help = HelpConfig{ShortSeparator: " | ", FullSeparator: " : "}
	cfg.Theme.Secondary = "teal"

	h := help.New().SetKeyMap(keys)
	cfg.ApplyHelp(h)

	line := h.ShortLine(0)
	assert.Equal(t, "k up | q quit", line.String())
	fg, _, _ := line[0].Style.Decompose()
	assert.Equal(t, tcell.ColorTeal, fg)
	assert.Equal(t, []string{"k up : q quit"}, h.FullHelpLines(0))
}
