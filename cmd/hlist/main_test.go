package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayn2op/hlist"
	"github.com/ayn2op/hlist/config"
	"github.com/ayn2op/hlist/engine"
	"github.com/ayn2op/hlist/internal/fixture"
	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--page-size", "25", "--selection", "multi", "--auto-height"}))

	cfg := config.DefaultConfig()
	cfg.List.Checkboxes = true
	opts := options{pageSize: 25, selection: "multi", autoHeight: true}
	applyFlags(cmd, &cfg, opts)

	assert.Equal(t, 25, cfg.List.PageSize)
	assert.Equal(t, "multi", cfg.List.Selection)
	assert.True(t, cfg.List.RowHeight.Auto)
	assert.True(t, cfg.List.Checkboxes, "flags that were not given keep the config value")
}

func TestBuildEngine(t *testing.T) {
	cfg := config.DefaultConfig()
	log := testr.New(t)

	e, title, err := buildEngine(cfg, options{roots: 3, fanout: 2, depth: 2}, log)
	require.NoError(t, err)
	assert.Equal(t, "9 generated items", title)
	assert.Equal(t, 3, e.Len())

	e, _, err = buildEngine(cfg, options{roots: 4, fanout: 0, depth: 1, groupSize: 2}, log)
	require.NoError(t, err)
	assert.Equal(t, 6, e.Len(), "two headers and four items")

	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - id: a\n  - id: b\n"), 0o644))
	e, title, err = buildEngine(cfg, options{itemsPath: path}, log)
	require.NoError(t, err)
	assert.Equal(t, "tree.yaml", title)
	assert.Equal(t, 2, e.Len())

	_, _, err = buildEngine(cfg, options{itemsPath: "tree.toml"}, log)
	assert.ErrorIs(t, err, fixture.ErrUnknownFormat)
}

func TestNewLogger(t *testing.T) {
	log, closeLog, err := newLogger("", 0)
	require.NoError(t, err)
	assert.Equal(t, logr.Discard(), log)
	closeLog()

	path := filepath.Join(t.TempDir(), "hlist.log")
	log, closeLog, err = newLogger(path, 1)
	require.NoError(t, err)
	log.WithName("engine").V(1).Info("toggled", "id", "a")
	log.V(2).Info("hidden")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "engine: ")
	assert.Contains(t, string(data), `"level"=1 "msg"="toggled" "id"="a"`)
	assert.NotContains(t, string(data), "hidden")
}

func screenText(screen tcell.Screen) string {
	width, height := screen.Size()
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestView(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 12)

	e := engine.New(engine.WithItems(fixture.Generate(3, 2, 2)))
	list := hlist.NewTreeList(e)
	require.NoError(t, config.DefaultConfig().Apply(list))
	v := newView(list, "demo", config.DefaultConfig())
	v.SetRect(0, 0, 80, 12)
	v.Draw(screen)

	text := screenText(screen)
	assert.Contains(t, text, " demo ")
	assert.Contains(t, text, "Folder 0")
	assert.Contains(t, text, "q quit")

	e.SetSelectedIDs("0.1")
	v.updateTitle()
	assert.Equal(t, " demo · 1 selected ", list.GetTitle())

	assert.Equal(t, hlist.RedrawCommand{}, v.InputHandler(tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone)))
	assert.True(t, v.Visible(helpLayer))
	v.Draw(screen)
	assert.Contains(t, screenText(screen), " keys ")
	assert.True(t, v.keys.Close.Enabled())

	assert.Equal(t, hlist.ConsumeEventCommand{}, v.InputHandler(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)), "the overlay swallows list keys")
	v.InputHandler(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.False(t, v.Visible(helpLayer))

	assert.Equal(t, hlist.QuitCommand{}, v.InputHandler(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestWatchItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[{"id":"a"}]}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	reloads := make(chan fixture.Document, 4)
	done := make(chan error, 1)
	go func() {
		done <- watchItems(ctx, path, testr.New(t), func(doc fixture.Document) {
			reloads <- doc
		})
	}()

	// The watcher may not be registered yet, so the file is rewritten until
	// a reload shows up.
	var doc fixture.Document
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(`{"items":[{"id":"a"},{"id":"b"}]}`), 0o644)
		select {
		case doc = <-reloads:
			return true
		case <-time.After(3 * reloadDelay):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
	assert.Len(t, doc.Items, 2)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
