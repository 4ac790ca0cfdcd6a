package main

import (
	"fmt"

	"github.com/ayn2op/hlist"
	"github.com/ayn2op/hlist/config"
	"github.com/ayn2op/hlist/help"
	"github.com/ayn2op/hlist/keybind"
	"github.com/ayn2op/hlist/layers"
	"github.com/gdamore/tcell/v2"
)

const (
	mainLayer = "main"
	helpLayer = "help"
)

type viewKeyMap struct {
	Help  keybind.Keybind
	Close keybind.Keybind
	Quit  keybind.Keybind
}

func defaultViewKeyMap() viewKeyMap {
	return viewKeyMap{
		Help:  keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "help")),
		Close: keybind.NewKeybind(keybind.WithKeys("esc"), keybind.WithHelp("esc", "close"), keybind.WithDisabled()),
		Quit:  keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
}

// view is the root primitive: the list with a help bar below it, and the
// full help as an overlay layer on top.
type view struct {
	*layers.Layers
	keys viewKeyMap

	title string
	list  *hlist.TreeList
	main  *mainView
	full  *help.Help
}

func newView(list *hlist.TreeList, title string, cfg config.Config) *view {
	v := &view{
		Layers: layers.New(),
		keys:   defaultViewKeyMap(),
		title:  title,
		list:   list,
	}

	bar := help.New().SetKeyMap(v)
	cfg.ApplyHelp(bar)
	v.main = &mainView{Box: hlist.NewBox(), list: list, bar: bar}

	v.full = help.New().SetKeyMap(v).SetShowAll(true)
	cfg.ApplyHelp(v.full)
	v.full.SetBorders(hlist.BordersAll)
	v.full.SetBorderSet(hlist.BorderSetRound())
	v.full.SetBorderPadding(0, 0, 1, 1)
	v.full.SetTitle(" keys ")

	v.AddLayer(v.main, layers.WithName(mainLayer), layers.WithResize(true))
	v.AddLayer(v.full, layers.WithName(helpLayer), layers.WithOverlay(), layers.WithVisible(false))
	v.updateTitle()
	return v
}

// updateTitle shows the source and the number of selected rows.
func (v *view) updateTitle() {
	title := " " + v.title + " "
	if n := v.list.Engine().Selection().Len(); n > 0 {
		title = fmt.Sprintf(" %s · %d selected ", v.title, n)
	}
	v.list.SetTitle(title)
}

func (v *view) ShortHelp() []keybind.Keybind {
	return append(v.list.ShortHelp(), v.keys.Help, v.keys.Quit)
}

func (v *view) FullHelp() [][]keybind.Keybind {
	return append(v.list.FullHelp(), []keybind.Keybind{v.keys.Help, v.keys.Close, v.keys.Quit})
}

func (v *view) showHelp(show bool) {
	v.keys.Close.SetEnabled(show)
	if show {
		v.ShowLayer(helpLayer)
		return
	}
	v.HideLayer(helpLayer)
}

func (v *view) Draw(screen tcell.Screen) {
	_, _, width, _ := v.GetInnerRect()
	w := min(width-4, 72)
	// Borders and padding take four columns and two lines.
	lines := v.full.FullLines(w - 4)
	v.SetLayerCentered(helpLayer, w, len(lines)+2)
	v.Layers.Draw(screen)
}

func (v *view) InputHandler(event *tcell.EventKey) hlist.Command {
	switch {
	case keybind.Matches(event, v.keys.Quit):
		return hlist.QuitCommand{}
	case keybind.Matches(event, v.keys.Help):
		v.showHelp(!v.Visible(helpLayer))
		return hlist.RedrawCommand{}
	case keybind.Matches(event, v.keys.Close):
		v.showHelp(false)
		return hlist.RedrawCommand{}
	}
	if v.Visible(helpLayer) {
		return hlist.ConsumeEventCommand{}
	}
	return v.Layers.InputHandler(event)
}

// mainView stacks the list above a one line help bar.
type mainView struct {
	*hlist.Box
	list *hlist.TreeList
	bar  *help.Help
}

func (m *mainView) Draw(screen tcell.Screen) {
	x, y, width, height := m.GetInnerRect()
	barHeight := min(1, height)
	m.list.SetRect(x, y, width, height-barHeight)
	m.bar.SetRect(x, y+height-barHeight, width, barHeight)
	m.list.Draw(screen)
	m.bar.Draw(screen)
}

func (m *mainView) InputHandler(event *tcell.EventKey) hlist.Command {
	return m.list.InputHandler(event)
}

func (m *mainView) MouseHandler(action hlist.MouseAction, event *tcell.EventMouse) (hlist.Primitive, hlist.Command) {
	if m.list.InRect(event.Position()) {
		return m.list.MouseHandler(action, event)
	}
	return nil, nil
}

func (m *mainView) HasFocus() bool {
	return m.list.HasFocus()
}

func (m *mainView) Focus(delegate func(p hlist.Primitive)) {
	delegate(m.list)
}

func (m *mainView) Blur() {
	m.list.Blur()
}
