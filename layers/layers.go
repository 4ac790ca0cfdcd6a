// Package layers stacks primitives on top of each other. It is used to show
// dialogs such as the full key help above a list.
package layers

import (
	"github.com/ayn2op/hlist"
	"github.com/gdamore/tcell/v2"
)

// layer represents one layer of a Layers object.
type layer struct {
	name    string
	item    hlist.Primitive
	resize  bool // Resize the item to the container's inner rect on draw.
	visible bool
	enabled bool // Enabled layers can receive focus and input.
	overlay bool // Overlays restyle the layers behind them.

	// A centered layer is resized to this size, clamped to the container.
	centerWidth, centerHeight int
}

// Layers is a container for other primitives laid out on top of each other.
// Layers are drawn from back to front. The front-most visible overlay layer
// applies the background layer style to every layer behind it and keeps
// mouse input from reaching them.
type Layers struct {
	*hlist.Box

	layers               []*layer
	backgroundLayerStyle tcell.Style

	// setFocus moves the focus to a layer that became the front-most one.
	setFocus func(p hlist.Primitive)
	changed  func()
}

// Option configures a layer on AddLayer.
type Option func(*layer)

func WithName(name string) Option {
	return func(l *layer) {
		l.name = name
	}
}

// WithResize sets whether the layer is resized to the container's inner rect.
func WithResize(resize bool) Option {
	return func(l *layer) {
		l.resize = resize
	}
}

// WithCentered resizes the layer to width x height cells centered in the
// container. Sizes larger than the container are clamped.
func WithCentered(width, height int) Option {
	return func(l *layer) {
		l.centerWidth, l.centerHeight = width, height
	}
}

func WithVisible(visible bool) Option {
	return func(l *layer) {
		l.visible = visible
	}
}

func WithEnabled(enabled bool) Option {
	return func(l *layer) {
		l.enabled = enabled
	}
}

// WithOverlay marks this layer as an overlay layer.
func WithOverlay() Option {
	return func(l *layer) {
		l.overlay = true
	}
}

// New returns a new Layers object.
func New() *Layers {
	return &Layers{
		Box:                  hlist.NewBox(),
		backgroundLayerStyle: tcell.StyleDefault.Dim(true),
	}
}

// SetChangedFunc sets a handler which is called whenever the visibility or the
// order of any visible layers changes.
func (l *Layers) SetChangedFunc(handler func()) *Layers {
	l.changed = handler
	return l
}

func (l *Layers) notify() {
	if l.changed != nil {
		l.changed()
	}
}

// refocus hands the focus to the new front-most layer if the container held
// it before a change.
func (l *Layers) refocus(hadFocus bool) {
	if hadFocus {
		l.Focus(l.setFocus)
	}
}

func (l *Layers) find(name string) (int, *layer) {
	for index, layer := range l.layers {
		if layer.name == name {
			return index, layer
		}
	}
	return -1, nil
}

// LayerCount returns the number of layers.
func (l *Layers) LayerCount() int {
	return len(l.layers)
}

// LayerNames returns all layer names ordered from front to back, optionally
// limited to visible layers.
func (l *Layers) LayerNames(visibleOnly bool) []string {
	var names []string
	for index := len(l.layers) - 1; index >= 0; index-- {
		if !visibleOnly || l.layers[index].visible {
			names = append(names, l.layers[index].name)
		}
	}
	return names
}

// Visible returns whether the given layer is visible.
func (l *Layers) Visible(name string) bool {
	_, layer := l.find(name)
	return layer != nil && layer.visible
}

// AddLayer adds a layer in front of all others. An existing layer with the
// same name is replaced.
func (l *Layers) AddLayer(item hlist.Primitive, opts ...Option) *Layers {
	hadFocus := l.HasFocus()
	newLayer := &layer{
		item:    item,
		visible: true,
		enabled: true,
	}
	for _, opt := range opts {
		opt(newLayer)
	}
	if newLayer.name != "" {
		if index, _ := l.find(newLayer.name); index >= 0 {
			l.layers = append(l.layers[:index], l.layers[index+1:]...)
		}
	}
	l.layers = append(l.layers, newLayer)
	l.notify()
	l.refocus(hadFocus)
	return l
}

// RemoveLayer removes the layer with the given name.
func (l *Layers) RemoveLayer(name string) *Layers {
	hadFocus := l.HasFocus()
	index, layer := l.find(name)
	if layer == nil {
		return l
	}
	l.layers = append(l.layers[:index], l.layers[index+1:]...)
	if layer.visible {
		l.notify()
	}
	l.refocus(hadFocus)
	return l
}

func (l *Layers) HasLayer(name string) bool {
	_, layer := l.find(name)
	return layer != nil
}

// ShowLayer makes a layer visible in addition to the ones that already are.
func (l *Layers) ShowLayer(name string) *Layers {
	return l.setVisible(name, true)
}

// HideLayer hides a layer.
func (l *Layers) HideLayer(name string) *Layers {
	return l.setVisible(name, false)
}

// ToggleLayer flips the visibility of a layer and reports whether it is now
// visible.
func (l *Layers) ToggleLayer(name string) bool {
	visible := !l.Visible(name)
	l.setVisible(name, visible)
	return l.Visible(name)
}

func (l *Layers) setVisible(name string, visible bool) *Layers {
	hadFocus := l.HasFocus()
	_, layer := l.find(name)
	if layer == nil || layer.visible == visible {
		return l
	}
	if !visible && layer.item.HasFocus() {
		layer.item.Blur()
	}
	layer.visible = visible
	l.notify()
	l.refocus(hadFocus)
	return l
}

// SendToFront moves the layer to the front so it is drawn last.
func (l *Layers) SendToFront(name string) *Layers {
	hadFocus := l.HasFocus()
	index, layer := l.find(name)
	if layer == nil {
		return l
	}
	if index < len(l.layers)-1 {
		l.layers = append(append(l.layers[:index], l.layers[index+1:]...), layer)
	}
	if layer.visible {
		l.notify()
	}
	l.refocus(hadFocus)
	return l
}

// SendToBack moves the layer to the back so it is drawn first.
func (l *Layers) SendToBack(name string) *Layers {
	hadFocus := l.HasFocus()
	index, ly := l.find(name)
	if ly == nil {
		return l
	}
	if index > 0 {
		l.layers = append(append([]*layer{ly}, l.layers[:index]...), l.layers[index+1:]...)
	}
	if ly.visible {
		l.notify()
	}
	l.refocus(hadFocus)
	return l
}

// FrontLayer returns the front-most visible layer. If there are no visible
// layers, ("", nil) is returned.
func (l *Layers) FrontLayer() (name string, item hlist.Primitive) {
	for index := len(l.layers) - 1; index >= 0; index-- {
		if l.layers[index].visible {
			return l.layers[index].name, l.layers[index].item
		}
	}
	return
}

// Layer returns the primitive of the named layer or nil.
func (l *Layers) Layer(name string) hlist.Primitive {
	if _, layer := l.find(name); layer != nil {
		return layer.item
	}
	return nil
}

// SetLayerEnabled enables or disables a layer. Disabled layers are still drawn
// (if visible) but do not receive focus or input.
func (l *Layers) SetLayerEnabled(name string, enabled bool) *Layers {
	hadFocus := l.HasFocus()
	_, layer := l.find(name)
	if layer == nil || layer.enabled == enabled {
		return l
	}
	if !enabled && layer.item.HasFocus() {
		layer.item.Blur()
	}
	layer.enabled = enabled
	if layer.visible {
		l.notify()
	}
	l.refocus(hadFocus)
	return l
}

// SetLayerCentered changes the size of a centered layer. It has no effect on
// unknown layers.
func (l *Layers) SetLayerCentered(name string, width, height int) *Layers {
	if _, layer := l.find(name); layer != nil {
		layer.centerWidth, layer.centerHeight = width, height
	}
	return l
}

func (l *Layers) LayerEnabled(name string) bool {
	_, layer := l.find(name)
	return layer != nil && layer.enabled
}

// SetBackgroundLayerStyle sets the style applied to layers behind the active
// overlay layer. Only colors and attributes that are set in style are applied.
func (l *Layers) SetBackgroundLayerStyle(style tcell.Style) *Layers {
	if l.backgroundLayerStyle != style {
		l.backgroundLayerStyle = style
		l.notify()
	}
	return l
}

// HasFocus returns whether or not this primitive or one of its enabled layers
// has focus.
func (l *Layers) HasFocus() bool {
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return true
		}
	}
	return l.Box.HasFocus()
}

// Focus passes the focus on to the front-most visible enabled layer.
func (l *Layers) Focus(delegate func(p hlist.Primitive)) {
	if delegate == nil {
		return
	}
	l.setFocus = delegate
	if top := l.topLayer(); top != nil {
		delegate(top.item)
		return
	}
	l.Box.Focus(delegate)
}

// Draw draws this primitive onto the screen.
func (l *Layers) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	overlayIndex := l.overlayIndex()
	var dimmed tcell.Screen
	if overlayIndex >= 0 {
		dimmed = &overlayScreen{Screen: screen, overlay: l.backgroundLayerStyle}
	}
	x, y, width, height := l.GetInnerRect()
	for index, layer := range l.layers {
		if !layer.visible {
			continue
		}
		switch {
		case layer.centerWidth > 0 && layer.centerHeight > 0:
			w, h := min(layer.centerWidth, width), min(layer.centerHeight, height)
			layer.item.SetRect(x+(width-w)/2, y+(height-h)/2, w, h)
		case layer.resize:
			layer.item.SetRect(x, y, width, height)
		}
		if dimmed != nil && index < overlayIndex {
			layer.item.Draw(dimmed)
			continue
		}
		layer.item.Draw(screen)
	}
}

// MouseHandler passes mouse events to the front-most visible enabled layer
// that handles them. Layers behind an active overlay never see them.
func (l *Layers) MouseHandler(action hlist.MouseAction, event *tcell.EventMouse) (hlist.Primitive, hlist.Command) {
	if !l.InRect(event.Position()) {
		return nil, nil
	}

	overlayIndex := l.overlayIndex()
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if !layer.visible || !layer.enabled {
			continue
		}
		if overlayIndex >= 0 && index < overlayIndex {
			break
		}
		capture, cmd := layer.item.MouseHandler(action, event)
		if capture != nil || cmd != nil {
			return capture, cmd
		}
	}
	if overlayIndex >= 0 {
		return nil, hlist.ConsumeEventCommand{}
	}
	return nil, nil
}

// InputHandler passes key events to the layer holding the focus.
func (l *Layers) InputHandler(event *tcell.EventKey) hlist.Command {
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return layer.item.InputHandler(event)
		}
	}
	return nil
}

func (l *Layers) topLayer() *layer {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.enabled {
			return layer
		}
	}
	return nil
}

// overlayIndex returns the index of the front-most visible enabled overlay
// layer or -1.
func (l *Layers) overlayIndex() int {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.enabled && layer.overlay {
			return index
		}
	}
	return -1
}

// overlayScreen restyles every cell drawn through it.
type overlayScreen struct {
	tcell.Screen
	overlay tcell.Style
}

func (s *overlayScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s.Screen.SetContent(x, y, primary, combining, applyBackgroundStyle(style, s.overlay))
}

// applyBackgroundStyle applies the colors set in overlay and adds its
// attributes to base. Attributes already on base are never removed.
func applyBackgroundStyle(base tcell.Style, overlay tcell.Style) tcell.Style {
	fg, bg, attrs := overlay.Decompose()
	if fg != tcell.ColorDefault {
		base = base.Foreground(fg)
	}
	if bg != tcell.ColorDefault {
		base = base.Background(bg)
	}
	_, _, baseAttrs := base.Decompose()
	return base.Attributes(baseAttrs | attrs)
}

var _ hlist.Primitive = &Layers{}
