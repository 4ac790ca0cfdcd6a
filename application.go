package hlist

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// The size of the terminal events channel.
	eventsQueueSize = 64
)

// DoubleClickInterval specifies the maximum time between clicks to register a
// double click rather than click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction indicates one of the actions the mouse is logically doing.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseMiddleDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

// queuedUpdate represents the execution of f queued by
// Application.QueueUpdate(). If "done" is not nil, it receives exactly one
// element after f has executed.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application owns the screen and runs the event loop. Key events go to the
// root primitive, mouse events are translated into [MouseAction] values and
// commands returned by handlers are executed here.
//
//	if err := hlist.NewApplication().SetRoot(list).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	sync.RWMutex

	screen tcell.Screen
	log    logr.Logger

	// The primitive which currently has the keyboard focus.
	focus Primitive

	// The root primitive to be seen on the screen.
	root Primitive

	// Functions queued from goroutines, used to serialize updates to primitives.
	updates chan queuedUpdate

	// quit stops the goroutine pumping terminal events.
	quit     chan struct{}
	quitOnce sync.Once

	mouseCapturingPrimitive Primitive        // Receives follow-up mouse events while set.
	lastMouseX, lastMouseY  int              // The last position of the mouse.
	mouseDownX, mouseDownY  int              // The position of the mouse when its button was last pressed.
	lastMouseClick          time.Time        // The time when a mouse button was last clicked.
	lastMouseButtons        tcell.ButtonMask // The last mouse button state.

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		log:     logr.Discard(),
		updates: make(chan queuedUpdate, updatesQueueSize),
		quit:    make(chan struct{}),
	}
}

// SetLogger sets the logger used for event loop diagnostics.
func (a *Application) SetLogger(log logr.Logger) *Application {
	a.Lock()
	defer a.Unlock()
	a.log = log
	return a
}

// SetScreen sets the application's screen. The screen must already be
// initialized. It has no effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// Run starts the application and thus the event loop. This function returns
// when [Application.Stop] was called or the screen reported an error.
func (a *Application) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		screen.EnableMouse()
		a.screen = screen
	}
	screen := a.screen
	a.Unlock()

	// Panics leave the terminal unusable unless the screen is finalized.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	events := make(chan tcell.Event, eventsQueueSize)
	go screen.ChannelEvents(events, a.quit)

	var appErr error
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return appErr
			}
			if err := a.handleEvent(event); err != nil {
				appErr = err
				a.Stop()
			}
		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}
}

func (a *Application) handleEvent(event tcell.Event) error {
	switch event := event.(type) {
	case *tcell.EventKey:
		a.RLock()
		root := a.root
		a.RUnlock()
		if root != nil && root.HasFocus() {
			if a.executeCommand(root.InputHandler(event)) {
				a.draw()
			}
		}
	case *tcell.EventResize:
		a.Lock()
		a.forceRedraw = true
		a.Unlock()
		a.draw()
	case *tcell.EventMouse:
		handled, isMouseDownAction := a.fireMouseActions(event)
		if handled {
			a.draw()
		}
		a.lastMouseButtons = event.Buttons()
		if isMouseDownAction {
			a.mouseDownX, a.mouseDownY = event.Position()
		}
	case *tcell.EventInterrupt:
		if f, ok := event.Data().(func()); ok {
			f()
			a.draw()
		}
	case *tcell.EventError:
		a.log.Error(event, "screen error")
		return event
	}
	return nil
}

// fireMouseActions analyzes the provided mouse event, derives mouse actions
// from it and then forwards them to the corresponding primitives.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled, isMouseDownAction bool) {
	// Follow-up actions of one event go to the same primitive.
	var targetPrimitive Primitive

	fire := func(action MouseAction) {
		switch action {
		case MouseLeftDown, MouseMiddleDown, MouseRightDown:
			isMouseDownAction = true
		}

		a.RLock()
		primitive := a.root
		a.RUnlock()
		if a.mouseCapturingPrimitive != nil {
			primitive = a.mouseCapturingPrimitive
			targetPrimitive = a.mouseCapturingPrimitive
		} else if targetPrimitive != nil {
			primitive = targetPrimitive
		}

		var capturingPrimitive Primitive
		if primitive != nil {
			var cmd Command
			capturingPrimitive, cmd = primitive.MouseHandler(action, event)
			if a.executeCommand(cmd) {
				handled = true
			}
		}
		a.mouseCapturingPrimitive = capturingPrimitive
	}

	x, y := event.Position()
	buttons := event.Buttons()
	clickMoved := x != a.mouseDownX || y != a.mouseDownY
	buttonChanges := buttons ^ a.lastMouseButtons

	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX = x
		a.lastMouseY = y
	}

	for _, buttonEvent := range []struct {
		button                  tcell.ButtonMask
		down, up, click, dclick MouseAction
	}{
		{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
		{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick, MouseMiddleDoubleClick},
		{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
	} {
		if buttonChanges&buttonEvent.button == 0 {
			continue
		}
		if buttons&buttonEvent.button != 0 {
			fire(buttonEvent.down)
			continue
		}
		fire(buttonEvent.up)
		if clickMoved {
			continue
		}
		if a.lastMouseClick.Add(DoubleClickInterval).Before(time.Now()) {
			fire(buttonEvent.click)
			a.lastMouseClick = time.Now()
		} else {
			fire(buttonEvent.dclick)
			a.lastMouseClick = time.Time{}
		}
	}

	for _, wheelEvent := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight},
	} {
		if buttons&wheelEvent.button != 0 {
			fire(wheelEvent.action)
		}
	}

	return handled, isMouseDownAction
}

// Stop stops the application, causing Run() to return.
func (a *Application) Stop() {
	a.quitOnce.Do(func() { close(a.quit) })

	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// Suspend temporarily exits terminal UI mode and invokes f. When f returns,
// terminal UI mode is entered again. It returns false if the application has
// no screen or the terminal could not be suspended.
func (a *Application) Suspend(f func()) bool {
	a.RLock()
	screen := a.screen
	a.RUnlock()
	if screen == nil {
		return false
	}

	if err := screen.Suspend(); err != nil {
		a.log.Error(err, "suspend")
		return false
	}
	f()

	a.RLock()
	stopped := a.screen != screen
	a.RUnlock()
	if stopped {
		return true
	}
	if err := screen.Resume(); err != nil {
		a.log.Error(err, "resume")
	}
	return true
}

// Draw refreshes the screen during the next update cycle. Calling it from the
// event loop itself (a handler or a queued update) deadlocks; use
// [Application.ForceDraw] there.
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

// ForceDraw refreshes the screen immediately. Only call it from the event
// loop.
func (a *Application) ForceDraw() *Application {
	return a.draw()
}

func (a *Application) draw() *Application {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	if screen == nil || root == nil {
		return a
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)

	// tcell only emits the cells that changed in Show, so the screen is only
	// cleared on forced redraws.
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
	return a
}

// Sync forces a full re-sync of the screen buffer with the actual screen during
// the next event cycle.
func (a *Application) Sync() *Application {
	a.updates <- queuedUpdate{f: func() {
		a.Lock()
		screen := a.screen
		a.forceRedraw = true
		a.Unlock()
		if screen != nil {
			screen.Sync()
		}
	}}
	return a
}

// SetRoot sets the root primitive for this application and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus sets the focus to a new primitive. Blur() is called on the
// previously focused primitive and Focus() on the new one.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the primitive which has the current focus. If none has it,
// nil is returned.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate is used to synchronize access to primitives from non-main
// goroutines. The provided function is executed as part of the event loop.
// Draw() is not implicitly called after f; use QueueUpdateDraw() for that.
//
// This function returns after f has executed.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: ch}
	<-ch
	return a
}

// QueueUpdateDraw works like QueueUpdate() except it refreshes the screen
// immediately after executing f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	a.QueueUpdate(func() {
		f()
		a.draw()
	})
	return a
}

// QueueEvent posts an event to the screen's event queue. It returns false
// when there is no screen or the queue is full.
func (a *Application) QueueEvent(event tcell.Event) bool {
	a.RLock()
	screen := a.screen
	a.RUnlock()
	if screen == nil {
		return false
	}
	return screen.PostEvent(event) == nil
}

// executeCommand runs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		a.RLock()
		changed := a.focus != c.Target
		a.RUnlock()
		a.SetFocus(c.Target)
		return changed
	case ConsumeEventCommand:
		return false
	default:
		a.log.V(1).Info("unknown command", "command", c)
		return false
	}
}
