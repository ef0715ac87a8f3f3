package reflow

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// App manages the application lifecycle: screen setup, event loop, and rendering.
type App struct {
	screen tcell.Screen
	root   *Element
	theme  Theme
	traits Traits
	dirty  atomic.Bool

	// Event loop fields
	eventQueue       chan func()
	stopCh           chan struct{}
	stopOnce         sync.Once
	finiOnce         sync.Once
	globalKeyHandler func(*tcell.EventKey) bool // Returns true if event consumed

	// Configuration (set via options)
	eventQueueSize int
	pendingRoot    *Element
}

// NewApp creates a new application and initializes its screen.
// Without WithScreen the terminal screen from tcell.NewScreen is used.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{
		theme:          DefaultTheme(),
		traits:         DefaultTraits(),
		stopCh:         make(chan struct{}),
		eventQueueSize: 256, // Default queue size
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to create screen: %w", err)
		}
		app.screen = screen
	}
	if err := app.screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	app.screen.SetStyle(app.theme.Background)

	app.eventQueue = make(chan func(), app.eventQueueSize)

	if app.pendingRoot != nil {
		app.SetRoot(app.pendingRoot)
		app.pendingRoot = nil
	}
	app.MarkDirty()
	return app, nil
}

// Screen returns the app's tcell screen.
func (a *App) Screen() tcell.Screen {
	return a.screen
}

// Root returns the root element, or nil.
func (a *App) Root() *Element {
	return a.root
}

// SetRoot replaces the root element. The new root's attach callback runs
// and its subtree inherits the app's traits.
func (a *App) SetRoot(root *Element) {
	if a.root != nil {
		a.root.setAppRecursive(nil)
	}
	a.root = root
	if root != nil {
		prev := root.Traits()
		root.setAppRecursive(a)
		root.attached()
		if root.traits == nil {
			root.traitsChanged(prev)
		}
		root.MarkDirty()
	}
	a.MarkDirty()
}

// Theme returns the app's theme.
func (a *App) Theme() Theme {
	return a.theme
}

// Traits returns the app-wide traits.
func (a *App) Traits() Traits {
	return a.traits
}

// SetTraits replaces the app-wide traits and notifies every element whose
// effective traits changed.
func (a *App) SetTraits(t Traits) {
	prev := a.traits
	if prev == t {
		return
	}
	a.traits = t
	if a.root != nil && a.root.traits == nil {
		a.root.traitsChanged(prev)
	}
	a.MarkDirty()
}

// SetContentSizeCategory changes the app-wide content size category.
func (a *App) SetContentSizeCategory(c ContentSizeCategory) {
	t := a.traits
	t.ContentSize = c
	a.SetTraits(t)
}

// Render lays out the root at the screen size and draws it.
func (a *App) Render() {
	a.screen.Fill(' ', a.theme.Background)
	if a.root != nil {
		w, h := a.screen.Size()
		a.root.Layout(w, h)
		a.root.Draw(a.screen)
	}
	a.screen.Show()
}

// Close finalizes the screen, restoring the terminal.
// Must be called when the application exits if Run was never called.
func (a *App) Close() error {
	a.finiOnce.Do(a.screen.Fini)
	return nil
}
