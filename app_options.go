package reflow

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithScreen sets the screen to draw on, such as a tcell.SimulationScreen
// in tests. The app initializes and finalizes it.
func WithScreen(screen tcell.Screen) AppOption {
	return func(a *App) error {
		if screen == nil {
			return fmt.Errorf("screen must not be nil")
		}
		a.screen = screen
		return nil
	}
}

// WithRoot sets the root element. The root is set after the app is fully
// initialized.
func WithRoot(root *Element) AppOption {
	return func(a *App) error {
		a.pendingRoot = root
		return nil
	}
}

// WithAppTraits sets the initial app-wide traits.
func WithAppTraits(t Traits) AppOption {
	return func(a *App) error {
		a.traits = t
		return nil
	}
}

// WithTheme sets the theme.
func WithTheme(theme Theme) AppOption {
	return func(a *App) error {
		a.theme = theme
		return nil
	}
}

// WithEventQueueSize sets the capacity of the deferred work queue.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}

// WithGlobalKeyHandler sets a handler that runs for every key event.
// If the handler returns true, the event is consumed.
// Use this for app-level key bindings like quit.
func WithGlobalKeyHandler(fn func(*tcell.EventKey) bool) AppOption {
	return func(a *App) error {
		a.globalKeyHandler = fn
		return nil
	}
}

// WithKeyMap handles key events with km. It replaces any handler set by
// WithGlobalKeyHandler.
func WithKeyMap(km KeyMap) AppOption {
	return func(a *App) error {
		a.globalKeyHandler = km.Handle
		return nil
	}
}
