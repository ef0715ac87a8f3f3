package reflow

import "github.com/gdamore/tcell/v2"

// handleEvent runs on the loop goroutine.
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		if a.root != nil {
			a.root.MarkDirty()
		}
		a.MarkDirty()
	case *tcell.EventKey:
		if a.globalKeyHandler != nil && a.globalKeyHandler(ev) {
			a.MarkDirty()
			return
		}
		if ev.Key() == tcell.KeyCtrlC {
			a.Stop()
		}
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
		}
	}
}
