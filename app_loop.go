package reflow

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/reflowkit/reflow/internal/debug"
	"golang.org/x/sync/errgroup"
)

// Run starts the main event loop. Blocks until Stop() is called or SIGINT
// is received, then finalizes the screen.
// Rendering occurs only when the dirty flag is set.
func (a *App) Run() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	events := make(chan tcell.Event, a.eventQueueSize)

	var g errgroup.Group
	g.Go(func() error {
		select {
		case <-sigCh:
			a.Stop()
		case <-a.stopCh:
		}
		return nil
	})
	g.Go(func() error {
		return a.pollEvents(events)
	})
	g.Go(func() error {
		// Finalizing the screen unblocks PollEvent.
		defer a.Close()
		return a.loop(events)
	})
	return g.Wait()
}

// pollEvents forwards screen events to the loop until the screen is finalized.
func (a *App) pollEvents(events chan<- tcell.Event) error {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-a.stopCh:
			return nil
		}
	}
}

func (a *App) loop(events <-chan tcell.Event) error {
	a.checkAndClearDirty()
	a.Render()

	for {
		select {
		case <-a.stopCh:
			return nil
		case ev := <-events:
			a.handleEvent(ev)
		case fn := <-a.eventQueue:
			fn()
		}

		if a.checkAndClearDirty() {
			a.Render()
		}
	}
}

// Stop signals the Run loop to exit gracefully.
// Stop is idempotent - multiple calls are safe.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
	})
}

// QueueUpdate enqueues a function to run on a later turn of the main loop.
// Safe to call from any goroutine.
func (a *App) QueueUpdate(fn func()) {
	a.enqueue(fn)
}

// enqueue reports whether fn was queued. It never blocks.
func (a *App) enqueue(fn func()) bool {
	select {
	case a.eventQueue <- fn:
		return true
	case <-a.stopCh:
		// App is stopping, ignore update
		return false
	default:
		debug.Log("QueueUpdate: queue full, dropping update")
		return false
	}
}

// Schedule implements Scheduler using the app's queue.
func (a *App) Schedule(fn func()) {
	a.QueueUpdate(fn)
}
