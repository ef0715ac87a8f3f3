package reflow

// MarkDirty marks this app as needing a render.
func (a *App) MarkDirty() {
	if a == nil {
		panic("reflow: nil app in MarkDirty")
	}
	a.dirty.Store(true)
}

// checkAndClearDirty returns true if dirty and clears the flag.
// Called by the main loop after processing events.
func (a *App) checkAndClearDirty() bool {
	if a == nil {
		panic("reflow: nil app in checkAndClearDirty")
	}
	return a.dirty.Swap(false)
}
