package reflow

import (
	"github.com/reflowkit/reflow/internal/debug"
	"github.com/reflowkit/reflow/internal/layout"
)

// maxLayoutPasses bounds how many times callbacks may invalidate a single
// Layout call before the remaining work is left for the next one.
const maxLayoutPasses = 8

// Layout runs a full host layout pass over the tree rooted at e:
//
//  1. update-constraints callbacks of elements that requested one;
//  2. the flex solver, for dirty subtrees only;
//  3. frame-change callbacks of elements whose size changed;
//  4. layout-subviews callbacks, parents before children.
//
// The pass repeats while callbacks leave the tree dirty.
func (e *Element) Layout(width, height int) {
	for pass := 1; ; pass++ {
		e.Walk(func(el *Element) {
			if !el.needsUpdateConstraints {
				return
			}
			el.needsUpdateConstraints = false
			if el.onUpdateConstraints != nil {
				el.onUpdateConstraints()
			}
		})

		layout.Calculate(e, width, height)
		e.Walk(notifyFrameChange)
		e.Walk(func(el *Element) {
			if el.onLayoutSubviews != nil {
				el.onLayoutSubviews()
			}
		})

		if !e.needsLayoutPass() {
			return
		}
		if pass == maxLayoutPasses {
			debug.Log("Layout: %s still dirty after %d passes", e.Name(), pass)
			return
		}
	}
}

func (e *Element) needsLayoutPass() bool {
	if e.dirty {
		return true
	}
	pending := false
	e.Walk(func(el *Element) {
		pending = pending || el.needsUpdateConstraints
	})
	return pending
}

func notifyFrameChange(el *Element) {
	old, cur := el.lastFrame, el.layout.Rect
	el.lastFrame = cur
	if old.Width == cur.Width && old.Height == cur.Height {
		return
	}
	if el.onFrameChange != nil {
		el.onFrameChange(old, cur)
	}
}
