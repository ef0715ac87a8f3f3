package reflow

// AddChild appends children to this Element and runs their attach callbacks.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		prev := child.Traits()
		child.parent = e
		child.setAppRecursive(e.app)
		e.children = append(e.children, child)
		child.attached()
		if child.traits == nil {
			child.traitsChanged(prev)
		}
	}
	e.MarkDirty()
}

// RemoveChild removes a child from this Element, preserving sibling order.
// Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			child.setAppRecursive(nil)
			e.MarkDirty()
			return true
		}
	}
	return false
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Walk calls fn for e and every descendant, parents before children.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, child := range e.children {
		child.Walk(fn)
	}
}

func (e *Element) attached() {
	if e.onAttach != nil {
		e.onAttach()
	}
}

func (e *Element) setAppRecursive(app *App) {
	if e == nil {
		return
	}
	e.app = app
	for _, child := range e.children {
		child.setAppRecursive(app)
	}
}
