package reflow

import "github.com/reflowkit/reflow/internal/layout"

// --- Implement Layoutable interface ---

// LayoutStyle returns the base style with every active constraint applied
// in activation order.
func (e *Element) LayoutStyle() LayoutStyle {
	style := e.style
	var attrs textAttrs
	for _, c := range e.constraints {
		c.rule.apply(&style, &attrs)
	}
	return style
}

// LayoutChildren returns the children to be laid out.
func (e *Element) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(e.children))
	for i, child := range e.children {
		result[i] = child
	}
	return result
}

// SetLayout is called by the layout engine to store computed layout.
func (e *Element) SetLayout(l LayoutResult) {
	e.layout = l
}

// GetLayout returns the last computed layout.
func (e *Element) GetLayout() LayoutResult {
	return e.layout
}

// IsDirty returns whether this element needs layout recalculation.
func (e *Element) IsDirty() bool {
	return e.dirty
}

// SetDirty marks this element as needing recalculation or not.
func (e *Element) SetDirty(dirty bool) {
	e.dirty = dirty
}

// IntrinsicSize returns the unwrapped width of the element's text, with
// letter spacing, and one line. Elements without text have no intrinsic size.
func (e *Element) IntrinsicSize() (width, height int) {
	if e.text == "" {
		return 0, 0
	}
	return TextWidth(e.text, e.letterSpacing()), 1
}

// HeightForWidth returns the number of lines the text occupies when wrapped
// at width, capped by the effective line limit.
func (e *Element) HeightForWidth(width int) int {
	if e.text == "" {
		return 0
	}
	lines := len(WrapText(e.text, width, e.letterSpacing()))
	if limit := e.MaxLines(); limit > 0 && lines > limit {
		return limit
	}
	return lines
}

// WrappedLineCount returns the number of lines the text needs at width,
// ignoring the line limit.
func (e *Element) WrappedLineCount(width int) int {
	return len(WrapText(e.text, width, e.letterSpacing()))
}

func (e *Element) letterSpacing() int {
	return e.Traits().ContentSize.LetterSpacing()
}

// MarkDirty marks this element and all ancestors as needing layout
// recalculation, and the owning app as needing a render.
func (e *Element) MarkDirty() {
	for n := e; n != nil; n = n.parent {
		n.dirty = true
	}
	if e.app != nil {
		e.app.MarkDirty()
	}
}

// Calculate lays out the tree rooted at e within the given size without
// running host callbacks. Most callers want Layout.
func (e *Element) Calculate(width, height int) {
	layout.Calculate(e, width, height)
}

// LayoutIfNeeded synchronously lays out e's subtree again inside the frame
// it was given by the last layout, if anything in it changed.
func (e *Element) LayoutIfNeeded() {
	layout.Recalculate(e)
}

// FittingSize returns the natural border-box size of e's subtree when its
// width is unbounded. Computed layouts are not modified.
func (e *Element) FittingSize() Size {
	return layout.Measure(e, layout.Unbounded)
}

// SizeThatFits returns the natural border-box size of e's subtree when it
// may be at most width cells wide.
func (e *Element) SizeThatFits(width int) Size {
	return layout.Measure(e, width)
}
