package reflow

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TextAlign specifies how text is aligned within its content area.
type TextAlign int

const (
	// TextAlignLeft aligns text to the left edge (default).
	TextAlignLeft TextAlign = iota
	// TextAlignCenter centers text horizontally.
	TextAlignCenter
	// TextAlignRight aligns text to the right edge.
	TextAlignRight
)

// String returns "left", "center" or "right".
func (a TextAlign) String() string {
	switch a {
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	case TextAlignLeft:
		return "left"
	}
	return fmt.Sprintf("TextAlign(%d)", int(a))
}

// textAttrs are the text properties constraints may override.
type textAttrs struct {
	maxLines int // 0 = unlimited
	align    TextAlign
}

// Element is a node of the retained UI tree. It implements Layoutable and
// owns its children directly.
type Element struct {
	// Tree structure
	children []*Element
	parent   *Element
	app      *App
	name     string

	// Layout properties
	style       LayoutStyle
	constraints []*Constraint // active, in activation order
	layout      LayoutResult
	dirty       bool
	lastFrame   Rect // frame last reported to onFrameChange

	// Text properties
	text      string
	textStyle tcell.Style
	textAttrs textAttrs

	// nil = inherit from parent or app
	traits *Traits

	// Host callbacks
	onAttach               func()
	onFrameChange          func(old, new Rect)
	onTraitsChange         func(previous Traits)
	onUpdateConstraints    func()
	onLayoutSubviews       func()
	needsUpdateConstraints bool
}

// Compile-time check that Element implements Layoutable
var _ Layoutable = (*Element)(nil)

// New creates a new Element with the given options.
// By default, an Element has Auto width/height (flexes to fill available space).
func New(opts ...Option) *Element {
	e := &Element{
		style:     DefaultLayoutStyle(),
		dirty:     true,
		textStyle: tcell.StyleDefault,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the element's debugging name.
func (e *Element) Name() string {
	if e.name == "" {
		return fmt.Sprintf("element(%p)", e)
	}
	return e.name
}

// Text returns the element's text.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the element's text and marks it for layout.
func (e *Element) SetText(text string) {
	if e.text == text {
		return
	}
	e.text = text
	e.MarkDirty()
}

// TextStyle returns the style text is drawn with.
func (e *Element) TextStyle() tcell.Style {
	return e.textStyle
}

// SetTextStyle sets the style text is drawn with.
func (e *Element) SetTextStyle(style tcell.Style) {
	e.textStyle = style
	if e.app != nil {
		e.app.MarkDirty()
	}
}

// MaxLines returns the effective line limit, including active constraints.
// 0 means unlimited.
func (e *Element) MaxLines() int {
	return e.resolvedTextAttrs().maxLines
}

// SetMaxLines sets the base line limit.
func (e *Element) SetMaxLines(n int) {
	e.textAttrs.maxLines = max(n, 0)
	e.MarkDirty()
}

// TextAlign returns the effective text alignment, including active constraints.
func (e *Element) TextAlign() TextAlign {
	return e.resolvedTextAttrs().align
}

// SetTextAlign sets the base text alignment.
func (e *Element) SetTextAlign(align TextAlign) {
	e.textAttrs.align = align
	e.MarkDirty()
}

// Style returns the base layout style, without constraints.
func (e *Element) Style() LayoutStyle {
	return e.style
}

// SetStyle replaces the base layout style.
func (e *Element) SetStyle(style LayoutStyle) {
	e.style = style
	e.MarkDirty()
}

// Constraints returns the active constraints on this element in activation order.
func (e *Element) Constraints() []*Constraint {
	if len(e.constraints) == 0 {
		return nil
	}
	return append([]*Constraint(nil), e.constraints...)
}

func (e *Element) removeConstraint(c *Constraint) {
	for i, have := range e.constraints {
		if have == c {
			e.constraints = append(e.constraints[:i], e.constraints[i+1:]...)
			return
		}
	}
}

func (e *Element) resolvedTextAttrs() textAttrs {
	attrs := e.textAttrs
	var style LayoutStyle
	for _, c := range e.constraints {
		c.rule.apply(&style, &attrs)
	}
	return attrs
}

// Rect returns the border box computed by the last layout.
func (e *Element) Rect() Rect {
	return e.layout.Rect
}

// ContentRect returns the area inside padding computed by the last layout.
func (e *Element) ContentRect() Rect {
	return e.layout.ContentRect
}

// SetFrame places the element before any layout has run, such as when a
// widget is created with an initial frame.
func (e *Element) SetFrame(r Rect) {
	e.layout.Rect = r
	e.layout.ContentRect = r.Inset(e.LayoutStyle().Padding)
	e.lastFrame = r
}

// App returns the app the element is attached to, or nil.
func (e *Element) App() *App {
	return e.app
}

// Traits returns the traits in effect for this element: its own override,
// else the nearest ancestor's, else the app's, else DefaultTraits.
func (e *Element) Traits() Traits {
	for n := e; n != nil; n = n.parent {
		if n.traits != nil {
			return *n.traits
		}
		if n.parent == nil && n.app != nil {
			return n.app.Traits()
		}
	}
	return DefaultTraits()
}

// SetTraitOverride overrides the traits for this element's subtree.
func (e *Element) SetTraitOverride(t Traits) {
	prev := e.Traits()
	e.traits = &t
	e.traitsChanged(prev)
}

// ClearTraitOverride removes an override set by SetTraitOverride.
func (e *Element) ClearTraitOverride() {
	if e.traits == nil {
		return
	}
	prev := e.Traits()
	e.traits = nil
	e.traitsChanged(prev)
}

// traitsChanged notifies the subtree that inherited traits may have changed
// from prev. Subtrees with their own override are unaffected.
func (e *Element) traitsChanged(prev Traits) {
	if e.Traits() == prev {
		return
	}
	e.MarkDirty()
	if e.onTraitsChange != nil {
		e.onTraitsChange(prev)
	}
	for _, child := range e.children {
		if child.traits == nil {
			child.traitsChanged(prev)
		}
	}
}

// SetOnAttach sets the callback run when the element is added to a parent
// or becomes an app's root.
func (e *Element) SetOnAttach(fn func()) {
	e.onAttach = fn
}

// SetOnFrameChange sets the callback run after a layout pass changes the
// element's size.
func (e *Element) SetOnFrameChange(fn func(old, new Rect)) {
	e.onFrameChange = fn
}

// SetOnTraitsChange sets the callback run when the element's effective
// traits change.
func (e *Element) SetOnTraitsChange(fn func(previous Traits)) {
	e.onTraitsChange = fn
}

// SetOnUpdateConstraints sets the callback run at the start of a layout
// pass after SetNeedsUpdateConstraints.
func (e *Element) SetOnUpdateConstraints(fn func()) {
	e.onUpdateConstraints = fn
}

// SetNeedsUpdateConstraints requests the update-constraints callback on
// the next layout pass.
func (e *Element) SetNeedsUpdateConstraints() {
	e.needsUpdateConstraints = true
	e.MarkDirty()
}

// SetOnLayoutSubviews sets the callback run after each layout pass has
// positioned the element and its subtree.
func (e *Element) SetOnLayoutSubviews(fn func()) {
	e.onLayoutSubviews = fn
}

// String returns the element's name.
func (e *Element) String() string {
	return e.Name()
}
