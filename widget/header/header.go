package header

import (
	"github.com/gdamore/tcell/v2"
	"github.com/reflowkit/reflow"
)

// Kind is the registry kind of the header widget.
const Kind = "header"

// titleMinWidth is the narrowest the title may get beside the button.
const titleMinWidth = 12

// Line limits per orientation.
const (
	horizontalTitleLines    = 2
	horizontalSubtitleLines = 2
	horizontalButtonLines   = 1
	verticalTitleLines      = 4
	verticalSubtitleLines   = 2
	verticalButtonLines     = 0 // unlimited
)

// Header is an adaptive header. It embeds the Component that arranges it.
type Header struct {
	*reflow.Component

	title    *reflow.Element
	subtitle *reflow.Element
	button   *reflow.Element
	theme    reflow.Theme
}

var (
	_ reflow.OrientationPolicy        = (*Header)(nil)
	_ reflow.IdealOrientationComputer = (*Header)(nil)
	_ reflow.Widget                   = (*Header)(nil)
)

// New creates an empty header. Sub-elements are created on first access.
func New(opts ...reflow.ComponentOption) *Header {
	h := &Header{theme: reflow.DefaultTheme()}
	h.Component = reflow.NewComponent(h, opts...)
	return h
}

// Restore is the saved-state initializer. Headers are always built in code.
func Restore(reflow.ComponentState) *Header {
	panic("header: restoring a header from saved state is not supported")
}

// Register adds the header factory to r.
func Register(r *reflow.Registry) error {
	return r.Register(Kind, func(preferred reflow.Orientation, frame reflow.Rect) reflow.Widget {
		return New(reflow.WithPreferredOrientation(preferred), reflow.WithFrame(frame))
	})
}

// Title returns the title element, creating it on first use.
func (h *Header) Title() *reflow.Element {
	if h.title == nil {
		h.title = h.addElement("title", h.theme.Label)
	}
	return h.title
}

// Subtitle returns the subtitle element, creating it on first use.
func (h *Header) Subtitle() *reflow.Element {
	if h.subtitle == nil {
		h.subtitle = h.addElement("subtitle", h.theme.SecondaryLabel)
	}
	return h.subtitle
}

// Button returns the action button element, creating it on first use.
func (h *Header) Button() *reflow.Element {
	if h.button == nil {
		h.button = h.addElement("button", h.theme.Tint)
	}
	return h.button
}

func (h *Header) addElement(name string, style tcell.Style) *reflow.Element {
	e := reflow.New(reflow.WithName(name), reflow.WithTextStyle(style))
	h.Content().AddChild(e)
	h.ResetConstraints()
	return e
}

// SetTheme restyles the sub-elements.
func (h *Header) SetTheme(theme reflow.Theme) {
	h.theme = theme
	if h.title != nil {
		h.title.SetTextStyle(theme.Label)
	}
	if h.subtitle != nil {
		h.subtitle.SetTextStyle(theme.SecondaryLabel)
	}
	if h.button != nil {
		h.button.SetTextStyle(theme.Tint)
	}
}

// Model returns the text currently displayed.
func (h *Header) Model() Model {
	var m Model
	if h.title != nil {
		m.Title = h.title.Text()
	}
	if h.subtitle != nil {
		m.Subtitle = h.subtitle.Text()
	}
	if h.button != nil {
		m.Button = h.button.Text()
	}
	return m
}

// SetModel replaces the displayed text and re-evaluates the orientation.
func (h *Header) SetModel(m Model) {
	setText(m.Title, h.title, h.Title)
	setText(m.Subtitle, h.subtitle, h.Subtitle)
	setText(m.Button, h.button, h.Button)
	h.SetNeedsUpdateEffectiveOrientation()
}

func setText(text string, existing *reflow.Element, create func() *reflow.Element) {
	switch {
	case existing != nil:
		existing.SetText(text)
	case text != "":
		create().SetText(text)
	}
}

// ConstraintsForHorizontal lays the content out as a wrapping row: the
// title beside the button, then the subtitle on its own line.
func (h *Header) ConstraintsForHorizontal() []*reflow.Constraint {
	size := h.Surface().Traits().ContentSize
	content := h.Content()
	cs := []*reflow.Constraint{
		reflow.Constrain(content, reflow.Axis(reflow.Row)),
		reflow.Constrain(content, reflow.Wrap()),
		reflow.Constrain(content, reflow.Padding(reflow.Edges{Bottom: size.Scaled(1)})),
	}

	if h.title != nil {
		cs = append(cs,
			reflow.Constrain(h.title, reflow.Order(0)),
			reflow.Constrain(h.title, reflow.Basis(0)),
			reflow.Constrain(h.title, reflow.Grow(1)),
			reflow.Constrain(h.title, reflow.MinWidth(titleMinWidth)),
			reflow.Constrain(h.title, reflow.MaxLines(horizontalTitleLines)),
			reflow.Constrain(h.title, reflow.Margin(reflow.Edges{Top: size.Scaled(1)})),
		)
		// The button is placed relative to the title.
		if h.button != nil {
			cs = append(cs,
				reflow.Constrain(h.button, reflow.Order(1)),
				reflow.Constrain(h.button, reflow.Shrink(0)),
				reflow.Constrain(h.button, reflow.Margin(reflow.Edges{Top: size.Scaled(1), Left: 1})),
				reflow.Constrain(h.button, reflow.AlignSelf(reflow.AlignStart)),
				reflow.Constrain(h.button, reflow.TextAlignment(reflow.TextAlignRight)),
				reflow.Constrain(h.button, reflow.MaxLines(horizontalButtonLines)),
			)
		}
	}

	if h.subtitle != nil {
		cs = append(cs,
			reflow.Constrain(h.subtitle, reflow.Order(2)),
			reflow.Constrain(h.subtitle, reflow.BreakBefore()),
			reflow.Constrain(h.subtitle, reflow.Grow(1)),
			reflow.Constrain(h.subtitle, reflow.MaxLines(horizontalSubtitleLines)),
		)
	}
	return cs
}

// ConstraintsForVertical stacks title, subtitle and button.
func (h *Header) ConstraintsForVertical() []*reflow.Constraint {
	size := h.Surface().Traits().ContentSize
	content := h.Content()
	cs := []*reflow.Constraint{
		reflow.Constrain(content, reflow.Axis(reflow.Column)),
		reflow.Constrain(content, reflow.Padding(reflow.Edges{Bottom: size.Scaled(1)})),
	}

	if h.title != nil {
		cs = append(cs,
			reflow.Constrain(h.title, reflow.Order(0)),
			reflow.Constrain(h.title, reflow.MaxLines(verticalTitleLines)),
			reflow.Constrain(h.title, reflow.Margin(reflow.Edges{Top: size.Scaled(1)})),
		)
	}
	if h.subtitle != nil {
		cs = append(cs,
			reflow.Constrain(h.subtitle, reflow.Order(1)),
			reflow.Constrain(h.subtitle, reflow.MaxLines(verticalSubtitleLines)),
		)
	}
	if h.button != nil {
		cs = append(cs,
			reflow.Constrain(h.button, reflow.Order(2)),
			reflow.Constrain(h.button, reflow.TextAlignment(reflow.TextAlignLeft)),
			reflow.Constrain(h.button, reflow.MaxLines(verticalButtonLines)),
			reflow.Constrain(h.button, reflow.Margin(reflow.Edges{Top: size.Scaled(1)})),
		)
	}
	return cs
}

// ComputeIdealOrientation returns Vertical when the title, at the width the
// horizontal arrangement gave it, needs more lines than it may show.
// Only the title is considered.
func (h *Header) ComputeIdealOrientation() reflow.Orientation {
	if h.titleWillTruncate() {
		return reflow.Vertical
	}
	return reflow.Horizontal
}

func (h *Header) titleWillTruncate() bool {
	if h.title == nil || h.title.Text() == "" {
		return false
	}
	width := h.title.ContentRect().Width
	limit := h.title.MaxLines()
	if width <= 0 || limit == 0 {
		return false
	}
	return h.title.WrappedLineCount(width) > limit
}
