package reflow

import "github.com/gdamore/tcell/v2"

// Option configures an Element.
type Option func(*Element)

// WithName sets the name used in logs and constraint descriptions.
func WithName(name string) Option {
	return func(e *Element) {
		e.name = name
	}
}

// --- Dimension Options ---

// WithWidth sets a fixed width in terminal cells.
func WithWidth(cells int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(cells)
	}
}

// WithHeight sets a fixed height in terminal cells.
func WithHeight(cells int) Option {
	return func(e *Element) {
		e.style.Height = Fixed(cells)
	}
}

// WithSize sets both width and height in terminal cells.
func WithSize(width, height int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(width)
		e.style.Height = Fixed(height)
	}
}

// WithMinWidth sets the minimum width in terminal cells.
func WithMinWidth(cells int) Option {
	return func(e *Element) {
		e.style.MinWidth = Fixed(cells)
	}
}

// WithMaxWidth sets the maximum width in terminal cells.
func WithMaxWidth(cells int) Option {
	return func(e *Element) {
		e.style.MaxWidth = Fixed(cells)
	}
}

// --- Flex Container Options ---

// WithDirection sets the main axis direction for laying out children.
func WithDirection(d Direction) Option {
	return func(e *Element) {
		e.style.Direction = d
	}
}

// WithWrap lets a row continue overflowing children on a new line.
func WithWrap(wrap bool) Option {
	return func(e *Element) {
		e.style.Wrap = wrap
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) Option {
	return func(e *Element) {
		e.style.JustifyContent = j
	}
}

// WithAlign sets how children are aligned on the cross axis.
func WithAlign(a Align) Option {
	return func(e *Element) {
		e.style.AlignItems = a
	}
}

// WithGap sets the gap between children in terminal cells.
func WithGap(cells int) Option {
	return func(e *Element) {
		e.style.Gap = cells
	}
}

// --- Flex Item Options ---

// WithFlexGrow sets how much this element grows relative to siblings.
func WithFlexGrow(factor float64) Option {
	return func(e *Element) {
		e.style.FlexGrow = factor
	}
}

// WithFlexShrink sets how much this element shrinks relative to siblings.
func WithFlexShrink(factor float64) Option {
	return func(e *Element) {
		e.style.FlexShrink = factor
	}
}

// --- Spacing Options ---

// WithPadding sets uniform padding on all sides.
func WithPadding(cells int) Option {
	return func(e *Element) {
		e.style.Padding = EdgeAll(cells)
	}
}

// WithPaddingEdges sets padding per side.
func WithPaddingEdges(edges Edges) Option {
	return func(e *Element) {
		e.style.Padding = edges
	}
}

// WithMarginEdges sets margin per side.
func WithMarginEdges(edges Edges) Option {
	return func(e *Element) {
		e.style.Margin = edges
	}
}

// --- Text Options ---

// WithText sets the element's text.
func WithText(text string) Option {
	return func(e *Element) {
		e.text = text
	}
}

// WithTextStyle sets the style text is drawn with.
func WithTextStyle(style tcell.Style) Option {
	return func(e *Element) {
		e.textStyle = style
	}
}

// WithTextAlign sets the base text alignment.
func WithTextAlign(align TextAlign) Option {
	return func(e *Element) {
		e.textAttrs.align = align
	}
}

// WithMaxLines sets the base line limit; 0 means unlimited.
func WithMaxLines(n int) Option {
	return func(e *Element) {
		e.textAttrs.maxLines = max(n, 0)
	}
}

// WithTraits overrides the traits for the element's subtree.
func WithTraits(t Traits) Option {
	return func(e *Element) {
		e.traits = &t
	}
}
