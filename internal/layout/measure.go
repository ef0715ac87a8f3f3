package layout

// Unbounded is the width to pass to Measure for a node's natural size.
// It is large enough to never wrap and small enough to never overflow
// when margins and gaps are added to it.
const Unbounded = 1 << 30

// bounded reports whether w is a real width rather than Unbounded reduced
// by some padding or margin.
func bounded(w int) bool {
	return w < Unbounded/2
}

// Measure returns the border-box size node would like when offered at most
// maxWidth cells of width. Wrapped text reports the height it needs at the
// resulting width. Measure does not read or write stored layouts and does
// not clear dirty flags.
func Measure(node Layoutable, maxWidth int) Size {
	if node == nil {
		return Size{}
	}
	maxWidth = max(0, maxWidth)
	style := node.LayoutStyle()

	fixedW, hasFixedW := style.Width.definite(maxWidth)
	outer := maxWidth
	if hasFixedW {
		outer = fixedW
	}
	innerMax := max(0, outer-style.Padding.Horizontal())

	var inner Size
	children := node.LayoutChildren()
	switch {
	case len(children) == 0:
		inner = measureLeaf(node, innerMax)
	case style.Direction == Column:
		inner = measureColumn(style, newItems(children), innerMax)
	default:
		inner = measureRow(style, newItems(children), innerMax)
	}

	size := Size{
		Width:  inner.Width + style.Padding.Horizontal(),
		Height: inner.Height + style.Padding.Vertical(),
	}
	if hasFixedW {
		size.Width = fixedW
	}
	if h, ok := style.Height.definite(Unbounded); ok {
		size.Height = h
	}

	size.Width = clamp(size.Width, minOf(style.MinWidth, maxWidth), maxOf(style.MaxWidth, maxWidth))
	size.Height = clamp(size.Height, minOf(style.MinHeight, Unbounded), maxOf(style.MaxHeight, Unbounded))
	return size
}

func measureLeaf(node Layoutable, innerMax int) Size {
	w, h := node.IntrinsicSize()
	w = min(w, innerMax)
	if hw, ok := node.(HeightForWidther); ok {
		h = hw.HeightForWidth(w)
	}
	return Size{Width: w, Height: h}
}

func measureColumn(style Style, items []flexItem, innerMax int) Size {
	var size Size
	for i := range items {
		it := &items[i]
		mh, mv := it.style.Margin.Horizontal(), it.style.Margin.Vertical()
		m := Measure(it.node, innerMax-mh)
		size.Width = max(size.Width, m.Width+mh)
		size.Height += m.Height + mv
		if i > 0 {
			size.Height += style.Gap
		}
	}
	return size
}

func measureRow(style Style, items []flexItem, innerMax int) Size {
	for i := range items {
		items[i].base = rowBase(&items[i], innerMax)
	}

	var size Size
	lines := breakLines(style, items, innerMax)
	for li, line := range lines {
		if bounded(innerMax) {
			resolveMain(line, innerMax, style.Gap, true)
		} else {
			for _, it := range line {
				it.main = it.base
			}
		}

		width := style.Gap * max(0, len(line)-1)
		height := 0
		for _, it := range line {
			width += it.main
			height = max(height, rowItemHeight(it, Unbounded))
		}
		size.Width = max(size.Width, width)
		size.Height += height
		if li > 0 {
			size.Height += style.Gap
		}
	}
	return size
}

// rowBase is an item's hypothetical outer main size in a row: its definite
// basis raised to its minimum width, its definite width, or its natural
// width, plus horizontal margin.
func rowBase(it *flexItem, available int) int {
	mh := it.style.Margin.Horizontal()
	if b, ok := it.style.FlexBasis.definite(available); ok {
		return max(b+mh, mainMin(it, true))
	}
	if w, ok := it.style.Width.definite(available); ok {
		return w + mh
	}
	return Measure(it.node, Unbounded).Width + mh
}

// rowItemHeight is an item's outer height once its main size is known.
func rowItemHeight(it *flexItem, availableHeight int) int {
	mv := it.style.Margin.Vertical()
	if h, ok := it.style.Height.definite(availableHeight); ok {
		return h + mv
	}
	return Measure(it.node, it.main-it.style.Margin.Horizontal()).Height + mv
}

func minOf(v Value, available int) int {
	if n, ok := v.definite(available); ok {
		return n
	}
	return 0
}

func maxOf(v Value, available int) int {
	if n, ok := v.definite(available); ok {
		return n
	}
	return Unbounded
}
