package layout

import (
	"cmp"
	"slices"
)

// flexItem holds intermediate calculation state for a child.
// Main sizes are outer sizes: they include the child's margin.
type flexItem struct {
	node     Layoutable
	style    Style
	base     int
	main     int
	cross    int
	mainPos  int
	crossPos int
	slot     Rect
}

// newItems wraps children in flex items sorted by Order. The sort is stable,
// so children with equal Order keep insertion order.
func newItems(children []Layoutable) []flexItem {
	items := make([]flexItem, len(children))
	for i, child := range children {
		items[i] = flexItem{node: child, style: child.LayoutStyle()}
	}
	slices.SortStableFunc(items, func(a, b flexItem) int {
		return cmp.Compare(a.style.Order, b.style.Order)
	})
	return items
}

// layoutChildren arranges the children of a container within its content
// rect and recurses into each of them.
func layoutChildren(style Style, children []Layoutable, contentRect Rect) {
	items := newItems(children)
	if style.Direction == Column {
		layoutColumn(style, items, contentRect)
	} else {
		layoutRow(style, items, contentRect)
	}

	for i := range items {
		// The child receives its border box and does NOT re-apply margin.
		calculateNode(items[i].node, items[i].slot.Inset(items[i].style.Margin))
	}
}

func layoutColumn(style Style, items []flexItem, content Rect) {
	line := make([]*flexItem, len(items))
	for i := range items {
		it := &items[i]
		line[i] = it

		mh, mv := it.style.Margin.Horizontal(), it.style.Margin.Vertical()
		align := alignFor(style, it.style)
		inner := max(0, content.Width-mh)

		if w, ok := it.style.Width.definite(content.Width); ok {
			it.cross = w + mh
		} else if align == AlignStretch {
			it.cross = content.Width
		} else {
			it.cross = min(Measure(it.node, inner).Width, inner) + mh
		}

		if h, ok := it.style.Height.definite(content.Height); ok {
			it.base = h + mv
		} else {
			it.base = Measure(it.node, max(0, it.cross-mh)).Height + mv
		}
		it.crossPos = alignOffset(align, content.Width, it.cross)
	}

	resolveMain(line, content.Height, style.Gap, false)
	placeMain(style, line, content.Height)

	for _, it := range line {
		it.slot = Rect{
			X:      content.X + it.crossPos,
			Y:      content.Y + it.mainPos,
			Width:  it.cross,
			Height: it.main,
		}
	}
}

func layoutRow(style Style, items []flexItem, content Rect) {
	for i := range items {
		items[i].base = rowBase(&items[i], content.Width)
	}

	y := 0
	for _, line := range breakLines(style, items, content.Width) {
		resolveMain(line, content.Width, style.Gap, true)
		placeMain(style, line, content.Width)

		heights := make([]int, len(line))
		lineHeight := 0
		for i, it := range line {
			heights[i] = rowItemHeight(it, content.Height)
			lineHeight = max(lineHeight, heights[i])
		}
		if !style.Wrap {
			// A single-line row owns its whole cross axis
			lineHeight = content.Height
		}

		for i, it := range line {
			align := alignFor(style, it.style)
			it.cross = heights[i]
			if align == AlignStretch && it.style.Height.IsAuto() {
				it.cross = lineHeight
			}
			it.crossPos = y + alignOffset(align, lineHeight, it.cross)
			it.slot = Rect{
				X:      content.X + it.mainPos,
				Y:      content.Y + it.crossPos,
				Width:  it.main,
				Height: it.cross,
			}
		}
		y += lineHeight + style.Gap
	}
}

// breakLines splits a row into flex lines. Without Wrap every item shares a
// single line; with Wrap a line ends when the next item would overflow or
// asks for a break.
func breakLines(style Style, items []flexItem, available int) [][]*flexItem {
	var lines [][]*flexItem
	var line []*flexItem
	used := 0
	for i := range items {
		it := &items[i]
		if style.Wrap && len(line) > 0 {
			if it.style.BreakBefore || used+style.Gap+it.base > available {
				lines = append(lines, line)
				line, used = nil, 0
			}
		}
		if len(line) > 0 {
			used += style.Gap
		}
		line = append(line, it)
		used += it.base
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// resolveMain distributes free space on one line: growing items when there
// is room, shrinking them when there is not, then applying min/max.
func resolveMain(line []*flexItem, available, gap int, isRow bool) {
	total := gap * max(0, len(line)-1)
	var totalGrow, totalShrink float64
	for _, it := range line {
		it.main = it.base
		total += it.base
		totalGrow += it.style.FlexGrow
		totalShrink += it.style.FlexShrink
	}

	free := available - total
	switch {
	case free > 0 && totalGrow > 0:
		distribute(line, free, totalGrow, func(it *flexItem) float64 { return it.style.FlexGrow })
	case free < 0 && totalShrink > 0:
		distribute(line, free, totalShrink, func(it *flexItem) float64 { return it.style.FlexShrink })
	}

	for _, it := range line {
		it.main = clamp(it.main, mainMin(it, isRow), mainMax(it, isRow, available))
	}
}

// distribute spreads amount (negative when shrinking) across the items in
// proportion to their factor. The rounding remainder goes to the last
// participating item so no cell is lost.
func distribute(line []*flexItem, amount int, total float64, factor func(*flexItem) float64) {
	given := 0
	last := -1
	for i, it := range line {
		f := factor(it)
		if f <= 0 {
			continue
		}
		share := int(float64(amount) * f / total)
		it.main += share
		given += share
		last = i
	}
	if last >= 0 {
		line[last].main += amount - given
	}
	for _, it := range line {
		it.main = max(0, it.main)
	}
}

func placeMain(style Style, line []*flexItem, available int) {
	used := style.Gap * max(0, len(line)-1)
	for _, it := range line {
		used += it.main
	}
	free := available - used

	offset := calculateJustifyOffset(style.JustifyContent, free, len(line))
	spacing := calculateJustifySpacing(style.JustifyContent, free, len(line))
	for _, it := range line {
		it.mainPos = offset
		offset += it.main + style.Gap + spacing
	}
}

func mainMin(it *flexItem, isRow bool) int {
	if isRow {
		return minOf(it.style.MinWidth, Unbounded) + it.style.Margin.Horizontal()
	}
	return minOf(it.style.MinHeight, Unbounded) + it.style.Margin.Vertical()
}

func mainMax(it *flexItem, isRow bool, available int) int {
	if isRow {
		if n, ok := it.style.MaxWidth.definite(available); ok {
			return n + it.style.Margin.Horizontal()
		}
		return Unbounded
	}
	if n, ok := it.style.MaxHeight.definite(available); ok {
		return n + it.style.Margin.Vertical()
	}
	return Unbounded
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// alignOffset returns the offset for positioning a child on the cross axis.
func alignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}
