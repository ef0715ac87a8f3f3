package layout

// Calculate performs layout calculation on the tree rooted at root.
// The root and all descendants will have their Layout field populated.
// Only dirty nodes, or nodes whose allotted space changed, are recalculated.
//
// availableWidth and availableHeight specify the root constraint
// (typically the terminal size).
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}

	// For the root node, resolve its width/height constraints against
	// the available space. This is different from child nodes, which
	// receive their size from the parent's flex calculations.
	style := root.LayoutStyle()
	width := style.Width.Resolve(availableWidth, availableWidth)
	height := style.Height.Resolve(availableHeight, availableHeight)

	calculateNode(root, NewRect(0, 0, width, height))
}

// Recalculate lays out node's subtree again inside the border box it was
// given by the last Calculate. Ancestors and siblings are left untouched,
// which makes it suitable for re-measuring a single container after its
// children changed.
func Recalculate(node Layoutable) {
	if node == nil {
		return
	}
	calculateNode(node, node.GetLayout().Rect)
}

// calculateNode computes the layout for a single node within the available space.
// The available rect represents the border box space allocated by the parent
// (after the parent has already applied this node's margin).
func calculateNode(node Layoutable, available Rect) {
	// Dirty propagates up, so a clean node in an unchanged slot has a clean subtree
	if !node.IsDirty() && node.GetLayout().Rect == available {
		return
	}

	style := node.LayoutStyle()

	borderBox := computeBorderBox(style, available)
	contentRect := borderBox.Inset(style.Padding)

	if children := node.LayoutChildren(); len(children) > 0 {
		layoutChildren(style, children, contentRect)
	}

	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	})
	node.SetDirty(false)
}

// computeBorderBox calculates the border box dimensions for a node.
// The available rect already carries the flex-computed slot size, so only
// min/max constraints are applied here.
func computeBorderBox(style Style, available Rect) Rect {
	width := clamp(available.Width,
		style.MinWidth.Resolve(available.Width, 0),
		style.MaxWidth.Resolve(available.Width, available.Width))
	height := clamp(available.Height,
		style.MinHeight.Resolve(available.Height, 0),
		style.MaxHeight.Resolve(available.Height, available.Height))

	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  max(0, width),
		Height: max(0, height),
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
