package layout

// testNode is a minimal Layoutable used across the layout tests.
type testNode struct {
	style    Style
	children []*testNode
	parent   *testNode
	layout   Layout
	dirty    bool

	// Intrinsic content size for leaves.
	width, height int
	// wrap makes the leaf behave like wrapped text: height is the number of
	// lines needed to fit width cells of content at the offered width.
	wrap bool

	setLayoutCalls int
}

func newTestNode(style Style) *testNode {
	return &testNode{style: style, dirty: true}
}

func newLeaf(width, height int) *testNode {
	n := newTestNode(DefaultStyle())
	n.width, n.height = width, height
	return n
}

func newTextLeaf(width int) *testNode {
	n := newLeaf(width, 1)
	n.wrap = true
	return n
}

func (n *testNode) AddChild(children ...*testNode) {
	for _, child := range children {
		child.parent = n
		n.children = append(n.children, child)
	}
	n.MarkDirty()
}

func (n *testNode) SetStyle(style Style) {
	n.style = style
	n.MarkDirty()
}

func (n *testNode) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}

func (n *testNode) SetLayout(l Layout) {
	n.layout = l
	n.setLayoutCalls++
}

func (n *testNode) GetLayout() Layout         { return n.layout }
func (n *testNode) IsDirty() bool             { return n.dirty }
func (n *testNode) SetDirty(dirty bool)       { n.dirty = dirty }
func (n *testNode) IntrinsicSize() (int, int) { return n.width, n.height }

func (n *testNode) HeightForWidth(width int) int {
	if !n.wrap {
		return n.height
	}
	if width <= 0 {
		return 0
	}
	return (n.width + width - 1) / width
}

func fixedStyle(w, h int) Style {
	s := DefaultStyle()
	s.Width = Fixed(w)
	s.Height = Fixed(h)
	return s
}
