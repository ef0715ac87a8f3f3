package reflow

import (
	"testing"
)

func TestElement_Defaults(t *testing.T) {
	e := New()

	if !e.IsDirty() {
		t.Error("new element should be dirty")
	}
	if e.Parent() != nil || len(e.Children()) != 0 {
		t.Error("new element should have no parent or children")
	}
	if e.MaxLines() != 0 {
		t.Errorf("MaxLines() = %d, want 0 (unlimited)", e.MaxLines())
	}
	if e.App() != nil {
		t.Error("new element should not belong to an app")
	}
}

func TestElement_AddChild_RunsAttach(t *testing.T) {
	parent := New()
	child := New()
	attached := 0
	child.SetOnAttach(func() { attached++ })

	parent.AddChild(child)

	if attached != 1 {
		t.Errorf("attach callback ran %d times, want 1", attached)
	}
	if child.Parent() != parent {
		t.Error("child.Parent() should be parent")
	}
}

func TestElement_AddChild_Reparents(t *testing.T) {
	a := New()
	b := New()
	child := New()

	a.AddChild(child)
	b.AddChild(child)

	if len(a.Children()) != 0 {
		t.Errorf("old parent has %d children, want 0", len(a.Children()))
	}
	if child.Parent() != b {
		t.Error("child.Parent() should be the new parent")
	}
}

func TestElement_RemoveChild_KeepsOrder(t *testing.T) {
	parent := New()
	a, b, c := New(WithName("a")), New(WithName("b")), New(WithName("c"))
	parent.AddChild(a, b, c)

	if !parent.RemoveChild(a) {
		t.Fatal("RemoveChild(a) = false, want true")
	}
	if parent.RemoveChild(a) {
		t.Error("second RemoveChild(a) = true, want false")
	}

	children := parent.Children()
	if len(children) != 2 || children[0] != b || children[1] != c {
		t.Errorf("Children() = %v, want [b c]", children)
	}
}

func TestElement_MarkDirty_PropagatesToAncestors(t *testing.T) {
	root := New(WithSize(10, 10))
	mid := New()
	leaf := New()
	root.AddChild(mid)
	mid.AddChild(leaf)
	root.Calculate(10, 10)

	leaf.MarkDirty()

	for name, e := range map[string]*Element{"root": root, "mid": mid, "leaf": leaf} {
		if !e.IsDirty() {
			t.Errorf("%s should be dirty", name)
		}
	}
}

func TestElement_MarkDirty_Detached(t *testing.T) {
	e := New()
	e.SetDirty(false)
	e.MarkDirty()
	if !e.IsDirty() {
		t.Error("detached element should still be marked dirty")
	}
}

func TestElement_SetText_SameTextKeepsClean(t *testing.T) {
	e := New(WithText("a"))
	e.Calculate(5, 1)

	e.SetText("a")
	if e.IsDirty() {
		t.Error("setting identical text should not dirty the element")
	}
	e.SetText("b")
	if !e.IsDirty() {
		t.Error("changing text should dirty the element")
	}
}

func TestElement_IntrinsicSize(t *testing.T) {
	type tc struct {
		text  string
		size  ContentSizeCategory
		wantW int
		wantH int
	}

	tests := map[string]tc{
		"no text":                 {text: "", size: ContentSizeLarge, wantW: 0, wantH: 0},
		"plain":                   {text: "Inbox", size: ContentSizeLarge, wantW: 5, wantH: 1},
		"accessibility spacing 2": {text: "Inbox", size: ContentSizeAccessibilityLarge, wantW: 13, wantH: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := New(WithText(tt.text), WithTraits(Traits{ContentSize: tt.size}))
			w, h := e.IntrinsicSize()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("IntrinsicSize() = %d, %d, want %d, %d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestElement_HeightForWidth_RespectsMaxLines(t *testing.T) {
	e := New(WithText("one two three four"), WithMaxLines(2))

	if got := e.WrappedLineCount(5); got != 4 {
		t.Errorf("WrappedLineCount(5) = %d, want 4", got)
	}
	if got := e.HeightForWidth(5); got != 2 {
		t.Errorf("HeightForWidth(5) = %d, want 2", got)
	}
	if got := e.HeightForWidth(100); got != 1 {
		t.Errorf("HeightForWidth(100) = %d, want 1", got)
	}
}

func TestElement_FittingSize(t *testing.T) {
	row := New()
	row.AddChild(New(WithText("abc")), New(WithText("defgh")))

	if got := row.FittingSize(); got != (Size{Width: 8, Height: 1}) {
		t.Errorf("FittingSize() = %+v, want {8 1}", got)
	}
	if got := row.SizeThatFits(6); got.Width > 6 {
		t.Errorf("SizeThatFits(6).Width = %d, want at most 6", got.Width)
	}
}

func TestElement_LayoutIfNeeded_ReusesFrame(t *testing.T) {
	root := New(WithSize(20, 4), WithDirection(Column))
	box := New(WithHeight(2))
	a := New(WithText("aaaa"))
	b := New(WithText("bb"))
	box.AddChild(a, b)
	root.AddChild(box)
	root.Calculate(20, 4)

	ActivateConstraints([]*Constraint{Constrain(a, Order(1))})
	box.LayoutIfNeeded()

	if got := b.Rect(); got != NewRect(0, 0, 2, 2) {
		t.Errorf("b.Rect() = %+v, want {0 0 2 2}", got)
	}
	if got := a.Rect(); got != NewRect(2, 0, 4, 2) {
		t.Errorf("a.Rect() = %+v, want {2 0 4 2}", got)
	}
	if !root.IsDirty() {
		t.Error("ancestors of the re-laid-out subtree should stay dirty for the next full pass")
	}
}
