package reflow

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// testPolicy arranges fixed items in a row or a column and counts builds.
type testPolicy struct {
	c          *Component
	items      []*Element
	horizontal int
	vertical   int
}

func (p *testPolicy) ConstraintsForHorizontal() []*Constraint {
	p.horizontal++
	cs := []*Constraint{Constrain(p.c.Content(), Axis(Row))}
	for i, item := range p.items {
		cs = append(cs, Constrain(item, Order(i)), Constrain(item, Shrink(0)))
	}
	return cs
}

func (p *testPolicy) ConstraintsForVertical() []*Constraint {
	p.vertical++
	cs := []*Constraint{Constrain(p.c.Content(), Axis(Column))}
	for i, item := range p.items {
		cs = append(cs, Constrain(item, Order(i)))
	}
	return cs
}

// deciderPolicy always reports the same ideal orientation.
type deciderPolicy struct {
	testPolicy
	ideal Orientation
	calls int
}

func (p *deciderPolicy) ComputeIdealOrientation() Orientation {
	p.calls++
	return p.ideal
}

// newTestComponent creates a component holding one fixed-size item per width.
func newTestComponent(t *testing.T, widths []int, opts ...ComponentOption) (*Component, *testPolicy) {
	t.Helper()
	p := &testPolicy{}
	c := NewComponent(p, opts...)
	p.c = c
	for _, w := range widths {
		item := New(WithSize(w, 1))
		c.Content().AddChild(item)
		p.items = append(p.items, item)
	}
	return c, p
}

// countActive returns the number of active constraints in e's subtree.
func countActive(e *Element) int {
	n := 0
	e.Walk(func(el *Element) {
		n += len(el.Constraints())
	})
	return n
}

func describe(cs []*Constraint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// screenRows returns the visible rows of screen with trailing blanks trimmed.
func screenRows(screen tcell.SimulationScreen) []string {
	cells, width, height := screen.GetContents()
	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		for x := 0; x < width; x++ {
			runes := cells[y*width+x].Runes
			if len(runes) == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(string(runes))
		}
		rows[y] = strings.TrimRight(b.String(), " ")
	}
	return rows
}
