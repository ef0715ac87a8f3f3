package header

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/reflowkit/reflow"
)

func describe(cs []*reflow.Constraint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

func newHeader(t *testing.T, m Model) (*Header, *reflow.ManualScheduler) {
	t.Helper()
	sched := &reflow.ManualScheduler{}
	h := New(reflow.WithScheduler(sched))
	h.SetModel(m)
	return h, sched
}

func TestHeader_ElementsCreatedOnce(t *testing.T) {
	h := New()

	title := h.Title()
	if h.Title() != title {
		t.Error("Title() should return the same element")
	}
	if got := len(h.Content().Children()); got != 1 {
		t.Errorf("content children = %d, want 1", got)
	}

	h.SetModel(Samples()[0])
	h.SetModel(Samples()[1])

	if got := len(h.Content().Children()); got != 3 {
		t.Errorf("content children = %d, want 3", got)
	}
	if h.Title() != title {
		t.Error("SetModel should reuse the title element")
	}
	if diff := cmp.Diff(Samples()[1], h.Model()); diff != "" {
		t.Errorf("Model() mismatch (-want +got):\n%s", diff)
	}
}

func TestHeader_SetModelSkipsEmptyFields(t *testing.T) {
	h := New()
	h.SetModel(Model{Title: "Settings", Button: "Done"})

	var names []string
	for _, child := range h.Content().Children() {
		names = append(names, child.Name())
	}
	if diff := cmp.Diff([]string{"title", "button"}, names); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestHeader_Constraints(t *testing.T) {
	type tc struct {
		setup      func(h *Header)
		horizontal []string
		vertical   []string
	}

	tests := map[string]tc{
		"empty": {
			setup:      func(*Header) {},
			horizontal: []string{"content: axis=row", "content: wrap", "content: padding=0,0,1,0"},
			vertical:   []string{"content: axis=column", "content: padding=0,0,1,0"},
		},
		"button without title": {
			setup:      func(h *Header) { h.Button() },
			horizontal: []string{"content: axis=row", "content: wrap", "content: padding=0,0,1,0"},
			vertical: []string{
				"content: axis=column", "content: padding=0,0,1,0",
				"button: order=2", "button: text-align=left", "button: max-lines=0", "button: margin=1,0,0,0",
			},
		},
		"all elements": {
			setup: func(h *Header) {
				h.Subtitle()
				h.Button()
				h.Title()
			},
			horizontal: []string{
				"content: axis=row", "content: wrap", "content: padding=0,0,1,0",
				"title: order=0", "title: basis=0", "title: grow=1", "title: min-width=12",
				"title: max-lines=2", "title: margin=1,0,0,0",
				"button: order=1", "button: shrink=0", "button: margin=1,0,0,1",
				"button: align-self=start", "button: text-align=right", "button: max-lines=1",
				"subtitle: order=2", "subtitle: break-before", "subtitle: grow=1", "subtitle: max-lines=2",
			},
			vertical: []string{
				"content: axis=column", "content: padding=0,0,1,0",
				"title: order=0", "title: max-lines=4", "title: margin=1,0,0,0",
				"subtitle: order=1", "subtitle: max-lines=2",
				"button: order=2", "button: text-align=left", "button: max-lines=0", "button: margin=1,0,0,0",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := New()
			tt.setup(h)

			if diff := cmp.Diff(tt.horizontal, describe(h.ConstraintsForHorizontal())); diff != "" {
				t.Errorf("horizontal mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.vertical, describe(h.ConstraintsForVertical())); diff != "" {
				t.Errorf("vertical mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHeader_ConstraintsScaleWithContentSize(t *testing.T) {
	h := New()
	h.Surface().SetTraitOverride(reflow.Traits{ContentSize: reflow.ContentSizeAccessibilityLarge})

	got := describe(h.ConstraintsForVertical())
	if diff := cmp.Diff([]string{"content: axis=column", "content: padding=0,0,2,0"}, got); diff != "" {
		t.Errorf("vertical mismatch (-want +got):\n%s", diff)
	}
}

func TestHeader_Orientation(t *testing.T) {
	type tc struct {
		model Model
		width int
		want  reflow.Orientation
	}

	tests := map[string]tc{
		"short title fits": {
			model: Samples()[0],
			width: 40,
			want:  reflow.Horizontal,
		},
		"long title truncates": {
			model: Samples()[2],
			width: 40,
			want:  reflow.Vertical,
		},
		"long title fits when wide": {
			model: Samples()[2],
			width: 120,
			want:  reflow.Horizontal,
		},
		"long subtitle is not considered": {
			model: Model{Title: "Title", Subtitle: strings.Repeat("subtitle ", 20), Button: "Go"},
			width: 30,
			want:  reflow.Horizontal,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, _ := newHeader(t, tt.model)
			h.Surface().Layout(tt.width, 20)

			if got := h.EffectiveOrientation(); got != tt.want {
				t.Errorf("EffectiveOrientation() = %v, want %v", got, tt.want)
			}
			if got := h.PreferredOrientation(); got != reflow.Horizontal {
				t.Errorf("PreferredOrientation() = %v, want horizontal", got)
			}
		})
	}
}

func TestHeader_ContentSizeIncreaseGoesVertical(t *testing.T) {
	h, sched := newHeader(t, Samples()[1])
	h.Surface().Layout(40, 20)
	sched.Flush()
	if got := h.EffectiveOrientation(); got != reflow.Horizontal {
		t.Fatalf("EffectiveOrientation() = %v, want horizontal", got)
	}

	h.Surface().SetTraitOverride(reflow.Traits{ContentSize: reflow.ContentSizeAccessibilityExtraLarge})
	if got := h.State(); got != reflow.ReevaluationScheduled {
		t.Errorf("State() = %v, want %v", got, reflow.ReevaluationScheduled)
	}
	h.Surface().Layout(40, 20)

	if got := h.EffectiveOrientation(); got != reflow.Vertical {
		t.Errorf("EffectiveOrientation() = %v, want vertical", got)
	}
}

func TestHeader_SetModelSchedulesReevaluation(t *testing.T) {
	h, sched := newHeader(t, Samples()[0])
	h.Surface().Layout(40, 20)
	sched.Flush()

	h.SetModel(Samples()[2])

	if got := h.State(); got != reflow.ReevaluationScheduled {
		t.Fatalf("State() = %v, want %v", got, reflow.ReevaluationScheduled)
	}
	h.Surface().Layout(40, 20)
	if got := h.EffectiveOrientation(); got != reflow.Vertical {
		t.Errorf("EffectiveOrientation() = %v, want vertical", got)
	}
}

func TestHeader_Draw(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 5)

	h, _ := newHeader(t, Samples()[0])
	h.Surface().Layout(20, 5)
	h.Surface().Draw(screen)
	screen.Show()

	cells, width, height := screen.GetContents()
	rows := make([]string, height)
	for y := range height {
		var b strings.Builder
		for x := range width {
			if runes := cells[y*width+x].Runes; len(runes) > 0 {
				b.WriteString(string(runes))
			} else {
				b.WriteByte(' ')
			}
		}
		rows[y] = strings.TrimRight(b.String(), " ")
	}

	want := []string{"", "Inbox           Edit", "3 unread", "", ""}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestRestore_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Restore should panic")
		}
	}()
	Restore(reflow.ComponentState{})
}

func TestRegister(t *testing.T) {
	r := reflow.NewRegistry()
	if err := Register(r); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := Register(r); err == nil {
		t.Error("second Register() should fail")
	}

	w, err := r.New(Kind, reflow.Vertical, reflow.NewRect(0, 0, 40, 4))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h, ok := w.(*Header)
	if !ok {
		t.Fatalf("New() returned %T, want *Header", w)
	}
	if got := h.EffectiveOrientation(); got != reflow.Vertical {
		t.Errorf("EffectiveOrientation() = %v, want vertical", got)
	}
}
