package reflow

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the styles widgets draw with.
type Theme struct {
	Background     tcell.Style
	Label          tcell.Style
	SecondaryLabel tcell.Style
	Tint           tcell.Style
}

// DefaultTheme returns a dark theme. The secondary label colour is the
// label blended toward the background in Lab space.
func DefaultTheme() Theme {
	return NewTheme(
		mustHex("#1c1c1e"),
		mustHex("#f2f2f7"),
		colorful.Hsv(211, 0.85, 1.0),
	)
}

// NewTheme derives a theme from a background, a label and a tint colour.
func NewTheme(background, label, tint colorful.Color) Theme {
	base := tcell.StyleDefault.Background(toColor(background))
	return Theme{
		Background:     base,
		Label:          base.Foreground(toColor(label)).Bold(true),
		SecondaryLabel: base.Foreground(toColor(label.BlendLab(background, 0.4))),
		Tint:           base.Foreground(toColor(tint)),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("reflow: " + err.Error())
	}
	return c
}

func toColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
