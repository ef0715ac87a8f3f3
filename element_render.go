package reflow

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Draw renders e and its descendants onto screen using their last layout.
// Text is wrapped to the content width and cut at the line limit with a
// trailing ellipsis.
func (e *Element) Draw(screen tcell.Screen) {
	w, h := screen.Size()
	e.draw(screen, NewRect(0, 0, w, h))
}

func (e *Element) draw(screen tcell.Screen, clip Rect) {
	clip = e.layout.Rect.Intersect(clip)
	if clip.IsEmpty() {
		return
	}
	if e.text != "" {
		e.drawText(screen, clip)
	}
	for _, child := range e.children {
		child.draw(screen, clip)
	}
}

// DisplayLines returns the lines Draw shows for the element's text in its
// current layout.
func (e *Element) DisplayLines() []string {
	content := e.layout.ContentRect
	spacing := e.letterSpacing()
	lines := WrapText(e.text, content.Width, spacing)

	limit := content.Height
	if maxLines := e.MaxLines(); maxLines > 0 {
		limit = min(limit, maxLines)
	}
	if limit <= 0 {
		return nil
	}
	if len(lines) > limit {
		lines = lines[:limit]
		lines[limit-1] = withEllipsis(lines[limit-1], content.Width, spacing)
	}
	return lines
}

func (e *Element) drawText(screen tcell.Screen, clip Rect) {
	content := e.layout.ContentRect
	spacing := e.letterSpacing()
	align := e.TextAlign()

	for i, line := range e.DisplayLines() {
		y := content.Y + i
		x := content.X
		switch free := content.Width - TextWidth(line, spacing); align {
		case TextAlignRight:
			x += free
		case TextAlignCenter:
			x += free / 2
		}

		g := uniseg.NewGraphemes(line)
		for g.Next() {
			runes := g.Runes()
			width := runewidth.StringWidth(g.Str())
			if clip.Contains(x, y) && x+width <= clip.Right() {
				screen.SetContent(x, y, runes[0], runes[1:], e.textStyle)
			}
			x += width + spacing
		}
	}
}
