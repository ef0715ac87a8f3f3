package reflow

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ellipsis marks text cut short by a line limit.
const ellipsis = "…"

// TextWidth returns the number of cells s occupies on one line when spacing
// blank cells separate consecutive grapheme clusters.
func TextWidth(s string, spacing int) int {
	width, count := 0, 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
		count++
	}
	if count > 1 && spacing > 0 {
		width += spacing * (count - 1)
	}
	return width
}

// WrapText breaks s into lines no wider than width cells, breaking at the
// line-break opportunities of UAX #14. Words wider than a whole line are
// split between grapheme clusters. Hard line breaks in s are kept.
// Trailing spaces are trimmed from every line.
func WrapText(s string, width, spacing int) []string {
	if s == "" || width <= 0 {
		return nil
	}

	var lines []string
	line := ""
	state := -1
	for rest := s; rest != ""; {
		var segment string
		var mustBreak bool
		segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		segment = strings.TrimRight(segment, "\r\n")

		switch candidate := line + segment; {
		case fitsLine(candidate, width, spacing):
			line = candidate
		case line != "" && fitsLine(segment, width, spacing):
			lines = append(lines, trimLine(line))
			line = segment
		default:
			if line != "" {
				lines = append(lines, trimLine(line))
			}
			word := trimLine(segment)
			chunks := splitGraphemes(word, width, spacing)
			lines = append(lines, chunks[:len(chunks)-1]...)
			line = chunks[len(chunks)-1] + segment[len(word):]
		}

		if mustBreak && rest != "" {
			lines = append(lines, trimLine(line))
			line = ""
		}
	}
	return append(lines, trimLine(line))
}

// TruncateText shortens s so that it fits in width cells, replacing the
// removed tail with an ellipsis.
func TruncateText(s string, width, spacing int) string {
	if TextWidth(s, spacing) <= width {
		return s
	}
	return withEllipsis(s, width, spacing)
}

// withEllipsis appends an ellipsis to s, dropping trailing grapheme clusters
// until the result fits in width cells.
func withEllipsis(s string, width, spacing int) string {
	var clusters []string
	g := uniseg.NewGraphemes(trimLine(s))
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	for n := len(clusters); n >= 0; n-- {
		candidate := trimLine(strings.Join(clusters[:n], "")) + ellipsis
		if TextWidth(candidate, spacing) <= width {
			return candidate
		}
	}
	return ""
}

func fitsLine(s string, width, spacing int) bool {
	return TextWidth(trimLine(s), spacing) <= width
}

func trimLine(s string) string {
	return strings.TrimRight(s, " ")
}

// splitGraphemes cuts s into pieces of at most width cells. A single
// cluster wider than width is kept whole. It always returns at least one piece.
func splitGraphemes(s string, width, spacing int) []string {
	var chunks []string
	var cur strings.Builder
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if cur.Len() > 0 && TextWidth(cur.String()+cluster, spacing) > width {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		cur.WriteString(cluster)
	}
	return append(chunks, cur.String())
}
