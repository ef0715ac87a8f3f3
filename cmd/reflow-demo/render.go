package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/reflowkit/reflow"
)

// renderHeight bounds the simulated screen; taller headers are clipped.
const renderHeight = 24

// runRender lays out one header on a simulated screen of the requested
// width and prints the decision and the visible rows.
func runRender(args []string, w io.Writer) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	h, err := newHeader(opts)
	if err != nil {
		return err
	}

	screen := tcell.NewSimulationScreen("")
	app, err := reflow.NewApp(
		reflow.WithScreen(screen),
		reflow.WithRoot(h.Surface()),
		reflow.WithAppTraits(reflow.Traits{ContentSize: opts.size}),
	)
	if err != nil {
		return err
	}
	defer app.Close()

	screen.SetSize(opts.width, renderHeight)
	app.Render()

	fmt.Fprintf(w, "preferred=%s effective=%s size=%s width=%d\n",
		h.PreferredOrientation(), h.EffectiveOrientation(), opts.size, opts.width)
	fmt.Fprintln(w, strings.Repeat("-", opts.width))
	for _, row := range screenRows(screen, h.Surface().SizeThatFits(opts.width).Height) {
		fmt.Fprintln(w, row)
	}
	return nil
}

// screenRows returns the first n rows of a simulation screen as text.
func screenRows(screen tcell.SimulationScreen, n int) []string {
	cells, width, height := screen.GetContents()
	n = min(n, height)
	rows := make([]string, 0, n)
	for y := 0; y < n; y++ {
		var b strings.Builder
		for x := 0; x < width; x++ {
			runes := cells[y*width+x].Runes
			if len(runes) == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(string(runes))
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	return rows
}
