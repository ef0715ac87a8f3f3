package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/reflowkit/reflow"
	"github.com/reflowkit/reflow/widget/header"
)

// demo holds the interactive state. All methods run on the app loop.
type demo struct {
	app    *reflow.App
	header *header.Header
	status *reflow.Element
	sample int
}

func runDemo(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	h, err := newHeader(opts)
	if err != nil {
		return err
	}

	d := &demo{header: h, sample: opts.sample}
	theme := reflow.DefaultTheme()
	d.status = reflow.New(
		reflow.WithName("status"),
		reflow.WithTextStyle(theme.SecondaryLabel),
		reflow.WithPaddingEdges(reflow.Edges{Left: 1, Right: 1}),
	)
	root := reflow.New(reflow.WithName("root"), reflow.WithDirection(reflow.Column))
	root.AddChild(h.Surface(), d.status)

	app, err := reflow.NewApp(
		reflow.WithRoot(root),
		reflow.WithTheme(theme),
		reflow.WithAppTraits(reflow.Traits{ContentSize: opts.size}),
		reflow.WithKeyMap(d.keyMap()),
	)
	if err != nil {
		return err
	}
	d.app = app
	h.SetTheme(theme)
	root.SetOnLayoutSubviews(d.updateStatus)

	return app.Run()
}

func (d *demo) keyMap() reflow.KeyMap {
	return reflow.KeyMap{
		reflow.OnKeyStop(tcell.KeyEscape, d.quit),
		reflow.OnRuneStop('q', d.quit),
		reflow.OnRuneStop('o', func(*tcell.EventKey) {
			d.header.SetPreferredOrientation(d.header.PreferredOrientation().Toggle())
		}),
		reflow.OnRuneStop('+', d.larger),
		reflow.OnRuneStop('=', d.larger),
		reflow.OnRuneStop('-', func(*tcell.EventKey) {
			d.app.SetContentSizeCategory(d.app.Traits().ContentSize.Smaller())
		}),
		reflow.OnRuneStop('n', func(*tcell.EventKey) {
			samples := header.Samples()
			d.sample = (d.sample + 1) % len(samples)
			d.header.SetModel(samples[d.sample])
		}),
		reflow.OnRuneStop('r', func(*tcell.EventKey) {
			d.header.SetReflowEnabled(!d.header.ReflowEnabled())
		}),
	}
}

func (d *demo) quit(*tcell.EventKey) {
	d.app.Stop()
}

func (d *demo) larger(*tcell.EventKey) {
	d.app.SetContentSizeCategory(d.app.Traits().ContentSize.Larger())
}

func (d *demo) updateStatus() {
	h := d.header
	d.status.SetText(fmt.Sprintf(
		"preferred=%s effective=%s reflow=%t size=%s width=%d  [o]rientation [+/-] size [n]ext [r]eflow [q]uit",
		h.PreferredOrientation(), h.EffectiveOrientation(), h.ReflowEnabled(),
		d.app.Traits().ContentSize, h.Surface().Rect().Width,
	))
}
