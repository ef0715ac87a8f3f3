package main

import (
	"fmt"
	"strconv"

	"github.com/reflowkit/reflow"
	"github.com/reflowkit/reflow/internal/debug"
	"github.com/reflowkit/reflow/widget/header"
)

// options are the flags shared by run and render.
type options struct {
	sample    int
	size      reflow.ContentSizeCategory
	preferred reflow.Orientation
	reflow    bool
	width     int
	logFile   string
}

func parseOptions(args []string) (options, error) {
	opts := options{
		size:   reflow.ContentSizeLarge,
		reflow: true,
		width:  40,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		value := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", arg)
			}
			i++
			return args[i], nil
		}

		switch arg {
		case "--vertical":
			opts.preferred = reflow.Vertical
		case "--no-reflow":
			opts.reflow = false
		case "--sample", "--width":
			v, err := value()
			if err != nil {
				return opts, err
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return opts, fmt.Errorf("%s: %w", arg, err)
			}
			if arg == "--sample" {
				opts.sample = n
			} else {
				opts.width = n
			}
		case "--size":
			v, err := value()
			if err != nil {
				return opts, err
			}
			size, err := reflow.ParseContentSizeCategory(v)
			if err != nil {
				return opts, err
			}
			opts.size = size
		case "--log":
			v, err := value()
			if err != nil {
				return opts, err
			}
			opts.logFile = v
		default:
			return opts, fmt.Errorf("unknown option: %s", arg)
		}
	}

	if n := len(header.Samples()); opts.sample < 0 || opts.sample >= n {
		return opts, fmt.Errorf("--sample must be between 0 and %d", n-1)
	}
	if opts.width < 1 {
		return opts, fmt.Errorf("--width must be at least 1")
	}
	if opts.logFile != "" {
		if err := debug.Init(opts.logFile); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// newHeader builds the demo header through the widget registry.
func newHeader(opts options) (*header.Header, error) {
	registry := reflow.NewRegistry()
	if err := header.Register(registry); err != nil {
		return nil, err
	}
	w, err := registry.New(header.Kind, opts.preferred, reflow.Rect{})
	if err != nil {
		return nil, err
	}
	h := w.(*header.Header)
	h.SetReflowEnabled(opts.reflow)
	h.SetModel(header.Samples()[opts.sample])
	return h, nil
}
