package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/reflowkit/reflow"
	"github.com/reflowkit/reflow/widget/header"
)

func runList(w io.Writer) error {
	registry := reflow.NewRegistry()
	if err := header.Register(registry); err != nil {
		return err
	}

	fmt.Fprintf(w, "Widget kinds: %s\n\n", strings.Join(registry.Kinds(), ", "))
	fmt.Fprintln(w, "Samples:")
	for i, m := range header.Samples() {
		fmt.Fprintf(w, "  %d  %s\n", i, m.Title)
	}
	return nil
}
