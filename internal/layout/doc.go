// Package layout implements a pure-Go flexbox layout engine for terminal UIs.
//
// It supports row/column directions, wrapping rows with forced line breaks,
// item ordering, justify and align modes, padding, margin, gap, min/max
// constraints, percentage and fixed dimensions, and height-for-width sizing
// of wrapped text. Types are re-exported through the root reflow package.
//
// There are two entry points. [Calculate] places a [Layoutable] tree inside
// the available space and stores an absolute [Rect] on every node.
// [Measure] asks a subtree how large it would like to be when offered a
// given width, without touching any stored layout; pass [Unbounded] to get
// the natural, unwrapped size.
package layout
