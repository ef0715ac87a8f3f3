// Package reflow is a small retained-mode terminal UI toolkit built around
// adaptive components.
//
// A [Component] owns a content area and switches its children between a
// compact horizontal arrangement and a stacked vertical one. The horizontal
// arrangement is preferred; when its natural size no longer fits the width
// the component was given, or when the content-size category grows, the
// component reflows to vertical. Widgets supply the two arrangements by
// implementing [OrientationPolicy], and may refine the fit decision by
// implementing [IdealOrientationComputer].
//
// Users import this single package for the complete public API: elements,
// constraints, layout types, traits, the adaptive engine, the widget
// registry and the tcell-backed [App].
package reflow
