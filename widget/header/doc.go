// Package header provides an adaptive header widget: a title with an
// optional subtitle and action button.
//
// Horizontally, the button sits beside the title and the subtitle takes the
// next line. When the title would be truncated beside the button, or the
// content size category grows enough to cause that, the header stacks all
// three vertically.
package header
