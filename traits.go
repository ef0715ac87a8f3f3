package reflow

import (
	"fmt"
	"strings"
)

// ContentSizeCategory is the user's preferred text size.
//
// Terminal glyphs cannot grow, so larger categories are rendered with letter
// spacing between grapheme clusters and with scaled vertical rhythm.
type ContentSizeCategory int

const (
	ContentSizeSmall ContentSizeCategory = iota
	ContentSizeMedium
	ContentSizeLarge // default
	ContentSizeExtraLarge
	ContentSizeAccessibilityMedium
	ContentSizeAccessibilityLarge
	ContentSizeAccessibilityExtraLarge
)

var contentSizes = [...]struct {
	name    string
	spacing int
	percent int
}{
	ContentSizeSmall:                   {"small", 0, 80},
	ContentSizeMedium:                  {"medium", 0, 90},
	ContentSizeLarge:                   {"large", 0, 100},
	ContentSizeExtraLarge:              {"extra-large", 1, 120},
	ContentSizeAccessibilityMedium:     {"accessibility-medium", 1, 150},
	ContentSizeAccessibilityLarge:      {"accessibility-large", 2, 200},
	ContentSizeAccessibilityExtraLarge: {"accessibility-extra-large", 3, 250},
}

func (c ContentSizeCategory) valid() bool {
	return c >= ContentSizeSmall && c <= ContentSizeAccessibilityExtraLarge
}

// String returns the category name, e.g. "accessibility-large".
func (c ContentSizeCategory) String() string {
	if !c.valid() {
		return fmt.Sprintf("ContentSizeCategory(%d)", int(c))
	}
	return contentSizes[c].name
}

// LetterSpacing returns the number of blank cells placed between grapheme
// clusters when text is measured and drawn.
func (c ContentSizeCategory) LetterSpacing() int {
	if !c.valid() {
		return 0
	}
	return contentSizes[c].spacing
}

// Scaled scales a vertical distance in cells by the category, rounding to
// the nearest cell.
func (c ContentSizeCategory) Scaled(cells int) int {
	percent := 100
	if c.valid() {
		percent = contentSizes[c].percent
	}
	return (cells*percent + 50) / 100
}

// IsAccessibility reports whether c is one of the accessibility sizes.
func (c ContentSizeCategory) IsAccessibility() bool {
	return c >= ContentSizeAccessibilityMedium && c.valid()
}

// Larger returns the next larger category, or c if it is the largest.
func (c ContentSizeCategory) Larger() ContentSizeCategory {
	if c >= ContentSizeAccessibilityExtraLarge {
		return ContentSizeAccessibilityExtraLarge
	}
	return c + 1
}

// Smaller returns the next smaller category, or c if it is the smallest.
func (c ContentSizeCategory) Smaller() ContentSizeCategory {
	if c <= ContentSizeSmall {
		return ContentSizeSmall
	}
	return c - 1
}

// ParseContentSizeCategory parses a name produced by String.
func ParseContentSizeCategory(s string) (ContentSizeCategory, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c := range contentSizes {
		if contentSizes[c].name == name {
			return ContentSizeCategory(c), nil
		}
	}
	return ContentSizeLarge, fmt.Errorf("unknown content size category %q", s)
}

// Traits describe the environment an element is displayed in.
type Traits struct {
	ContentSize ContentSizeCategory
}

// DefaultTraits returns the traits used when neither an element nor the
// app overrides them.
func DefaultTraits() Traits {
	return Traits{ContentSize: ContentSizeLarge}
}
