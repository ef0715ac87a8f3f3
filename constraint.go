package reflow

import (
	"fmt"
	"strconv"
)

type ruleKind uint8

const (
	ruleAxis ruleKind = iota
	ruleWrap
	ruleGap
	rulePadding
	ruleMargin
	ruleOrder
	ruleBreakBefore
	ruleBasis
	ruleGrow
	ruleShrink
	ruleMinWidth
	ruleMaxWidth
	ruleAlignSelf
	ruleMaxLines
	ruleTextAlign
)

// Rule is one layout relation a Constraint imposes on its item.
// Rules override the matching property of the item's base style.
type Rule struct {
	kind  ruleKind
	n     int
	f     float64
	edges Edges
}

// Axis makes the item's children flow along dir.
func Axis(dir Direction) Rule { return Rule{kind: ruleAxis, n: int(dir)} }

// Wrap lets a row container continue overflowing children on a new line.
func Wrap() Rule { return Rule{kind: ruleWrap} }

// Gap sets the space between the item's children.
func Gap(n int) Rule { return Rule{kind: ruleGap, n: n} }

// Padding sets the item's padding.
func Padding(e Edges) Rule { return Rule{kind: rulePadding, edges: e} }

// Margin sets the item's margin.
func Margin(e Edges) Rule { return Rule{kind: ruleMargin, edges: e} }

// Order places the item among its siblings.
func Order(n int) Rule { return Rule{kind: ruleOrder, n: n} }

// BreakBefore starts a new line at the item inside a wrapping row.
func BreakBefore() Rule { return Rule{kind: ruleBreakBefore} }

// Basis sets the item's main size before free space is distributed.
func Basis(n int) Rule { return Rule{kind: ruleBasis, n: n} }

// Grow sets the item's share of free space on the main axis.
func Grow(f float64) Rule { return Rule{kind: ruleGrow, f: f} }

// Shrink sets the item's share of overflow on the main axis.
func Shrink(f float64) Rule { return Rule{kind: ruleShrink, f: f} }

// MinWidth sets the item's minimum width in cells.
func MinWidth(n int) Rule { return Rule{kind: ruleMinWidth, n: n} }

// MaxWidth sets the item's maximum width in cells.
func MaxWidth(n int) Rule { return Rule{kind: ruleMaxWidth, n: n} }

// AlignSelf overrides the container's cross-axis alignment for the item.
func AlignSelf(a Align) Rule { return Rule{kind: ruleAlignSelf, n: int(a)} }

// MaxLines limits the item's text to n lines; 0 means unlimited.
func MaxLines(n int) Rule { return Rule{kind: ruleMaxLines, n: n} }

// TextAlignment aligns the item's text within its content area.
func TextAlignment(a TextAlign) Rule { return Rule{kind: ruleTextAlign, n: int(a)} }

// String returns a compact description such as "order=1" or "wrap".
func (r Rule) String() string {
	switch r.kind {
	case ruleAxis:
		return "axis=" + Direction(r.n).String()
	case ruleWrap:
		return "wrap"
	case ruleGap:
		return "gap=" + strconv.Itoa(r.n)
	case rulePadding:
		return "padding=" + edgesString(r.edges)
	case ruleMargin:
		return "margin=" + edgesString(r.edges)
	case ruleOrder:
		return "order=" + strconv.Itoa(r.n)
	case ruleBreakBefore:
		return "break-before"
	case ruleBasis:
		return "basis=" + strconv.Itoa(r.n)
	case ruleGrow:
		return "grow=" + strconv.FormatFloat(r.f, 'g', -1, 64)
	case ruleShrink:
		return "shrink=" + strconv.FormatFloat(r.f, 'g', -1, 64)
	case ruleMinWidth:
		return "min-width=" + strconv.Itoa(r.n)
	case ruleMaxWidth:
		return "max-width=" + strconv.Itoa(r.n)
	case ruleAlignSelf:
		return "align-self=" + Align(r.n).String()
	case ruleMaxLines:
		return "max-lines=" + strconv.Itoa(r.n)
	case ruleTextAlign:
		return "text-align=" + TextAlign(r.n).String()
	}
	return fmt.Sprintf("rule(%d)", r.kind)
}

func edgesString(e Edges) string {
	return fmt.Sprintf("%d,%d,%d,%d", e.Top, e.Right, e.Bottom, e.Left)
}

// apply folds the rule into a layout style and text attributes.
func (r Rule) apply(s *LayoutStyle, t *textAttrs) {
	switch r.kind {
	case ruleAxis:
		s.Direction = Direction(r.n)
	case ruleWrap:
		s.Wrap = true
	case ruleGap:
		s.Gap = r.n
	case rulePadding:
		s.Padding = r.edges
	case ruleMargin:
		s.Margin = r.edges
	case ruleOrder:
		s.Order = r.n
	case ruleBreakBefore:
		s.BreakBefore = true
	case ruleBasis:
		s.FlexBasis = Fixed(r.n)
	case ruleGrow:
		s.FlexGrow = r.f
	case ruleShrink:
		s.FlexShrink = r.f
	case ruleMinWidth:
		s.MinWidth = Fixed(r.n)
	case ruleMaxWidth:
		s.MaxWidth = Fixed(r.n)
	case ruleAlignSelf:
		a := Align(r.n)
		s.AlignSelf = &a
	case ruleMaxLines:
		t.maxLines = r.n
	case ruleTextAlign:
		t.align = TextAlign(r.n)
	}
}

// Constraint binds a Rule to an element. It has no effect until activated.
type Constraint struct {
	item   *Element
	rule   Rule
	active bool
}

// Constrain creates an inactive constraint applying rule to item.
func Constrain(item *Element, rule Rule) *Constraint {
	if item == nil {
		panic("reflow: Constrain requires an element")
	}
	return &Constraint{item: item, rule: rule}
}

// Item returns the constrained element.
func (c *Constraint) Item() *Element { return c.item }

// Rule returns the relation the constraint imposes.
func (c *Constraint) Rule() Rule { return c.rule }

// IsActive reports whether the constraint currently affects layout.
func (c *Constraint) IsActive() bool { return c.active }

// String returns "<item>: <rule>".
func (c *Constraint) String() string {
	return c.item.Name() + ": " + c.rule.String()
}

// ActivateConstraints activates each inactive constraint in order. Later
// constraints on the same item and property take precedence.
func ActivateConstraints(constraints []*Constraint) {
	for _, c := range constraints {
		if c == nil || c.active {
			continue
		}
		c.active = true
		c.item.constraints = append(c.item.constraints, c)
		c.item.MarkDirty()
	}
}

// DeactivateConstraints deactivates each active constraint.
func DeactivateConstraints(constraints []*Constraint) {
	for _, c := range constraints {
		if c == nil || !c.active {
			continue
		}
		c.active = false
		c.item.removeConstraint(c)
		c.item.MarkDirty()
	}
}
