package reflow

import "github.com/reflowkit/reflow/internal/debug"

// OrientationPolicy supplies the constraint sets of an adaptive component.
//
// Builders must be deterministic, must skip sub-elements that have not been
// created, and must not create elements or measure anything. Each call
// returns a fresh set; the component activates and deactivates it.
type OrientationPolicy interface {
	ConstraintsForHorizontal() []*Constraint
	ConstraintsForVertical() []*Constraint
}

// IdealOrientationComputer is implemented by policies that decide fit
// themselves. ComputeIdealOrientation runs after the content has been laid
// out with the preferred constraints and may inspect element frames.
type IdealOrientationComputer interface {
	ComputeIdealOrientation() Orientation
}

// EngineState is the re-evaluation state of a Component.
type EngineState int

const (
	// Idle means effective orientation is up to date.
	Idle EngineState = iota
	// ReevaluationScheduled means a re-evaluation is pending.
	ReevaluationScheduled
)

// String returns "idle" or "reevaluation-scheduled".
func (s EngineState) String() string {
	if s == ReevaluationScheduled {
		return "reevaluation-scheduled"
	}
	return "idle"
}

// Decision records the outcome of one re-evaluation.
type Decision struct {
	Preferred Orientation
	Ideal     Orientation
	Effective Orientation
	Available int  // surface width
	Fitting   Size // natural content size; zero when the policy decided
}

// Component is an adaptive container. Its content area holds the widget's
// sub-elements; the policy describes how to arrange them horizontally and
// vertically. The preferred orientation is used whenever it fits.
//
// A Component is not safe for concurrent use; all calls must happen on the
// loop goroutine of its App, or in a single goroutine when used without one.
type Component struct {
	surface   *Element
	content   *Element
	policy    OrientationPolicy
	scheduler Scheduler

	preferred   Orientation
	effective   Orientation
	constraints []*Constraint
	installed   bool // constraints holds a set built for effective

	reflow            bool
	needsReevaluation bool
	scheduled         bool // a scheduler callback is outstanding

	onDecision   func(Decision)
	lastDecision Decision
}

// ComponentOption configures a Component.
type ComponentOption func(*Component)

// WithPreferredOrientation sets the initial preferred orientation.
// The default is Horizontal.
func WithPreferredOrientation(o Orientation) ComponentOption {
	return func(c *Component) {
		c.preferred = o
		c.effective = o
	}
}

// WithFrame places the surface before its first layout.
func WithFrame(r Rect) ComponentOption {
	return func(c *Component) {
		c.surface.SetFrame(r)
	}
}

// WithScheduler sets where deferred re-evaluations run. Without one the
// component uses its App's queue, or the next host layout pass when it is
// not attached to an App.
func WithScheduler(s Scheduler) ComponentOption {
	return func(c *Component) {
		c.scheduler = s
	}
}

// WithReflow enables or disables reflowing to vertical. Enabled by default.
func WithReflow(enabled bool) ComponentOption {
	return func(c *Component) {
		c.reflow = enabled
	}
}

// WithDecisionHook sets a callback run after every re-evaluation that measured.
func WithDecisionHook(fn func(Decision)) ComponentOption {
	return func(c *Component) {
		c.onDecision = fn
	}
}

// NewComponent creates a component whose sub-elements are arranged by policy.
func NewComponent(policy OrientationPolicy, opts ...ComponentOption) *Component {
	return newComponent(policy, New(WithName("content"), WithFlexGrow(1)), opts)
}

// ComponentState is the persistable state of a Component.
type ComponentState struct {
	Preferred Orientation `json:"preferred"`
	Reflow    bool        `json:"reflow"`
}

// Snapshot returns the state RestoreComponent needs.
func (c *Component) Snapshot() ComponentState {
	return ComponentState{Preferred: c.preferred, Reflow: c.reflow}
}

// RestoreComponent recreates a component around an existing content
// element. It panics if content is nil.
func RestoreComponent(state ComponentState, content *Element, policy OrientationPolicy, opts ...ComponentOption) *Component {
	if content == nil {
		panic("reflow: RestoreComponent requires an existing content element")
	}
	opts = append([]ComponentOption{
		WithPreferredOrientation(state.Preferred),
		WithReflow(state.Reflow),
	}, opts...)
	return newComponent(policy, content, opts)
}

func newComponent(policy OrientationPolicy, content *Element, opts []ComponentOption) *Component {
	if policy == nil {
		panic("reflow: NewComponent requires an OrientationPolicy")
	}
	c := &Component{
		surface: New(WithName("component"), WithDirection(Column)),
		content: content,
		policy:  policy,
		reflow:  true,
	}
	c.surface.AddChild(content)
	for _, opt := range opts {
		opt(c)
	}

	s := c.surface
	s.SetOnAttach(c.SetNeedsUpdateEffectiveOrientation)
	s.SetOnFrameChange(func(old, cur Rect) {
		if old.Width != cur.Width {
			c.SetNeedsUpdateEffectiveOrientation()
		}
	})
	s.SetOnTraitsChange(func(prev Traits) {
		if prev.ContentSize != s.Traits().ContentSize {
			c.SetNeedsUpdateEffectiveOrientation()
		}
	})
	s.SetOnUpdateConstraints(func() {
		if !c.installed {
			c.ApplyConstraints(c.effective)
		}
	})
	s.SetOnLayoutSubviews(c.updateEffectiveOrientation)
	s.SetNeedsUpdateConstraints()
	return c
}

// Surface returns the element to add to a parent.
func (c *Component) Surface() *Element {
	return c.surface
}

// Content returns the element sub-elements are added to.
func (c *Component) Content() *Element {
	return c.content
}

// PreferredOrientation returns the orientation used whenever it fits.
func (c *Component) PreferredOrientation() Orientation {
	return c.preferred
}

// SetPreferredOrientation rebuilds the constraints for o immediately and,
// when reflow applies, schedules a re-evaluation of whether o fits.
func (c *Component) SetPreferredOrientation(o Orientation) {
	c.preferred = o
	c.effective = o
	c.ApplyConstraints(o)
	if c.ShouldReflowContent() {
		c.SetNeedsUpdateEffectiveOrientation()
	}
}

// EffectiveOrientation returns the orientation currently applied.
func (c *Component) EffectiveOrientation() Orientation {
	return c.effective
}

// ReflowEnabled reports whether the component may reflow to vertical.
func (c *Component) ReflowEnabled() bool {
	return c.reflow
}

// SetReflowEnabled enables or disables reflowing and re-evaluates.
func (c *Component) SetReflowEnabled(enabled bool) {
	if c.reflow == enabled {
		return
	}
	c.reflow = enabled
	c.SetNeedsUpdateEffectiveOrientation()
}

// ShouldReflowContent reports whether re-evaluation measures at all: only
// a horizontal preference can be reflowed.
func (c *Component) ShouldReflowContent() bool {
	return c.reflow && c.preferred == Horizontal
}

// State reports whether a re-evaluation is pending.
func (c *Component) State() EngineState {
	if c.needsReevaluation {
		return ReevaluationScheduled
	}
	return Idle
}

// ActiveConstraints returns the installed constraint set, or nil when
// none is installed.
func (c *Component) ActiveConstraints() []*Constraint {
	if !c.installed {
		return nil
	}
	return append([]*Constraint(nil), c.constraints...)
}

// LastDecision returns the outcome of the most recent measuring re-evaluation.
func (c *Component) LastDecision() Decision {
	return c.lastDecision
}

// ApplyConstraints releases the installed set, builds a new one for o and
// activates it. It always rebuilds, even when o has not changed.
func (c *Component) ApplyConstraints(o Orientation) {
	c.releaseConstraints()

	var built []*Constraint
	if o == Vertical {
		built = c.policy.ConstraintsForVertical()
	} else {
		built = c.policy.ConstraintsForHorizontal()
	}
	c.constraints = built
	c.installed = true
	ActivateConstraints(built)
	c.surface.MarkDirty()
}

// ResetConstraints releases the installed set. The next layout pass builds
// a new one for the effective orientation. Widgets call this after adding
// a sub-element.
func (c *Component) ResetConstraints() {
	if !c.installed {
		return
	}
	c.releaseConstraints()
	c.surface.SetNeedsUpdateConstraints()
}

func (c *Component) releaseConstraints() {
	if !c.installed {
		return
	}
	DeactivateConstraints(c.constraints)
	c.constraints = nil
	c.installed = false
}

// SetNeedsUpdateEffectiveOrientation marks the effective orientation as
// stale and schedules a re-evaluation unless one is already outstanding.
// Any number of calls before the scheduled turn cause one re-evaluation.
func (c *Component) SetNeedsUpdateEffectiveOrientation() {
	c.needsReevaluation = true
	if c.scheduled {
		return
	}
	c.scheduled = true
	if !c.schedule(c.runScheduled) {
		// No scheduler, or the app queue is full. The next layout pass
		// picks it up through layout-subviews.
		c.scheduled = false
	}
}

func (c *Component) schedule(fn func()) bool {
	switch {
	case c.scheduler != nil:
		c.scheduler.Schedule(fn)
	case c.surface.App() != nil:
		return c.surface.App().enqueue(fn)
	default:
		return false
	}
	return true
}

func (c *Component) runScheduled() {
	c.scheduled = false
	c.updateEffectiveOrientation()
}

// updateEffectiveOrientation performs one pending re-evaluation.
func (c *Component) updateEffectiveOrientation() {
	if !c.needsReevaluation {
		return
	}
	c.needsReevaluation = false

	if !c.ShouldReflowContent() {
		if c.effective != c.preferred || !c.installed {
			c.effective = c.preferred
			c.ApplyConstraints(c.preferred)
		}
		return
	}

	// Measure with the preferred arrangement in place.
	if c.effective != c.preferred || !c.installed {
		c.effective = c.preferred
		c.ApplyConstraints(c.preferred)
	}
	c.content.LayoutIfNeeded()

	d := Decision{Preferred: c.preferred, Available: c.surface.Rect().Width}
	if computer, ok := c.policy.(IdealOrientationComputer); ok {
		d.Ideal = computer.ComputeIdealOrientation()
	} else {
		d.Fitting = c.content.FittingSize()
		d.Ideal = c.defaultIdealOrientation(d.Fitting)
	}

	if d.Ideal != c.preferred {
		c.effective = d.Ideal
		c.ApplyConstraints(d.Ideal)
		c.surface.SetNeedsUpdateConstraints()
	}
	d.Effective = c.effective
	c.lastDecision = d
	debug.Log("Component: preferred=%s ideal=%s available=%d fitting=%dx%d",
		d.Preferred, d.Ideal, d.Available, d.Fitting.Width, d.Fitting.Height)
	if c.onDecision != nil {
		c.onDecision(d)
	}
}

// DefaultIdealOrientation applies the default fit rule: Vertical when the
// content's natural width exceeds the surface width, else Horizontal.
func (c *Component) DefaultIdealOrientation() Orientation {
	return c.defaultIdealOrientation(c.content.FittingSize())
}

func (c *Component) defaultIdealOrientation(fitting Size) Orientation {
	if fitting.Width > c.surface.Rect().Width {
		return Vertical
	}
	return Horizontal
}
