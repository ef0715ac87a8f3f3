package reflow

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownWidget is returned by Registry.New for an unregistered kind.
var ErrUnknownWidget = errors.New("unknown widget kind")

// Widget is an adaptive widget built around a Component.
type Widget interface {
	Surface() *Element
	PreferredOrientation() Orientation
	SetPreferredOrientation(Orientation)
	EffectiveOrientation() Orientation
}

var _ Widget = (*Component)(nil)

// WidgetFactory creates a widget with a preferred orientation and an
// initial frame.
type WidgetFactory func(preferred Orientation, frame Rect) Widget

// Registry maps widget kinds to factories.
type Registry struct {
	factories map[string]WidgetFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]WidgetFactory)}
}

// Register adds a factory for kind. Registering a kind twice is an error.
func (r *Registry) Register(kind string, factory WidgetFactory) error {
	if kind == "" {
		return fmt.Errorf("register widget: empty kind")
	}
	if factory == nil {
		return fmt.Errorf("register widget %q: nil factory", kind)
	}
	if _, ok := r.factories[kind]; ok {
		return fmt.Errorf("register widget %q: already registered", kind)
	}
	r.factories[kind] = factory
	return nil
}

// New creates a widget of the given kind.
func (r *Registry) New(kind string, preferred Orientation, frame Rect) (Widget, error) {
	factory, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("new widget %q: %w", kind, ErrUnknownWidget)
	}
	return factory(preferred, frame), nil
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	return slices.Sorted(maps.Keys(r.factories))
}
