package layout

import (
	"reflect"

	"github.com/matzehuels/framekit/pkg/geom"
)

// View is anything whose frame the engine can read and commit.
type View interface {
	Frame() geom.Rect
	SetFrame(frame geom.Rect)
}

// Measurer is implemented by views that can report the size they need.
// The hint usually carries a width; a zero component is unspecified.
type Measurer interface {
	SizeThatFits(hint geom.Size) geom.Size
}

// Redrawer is implemented by views that can be told to refresh their
// contents after a frame change.
type Redrawer interface {
	SetNeedsRedraw()
}

// Container exposes the subviews used by the stock layouts.
type Container interface {
	Subviews() []View
}

// MeasureView asks v for the size it needs for hint. Views that do not
// implement [Measurer] report their current frame size.
func MeasureView(v View, hint geom.Size) geom.Size {
	if m, ok := v.(Measurer); ok {
		return m.SizeThatFits(hint)
	}
	return v.Frame().Size()
}

// isNil reports whether v is nil or a nil pointer wrapped in the interface.
func isNil(v View) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// hashable reports whether v can key the pass frame map. Only pointer
// views do; hashing a struct value panics if an interface field holds a
// slice, and equal values would share an entry.
func hashable(v View) bool {
	return reflect.ValueOf(v).Kind() == reflect.Pointer
}
