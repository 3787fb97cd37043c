package view

import (
	"github.com/matzehuels/framekit/pkg/geom"
	"github.com/matzehuels/framekit/pkg/layout"
)

// Container owns subviews and the layout engine that positions them.
// It measures through [layout.Engine.Measure] and lays out its subviews
// whenever its frame is committed.
type Container struct {
	Base
	subviews []layout.View
	engine   *layout.Engine
}

// NewContainer creates a container that stacks its subviews vertically.
// Use SetLayout or SetEngine to change that.
func NewContainer(id string, subviews ...layout.View) *Container {
	c := &Container{Base: Base{id: id}, subviews: subviews}
	c.engine = layout.NewVertical(c)
	return c
}

// Kind returns "container".
func (c *Container) Kind() string { return "container" }

// Subviews returns the subviews in order.
func (c *Container) Subviews() []layout.View { return c.subviews }

// AddSubview appends v and invalidates the cached measurement.
func (c *Container) AddSubview(v layout.View) {
	c.subviews = append(c.subviews, v)
	c.engine.SetNeedsLayout()
}

// Engine returns the container's layout engine.
func (c *Container) Engine() *layout.Engine { return c.engine }

// SetEngine replaces the layout engine.
func (c *Container) SetEngine(e *layout.Engine) { c.engine = e }

// SetLayout binds a new layout procedure, keeping engine options.
func (c *Container) SetLayout(fn layout.Func, opts ...layout.Option) {
	c.engine = layout.New(fn, opts...)
}

// SizeThatFits measures the container through its engine.
func (c *Container) SizeThatFits(hint geom.Size) geom.Size {
	return c.engine.Measure(hint)
}

// SetFrame commits the frame and lays out the subviews in the new bounds.
func (c *Container) SetFrame(frame geom.Rect) {
	c.Base.SetFrame(frame)
	c.LayoutSubviews()
}

// LayoutSubviews applies the layout to the current bounds and returns the
// size the subviews occupied.
func (c *Container) LayoutSubviews() geom.Size {
	return c.engine.Apply(c.Bounds())
}

// Bounds returns the frame in the container's own coordinates.
func (c *Container) Bounds() geom.Rect {
	return geom.RectFrom(geom.Point{}, c.Frame().Size())
}

// SetNeedsLayout invalidates the cached measurement. Call it after
// changing anything that affects the size of a subview.
func (c *Container) SetNeedsLayout() { c.engine.SetNeedsLayout() }
