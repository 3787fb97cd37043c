package layout

import "github.com/matzehuels/framekit/pkg/geom"

// VerticalFunc stacks the subviews of c from top to bottom, each as wide
// as the hint and as tall as it needs. It occupies the hint width and the
// summed height.
func VerticalFunc(c Container) Func {
	return func(p *Pass, size geom.Size) geom.Size {
		y := 0.0
		for _, v := range c.Subviews() {
			f := p.SizeToFitVertical(geom.R(0, y, size.W, 0), v)
			y += f.H
		}
		return geom.Sz(size.W, y)
	}
}

// FillFunc gives every subview of c the full hint size.
func FillFunc(c Container) Func {
	return func(p *Pass, size geom.Size) geom.Size {
		for _, v := range c.Subviews() {
			p.SetFrame(geom.RectFrom(geom.Point{}, size), v, Options{})
		}
		return size
	}
}

// NewVertical returns an engine running [VerticalFunc].
func NewVertical(c Container, opts ...Option) *Engine {
	return New(VerticalFunc(c), opts...)
}

// NewFill returns an engine running [FillFunc].
func NewFill(c Container, opts ...Option) *Engine {
	return New(FillFunc(c), opts...)
}
