package view

import "github.com/matzehuels/framekit/pkg/geom"

// Box is a plain rectangle with an intrinsic size. A zero intrinsic
// dimension takes the hint's, so a Box{W: 0, H: 8} is a full-width rule.
type Box struct {
	Base
	Intrinsic geom.Size
}

// NewBox creates a box.
func NewBox(id string, intrinsic geom.Size) *Box {
	return &Box{Base: Base{id: id}, Intrinsic: intrinsic}
}

// Kind returns "box".
func (b *Box) Kind() string { return "box" }

// SizeThatFits returns the intrinsic size, filling unset dimensions from
// the hint.
func (b *Box) SizeThatFits(hint geom.Size) geom.Size {
	s := b.Intrinsic
	if s.W == 0 {
		s.W = hint.W
	}
	if s.H == 0 {
		s.H = hint.H
	}
	return s
}

// Image reports its natural size regardless of the hint. An image that
// has not loaded yet reports zero; pair it with the default-size options.
type Image struct {
	Base
	Natural geom.Size
}

// NewImage creates an image view.
func NewImage(id string, natural geom.Size) *Image {
	return &Image{Base: Base{id: id}, Natural: natural}
}

// Kind returns "image".
func (i *Image) Kind() string { return "image" }

// SizeThatFits returns the natural size.
func (i *Image) SizeThatFits(geom.Size) geom.Size { return i.Natural }
