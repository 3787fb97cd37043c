package layout

import "github.com/matzehuels/framekit/pkg/geom"

// stubView reports a fixed natural size and counts engine interactions.
type stubView struct {
	frame    geom.Rect
	natural  geom.Size
	measures int
	commits  int
	redraws  int
	lastHint geom.Size
}

func (v *stubView) Frame() geom.Rect { return v.frame }

func (v *stubView) SetFrame(f geom.Rect) {
	v.frame = f
	v.commits++
}

func (v *stubView) SizeThatFits(hint geom.Size) geom.Size {
	v.measures++
	v.lastHint = hint
	return v.natural
}

func (v *stubView) SetNeedsRedraw() { v.redraws++ }

type stubContainer struct {
	views []View
}

func (c *stubContainer) Subviews() []View { return c.views }

// taggedView is not comparable, so it cannot key the pass frame map.
type taggedView struct {
	frame *geom.Rect
	tags  []string
}

func (v taggedView) Frame() geom.Rect     { return *v.frame }
func (v taggedView) SetFrame(f geom.Rect) { *v.frame = f }

// boxedView has a comparable type, but its payload may hold a slice,
// which panics when the value is hashed.
type boxedView struct {
	frame   *geom.Rect
	payload any
}

func (v boxedView) Frame() geom.Rect     { return *v.frame }
func (v boxedView) SetFrame(f geom.Rect) { *v.frame = f }
