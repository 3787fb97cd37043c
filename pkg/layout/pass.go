package layout

import "github.com/matzehuels/framekit/pkg/geom"

// Mode tells a pass whether frames are committed.
type Mode uint8

const (
	// Applying commits every resolved frame to its view. It is the zero
	// value so that a pass used outside of Measure or Apply commits.
	Applying Mode = iota
	// Sizing resolves frames without touching any view.
	Sizing
)

func (m Mode) String() string {
	if m == Sizing {
		return "sizing"
	}
	return "applying"
}

// Pass is the context handed to a layout procedure for one Measure or
// Apply call. Its mode is fixed at creation. A pass retained after its
// call returned behaves as Applying.
type Pass struct {
	mode   Mode
	done   bool
	frames map[View]geom.Rect
}

func newPass(mode Mode) *Pass {
	return &Pass{mode: mode}
}

// Mode returns the pass mode.
func (p *Pass) Mode() Mode {
	if p == nil || p.done {
		return Applying
	}
	return p.mode
}

// IsSizing reports whether the pass only computes a size. Procedures can
// use it to skip work that does not affect the returned size, but they
// must still issue the same frame requests in both modes.
func (p *Pass) IsSizing() bool { return p.Mode() == Sizing }

// SetFrame resolves frame for view using frame itself as the reference
// rect, commits it when applying, and returns it.
func (p *Pass) SetFrame(frame geom.Rect, view View, opts Options) geom.Rect {
	return p.SetFrameIn(frame, frame, view, opts)
}

// SetFrameIn is SetFrame with an explicit reference rect for alignment.
//
// The view is measured with frame.Size() as the hint. A nil view is not
// an error: nothing is measured or committed and the would-be frame is
// returned, so optional subviews need no branching.
func (p *Pass) SetFrameIn(frame, reference geom.Rect, view View, opts Options) geom.Rect {
	if isNil(view) {
		return Resolve(frame, frame.Size(), reference, opts)
	}

	resolved := Resolve(frame, MeasureView(view, frame.Size()), reference, opts)
	p.remember(view, resolved)

	if p.Mode() == Applying {
		view.SetFrame(resolved)
		if opts.Redraw {
			if r, ok := view.(Redrawer); ok {
				r.SetNeedsRedraw()
			}
		}
	}
	return resolved
}

// SizeToFitVertical keeps frame's origin and width and takes the height
// the view needs for that width.
func (p *Pass) SizeToFitVertical(frame geom.Rect, view View) geom.Rect {
	return p.SetFrame(frame, view, SizeToFitVertical)
}

// CenterWithSize gives view the given size, centered in frame.
func (p *Pass) CenterWithSize(size geom.Size, frame geom.Rect, view View) geom.Rect {
	return p.SetFrameIn(geom.RectFrom(frame.Origin(), size), frame, view, Centered)
}

// SetFrameInRect sizes view to fit within ref and centers it there. When
// ref.H is zero the view is only centered horizontally.
func (p *Pass) SetFrameInRect(ref geom.Rect, view View) geom.Rect {
	return p.SetFrameIn(ref, ref, view, Combine(SizeToFit, ConstrainSize, Centered))
}

// SetOrigin moves view to origin, keeping its last known size. With
// sizeToFit the size is measured instead.
func (p *Pass) SetOrigin(origin geom.Point, view View, sizeToFit bool) geom.Rect {
	return p.SetFrame(p.Frame(view).WithOrigin(origin), view, fitIf(sizeToFit))
}

// SetSize resizes view, keeping its last known origin. With sizeToFit,
// size is only a hint and the measured size is used.
func (p *Pass) SetSize(size geom.Size, view View, sizeToFit bool) geom.Rect {
	return p.SetFrame(p.Frame(view).WithSize(size), view, fitIf(sizeToFit))
}

// SetX places view at frame with its X replaced.
func (p *Pass) SetX(x float64, frame geom.Rect, view View) geom.Rect {
	return p.SetFrame(frame.WithX(x), view, Options{})
}

// SetY places view at frame with its Y replaced.
func (p *Pass) SetY(y float64, frame geom.Rect, view View) geom.Rect {
	return p.SetFrame(frame.WithY(y), view, Options{})
}

// Frame returns the last known frame of view: the one resolved earlier in
// this pass if any, otherwise the view's committed frame. During sizing
// this is the value to build on, since nothing has been committed.
func (p *Pass) Frame(view View) geom.Rect {
	if isNil(view) {
		return geom.Rect{}
	}
	if p != nil && p.frames != nil && hashable(view) {
		if f, ok := p.frames[view]; ok {
			return f
		}
	}
	return view.Frame()
}

func (p *Pass) remember(view View, frame geom.Rect) {
	if p == nil || !hashable(view) {
		return
	}
	if p.frames == nil {
		p.frames = make(map[View]geom.Rect)
	}
	p.frames[view] = frame
}

func fitIf(sizeToFit bool) Options {
	if sizeToFit {
		return SizeToFit
	}
	return Options{}
}
