package layout

import (
	"math"

	"github.com/matzehuels/framekit/pkg/geom"
)

// Resolve computes the final frame for a view.
//
// requested is the frame the layout procedure asked for, measured the
// size the view reported for requested.Size(), and reference the rect
// used by alignment. The steps run in order: fit, constrain, default,
// align, clamp. Alignment positions the unclamped size, so a negative
// width still shifts a right-aligned frame.
//
// Vertical centering is skipped when the reference has H == 0, which
// requests horizontal-only centering. Horizontal centering has no such
// exception.
func Resolve(requested geom.Rect, measured geom.Size, reference geom.Rect, opts Options) geom.Rect {
	frame := requested

	if opts.Fit.Has(Horizontal) {
		frame.W = measured.W
	}
	if opts.Fit.Has(Vertical) {
		frame.H = measured.H
	}

	frame = constrain(frame, requested.Size(), opts)

	if opts.Default.Has(Horizontal) && frame.W == 0 {
		frame.W = requested.W
	}
	if opts.Default.Has(Vertical) && frame.H == 0 {
		frame.H = requested.H
	}

	frame = align(frame, reference, opts.Align)

	return frame.WithSize(frame.Size().Clamp())
}

// constrain caps frame at limit. Zero limits are unspecified.
func constrain(frame geom.Rect, limit geom.Size, opts Options) geom.Rect {
	if opts.KeepAspect {
		axes := opts.Constrain
		if axes == 0 {
			axes = Both
		}
		scale := 1.0
		if axes.Has(Horizontal) && limit.W > 0 && frame.W > limit.W {
			scale = math.Min(scale, limit.W/frame.W)
		}
		if axes.Has(Vertical) && limit.H > 0 && frame.H > limit.H {
			scale = math.Min(scale, limit.H/frame.H)
		}
		if scale < 1 {
			frame = frame.WithSize(frame.Size().Scale(scale))
		}
		return frame
	}

	if opts.Constrain.Has(Horizontal) && limit.W > 0 {
		frame.W = math.Min(frame.W, limit.W)
	}
	if opts.Constrain.Has(Vertical) && limit.H > 0 {
		frame.H = math.Min(frame.H, limit.H)
	}
	return frame
}

// align repositions frame inside ref. Rules are applied in a fixed order
// (center-h, center-v, right, bottom) so a later rule wins on its axis.
func align(frame, ref geom.Rect, a Alignment) geom.Rect {
	if a.Has(AlignCenterHorizontal) {
		frame.X = ref.X + (ref.W-frame.W)/2
	}
	if a.Has(AlignCenterVertical) && ref.H != 0 {
		frame.Y = ref.Y + (ref.H-frame.H)/2
	}
	if a.Has(AlignRight) {
		frame.X = ref.X + ref.W - frame.W
	}
	if a.Has(AlignBottom) {
		frame.Y = ref.Y + ref.H - frame.H
	}
	return frame
}
