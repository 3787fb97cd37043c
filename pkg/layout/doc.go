// Package layout sizes views and lays out their subviews with a single
// procedure that serves both purposes.
//
// An [Engine] is bound to a layout procedure ([Func]). The owner asks it
// either for the size it needs ([Engine.Measure]) or to place its subviews
// inside a rect ([Engine.Apply]). Both run the same procedure with a fresh
// [Pass]; the procedure positions every subview through the pass
// (SetFrame, SizeToFitVertical, SetOrigin, ...) and uses the returned rects
// for the rest of its math. A sizing pass computes the same rects but
// never commits them, so measuring has no side effects and can never
// disagree with the layout that follows.
//
// Every frame decision goes through [Resolve], a pure function of the
// requested frame, the view's measured size, a reference rect and an
// [Options] set:
//
//	// Wrap a label to 300 wide, never wider, centered in the row.
//	f := p.SetFrame(geom.R(x, y, 300, 0), title,
//	    layout.Combine(layout.SizeToFit, layout.ConstrainWidth, layout.CenterHorizontally))
//	y += f.H
//
// Measure keeps one cached (hint, size) pair and reuses it while the hint
// is bitwise identical. Owners call [Engine.SetNeedsLayout] whenever their
// content changes.
//
// Engines are not safe for concurrent use. Distinct engines share nothing
// and may run on different goroutines.
package layout
