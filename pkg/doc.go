// Package pkg provides the core libraries for framekit view layout.
//
// # Overview
//
// Framekit sizes and positions trees of views. A container's layout is a
// single procedure that runs in two modes: a sizing pass reports how much
// room the container needs for a hint, and an applying pass commits the
// frames of its subviews. Because both modes run the same code, the size a
// container asks for is always the size it lays out into.
//
// The typical data flow:
//
//	TOML scene file
//	      ↓
//	 [scene] package (decode + build the view tree)
//	      ↓
//	 [layout] package (measure, then apply)
//	      ↓
//	 [view] package (frames, snapshots)
//	      ↓
//	 [export] package (text, JSON, DOT, SVG, PNG)
//
// [pipeline] runs those steps for the CLI and caches results through
// [cache], on disk or in Redis.
//
// # Quick Start
//
//	root := view.NewContainer("root",
//	    view.NewLabel("title", "Hello"),
//	    view.NewBox("rule", geom.Sz(0, 1)),
//	)
//	size := root.SizeThatFits(geom.Sz(40, 0))
//	root.SetFrame(geom.R(0, 0, 40, size.H))
//	for _, s := range view.Snapshots(root) {
//	    fmt.Println(s.ID, s.Absolute)
//	}
//
// # Main Packages
//
// [layout] - The dual-mode engine. [layout.Pass] resolves a requested frame
// against a view's measured size with fit, constrain, default and align
// options; [layout.Engine] caches the last measurement per hint.
//
// [view] - Concrete views (boxes, images, labels, containers) and tree
// walking.
//
// [scene] - TOML scene documents and the builder that turns them into
// view trees.
//
// [export] - Output formats for laid-out trees. SVG and PNG are rendered
// in process through Graphviz.
//
// [pipeline] - Load, measure, apply and export, with result caching.
//
// [cache] - Cache backends: file, Redis and null.
//
// [geom] - Points, sizes and rects.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for passes, pipeline stages and cache traffic.
package pkg
