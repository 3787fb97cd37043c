// Package view provides a small host view hierarchy for the layout
// engine: boxes, images, text labels and containers that own a
// [layout.Engine].
//
// These views only store frames and answer measurement queries. Drawing
// is left to whoever walks the tree (the CLI renders a table, an SVG or a
// terminal preview from the same frames).
//
// Subview frames are relative to their parent's bounds. [Walk] visits the
// tree with absolute frames.
package view
