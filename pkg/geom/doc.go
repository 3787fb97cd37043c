// Package geom provides the 2D value types shared by the layout engine
// and the host views: [Point], [Size] and [Rect].
//
// All coordinates are float64 in user units (points on screen, cells in
// the terminal preview). The Y axis grows downward, so a rect's MaxY is
// its bottom edge.
//
// A zero component in a [Size] is meaningful to the layout engine: it
// marks the dimension as unspecified, leaving the child to decide.
package geom
