package geom

import "math"

// Rect is an axis-aligned rectangle given by its origin and size.
// Width and height may be transiently negative during computation.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// RectFrom builds a rect from an origin and a size.
func RectFrom(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: size.W, H: size.H}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rect's dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// WithOrigin returns r moved to origin.
func (r Rect) WithOrigin(origin Point) Rect {
	r.X, r.Y = origin.X, origin.Y
	return r
}

// WithSize returns r resized to size, keeping the origin.
func (r Rect) WithSize(size Size) Rect {
	r.W, r.H = size.W, size.H
	return r
}

// WithX returns r with its X replaced.
func (r Rect) WithX(x float64) Rect {
	r.X = x
	return r
}

// WithY returns r with its Y replaced.
func (r Rect) WithY(y float64) Rect {
	r.Y = y
	return r
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset shrinks r by dx on the left and right and dy on the top and
// bottom. Negative values grow it.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Contains reports whether p lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Union returns the smallest rect containing both r and other.
// An empty rect does not contribute.
func (r Rect) Union(other Rect) Rect {
	if other.W <= 0 && other.H <= 0 {
		return r
	}
	if r.W <= 0 && r.H <= 0 {
		return other
	}
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.MaxX(), other.MaxX())
	y1 := math.Max(r.MaxY(), other.MaxY())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
