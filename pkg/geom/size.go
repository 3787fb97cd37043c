package geom

import "math"

// Size is a width and height pair.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h float64) Size { return Size{W: w, H: h} }

// IsZero reports whether both components are zero.
func (s Size) IsZero() bool { return s.W == 0 && s.H == 0 }

// Identical reports whether s and other have bitwise-equal components.
// Unlike ==, two NaN widths with the same bits compare identical, and
// -0 differs from +0.
func (s Size) Identical(other Size) bool {
	return math.Float64bits(s.W) == math.Float64bits(other.W) &&
		math.Float64bits(s.H) == math.Float64bits(other.H)
}

// Clamp returns s with negative components replaced by zero.
func (s Size) Clamp() Size {
	return Size{W: math.Max(s.W, 0), H: math.Max(s.H, 0)}
}

// Max returns the component-wise maximum of s and other.
func (s Size) Max(other Size) Size {
	return Size{W: math.Max(s.W, other.W), H: math.Max(s.H, other.H)}
}

// Scale multiplies both components by f.
func (s Size) Scale(f float64) Size {
	return Size{W: s.W * f, H: s.H * f}
}
