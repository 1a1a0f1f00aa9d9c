package gamemath

import "math"

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Mirror reflects an offset box authored for a right-facing fighter
// around anchor x when facing left.
func (r Rect) Mirror(anchorX float64, facing int) Rect {
	if facing >= 0 {
		return Rect{X: anchorX + r.X, Y: r.Y, W: r.W, H: r.H}
	}
	return Rect{X: anchorX - r.X - r.W, Y: r.Y, W: r.W, H: r.H}
}

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampInt returns v limited to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApplyFriction scales speed by a multiplicative damping factor.
func ApplyFriction(speedX, factor float64) float64 {
	return speedX * factor
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}

// RoundInt rounds half away from zero.
func RoundInt(v float64) int {
	return int(math.Round(v))
}
