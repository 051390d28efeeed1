package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1 following the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Normalize returns the unit vector of (x, y), or (0, 0) for the zero vector.
func Normalize(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// AxisDirection converts 4-way directional intent into a step direction.
// Opposing keys cancel out.
func AxisDirection(negative, positive bool) float64 {
	var d float64
	if negative {
		d--
	}
	if positive {
		d++
	}
	return d
}
