package tinyvg

import "math"

// Point represents a 2D point in logical coordinates.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float32) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).ToVector().Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// ToVector reinterprets the point as a displacement vector.
func (p Point) ToVector() Vector {
	return Vector{X: p.X, Y: p.Y}
}

// IsFinite reports whether both coordinates are finite, non-NaN values.
func (p Point) IsFinite() bool {
	return !math.IsNaN(float64(p.X)) && !math.IsInf(float64(p.X), 0) &&
		!math.IsNaN(float64(p.Y)) && !math.IsInf(float64(p.Y), 0)
}

// pixelDelta is the dedup threshold used by the path flattener: two
// consecutive flattened points no farther apart than this in both axes are
// treated as the same point.
const pixelDelta = 0.25

// ApproxEqual reports whether p and q differ by no more than pixelDelta in
// both axes, the threshold the flattener uses to drop near-duplicate points.
func (p Point) ApproxEqual(q Point) bool {
	return absF32(p.X-q.X) <= pixelDelta && absF32(p.Y-q.Y) <= pixelDelta
}

// NearlyEqual reports whether p and q are less than epsilon apart in both
// axes.
func (p Point) NearlyEqual(q Point, epsilon float32) bool {
	return absF32(p.X-q.X) < epsilon && absF32(p.Y-q.Y) < epsilon
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// ClampFloatToInt floors v to an int (rounding toward negative infinity)
// and clamps the result to [lo, hi].
func ClampFloatToInt(v float32, lo, hi int) int {
	i := int(v)
	if float32(i) > v {
		i--
	}
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
