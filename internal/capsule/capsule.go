// Package capsule rasterizes line segments as rounded capsules with
// possibly distinct start and end radii, using an exact signed-distance
// function reproduced verbatim from Inigo Quilez's uneven-capsule formula.
// Anti-aliasing is not performed here; it is achieved by rendering at a
// larger framebuffer and downsampling externally (see cmd/tvg-render).
package capsule

import "math"

// MinRadius is the floor applied to both endpoint radii so hairline
// strokes (width 0 or near 0) remain visible at one pixel.
const MinRadius = 0.35

// Vec2 is the minimal 2D vector this package needs; it avoids importing
// the root package to keep internal/capsule a leaf with no dependency on
// tinyvg (which imports it).
type Vec2 struct {
	X, Y float64
}

func sub(a, b Vec2) Vec2   { return Vec2{a.X - b.X, a.Y - b.Y} }
func dot(a, b Vec2) float64 { return a.X*b.X + a.Y*b.Y }
func cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// EffectiveRadius applies the MinRadius floor to a requested half-width.
func EffectiveRadius(halfWidth float64) float64 {
	if halfWidth < MinRadius {
		return MinRadius
	}
	return halfWidth
}

// SignedDistance computes the exact signed distance from p to the uneven
// capsule spanning pa (radius ra) to pb (radius rb). Negative values are
// inside, zero is on the boundary, positive is outside.
//
// This is Quilez's formula, reproduced verbatim:
//
//	p -= pa; pb -= pa
//	h = dot(pb,pb)
//	q = (dot(p,(pb.y,-pb.x)), dot(p,pb)) / h
//	q.x = |q.x|
//	b = ra - rb
//	c = (sqrt(h - b*b), b)
//	k = cross(c, q)
//	m = dot(c, q)
//	n = dot(q, q)
//	dist = k<0      -> sqrt(h*n) - ra
//	       k>c.x    -> sqrt(h*(n + 1 - 2*q.y)) - rb
//	       else     -> m - ra
func SignedDistance(p, pa, pb Vec2, ra, rb float64) float64 {
	p = sub(p, pa)
	pb = sub(pb, pa)

	h := dot(pb, pb)
	if h == 0 {
		// Degenerate zero-length segment: falls back to a circle of
		// radius ra, matching the limit of the capsule as pb -> pa.
		return math.Sqrt(dot(p, p)) - ra
	}

	qx := dot(p, Vec2{pb.Y, -pb.X}) / h
	qy := dot(p, pb) / h
	qx = math.Abs(qx)
	q := Vec2{qx, qy}

	b := ra - rb
	cx := math.Sqrt(math.Max(h-b*b, 0))
	c := Vec2{cx, b}

	k := cross(c, q)
	m := dot(c, q)
	n := dot(q, q)

	switch {
	case k < 0:
		return math.Sqrt(h*n) - ra
	case k > c.X:
		return math.Sqrt(h*(n+1-2*q.Y)) - rb
	default:
		return m - ra
	}
}

// Inside reports whether p lies within or on the capsule boundary.
func Inside(p, pa, pb Vec2, ra, rb float64) bool {
	return SignedDistance(p, pa, pb, ra, rb) <= 0
}

// BoundingBox returns the bounding box of the capsule in the coordinate
// space of its inputs: the box of pa and pb expanded by max(ra, rb) on all
// sides, which covers every point whose distance is <= 0.
func BoundingBox(pa, pb Vec2, ra, rb float64) (minX, minY, maxX, maxY float64) {
	r := ra
	if rb > r {
		r = rb
	}
	minX = math.Min(pa.X, pb.X) - r
	minY = math.Min(pa.Y, pb.Y) - r
	maxX = math.Max(pa.X, pb.X) + r
	maxY = math.Max(pa.Y, pb.Y) + r
	return
}
