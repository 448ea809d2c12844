// Package scanfill rasterizes flattened polylines into a pixel mask using a
// per-pixel-center ray-crossing test.
//
// Fill rule note: each polyline independently accumulates a crossing-parity
// "inside" boolean (edges implicitly closing last point to first); a pixel's
// inside_count is how many polylines report it inside. non-zero fills when
// inside_count > 0, even-odd fills when inside_count is odd. This counts
// per-polyline winding parity rather than a true signed winding number — for
// ordinary TVG artwork (same-direction outer loops, opposite-direction
// holes under even-odd) this matches the conventional result, but it is not
// a textbook non-zero rule over the combined edge set. This is documented,
// preserved behavior, not a bug to be fixed.
package scanfill

import "math"

// Rule selects how per-polyline inside counts are turned into a fill
// decision.
type Rule int

const (
	NonZero Rule = iota
	EvenOdd
)

// Point is a 2D pixel-space point; this package defines its own type to
// stay a leaf with no dependency on the root tinyvg package.
type Point struct {
	X, Y float64
}

// BoundingBox returns the smallest axis-aligned box covering every point of
// every polyline. Returns ok=false if polylines is empty.
func BoundingBox(polylines [][]Point) (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	for _, pl := range polylines {
		for _, p := range pl {
			if first {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				first = false
				continue
			}
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY, !first
}

// polylineInside reports whether p is inside pl alone: iterate edges
// (points[j], points[i]) with j = i-1 (mod N), implicitly closing the
// polyline, flipping a boolean on every qualifying edge.
func polylineInside(pl []Point, p Point) bool {
	n := len(pl)
	if n < 2 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		p0 := pl[j]
		p1 := pl[i]
		if (p0.Y > p.Y) != (p1.Y > p.Y) {
			xCross := (p1.X-p0.X)*(p.Y-p0.Y)/(p1.Y-p0.Y) + p0.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// insideCount returns how many polylines independently report p inside.
func insideCount(polylines [][]Point, p Point) int {
	count := 0
	for _, pl := range polylines {
		if polylineInside(pl, p) {
			count++
		}
	}
	return count
}

// Inside reports whether p is inside the union of polylines under rule.
func Inside(polylines [][]Point, rule Rule, p Point) bool {
	count := insideCount(polylines, p)
	if rule == EvenOdd {
		return count%2 != 0
	}
	return count > 0
}

// Fill iterates every pixel center within [0,width) x [0,height), clipped to
// the polylines' bounding box, and invokes set(x, y) for every pixel whose
// center is inside the shape under rule.
func Fill(width, height int, polylines [][]Point, rule Rule, set func(x, y int)) {
	minX, minY, maxX, maxY, ok := BoundingBox(polylines)
	if !ok {
		return
	}

	x0 := clampInt(int(math.Floor(minX)), 0, width)
	x1 := clampInt(int(math.Ceil(maxX))+1, 0, width)
	y0 := clampInt(int(math.Floor(minY)), 0, height)
	y1 := clampInt(int(math.Ceil(maxY))+1, 0, height)

	for y := y0; y < y1; y++ {
		cy := float64(y) + 0.5
		for x := x0; x < x1; x++ {
			cx := float64(x) + 0.5
			if Inside(polylines, rule, Point{X: cx, Y: cy}) {
				set(x, y)
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
