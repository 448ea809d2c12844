// Package flatten converts a logical Path — a sequence of segments, each a
// start point plus a list of line/curve/arc commands — into a list of
// polylines suitable for scanline filling and stroke rasterization.
//
// The package defines its own minimal geometry and command types rather
// than importing the root tinyvg package, which imports this package; see
// internal/capsule for the same leaf-package discipline.
package flatten

import (
	"errors"
	"math"

	"github.com/MasterQ32/TinyVG/internal/logging"
)

// BezierDivs is the fixed number of equal parameter steps used to
// subdivide cubic and quadratic Bezier curves. Tunable, but must match
// between encoder expectations and renderer.
const BezierDivs = 16

// CircleDivs is the fixed number of steps used to subdivide circular and
// (after affine reduction) elliptical arcs.
const CircleDivs = 100

// pixelDelta is the dedup threshold: two consecutive accepted points must
// differ by more than this in at least one axis.
const pixelDelta = 0.25

// ErrOutOfScratch is returned when a path's flattened output would exceed
// either the point buffer or the sub-path index buffer.
var ErrOutOfScratch = errors.New("flatten: scratch buffer exhausted")

// ErrInvalidGeometry is returned when a non-finite coordinate reaches the
// flattener's per-point assertion boundary.
var ErrInvalidGeometry = errors.New("flatten: non-finite coordinate")

// Point is a 2D logical-space point.
type Point struct {
	X, Y float64
}

func (p Point) sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}
func (p Point) length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (p Point) isFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func approxEqual(p, q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

func pixelDedup(p, q Point) bool {
	return math.Abs(p.X-q.X) <= pixelDelta && math.Abs(p.Y-q.Y) <= pixelDelta
}

// Command is the tagged union of path steps, mirroring the root package's
// PathCommand but expressed in this package's own Point type.
type Command interface {
	isCommand()
}

// Line draws a straight line to To.
type Line struct{ To Point }

func (Line) isCommand() {}

// Horiz draws a horizontal line to X, keeping the cursor's Y.
type Horiz struct{ X float64 }

func (Horiz) isCommand() {}

// Vert draws a vertical line to Y, keeping the cursor's X.
type Vert struct{ Y float64 }

func (Vert) isCommand() {}

// Bezier draws a cubic Bezier curve.
type Bezier struct {
	C0, C1 Point
	To     Point
}

func (Bezier) isCommand() {}

// QBezier draws a quadratic Bezier curve.
type QBezier struct {
	C  Point
	To Point
}

func (QBezier) isCommand() {}

// ArcCircle draws a circular arc from the cursor to Target.
type ArcCircle struct {
	Target   Point
	Radius   float64
	LargeArc bool
	Sweep    bool // true = turn left
}

func (ArcCircle) isCommand() {}

// ArcEllipse draws an elliptical arc from the cursor to Target.
type ArcEllipse struct {
	Target      Point
	RadiusX     float64
	RadiusY     float64
	RotationDeg float64
	LargeArc    bool
	Sweep       bool
}

func (ArcEllipse) isCommand() {}

// Close returns to the segment's start point.
type Close struct{}

func (Close) isCommand() {}

// Segment is a cursor start point plus a sequence of commands.
type Segment struct {
	Start    Point
	Commands []Command
}

// Path is a sequence of one or more segments.
type Path struct {
	Segments []Segment
}

// Polyline names a contiguous run of the buffer's Points slice.
type Polyline struct {
	Offset int
	Length int
}

// Buffer is the flattener's fixed-capacity scratch output: a concatenated
// point buffer plus one Polyline per input segment.
type Buffer struct {
	Points    []Point
	Polylines []Polyline
}

// Polyline returns the points belonging to the i-th polyline.
func (b *Buffer) Polyline(i int) []Point {
	pl := b.Polylines[i]
	return b.Points[pl.Offset : pl.Offset+pl.Length]
}

// writer accumulates points into a fixed-capacity Buffer, applying the
// pixel-delta dedup filter and enforcing the point/sub-path budgets.
type writer struct {
	buf         Buffer
	maxPoints   int
	maxSubpaths int
	segStart    int
	last        Point
	hasLast     bool
}

func newWriter(maxPoints, maxSubpaths int) *writer {
	return &writer{
		buf: Buffer{
			Points:    make([]Point, 0, maxPoints),
			Polylines: make([]Polyline, 0, maxSubpaths),
		},
		maxPoints:   maxPoints,
		maxSubpaths: maxSubpaths,
	}
}

func (w *writer) beginPolyline() error {
	if len(w.buf.Polylines) >= w.maxSubpaths {
		return ErrOutOfScratch
	}
	w.segStart = len(w.buf.Points)
	w.hasLast = false
	return nil
}

func (w *writer) endPolyline() {
	length := len(w.buf.Points) - w.segStart
	w.buf.Polylines = append(w.buf.Polylines, Polyline{Offset: w.segStart, Length: length})
}

// appendRaw adds p unconditionally (no dedup); used for the first point of
// each segment.
func (w *writer) appendRaw(p Point) error {
	if !p.isFinite() {
		return ErrInvalidGeometry
	}
	if len(w.buf.Points) >= w.maxPoints {
		return ErrOutOfScratch
	}
	w.buf.Points = append(w.buf.Points, p)
	w.last = p
	w.hasLast = true
	return nil
}

// append adds p subject to the pixel-delta dedup filter.
func (w *writer) append(p Point) error {
	if !p.isFinite() {
		return ErrInvalidGeometry
	}
	if w.hasLast && pixelDedup(p, w.last) {
		return nil
	}
	if len(w.buf.Points) >= w.maxPoints {
		return ErrOutOfScratch
	}
	w.buf.Points = append(w.buf.Points, p)
	w.last = p
	w.hasLast = true
	return nil
}

// Flatten converts path into a Buffer of polylines, one per segment.
// maxPoints and maxSubpaths bound the scratch buffers; exceeding either
// returns ErrOutOfScratch and aborts flattening the whole path.
func Flatten(path Path, maxPoints, maxSubpaths int) (Buffer, error) {
	w := newWriter(maxPoints, maxSubpaths)

	for _, seg := range path.Segments {
		if err := w.beginPolyline(); err != nil {
			return Buffer{}, err
		}

		cursor := seg.Start
		if err := w.appendRaw(cursor); err != nil {
			return Buffer{}, err
		}

		for _, cmd := range seg.Commands {
			var err error
			cursor, err = flattenCommand(w, cursor, seg.Start, cmd)
			if err != nil {
				return Buffer{}, err
			}
		}

		w.endPolyline()
	}

	return w.buf, nil
}

func flattenCommand(w *writer, cursor, segStart Point, cmd Command) (Point, error) {
	switch c := cmd.(type) {
	case Line:
		if err := w.append(c.To); err != nil {
			return cursor, err
		}
		return c.To, nil

	case Horiz:
		p := Point{X: c.X, Y: cursor.Y}
		if err := w.append(p); err != nil {
			return cursor, err
		}
		return p, nil

	case Vert:
		p := Point{X: cursor.X, Y: c.Y}
		if err := w.append(p); err != nil {
			return cursor, err
		}
		return p, nil

	case Bezier:
		if err := flattenCubicBezier(w, cursor, c.C0, c.C1, c.To); err != nil {
			return cursor, err
		}
		return c.To, nil

	case QBezier:
		if err := flattenQuadBezier(w, cursor, c.C, c.To); err != nil {
			return cursor, err
		}
		return c.To, nil

	case ArcCircle:
		if err := flattenArcCircle(w, cursor, c.Target, c.Radius, c.LargeArc, c.Sweep); err != nil {
			return cursor, err
		}
		return c.Target, nil

	case ArcEllipse:
		if err := flattenArcEllipse(w, cursor, c); err != nil {
			return cursor, err
		}
		return c.Target, nil

	case Close:
		if err := w.append(segStart); err != nil {
			return cursor, err
		}
		return segStart, nil

	default:
		return cursor, nil
	}
}

// flattenCubicBezier subdivides a cubic Bezier into BezierDivs equal
// parameter steps using repeated linear interpolation (de Casteljau
// reduction), appending points at t = 1/16 .. 15/16, then p1 exactly.
func flattenCubicBezier(w *writer, p0, c0, c1, p1 Point) error {
	for i := 1; i < BezierDivs; i++ {
		t := float64(i) / float64(BezierDivs)
		p := cubicAt(p0, c0, c1, p1, t)
		if err := w.append(p); err != nil {
			return err
		}
	}
	return w.append(p1)
}

func cubicAt(p0, c0, c1, p1 Point, t float64) Point {
	a := lerpPoint(p0, c0, t)
	b := lerpPoint(c0, c1, t)
	c := lerpPoint(c1, p1, t)
	ab := lerpPoint(a, b, t)
	bc := lerpPoint(b, c, t)
	return lerpPoint(ab, bc, t)
}

// flattenQuadBezier subdivides a quadratic Bezier the same way, with three
// control points.
func flattenQuadBezier(w *writer, p0, c, p1 Point) error {
	for i := 1; i < BezierDivs; i++ {
		t := float64(i) / float64(BezierDivs)
		p := quadAt(p0, c, p1, t)
		if err := w.append(p); err != nil {
			return err
		}
	}
	return w.append(p1)
}

func quadAt(p0, c, p1 Point, t float64) Point {
	a := lerpPoint(p0, c, t)
	b := lerpPoint(c, p1, t)
	return lerpPoint(a, b, t)
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// flattenArcCircle implements §4.2's circular arc reconstruction,
// appending its points (subject to dedup) directly to w.
func flattenArcCircle(w *writer, p0, p1 Point, radius float64, largeArc, sweep bool) error {
	pts, ok := arcCirclePoints(p0, p1, radius, largeArc, sweep)
	if !ok {
		return nil // degenerate chord: skip, per spec
	}
	for _, p := range pts {
		if err := w.append(p); err != nil {
			return err
		}
	}
	return nil
}

// arcCirclePoints computes the CircleDivs-1 interior points plus the exact
// endpoint for a circular arc from p0 to p1. Returns ok=false if the chord
// is degenerate (p0 ~= p1), in which case the arc is skipped entirely.
func arcCirclePoints(p0, p1 Point, radius float64, largeArc, sweep bool) ([]Point, bool) {
	if approxEqual(p0, p1, 1e-5) {
		logging.Get().Debug("flatten: degenerate arc chord skipped", "p0", p0, "p1", p1)
		return nil, false
	}

	delta := p1.sub(p0).mul(0.5)
	m := p0.add(delta)

	leftSide := (sweep && largeArc) || (!sweep && !largeArc)

	deltaLen := delta.length()
	r := radius
	if deltaLen > r {
		logging.Get().Warn("flatten: arc radius smaller than half chord, bumping up", "radius", radius, "halfChord", deltaLen)
		r = deltaLen // chord longer than 2r: bump r up to chord/2
	}

	radiusVec := Point{X: -delta.Y, Y: delta.X} // perpendicular to delta
	if !leftSide {
		radiusVec = radiusVec.mul(-1)
	}

	var center Point
	if deltaLen == 0 {
		center = m
	} else {
		t := math.Sqrt(math.Max(0, (r*r)/(deltaLen*deltaLen)-1))
		center = m.add(radiusVec.mul(t))
	}

	halfAngle := deltaLen / r
	if halfAngle > 1 {
		halfAngle = 1
	} else if halfAngle < -1 {
		halfAngle = -1
	}
	angle := 2 * math.Asin(halfAngle)
	if largeArc {
		angle = 2*math.Pi - angle
	}

	sign := 1.0
	if sweep {
		sign = -1.0
	}
	step := sign * angle / CircleDivs

	v0 := p0.sub(center)
	points := make([]Point, 0, CircleDivs)
	for i := 1; i < CircleDivs; i++ {
		v := rotate(v0, step*float64(i))
		points = append(points, center.add(v))
	}
	points = append(points, p1)

	return points, true
}

func rotate(v Point, angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// flattenArcEllipse implements §4.2's elliptical arc reconstruction: an
// affine reduction to the circular case, followed by transforming the raw
// circle output back.
func flattenArcEllipse(w *writer, p0 Point, c ArcEllipse) error {
	p1 := c.Target
	rx, ry := c.RadiusX, c.RadiusY

	if ry == 0 {
		ry = 1e-9 // avoid division by zero for degenerate ellipses
	}

	radiusMin := p1.sub(p0).length() / 2
	radiusLim := math.Sqrt(rx*rx + ry*ry)
	upScale := 1.0
	if radiusLim > 0 {
		upScale = math.Max(1, radiusMin/radiusLim)
	}

	ratio := rx / ry
	rot := rotationMatrix(-c.RotationDeg * math.Pi / 180)
	m := matMul(rot, diag(1, ratio))
	m = matScale(m, 1/upScale)
	mInv := matInvert(m)

	tp0 := matApply(m, p0)
	tp1 := matApply(m, p1)

	rawPts, ok := arcCirclePoints(tp0, tp1, rx*upScale, c.LargeArc, c.Sweep)
	if !ok {
		return nil
	}

	for _, rp := range rawPts {
		p := matApply(mInv, rp)
		if err := w.append(p); err != nil {
			return err
		}
	}
	return nil
}

// mat2 is a 2x2 linear matrix local to this file; kept separate from
// capsule.Vec2-style helpers since the ellipse reduction is the only
// caller.
type mat2 struct {
	a, b float64
	c, d float64
}

func rotationMatrix(angle float64) mat2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return mat2{a: cos, b: -sin, c: sin, d: cos}
}

func diag(x, y float64) mat2 {
	return mat2{a: x, b: 0, c: 0, d: y}
}

func matMul(m, n mat2) mat2 {
	return mat2{
		a: m.a*n.a + m.b*n.c,
		b: m.a*n.b + m.b*n.d,
		c: m.c*n.a + m.d*n.c,
		d: m.c*n.b + m.d*n.d,
	}
}

func matScale(m mat2, s float64) mat2 {
	return mat2{a: m.a * s, b: m.b * s, c: m.c * s, d: m.d * s}
}

func matApply(m mat2, p Point) Point {
	return Point{
		X: m.a*p.X + m.b*p.Y,
		Y: m.c*p.X + m.d*p.Y,
	}
}

func matInvert(m mat2) mat2 {
	det := m.a*m.d - m.b*m.c
	if math.Abs(det) < 1e-12 {
		return mat2{a: 1, b: 0, c: 0, d: 1}
	}
	invDet := 1 / det
	return mat2{
		a: m.d * invDet,
		b: -m.b * invDet,
		c: -m.c * invDet,
		d: m.a * invDet,
	}
}
