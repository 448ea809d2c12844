package tinyvg

// PathCommand is a single step of a PathSegment, in the tagged-union style
// used throughout this package: each concrete command type carries an
// unexported marker method so the flattener can switch over the interface
// exhaustively.
type PathCommand interface {
	isPathCommand()
}

// LineCommand draws a straight line to To.
type LineCommand struct {
	To Point
}

func (LineCommand) isPathCommand() {}

// HorizCommand draws a horizontal line to X, keeping the cursor's Y.
type HorizCommand struct {
	X float32
}

func (HorizCommand) isPathCommand() {}

// VertCommand draws a vertical line to Y, keeping the cursor's X.
type VertCommand struct {
	Y float32
}

func (VertCommand) isPathCommand() {}

// BezierCommand draws a cubic Bezier curve through two control points.
type BezierCommand struct {
	C0, C1 Point
	To     Point
}

func (BezierCommand) isPathCommand() {}

// QBezierCommand draws a quadratic Bezier curve through one control point.
type QBezierCommand struct {
	C  Point
	To Point
}

func (QBezierCommand) isPathCommand() {}

// ArcCircleCommand draws a circular arc from the cursor to Target.
type ArcCircleCommand struct {
	Target   Point
	Radius   float32
	LargeArc bool
	Sweep    bool // true = turn left
}

func (ArcCircleCommand) isPathCommand() {}

// ArcEllipseCommand draws an elliptical arc from the cursor to Target.
type ArcEllipseCommand struct {
	Target      Point
	RadiusX     float32
	RadiusY     float32
	RotationDeg float32
	LargeArc    bool
	Sweep       bool // true = turn left
}

func (ArcEllipseCommand) isPathCommand() {}

// CloseCommand closes the segment by returning to its start point.
type CloseCommand struct{}

func (CloseCommand) isPathCommand() {}

// PathSegment is a cursor start point followed by a sequence of commands.
// It is closed if and only if its final command is a CloseCommand.
type PathSegment struct {
	Start    Point
	Commands []PathCommand
}

// Closed reports whether the segment's last command is CloseCommand.
func (s PathSegment) Closed() bool {
	if len(s.Commands) == 0 {
		return false
	}
	_, ok := s.Commands[len(s.Commands)-1].(CloseCommand)
	return ok
}

// Path is a sequence of one or more independent segments.
type Path struct {
	Segments []PathSegment
}

// PathBuilder assembles a Path segment by segment using a fluent API,
// mirroring how callers build up draw_path command payloads.
type PathBuilder struct {
	path    Path
	current *PathSegment
}

// NewPathBuilder returns an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

// MoveTo starts a new segment at (x, y).
func (b *PathBuilder) MoveTo(x, y float32) *PathBuilder {
	b.path.Segments = append(b.path.Segments, PathSegment{Start: Pt(x, y)})
	b.current = &b.path.Segments[len(b.path.Segments)-1]
	return b
}

func (b *PathBuilder) append(cmd PathCommand) {
	b.current.Commands = append(b.current.Commands, cmd)
}

// LineTo appends a line command.
func (b *PathBuilder) LineTo(x, y float32) *PathBuilder {
	b.append(LineCommand{To: Pt(x, y)})
	return b
}

// HorizTo appends a horizontal line command.
func (b *PathBuilder) HorizTo(x float32) *PathBuilder {
	b.append(HorizCommand{X: x})
	return b
}

// VertTo appends a vertical line command.
func (b *PathBuilder) VertTo(y float32) *PathBuilder {
	b.append(VertCommand{Y: y})
	return b
}

// CubicTo appends a cubic Bezier command.
func (b *PathBuilder) CubicTo(c0, c1 Point, to Point) *PathBuilder {
	b.append(BezierCommand{C0: c0, C1: c1, To: to})
	return b
}

// QuadTo appends a quadratic Bezier command.
func (b *PathBuilder) QuadTo(c Point, to Point) *PathBuilder {
	b.append(QBezierCommand{C: c, To: to})
	return b
}

// ArcTo appends a circular arc command.
func (b *PathBuilder) ArcTo(target Point, radius float32, largeArc, sweep bool) *PathBuilder {
	b.append(ArcCircleCommand{Target: target, Radius: radius, LargeArc: largeArc, Sweep: sweep})
	return b
}

// ArcEllipseTo appends an elliptical arc command.
func (b *PathBuilder) ArcEllipseTo(target Point, rx, ry, rotationDeg float32, largeArc, sweep bool) *PathBuilder {
	b.append(ArcEllipseCommand{
		Target:      target,
		RadiusX:     rx,
		RadiusY:     ry,
		RotationDeg: rotationDeg,
		LargeArc:    largeArc,
		Sweep:       sweep,
	})
	return b
}

// Close appends a close command.
func (b *PathBuilder) Close() *PathBuilder {
	b.append(CloseCommand{})
	return b
}

// Build returns the assembled path.
func (b *PathBuilder) Build() Path {
	return b.path
}

// Rectangle is an axis-aligned box in logical coordinates.
type Rectangle struct {
	X, Y          float32
	Width, Height float32
}

// Corners returns the rectangle's four corners in clockwise order starting
// at the top-left, the order the dispatcher's rectangle helpers use.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// AsPolygon returns the rectangle as a closed polygon, used to show
// fill_rectangles/fill_polygon equivalence over a rectangle's corners.
func (r Rectangle) AsPolygon() []Point {
	c := r.Corners()
	return []Point{c[0], c[1], c[2], c[3]}
}

// AsPath returns the rectangle as a one-segment closed Path.
func (r Rectangle) AsPath() Path {
	c := r.Corners()
	return NewPathBuilder().
		MoveTo(c[0].X, c[0].Y).
		LineTo(c[1].X, c[1].Y).
		LineTo(c[2].X, c[2].Y).
		LineTo(c[3].X, c[3].Y).
		Close().
		Build()
}

// Line is a straight segment between two logical-coordinate endpoints.
type Line struct {
	Start, End Point
}
