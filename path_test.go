package tinyvg

import "testing"

func TestPathSegmentClosed(t *testing.T) {
	open := PathSegment{Start: Pt(0, 0), Commands: []PathCommand{LineCommand{To: Pt(1, 1)}}}
	if open.Closed() {
		t.Error("segment without CloseCommand reported closed")
	}

	closed := PathSegment{Start: Pt(0, 0), Commands: []PathCommand{LineCommand{To: Pt(1, 1)}, CloseCommand{}}}
	if !closed.Closed() {
		t.Error("segment with trailing CloseCommand reported open")
	}

	empty := PathSegment{Start: Pt(0, 0)}
	if empty.Closed() {
		t.Error("segment with no commands reported closed")
	}
}

func TestPathBuilderBuildsExpectedCommands(t *testing.T) {
	path := NewPathBuilder().
		MoveTo(0, 0).
		LineTo(10, 0).
		HorizTo(20).
		VertTo(20).
		CubicTo(Pt(5, 5), Pt(15, 5), Pt(20, 0)).
		QuadTo(Pt(10, 10), Pt(20, 20)).
		ArcTo(Pt(0, 0), 5, false, true).
		ArcEllipseTo(Pt(0, 0), 5, 10, 45, true, false).
		Close().
		Build()

	if len(path.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(path.Segments))
	}

	seg := path.Segments[0]
	if seg.Start != Pt(0, 0) {
		t.Errorf("Start = %v, want (0,0)", seg.Start)
	}

	wantKinds := []PathCommand{
		LineCommand{},
		HorizCommand{},
		VertCommand{},
		BezierCommand{},
		QBezierCommand{},
		ArcCircleCommand{},
		ArcEllipseCommand{},
		CloseCommand{},
	}
	if len(seg.Commands) != len(wantKinds) {
		t.Fatalf("got %d commands, want %d", len(seg.Commands), len(wantKinds))
	}

	for i, want := range wantKinds {
		got := seg.Commands[i]
		if typeName(got) != typeName(want) {
			t.Errorf("command %d = %T, want %T", i, got, want)
		}
	}

	if !seg.Closed() {
		t.Error("path built with Close() should report Closed()")
	}
}

func typeName(cmd PathCommand) string {
	switch cmd.(type) {
	case LineCommand:
		return "line"
	case HorizCommand:
		return "horiz"
	case VertCommand:
		return "vert"
	case BezierCommand:
		return "bezier"
	case QBezierCommand:
		return "qbezier"
	case ArcCircleCommand:
		return "arc_circle"
	case ArcEllipseCommand:
		return "arc_ellipse"
	case CloseCommand:
		return "close"
	default:
		return "unknown"
	}
}

func TestPathBuilderMultipleSegments(t *testing.T) {
	path := NewPathBuilder().
		MoveTo(0, 0).LineTo(1, 1).
		MoveTo(5, 5).LineTo(6, 6).
		Build()

	if len(path.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(path.Segments))
	}
	if path.Segments[0].Start != Pt(0, 0) {
		t.Errorf("segment 0 start = %v", path.Segments[0].Start)
	}
	if path.Segments[1].Start != Pt(5, 5) {
		t.Errorf("segment 1 start = %v", path.Segments[1].Start)
	}
}

func TestRectangleCorners(t *testing.T) {
	r := Rectangle{X: 10, Y: 20, Width: 5, Height: 8}
	corners := r.Corners()
	want := [4]Point{
		{X: 10, Y: 20},
		{X: 15, Y: 20},
		{X: 15, Y: 28},
		{X: 10, Y: 28},
	}
	if corners != want {
		t.Errorf("Corners() = %v, want %v", corners, want)
	}
}

func TestRectangleAsPolygon(t *testing.T) {
	r := Rectangle{X: 0, Y: 0, Width: 10, Height: 10}
	poly := r.AsPolygon()
	if len(poly) != 4 {
		t.Fatalf("got %d points, want 4", len(poly))
	}
}

func TestRectangleAsPath(t *testing.T) {
	r := Rectangle{X: 0, Y: 0, Width: 10, Height: 10}
	path := r.AsPath()
	if len(path.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(path.Segments))
	}
	if !path.Segments[0].Closed() {
		t.Error("rectangle path should be closed")
	}
}
