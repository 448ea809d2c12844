package tinyvg

import (
	"errors"
	"math"

	"github.com/MasterQ32/TinyVG/internal/capsule"
	"github.com/MasterQ32/TinyVG/internal/flatten"
	"github.com/MasterQ32/TinyVG/internal/logging"
	"github.com/MasterQ32/TinyVG/internal/scanfill"
)

// painter bundles the per-call scale factors translating logical image
// coordinates to framebuffer pixels.
type painter struct {
	fb          Framebuffer
	colors      ColorTable
	scaleX      float32
	scaleY      float32
	strokeScale float32
}

// Render dispatches a single DrawCommand against framebuffer, scaling
// logical coordinates from header's logical dimensions to framebuffer's
// pixel dimensions. See RenderAll to dispatch a whole command stream with
// per-command error indexing.
func Render(fb Framebuffer, header Header, colors ColorTable, cmd DrawCommand, opts ...RenderOption) error {
	return renderCommand(fb, header, colors, 0, cmd, opts...)
}

// RenderAll dispatches commands in order, stopping at the first error and
// wrapping it in a RenderError carrying the offending command's index.
func RenderAll(fb Framebuffer, header Header, colors ColorTable, commands []DrawCommand, opts ...RenderOption) error {
	for i, cmd := range commands {
		if err := renderCommand(fb, header, colors, i, cmd, opts...); err != nil {
			return err
		}
	}
	return nil
}

func renderCommand(fb Framebuffer, header Header, colors ColorTable, index int, cmd DrawCommand, opts ...RenderOption) error {
	options := defaultRenderOptions()
	for _, o := range opts {
		o(&options)
	}

	scaleX := float32(fb.Width()) / float32(header.Width)
	scaleY := float32(fb.Height()) / float32(header.Height)
	strokeScale := (scaleX + scaleY) / 2

	p := &painter{fb: fb, colors: colors, scaleX: scaleX, scaleY: scaleY, strokeScale: strokeScale}

	kind := commandKind(cmd)
	logging.Get().Debug("tinyvg: dispatch", "kind", kind, "index", index, "scaleX", scaleX, "scaleY", scaleY)

	var err error
	switch c := cmd.(type) {
	case FillPolygon:
		err = p.fillPolygon(c.Style, c.Vertices, scanfill.NonZero)

	case FillRectangles:
		err = p.fillRectangles(c.Style, c.Rectangles)

	case FillPath:
		err = p.fillPath(c.Style, c.Path, scanfill.EvenOdd, options)

	case DrawLines:
		err = p.drawLines(c.Style, c.LineWidth, c.Lines)

	case DrawLineStrip:
		err = p.drawLineStrip(c.Style, c.LineWidth, c.Vertices)

	case DrawLineLoop:
		err = p.drawLineLoop(c.Style, c.LineWidth, c.Vertices)

	case DrawLinePath:
		err = p.drawLinePath(c.Style, c.LineWidth, c.Path, options)

	case OutlineFillPolygon:
		if err = p.fillPolygon(c.FillStyle, c.Vertices, scanfill.NonZero); err == nil {
			err = p.strokeLoop(c.LineStyle, c.LineWidth, c.Vertices)
		}

	case OutlineFillRectangles:
		err = p.outlineFillRectangles(c.FillStyle, c.LineStyle, c.LineWidth, c.Rectangles)

	case OutlineFillPath:
		err = p.outlineFillPath(c.FillStyle, c.LineStyle, c.LineWidth, c.Path, options)

	default:
		err = nil
	}

	if err != nil {
		return &RenderError{CommandIndex: index, CommandKind: kind, Err: err}
	}
	return nil
}

func commandKind(cmd DrawCommand) string {
	switch cmd.(type) {
	case FillPolygon:
		return "fill_polygon"
	case FillRectangles:
		return "fill_rectangles"
	case FillPath:
		return "fill_path"
	case DrawLines:
		return "draw_lines"
	case DrawLineStrip:
		return "draw_line_strip"
	case DrawLineLoop:
		return "draw_line_loop"
	case DrawLinePath:
		return "draw_line_path"
	case OutlineFillPolygon:
		return "outline_fill_polygon"
	case OutlineFillRectangles:
		return "outline_fill_rectangles"
	case OutlineFillPath:
		return "outline_fill_path"
	default:
		return "unknown"
	}
}

// toPixel scales a logical-space point to pixel space.
func (p *painter) toPixel(pt Point) scanfill.Point {
	return scanfill.Point{X: float64(pt.X * p.scaleX), Y: float64(pt.Y * p.scaleY)}
}

func (p *painter) toLogical(x, y int) Point {
	return Point{
		X: (float32(x) + 0.5) / p.scaleX,
		Y: (float32(y) + 0.5) / p.scaleY,
	}
}

// paint resolves style at the logical point backing pixel (x,y) and writes
// it to the framebuffer.
func (p *painter) paint(style Style, x, y int) error {
	logical := p.toLogical(x, y)
	c := Sample(style, p.colors, logical)
	r, g, b, a := c.Bytes()
	return setPixel(p.fb, x, y, [4]uint8{r, g, b, a})
}

func checkFinitePoints(pts []Point) error {
	for _, pt := range pts {
		if !pt.IsFinite() {
			return ErrInvalidGeometry
		}
	}
	return nil
}

func (p *painter) fillPolygon(style Style, vertices []Point, rule scanfill.Rule) error {
	if err := checkFinitePoints(vertices); err != nil {
		return err
	}
	if len(vertices) < 2 {
		return nil
	}
	pixelPts := make([]scanfill.Point, len(vertices))
	for i, v := range vertices {
		pixelPts[i] = p.toPixel(v)
	}

	var paintErr error
	scanfill.Fill(p.fb.Width(), p.fb.Height(), [][]scanfill.Point{pixelPts}, rule, func(x, y int) {
		if paintErr == nil {
			paintErr = p.paint(style, x, y)
		}
	})
	return paintErr
}

func (p *painter) fillRectangles(style Style, rects []Rectangle) error {
	for _, r := range rects {
		if err := p.fillPolygon(style, r.AsPolygon(), scanfill.NonZero); err != nil {
			return err
		}
	}
	return nil
}

// toFlattenPath converts the root Path representation into the leaf
// internal/flatten package's own command set.
func toFlattenPath(path Path) flatten.Path {
	out := flatten.Path{Segments: make([]flatten.Segment, len(path.Segments))}
	for i, seg := range path.Segments {
		fs := flatten.Segment{
			Start:    flatten.Point{X: float64(seg.Start.X), Y: float64(seg.Start.Y)},
			Commands: make([]flatten.Command, len(seg.Commands)),
		}
		for j, cmd := range seg.Commands {
			fs.Commands[j] = toFlattenCommand(cmd)
		}
		out.Segments[i] = fs
	}
	return out
}

func toFlattenCommand(cmd PathCommand) flatten.Command {
	switch c := cmd.(type) {
	case LineCommand:
		return flatten.Line{To: toFlattenPoint(c.To)}
	case HorizCommand:
		return flatten.Horiz{X: float64(c.X)}
	case VertCommand:
		return flatten.Vert{Y: float64(c.Y)}
	case BezierCommand:
		return flatten.Bezier{C0: toFlattenPoint(c.C0), C1: toFlattenPoint(c.C1), To: toFlattenPoint(c.To)}
	case QBezierCommand:
		return flatten.QBezier{C: toFlattenPoint(c.C), To: toFlattenPoint(c.To)}
	case ArcCircleCommand:
		return flatten.ArcCircle{Target: toFlattenPoint(c.Target), Radius: float64(c.Radius), LargeArc: c.LargeArc, Sweep: c.Sweep}
	case ArcEllipseCommand:
		return flatten.ArcEllipse{
			Target:      toFlattenPoint(c.Target),
			RadiusX:     float64(c.RadiusX),
			RadiusY:     float64(c.RadiusY),
			RotationDeg: float64(c.RotationDeg),
			LargeArc:    c.LargeArc,
			Sweep:       c.Sweep,
		}
	case CloseCommand:
		return flatten.Close{}
	default:
		return flatten.Close{}
	}
}

func toFlattenPoint(p Point) flatten.Point {
	return flatten.Point{X: float64(p.X), Y: float64(p.Y)}
}

func translateFlattenErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, flatten.ErrOutOfScratch):
		return ErrOutOfScratch
	case errors.Is(err, flatten.ErrInvalidGeometry):
		return ErrInvalidGeometry
	default:
		return err
	}
}

func (p *painter) flattenPolylines(path Path, options renderOptions) ([][]scanfill.Point, error) {
	buf, err := flatten.Flatten(toFlattenPath(path), options.maxPoints, options.maxSubpaths)
	if err != nil {
		return nil, translateFlattenErr(err)
	}
	polylines := make([][]scanfill.Point, len(buf.Polylines))
	for i := range buf.Polylines {
		src := buf.Polyline(i)
		dst := make([]scanfill.Point, len(src))
		for j, pt := range src {
			dst[j] = scanfill.Point{X: pt.X, Y: pt.Y}
		}
		polylines[i] = dst
	}
	return polylines, nil
}

func (p *painter) fillPath(style Style, path Path, rule scanfill.Rule, options renderOptions) error {
	polylines, err := p.flattenPolylines(path, options)
	if err != nil {
		return err
	}

	var paintErr error
	scanfill.Fill(p.fb.Width(), p.fb.Height(), polylines, rule, func(x, y int) {
		if paintErr == nil {
			paintErr = p.paint(style, x, y)
		}
	})
	return paintErr
}

func (p *painter) outlineFillPath(fillStyle, lineStyle Style, lineWidth float32, path Path, options renderOptions) error {
	polylines, err := p.flattenPolylines(path, options)
	if err != nil {
		return err
	}

	var paintErr error
	scanfill.Fill(p.fb.Width(), p.fb.Height(), polylines, scanfill.NonZero, func(x, y int) {
		if paintErr == nil {
			paintErr = p.paint(fillStyle, x, y)
		}
	})
	if paintErr != nil {
		return paintErr
	}

	for _, pl := range polylines {
		if err := p.strokePixelPolyline(lineStyle, lineWidth, pl, false); err != nil {
			return err
		}
	}
	return nil
}

func (p *painter) drawLinePath(style Style, lineWidth float32, path Path, options renderOptions) error {
	polylines, err := p.flattenPolylines(path, options)
	if err != nil {
		return err
	}
	for _, pl := range polylines {
		if err := p.strokePixelPolyline(style, lineWidth, pl, false); err != nil {
			return err
		}
	}
	return nil
}

func (p *painter) drawLines(style Style, lineWidth float32, lines []Line) error {
	for _, ln := range lines {
		if err := p.strokeSegment(style, lineWidth, lineWidth, ln.Start, ln.End); err != nil {
			return err
		}
	}
	return nil
}

func (p *painter) drawLineStrip(style Style, lineWidth float32, vertices []Point) error {
	if err := checkFinitePoints(vertices); err != nil {
		return err
	}
	pl := make([]scanfill.Point, len(vertices))
	for i, v := range vertices {
		pl[i] = p.toPixel(v)
	}
	return p.strokePixelPolyline(style, lineWidth, pl, false)
}

func (p *painter) drawLineLoop(style Style, lineWidth float32, vertices []Point) error {
	if err := checkFinitePoints(vertices); err != nil {
		return err
	}
	pl := make([]scanfill.Point, len(vertices))
	for i, v := range vertices {
		pl[i] = p.toPixel(v)
	}
	return p.strokePixelPolyline(style, lineWidth, pl, true)
}

func (p *painter) strokeLoop(style Style, lineWidth float32, vertices []Point) error {
	return p.drawLineLoop(style, lineWidth, vertices)
}

// strokePixelPolyline strokes consecutive pairs of an already pixel-scaled
// polyline; closeLoop additionally strokes the final-to-first edge.
func (p *painter) strokePixelPolyline(style Style, lineWidth float32, pl []scanfill.Point, closeLoop bool) error {
	n := len(pl)
	if n < 2 {
		return nil
	}
	for i := 0; i < n-1; i++ {
		if err := p.strokePixelSegment(style, lineWidth, lineWidth, pl[i], pl[i+1]); err != nil {
			return err
		}
	}
	if closeLoop {
		if err := p.strokePixelSegment(style, lineWidth, lineWidth, pl[n-1], pl[0]); err != nil {
			return err
		}
	}
	return nil
}

func (p *painter) strokeSegment(style Style, widthStart, widthEnd float32, start, end Point) error {
	if !start.IsFinite() || !end.IsFinite() {
		return ErrInvalidGeometry
	}
	return p.strokePixelSegment(style, widthStart, widthEnd, p.toPixel(start), p.toPixel(end))
}

func (p *painter) strokePixelSegment(style Style, widthStart, widthEnd float32, pa, pb scanfill.Point) error {
	ra := capsule.EffectiveRadius(float64(widthStart/2) * float64(p.strokeScale))
	rb := capsule.EffectiveRadius(float64(widthEnd/2) * float64(p.strokeScale))

	cpa := capsule.Vec2{X: pa.X, Y: pa.Y}
	cpb := capsule.Vec2{X: pb.X, Y: pb.Y}

	minX, minY, maxX, maxY := capsule.BoundingBox(cpa, cpb, ra, rb)

	x0 := clampIntF(math.Floor(minX), 0, p.fb.Width())
	x1 := clampIntF(math.Ceil(maxX)+1, 0, p.fb.Width())
	y0 := clampIntF(math.Floor(minY), 0, p.fb.Height())
	y1 := clampIntF(math.Ceil(maxY)+1, 0, p.fb.Height())

	for y := y0; y < y1; y++ {
		cy := float64(y) + 0.5
		for x := x0; x < x1; x++ {
			cx := float64(x) + 0.5
			if capsule.Inside(capsule.Vec2{X: cx, Y: cy}, cpa, cpb, ra, rb) {
				if err := p.paint(style, x, y); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func clampIntF(v float64, lo, hi int) int {
	i := int(v)
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

func (p *painter) outlineFillRectangles(fillStyle, lineStyle Style, lineWidth float32, rects []Rectangle) error {
	for _, r := range rects {
		if err := p.fillPolygon(fillStyle, r.AsPolygon(), scanfill.NonZero); err != nil {
			return err
		}
		// TL -> TR -> BR -> BL -> TL, preserved per spec.md §9 point 4
		// and DESIGN.md.
		corners := r.Corners()
		edges := [][2]Point{
			{corners[0], corners[1]},
			{corners[1], corners[2]},
			{corners[2], corners[3]},
			{corners[3], corners[0]},
		}
		for _, e := range edges {
			if err := p.strokeSegment(lineStyle, lineWidth, lineWidth, e[0], e[1]); err != nil {
				return err
			}
		}
	}
	return nil
}
