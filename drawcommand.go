package tinyvg

// Header defines the logical coordinate system an image was authored
// against; Render computes pixel scale factors from it.
type Header struct {
	Width  uint32
	Height uint32
}

// DrawCommand is the tagged union of operations the Dispatcher consumes one
// at a time, consuming read-only geometry and a Style reference into the
// color table.
type DrawCommand interface {
	isDrawCommand()
}

// FillPolygon fills the closed polygon defined by Vertices, non-zero rule.
type FillPolygon struct {
	Style    Style
	Vertices []Point
}

func (FillPolygon) isDrawCommand() {}

// FillRectangles fills each rectangle's pixel box independently.
type FillRectangles struct {
	Style      Style
	Rectangles []Rectangle
}

func (FillRectangles) isDrawCommand() {}

// FillPath flattens Path and fills every resulting sub-polyline, even-odd
// rule (unlike FillPolygon and OutlineFillPath, which use non-zero).
type FillPath struct {
	Style Style
	Path  Path
}

func (FillPath) isDrawCommand() {}

// DrawLines strokes each Line independently as a constant-width capsule.
type DrawLines struct {
	Style     Style
	LineWidth float32
	Lines     []Line
}

func (DrawLines) isDrawCommand() {}

// DrawLineStrip strokes consecutive pairs of Vertices.
type DrawLineStrip struct {
	Style     Style
	LineWidth float32
	Vertices  []Point
}

func (DrawLineStrip) isDrawCommand() {}

// DrawLineLoop strokes consecutive pairs of Vertices, plus a closing edge
// from the last vertex back to the first.
type DrawLineLoop struct {
	Style     Style
	LineWidth float32
	Vertices  []Point
}

func (DrawLineLoop) isDrawCommand() {}

// DrawLinePath flattens Path and, for each resulting sub-polyline, strokes
// consecutive point pairs.
type DrawLinePath struct {
	Style     Style
	LineWidth float32
	Path      Path
}

func (DrawLinePath) isDrawCommand() {}

// OutlineFillPolygon fills Vertices (non-zero), then strokes the closing
// loop around them.
type OutlineFillPolygon struct {
	FillStyle Style
	LineStyle Style
	LineWidth float32
	Vertices  []Point
}

func (OutlineFillPolygon) isDrawCommand() {}

// OutlineFillRectangles fills each rectangle, then strokes its four edges
// in TL->TR->BR->BL->TL order (preserved per spec's documented reference
// behavior).
type OutlineFillRectangles struct {
	FillStyle  Style
	LineStyle  Style
	LineWidth  float32
	Rectangles []Rectangle
}

func (OutlineFillRectangles) isDrawCommand() {}

// OutlineFillPath flattens Path, fills each sub-polyline (non-zero), then
// strokes each sub-polyline.
type OutlineFillPath struct {
	FillStyle Style
	LineStyle Style
	LineWidth float32
	Path      Path
}

func (OutlineFillPath) isDrawCommand() {}
