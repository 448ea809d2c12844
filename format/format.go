// Package format decodes the public TinyVG 1.0 binary container into the
// rendering core's input types: a tinyvg.Header, a tinyvg.ColorTable, and a
// slice of tinyvg.DrawCommand. The wire format is, per spec, orthogonal to
// the rendering core itself; this package exists so a complete repository
// has something to feed it.
package format

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/MasterQ32/TinyVG/internal/logging"

	tinyvg "github.com/MasterQ32/TinyVG"
)

var (
	// ErrBadMagic is returned when the leading two bytes aren't the TinyVG
	// magic.
	ErrBadMagic = errors.New("format: bad magic bytes")

	// ErrUnsupportedVersion is returned for a version byte this decoder
	// does not understand.
	ErrUnsupportedVersion = errors.New("format: unsupported version")

	// ErrUnsupportedColorEncoding is returned for a color-encoding value
	// this decoder does not implement.
	ErrUnsupportedColorEncoding = errors.New("format: unsupported color encoding")

	// ErrUnsupportedCoordinateRange is returned for a coordinate-range
	// value this decoder does not implement.
	ErrUnsupportedCoordinateRange = errors.New("format: unsupported coordinate range")

	// ErrUnknownCommand is returned for a command index outside the
	// known dispatch table.
	ErrUnknownCommand = errors.New("format: unknown draw command")

	// ErrTruncated is returned when the stream ends mid-structure.
	ErrTruncated = errors.New("format: truncated stream")
)

var magic = [2]byte{0x72, 0x56} // "rV"

// colorEncoding selects how the color table's entries are laid out.
type colorEncoding uint8

const (
	colorEncodingRGBA8888 colorEncoding = 0
	colorEncodingRGB565   colorEncoding = 1
	colorEncodingRGBAF32  colorEncoding = 2
	colorEncodingCustom   colorEncoding = 3
)

// coordinateRange selects the integer width backing Width/Height and every
// coordinate value in the command stream.
type coordinateRange uint8

const (
	rangeU16 coordinateRange = 0
	rangeU8  coordinateRange = 1
	rangeU32 coordinateRange = 2
)

// command indices, packed into the low 6 bits of each command's tag byte.
const (
	cmdEndOfDocument = iota
	cmdFillPolygon
	cmdFillRectangles
	cmdFillPath
	cmdDrawLines
	cmdDrawLineLoop
	cmdDrawLineStrip
	cmdDrawLinePath
	cmdOutlineFillPolygon
	cmdOutlineFillRectangles
	cmdOutlineFillPath
)

// styleKind is packed into the high 2 bits of a command's tag byte,
// selecting which Style variant its payload carries.
type styleKind uint8

const (
	styleFlat   styleKind = 0
	styleLinear styleKind = 1
	styleRadial styleKind = 2
)

// Document is the fully decoded result of Decode: everything Render needs
// to draw, command by command.
type Document struct {
	Header   tinyvg.Header
	Colors   tinyvg.ColorTable
	Commands []tinyvg.DrawCommand
}

// decoder tracks the per-document settings that every subsequent read
// depends on (coordinate scale and range).
type decoder struct {
	r       io.ByteReader
	scale   uint8
	crange  coordinateRange
	encoding colorEncoding
}

// Decode parses a complete TinyVG binary container from r.
func Decode(r io.Reader) (*Document, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = newByteReader(r)
	}

	var gotMagic [2]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if gotMagic != magic {
		return nil, ErrBadMagic
	}

	version, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if version != 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	flags, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	d := &decoder{
		r:        br,
		scale:    flags & 0x0F,
		encoding: colorEncoding((flags >> 4) & 0x03),
		crange:   coordinateRange((flags >> 6) & 0x03),
	}

	width, height, err := d.readDimensions()
	if err != nil {
		return nil, err
	}

	colorCount, err := d.readVaruint()
	if err != nil {
		return nil, err
	}
	colors, err := d.readColorTable(int(colorCount))
	if err != nil {
		return nil, err
	}

	commands, err := d.readCommands(colors)
	if err != nil {
		return nil, err
	}

	logging.Get().Debug("format: decoded document", "width", width, "height", height, "colors", len(colors), "commands", len(commands))

	return &Document{
		Header:   tinyvg.Header{Width: width, Height: height},
		Colors:   colors,
		Commands: commands,
	}, nil
}

func (d *decoder) readDimensions() (uint32, uint32, error) {
	switch d.crange {
	case rangeU16:
		w, err := d.readUint16()
		if err != nil {
			return 0, 0, err
		}
		h, err := d.readUint16()
		if err != nil {
			return 0, 0, err
		}
		return uint32(w), uint32(h), nil
	case rangeU8:
		w, err := d.r.ReadByte()
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		h, err := d.r.ReadByte()
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		return uint32(w), uint32(h), nil
	case rangeU32:
		w, err := d.readUint32()
		if err != nil {
			return 0, 0, err
		}
		h, err := d.readUint32()
		if err != nil {
			return 0, 0, err
		}
		return w, h, nil
	default:
		return 0, 0, ErrUnsupportedCoordinateRange
	}
}

func (d *decoder) readUint16() (uint16, error) {
	var buf [2]byte
	for i := range buf {
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		buf[i] = b
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func (d *decoder) readUint32() (uint32, error) {
	var buf [4]byte
	for i := range buf {
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		buf[i] = b
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// readVaruint reads a LEB128-style unsigned varint: 7 payload bits per
// byte, high bit set means "more bytes follow".
func (d *decoder) readVaruint() (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift > 63 {
			return 0, fmt.Errorf("format: varuint too large")
		}
	}
}

// readUnit reads one coordinate value and converts it to a logical-space
// float32 using the document's fractional-bit scale.
func (d *decoder) readUnit() (float32, error) {
	v, err := d.readVaruint()
	if err != nil {
		return 0, err
	}
	return float32(v) / float32(uint64(1)<<d.scale), nil
}

func (d *decoder) readPoint() (tinyvg.Point, error) {
	x, err := d.readUnit()
	if err != nil {
		return tinyvg.Point{}, err
	}
	y, err := d.readUnit()
	if err != nil {
		return tinyvg.Point{}, err
	}
	return tinyvg.Pt(x, y), nil
}

func (d *decoder) readColorTable(count int) (tinyvg.ColorTable, error) {
	table := make(tinyvg.ColorTable, count)
	for i := 0; i < count; i++ {
		c, err := d.readColor()
		if err != nil {
			return nil, err
		}
		table[i] = c
	}
	return table, nil
}

func (d *decoder) readColor() (tinyvg.Color, error) {
	switch d.encoding {
	case colorEncodingRGBA8888:
		var buf [4]byte
		for i := range buf {
			b, err := d.r.ReadByte()
			if err != nil {
				return tinyvg.Color{}, fmt.Errorf("%w: %v", ErrTruncated, err)
			}
			buf[i] = b
		}
		return tinyvg.NewColor(
			float32(buf[0])/255,
			float32(buf[1])/255,
			float32(buf[2])/255,
			float32(buf[3])/255,
		), nil

	case colorEncodingRGB565:
		v, err := d.readUint16()
		if err != nil {
			return tinyvg.Color{}, err
		}
		r := (v >> 11) & 0x1F
		g := (v >> 5) & 0x3F
		b := v & 0x1F
		return tinyvg.NewColor(
			float32(r)/31,
			float32(g)/63,
			float32(b)/31,
			1,
		), nil

	case colorEncodingRGBAF32:
		var buf [16]byte
		for i := range buf {
			bb, err := d.r.ReadByte()
			if err != nil {
				return tinyvg.Color{}, fmt.Errorf("%w: %v", ErrTruncated, err)
			}
			buf[i] = bb
		}
		r := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
		g := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
		b := math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12]))
		a := math.Float32frombits(binary.LittleEndian.Uint32(buf[12:16]))
		return tinyvg.NewColor(r, g, b, a), nil

	default:
		return tinyvg.Color{}, ErrUnsupportedColorEncoding
	}
}

func (d *decoder) readStyle(kind styleKind) (tinyvg.Style, error) {
	switch kind {
	case styleFlat:
		idx, err := d.readVaruint()
		if err != nil {
			return nil, err
		}
		return tinyvg.FlatStyle{ColorIndex: int(idx)}, nil

	case styleLinear, styleRadial:
		p0, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		p1, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		c0, err := d.readVaruint()
		if err != nil {
			return nil, err
		}
		c1, err := d.readVaruint()
		if err != nil {
			return nil, err
		}
		if kind == styleLinear {
			return tinyvg.LinearStyle{P0: p0, P1: p1, ColorIndex0: int(c0), ColorIndex1: int(c1)}, nil
		}
		return tinyvg.RadialStyle{P0: p0, P1: p1, ColorIndex0: int(c0), ColorIndex1: int(c1)}, nil

	default:
		return nil, fmt.Errorf("format: unsupported style kind %d", kind)
	}
}

func (d *decoder) readRectangle() (tinyvg.Rectangle, error) {
	x, err := d.readUnit()
	if err != nil {
		return tinyvg.Rectangle{}, err
	}
	y, err := d.readUnit()
	if err != nil {
		return tinyvg.Rectangle{}, err
	}
	w, err := d.readUnit()
	if err != nil {
		return tinyvg.Rectangle{}, err
	}
	h, err := d.readUnit()
	if err != nil {
		return tinyvg.Rectangle{}, err
	}
	return tinyvg.Rectangle{X: x, Y: y, Width: w, Height: h}, nil
}

func (d *decoder) readVertices() ([]tinyvg.Point, error) {
	count, err := d.readVaruint()
	if err != nil {
		return nil, err
	}
	pts := make([]tinyvg.Point, count)
	for i := range pts {
		p, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}

func (d *decoder) readRectangles() ([]tinyvg.Rectangle, error) {
	count, err := d.readVaruint()
	if err != nil {
		return nil, err
	}
	rects := make([]tinyvg.Rectangle, count)
	for i := range rects {
		r, err := d.readRectangle()
		if err != nil {
			return nil, err
		}
		rects[i] = r
	}
	return rects, nil
}

func (d *decoder) readLines() ([]tinyvg.Line, error) {
	count, err := d.readVaruint()
	if err != nil {
		return nil, err
	}
	lines := make([]tinyvg.Line, count)
	for i := range lines {
		start, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		end, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		lines[i] = tinyvg.Line{Start: start, End: end}
	}
	return lines, nil
}

func (d *decoder) readPath() (tinyvg.Path, error) {
	segmentCount, err := d.readVaruint()
	if err != nil {
		return tinyvg.Path{}, err
	}
	path := tinyvg.Path{Segments: make([]tinyvg.PathSegment, segmentCount)}
	for i := range path.Segments {
		start, err := d.readPoint()
		if err != nil {
			return tinyvg.Path{}, err
		}
		commandCount, err := d.readVaruint()
		if err != nil {
			return tinyvg.Path{}, err
		}
		seg := tinyvg.PathSegment{Start: start, Commands: make([]tinyvg.PathCommand, commandCount)}
		for j := range seg.Commands {
			cmd, err := d.readPathCommand()
			if err != nil {
				return tinyvg.Path{}, err
			}
			seg.Commands[j] = cmd
		}
		path.Segments[i] = seg
	}
	return path, nil
}

const (
	pathCmdLine = iota
	pathCmdHoriz
	pathCmdVert
	pathCmdBezier
	pathCmdQBezier
	pathCmdArcCircle
	pathCmdArcEllipse
	pathCmdClose
)

func (d *decoder) readPathCommand() (tinyvg.PathCommand, error) {
	tag, err := d.r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	switch tag {
	case pathCmdLine:
		to, err := d.readPoint()
		return tinyvg.LineCommand{To: to}, err

	case pathCmdHoriz:
		x, err := d.readUnit()
		return tinyvg.HorizCommand{X: x}, err

	case pathCmdVert:
		y, err := d.readUnit()
		return tinyvg.VertCommand{Y: y}, err

	case pathCmdBezier:
		c0, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		c1, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		to, err := d.readPoint()
		return tinyvg.BezierCommand{C0: c0, C1: c1, To: to}, err

	case pathCmdQBezier:
		c, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		to, err := d.readPoint()
		return tinyvg.QBezierCommand{C: c, To: to}, err

	case pathCmdArcCircle:
		flags, err := d.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		radius, err := d.readUnit()
		if err != nil {
			return nil, err
		}
		target, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		return tinyvg.ArcCircleCommand{
			Target:   target,
			Radius:   radius,
			LargeArc: flags&0x1 != 0,
			Sweep:    flags&0x2 != 0,
		}, nil

	case pathCmdArcEllipse:
		flags, err := d.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		rx, err := d.readUnit()
		if err != nil {
			return nil, err
		}
		ry, err := d.readUnit()
		if err != nil {
			return nil, err
		}
		rot, err := d.readUnit()
		if err != nil {
			return nil, err
		}
		target, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		return tinyvg.ArcEllipseCommand{
			Target:      target,
			RadiusX:     rx,
			RadiusY:     ry,
			RotationDeg: rot,
			LargeArc:    flags&0x1 != 0,
			Sweep:       flags&0x2 != 0,
		}, nil

	case pathCmdClose:
		return tinyvg.CloseCommand{}, nil

	default:
		return nil, fmt.Errorf("format: unknown path command tag %d", tag)
	}
}

func (d *decoder) readLineWidth() (float32, error) {
	return d.readUnit()
}

func (d *decoder) readCommands(colors tinyvg.ColorTable) ([]tinyvg.DrawCommand, error) {
	_ = colors // color indices are resolved lazily by Render, not here
	var commands []tinyvg.DrawCommand

	for {
		tag, err := d.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		id := tag & 0x3F
		kind := styleKind((tag >> 6) & 0x03)

		if id == cmdEndOfDocument {
			return commands, nil
		}

		cmd, err := d.readCommand(id, kind)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
}

func (d *decoder) readCommand(id uint8, kind styleKind) (tinyvg.DrawCommand, error) {
	switch id {
	case cmdFillPolygon:
		style, err := d.readStyle(kind)
		if err != nil {
			return nil, err
		}
		verts, err := d.readVertices()
		return tinyvg.FillPolygon{Style: style, Vertices: verts}, err

	case cmdFillRectangles:
		style, err := d.readStyle(kind)
		if err != nil {
			return nil, err
		}
		rects, err := d.readRectangles()
		return tinyvg.FillRectangles{Style: style, Rectangles: rects}, err

	case cmdFillPath:
		style, err := d.readStyle(kind)
		if err != nil {
			return nil, err
		}
		path, err := d.readPath()
		return tinyvg.FillPath{Style: style, Path: path}, err

	case cmdDrawLines:
		style, err := d.readStyle(kind)
		if err != nil {
			return nil, err
		}
		width, err := d.readLineWidth()
		if err != nil {
			return nil, err
		}
		lines, err := d.readLines()
		return tinyvg.DrawLines{Style: style, LineWidth: width, Lines: lines}, err

	case cmdDrawLineStrip:
		style, err := d.readStyle(kind)
		if err != nil {
			return nil, err
		}
		width, err := d.readLineWidth()
		if err != nil {
			return nil, err
		}
		verts, err := d.readVertices()
		return tinyvg.DrawLineStrip{Style: style, LineWidth: width, Vertices: verts}, err

	case cmdDrawLineLoop:
		style, err := d.readStyle(kind)
		if err != nil {
			return nil, err
		}
		width, err := d.readLineWidth()
		if err != nil {
			return nil, err
		}
		verts, err := d.readVertices()
		return tinyvg.DrawLineLoop{Style: style, LineWidth: width, Vertices: verts}, err

	case cmdDrawLinePath:
		style, err := d.readStyle(kind)
		if err != nil {
			return nil, err
		}
		width, err := d.readLineWidth()
		if err != nil {
			return nil, err
		}
		path, err := d.readPath()
		return tinyvg.DrawLinePath{Style: style, LineWidth: width, Path: path}, err

	case cmdOutlineFillPolygon:
		fillStyle, err := d.readStyle(kind)
		if err != nil {
			return nil, err
		}
		lineKindByte, err := d.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		lineStyle, err := d.readStyle(styleKind(lineKindByte))
		if err != nil {
			return nil, err
		}
		width, err := d.readLineWidth()
		if err != nil {
			return nil, err
		}
		verts, err := d.readVertices()
		return tinyvg.OutlineFillPolygon{FillStyle: fillStyle, LineStyle: lineStyle, LineWidth: width, Vertices: verts}, err

	case cmdOutlineFillRectangles:
		fillStyle, err := d.readStyle(kind)
		if err != nil {
			return nil, err
		}
		lineKindByte, err := d.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		lineStyle, err := d.readStyle(styleKind(lineKindByte))
		if err != nil {
			return nil, err
		}
		width, err := d.readLineWidth()
		if err != nil {
			return nil, err
		}
		rects, err := d.readRectangles()
		return tinyvg.OutlineFillRectangles{FillStyle: fillStyle, LineStyle: lineStyle, LineWidth: width, Rectangles: rects}, err

	case cmdOutlineFillPath:
		fillStyle, err := d.readStyle(kind)
		if err != nil {
			return nil, err
		}
		lineKindByte, err := d.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		lineStyle, err := d.readStyle(styleKind(lineKindByte))
		if err != nil {
			return nil, err
		}
		width, err := d.readLineWidth()
		if err != nil {
			return nil, err
		}
		path, err := d.readPath()
		return tinyvg.OutlineFillPath{FillStyle: fillStyle, LineStyle: lineStyle, LineWidth: width, Path: path}, err

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCommand, id)
	}
}

// byteReader adapts an io.Reader without ReadByte to io.ByteReader via a
// one-byte scratch buffer, avoiding a bufio.Reader allocation's larger
// default buffer for callers that already pass in a well-buffered reader.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func newByteReader(r io.Reader) *byteReader {
	return &byteReader{r: r}
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}
