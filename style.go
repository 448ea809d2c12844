package tinyvg

// Style is the tagged union of ways a covered pixel's color can be
// resolved, generalizing the teacher's multi-stop gradient brushes down to
// the TinyVG wire format's three fixed variants.
type Style interface {
	isStyle()
}

// FlatStyle paints every covered pixel the same color-table entry.
type FlatStyle struct {
	ColorIndex int
}

func (FlatStyle) isStyle() {}

// LinearStyle paints a linear gradient between two colors along the axis
// from P0 to P1.
type LinearStyle struct {
	P0, P1         Point
	ColorIndex0    int
	ColorIndex1    int
}

func (LinearStyle) isStyle() {}

// RadialStyle paints a radial gradient between two colors, P0 being the
// center and the distance to P1 defining the gradient's radius.
type RadialStyle struct {
	P0, P1      Point
	ColorIndex0 int
	ColorIndex1 int
}

func (RadialStyle) isStyle() {}

// Sample resolves style against colors at the given logical-space point,
// per spec §4.5. pixel_x/pixel_y have already been mapped back to logical
// coordinates by the caller ((x+0.5)/scale).
func Sample(style Style, colors ColorTable, p Point) Color {
	switch s := style.(type) {
	case FlatStyle:
		return colors.At(s.ColorIndex)

	case LinearStyle:
		return sampleLinear(s, colors, p)

	case RadialStyle:
		return sampleRadial(s, colors, p)

	default:
		return Color{}
	}
}

func sampleLinear(s LinearStyle, colors ColorTable, p Point) Color {
	c0 := colors.At(s.ColorIndex0)
	c1 := colors.At(s.ColorIndex1)

	d := s.P1.Sub(s.P0).ToVector()
	delta := p.Sub(s.P0).ToVector()

	if d.Dot(delta) <= 0 {
		return c0
	}
	if d.Dot(p.Sub(s.P1).ToVector()) >= 0 {
		return c1
	}

	length := d.Length()
	if length == 0 {
		return c0
	}
	// |proj(delta onto d)| / |d| = |delta . d| / |d|^2
	t := absF32(delta.Dot(d)) / (length * length)
	return LerpSRGB(c0, c1, t)
}

func sampleRadial(s RadialStyle, colors ColorTable, p Point) Color {
	c0 := colors.At(s.ColorIndex0)
	c1 := colors.At(s.ColorIndex1)

	radius := s.P1.Distance(s.P0)
	if radius == 0 {
		return c0
	}

	t := p.Distance(s.P0) / radius
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return LerpSRGB(c0, c1, t)
}
