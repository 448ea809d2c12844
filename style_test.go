package tinyvg

import "testing"

var testColors = ColorTable{
	{0, 0, 0, 1}, // 0: black
	{1, 1, 1, 1}, // 1: white
	{1, 0, 0, 1}, // 2: red
}

func TestSampleFlat(t *testing.T) {
	got := Sample(FlatStyle{ColorIndex: 2}, testColors, Pt(5, 5))
	if got != testColors[2] {
		t.Errorf("Sample(Flat) = %v, want %v", got, testColors[2])
	}
}

func TestSampleLinearEndpoints(t *testing.T) {
	style := LinearStyle{
		P0: Pt(0, 0), P1: Pt(100, 0),
		ColorIndex0: 0, ColorIndex1: 1,
	}

	if got := Sample(style, testColors, Pt(-10, 0)); got != testColors[0] {
		t.Errorf("before P0 = %v, want c0", got)
	}
	if got := Sample(style, testColors, Pt(110, 0)); got != testColors[1] {
		t.Errorf("beyond P1 = %v, want c1", got)
	}
}

func TestSampleLinearMonotonic(t *testing.T) {
	style := LinearStyle{
		P0: Pt(0, 0), P1: Pt(100, 0),
		ColorIndex0: 0, ColorIndex1: 1,
	}

	prev := float32(-1)
	for x := float32(0.5); x < 100; x += 10 {
		c := Sample(style, testColors, Pt(x, 0))
		if c.R < prev {
			t.Errorf("column not monotonic at x=%v: R=%v < prev=%v", x, c.R, prev)
		}
		prev = c.R
	}
}

func TestSampleRadialCenterAndEdge(t *testing.T) {
	style := RadialStyle{
		P0: Pt(50, 50), P1: Pt(100, 50),
		ColorIndex0: 0, ColorIndex1: 1,
	}

	if got := Sample(style, testColors, Pt(50, 50)); got != testColors[0] {
		t.Errorf("Sample at center = %v, want c0", got)
	}
	got := Sample(style, testColors, Pt(100, 50))
	if !approxEqualF32(got.R, 1, 1e-4) {
		t.Errorf("Sample at radius = %v, want white", got)
	}
}

func TestSampleRadialClampsBeyondRadius(t *testing.T) {
	style := RadialStyle{
		P0: Pt(50, 50), P1: Pt(60, 50),
		ColorIndex0: 0, ColorIndex1: 1,
	}

	got := Sample(style, testColors, Pt(1000, 50))
	want := Sample(style, testColors, Pt(60, 50))
	if got != want {
		t.Errorf("beyond-radius sample = %v, want clamp to edge color %v", got, want)
	}
}

func TestSampleRadialDegenerate(t *testing.T) {
	style := RadialStyle{
		P0: Pt(50, 50), P1: Pt(50, 50), // zero radius
		ColorIndex0: 0, ColorIndex1: 1,
	}

	got := Sample(style, testColors, Pt(50, 50))
	if got != testColors[0] {
		t.Errorf("degenerate radial = %v, want c0", got)
	}
}
