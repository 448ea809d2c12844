package tinyvg

import "testing"

func TestPointAddSub(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, 5)
	if got := p.Add(q); got != Pt(4, 7) {
		t.Errorf("Add = %v, want (4,7)", got)
	}
	if got := q.Sub(p); got != Pt(2, 3) {
		t.Errorf("Sub = %v, want (2,3)", got)
	}
}

func TestPointDistance(t *testing.T) {
	got := Pt(0, 0).Distance(Pt(3, 4))
	if got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointLerp(t *testing.T) {
	got := Pt(0, 0).Lerp(Pt(10, 0), 0.25)
	want := Pt(2.5, 0)
	if got != want {
		t.Errorf("Lerp = %v, want %v", got, want)
	}
}

func TestPointIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("IsFinite(1,2) = false, want true")
	}
	nan := Pt(float32(nan()), 0)
	if nan.IsFinite() {
		t.Error("IsFinite(NaN, 0) = true, want false")
	}
}

// TestPointApproxEqualDedupThreshold exercises the exact boundary the path
// flattener relies on for pixel-delta dedup (spec: differ by more than 0.25
// in at least one axis to be kept).
func TestPointApproxEqualDedupThreshold(t *testing.T) {
	base := Pt(10, 10)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"identical", Pt(10, 10), true},
		{"within threshold both axes", Pt(10.2, 10.2), true},
		{"at threshold", Pt(10.25, 10), true},
		{"beyond threshold on x", Pt(10.26, 10), false},
		{"beyond threshold on y", Pt(10, 10.3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.ApproxEqual(tt.p)
			if got != tt.want {
				t.Errorf("ApproxEqual(%v, %v) = %v, want %v", base, tt.p, got, tt.want)
			}
		})
	}
}

func TestClampFloatToInt(t *testing.T) {
	tests := []struct {
		name     string
		v        float32
		lo, hi   int
		expected int
	}{
		{"within range", 5.7, 0, 10, 5},
		{"below range", -3.2, 0, 10, 0},
		{"above range", 15.9, 0, 10, 10},
		{"negative floor", -1.5, -5, 5, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampFloatToInt(tt.v, tt.lo, tt.hi)
			if got != tt.expected {
				t.Errorf("ClampFloatToInt(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.expected)
			}
		})
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
