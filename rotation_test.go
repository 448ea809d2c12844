package tinyvg

import (
	"math"
	"testing"
)

func TestIdentityRotation(t *testing.T) {
	m := IdentityRotation()
	p := Pt(3, 4)
	got := m.ApplyPoint(p)
	if got != p {
		t.Errorf("IdentityRotation.ApplyPoint(%v) = %v, want %v", p, got, p)
	}
}

func TestNewRotationQuarterTurn(t *testing.T) {
	m := NewRotation(float32(math.Pi / 2))
	got := m.Apply(Vec(1, 0))
	if !approxEqualF32(got.X, 0, 1e-5) || !approxEqualF32(got.Y, 1, 1e-5) {
		t.Errorf("NewRotation(pi/2).Apply((1,0)) = %v, want (0,1)", got)
	}
}

func TestScaling(t *testing.T) {
	m := Scaling(2, 3)
	got := m.Apply(Vec(1, 1))
	want := Vec(2, 3)
	if got != want {
		t.Errorf("Scaling(2,3).Apply((1,1)) = %v, want %v", got, want)
	}
}

func TestRotationMultiply(t *testing.T) {
	a := NewRotation(float32(math.Pi / 2))
	b := a.Multiply(a) // two quarter turns = half turn
	got := b.Apply(Vec(1, 0))
	if !approxEqualF32(got.X, -1, 1e-5) || !approxEqualF32(got.Y, 0, 1e-5) {
		t.Errorf("two quarter turns composed = %v, want (-1,0)", got)
	}
}

func TestRotationInvert(t *testing.T) {
	m := NewRotation(0.7).Multiply(Scaling(2, 0.5))
	inv := m.Invert()
	got := inv.Multiply(m).Apply(Vec(1, 0))
	if !approxEqualF32(got.X, 1, 1e-4) || !approxEqualF32(got.Y, 0, 1e-4) {
		t.Errorf("Invert did not round-trip: got %v, want (1,0)", got)
	}
}

func TestRotationInvertSingular(t *testing.T) {
	m := Rotation{A: 1, B: 1, C: 1, D: 1} // determinant 0
	got := m.Invert()
	want := IdentityRotation()
	if got != want {
		t.Errorf("Invert of singular matrix = %v, want identity %v", got, want)
	}
}
