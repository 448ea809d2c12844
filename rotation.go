package tinyvg

import "math"

// Rotation is a 2x2 linear transformation matrix:
//
//	| a  b |
//	| c  d |
//
// representing x' = a*x + b*y, y' = c*x + d*y. It carries no translation
// component, which suits the affine reduction of elliptical arcs to the
// circular case (rotate by -rotation, then scale one axis), where
// translation never enters.
type Rotation struct {
	A, B float32
	C, D float32
}

// IdentityRotation returns the identity transform.
func IdentityRotation() Rotation {
	return Rotation{A: 1, B: 0, C: 0, D: 1}
}

// NewRotation builds a rotation matrix for the given angle in radians.
func NewRotation(angle float32) Rotation {
	cos := float32(math.Cos(float64(angle)))
	sin := float32(math.Sin(float64(angle)))
	return Rotation{
		A: cos, B: -sin,
		C: sin, D: cos,
	}
}

// Scaling returns a diagonal scale matrix.
func Scaling(sx, sy float32) Rotation {
	return Rotation{A: sx, B: 0, C: 0, D: sy}
}

// Multiply returns m * other.
func (m Rotation) Multiply(other Rotation) Rotation {
	return Rotation{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
	}
}

// Apply transforms a vector by the matrix.
func (m Rotation) Apply(v Vector) Vector {
	return Vector{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// ApplyPoint transforms a point by the matrix, treating it as a vector
// relative to the origin.
func (m Rotation) ApplyPoint(p Point) Point {
	return m.Apply(p.ToVector()).ToPoint()
}

// Invert returns the inverse matrix. Returns the identity if m is singular.
func (m Rotation) Invert() Rotation {
	det := m.A*m.D - m.B*m.C
	if absF32(det) < 1e-10 {
		return IdentityRotation()
	}
	invDet := 1.0 / det
	return Rotation{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
	}
}
