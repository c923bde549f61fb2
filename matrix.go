package lineart

import "math"

// Matrix is a 2D affine transformation in row-major 2x3 form:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Generators use it to place path-sampled shapes (icons, glyphs) on the page.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m * other: other is applied first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Transform returns a transformed copy of the polyline.
func (pl Polyline) Transform(m Matrix) Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// Transform returns a transformed copy of every polyline in the set.
func (s PolylineSet) Transform(m Matrix) PolylineSet {
	out := make(PolylineSet, len(s))
	for i, pl := range s {
		out[i] = pl.Transform(m)
	}
	return out
}
