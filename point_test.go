package lineart

import (
	"math"
	"testing"
)

const tol = 1e-12

func nearPoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

func TestPoint_Arithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"Add", p.Add(q), Pt(4, 2)},
		{"Sub", p.Sub(q), Pt(2, 6)},
		{"Mul", p.Mul(2), Pt(6, 8)},
		{"Perp", p.Perp(), Pt(-4, 3)},
		{"Rotate 90", Pt(1, 0).Rotate(math.Pi / 2), Pt(0, 1)},
		{"Lerp 0", p.Lerp(q, 0), p},
		{"Lerp 1", p.Lerp(q, 1), q},
		{"Lerp mid", p.Lerp(q, 0.5), Pt(2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !nearPoint(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if d := p.Dot(q); d != -5 {
		t.Errorf("Dot() = %v, want -5", d)
	}
	if c := p.Cross(q); c != -10 {
		t.Errorf("Cross() = %v, want -10", c)
	}
	if l := p.Length(); l != 5 {
		t.Errorf("Length() = %v, want 5", l)
	}
	if d := p.Distance(Pt(0, 0)); d != 5 {
		t.Errorf("Distance() = %v, want 5", d)
	}
}

func TestPoint_Normalize(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{"unit", Pt(0, 2), Pt(0, 1)},
		{"diagonal", Pt(3, -4), Pt(0.6, -0.8)},
		{"zero falls back to +X", Pt(0, 0), Pt(1, 0)},
		{"tiny falls back to +X", Pt(1e-12, 0), Pt(1, 0)},
		{"NaN falls back to +X", Pt(math.NaN(), 1), Pt(1, 0)},
		{"Inf falls back to +X", Pt(math.Inf(1), 1), Pt(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Normalize(); !nearPoint(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPoint_IsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("IsFinite(1, 2) = false")
	}
	for _, p := range []Point{{X: math.NaN()}, {Y: math.Inf(-1)}} {
		if p.IsFinite() {
			t.Errorf("IsFinite(%v) = true", p)
		}
	}
}
