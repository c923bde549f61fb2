package flow

import (
	"math"
	"testing"

	"github.com/gogpu/lineart"
	"github.com/gogpu/lineart/rng"
)

func near(a, b lineart.Point, tol float64) bool {
	return a.Distance(b) <= tol
}

func TestConstant(t *testing.T) {
	c := Constant{Dir: lineart.Pt(3, 4)}
	if got := c.At(lineart.Pt(17, -2)); !near(got, lineart.Pt(0.6, 0.8), 1e-12) {
		t.Errorf("At() = %v, want (0.6, 0.8)", got)
	}
	zero := Constant{}
	if got := zero.At(lineart.Point{}); !got.IsFinite() || !near(got, lineart.Pt(1, 0), 1e-12) {
		t.Errorf("zero Constant At() = %v, want +X fallback", got)
	}
}

func TestVortices(t *testing.T) {
	v := Vortices{Centers: []Vortex{{Center: lineart.Pt(0, 0), Strength: 1, Core: 1}}}

	// Counter-clockwise: east of the center points north.
	if got := v.At(lineart.Pt(5, 0)); !near(got, lineart.Pt(0, 1), 1e-12) {
		t.Errorf("At(east) = %v, want (0, 1)", got)
	}
	if got := v.At(lineart.Pt(0, 5)); !near(got, lineart.Pt(-1, 0), 1e-12) {
		t.Errorf("At(north) = %v, want (-1, 0)", got)
	}

	// The center itself and zero-core vortices stay finite.
	v.Centers[0].Core = 0
	for _, p := range []lineart.Point{{}, {X: 1e-12}} {
		if got := v.At(p); !got.IsFinite() {
			t.Errorf("At(%v) = %v, want finite", p, got)
		}
	}
}

func TestVortices_Drift(t *testing.T) {
	v := Vortices{Drift: lineart.Pt(0, -2)}
	if got := v.At(lineart.Pt(3, 3)); !near(got, lineart.Pt(0, -1), 1e-12) {
		t.Errorf("At() = %v, want (0, -1)", got)
	}
}

func TestNoiseAngle(t *testing.T) {
	n := NoiseAngle{Noise: rng.New("field"), Scale: 0.05, Turbulence: 1, Octaves: 2}
	for x := 0.0; x < 100; x += 7.5 {
		for y := 0.0; y < 100; y += 7.5 {
			got := n.At(lineart.Pt(x, y))
			if math.Abs(got.Length()-1) > 1e-9 {
				t.Fatalf("At(%v, %v) = %v, want unit length", x, y, got)
			}
		}
	}

	// A dominant drift pulls every direction into its half-plane.
	n.Drift = lineart.Pt(1, 0)
	n.DriftWeight = 10
	for x := 0.0; x < 100; x += 10 {
		if got := n.At(lineart.Pt(x, 42)); got.X <= 0 {
			t.Errorf("At(%v, 42) = %v, want positive X with strong drift", x, got)
		}
	}
}

func TestSum(t *testing.T) {
	s := Sum{
		{Field: Constant{Dir: lineart.Pt(1, 0)}, Weight: 1},
		{Field: Constant{Dir: lineart.Pt(0, 1)}, Weight: 1},
	}
	want := lineart.Pt(math.Sqrt2/2, math.Sqrt2/2)
	if got := s.At(lineart.Point{}); !near(got, want, 1e-12) {
		t.Errorf("At() = %v, want %v", got, want)
	}

	f := FieldFunc(func(p lineart.Point) lineart.Point { return lineart.Pt(0, -p.X) })
	s = Sum{{Field: f, Weight: 2}}
	if got := s.At(lineart.Pt(4, 0)); !near(got, lineart.Pt(0, -1), 1e-12) {
		t.Errorf("FieldFunc term At() = %v, want (0, -1)", got)
	}
}
