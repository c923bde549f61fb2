package rng

import (
	"math"
	"testing"
)

func TestNoise2D_Bounded(t *testing.T) {
	e := New("noise")
	var lo, hi float64
	for i := range 200 {
		for j := range 200 {
			v := e.Noise2D(float64(i)*0.137-13, float64(j)*0.173+7)
			if v < -1 || v > 1 || math.IsNaN(v) {
				t.Fatalf("Noise2D = %v out of range", v)
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi-lo < 0.5 {
		t.Errorf("noise spread [%v, %v] suspiciously narrow", lo, hi)
	}
}

func TestNoise2D_Deterministic(t *testing.T) {
	a, b := New("field"), New("field")
	a.Rand() // draws must not affect the noise field
	for i := range 100 {
		x, y := float64(i)*0.31, float64(i)*-0.17
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			t.Fatalf("Noise2D(%v, %v) differs between engines", x, y)
		}
	}
}

func TestNoise2D_Continuous(t *testing.T) {
	e := New("smooth")
	const h = 1e-4
	for i := range 500 {
		x, y := float64(i)*0.071, float64(i)*0.053
		d := math.Abs(e.Noise2D(x+h, y) - e.Noise2D(x, y))
		if d > 0.01 {
			t.Fatalf("jump of %v at (%v, %v)", d, x, y)
		}
	}
}

func TestNoise2D_SeedsDiffer(t *testing.T) {
	a, b := New("one"), New("two")
	diff := 0
	for i := range 100 {
		x, y := float64(i)*0.37+0.1, float64(i)*0.21+0.2
		if math.Abs(a.Noise2D(x, y)-b.Noise2D(x, y)) > 1e-6 {
			diff++
		}
	}
	if diff < 50 {
		t.Errorf("only %d of 100 samples differ between seeds", diff)
	}
}

func TestFractal(t *testing.T) {
	e := New("fbm")
	if got, want := e.Fractal(0.3, 0.4, 1, 2, 0.5), e.Noise2D(0.3, 0.4); got != want {
		t.Errorf("Fractal with 1 octave = %v, want Noise2D = %v", got, want)
	}
	if got, want := e.Fractal(0.3, 0.4, 0, 2, 0.5), e.Noise2D(0.3, 0.4); got != want {
		t.Errorf("Fractal with 0 octaves = %v, want %v", got, want)
	}
	for i := range 100 {
		v := e.Fractal(float64(i)*0.1, float64(i)*0.2, 4, 2, 0.5)
		if v < -1 || v > 1 {
			t.Fatalf("Fractal = %v out of range", v)
		}
	}
}
