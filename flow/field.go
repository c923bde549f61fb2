package flow

import (
	"math"

	"github.com/gogpu/lineart"
	"github.com/gogpu/lineart/rng"
)

// Field maps a page position to a direction. Implementations must return a
// finite vector everywhere, including at singular points; the tracer
// normalizes whatever it receives.
type Field interface {
	At(p lineart.Point) lineart.Point
}

// FieldFunc adapts an ordinary function to the Field interface.
type FieldFunc func(p lineart.Point) lineart.Point

// At calls f(p).
func (f FieldFunc) At(p lineart.Point) lineart.Point {
	return f(p)
}

// Constant is a uniform field pointing along Dir.
type Constant struct {
	Dir lineart.Point
}

// At returns Dir normalized.
func (c Constant) At(lineart.Point) lineart.Point {
	return c.Dir.Normalize()
}

// Vortex is a point swirl. Positive strength turns counter-clockwise in a
// y-up frame. Core is the radius inside which the swirl stops growing; it
// keeps the denominator away from zero at the center.
type Vortex struct {
	Center   lineart.Point
	Strength float64
	Core     float64
}

// Vortices superposes swirls over a base drift.
type Vortices struct {
	Centers []Vortex
	Drift   lineart.Point
}

// At returns the normalized sum of the drift and every swirl contribution
// strength * perp(p - center) / (r² + core²).
func (v Vortices) At(p lineart.Point) lineart.Point {
	sum := v.Drift
	for _, c := range v.Centers {
		d := p.Sub(c.Center)
		core := math.Max(c.Core, lineart.Epsilon)
		den := d.Dot(d) + core*core
		sum = sum.Add(d.Perp().Mul(c.Strength / den))
	}
	return sum.Normalize()
}

// NoiseAngle turns coherent noise into directions: the noise value at the
// scaled position selects an angle, optionally blended with a drift.
type NoiseAngle struct {
	Noise *rng.Engine
	// Scale converts page units to noise space; smaller is smoother.
	Scale float64
	// Turbulence multiplies the angle range; 1 maps noise [-1, 1] to
	// [-π, π].
	Turbulence float64
	Octaves    int
	// Drift is added with DriftWeight before normalization.
	Drift       lineart.Point
	DriftWeight float64
}

// At returns the unit direction at p.
func (n NoiseAngle) At(p lineart.Point) lineart.Point {
	v := n.Noise.Fractal(p.X*n.Scale, p.Y*n.Scale, n.Octaves, 2, 0.5)
	sin, cos := math.Sincos(v * math.Pi * n.Turbulence)
	dir := lineart.Pt(cos, sin)
	if n.DriftWeight != 0 {
		dir = dir.Add(n.Drift.Normalize().Mul(n.DriftWeight))
	}
	return dir.Normalize()
}

// Weighted is one term of a Sum.
type Weighted struct {
	Field  Field
	Weight float64
}

// Sum is the normalized weighted sum of several fields.
type Sum []Weighted

// At returns the normalized weighted sum at p.
func (s Sum) At(p lineart.Point) lineart.Point {
	var acc lineart.Point
	for _, term := range s {
		acc = acc.Add(term.Field.At(p).Mul(term.Weight))
	}
	return acc.Normalize()
}
