package flow

import (
	"fmt"
	"math"

	"github.com/gogpu/lineart"
	"github.com/gogpu/lineart/rng"
)

// FlowFieldConfig configures FlowField.
type FlowFieldConfig struct {
	Seed string
	Params

	// NoiseScale converts page units to noise space.
	NoiseScale float64
	// Turbulence scales the angle range; 1 covers a full turn.
	Turbulence float64
	Octaves    int

	Drift       lineart.Point
	DriftWeight float64
}

// DefaultFlowFieldConfig returns a gently curving field drifting right.
func DefaultFlowFieldConfig() FlowFieldConfig {
	return FlowFieldConfig{
		Seed:        "flow",
		Params:      DefaultParams(),
		NoiseScale:  0.012,
		Turbulence:  1,
		Octaves:     2,
		Drift:       lineart.Pt(1, 0),
		DriftWeight: 0.3,
	}
}

// MaxOctaves bounds the noise octaves of the noise-driven generators.
const MaxOctaves = 16

func checkOctaves(n int) error {
	if n < 1 || n > MaxOctaves {
		return &lineart.ParamError{Field: "octaves", Value: float64(n), Reason: fmt.Sprintf("must be within [1, %d]", MaxOctaves)}
	}
	return nil
}

func (c FlowFieldConfig) validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if err := lineart.CheckNonNegative("noiseScale", c.NoiseScale); err != nil {
		return err
	}
	if err := checkOctaves(c.Octaves); err != nil {
		return err
	}
	if err := lineart.CheckFinite("turbulence", c.Turbulence); err != nil {
		return err
	}
	if !c.Drift.IsFinite() {
		return &lineart.ParamError{Field: "drift", Value: math.NaN(), Reason: "is not finite"}
	}
	return lineart.CheckFinite("driftWeight", c.DriftWeight)
}

// FlowField traces a noise-angle field blended with a constant drift.
func FlowField(cfg FlowFieldConfig, opts ...lineart.Option) (lineart.PolylineSet, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	eng := rng.New(cfg.Seed)
	field := NoiseAngle{
		Noise:       eng,
		Scale:       cfg.NoiseScale,
		Turbulence:  cfg.Turbulence,
		Octaves:     cfg.Octaves,
		Drift:       cfg.Drift,
		DriftWeight: cfg.DriftWeight,
	}
	return Trace(field, eng, cfg.Params, opts...)
}

// StreamlinesConfig configures Streamlines.
type StreamlinesConfig struct {
	Seed string
	Params

	// Vortices is the number of randomly placed swirls.
	Vortices int
	// MinStrength and MaxStrength bound the swirl magnitude; the sign is
	// chosen at random.
	MinStrength, MaxStrength float64
	// Core is the swirl core radius.
	Core float64

	Drift lineart.Point
}

// DefaultStreamlinesConfig returns a handful of swirls over a weak drift.
func DefaultStreamlinesConfig() StreamlinesConfig {
	return StreamlinesConfig{
		Seed:        "streamlines",
		Params:      DefaultParams(),
		Vortices:    5,
		MinStrength: 10,
		MaxStrength: 40,
		Core:        4,
		Drift:       lineart.Pt(0.2, 0.05),
	}
}

func (c StreamlinesConfig) validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.Vortices < 0 || c.Vortices > 1024 {
		return &lineart.ParamError{Field: "vortices", Value: float64(c.Vortices), Reason: "must be within [0, 1024]"}
	}
	if err := lineart.CheckNonNegative("minStrength", c.MinStrength); err != nil {
		return err
	}
	if err := lineart.CheckRange("maxStrength", c.MaxStrength, c.MinStrength, math.MaxFloat64); err != nil {
		return err
	}
	if err := lineart.CheckNonNegative("core", c.Core); err != nil {
		return err
	}
	if !c.Drift.IsFinite() {
		return &lineart.ParamError{Field: "drift", Value: math.NaN(), Reason: "is not finite"}
	}
	return nil
}

// Streamlines traces a field of random vortices over a base drift.
// Vortex centers are drawn from the drawable area before tracing.
func Streamlines(cfg StreamlinesConfig, opts ...lineart.Option) (lineart.PolylineSet, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	eng := rng.New(cfg.Seed)
	area := cfg.Page.Drawable()

	field := Vortices{Drift: cfg.Drift, Centers: make([]Vortex, cfg.Vortices)}
	for i := range field.Centers {
		v := Vortex{
			Center:   lineart.Pt(eng.Range(area.Min.X, area.Max.X), eng.Range(area.Min.Y, area.Max.Y)),
			Strength: eng.Range(cfg.MinStrength, cfg.MaxStrength),
			Core:     cfg.Core,
		}
		if eng.Bool(0.5) {
			v.Strength = -v.Strength
		}
		field.Centers[i] = v
	}
	return Trace(field, eng, cfg.Params, opts...)
}

// RibbonsConfig configures Ribbons.
type RibbonsConfig struct {
	Seed string
	Params

	NoiseScale float64
	Turbulence float64
	Octaves    int

	// Strands is the number of parallel polylines per trajectory.
	Strands int
	// Width is the distance between the outermost strands.
	Width float64
	// Taper narrows each ribbon toward both ends.
	Taper bool
}

// DefaultRibbonsConfig returns tapered five-strand ribbons.
func DefaultRibbonsConfig() RibbonsConfig {
	p := DefaultParams()
	p.FollowOnly = true
	p.SeedsX, p.SeedsY = 12, 12
	p.MinSpacing = 10
	return RibbonsConfig{
		Seed:       "ribbons",
		Params:     p,
		NoiseScale: 0.008,
		Turbulence: 1.2,
		Octaves:    1,
		Strands:    5,
		Width:      6,
		Taper:      true,
	}
}

func (c RibbonsConfig) validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if err := lineart.CheckNonNegative("noiseScale", c.NoiseScale); err != nil {
		return err
	}
	if err := lineart.CheckFinite("turbulence", c.Turbulence); err != nil {
		return err
	}
	if err := checkOctaves(c.Octaves); err != nil {
		return err
	}
	if c.Strands < 1 || c.Strands > 256 {
		return &lineart.ParamError{Field: "strands", Value: float64(c.Strands), Reason: "must be within [1, 256]"}
	}
	return lineart.CheckNonNegative("width", c.Width)
}

// Ribbons traces a noise-angle field forward only and expands each
// trajectory into Strands offset copies along its normals. Offset runs that
// leave the drawable area are split there; runs shorter than two points are
// dropped. FollowOnly in the embedded Params is forced on.
func Ribbons(cfg RibbonsConfig, opts ...lineart.Option) (lineart.PolylineSet, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.FollowOnly = true
	eng := rng.New(cfg.Seed)
	field := NoiseAngle{
		Noise:      eng,
		Scale:      cfg.NoiseScale,
		Turbulence: cfg.Turbulence,
		Octaves:    cfg.Octaves,
	}
	spines, err := Trace(field, eng, cfg.Params, opts...)
	if err != nil {
		return nil, err
	}

	area := cfg.Page.Drawable()
	out := make(lineart.PolylineSet, 0, len(spines)*cfg.Strands)
	for _, spine := range spines {
		normals := normals(spine)
		for k := range cfg.Strands {
			offset := 0.0
			if cfg.Strands > 1 {
				offset = (float64(k)/float64(cfg.Strands-1) - 0.5) * cfg.Width
			}
			out = append(out, offsetRuns(spine, normals, offset, cfg.Taper, area)...)
		}
	}
	return out, nil
}

// normals returns the unit normal at every point of pl, from the central
// difference of its neighbors.
func normals(pl lineart.Polyline) []lineart.Point {
	n := make([]lineart.Point, len(pl))
	for i := range pl {
		a, b := pl[max(i-1, 0)], pl[min(i+1, len(pl)-1)]
		n[i] = b.Sub(a).Normalize().Perp()
	}
	return n
}

func offsetRuns(spine lineart.Polyline, normals []lineart.Point, offset float64, taper bool, area lineart.Rect) lineart.PolylineSet {
	var runs lineart.PolylineSet
	var cur lineart.Polyline
	flush := func() {
		if len(cur) >= 2 {
			runs = append(runs, cur)
		}
		cur = nil
	}
	last := float64(len(spine) - 1)
	for i, p := range spine {
		d := offset
		if taper && last > 0 {
			d *= math.Sqrt(math.Max(0, math.Sin(math.Pi*float64(i)/last)))
		}
		q := p.Add(normals[i].Mul(d))
		if !area.Contains(q) {
			flush()
			continue
		}
		cur = append(cur, q)
	}
	flush()
	return runs
}
