package icon

import (
	"math"

	"github.com/gogpu/lineart"
	"github.com/gogpu/lineart/pathsample"
	"github.com/gogpu/lineart/rng"
)

// ScatterConfig configures Scatter.
type ScatterConfig struct {
	Seed string
	Page lineart.Page

	// Cols and Rows set the placement lattice.
	Cols, Rows int

	// Size is the icon edge length in page units.
	Size float64
	// SizeJitter varies the size by up to ±SizeJitter of Size.
	SizeJitter float64
	// Jitter displaces icons by up to Jitter/2 of a lattice cell.
	Jitter float64
	// MaxRotation is the largest random rotation in degrees.
	MaxRotation float64
	// Density is the probability that a lattice cell receives an icon.
	Density float64

	// Icons selects built-in icons by index; empty means all. Indices are
	// clamped to the valid range.
	Icons []int

	// Budget is the sampling budget per icon.
	Budget int
}

// DefaultScatterConfig returns a sparse scatter of all built-in icons.
func DefaultScatterConfig() ScatterConfig {
	return ScatterConfig{
		Seed:        "icons",
		Page:        lineart.Page{Width: 200, Height: 200, Margin: 10},
		Cols:        8,
		Rows:        8,
		Size:        14,
		SizeJitter:  0.25,
		Jitter:      0.5,
		MaxRotation: 30,
		Density:     0.8,
		Budget:      120,
	}
}

// Validate reports the first field outside its domain.
func (c ScatterConfig) Validate() error {
	if err := c.Page.Validate(); err != nil {
		return err
	}
	if c.Cols < 1 || c.Cols > 1024 {
		return &lineart.ParamError{Field: "cols", Value: float64(c.Cols), Reason: "must be within [1, 1024]"}
	}
	if c.Rows < 1 || c.Rows > 1024 {
		return &lineart.ParamError{Field: "rows", Value: float64(c.Rows), Reason: "must be within [1, 1024]"}
	}
	if err := lineart.CheckPositive("size", c.Size); err != nil {
		return err
	}
	if err := lineart.CheckRange("sizeJitter", c.SizeJitter, 0, 1); err != nil {
		return err
	}
	if err := lineart.CheckRange("jitter", c.Jitter, 0, 1); err != nil {
		return err
	}
	if err := lineart.CheckFinite("maxRotation", c.MaxRotation); err != nil {
		return err
	}
	return lineart.CheckRange("density", c.Density, 0, 1)
}

// Scatter places icons on a jittered lattice. Every placement draws, in
// order: the density test, the icon choice, two jitter offsets, the size
// factor and the rotation. Icons that would cross the drawable boundary
// are skipped.
func Scatter(cfg ScatterConfig, opts ...lineart.Option) (lineart.PolylineSet, error) {
	return ScatterWith(pathsample.NewSampler(), cfg, opts...)
}

// ScatterWith is Scatter with a caller-provided sampler, so repeated calls
// can share its cache.
func ScatterWith(s *pathsample.Sampler, cfg ScatterConfig, opts ...lineart.Option) (lineart.PolylineSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := lineart.ResolveOptions(opts...)
	eng := rng.New(cfg.Seed)

	choices := cfg.Icons
	if len(choices) == 0 {
		choices = make([]int, Count())
		for i := range choices {
			choices[i] = i
		}
	}

	area := cfg.Page.Drawable()
	cellW := area.Width() / float64(cfg.Cols)
	cellH := area.Height() / float64(cfg.Rows)
	tick := lineart.NewTicker(o, cfg.Cols*cfg.Rows)

	var out lineart.PolylineSet
	for j := range cfg.Rows {
		for i := range cfg.Cols {
			tick.Tick()
			place := eng.Rand() < cfg.Density
			_, desc := Path(rng.Pick(eng, choices))
			center := lineart.Pt(
				area.Min.X+(float64(i)+0.5+(eng.Rand()-0.5)*cfg.Jitter)*cellW,
				area.Min.Y+(float64(j)+0.5+(eng.Rand()-0.5)*cfg.Jitter)*cellH,
			)
			size := cfg.Size * (1 + eng.Range(-1, 1)*cfg.SizeJitter)
			angle := eng.Range(-1, 1) * cfg.MaxRotation * math.Pi / 180
			if !place {
				continue
			}

			m := Placement(center, size, angle)
			shape := s.SampleMulti(desc, cfg.Budget).Transform(m)
			if !inside(shape, area) {
				continue
			}
			out = append(out, shape...)
		}
	}
	tick.Finish()
	return out, nil
}

// Placement maps the icon box onto a size x size square centered at center
// and rotated by angle radians.
func Placement(center lineart.Point, size, angle float64) lineart.Matrix {
	s := size / Box
	return lineart.Translate(center.X, center.Y).
		Multiply(lineart.Rotate(angle)).
		Multiply(lineart.Scale(s, s)).
		Multiply(lineart.Translate(-Box/2, -Box/2))
}

func inside(set lineart.PolylineSet, area lineart.Rect) bool {
	for _, pl := range set {
		for _, p := range pl {
			if !area.Contains(p) {
				return false
			}
		}
	}
	return len(set) > 0
}
