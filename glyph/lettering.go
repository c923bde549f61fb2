package glyph

import (
	"log/slog"
	"strings"

	"github.com/gogpu/lineart"
	"github.com/gogpu/lineart/pathsample"
	"github.com/gogpu/lineart/rng"
)

// LetteringConfig configures Lettering.
type LetteringConfig struct {
	Seed string
	Page lineart.Page

	// Text may span several lines separated by '\n'.
	Text string

	// Origin is the baseline start of the first line. The zero value
	// places text at the top-left of the drawable area.
	Origin lineart.Point
	// Size is the em size in page units.
	Size float64
	// LineHeight is the baseline distance as a multiple of Size.
	LineHeight float64
	// Jitter shifts each glyph by up to ±Jitter page units on both axes.
	Jitter float64

	// Budget is the sampling budget per glyph.
	Budget int
}

// DefaultLetteringConfig returns single-line lettering at 24 units.
func DefaultLetteringConfig() LetteringConfig {
	return LetteringConfig{
		Seed:       "lettering",
		Page:       lineart.Page{Width: 200, Height: 200, Margin: 10},
		Text:       "Hello",
		Size:       24,
		LineHeight: 1.25,
		Budget:     160,
	}
}

// Validate reports the first field outside its domain.
func (c LetteringConfig) Validate() error {
	if err := c.Page.Validate(); err != nil {
		return err
	}
	if !c.Origin.IsFinite() {
		return &lineart.ParamError{Field: "origin", Value: c.Origin.X + c.Origin.Y, Reason: "is not finite"}
	}
	if err := lineart.CheckPositive("size", c.Size); err != nil {
		return err
	}
	if err := lineart.CheckNonNegative("lineHeight", c.LineHeight); err != nil {
		return err
	}
	return lineart.CheckNonNegative("jitter", c.Jitter)
}

// Lettering draws cfg.Text in Go Regular.
func Lettering(cfg LetteringConfig, opts ...lineart.Option) (lineart.PolylineSet, error) {
	f, err := GoRegular()
	if err != nil {
		return nil, err
	}
	return f.Lettering(pathsample.NewSampler(), cfg, opts...)
}

// Lettering draws cfg.Text in f using s for sampling. Repeated glyphs are
// sampled once and translated into place. Nothing is clipped to the page.
func (f *Font) Lettering(s *pathsample.Sampler, cfg LetteringConfig, opts ...lineart.Option) (lineart.PolylineSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := lineart.ResolveOptions(opts...)
	eng := rng.New(cfg.Seed)

	origin := cfg.Origin
	if origin == (lineart.Point{}) {
		area := cfg.Page.Drawable()
		origin = lineart.Pt(area.Min.X, area.Min.Y+cfg.Size)
	}

	lines := strings.Split(cfg.Text, "\n")
	shaped := make([][]Positioned, len(lines))
	total := 0
	for i, line := range lines {
		shaped[i] = f.Shape(line, cfg.Size)
		total += len(shaped[i])
	}
	tick := lineart.NewTicker(o, total)

	descs := make(map[GlyphID]string)
	var out lineart.PolylineSet
	for i, line := range shaped {
		baseline := origin.Y + float64(i)*cfg.LineHeight*cfg.Size
		for _, g := range line {
			tick.Tick()
			dx := eng.Range(-1, 1) * cfg.Jitter
			dy := eng.Range(-1, 1) * cfg.Jitter

			desc, ok := descs[g.ID]
			if !ok {
				d, err := f.Description(g.ID, cfg.Size)
				if err != nil {
					lineart.Logger().Warn("glyph: skipping glyph", slog.Int("id", int(g.ID)), slog.String("err", err.Error()))
				}
				desc = d
				descs[g.ID] = desc
			}
			if desc == "" {
				continue
			}
			m := lineart.Translate(origin.X+g.X+dx, baseline+g.Y+dy)
			out = append(out, s.SampleMulti(desc, cfg.Budget).Transform(m)...)
		}
	}
	tick.Finish()
	return out, nil
}
