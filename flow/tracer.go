package flow

import (
	"log/slog"

	"github.com/gogpu/lineart"
	"github.com/gogpu/lineart/rng"
)

// Trace fills the drawable area of params.Page with trajectories of field.
//
// Seeds are visited row-major on a jittered SeedsX x SeedsY lattice. A seed
// outside the drawable area or inside occupied space is discarded. From
// each surviving seed the tracer integrates forward and, unless FollowOnly
// is set, backward, each half for at most MaxSteps steps, stopping when the
// next point would leave the area or enter occupied space. The trajectory
// is committed only if it has more than MinPoints points, and always at
// least two; committing marks every point in the occupancy grid.
//
// Progress is reported every Options.ProgressEvery seeds and once more on
// completion. The engine supplies two draws per seed for jitter. Output is fully
// determined by the engine state, the field and params.
func Trace(field Field, eng *rng.Engine, params Params, opts ...lineart.Option) (lineart.PolylineSet, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	o := lineart.ResolveOptions(opts...)

	t := newTracer(field, params)
	bounds := t.bounds
	cellW := bounds.Width() / float64(params.SeedsX)
	cellH := bounds.Height() / float64(params.SeedsY)

	ticker := lineart.NewTicker(o, params.SeedsX*params.SeedsY)
	var out lineart.PolylineSet
	discarded := 0
	for j := 0; j < params.SeedsY; j++ {
		for i := 0; i < params.SeedsX; i++ {
			seed := lineart.Pt(
				bounds.Min.X+(float64(i)+0.5)*cellW,
				bounds.Min.Y+(float64(j)+0.5)*cellH,
			)
			seed.X += (eng.Rand() - 0.5) * params.Jitter * cellW
			seed.Y += (eng.Rand() - 0.5) * params.Jitter * cellH

			pl := t.trace(seed)
			ticker.Tick()
			if pl == nil {
				discarded++
				continue
			}
			t.grid.MarkPolyline(pl)
			out = append(out, pl)
		}
	}
	ticker.Finish()

	lineart.Logger().Debug("flow: trace done",
		slog.Int("committed", len(out)),
		slog.Int("discarded", discarded),
		slog.Float64("coverage", t.grid.Coverage()),
	)
	return out, nil
}

type tracer struct {
	field      Field
	bounds     lineart.Rect
	grid       *OccupancyGrid
	step       float64
	maxSteps   int
	followOnly bool
	minPoints  int
}

func newTracer(field Field, params Params) *tracer {
	bounds := params.Page.Drawable()
	return &tracer{
		field:      field,
		bounds:     bounds,
		grid:       NewOccupancyGrid(bounds, lineart.AtLeastEpsilon(params.MinSpacing)),
		step:       lineart.AtLeastEpsilon(params.StepLen),
		maxSteps:   params.MaxSteps,
		followOnly: params.FollowOnly,
		minPoints:  max(1, params.MinPoints),
	}
}

// trace returns the trajectory through seed, or nil when the seed is
// unusable or the result too short.
func (t *tracer) trace(seed lineart.Point) lineart.Polyline {
	if !t.bounds.Contains(seed) || t.grid.Occupied(seed) {
		return nil
	}

	var pl lineart.Polyline
	if !t.followOnly {
		back := t.integrate(seed, -1)
		for i := len(back) - 1; i >= 0; i-- {
			pl = append(pl, back[i])
		}
	}
	pl = append(pl, seed)
	pl = append(pl, t.integrate(seed, 1)...)

	if len(pl) <= t.minPoints {
		return nil
	}
	return pl
}

// integrate walks from p along sign*field, excluding p itself.
func (t *tracer) integrate(p lineart.Point, sign float64) []lineart.Point {
	var pts []lineart.Point
	for range t.maxSteps {
		dir := t.field.At(p)
		if !dir.IsFinite() {
			break
		}
		next := p.Add(dir.Normalize().Mul(t.step * sign))
		if !t.bounds.Contains(next) || t.grid.Occupied(next) {
			break
		}
		pts = append(pts, next)
		p = next
	}
	return pts
}
