package pathsample

import (
	"log/slog"
	"math"

	"github.com/gogpu/lineart"
	"github.com/gogpu/lineart/cache"
)

// Budget limits for a single sub-path.
const (
	MinBudget = 2
	MaxBudget = 800
)

// DefaultCacheLimit is the capacity of the cache a Sampler creates for
// itself.
const DefaultCacheLimit = 512

// dedupeEpsilon is the distance below which consecutive output points are
// merged.
const dedupeEpsilon = 1e-9

// CacheKey identifies one SampleSingle result.
type CacheKey struct {
	Budget int
	Desc   string
}

// HashKey hashes a CacheKey for use with cache.Sharded.
func HashKey(k CacheKey) uint64 {
	return cache.StringHasher(k.Desc) ^ (uint64(k.Budget) * 0x9e3779b97f4a7c15)
}

// Sampler turns path descriptions into polylines. It caches results by
// (budget, description) because the same descriptions recur across
// repeated placements of an icon or glyph.
//
// A Sampler is safe for concurrent use when its cache is (both cache
// implementations are).
type Sampler struct {
	cache cache.Store[CacheKey, lineart.Polyline]
	limit int
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithCache makes the sampler use c instead of a private cache. Share one
// cache.Sharded between samplers used by concurrent jobs.
func WithCache(c cache.Store[CacheKey, lineart.Polyline]) Option {
	return func(s *Sampler) {
		s.cache = c
	}
}

// WithCacheLimit sets the capacity of the private cache.
func WithCacheLimit(n int) Option {
	return func(s *Sampler) {
		s.limit = n
	}
}

// NewSampler creates a sampler with its own cache unless WithCache is given.
func NewSampler(opts ...Option) *Sampler {
	s := &Sampler{limit: DefaultCacheLimit}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = cache.NewLRU[CacheKey, lineart.Polyline](s.limit)
	}
	return s
}

// SampleSingle samples one sub-path description into a polyline of about
// budget points. The budget is clamped to [MinBudget, MaxBudget].
//
// Points are distributed over the segments in proportion to their
// estimated length, at least one step per segment. Malformed descriptions
// degrade to whatever could be parsed, and to an empty polyline when fewer
// than two distinct points remain.
//
// The returned polyline is a copy and may be modified freely.
func (s *Sampler) SampleSingle(desc string, budget int) lineart.Polyline {
	budget = lineart.ClampInt(budget, MinBudget, MaxBudget)
	key := CacheKey{Budget: budget, Desc: desc}
	pl := s.cache.GetOrCreate(key, func() lineart.Polyline {
		segs, err := Parse(desc)
		if err != nil {
			lineart.Logger().Debug("pathsample: degraded parse",
				slog.String("desc", truncate(desc, 64)),
				slog.Int("segments", len(segs)),
				slog.String("err", err.Error()))
		}
		return Sample(segs, budget)
	})
	return pl.Clone()
}

// SampleMulti samples every sub-path of desc and returns one polyline per
// sub-path. The budget is shared between sub-paths in proportion to their
// estimated lengths, with at least MinBudget points each.
func (s *Sampler) SampleMulti(desc string, budget int) lineart.PolylineSet {
	subs := SplitSubpaths(desc)
	if len(subs) == 0 {
		return nil
	}

	// Estimate relative lengths from a coarse pass.
	coarse := max(8, budget/4)
	lengths := make([]float64, len(subs))
	var total float64
	for i, sub := range subs {
		lengths[i] = s.SampleSingle(sub, coarse).Length()
		total += lengths[i]
	}

	var set lineart.PolylineSet
	for i, sub := range subs {
		b := budget / len(subs)
		if total > 0 {
			b = int(math.Round(float64(budget) * lengths[i] / total))
		}
		pl := s.SampleSingle(sub, max(MinBudget, b))
		if len(pl) >= 2 {
			set = append(set, pl)
		}
	}
	return set
}

// Stats reports the statistics of the sampler cache when it exposes them.
func (s *Sampler) Stats() (cache.Stats, bool) {
	st, ok := s.cache.(interface{ Stats() cache.Stats })
	if !ok {
		return cache.Stats{}, false
	}
	return st.Stats(), true
}

// Sample flattens already parsed segments into a polyline of about budget
// points without caching. Budget is clamped to [MinBudget, MaxBudget].
// The segments must start with a MoveTo; otherwise Sample returns nil.
func Sample(segments []Segment, budget int) lineart.Polyline {
	if len(segments) == 0 {
		return nil
	}
	first, ok := segments[0].(MoveTo)
	if !ok {
		return nil
	}
	budget = lineart.ClampInt(budget, MinBudget, MaxBudget)

	lengths := make([]float64, len(segments))
	var total float64
	cur := first.To
	for i, seg := range segments[1:] {
		lengths[i+1] = estimateLength(cur, seg)
		total += lengths[i+1]
		cur = seg.End()
	}

	stepsBudget := float64(budget - 1)
	pl := make(lineart.Polyline, 0, budget+len(segments))
	pl = append(pl, first.To)
	cur = first.To
	for i, seg := range segments[1:] {
		steps := 1
		if total > 0 {
			steps = max(1, int(math.Round(stepsBudget*lengths[i+1]/total)))
		}
		pl = flattenSegment(pl, cur, seg, steps)
		cur = seg.End()
	}

	pl = dedupe(pl, dedupeEpsilon)
	if len(pl) < 2 {
		return nil
	}
	return pl
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
