package pathsample

import "github.com/gogpu/lineart"

// Chord subdivisions used to estimate Bézier arc lengths.
const (
	cubicSubdivisions = 8
	quadSubdivisions  = 6
)

func cubicAt(p0, p1, p2, p3 lineart.Point, t float64) lineart.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return lineart.Pt(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
	)
}

func quadAt(p0, p1, p2 lineart.Point, t float64) lineart.Point {
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return lineart.Pt(
		a*p0.X+b*p1.X+c*p2.X,
		a*p0.Y+b*p1.Y+c*p2.Y,
	)
}

// chordLength approximates the arc length of f over [0, 1] with n chords.
func chordLength(f func(t float64) lineart.Point, n int) float64 {
	var total float64
	prev := f(0)
	for i := 1; i <= n; i++ {
		p := f(float64(i) / float64(n))
		total += prev.Distance(p)
		prev = p
	}
	return total
}

// curveFunc returns the parametric form of seg starting at from, or nil for
// segments that draw straight lines (or nothing).
func curveFunc(from lineart.Point, seg Segment) func(t float64) lineart.Point {
	switch s := seg.(type) {
	case CubicTo:
		return func(t float64) lineart.Point { return cubicAt(from, s.C1, s.C2, s.To, t) }
	case QuadTo:
		return func(t float64) lineart.Point { return quadAt(from, s.C, s.To, t) }
	case ArcTo:
		arc := toCenter(from, s)
		if arc.line {
			return nil
		}
		return arc.at
	}
	return nil
}

// estimateLength returns the arc-length estimate of seg starting at from:
// exact for straight segments, chord sums for Béziers and mean radius times
// swept angle for arcs. Moves have no length.
func estimateLength(from lineart.Point, seg Segment) float64 {
	switch s := seg.(type) {
	case MoveTo:
		return 0
	case LineTo:
		return from.Distance(s.To)
	case Close:
		return from.Distance(s.To)
	case CubicTo:
		return chordLength(curveFunc(from, s), cubicSubdivisions)
	case QuadTo:
		return chordLength(curveFunc(from, s), quadSubdivisions)
	case ArcTo:
		arc := toCenter(from, s)
		if arc.line {
			return from.Distance(s.To)
		}
		return arc.length()
	}
	return 0
}

// flattenSegment appends steps points along seg (excluding its start point)
// to dst. The final point is always the exact segment end.
func flattenSegment(dst lineart.Polyline, from lineart.Point, seg Segment, steps int) lineart.Polyline {
	end := seg.End()
	f := curveFunc(from, seg)
	if f == nil {
		switch seg.(type) {
		case MoveTo:
			return append(dst, end)
		default:
			f = func(t float64) lineart.Point { return from.Lerp(end, t) }
		}
	}
	for i := 1; i < steps; i++ {
		dst = append(dst, f(float64(i)/float64(steps)))
	}
	return append(dst, end)
}

// dedupe drops consecutive points closer than eps, in place.
func dedupe(pl lineart.Polyline, eps float64) lineart.Polyline {
	if len(pl) < 2 {
		return pl
	}
	out := pl[:1]
	for _, p := range pl[1:] {
		if p.Distance(out[len(out)-1]) >= eps {
			out = append(out, p)
		}
	}
	return out
}
