package lineart

import "math"

// Epsilon is the smallest positive magnitude used in place of degenerate
// parameters (zero spacing, zero-length vectors).
const Epsilon = 1e-9

// Polyline is an ordered sequence of points joined by straight segments.
// It is open unless the first point is repeated at the end.
type Polyline []Point

// Closed reports whether the last point repeats the first one within tol.
func (pl Polyline) Closed(tol float64) bool {
	if len(pl) < 3 {
		return false
	}
	return pl[0].Distance(pl[len(pl)-1]) <= tol
}

// Length returns the total arc length of the polyline.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += pl[i-1].Distance(pl[i])
	}
	return total
}

// Bounds returns the bounding rectangle of the polyline.
// An empty polyline yields the zero Rect.
func (pl Polyline) Bounds() Rect {
	if len(pl) == 0 {
		return Rect{}
	}
	r := Rect{Min: pl[0], Max: pl[0]}
	for _, p := range pl[1:] {
		r = r.Extend(p)
	}
	return r
}

// Clone returns a copy that shares no memory with pl.
func (pl Polyline) Clone() Polyline {
	if pl == nil {
		return nil
	}
	out := make(Polyline, len(pl))
	copy(out, pl)
	return out
}

// Reverse returns a reversed copy of the polyline.
func (pl Polyline) Reverse() Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}

// PolylineSet is an unordered collection of polylines and the output type
// of every generator. Generators nevertheless emit it in a deterministic order.
type PolylineSet []Polyline

// PointCount returns the total number of points in the set.
func (s PolylineSet) PointCount() int {
	n := 0
	for _, pl := range s {
		n += len(pl)
	}
	return n
}

// Bounds returns the bounding rectangle of all points in the set.
func (s PolylineSet) Bounds() Rect {
	var r Rect
	first := true
	for _, pl := range s {
		if len(pl) == 0 {
			continue
		}
		b := pl.Bounds()
		if first {
			r = b
			first = false
			continue
		}
		r = r.Union(b)
	}
	return r
}

// Clone returns a deep copy of the set.
func (s PolylineSet) Clone() PolylineSet {
	if s == nil {
		return nil
	}
	out := make(PolylineSet, len(s))
	for i, pl := range s {
		out[i] = pl.Clone()
	}
	return out
}

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
// The boundary counts as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Page describes the drawing surface: its size and a uniform margin.
type Page struct {
	Width, Height float64
	Margin        float64
}

// Drawable returns the inclusive rectangle left after removing the margin.
func (pg Page) Drawable() Rect {
	return Rect{
		Min: Point{X: pg.Margin, Y: pg.Margin},
		Max: Point{X: pg.Width - pg.Margin, Y: pg.Height - pg.Margin},
	}
}

// Validate checks that the page has a non-empty drawable area.
func (pg Page) Validate() error {
	if err := CheckPositive("width", pg.Width); err != nil {
		return err
	}
	if err := CheckPositive("height", pg.Height); err != nil {
		return err
	}
	if err := CheckNonNegative("margin", pg.Margin); err != nil {
		return err
	}
	if 2*pg.Margin >= pg.Width || 2*pg.Margin >= pg.Height {
		return &ParamError{Field: "margin", Value: pg.Margin, Reason: "leaves no drawable area"}
	}
	return nil
}
