package pathsample

import "github.com/gogpu/lineart"

// Segment is one resolved path command with absolute coordinates.
// The set of implementations is closed: MoveTo, LineTo, CubicTo, QuadTo,
// ArcTo and Close.
type Segment interface {
	// End returns the current point after the segment.
	End() lineart.Point
	isSegment()
}

// MoveTo starts a new sub-path without drawing.
type MoveTo struct {
	To lineart.Point
}

// LineTo draws a straight line. H and V commands resolve to LineTo.
type LineTo struct {
	To lineart.Point
}

// CubicTo draws a cubic Bézier curve. S commands resolve to CubicTo with
// the reflected first control point.
type CubicTo struct {
	C1, C2 lineart.Point
	To     lineart.Point
}

// QuadTo draws a quadratic Bézier curve. T commands resolve to QuadTo with
// the reflected control point.
type QuadTo struct {
	C  lineart.Point
	To lineart.Point
}

// ArcTo draws an elliptical arc in SVG endpoint parameterization.
// Rotation is in degrees.
type ArcTo struct {
	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
	To       lineart.Point
}

// Close draws a straight line back to the sub-path start, stored in To.
type Close struct {
	To lineart.Point
}

func (s MoveTo) End() lineart.Point  { return s.To }
func (s LineTo) End() lineart.Point  { return s.To }
func (s CubicTo) End() lineart.Point { return s.To }
func (s QuadTo) End() lineart.Point  { return s.To }
func (s ArcTo) End() lineart.Point   { return s.To }
func (s Close) End() lineart.Point   { return s.To }

func (MoveTo) isSegment()  {}
func (LineTo) isSegment()  {}
func (CubicTo) isSegment() {}
func (QuadTo) isSegment()  {}
func (ArcTo) isSegment()   {}
func (Close) isSegment()   {}
