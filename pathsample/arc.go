package pathsample

import (
	"math"

	"github.com/gogpu/lineart"
)

// centerArc is an elliptical arc in center parameterization.
type centerArc struct {
	center         lineart.Point
	rx, ry         float64
	sinPhi, cosPhi float64
	theta1, dTheta float64
	// line is set when the arc degenerates to a straight segment
	// (a zero radius or coincident endpoints).
	line bool
}

// toCenter converts an SVG endpoint arc starting at from into center form
// following the SVG implementation notes (F.6.5, F.6.6): radii too small to
// span the chord are scaled up uniformly, and the flags select one of the
// two candidate centers and the sweep direction.
func toCenter(from lineart.Point, a ArcTo) centerArc {
	rx, ry := math.Abs(a.RX), math.Abs(a.RY)
	if rx < lineart.Epsilon || ry < lineart.Epsilon || from.Distance(a.To) < lineart.Epsilon {
		return centerArc{line: true}
	}

	sinPhi, cosPhi := math.Sincos(a.Rotation * math.Pi / 180)

	// Step 1: endpoint midpoint in the rotated frame.
	dx := (from.X - a.To.X) / 2
	dy := (from.Y - a.To.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Radius scale-up when the ellipse cannot reach both endpoints.
	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: center in the rotated frame.
	rx2, ry2 := rx*rx, ry*ry
	den := rx2*y1*y1 + ry2*x1*x1
	num := rx2*ry2 - den
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	// Step 3: back to page coordinates.
	center := lineart.Pt(
		cosPhi*cx1-sinPhi*cy1+(from.X+a.To.X)/2,
		sinPhi*cx1+cosPhi*cy1+(from.Y+a.To.Y)/2,
	)

	// Step 4: start angle and sweep.
	u := lineart.Pt((x1-cx1)/rx, (y1-cy1)/ry)
	v := lineart.Pt((-x1-cx1)/rx, (-y1-cy1)/ry)
	theta1 := vectorAngle(lineart.Pt(1, 0), u)
	dTheta := math.Mod(vectorAngle(u, v), 2*math.Pi)
	if !a.Sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if a.Sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	return centerArc{
		center: center,
		rx:     rx,
		ry:     ry,
		sinPhi: sinPhi,
		cosPhi: cosPhi,
		theta1: theta1,
		dTheta: dTheta,
	}
}

// vectorAngle returns the signed angle from u to v.
func vectorAngle(u, v lineart.Point) float64 {
	return math.Atan2(u.Cross(v), u.Dot(v))
}

// at evaluates the arc at parameter t in [0, 1].
func (c centerArc) at(t float64) lineart.Point {
	sin, cos := math.Sincos(c.theta1 + t*c.dTheta)
	return lineart.Pt(
		c.center.X+c.rx*cos*c.cosPhi-c.ry*sin*c.sinPhi,
		c.center.Y+c.rx*cos*c.sinPhi+c.ry*sin*c.cosPhi,
	)
}

// length is the analytic estimate mean radius times swept angle.
func (c centerArc) length() float64 {
	return (c.rx + c.ry) / 2 * math.Abs(c.dTheta)
}
