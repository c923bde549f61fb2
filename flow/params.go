package flow

import (
	"fmt"

	"github.com/gogpu/lineart"
)

// DefaultMinPoints is the smallest trajectory length that is rejected.
// A trajectory is committed only with strictly more points.
const DefaultMinPoints = 4

// MaxSeedsPerAxis bounds the seed lattice.
const MaxSeedsPerAxis = 4096

// Params configures one Trace call.
type Params struct {
	Page lineart.Page

	// SeedsX and SeedsY set the seed lattice over the drawable area.
	SeedsX, SeedsY int

	// MinSpacing is the target distance between neighboring trajectories.
	MinSpacing float64

	// StepLen is the integration step along the field.
	StepLen float64

	// MaxSteps limits each half-trace.
	MaxSteps int

	// FollowOnly disables backward integration.
	FollowOnly bool

	// Jitter displaces each seed by up to Jitter/2 of its lattice cell in
	// each axis. 0 places seeds at cell centers.
	Jitter float64

	// MinPoints is the rejection threshold; see DefaultMinPoints. Values
	// below 1 mean 1, so a committed trajectory has at least two points.
	MinPoints int
}

// DefaultParams returns a moderately dense two-way trace on a 200x200 page.
func DefaultParams() Params {
	return Params{
		Page:       lineart.Page{Width: 200, Height: 200, Margin: 10},
		SeedsX:     30,
		SeedsY:     30,
		MinSpacing: 3,
		StepLen:    1,
		MaxSteps:   400,
		Jitter:     0.8,
		MinPoints:  DefaultMinPoints,
	}
}

// Validate reports the first field outside its domain.
func (p Params) Validate() error {
	if err := p.Page.Validate(); err != nil {
		return err
	}
	if p.SeedsX < 1 || p.SeedsX > MaxSeedsPerAxis {
		return &lineart.ParamError{Field: "seedsX", Value: float64(p.SeedsX), Reason: fmt.Sprintf("must be within [1, %d]", MaxSeedsPerAxis)}
	}
	if p.SeedsY < 1 || p.SeedsY > MaxSeedsPerAxis {
		return &lineart.ParamError{Field: "seedsY", Value: float64(p.SeedsY), Reason: fmt.Sprintf("must be within [1, %d]", MaxSeedsPerAxis)}
	}
	if err := lineart.CheckNonNegative("minSpacing", p.MinSpacing); err != nil {
		return err
	}
	if err := lineart.CheckNonNegative("stepLen", p.StepLen); err != nil {
		return err
	}
	if p.MaxSteps < 0 {
		return &lineart.ParamError{Field: "maxSteps", Value: float64(p.MaxSteps), Reason: "must not be negative"}
	}
	if err := lineart.CheckRange("jitter", p.Jitter, 0, 1); err != nil {
		return err
	}
	if p.MinPoints < 0 {
		return &lineart.ParamError{Field: "minPoints", Value: float64(p.MinPoints), Reason: "must not be negative"}
	}
	return nil
}
