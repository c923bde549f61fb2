package lineart

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParam is the sentinel wrapped by every ParamError.
var ErrInvalidParam = errors.New("lineart: invalid parameter")

// ParamError reports a parameter record field that is not finite or lies
// outside its documented domain.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("lineart: parameter %s=%v %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidParam so callers can use errors.Is.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParam
}

// CheckFinite returns a ParamError if v is NaN or infinite.
func CheckFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParamError{Field: field, Value: v, Reason: "is not finite"}
	}
	return nil
}

// CheckPositive returns a ParamError unless v is finite and > 0.
func CheckPositive(field string, v float64) error {
	if err := CheckFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return &ParamError{Field: field, Value: v, Reason: "must be positive"}
	}
	return nil
}

// CheckNonNegative returns a ParamError unless v is finite and >= 0.
func CheckNonNegative(field string, v float64) error {
	if err := CheckFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return &ParamError{Field: field, Value: v, Reason: "must not be negative"}
	}
	return nil
}

// CheckRange returns a ParamError unless v is finite and within [lo, hi].
func CheckRange(field string, v, lo, hi float64) error {
	if err := CheckFinite(field, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return &ParamError{Field: field, Value: v, Reason: fmt.Sprintf("must be within [%v, %v]", lo, hi)}
	}
	return nil
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AtLeastEpsilon replaces magnitudes below Epsilon with Epsilon, keeping
// the sign of v. NaN becomes Epsilon.
func AtLeastEpsilon(v float64) float64 {
	if math.IsNaN(v) {
		return Epsilon
	}
	if math.Abs(v) < Epsilon {
		if v < 0 {
			return -Epsilon
		}
		return Epsilon
	}
	return v
}
