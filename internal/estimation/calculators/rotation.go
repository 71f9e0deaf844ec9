package calculators

import (
	"fmt"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation"
)

// DefaultRotationDegrees is the turntable rotation assumed for every retrieval.
const DefaultRotationDegrees = 180.0

// Compile-time assertion that Rotation implements the Calculator interface.
var _ estimation.Calculator = (*Rotation)(nil)

// Rotation estimates the turntable time for a fixed rotation angle.
type Rotation struct {
	degrees float64
}

// RotationOption is a functional option for configuring a Rotation calculator.
type RotationOption func(*Rotation)

// WithDegrees sets the rotation angle. Non-positive values are ignored.
func WithDegrees(degrees float64) RotationOption {
	return func(r *Rotation) {
		if degrees > 0 {
			r.degrees = degrees
		}
	}
}

// NewRotation creates a Rotation calculator for a half turn unless overridden.
func NewRotation(opts ...RotationOption) *Rotation {
	res := Rotation{
		degrees: DefaultRotationDegrees,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Name returns the human-readable name of this calculator.
func (c *Rotation) Name() string { return NameRotation }

// Keys returns the list of parameter keys required by this calculator.
func (c *Rotation) Keys() []string {
	return []string{ParamTurnTableSpeed}
}

// Calculate returns the time for one rotation of the configured angle; best and worst case are equal.
func (c *Rotation) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	rpm, err := requireSpeed(params, ParamTurnTableSpeed)
	if err != nil {
		return estimation.Estimation{}, err
	}

	t := (c.degrees / 360.0) / perSecond(rpm)

	return estimation.Estimation{
		Min:    t,
		Max:    t,
		Reason: fmt.Sprintf("%.0f° @ %.2f rpm", c.degrees, rpm),
	}, nil
}
