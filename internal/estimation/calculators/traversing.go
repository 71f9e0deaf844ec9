package calculators

import (
	"fmt"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation"
)

// Compile-time assertion that Traversing implements the Calculator interface.
var _ estimation.Calculator = (*Traversing)(nil)

// Traversing estimates the horizontal travel time as the mean over two representative distances.
type Traversing struct{}

// NewTraversing creates a Traversing calculator.
func NewTraversing() *Traversing {
	return &Traversing{}
}

// Name returns the human-readable name of this calculator.
func (c *Traversing) Name() string { return NameTraversing }

// Keys returns the list of parameter keys required by this calculator.
func (c *Traversing) Keys() []string {
	return []string{ParamTraversingDistance1, ParamTraversingDistance2, ParamTraversingSpeed}
}

// Calculate averages the two traverse times; best and worst case are equal.
func (c *Traversing) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	d1, err := requireFloat(params, ParamTraversingDistance1)
	if err != nil {
		return estimation.Estimation{}, err
	}
	d2, err := requireFloat(params, ParamTraversingDistance2)
	if err != nil {
		return estimation.Estimation{}, err
	}
	speed, err := requireSpeed(params, ParamTraversingSpeed)
	if err != nil {
		return estimation.Estimation{}, err
	}

	speedMs := perSecond(speed)
	t1 := (d1 / 1000.0) / speedMs
	t2 := (d2 / 1000.0) / speedMs
	avg := (t1 + t2) / 2

	return estimation.Estimation{
		Min:    avg,
		Max:    avg,
		Reason: fmt.Sprintf("mean of %.0f mm and %.0f mm @ %.1f m/min", d1, d2, speed),
	}, nil
}
