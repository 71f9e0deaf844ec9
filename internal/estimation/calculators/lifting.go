package calculators

import (
	"fmt"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation"
)

// DefaultMinLiftRatio is the share of the full lift assumed by the best case of the tiered model.
const DefaultMinLiftRatio = 0.1

// Compile-time assertions that both lifting calculators implement the Calculator interface.
var (
	_ estimation.Calculator = (*TieredLifting)(nil)
	_ estimation.Calculator = (*LinearLifting)(nil)
)

// TieredLifting estimates lift time from the summed height of every level tier.
// The worst case travels the full height; the best case only a fixed share of it.
type TieredLifting struct {
	minLiftRatio float64
}

// TieredLiftingOption is a functional option for configuring a TieredLifting calculator.
type TieredLiftingOption func(*TieredLifting)

// WithMinLiftRatio sets the share of the full lift used for the best case.
// Values outside [0, 1] are ignored and the default is kept.
func WithMinLiftRatio(ratio float64) TieredLiftingOption {
	return func(l *TieredLifting) {
		if ratio >= 0 && ratio <= 1 {
			l.minLiftRatio = ratio
		}
	}
}

// NewTieredLifting creates a TieredLifting calculator with default settings.
func NewTieredLifting(opts ...TieredLiftingOption) *TieredLifting {
	res := TieredLifting{
		minLiftRatio: DefaultMinLiftRatio,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Name returns the human-readable name of this calculator.
func (c *TieredLifting) Name() string { return NameLifting }

// Keys returns the list of parameter keys required by this calculator.
func (c *TieredLifting) Keys() []string {
	return []string{ParamTotalHeight, ParamLiftingSpeed}
}

// Calculate returns the full lift time as the worst case and its configured share as the best case.
func (c *TieredLifting) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	totalMM, err := requireFloat(params, ParamTotalHeight)
	if err != nil {
		return estimation.Estimation{}, err
	}
	speed, err := requireSpeed(params, ParamLiftingSpeed)
	if err != nil {
		return estimation.Estimation{}, err
	}

	lift := (totalMM / 1000.0) / perSecond(speed)

	return estimation.Estimation{
		Min:    lift * c.minLiftRatio,
		Max:    lift,
		Reason: fmt.Sprintf("%.1f m @ %.1f m/min, best case %.0f%% of full lift", totalMM/1000.0, speed, c.minLiftRatio*100),
	}, nil
}

// LinearLifting estimates lift time from the lowest and highest reachable level.
type LinearLifting struct{}

// NewLinearLifting creates a LinearLifting calculator.
func NewLinearLifting() *LinearLifting {
	return &LinearLifting{}
}

// Name returns the human-readable name of this calculator.
func (c *LinearLifting) Name() string { return NameLifting }

// Keys returns the list of parameter keys required by this calculator.
func (c *LinearLifting) Keys() []string {
	return []string{ParamMinLevel, ParamMaxLevel, ParamLiftingSpeed}
}

// Calculate returns the lift time to the lowest level as the best case and to the top level as the worst case.
func (c *LinearLifting) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	minLevel, err := requireFloat(params, ParamMinLevel)
	if err != nil {
		return estimation.Estimation{}, err
	}
	maxLevel, err := requireFloat(params, ParamMaxLevel)
	if err != nil {
		return estimation.Estimation{}, err
	}
	speed, err := requireSpeed(params, ParamLiftingSpeed)
	if err != nil {
		return estimation.Estimation{}, err
	}

	speedMs := perSecond(speed)

	return estimation.Estimation{
		Min:    minLevel / speedMs,
		Max:    maxLevel / speedMs,
		Reason: fmt.Sprintf("%.2f m to %.2f m @ %.1f m/min", minLevel, maxLevel, speed),
	}, nil
}
