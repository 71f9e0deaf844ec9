package calculators

import (
	"fmt"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation"
)

// Compile-time assertion that BaseOverhead implements the Calculator interface.
var _ estimation.Calculator = (*BaseOverhead)(nil)

// BaseOverhead sums the fixed per-cycle times that do not depend on travel distance.
// The same value is contributed to the best and the worst case.
type BaseOverhead struct{}

// NewBaseOverhead creates a BaseOverhead calculator.
func NewBaseOverhead() *BaseOverhead {
	return &BaseOverhead{}
}

// Name returns the human-readable name of this calculator.
func (c *BaseOverhead) Name() string { return NameBaseOverhead }

// Keys returns the list of parameter keys required by this calculator.
func (c *BaseOverhead) Keys() []string {
	return []string{ParamDoorTime, ParamProcessingTime, ParamAdditionalTime, ParamLiftingAddTime, ParamTraversingAddTime}
}

// Calculate adds the overheads in key order.
func (c *BaseOverhead) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	total := 0.0
	for _, key := range c.Keys() {
		v, err := requireFloat(params, key)
		if err != nil {
			return estimation.Estimation{}, err
		}
		total += v
	}

	return estimation.Estimation{
		Min:    total,
		Max:    total,
		Reason: fmt.Sprintf("door, processing, additional, lifting and traversing overheads = %.1f s", total),
	}, nil
}
