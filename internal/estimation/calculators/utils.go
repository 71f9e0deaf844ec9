package calculators

import (
	"fmt"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation"
)

func getFloat(p estimation.Param) (float64, error) {
	switch v := p.Value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0.0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

// requireFloat extracts a mandatory numeric param.
func requireFloat(params map[string]estimation.Param, key string) (float64, error) {
	p, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	return getFloat(p)
}

// requireSpeed extracts a mandatory param that is used as a divisor.
func requireSpeed(params map[string]estimation.Param, key string) (float64, error) {
	v, err := requireFloat(params, key)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, fmt.Errorf("%s must be non-zero", key)
	}
	return v, nil
}

// perSecond converts a m/min (or rev/min) rate to a per-second rate.
func perSecond(perMinute float64) float64 {
	return perMinute / 60.0
}
