package estimation

import "math"

// JSONFloat returns a pointer to f, or nil when f is NaN or infinite.
// encoding/json rejects non-finite numbers, so they are written as null.
func JSONFloat(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
