package estimation

// Calculator encapsulates one specific term of a retrieval cycle (e.g. "Lifting", "Turntable Rotation").
type Calculator interface {
	// Name returns the human-readable name of this calculator, used to label its Component.
	Name() string
	// Keys returns the list of Param keys this calculator depends on.
	Keys() []string
	// Calculate runs the estimation using the provided params and returns an Estimation or an error.
	Calculate(params map[string]Param) (Estimation, error)
}

// Param represents an input for a Calculator
type Param struct {
	Key   string      // Unique identifier (e.g., "lifting_speed_m_per_min")
	Value interface{} // The actual value (e.g., 60.0, 25)
}

// Estimation is the best and worst case contribution of one term, in seconds.
type Estimation struct {
	Min    float64
	Max    float64
	Reason string
}

// Component is the outcome of one registered Calculator.
type Component struct {
	Name string
	Estimation
	Err error
}
