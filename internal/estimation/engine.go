package estimation

import "fmt"

// Engine orchestrates Calculator objects and collects their results
type Engine struct {
	calculators []Calculator
}

// NewEngine creates a new Engine with no calculators registered.
func NewEngine() *Engine {
	return &Engine{
		calculators: make([]Calculator, 0),
	}
}

// Register adds a Calculator to participate in the estimation.
// Calculators are executed in the order they are registered.
// Register panics if a calculator with the same Name() is already registered.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Name() == c.Name() {
			panic(fmt.Sprintf("estimation: calculator %q already registered", c.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Run executes all registered calculators against the provided params.
// The returned components follow registration order. A failing calculator
// contributes a zero Estimation and carries its error.
func (e *Engine) Run(inputs []Param) []Component {
	paramMap := make(map[string]Param, len(inputs))
	for _, p := range inputs {
		paramMap[p.Key] = p
	}

	results := make([]Component, 0, len(e.calculators))
	for _, calc := range e.calculators {
		est, err := calc.Calculate(paramMap)
		if err != nil {
			results = append(results, Component{
				Name:       calc.Name(),
				Estimation: Estimation{Reason: fmt.Sprintf("Error: %v", err)},
				Err:        err,
			})
			continue
		}
		results = append(results, Component{Name: calc.Name(), Estimation: est})
	}
	return results
}

// Sum adds the Min and Max of every successful component, left to right.
func Sum(components []Component) (minTotal, maxTotal float64) {
	for _, c := range components {
		if c.Err != nil {
			continue
		}
		minTotal += c.Min
		maxTotal += c.Max
	}
	return minTotal, maxTotal
}

// FirstError returns the error of the first failed component, if any.
func FirstError(components []Component) error {
	for _, c := range components {
		if c.Err != nil {
			return fmt.Errorf("%s: %w", c.Name, c.Err)
		}
	}
	return nil
}
