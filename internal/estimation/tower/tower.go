// Package tower holds the tower configuration codes and the weight vectors
// used to derive the worst-case complexity penalty.
package tower

// Type is a tower configuration code "A+B": A elevator shafts / entry lanes
// combined with B storage-side mechanisms.
type Type string

const (
	Type0Plus1 Type = "0+1"
	Type0Plus2 Type = "0+2"
	Type0Plus3 Type = "0+3"
	Type1Plus1 Type = "1+1"
	Type1Plus2 Type = "1+2"
	Type1Plus3 Type = "1+3"
	Type2Plus2 Type = "2+2"
	Type2Plus3 Type = "2+3"
	Type3Plus3 Type = "3+3"

	// Default is used for absent or unrecognized codes.
	Default = Type1Plus1
)

// complexityWeight scales the summed configuration factors.
const complexityWeight = 0.1

// Factors is the fixed 7-slot weight vector of a configuration.
type Factors [7]float64

var types = []Type{
	Type0Plus1, Type0Plus2, Type0Plus3,
	Type1Plus1, Type1Plus2, Type1Plus3,
	Type2Plus2, Type2Plus3,
	Type3Plus3,
}

var configurationFactors = map[Type]Factors{
	Type0Plus1: {0, 0, 0, 0, 1, 0, 0},
	Type0Plus2: {0, 0, 0, 0, 1, 2, 0},
	Type0Plus3: {0, 0, 0, 0, 1, 2, 3},
	Type1Plus1: {0, 0, 1, 0, 1, 0, 0},
	Type1Plus2: {0, 0, 1, 0, 1, 2, 0},
	Type1Plus3: {0, 0, 1, 0, 1, 2, 3},
	Type2Plus2: {0, 2, 1, 0, 1, 2, 0},
	Type2Plus3: {0, 2, 1, 0, 1, 2, 3},
	Type3Plus3: {3, 2, 1, 0, 1, 2, 3},
}

// Types returns every known configuration code in display order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// Parse reports whether s is a known configuration code.
func Parse(s string) (Type, bool) {
	t := Type(s)
	if _, ok := configurationFactors[t]; !ok {
		return Default, false
	}
	return t, true
}

// Factors returns the weight vector of t, falling back to the Default vector.
func (t Type) Factors() Factors {
	if f, ok := configurationFactors[t]; ok {
		return f
	}
	return configurationFactors[Default]
}

// Sum adds the weights left to right.
func (f Factors) Sum() float64 {
	sum := 0.0
	for _, w := range f {
		sum += w
	}
	return sum
}

// ComplexityFactor is the multiplicative penalty applied to the worst-case
// retrieval time: 1 + 0.1 * sum(factors).
func (t Type) ComplexityFactor() float64 {
	return 1 + t.Factors().Sum()*complexityWeight
}

func (t Type) String() string {
	return string(t)
}
