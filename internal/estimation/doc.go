// Package estimation defines a pluggable retrieval-time calculator.
//
// Each term of a retrieval cycle (fixed overhead, lifting, traversing, turntable rotation) is
// encapsulated in one specific Calculator, and the Engine runs them in registration order so the
// terms can be summed deterministically.
package estimation
