// Package calculators provides concrete Calculator implementations for the estimation engine.
//
// Each calculator estimates one term of a car retrieval cycle (e.g. fixed overhead, lifting,
// turntable rotation) as a best and worst case in seconds. Calculators are designed to be
// composed via the estimation.Engine and accept input through estimation.Param slices.
package calculators
