// Package retrieval turns a normalized parameter record into retrieval-time
// metrics. It resolves the level heights, runs the per-term calculators, and
// applies the tower complexity penalty to the worst case.
package retrieval

import (
	"math"

	"go.uber.org/zap"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/calculators"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/height"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/performance"
)

const secondsPerHour = 3600.0

// Estimator holds one estimation engine per height model.
type Estimator struct {
	engines map[params.HeightModel]*estimation.Engine
}

// EstimatorOption configures an Estimator.
type EstimatorOption func(*estimatorConfig)

type estimatorConfig struct {
	liftingOpts  []calculators.TieredLiftingOption
	rotationOpts []calculators.RotationOption
}

// WithTieredLiftingOptions forwards options to the tiered lifting calculator.
func WithTieredLiftingOptions(opts ...calculators.TieredLiftingOption) EstimatorOption {
	return func(c *estimatorConfig) {
		c.liftingOpts = append(c.liftingOpts, opts...)
	}
}

// WithRotationOptions forwards options to the turntable calculator.
func WithRotationOptions(opts ...calculators.RotationOption) EstimatorOption {
	return func(c *estimatorConfig) {
		c.rotationOpts = append(c.rotationOpts, opts...)
	}
}

// NewEstimator registers the calculators of both height models. The
// registration order is the summation order of the cycle terms.
func NewEstimator(opts ...EstimatorOption) *Estimator {
	cfg := estimatorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	tiered := estimation.NewEngine()
	tiered.Register(calculators.NewBaseOverhead())
	tiered.Register(calculators.NewTieredLifting(cfg.liftingOpts...))
	tiered.Register(calculators.NewTraversing())
	tiered.Register(calculators.NewRotation(cfg.rotationOpts...))

	linear := estimation.NewEngine()
	linear.Register(calculators.NewBaseOverhead())
	linear.Register(calculators.NewLinearLifting())
	linear.Register(calculators.NewTraversing())
	linear.Register(calculators.NewRotation(cfg.rotationOpts...))

	return &Estimator{
		engines: map[params.HeightModel]*estimation.Engine{
			params.HeightModelTiered: tiered,
			params.HeightModelLinear: linear,
		},
	}
}

// Compute resolves the levels of p and estimates them.
func (e *Estimator) Compute(p params.Parameters) Result {
	return e.Estimate(p, height.Resolve(p))
}

// Estimate derives metrics, breakdown and assessment from p and its resolved
// levels. It never fails on normalized input: a calculator error or a
// non-finite result is a broken invariant and is reported at DPanic level.
func (e *Estimator) Estimate(p params.Parameters, lv height.Levels) Result {
	engine, ok := e.engines[lv.Model]
	if !ok {
		engine = e.engines[params.HeightModelTiered]
	}

	components := engine.Run(Inputs(p, lv))
	if err := estimation.FirstError(components); err != nil {
		zap.L().DPanic("retrieval term failed", zap.Error(err), zap.String("model", string(lv.Model)))
	}

	cf := p.TowerType.ComplexityFactor()
	minTime, maxSum := estimation.Sum(components)
	maxTime := maxSum * cf

	metrics := Summarize(minTime, maxTime, p.NumberOfCars)
	metrics.ComplexityFactor = cf

	if !finite(metrics.MinTime, metrics.MaxTime, metrics.AvgTime, metrics.CarsPerHour, metrics.ThroughputPercent) {
		zap.L().DPanic("non-finite retrieval metrics",
			zap.Float64("min", metrics.MinTime),
			zap.Float64("max", metrics.MaxTime),
			zap.Float64("avg", metrics.AvgTime),
			zap.Int("cars", p.NumberOfCars))
	}

	return Result{
		Parameters:  p,
		Levels:      lv,
		Metrics:     metrics,
		Breakdown:   breakdown(components, lv),
		Performance: performance.Classify(metrics.AvgTime, metrics.ThroughputPercent),
	}
}

// Summarize derives the average and batch figures from a best and worst case.
func Summarize(minTime, maxTime float64, cars int) Metrics {
	avg := (minTime + maxTime) / 2
	total := avg * float64(cars)
	perHour := secondsPerHour / avg
	return Metrics{
		MinTime:           minTime,
		MaxTime:           maxTime,
		AvgTime:           avg,
		TotalTimeSeconds:  total,
		TotalTimeHours:    total / secondsPerHour,
		CarsPerHour:       perHour,
		ThroughputPercent: (perHour / float64(cars)) * 100,
	}
}

// Inputs converts a parameter record and its levels into calculator params.
func Inputs(p params.Parameters, lv height.Levels) []estimation.Param {
	return []estimation.Param{
		{Key: calculators.ParamDoorTime, Value: p.DoorTime},
		{Key: calculators.ParamProcessingTime, Value: p.ProcessingTime},
		{Key: calculators.ParamAdditionalTime, Value: p.AdditionalTime},
		{Key: calculators.ParamLiftingAddTime, Value: p.LiftingAddTime},
		{Key: calculators.ParamTraversingAddTime, Value: p.TraversingAddTime},
		{Key: calculators.ParamLiftingSpeed, Value: p.LiftingSpeed},
		{Key: calculators.ParamTraversingSpeed, Value: p.TraversingSpeed},
		{Key: calculators.ParamTurnTableSpeed, Value: p.TurnTableSpeed},
		{Key: calculators.ParamTraversingDistance1, Value: p.TraversingDistance1},
		{Key: calculators.ParamTraversingDistance2, Value: p.TraversingDistance2},
		{Key: calculators.ParamTotalHeight, Value: lv.Total},
		{Key: calculators.ParamMinLevel, Value: lv.MinLevel},
		{Key: calculators.ParamMaxLevel, Value: lv.MaxLevel},
	}
}

func breakdown(components []estimation.Component, lv height.Levels) Breakdown {
	b := Breakdown{Terms: make([]Term, 0, len(components))}
	for _, c := range components {
		b.Terms = append(b.Terms, Term{Name: c.Name, Min: c.Min, Max: c.Max, Reason: c.Reason})
		switch c.Name {
		case calculators.NameBaseOverhead:
			b.BaseTime = c.Max
		case calculators.NameLifting:
			b.MinLiftingTime = c.Min
			b.MaxLiftingTime = c.Max
		case calculators.NameTraversing:
			b.AvgTraversingTime = c.Max
		case calculators.NameRotation:
			b.RotationTime = c.Max
		}
	}
	if lv.Model == params.HeightModelLinear {
		b.TotalHeight = lv.MaxLevel
	} else {
		b.TotalHeight = lv.Total / 1000
	}
	return b
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
