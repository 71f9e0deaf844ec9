package retrieval

import (
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/height"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/performance"
)

// Metrics is the per-car and per-batch timing of a tower. Times are in seconds
// unless the field name says otherwise.
type Metrics struct {
	MinTime           float64 `json:"minTime"`
	MaxTime           float64 `json:"maxTime"`
	AvgTime           float64 `json:"avgTime"`
	TotalTimeSeconds  float64 `json:"totalTimeSeconds"`
	TotalTimeHours    float64 `json:"totalTimeHours"`
	CarsPerHour       float64 `json:"carsPerHour"`
	ThroughputPercent float64 `json:"throughputPercent"`
	ComplexityFactor  float64 `json:"complexityFactor"`
}

// Term is one named contribution to a retrieval cycle.
type Term struct {
	Name   string  `json:"name"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Reason string  `json:"reason"`
}

// Breakdown details the terms summed into MinTime and MaxTime.
type Breakdown struct {
	BaseTime          float64 `json:"baseTime"`
	MinLiftingTime    float64 `json:"minLiftingTime"`
	MaxLiftingTime    float64 `json:"maxLiftingTime"`
	AvgTraversingTime float64 `json:"avgTraversingTime"`
	RotationTime      float64 `json:"rotationTime"`
	// TotalHeight is the travelled height in meters: the summed tiers for the
	// tiered model, the top level for the linear model.
	TotalHeight float64 `json:"totalHeight"`
	Terms       []Term  `json:"terms"`
}

// Result is everything derived from one parameter record.
type Result struct {
	Parameters  params.Parameters      `json:"parameters"`
	Levels      height.Levels          `json:"levels"`
	Metrics     Metrics                `json:"metrics"`
	Breakdown   Breakdown              `json:"breakdown"`
	Performance performance.Assessment `json:"performance"`
}
