package retrieval

import (
	"encoding/json"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation"
)

// Extreme but accepted inputs (an "Infinity" distance, a 1e-320 speed) yield
// non-finite metrics. Those encode as null so every surface still answers.

func (m Metrics) MarshalJSON() ([]byte, error) {
	type alias Metrics
	return json.Marshal(struct {
		alias
		MinTime           *float64 `json:"minTime"`
		MaxTime           *float64 `json:"maxTime"`
		AvgTime           *float64 `json:"avgTime"`
		TotalTimeSeconds  *float64 `json:"totalTimeSeconds"`
		TotalTimeHours    *float64 `json:"totalTimeHours"`
		CarsPerHour       *float64 `json:"carsPerHour"`
		ThroughputPercent *float64 `json:"throughputPercent"`
		ComplexityFactor  *float64 `json:"complexityFactor"`
	}{
		alias:             alias(m),
		MinTime:           estimation.JSONFloat(m.MinTime),
		MaxTime:           estimation.JSONFloat(m.MaxTime),
		AvgTime:           estimation.JSONFloat(m.AvgTime),
		TotalTimeSeconds:  estimation.JSONFloat(m.TotalTimeSeconds),
		TotalTimeHours:    estimation.JSONFloat(m.TotalTimeHours),
		CarsPerHour:       estimation.JSONFloat(m.CarsPerHour),
		ThroughputPercent: estimation.JSONFloat(m.ThroughputPercent),
		ComplexityFactor:  estimation.JSONFloat(m.ComplexityFactor),
	})
}

func (t Term) MarshalJSON() ([]byte, error) {
	type alias Term
	return json.Marshal(struct {
		alias
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	}{
		alias: alias(t),
		Min:   estimation.JSONFloat(t.Min),
		Max:   estimation.JSONFloat(t.Max),
	})
}

func (b Breakdown) MarshalJSON() ([]byte, error) {
	type alias Breakdown
	return json.Marshal(struct {
		alias
		BaseTime          *float64 `json:"baseTime"`
		MinLiftingTime    *float64 `json:"minLiftingTime"`
		MaxLiftingTime    *float64 `json:"maxLiftingTime"`
		AvgTraversingTime *float64 `json:"avgTraversingTime"`
		RotationTime      *float64 `json:"rotationTime"`
		TotalHeight       *float64 `json:"totalHeight"`
	}{
		alias:             alias(b),
		BaseTime:          estimation.JSONFloat(b.BaseTime),
		MinLiftingTime:    estimation.JSONFloat(b.MinLiftingTime),
		MaxLiftingTime:    estimation.JSONFloat(b.MaxLiftingTime),
		AvgTraversingTime: estimation.JSONFloat(b.AvgTraversingTime),
		RotationTime:      estimation.JSONFloat(b.RotationTime),
		TotalHeight:       estimation.JSONFloat(b.TotalHeight),
	})
}
