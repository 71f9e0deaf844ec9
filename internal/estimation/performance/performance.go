// Package performance grades a retrieval estimate for presentation.
package performance

import "math"

// Class is a qualitative performance bucket.
type Class string

const (
	Good     Class = "good"
	Moderate Class = "moderate"
	Poor     Class = "poor"
)

// Indicator is a continuous score in percent together with its bucket.
type Indicator struct {
	Percent float64 `json:"percent"`
	Class   Class   `json:"class"`
}

// Assessment grades both the cycle time and the throughput of a batch.
type Assessment struct {
	Efficiency Indicator `json:"efficiency"`
	Speed      Indicator `json:"speed"`
}

// Efficiency grades the average retrieval time. Up to 3 minutes scores from
// 100 down to 70, up to 5 minutes from 70 down to 30, and the score then
// drops 5 points per further minute without going below zero.
func Efficiency(avgSeconds float64) Indicator {
	m := avgSeconds / 60
	switch {
	case m <= 3:
		return Indicator{Percent: 100 - m/3*30, Class: Good}
	case m <= 5:
		return Indicator{Percent: 70 - (m-3)/2*40, Class: Moderate}
	default:
		return Indicator{Percent: math.Max(30-(m-5)*5, 0), Class: Poor}
	}
}

// Speed grades the throughput percentage, capped at 100.
func Speed(throughputPercent float64) Indicator {
	p := math.Min(throughputPercent, 100)
	switch {
	case p > 50:
		return Indicator{Percent: p, Class: Good}
	case p > 25:
		return Indicator{Percent: p, Class: Moderate}
	default:
		return Indicator{Percent: p, Class: Poor}
	}
}

// Classify grades an average time and a throughput percentage together.
func Classify(avgSeconds, throughputPercent float64) Assessment {
	return Assessment{
		Efficiency: Efficiency(avgSeconds),
		Speed:      Speed(throughputPercent),
	}
}
