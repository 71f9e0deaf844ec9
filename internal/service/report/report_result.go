package report

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/types"
)

const Title = "Tower Parking System - Enhanced Time Retrieval Analysis"

// FileNamePrefix starts every exported file name.
const FileNamePrefix = "tower-parking-enhanced-"

type StandardResultProcessor struct {
	now func() time.Time
}

type ProcessorOption func(*StandardResultProcessor)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *StandardResultProcessor) {
		if now != nil {
			p.now = now
		}
	}
}

func NewStandardResultProcessor(opts ...ProcessorOption) *StandardResultProcessor {
	p := &StandardResultProcessor{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *StandardResultProcessor) ProcessResult(result *retrieval.Result) (*types.ReportData, error) {
	if result == nil {
		return nil, errors.New("no calculation result to export")
	}

	sections := []types.Section{
		p.levelConfiguration(result.Parameters),
		p.systemParameters(result.Parameters),
		p.results(result.Metrics),
	}

	return &types.ReportData{
		Title:      Title,
		Result:     result,
		Sections:   sections,
		Timestamps: p.generateTimestamps(),
	}, nil
}

// FileName builds "tower-parking-enhanced-<stamp>.<format>".
func FileName(stamp string, format types.ReportFormat) string {
	return fmt.Sprintf("%s%s.%s", FileNamePrefix, stamp, format)
}

func (p *StandardResultProcessor) levelConfiguration(in params.Parameters) types.Section {
	s := types.Section{Title: "Level Configuration"}
	if in.Model == params.HeightModelLinear {
		first := in.Linear.FirstLevelHeight
		top := first + float64(in.Linear.NumberOfLevels-1)*in.Linear.RegularLevelHeight
		s.Rows = []types.Row{
			{Label: "Number of Levels", Value: strconv.Itoa(in.Linear.NumberOfLevels)},
			{Label: "First Level Height", Value: number(first), Unit: "mm"},
			{Label: "Regular Level Height", Value: number(in.Linear.RegularLevelHeight), Unit: "mm"},
			{Label: "Minimum Level", Value: number(0), Unit: "m"},
			{Label: "Maximum Level", Value: number(top / 1000), Unit: "m"},
		}
		return s
	}

	s.Rows = []types.Row{
		{Label: "Levels Above Ground", Value: strconv.Itoa(in.Tiered.LevelsAbove)},
		{Label: "Levels Below Ground", Value: strconv.Itoa(in.Tiered.LevelsBelow)},
		{Label: "Above Ground Height 1", Value: number(in.Tiered.AboveHeight1), Unit: "mm"},
		{Label: "Enable Combinations", Value: strconv.FormatBool(in.Tiered.EnableCombos)},
		{Label: "Below Ground Height", Value: number(in.Tiered.BelowHeight), Unit: "mm"},
	}
	return s
}

func (p *StandardResultProcessor) systemParameters(in params.Parameters) types.Section {
	return types.Section{
		Title: "System Parameters",
		Rows: []types.Row{
			{Label: "Lifting Speed", Value: number(in.LiftingSpeed), Unit: "m/min"},
			{Label: "Traversing Speed", Value: number(in.TraversingSpeed), Unit: "m/min"},
			{Label: "Turn Table Speed", Value: number(in.TurnTableSpeed), Unit: "RPM"},
			{Label: "Tower Type", Value: in.TowerType.String()},
			{Label: "Number of Cars", Value: strconv.Itoa(in.NumberOfCars)},
		},
	}
}

// results reports the figures as they are displayed: rounded to one decimal,
// then printed with two.
func (p *StandardResultProcessor) results(m retrieval.Metrics) types.Section {
	return types.Section{
		Title: "Results",
		Rows: []types.Row{
			{Label: "Minimum Retrieval Time", Value: displayed(m.MinTime), Unit: "seconds"},
			{Label: "Maximum Retrieval Time", Value: displayed(m.MaxTime), Unit: "seconds"},
			{Label: "Average Retrieval Time", Value: displayed(m.AvgTime), Unit: "seconds"},
			{Label: "Total Time for All Cars", Value: displayed(m.TotalTimeHours), Unit: "hours"},
			{Label: "System Throughput", Value: displayed(m.CarsPerHour), Unit: "cars/hour"},
		},
	}
}

func (p *StandardResultProcessor) generateTimestamps() types.ReportTimestamps {
	now := p.now()
	utc := now.UTC()
	return types.ReportTimestamps{
		Generated:     now.Format("2006-01-02"),
		GeneratedTime: now.Format("15:04:05"),
		FileStamp:     utc.Format("2006-01-02T15-04-05"),
	}
}

// number prints the shortest representation that round-trips.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func displayed(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	oneDecimal, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return strconv.FormatFloat(oneDecimal, 'f', 2, 64)
}
