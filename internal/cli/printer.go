package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/types"
)

const (
	textFormat = "text"
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{textFormat, jsonFormat, yamlFormat}
)

func printResult(w io.Writer, res *retrieval.Result, output string) error {
	switch output {
	case jsonFormat:
		marshalled, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling result: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", marshalled)
		return err
	case yamlFormat:
		marshalled, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshalling result: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s", marshalled)
		return err
	default:
		return printTable(w, res)
	}
}

func printTable(out io.Writer, res *retrieval.Result) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	p := res.Parameters
	m := res.Metrics

	fmt.Fprintf(w, "Height model:\t%s\n", p.Model)
	fmt.Fprintf(w, "Tower type:\t%s\t(complexity factor %.2f)\n", p.TowerType, m.ComplexityFactor)

	fmt.Fprintln(w, "\nLEVELS")
	if p.Model == params.HeightModelLinear {
		fmt.Fprintf(w, "Number of levels:\t%d\n", p.Linear.NumberOfLevels)
		fmt.Fprintf(w, "First level height:\t%g mm\n", p.Linear.FirstLevelHeight)
		fmt.Fprintf(w, "Regular level height:\t%g mm\n", p.Linear.RegularLevelHeight)
		fmt.Fprintf(w, "Min / max level:\t%.2f m / %.2f m\n", res.Levels.MinLevel, res.Levels.MaxLevel)
	} else {
		if len(res.Levels.Tiers) == 0 {
			fmt.Fprintln(w, "No levels configured")
		}
		for _, t := range res.Levels.Tiers {
			fmt.Fprintf(w, "%s:\t%s\n", t.Label, types.TierSummary(t))
		}
		fmt.Fprintf(w, "Total height:\t%s mm (%.2f m)\n", types.Grouped(res.Levels.Total), res.Levels.Total/1000)
	}

	fmt.Fprintln(w, "\nRESULTS")
	fmt.Fprintf(w, "Minimum retrieval time:\t%.1f s\t(%.2f min)\n", m.MinTime, m.MinTime/60)
	fmt.Fprintf(w, "Maximum retrieval time:\t%.1f s\t(%.2f min)\n", m.MaxTime, m.MaxTime/60)
	fmt.Fprintf(w, "Average retrieval time:\t%.1f s\t(%.2f min)\n", m.AvgTime, m.AvgTime/60)
	fmt.Fprintf(w, "Total time (%d cars):\t%.1f h\t(%.0f min)\n", p.NumberOfCars, m.TotalTimeHours, m.TotalTimeSeconds/60)
	fmt.Fprintf(w, "Cars per hour:\t%.1f\t(%.1f%% of %d)\n", m.CarsPerHour, m.ThroughputPercent, p.NumberOfCars)

	fmt.Fprintln(w, "\nBREAKDOWN")
	for _, term := range res.Breakdown.Terms {
		fmt.Fprintf(w, "%s:\t%.1f s - %.1f s\t%s\n", term.Name, term.Min, term.Max, term.Reason)
	}
	fmt.Fprintf(w, "Travelled height:\t%.2f m\n", res.Breakdown.TotalHeight)

	fmt.Fprintln(w, "\nPERFORMANCE")
	fmt.Fprintf(w, "Efficiency:\t%.0f%%\t%s\n", res.Performance.Efficiency.Percent, res.Performance.Efficiency.Class)
	fmt.Fprintf(w, "Speed:\t%.0f%%\t%s\n", res.Performance.Speed.Percent, res.Performance.Speed.Class)

	return w.Flush()
}

// printSummary is the short form used after each change in the shell.
func printSummary(w io.Writer, res *retrieval.Result) {
	m := res.Metrics
	fmt.Fprintf(w, "min %.1f s  max %.1f s  avg %.1f s  |  %.1f cars/h (%.1f%%)  |  %s\n",
		m.MinTime, m.MaxTime, m.AvgTime, m.CarsPerHour, m.ThroughputPercent, res.Performance.Efficiency.Class)
}
