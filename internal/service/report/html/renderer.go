package html

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/types"
)

type Renderer struct {
	tmpl *template.Template
}

type tierRow struct {
	Label   string
	Details string
}

type indicator struct {
	Name    string
	Class   string
	Percent string
	Value   string
}

type templateData struct {
	Title         string
	GeneratedDate string
	GeneratedTime string
	Cards         []card
	Indicators    []indicator
	Tiers         []tierRow
	TotalHeight   string
	Breakdown     []types.Row
	Sections      []types.Section
}

type card struct {
	Label   string
	Primary string
	Unit    string
	Second  string
}

func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("report").Parse(reportTemplate))}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatHTML
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	res := data.Result
	m := res.Metrics

	td := templateData{
		Title:         data.Title,
		GeneratedDate: data.Timestamps.Generated,
		GeneratedTime: data.Timestamps.GeneratedTime,
		Cards: []card{
			{Label: "Minimum Time", Primary: fmt.Sprintf("%.1f", m.MinTime), Unit: "s", Second: fmt.Sprintf("%.2f min", m.MinTime/60)},
			{Label: "Maximum Time", Primary: fmt.Sprintf("%.1f", m.MaxTime), Unit: "s", Second: fmt.Sprintf("%.2f min", m.MaxTime/60)},
			{Label: "Average Time", Primary: fmt.Sprintf("%.1f", m.AvgTime), Unit: "s", Second: fmt.Sprintf("%.2f min", m.AvgTime/60)},
			{Label: "Total Time", Primary: fmt.Sprintf("%.1f", m.TotalTimeHours), Unit: "h", Second: fmt.Sprintf("%.0f min", m.TotalTimeSeconds/60)},
			{Label: "Throughput", Primary: fmt.Sprintf("%.1f", m.CarsPerHour), Unit: "cars/h", Second: fmt.Sprintf("%.1f%%", m.ThroughputPercent)},
		},
		Indicators: []indicator{
			{
				Name:    "Efficiency",
				Class:   string(res.Performance.Efficiency.Class),
				Percent: fmt.Sprintf("%.0f", res.Performance.Efficiency.Percent),
				Value:   fmt.Sprintf("%.0f%%", res.Performance.Efficiency.Percent),
			},
			{
				Name:    "Speed",
				Class:   string(res.Performance.Speed.Class),
				Percent: fmt.Sprintf("%.0f", res.Performance.Speed.Percent),
				Value:   fmt.Sprintf("%.1f cars/hour", m.CarsPerHour),
			},
		},
		TotalHeight: fmt.Sprintf("%s mm (%.1f m)", types.Grouped(res.Levels.Total), res.Levels.Total/1000),
		Breakdown: []types.Row{
			{Label: "Door Time", Value: fmt.Sprintf("%g", res.Parameters.DoorTime), Unit: "s"},
			{Label: "Processing Time", Value: fmt.Sprintf("%g", res.Parameters.ProcessingTime), Unit: "s"},
			{Label: "Additional Time", Value: fmt.Sprintf("%g", res.Parameters.AdditionalTime), Unit: "s"},
			{Label: "Total Height", Value: fmt.Sprintf("%.1f", res.Breakdown.TotalHeight), Unit: "m"},
			{Label: "Lifting Time", Value: fmt.Sprintf("%.1f", res.Breakdown.MaxLiftingTime), Unit: "s"},
			{Label: "Traversing Time", Value: fmt.Sprintf("%.1f", res.Breakdown.AvgTraversingTime), Unit: "s"},
			{Label: "Rotation Time", Value: fmt.Sprintf("%.1f", res.Breakdown.RotationTime), Unit: "s"},
		},
		Sections: data.Sections,
	}

	for _, t := range res.Levels.Tiers {
		td.Tiers = append(td.Tiers, tierRow{
			Label:   t.Label,
			Details: types.TierSummary(t),
		})
	}
	if len(res.Levels.Tiers) == 0 && res.Levels.MaxLevel > 0 {
		td.TotalHeight = fmt.Sprintf("%.2f m (top level)", res.Levels.MaxLevel)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, td); err != nil {
		return nil, fmt.Errorf("failed to render html report: %w", err)
	}
	return buf.Bytes(), nil
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
.cards { display: flex; gap: 1rem; flex-wrap: wrap; }
.card { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; min-width: 9rem; }
.card .primary { font-size: 1.6rem; font-weight: bold; }
.indicator { margin: .5rem 0; }
.bar { background: #eee; height: .6rem; border-radius: 3px; }
.fill { height: .6rem; border-radius: 3px; }
.performance-good .fill { background: #2e7d32; }
.performance-moderate .fill { background: #f9a825; }
.performance-poor .fill { background: #c62828; }
table { border-collapse: collapse; margin-bottom: 1rem; }
td, th { border-bottom: 1px solid #eee; padding: .25rem .75rem; text-align: left; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>Generated: {{.GeneratedDate}} at {{.GeneratedTime}}</p>

<div class="cards">
{{- range .Cards}}
<div class="card"><div>{{.Label}}</div><div class="primary">{{.Primary}} {{.Unit}}</div><div>{{.Second}}</div></div>
{{- end}}
</div>

<h2>Performance</h2>
{{- range .Indicators}}
<div class="indicator performance-{{.Class}}">
<div>{{.Name}}: {{.Value}}</div>
<div class="bar"><div class="fill" style="width: {{.Percent}}%"></div></div>
</div>
{{- end}}

<h2>Level Summary</h2>
<table>
{{- range .Tiers}}
<tr><td>{{.Label}}:</td><td>{{.Details}}</td></tr>
{{- end}}
<tr><th>Total Height</th><th>{{.TotalHeight}}</th></tr>
</table>

<h2>Breakdown</h2>
<table>
{{- range .Breakdown}}
<tr><td>{{.Label}}</td><td>{{.Value}} {{.Unit}}</td></tr>
{{- end}}
</table>

{{- range .Sections}}
<h2>{{.Title}}</h2>
<table>
{{- range .Rows}}
<tr><td>{{.Label}}</td><td>{{.Value}}</td><td>{{.Unit}}</td></tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
`
