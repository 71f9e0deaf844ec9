package types

import (
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
)

type ReportRenderer interface {
	Render(data *ReportData) ([]byte, error)
	SupportedFormat() ReportFormat
}

type ResultProcessor interface {
	ProcessResult(result *retrieval.Result) (*ReportData, error)
}

type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
	ReportFormatHTML ReportFormat = "html"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatYAML ReportFormat = "yaml"
)

// Formats lists every export format in display order.
func Formats() []ReportFormat {
	return []ReportFormat{ReportFormatCSV, ReportFormatXLSX, ReportFormatHTML, ReportFormatJSON, ReportFormatYAML}
}

var contentTypes = map[ReportFormat]string{
	ReportFormatCSV:  "text/csv",
	ReportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	ReportFormatHTML: "text/html; charset=utf-8",
	ReportFormatJSON: "application/json",
	ReportFormatYAML: "application/yaml",
}

// ContentType is the MIME type served for a format.
func (f ReportFormat) ContentType() string {
	if ct, ok := contentTypes[f]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Row is one labelled line of the tabular export. Value is already formatted.
type Row struct {
	Label string
	Value string
	Unit  string
}

// Section groups rows under a heading.
type Section struct {
	Title string
	Rows  []Row
}

type ReportTimestamps struct {
	Generated     string
	GeneratedTime string
	// FileStamp is the sortable, filesystem safe stamp used in file names.
	FileStamp string
}

type ReportData struct {
	Title      string
	Result     *retrieval.Result
	Sections   []Section
	Timestamps ReportTimestamps
}

// Report is a rendered export ready to be written or served.
type Report struct {
	FileName    string
	Format      ReportFormat
	ContentType string
	Content     []byte
}

// Lines flattens the report into the row layout shared by the tabular
// formats: title, generation stamp, then every section separated by a blank line.
func (d *ReportData) Lines() [][]string {
	lines := [][]string{
		{d.Title},
		{"Generated: " + d.Timestamps.Generated + " " + d.Timestamps.GeneratedTime},
	}
	for _, s := range d.Sections {
		lines = append(lines, []string{""}, []string{s.Title})
		for _, r := range s.Rows {
			line := []string{r.Label, r.Value}
			if r.Unit != "" {
				line = append(line, r.Unit)
			}
			lines = append(lines, line)
		}
	}
	return lines
}
