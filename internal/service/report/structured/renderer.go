package structured

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/types"
)

// Document is the machine readable export.
type Document struct {
	Title     string            `json:"title"`
	Generated string            `json:"generated"`
	Result    *retrieval.Result `json:"result"`
}

// Renderer encodes the full result as JSON or YAML.
type Renderer struct {
	format types.ReportFormat
}

func NewJSONRenderer() *Renderer {
	return &Renderer{format: types.ReportFormatJSON}
}

func NewYAMLRenderer() *Renderer {
	return &Renderer{format: types.ReportFormatYAML}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return r.format
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	doc := Document{
		Title:     data.Title,
		Generated: data.Timestamps.Generated + "T" + data.Timestamps.GeneratedTime,
		Result:    data.Result,
	}

	switch r.format {
	case types.ReportFormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return out, nil
	default:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(out, '\n'), nil
	}
}
