package performance

import (
	"encoding/json"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation"
)

func (i Indicator) MarshalJSON() ([]byte, error) {
	type alias Indicator
	return json.Marshal(struct {
		alias
		Percent *float64 `json:"percent"`
	}{alias(i), estimation.JSONFloat(i.Percent)})
}
