package height

import (
	"encoding/json"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation"
)

func (t Tier) MarshalJSON() ([]byte, error) {
	type alias Tier
	return json.Marshal(struct {
		alias
		Height   *float64 `json:"height"`
		Subtotal *float64 `json:"subtotal"`
	}{
		alias:    alias(t),
		Height:   estimation.JSONFloat(t.Height),
		Subtotal: estimation.JSONFloat(t.Subtotal),
	})
}

func (lv Levels) MarshalJSON() ([]byte, error) {
	type alias Levels
	return json.Marshal(struct {
		alias
		TotalAbove *float64 `json:"totalAboveHeight"`
		TotalBelow *float64 `json:"totalBelowHeight"`
		Total      *float64 `json:"totalHeight"`
		MinLevel   *float64 `json:"minLevel"`
		MaxLevel   *float64 `json:"maxLevel"`
	}{
		alias:      alias(lv),
		TotalAbove: estimation.JSONFloat(lv.TotalAbove),
		TotalBelow: estimation.JSONFloat(lv.TotalBelow),
		Total:      estimation.JSONFloat(lv.Total),
		MinLevel:   estimation.JSONFloat(lv.MinLevel),
		MaxLevel:   estimation.JSONFloat(lv.MaxLevel),
	})
}
