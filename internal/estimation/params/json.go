package params

import (
	"encoding/json"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation"
)

// Lenient parsing accepts "Infinity" and out of range literals, so every
// float field is encoded through estimation.JSONFloat.

func (p Parameters) MarshalJSON() ([]byte, error) {
	type alias Parameters
	return json.Marshal(struct {
		alias
		LiftingSpeed        *float64 `json:"liftingSpeed"`
		TraversingSpeed     *float64 `json:"traversingSpeed"`
		TurnTableSpeed      *float64 `json:"turnTableSpeed"`
		TraversingDistance1 *float64 `json:"traversingDistance1"`
		TraversingDistance2 *float64 `json:"traversingDistance2"`
		PalletInner         *float64 `json:"palletInner"`
		DoorTime            *float64 `json:"doorTime"`
		ProcessingTime      *float64 `json:"processingTime"`
		AdditionalTime      *float64 `json:"additionalTime"`
		LiftingAddTime      *float64 `json:"liftingAddTime"`
		TraversingAddTime   *float64 `json:"traversingAddTime"`
	}{
		alias:               alias(p),
		LiftingSpeed:        estimation.JSONFloat(p.LiftingSpeed),
		TraversingSpeed:     estimation.JSONFloat(p.TraversingSpeed),
		TurnTableSpeed:      estimation.JSONFloat(p.TurnTableSpeed),
		TraversingDistance1: estimation.JSONFloat(p.TraversingDistance1),
		TraversingDistance2: estimation.JSONFloat(p.TraversingDistance2),
		PalletInner:         estimation.JSONFloat(p.PalletInner),
		DoorTime:            estimation.JSONFloat(p.DoorTime),
		ProcessingTime:      estimation.JSONFloat(p.ProcessingTime),
		AdditionalTime:      estimation.JSONFloat(p.AdditionalTime),
		LiftingAddTime:      estimation.JSONFloat(p.LiftingAddTime),
		TraversingAddTime:   estimation.JSONFloat(p.TraversingAddTime),
	})
}

func (t TieredLevels) MarshalJSON() ([]byte, error) {
	type alias TieredLevels
	return json.Marshal(struct {
		alias
		AboveHeight1 *float64 `json:"aboveHeight1"`
		AboveHeight2 *float64 `json:"aboveHeight2"`
		AboveHeight3 *float64 `json:"aboveHeight3"`
		BelowHeight  *float64 `json:"belowHeight"`
	}{
		alias:        alias(t),
		AboveHeight1: estimation.JSONFloat(t.AboveHeight1),
		AboveHeight2: estimation.JSONFloat(t.AboveHeight2),
		AboveHeight3: estimation.JSONFloat(t.AboveHeight3),
		BelowHeight:  estimation.JSONFloat(t.BelowHeight),
	})
}

func (l LinearLevels) MarshalJSON() ([]byte, error) {
	type alias LinearLevels
	return json.Marshal(struct {
		alias
		FirstLevelHeight   *float64 `json:"firstLevelHeight"`
		RegularLevelHeight *float64 `json:"regularLevelHeight"`
	}{
		alias:              alias(l),
		FirstLevelHeight:   estimation.JSONFloat(l.FirstLevelHeight),
		RegularLevelHeight: estimation.JSONFloat(l.RegularLevelHeight),
	})
}
