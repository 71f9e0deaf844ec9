package params

import (
	"fmt"
	"strings"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/tower"
)

// Raw is the unvalidated field mapping read from a form, a request body or a
// parameter file. Values are usually strings; flags may be booleans and
// decoded JSON/YAML documents may carry numbers.
type Raw map[string]interface{}

// Clone returns a shallow copy of r.
func (r Raw) Clone() Raw {
	out := make(Raw, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// HeightModel selects how vertical travel height is modelled.
type HeightModel string

const (
	// HeightModelTiered partitions levels above ground into up to three height tiers.
	HeightModelTiered HeightModel = "tiered"
	// HeightModelLinear derives a first level plus uniform regular levels.
	HeightModelLinear HeightModel = "linear"
)

// HeightModels lists the supported models.
func HeightModels() []HeightModel {
	return []HeightModel{HeightModelTiered, HeightModelLinear}
}

// ParseHeightModel accepts "tiered" or "linear", case-insensitively.
func ParseHeightModel(s string) (HeightModel, error) {
	switch HeightModel(strings.ToLower(strings.TrimSpace(s))) {
	case HeightModelTiered:
		return HeightModelTiered, nil
	case HeightModelLinear:
		return HeightModelLinear, nil
	default:
		return "", fmt.Errorf("unknown height model %q: must be one of %s, %s", s, HeightModelTiered, HeightModelLinear)
	}
}

// TieredLevels holds the inputs of the tiered height model. Heights are in
// millimeters.
type TieredLevels struct {
	LevelsAbove  int     `json:"levelsAbove"`
	LevelsBelow  int     `json:"levelsBelow"`
	AboveHeight1 float64 `json:"aboveHeight1"`
	EnableCombos bool    `json:"enableCombos"`
	AboveHeight2 float64 `json:"aboveHeight2"`
	AboveCount2  int     `json:"aboveCount2"`
	AboveHeight3 float64 `json:"aboveHeight3"`
	AboveCount3  int     `json:"aboveCount3"`
	BelowHeight  float64 `json:"belowHeight"`
}

// LinearLevels holds the inputs of the linear height model. Heights are in
// millimeters.
type LinearLevels struct {
	NumberOfLevels     int     `json:"numberOfLevels"`
	FirstLevelHeight   float64 `json:"firstLevelHeight"`
	RegularLevelHeight float64 `json:"regularLevelHeight"`
}

// Parameters is the fully populated input record of a calculation.
// Speeds are in m/min (turntable in rpm), distances in mm, times in seconds.
type Parameters struct {
	Model HeightModel `json:"heightModel"`

	LiftingSpeed        float64 `json:"liftingSpeed"`
	TraversingSpeed     float64 `json:"traversingSpeed"`
	TurnTableSpeed      float64 `json:"turnTableSpeed"`
	TraversingDistance1 float64 `json:"traversingDistance1"`
	TraversingDistance2 float64 `json:"traversingDistance2"`
	PalletInner         float64 `json:"palletInner"`

	DoorTime          float64 `json:"doorTime"`
	ProcessingTime    float64 `json:"processingTime"`
	AdditionalTime    float64 `json:"additionalTime"`
	LiftingAddTime    float64 `json:"liftingAddTime"`
	TraversingAddTime float64 `json:"traversingAddTime"`

	TowerType    tower.Type `json:"towerType"`
	NumberOfCars int        `json:"numberOfCars"`

	Tiered TieredLevels `json:"tiered"`
	Linear LinearLevels `json:"linear"`
}
