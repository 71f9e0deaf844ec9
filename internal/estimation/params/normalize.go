package params

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/tower"
)

var (
	// longest leading decimal literal accepted by a lenient float parse
	floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	// leading integer accepted by a lenient int parse
	intPrefix = regexp.MustCompile(`^[+-]?\d+`)
)

// Normalize maps raw input into a fully populated Parameters record. Absent,
// unparsable, NaN and zero values all fall back to the field default, so a
// deliberately entered 0 is indistinguishable from a missing value. An explicit
// heightModel field overrides model. Normalize never fails.
//
// Negative values are kept as entered. MinTime <= MaxTime only holds when the
// speeds and overhead times are positive; a doorTime of -500 inverts them.
func Normalize(raw Raw, model HeightModel) Parameters {
	if v, ok := raw[FieldHeightModel]; ok {
		if s, ok := v.(string); ok {
			if m, err := ParseHeightModel(s); err == nil {
				model = m
			}
		}
	}
	if model != HeightModelLinear {
		model = HeightModelTiered
	}

	p := Parameters{
		Model: model,

		LiftingSpeed:        floatOr(raw[FieldLiftingSpeed], DefaultLiftingSpeed),
		TraversingSpeed:     floatOr(raw[FieldTraversingSpeed], DefaultTraversingSpeed),
		TurnTableSpeed:      floatOr(raw[FieldTurnTableSpeed], DefaultTurnTableSpeed),
		TraversingDistance1: floatOr(raw[FieldTraversingDistance1], DefaultTraversingDistance1),
		TraversingDistance2: floatOr(raw[FieldTraversingDistance2], DefaultTraversingDistance2),
		PalletInner:         floatOr(raw[FieldPalletInner], DefaultPalletInner),

		DoorTime:          floatOr(raw[FieldDoorTime], DefaultDoorTime),
		ProcessingTime:    floatOr(raw[FieldProcessingTime], DefaultProcessingTime),
		AdditionalTime:    floatOr(raw[FieldAdditionalTime], DefaultAdditionalTime),
		LiftingAddTime:    floatOr(raw[FieldLiftingAddTime], DefaultLiftingAddTime),
		TraversingAddTime: floatOr(raw[FieldTraversingAddTime], DefaultTraversingAddTime),

		TowerType:    towerTypeOf(raw[FieldTowerType]),
		NumberOfCars: intOr(raw[FieldNumberOfCars], DefaultNumberOfCars),

		Tiered: TieredLevels{
			LevelsAbove:  intOr(raw[FieldLevelsAbove], 0),
			LevelsBelow:  intOr(raw[FieldLevelsBelow], 0),
			AboveHeight1: floatOr(raw[FieldAboveHeight1], DefaultAboveHeight1),
			EnableCombos: boolOf(raw[FieldEnableCombos]),
			AboveHeight2: floatOr(raw[FieldAboveHeight2], DefaultAboveHeight2),
			AboveCount2:  intOr(raw[FieldAboveCount2], 0),
			AboveHeight3: floatOr(raw[FieldAboveHeight3], DefaultAboveHeight3),
			AboveCount3:  intOr(raw[FieldAboveCount3], 0),
			BelowHeight:  floatOr(raw[FieldBelowHeight], DefaultBelowHeight),
		},
		Linear: LinearLevels{
			NumberOfLevels:     intOr(raw[FieldNumberOfLevels], DefaultNumberOfLevels),
			FirstLevelHeight:   floatOr(raw[FieldFirstLevelHeight], DefaultFirstLevelHeight),
			RegularLevelHeight: floatOr(raw[FieldRegularLevelHeight], DefaultRegularLevelHeight),
		},
	}

	if p.Linear.NumberOfLevels < 1 {
		p.Linear.NumberOfLevels = 1
	}

	return p
}

// ParseFloat parses the longest numeric prefix of s after leading whitespace,
// the way a browser form field is read. ok is false when no prefix exists.
func ParseFloat(s string) (float64, bool) {
	m := floatPrefix.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if m == "" {
		return 0, false
	}
	switch m {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// out of range literals come back as ±Inf together with ErrRange
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// ParseInt parses the leading decimal integer of s after leading whitespace.
func ParseInt(s string) (int, bool) {
	m := intPrefix.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// Atoi saturates out of range literals at the int bounds
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return n, true
		}
		return 0, false
	}
	return n, true
}

func floatOr(v interface{}, def float64) float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return def
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		parsed, ok := ParseFloat(t)
		if !ok {
			return def
		}
		f = parsed
	default:
		return def
	}
	if f == 0 || math.IsNaN(f) {
		return def
	}
	return f
}

func intOr(v interface{}, def int) int {
	var n int
	switch t := v.(type) {
	case nil:
		return def
	case int:
		n = t
	case int64:
		n = int(t)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return def
		}
		n = truncInt(t)
	case string:
		parsed, ok := ParseInt(t)
		if !ok {
			return def
		}
		n = parsed
	default:
		return def
	}
	if n == 0 {
		return def
	}
	return n
}

// truncInt truncates f toward zero, saturating at the int bounds.
func truncInt(f float64) int {
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(math.Trunc(f))
}

func boolOf(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "on", "yes", "1", "checked":
			return true
		}
	}
	return false
}

func towerTypeOf(v interface{}) tower.Type {
	s, ok := v.(string)
	if !ok {
		return tower.Default
	}
	t, _ := tower.Parse(s)
	return t
}
