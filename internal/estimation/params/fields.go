package params

// Field names of the raw mapping. They match the form field ids of the
// calculator page so exported parameter files stay interchangeable.
const (
	FieldHeightModel = "heightModel"

	FieldLiftingSpeed        = "liftingSpeed"
	FieldTraversingSpeed     = "traversingSpeed"
	FieldTurnTableSpeed      = "turnTableSpeed"
	FieldTraversingDistance1 = "traversingDistance1"
	FieldTraversingDistance2 = "traversingDistance2"
	FieldPalletInner         = "palletInner"
	FieldDoorTime            = "doorTime"
	FieldProcessingTime      = "processingTime"
	FieldAdditionalTime      = "additionalTime"
	FieldLiftingAddTime      = "liftingAddTime"
	FieldTraversingAddTime   = "traversingAddTime"
	FieldTowerType           = "towerType"
	FieldNumberOfCars        = "numberOfCars"

	FieldLevelsAbove  = "levelsAbove"
	FieldLevelsBelow  = "levelsBelow"
	FieldAboveHeight1 = "aboveHeight1"
	FieldEnableCombos = "enableCombos"
	FieldAboveHeight2 = "aboveHeight2"
	FieldAboveCount2  = "aboveCount2"
	FieldAboveHeight3 = "aboveHeight3"
	FieldAboveCount3  = "aboveCount3"
	FieldBelowHeight  = "belowHeight"

	FieldNumberOfLevels     = "numberOfLevels"
	FieldFirstLevelHeight   = "firstLevelHeight"
	FieldRegularLevelHeight = "regularLevelHeight"
)

// Defaults substituted for absent, unparsable or zero input.
const (
	DefaultLiftingSpeed        = 60.0
	DefaultTraversingSpeed     = 20.0
	DefaultTurnTableSpeed      = 2.2
	DefaultTraversingDistance1 = 2270.0
	DefaultTraversingDistance2 = 2370.0
	DefaultPalletInner         = 2000.0
	DefaultDoorTime            = 20.0
	DefaultProcessingTime      = 20.0
	DefaultAdditionalTime      = 20.0
	DefaultLiftingAddTime      = 12.0
	DefaultTraversingAddTime   = 5.0
	DefaultNumberOfCars        = 70

	DefaultAboveHeight1 = 2100.0
	DefaultAboveHeight2 = 1900.0
	DefaultAboveHeight3 = 2200.0
	DefaultBelowHeight  = 2000.0

	DefaultNumberOfLevels     = 25
	DefaultFirstLevelHeight   = 2550.0
	DefaultRegularLevelHeight = 2100.0
)

// Fields lists every recognised field name.
func Fields() []string {
	return []string{
		FieldHeightModel,
		FieldLiftingSpeed, FieldTraversingSpeed, FieldTurnTableSpeed,
		FieldTraversingDistance1, FieldTraversingDistance2, FieldPalletInner,
		FieldDoorTime, FieldProcessingTime, FieldAdditionalTime,
		FieldLiftingAddTime, FieldTraversingAddTime,
		FieldTowerType, FieldNumberOfCars,
		FieldLevelsAbove, FieldLevelsBelow,
		FieldAboveHeight1, FieldEnableCombos,
		FieldAboveHeight2, FieldAboveCount2,
		FieldAboveHeight3, FieldAboveCount3,
		FieldBelowHeight,
		FieldNumberOfLevels, FieldFirstLevelHeight, FieldRegularLevelHeight,
	}
}

// IsField reports whether name is a recognised field.
func IsField(name string) bool {
	for _, f := range Fields() {
		if f == name {
			return true
		}
	}
	return false
}
