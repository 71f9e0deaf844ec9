package calculators

// Param keys consumed by the calculators in this package.
// Speeds are per minute, distances and heights in millimeters unless stated, times in seconds.
const (
	ParamDoorTime          = "door_time_s"
	ParamProcessingTime    = "processing_time_s"
	ParamAdditionalTime    = "additional_time_s"
	ParamLiftingAddTime    = "lifting_add_time_s"
	ParamTraversingAddTime = "traversing_add_time_s"

	ParamLiftingSpeed    = "lifting_speed_m_per_min"
	ParamTraversingSpeed = "traversing_speed_m_per_min"
	ParamTurnTableSpeed  = "turntable_speed_rpm"

	// ParamTotalHeight is the summed travel height of the tiered model.
	ParamTotalHeight = "total_height_mm"
	// ParamMinLevel and ParamMaxLevel are the lowest and highest reachable levels, in meters.
	ParamMinLevel = "min_level_m"
	ParamMaxLevel = "max_level_m"

	ParamTraversingDistance1 = "traversing_distance_1_mm"
	ParamTraversingDistance2 = "traversing_distance_2_mm"
)

// Calculator names, used to label engine components.
const (
	NameBaseOverhead = "Base Overhead"
	NameLifting      = "Lifting"
	NameTraversing   = "Traversing"
	NameRotation     = "Turntable Rotation"
)
