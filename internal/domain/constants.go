package domain

import "github.com/m04kA/SMC-PickerService/pkg/types"

// Time format constants
const (
	TimeFormat = types.TimeFormat // HH:MM
	DateFormat = "2006-01-02"     // YYYY-MM-DD

	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// DefaultLocation is the civil calendar the widgets are rendered in
const DefaultLocation = "Asia/Tokyo"

// Default selectable bounds: from tomorrow up to three months ahead
const (
	DefaultMinOffsetDays   = 1
	DefaultMaxOffsetMonths = 3
)

// Default time option list granularity
const DefaultOptionGranularityMinutes = 1

// Time windows used by the default tier policy
var (
	ProximityWindow = TimeWindow{Min: "10:00", Max: "20:00"}
	SundayWindow    = TimeWindow{Min: "13:00", Max: "20:00"}
	RegularWindow   = TimeWindow{Min: "09:00", Max: "18:00"}

	// FullDayWindow is used for option lists when no window has been resolved yet
	FullDayWindow = TimeWindow{Min: "00:00", Max: "23:59"}
)

// Proximity tier bounds, in calendar days after today
const (
	ProximityFromDays = 1
	ProximityToDays   = 3
)

// MaxOffsetDays caps relative offsets accepted in configuration
const MaxOffsetDays = 3660
