package domain

// Default configuration values
const (
	DefaultBusinessHoursStart  = 9
	DefaultBusinessHoursEnd    = 19
	DefaultSlotIntervalMinutes = 30
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 240
	MaxFullNameLength      = 120
	MaxPhoneLength         = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
