package domain

// Форматы дат и времени
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"

	// DayLabelFormat формат даты в фасетах и фильтрах поиска ("05 Mar 2024")
	DayLabelFormat = "02 Jan 2006"
	// TimeLabelFormat формат времени в фасетах и фильтрах поиска ("09 : 05")
	TimeLabelFormat = "15 : 04"
)

// Default scheduling values
const (
	DefaultGapHours   = 0
	DefaultGapMinutes = 10
	DefaultRounding   = RoundingFive
)

// Business validation constants
const (
	MinRepeatDays = 1
	MaxRepeatDays = 31
	MaxGapHours   = 23
)

// Roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
