package constants

const (
	// Setting keys
	SettingNightStart    = "night_start"
	SettingNightEnd      = "night_end"
	SettingMaxDaysAhead  = "max_days_ahead"
	SettingDifficultyMax = "difficulty_max"
	SettingActiveNIM     = "active_nim"

	// Default Settings Values
	DefaultNightStart    = "19:00"
	DefaultNightEnd      = "22:00"
	DefaultMaxDaysAhead  = 60
	DefaultDifficultyMax = 4

	// Priority bounds for intake validation
	PriorityMin = 1
	PriorityMax = 4
)
