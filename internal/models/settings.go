package models

// Settings represents application-wide settings
type Settings struct {
	NightStart    string `json:"night_start"`    // start of the nightly study window, e.g. "19:00"
	NightEnd      string `json:"night_end"`      // end of the nightly study window, e.g. "22:00"
	MaxDaysAhead  int    `json:"max_days_ahead"` // how many days the slot search walks forward
	DifficultyMax int    `json:"difficulty_max"` // upper bound accepted at intake (3 or 4)
	ActiveNIM     string `json:"active_nim"`     // default person context set by `jadwalin login`
}
