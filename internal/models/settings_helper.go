package models

import (
	"fmt"

	"github.com/jeanfide/jadwalin/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingNightStart:
			settings.NightStart = value
		case constants.SettingNightEnd:
			settings.NightEnd = value
		case constants.SettingMaxDaysAhead:
			if _, err := fmt.Sscanf(value, "%d", &settings.MaxDaysAhead); err != nil {
				return Settings{}, fmt.Errorf("parsing max_days_ahead: %w", err)
			}
		case constants.SettingDifficultyMax:
			if _, err := fmt.Sscanf(value, "%d", &settings.DifficultyMax); err != nil {
				return Settings{}, fmt.Errorf("parsing difficulty_max: %w", err)
			}
		case constants.SettingActiveNIM:
			settings.ActiveNIM = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingNightStart:    settings.NightStart,
		constants.SettingNightEnd:      settings.NightEnd,
		constants.SettingMaxDaysAhead:  fmt.Sprintf("%d", settings.MaxDaysAhead),
		constants.SettingDifficultyMax: fmt.Sprintf("%d", settings.DifficultyMax),
		constants.SettingActiveNIM:     settings.ActiveNIM,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.NightStart == "" {
		settings.NightStart = constants.DefaultNightStart
	}
	if settings.NightEnd == "" {
		settings.NightEnd = constants.DefaultNightEnd
	}
	if settings.MaxDaysAhead == 0 {
		settings.MaxDaysAhead = constants.DefaultMaxDaysAhead
	}
	if settings.DifficultyMax == 0 {
		settings.DifficultyMax = constants.DefaultDifficultyMax
	}
}
