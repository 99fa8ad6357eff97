package sqlite

import (
	"fmt"

	"github.com/jeanfide/jadwalin/internal/constants"
	"github.com/jeanfide/jadwalin/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingNightStart:
			settings.NightStart = value
		case constants.SettingNightEnd:
			settings.NightEnd = value
		case constants.SettingMaxDaysAhead:
			if _, err := fmt.Sscanf(value, "%d", &settings.MaxDaysAhead); err != nil {
				return models.Settings{}, fmt.Errorf("parsing max_days_ahead: %w", err)
			}
		case constants.SettingDifficultyMax:
			if _, err := fmt.Sscanf(value, "%d", &settings.DifficultyMax); err != nil {
				return models.Settings{}, fmt.Errorf("parsing difficulty_max: %w", err)
			}
		case constants.SettingActiveNIM:
			settings.ActiveNIM = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := map[string]string{
		constants.SettingNightStart:    settings.NightStart,
		constants.SettingNightEnd:      settings.NightEnd,
		constants.SettingMaxDaysAhead:  fmt.Sprintf("%d", settings.MaxDaysAhead),
		constants.SettingDifficultyMax: fmt.Sprintf("%d", settings.DifficultyMax),
		constants.SettingActiveNIM:     settings.ActiveNIM,
	}
	for key, value := range pairs {
		if _, err := stmt.Exec(key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
