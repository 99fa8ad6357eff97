// Package sqlite implements the task repository on a local SQLite database
// via the pure-Go modernc.org/sqlite driver. It is the default backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jeanfide/jadwalin/internal/constants"
	"github.com/jeanfide/jadwalin/internal/models"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		kind           TEXT NOT NULL,
		priority       INTEGER NOT NULL,
		difficulty     INTEGER NOT NULL,
		duration_min   INTEGER NOT NULL,
		deadline       TEXT NOT NULL DEFAULT '',
		owner_nim      TEXT NOT NULL DEFAULT '',
		assigned_date  TEXT NOT NULL DEFAULT '',
		assigned_start TEXT NOT NULL DEFAULT '',
		assigned_end   TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS queue (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		kind           TEXT NOT NULL,
		priority       INTEGER NOT NULL,
		difficulty     INTEGER NOT NULL,
		duration_min   INTEGER NOT NULL,
		deadline       TEXT NOT NULL DEFAULT '',
		owner_nim      TEXT NOT NULL DEFAULT '',
		requested_date TEXT NOT NULL,
		created_at     TEXT NOT NULL DEFAULT ''
	)`,
}

func (s *Store) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present or incomplete
	settings, err := s.GetSettings()
	if err != nil || settings.NightStart == "" {
		defaults := models.Settings{
			NightStart:    constants.DefaultNightStart,
			NightEnd:      constants.DefaultNightEnd,
			MaxDaysAhead:  constants.DefaultMaxDaysAhead,
			DifficultyMax: constants.DefaultDifficultyMax,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'jadwalin init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Re-running the schema bootstrap keeps old databases usable after an
	// upgrade; every statement is idempotent.
	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) createSchema() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}
