package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeanfide/jadwalin/internal/constants"
	"github.com/jeanfide/jadwalin/internal/logger"
	"github.com/jeanfide/jadwalin/internal/models"
)

// Store is the flat-file snapshot layout, the direct descendant of the
// original tasks.json.
type Store struct {
	Version  int                  `json:"version"`
	Settings models.Settings      `json:"settings"`
	Tasks    []models.Task        `json:"tasks"`
	Queue    []models.PendingItem `json:"queue"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func defaultSettings() models.Settings {
	return models.Settings{
		NightStart:    constants.DefaultNightStart,
		NightEnd:      constants.DefaultNightEnd,
		MaxDaysAhead:  constants.DefaultMaxDaysAhead,
		DifficultyMax: constants.DefaultDifficultyMax,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: defaultSettings(),
	}

	return s.save()
}

// Load reads the snapshot. A corrupt file degrades to an empty task list
// instead of halting: the record of past placements is gone but the
// scheduler stays usable.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'jadwalin init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		logger.Warn("Storage file is corrupt, continuing with an empty task list",
			"path", s.path, "error", err)
		s.store = &Store{Version: 1, Settings: defaultSettings()}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddTask(task models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Tasks = append(s.store.Tasks, task)
	return s.save()
}

func (s *JSONStore) GetTask(id string) (models.Task, error) {
	if s.store == nil {
		return models.Task{}, fmt.Errorf("storage not loaded")
	}

	for _, task := range s.store.Tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return models.Task{}, fmt.Errorf("task not found: %s", id)
}

func (s *JSONStore) GetAllTasks() ([]models.Task, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	tasks := make([]models.Task, len(s.store.Tasks))
	copy(tasks, s.store.Tasks)
	return tasks, nil
}

func (s *JSONStore) UpdateTask(task models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i := range s.store.Tasks {
		if s.store.Tasks[i].ID == task.ID {
			s.store.Tasks[i] = task
			return s.save()
		}
	}
	return fmt.Errorf("task not found: %s", task.ID)
}

func (s *JSONStore) DeleteTask(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i := range s.store.Tasks {
		if s.store.Tasks[i].ID == id {
			s.store.Tasks = append(s.store.Tasks[:i], s.store.Tasks[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("task not found: %s", id)
}

func (s *JSONStore) ReplaceTasks(tasks []models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Tasks = make([]models.Task, len(tasks))
	copy(s.store.Tasks, tasks)
	return s.save()
}

func (s *JSONStore) GetQueue() ([]models.PendingItem, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	queue := make([]models.PendingItem, len(s.store.Queue))
	copy(queue, s.store.Queue)
	return queue, nil
}

func (s *JSONStore) AddPendingItem(item models.PendingItem) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Queue = append(s.store.Queue, item)
	return s.save()
}

func (s *JSONStore) ClearQueue() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Queue = nil
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note: no provider is safe for concurrent use by multiple
// processes sharing the same path; `jadwalin doctor` checks for that.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
