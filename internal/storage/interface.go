package storage

import "github.com/jeanfide/jadwalin/internal/models"

// Provider is the task repository collaborator. The scheduling engine treats
// it as an opaque full-snapshot read/write: load the task list, compute,
// write the task list. No partial updates are contemplated and no provider
// is safe for concurrent writers.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error
	// ReplaceTasks writes the full task list in one snapshot. The batch
	// scheduler persists through this exactly once per run.
	ReplaceTasks([]models.Task) error

	// Pending queue (intake entries awaiting a batch run)
	GetQueue() ([]models.PendingItem, error)
	AddPendingItem(models.PendingItem) error
	ClearQueue() error

	// Utils
	GetConfigPath() string
}
