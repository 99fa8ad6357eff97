package constants

// TaskKind represents the kind of study task
type TaskKind string

const (
	AppName            = "jadwalin"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/jadwalin/jadwalin.db"
	Version            = "v0.3.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Lockfile used by doctor to detect a second process sharing the store
	LockfileName = "jadwalin.lock"

	// Task Kind constants
	TaskKindAssignment TaskKind = "assignment"
	TaskKindExam       TaskKind = "exam"
	TaskKindLab        TaskKind = "lab"
	TaskKindOther      TaskKind = "other"
)

// Weekdays holds the canonical Indonesian weekday labels indexed by ISO
// weekday (0=Monday .. 6=Sunday). Class schedules and weekday+week intake
// are keyed by these labels.
var Weekdays = [7]string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}
