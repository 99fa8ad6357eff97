package validation

import (
	"testing"

	"github.com/jeanfide/jadwalin/internal/constants"
	"github.com/jeanfide/jadwalin/internal/directory"
	"github.com/jeanfide/jadwalin/internal/models"
)

func testDirectory() *directory.Directory {
	return directory.New([]models.Person{
		{
			NIM:  "1001",
			Name: "Evening Classes",
			ClassSchedule: map[string][]string{
				"Senin": {"19:00-20:30"},
			},
		},
	})
}

func makeTask(id, nim, date, start, end string) models.Task {
	return models.Task{
		ID:            id,
		Title:         "task " + id,
		Kind:          constants.TaskKindAssignment,
		Priority:      2,
		Difficulty:    2,
		DurationMin:   60,
		OwnerNIM:      nim,
		AssignedDate:  date,
		AssignedStart: start,
		AssignedEnd:   end,
	}
}

func conflictTypes(result ValidationResult) map[ConflictType]int {
	counts := make(map[ConflictType]int)
	for _, c := range result.Conflicts {
		counts[c.Type]++
	}
	return counts
}

func TestValidateCleanData(t *testing.T) {
	v := New(testDirectory())
	tasks := []models.Task{
		makeTask("a", "1001", "2026-01-06", "19:00", "20:00"),
		makeTask("b", "1001", "2026-01-06", "20:00", "21:00"), // touching is fine
		makeTask("c", "1001", "2026-01-07", "19:00", "20:00"),
	}

	result := v.ValidateTasks(tasks)
	if result.HasConflicts() {
		t.Errorf("clean data reported conflicts: %s", result.FormatReport())
	}
	if result.FormatReport() != "No conflicts detected." {
		t.Errorf("unexpected report: %q", result.FormatReport())
	}
}

func TestValidateDuplicateID(t *testing.T) {
	v := New(testDirectory())
	tasks := []models.Task{
		makeTask("dup", "1001", "2026-01-06", "19:00", "20:00"),
		makeTask("dup", "1001", "2026-01-07", "19:00", "20:00"),
	}

	counts := conflictTypes(v.ValidateTasks(tasks))
	if counts[ConflictDuplicateTaskID] != 1 {
		t.Errorf("expected one duplicate-id conflict, got %v", counts)
	}
}

func TestValidateEmptyTitle(t *testing.T) {
	v := New(testDirectory())
	task := makeTask("a", "1001", "2026-01-06", "19:00", "20:00")
	task.Title = ""

	counts := conflictTypes(v.ValidateTasks([]models.Task{task}))
	if counts[ConflictEmptyTitle] != 1 {
		t.Errorf("expected an empty-title conflict, got %v", counts)
	}
}

func TestValidateInvalidDateTime(t *testing.T) {
	v := New(testDirectory())
	badDate := makeTask("a", "1001", "not-a-date", "19:00", "20:00")
	badTime := makeTask("b", "1001", "2026-01-06", "19:00", "late")

	counts := conflictTypes(v.ValidateTasks([]models.Task{badDate, badTime}))
	if counts[ConflictInvalidDateTime] != 2 {
		t.Errorf("expected two invalid-datetime conflicts, got %v", counts)
	}
}

func TestValidateOverlappingTasks(t *testing.T) {
	v := New(testDirectory())
	tasks := []models.Task{
		makeTask("a", "1001", "2026-01-06", "19:00", "20:30"),
		makeTask("b", "1001", "2026-01-06", "20:00", "21:00"),
	}

	result := v.ValidateTasks(tasks)
	counts := conflictTypes(result)
	if counts[ConflictOverlappingTasks] != 1 {
		t.Fatalf("expected one overlap conflict, got %v", counts)
	}
	if len(result.Conflicts[0].TaskIDs) != 2 {
		t.Errorf("overlap conflict should name both tasks: %+v", result.Conflicts[0])
	}
}

func TestValidateOverlapScopedToOwnerAndDate(t *testing.T) {
	v := New(testDirectory())
	tasks := []models.Task{
		makeTask("a", "1001", "2026-01-06", "19:00", "20:30"),
		makeTask("b", "other", "2026-01-06", "19:00", "20:30"), // different owner
		makeTask("c", "1001", "2026-01-07", "19:00", "20:30"),  // different date
	}

	if result := v.ValidateTasks(tasks); result.HasConflicts() {
		t.Errorf("overlap check crossed owner/date boundaries: %s", result.FormatReport())
	}
}

func TestValidateClassCollision(t *testing.T) {
	v := New(testDirectory())
	// 2026-01-05 is a Monday; 1001 has class 19:00-20:30.
	tasks := []models.Task{makeTask("a", "1001", "2026-01-05", "20:00", "21:00")}

	counts := conflictTypes(v.ValidateTasks(tasks))
	if counts[ConflictClassCollision] != 1 {
		t.Errorf("expected a class collision, got %v", counts)
	}

	// A slot after the class is fine.
	clean := []models.Task{makeTask("b", "1001", "2026-01-05", "20:30", "21:30")}
	if result := v.ValidateTasks(clean); result.HasConflicts() {
		t.Errorf("boundary-touching slot flagged: %s", result.FormatReport())
	}
}

func TestValidateUnscheduledTasksSkipped(t *testing.T) {
	v := New(testDirectory())
	tasks := []models.Task{
		{ID: "queued", Title: "not yet placed", Kind: constants.TaskKindOther},
	}

	if result := v.ValidateTasks(tasks); result.HasConflicts() {
		t.Errorf("unscheduled task should produce no conflicts: %s", result.FormatReport())
	}
}
