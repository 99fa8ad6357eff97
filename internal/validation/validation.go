// Package validation detects conflicts in stored data: malformed records,
// duplicate identities, and placements that violate the non-overlap
// invariant the scheduler is supposed to preserve.
package validation

import (
	"fmt"
	"sort"

	"github.com/jeanfide/jadwalin/internal/directory"
	"github.com/jeanfide/jadwalin/internal/interval"
	"github.com/jeanfide/jadwalin/internal/models"
	"github.com/jeanfide/jadwalin/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateTaskID  ConflictType = "duplicate_task_id"
	ConflictEmptyTitle       ConflictType = "empty_title"
	ConflictInvalidDateTime  ConflictType = "invalid_datetime"
	ConflictOverlappingTasks ConflictType = "overlapping_tasks"
	ConflictClassCollision   ConflictType = "class_collision"
)

// Conflict represents a detected conflict in stored tasks
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	TaskIDs     []string // IDs of tasks involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates stored tasks against the scheduling invariant
type Validator struct {
	dir *directory.Directory
}

// New creates a new Validator consulting the given person directory for
// class-schedule collisions.
func New(dir *directory.Directory) *Validator {
	return &Validator{dir: dir}
}

type placedTask struct {
	task models.Task
	iv   interval.Interval
}

// ValidateTasks checks the stored task list for conflicts. Malformed records
// are reported but excluded from overlap checks, mirroring how the
// occupancy lookups skip them.
func (v *Validator) ValidateTasks(tasks []models.Task) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seen := make(map[string]bool)
	byOwnerDate := make(map[string][]placedTask)

	for _, task := range tasks {
		if seen[task.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateTaskID,
				Description: fmt.Sprintf("Duplicate task id: %s", task.ID),
				TaskIDs:     []string{task.ID},
			})
		}
		seen[task.ID] = true

		if task.Title == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyTitle,
				Description: fmt.Sprintf("Task %s has an empty title", task.ID),
				TaskIDs:     []string{task.ID},
			})
		}

		if !task.Scheduled() {
			continue
		}

		if _, err := utils.ParseDate(task.AssignedDate); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Task %q has invalid assigned date: %s", task.Title, task.AssignedDate),
				TaskIDs:     []string{task.ID},
			})
			continue
		}

		iv, ok := interval.FromClock(task.AssignedStart, task.AssignedEnd)
		if !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictInvalidDateTime,
				Description: fmt.Sprintf("Task %q has invalid assigned time range: %s-%s",
					task.Title, task.AssignedStart, task.AssignedEnd),
				TaskIDs: []string{task.ID},
			})
			continue
		}

		key := task.OwnerNIM + "|" + task.AssignedDate
		byOwnerDate[key] = append(byOwnerDate[key], placedTask{task: task, iv: iv})
	}

	keys := make([]string, 0, len(byOwnerDate))
	for key := range byOwnerDate {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		placed := byOwnerDate[key]
		sort.Slice(placed, func(i, j int) bool { return placed[i].iv.Start < placed[j].iv.Start })

		for i := 0; i < len(placed)-1; i++ {
			if placed[i].iv.Overlaps(placed[i+1].iv) {
				a, b := placed[i].task, placed[i+1].task
				result.Conflicts = append(result.Conflicts, Conflict{
					Type: ConflictOverlappingTasks,
					Description: fmt.Sprintf("Tasks %q and %q overlap on %s (%s vs %s)",
						a.Title, b.Title, a.AssignedDate, placed[i].iv, placed[i+1].iv),
					Date:    a.AssignedDate,
					TaskIDs: []string{a.ID, b.ID},
				})
			}
		}

		for _, p := range placed {
			if p.task.OwnerNIM == "" {
				continue
			}
			date, _ := utils.ParseDate(p.task.AssignedDate)
			for _, class := range v.dir.ClassIntervals(p.task.OwnerNIM, date) {
				if p.iv.Overlaps(class) {
					result.Conflicts = append(result.Conflicts, Conflict{
						Type: ConflictClassCollision,
						Description: fmt.Sprintf("Task %q collides with a class on %s (%s vs %s)",
							p.task.Title, p.task.AssignedDate, p.iv, class),
						Date:    p.task.AssignedDate,
						TaskIDs: []string{p.task.ID},
					})
				}
			}
		}
	}

	return result
}
