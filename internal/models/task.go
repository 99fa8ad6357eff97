package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeanfide/jadwalin/internal/constants"
)

// Task is the persisted scheduling unit. AssignedDate/AssignedStart/
// AssignedEnd are set only after the slot finder has placed it; a queued
// item that has not been placed yet is a PendingItem, never a Task.
type Task struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Kind          constants.TaskKind `json:"kind"`
	Priority      int                `json:"priority"`
	Difficulty    int                `json:"difficulty"`
	DurationMin   int                `json:"duration_min"`
	Deadline      string             `json:"deadline,omitempty"`  // YYYY-MM-DD format
	OwnerNIM      string             `json:"owner_nim,omitempty"` // consult this person's class schedule
	AssignedDate  string             `json:"assigned_date,omitempty"`  // YYYY-MM-DD format
	AssignedStart string             `json:"assigned_start,omitempty"` // HH:MM format
	AssignedEnd   string             `json:"assigned_end,omitempty"`   // HH:MM format
	CreatedAt     time.Time          `json:"created_at"`
}

// Weight is the batch-ordering key: higher schedules earlier.
func (t Task) Weight() int {
	return t.Priority + t.Difficulty
}

// Scheduled reports whether the task has a complete placement.
func (t Task) Scheduled() bool {
	return t.AssignedDate != "" && t.AssignedStart != "" && t.AssignedEnd != ""
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if t.DurationMin <= 0 {
		return fmt.Errorf("task duration must be positive")
	}
	switch t.Kind {
	case constants.TaskKindAssignment, constants.TaskKindExam, constants.TaskKindLab, constants.TaskKindOther:
	default:
		return fmt.Errorf("invalid task kind: %s", t.Kind)
	}
	return nil
}

// PendingItem is a queued intake entry awaiting batch scheduling. It is
// converted into a Task by the batch scheduler on successful placement and
// discarded on failure.
type PendingItem struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Kind          constants.TaskKind `json:"kind"`
	Priority      int                `json:"priority"`
	Difficulty    int                `json:"difficulty"`
	DurationMin   int                `json:"duration_min"`
	Deadline      string             `json:"deadline,omitempty"`       // YYYY-MM-DD format
	OwnerNIM      string             `json:"owner_nim,omitempty"`
	RequestedDate string             `json:"requested_date"` // earliest date search may start from
	CreatedAt     time.Time          `json:"created_at"`
}

func (p PendingItem) Weight() int {
	return p.Priority + p.Difficulty
}

// Task converts a placed pending item into its durable form. The id is
// carried over so re-scheduling later keeps the same identity.
func (p PendingItem) Task(assignedDate, start, end string) Task {
	return Task{
		ID:            p.ID,
		Title:         p.Title,
		Kind:          p.Kind,
		Priority:      p.Priority,
		Difficulty:    p.Difficulty,
		DurationMin:   p.DurationMin,
		Deadline:      p.Deadline,
		OwnerNIM:      p.OwnerNIM,
		AssignedDate:  assignedDate,
		AssignedStart: start,
		AssignedEnd:   end,
		CreatedAt:     p.CreatedAt,
	}
}

// DurationForDifficulty maps a difficulty tier to a study duration in
// minutes. Anything above tier 3 falls through to the 120-minute cap, so the
// function works for both the [1,3] and [1,4] difficulty bounds.
func DurationForDifficulty(difficulty int) int {
	switch difficulty {
	case 1:
		return 30
	case 2:
		return 60
	case 3:
		return 90
	default:
		return 120
	}
}
