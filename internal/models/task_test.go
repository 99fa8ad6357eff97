package models

import (
	"testing"
	"time"

	"github.com/jeanfide/jadwalin/internal/constants"
)

func TestDurationForDifficulty(t *testing.T) {
	tests := []struct {
		difficulty int
		want       int
	}{
		{1, 30},
		{2, 60},
		{3, 90},
		{4, 120},
		{5, 120}, // anything above tier 3 caps out
	}

	for _, tt := range tests {
		if got := DurationForDifficulty(tt.difficulty); got != tt.want {
			t.Errorf("DurationForDifficulty(%d) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}

func TestWeight(t *testing.T) {
	task := Task{Priority: 3, Difficulty: 2}
	if task.Weight() != 5 {
		t.Errorf("Task.Weight() = %d, want 5", task.Weight())
	}
	item := PendingItem{Priority: 4, Difficulty: 4}
	if item.Weight() != 8 {
		t.Errorf("PendingItem.Weight() = %d, want 8", item.Weight())
	}
}

func TestScheduled(t *testing.T) {
	task := Task{}
	if task.Scheduled() {
		t.Error("empty task should not report scheduled")
	}
	task.AssignedDate = "2026-01-06"
	task.AssignedStart = "19:00"
	if task.Scheduled() {
		t.Error("partial placement should not report scheduled")
	}
	task.AssignedEnd = "20:00"
	if !task.Scheduled() {
		t.Error("complete placement should report scheduled")
	}
}

func TestTaskValidate(t *testing.T) {
	valid := Task{Title: "Calculus problem set", Kind: constants.TaskKindAssignment, DurationMin: 60}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid task rejected: %v", err)
	}

	tests := []struct {
		name string
		task Task
	}{
		{"empty title", Task{Title: "  ", Kind: constants.TaskKindExam, DurationMin: 60}},
		{"zero duration", Task{Title: "x", Kind: constants.TaskKindExam, DurationMin: 0}},
		{"bad kind", Task{Title: "x", Kind: "chore", DurationMin: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.task.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPendingItemToTask(t *testing.T) {
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local)
	item := PendingItem{
		ID:            "abc",
		Title:         "Lab report",
		Kind:          constants.TaskKindLab,
		Priority:      3,
		Difficulty:    2,
		DurationMin:   60,
		Deadline:      "2026-02-01",
		OwnerNIM:      "16725186",
		RequestedDate: "2026-01-06",
		CreatedAt:     created,
	}

	task := item.Task("2026-01-07", "19:00", "20:00")
	if task.ID != "abc" {
		t.Errorf("identity must carry over, got %q", task.ID)
	}
	if task.AssignedDate != "2026-01-07" || task.AssignedStart != "19:00" || task.AssignedEnd != "20:00" {
		t.Errorf("placement not applied: %+v", task)
	}
	if task.Title != item.Title || task.Deadline != item.Deadline || task.OwnerNIM != item.OwnerNIM {
		t.Errorf("descriptive fields not carried: %+v", task)
	}
	if !task.CreatedAt.Equal(created) {
		t.Errorf("created-at not carried: %v", task.CreatedAt)
	}
}

func TestSettingsMapRoundTrip(t *testing.T) {
	settings := Settings{
		NightStart:    "20:00",
		NightEnd:      "23:00",
		MaxDaysAhead:  14,
		DifficultyMax: 3,
		ActiveNIM:     "16725186",
	}

	got, err := MapToSettings(SettingsToMap(settings))
	if err != nil {
		t.Fatalf("MapToSettings failed: %v", err)
	}
	if got != settings {
		t.Errorf("round trip = %+v, want %+v", got, settings)
	}
}

func TestMapToSettingsBadNumber(t *testing.T) {
	_, err := MapToSettings(map[string]string{constants.SettingMaxDaysAhead: "lots"})
	if err == nil {
		t.Error("expected an error for a non-numeric value")
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	settings := Settings{}
	ApplyDefaultSettings(&settings)
	if settings.NightStart != constants.DefaultNightStart ||
		settings.NightEnd != constants.DefaultNightEnd ||
		settings.MaxDaysAhead != constants.DefaultMaxDaysAhead ||
		settings.DifficultyMax != constants.DefaultDifficultyMax {
		t.Errorf("defaults not applied: %+v", settings)
	}

	// Existing values are never overwritten.
	settings = Settings{NightStart: "18:00", MaxDaysAhead: 7}
	ApplyDefaultSettings(&settings)
	if settings.NightStart != "18:00" || settings.MaxDaysAhead != 7 {
		t.Errorf("defaults clobbered explicit values: %+v", settings)
	}
}
