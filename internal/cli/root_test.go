package cli

import (
	"testing"

	"github.com/jeanfide/jadwalin/internal/constants"
	"github.com/jeanfide/jadwalin/internal/models"
	"github.com/jeanfide/jadwalin/internal/utils"
)

func TestResolveDate(t *testing.T) {
	date, err := ResolveDate("2026-01-06")
	if err != nil {
		t.Fatalf("ResolveDate failed: %v", err)
	}
	if utils.FormatDate(date) != "2026-01-06" {
		t.Errorf("ResolveDate = %s", utils.FormatDate(date))
	}

	today, err := ResolveDate("today")
	if err != nil {
		t.Fatalf("ResolveDate(today) failed: %v", err)
	}
	if !today.Equal(utils.Today()) {
		t.Errorf("ResolveDate(today) = %v", today)
	}
	if _, err := ResolveDate("TODAY"); err != nil {
		t.Errorf("'today' should be case-insensitive: %v", err)
	}

	if _, err := ResolveDate("06-01-2026"); err == nil {
		t.Error("wrong date order should error")
	}
	if _, err := ResolveDate(""); err == nil {
		t.Error("empty date should error")
	}
}

func TestParseTaskKind(t *testing.T) {
	tests := []struct {
		input string
		want  constants.TaskKind
		ok    bool
	}{
		{"assignment", constants.TaskKindAssignment, true},
		{"Exam", constants.TaskKindExam, true},
		{" lab ", constants.TaskKindLab, true},
		{"other", constants.TaskKindOther, true},
		{"chore", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := parseTaskKind(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("parseTaskKind(%q) error = %v, want ok=%v", tt.input, err, tt.ok)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseTaskKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAddCmdValidate(t *testing.T) {
	valid := AddCmd{Title: "x", Kind: "assignment", Priority: 2, Difficulty: 2, Date: "today", Week: 1}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid command rejected: %v", err)
	}

	tests := []struct {
		name string
		cmd  AddCmd
	}{
		{"priority too low", AddCmd{Kind: "exam", Priority: 0, Difficulty: 2, Week: 1}},
		{"priority too high", AddCmd{Kind: "exam", Priority: 5, Difficulty: 2, Week: 1}},
		{"difficulty too low", AddCmd{Kind: "exam", Priority: 2, Difficulty: 0, Week: 1}},
		{"bad deadline", AddCmd{Kind: "exam", Priority: 2, Difficulty: 2, Deadline: "soon", Week: 1}},
		{"bad weekday", AddCmd{Kind: "exam", Priority: 2, Difficulty: 2, Weekday: "Monday", Week: 1}},
		{"bad week", AddCmd{Kind: "exam", Priority: 2, Difficulty: 2, Weekday: "Senin", Week: 6}},
		{"bad month", AddCmd{Kind: "exam", Priority: 2, Difficulty: 2, Month: 13, Week: 1}},
		{"bad kind", AddCmd{Kind: "chore", Priority: 2, Difficulty: 2, Week: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAddCmdRequestedDate(t *testing.T) {
	cmd := AddCmd{Weekday: "Senin", Week: 2, Month: 1, Year: 2026}
	date, err := cmd.requestedDate()
	if err != nil {
		t.Fatalf("requestedDate failed: %v", err)
	}
	if utils.FormatDate(date) != "2026-01-12" {
		t.Errorf("requestedDate = %s, want 2026-01-12", utils.FormatDate(date))
	}

	// Occurrence that does not exist in the month.
	cmd = AddCmd{Weekday: "Jumat", Week: 5, Month: 2, Year: 2026}
	if _, err := cmd.requestedDate(); err == nil {
		t.Error("expected an error for a missing occurrence")
	}

	// Plain date path.
	cmd = AddCmd{Date: "2026-03-01"}
	date, err = cmd.requestedDate()
	if err != nil || utils.FormatDate(date) != "2026-03-01" {
		t.Errorf("requestedDate = %v, %v", date, err)
	}
}

func TestFormatPlacement(t *testing.T) {
	task := models.Task{}
	if got := FormatPlacement(task); got != "unscheduled" {
		t.Errorf("FormatPlacement = %q", got)
	}
	task.AssignedDate = "2026-01-06"
	task.AssignedStart = "19:00"
	task.AssignedEnd = "20:00"
	if got := FormatPlacement(task); got != "2026-01-06 19:00–20:00" {
		t.Errorf("FormatPlacement = %q", got)
	}
}
