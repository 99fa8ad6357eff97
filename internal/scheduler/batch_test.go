package scheduler

import (
	"testing"

	"github.com/jeanfide/jadwalin/internal/models"
)

func pendingItem(id string, priority, difficulty, durationMin int, deadline, requested string) models.PendingItem {
	return models.PendingItem{
		ID:            id,
		Title:         "item " + id,
		Kind:          "assignment",
		Priority:      priority,
		Difficulty:    difficulty,
		DurationMin:   durationMin,
		Deadline:      deadline,
		RequestedDate: requested,
	}
}

func TestRunBatchOrdersByWeightThenDeadline(t *testing.T) {
	s := testScheduler()

	// Same requested date; placement order is visible in the assigned starts.
	queue := []models.PendingItem{
		pendingItem("low", 1, 1, 30, "", "2026-01-06"),         // weight 2
		pendingItem("high", 4, 4, 30, "", "2026-01-06"),        // weight 8
		pendingItem("mid-late", 2, 2, 30, "2026-02-01", "2026-01-06"), // weight 4
		pendingItem("mid-early", 2, 2, 30, "2026-01-10", "2026-01-06"), // weight 4
	}

	result := s.RunBatch(queue, nil, "1002")
	if len(result.Failed) != 0 {
		t.Fatalf("unexpected failures: %+v", result.Failed)
	}
	if len(result.Placed) != 4 {
		t.Fatalf("placed %d, want 4", len(result.Placed))
	}

	wantOrder := []string{"high", "mid-early", "mid-late", "low"}
	for i, id := range wantOrder {
		if result.Placed[i].ID != id {
			t.Errorf("placed[%d] = %s, want %s", i, result.Placed[i].ID, id)
		}
	}

	// First-fit packs them back to back from the window start.
	wantStarts := []string{"19:00", "19:30", "20:00", "20:30"}
	for i, start := range wantStarts {
		if result.Placed[i].AssignedStart != start {
			t.Errorf("placed[%d] start = %s, want %s", i, result.Placed[i].AssignedStart, start)
		}
	}
}

func TestRunBatchEmptyDeadlineSortsLast(t *testing.T) {
	s := testScheduler()

	queue := []models.PendingItem{
		pendingItem("none", 2, 2, 30, "", "2026-01-06"),
		pendingItem("dated", 2, 2, 30, "2026-03-01", "2026-01-06"),
	}

	result := s.RunBatch(queue, nil, "1002")
	if len(result.Placed) != 2 {
		t.Fatalf("placed %d, want 2", len(result.Placed))
	}
	if result.Placed[0].ID != "dated" || result.Placed[1].ID != "none" {
		t.Errorf("deadline-less item should schedule last: %s, %s",
			result.Placed[0].ID, result.Placed[1].ID)
	}
}

func TestRunBatchStableOnFullTie(t *testing.T) {
	s := testScheduler()

	queue := []models.PendingItem{
		pendingItem("first", 2, 2, 30, "2026-02-01", "2026-01-06"),
		pendingItem("second", 2, 2, 30, "2026-02-01", "2026-01-06"),
		pendingItem("third", 2, 2, 30, "2026-02-01", "2026-01-06"),
	}

	result := s.RunBatch(queue, nil, "1002")
	wantOrder := []string{"first", "second", "third"}
	for i, id := range wantOrder {
		if result.Placed[i].ID != id {
			t.Errorf("tie not stable: placed[%d] = %s, want %s", i, result.Placed[i].ID, id)
		}
	}
}

func TestRunBatchAccumulatesWithinRun(t *testing.T) {
	s := testScheduler()

	// Three 90-minute items: two fill the first night exactly, the third
	// moves to the next day.
	queue := []models.PendingItem{
		pendingItem("a", 2, 3, 90, "", "2026-01-06"),
		pendingItem("b", 2, 3, 90, "", "2026-01-06"),
		pendingItem("c", 2, 3, 90, "", "2026-01-06"),
	}

	result := s.RunBatch(queue, nil, "1002")
	if len(result.Placed) != 3 {
		t.Fatalf("placed %d, want 3: %+v", len(result.Placed), result.Failed)
	}

	want := []struct{ date, start, end string }{
		{"2026-01-06", "19:00", "20:30"},
		{"2026-01-06", "20:30", "22:00"},
		{"2026-01-07", "19:00", "20:30"},
	}
	for i, w := range want {
		got := result.Placed[i]
		if got.AssignedDate != w.date || got.AssignedStart != w.start || got.AssignedEnd != w.end {
			t.Errorf("placed[%d] = %s %s-%s, want %s %s-%s",
				i, got.AssignedDate, got.AssignedStart, got.AssignedEnd, w.date, w.start, w.end)
		}
	}
}

func TestRunBatchFailureDoesNotAbort(t *testing.T) {
	s := New(testDirectory(), Options{NightStart: 1140, NightEnd: 1320, MaxDaysAhead: 5})

	queue := []models.PendingItem{
		pendingItem("too-long", 4, 4, 240, "", "2026-01-06"),
		pendingItem("bad-date", 3, 3, 30, "", "banana"),
		pendingItem("fine", 1, 1, 30, "", "2026-01-06"),
	}

	result := s.RunBatch(queue, nil, "1002")
	if len(result.Placed) != 1 || result.Placed[0].ID != "fine" {
		t.Fatalf("expected only 'fine' to place, got %+v", result.Placed)
	}
	if len(result.Failed) != 2 {
		t.Fatalf("expected 2 failures, got %+v", result.Failed)
	}
	if len(result.Tasks) != 1 {
		t.Errorf("accumulated list should hold only placed tasks, got %d", len(result.Tasks))
	}
}

func TestRunBatchKeepsExistingTasks(t *testing.T) {
	s := testScheduler()

	existing := []models.Task{placedTask("old", "2026-01-06", "19:00", "20:00")}
	queue := []models.PendingItem{pendingItem("new", 2, 2, 60, "", "2026-01-06")}

	result := s.RunBatch(queue, existing, "1002")
	if len(result.Tasks) != 2 {
		t.Fatalf("accumulated list = %d tasks, want 2", len(result.Tasks))
	}
	if result.Tasks[0].ID != "old" {
		t.Errorf("existing task missing from the accumulated list")
	}
	if result.Placed[0].AssignedStart != "20:00" {
		t.Errorf("new task should place after the existing one, got %s", result.Placed[0].AssignedStart)
	}
}

func TestRunBatchOwnerFallback(t *testing.T) {
	s := testScheduler()

	// Monday with an evening class for 1001: the default NIM's schedule
	// must constrain items without an owner.
	queue := []models.PendingItem{pendingItem("x", 2, 2, 60, "", "2026-01-05")}

	result := s.RunBatch(queue, nil, "1001")
	if len(result.Placed) != 1 {
		t.Fatalf("expected a placement, got %+v", result.Failed)
	}
	placed := result.Placed[0]
	if placed.AssignedStart != "20:30" {
		t.Errorf("default-NIM class block ignored: start = %s, want 20:30", placed.AssignedStart)
	}
	if placed.OwnerNIM != "1001" {
		t.Errorf("placed task owner = %q, want 1001", placed.OwnerNIM)
	}

	// An explicit owner overrides the default.
	queue[0].OwnerNIM = "1002"
	result = s.RunBatch(queue, nil, "1001")
	if result.Placed[0].AssignedStart != "19:00" || result.Placed[0].OwnerNIM != "1002" {
		t.Errorf("explicit owner not honored: %+v", result.Placed[0])
	}
}

func TestRunBatchEmptyQueue(t *testing.T) {
	s := testScheduler()
	existing := []models.Task{placedTask("old", "2026-01-06", "19:00", "20:00")}

	result := s.RunBatch(nil, existing, "1002")
	if len(result.Placed) != 0 || len(result.Failed) != 0 {
		t.Errorf("empty queue should place nothing: %+v", result)
	}
	if len(result.Tasks) != 1 {
		t.Errorf("existing tasks must pass through unchanged")
	}
}

func TestRunBatchDoesNotModifyQueue(t *testing.T) {
	s := testScheduler()
	queue := []models.PendingItem{
		pendingItem("low", 1, 1, 30, "", "2026-01-06"),
		pendingItem("high", 4, 4, 30, "", "2026-01-06"),
	}

	s.RunBatch(queue, nil, "1002")
	if queue[0].ID != "low" || queue[1].ID != "high" {
		t.Errorf("RunBatch reordered the caller's queue: %+v", queue)
	}
}
