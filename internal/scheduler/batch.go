package scheduler

import (
	"sort"

	"github.com/jeanfide/jadwalin/internal/logger"
	"github.com/jeanfide/jadwalin/internal/models"
	"github.com/jeanfide/jadwalin/internal/utils"
)

// maxDeadline sorts items without a deadline after every dated one.
const maxDeadline = "9999-12-31"

// BatchResult reports one batch-scheduling run. Tasks is the full
// accumulated task list (existing tasks plus Placed) and is what the caller
// persists, exactly once.
type BatchResult struct {
	Placed []models.Task
	Failed []models.PendingItem
	Tasks  []models.Task
}

// RunBatch schedules a queue of pending items against the existing task
// list. Items are ordered by weight descending, then earliest deadline
// (no deadline sorts last), then insertion order. Each placement joins the
// accumulating task list before the next item is searched, so two items can
// never claim the same gap within one run. A failed item never aborts the
// batch; it is reported in Failed and the run continues.
//
// Items whose owner NIM is blank fall back to defaultNIM for class-schedule
// conflict checks. An unparsable requested date counts as a failure for that
// item alone.
func (s *Scheduler) RunBatch(queue []models.PendingItem, tasks []models.Task, defaultNIM string) BatchResult {
	ordered := make([]models.PendingItem, len(queue))
	copy(ordered, queue)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Weight() != ordered[j].Weight() {
			return ordered[i].Weight() > ordered[j].Weight()
		}
		return deadlineKey(ordered[i]) < deadlineKey(ordered[j])
	})

	result := BatchResult{Tasks: tasks}

	for _, item := range ordered {
		requested, err := utils.ParseDate(item.RequestedDate)
		if err != nil {
			logger.Warn("Skipping pending item with invalid requested date",
				"id", item.ID, "requested_date", item.RequestedDate)
			result.Failed = append(result.Failed, item)
			continue
		}

		nim := item.OwnerNIM
		if nim == "" {
			nim = defaultNIM
		}

		placement, ok := s.FindSlot(result.Tasks, nim, requested, item.DurationMin, "")
		if !ok {
			logger.Info("No slot found within search horizon",
				"id", item.ID, "title", item.Title, "max_days_ahead", s.opts.MaxDaysAhead)
			result.Failed = append(result.Failed, item)
			continue
		}

		task := item.Task(placement.Date, placement.Start, placement.End)
		task.OwnerNIM = nim
		result.Placed = append(result.Placed, task)
		result.Tasks = append(result.Tasks, task)
	}

	return result
}

func deadlineKey(item models.PendingItem) string {
	if item.Deadline == "" {
		return maxDeadline
	}
	return item.Deadline
}
