package scheduler

import (
	"time"

	"github.com/jeanfide/jadwalin/internal/interval"
	"github.com/jeanfide/jadwalin/internal/models"
	"github.com/jeanfide/jadwalin/internal/utils"
)

// TaskOccupied returns the busy intervals from tasks assigned to the given
// date. When excludeID is non-empty, that task's own placement is ignored so
// a task being re-scheduled does not conflict with itself.
// Records with a missing or unparsable assignment contribute no occupancy.
func TaskOccupied(tasks []models.Task, date time.Time, excludeID string) []interval.Interval {
	dateStr := utils.FormatDate(date)

	var occupied []interval.Interval
	for _, t := range tasks {
		if excludeID != "" && t.ID == excludeID {
			continue
		}
		if t.AssignedDate != dateStr {
			continue
		}
		if iv, ok := interval.FromClock(t.AssignedStart, t.AssignedEnd); ok {
			occupied = append(occupied, iv)
		}
	}
	return occupied
}

// occupiedOn merges task occupancy and class occupancy for one candidate
// date. A blank NIM skips the class-schedule source.
func (s *Scheduler) occupiedOn(tasks []models.Task, nim string, date time.Time, excludeID string) []interval.Interval {
	occupied := TaskOccupied(tasks, date, excludeID)
	if nim != "" {
		occupied = append(occupied, s.dir.ClassIntervals(nim, date)...)
	}
	return interval.Merge(occupied)
}
