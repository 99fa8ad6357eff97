package scheduler

import (
	"time"

	"github.com/jeanfide/jadwalin/internal/interval"
	"github.com/jeanfide/jadwalin/internal/models"
	"github.com/jeanfide/jadwalin/internal/utils"
)

// Placement is a successful slot assignment.
type Placement struct {
	Date  string // YYYY-MM-DD format
	Start string // HH:MM format
	End   string // HH:MM format
}

// FindSlot searches forward from desiredDate, one day at a time, for the
// first gap inside the night window that fits durationMin. Existing task
// placements on each candidate date and the person's class schedule (when
// nim is non-empty) count as busy; excludeID drops one task's own placement
// from the busy set for re-scheduling.
//
// Placement is strictly first-fit in chronological order, which keeps the
// search deterministic and O(days x intervals). The second return value is
// false when MaxDaysAhead days are exhausted without a fit; that is a normal
// negative result, not an error. A duration longer than the window can never
// be placed and always exhausts the horizon.
func (s *Scheduler) FindSlot(tasks []models.Task, nim string, desiredDate time.Time, durationMin int, excludeID string) (Placement, bool) {
	if durationMin <= 0 {
		return Placement{}, false
	}

	for offset := 0; offset < s.opts.MaxDaysAhead; offset++ {
		date := desiredDate.AddDate(0, 0, offset)
		merged := s.occupiedOn(tasks, nim, date, excludeID)

		if start, ok := s.placeOn(merged, durationMin); ok {
			return Placement{
				Date:  utils.FormatDate(date),
				Start: utils.FormatClock(start),
				End:   utils.FormatClock(start + durationMin),
			}, true
		}
	}

	return Placement{}, false
}

// placeOn finds the first start minute inside the night window where
// durationMin fits against the merged busy set. Every fit check uses <=:
// a boundary-exact fit (duration equal to the whole window, or a gap) is
// valid.
func (s *Scheduler) placeOn(merged []interval.Interval, durationMin int) (int, bool) {
	nightStart := s.opts.NightStart
	nightEnd := s.opts.NightEnd

	// Fully free night.
	if len(merged) == 0 {
		if nightStart+durationMin <= nightEnd {
			return nightStart, true
		}
		return 0, false
	}

	// Gap before the first busy interval, clipped to the window start. The
	// window end still bounds the placement even when the first busy
	// interval starts after the window closes.
	if nightStart+durationMin <= merged[0].Start && nightStart+durationMin <= nightEnd {
		return nightStart, true
	}

	// Gaps between adjacent busy intervals, chronological order, first fit.
	for i := 0; i < len(merged)-1; i++ {
		gapStart := max(merged[i].End, nightStart)
		gapEnd := min(merged[i+1].Start, nightEnd)
		if gapStart+durationMin <= gapEnd {
			return gapStart, true
		}
	}

	// Gap after the last busy interval, within the window.
	lastEnd := max(merged[len(merged)-1].End, nightStart)
	if lastEnd+durationMin <= nightEnd {
		return lastEnd, true
	}

	return 0, false
}
