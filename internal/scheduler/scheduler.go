// Package scheduler implements the slot-allocation engine: occupancy
// lookups, the night-window first-fit slot search, and the priority-ordered
// batch scheduler. The engine is a pure in-process computation; persistence
// is the caller's concern.
package scheduler

import (
	"github.com/jeanfide/jadwalin/internal/constants"
	"github.com/jeanfide/jadwalin/internal/directory"
	"github.com/jeanfide/jadwalin/internal/models"
	"github.com/jeanfide/jadwalin/internal/utils"
)

// Options bounds the slot search. NightStart/NightEnd are minutes from
// midnight; every placement must lie inside [NightStart, NightEnd].
type Options struct {
	NightStart   int
	NightEnd     int
	MaxDaysAhead int
}

// DefaultOptions returns the stock 19:00-22:00 window with a 60-day search
// horizon.
func DefaultOptions() Options {
	start, _ := utils.ParseClock(constants.DefaultNightStart)
	end, _ := utils.ParseClock(constants.DefaultNightEnd)
	return Options{
		NightStart:   start,
		NightEnd:     end,
		MaxDaysAhead: constants.DefaultMaxDaysAhead,
	}
}

// OptionsFromSettings derives search options from stored settings, falling
// back to the defaults for missing or malformed values.
func OptionsFromSettings(settings models.Settings) Options {
	opts := DefaultOptions()
	if start, err := utils.ParseClock(settings.NightStart); err == nil {
		opts.NightStart = start
	}
	if end, err := utils.ParseClock(settings.NightEnd); err == nil {
		opts.NightEnd = end
	}
	if settings.MaxDaysAhead > 0 {
		opts.MaxDaysAhead = settings.MaxDaysAhead
	}
	return opts
}

type Scheduler struct {
	dir  *directory.Directory
	opts Options
}

// New creates a scheduler searching within the given night window against
// the given person directory.
func New(dir *directory.Directory, opts Options) *Scheduler {
	return &Scheduler{dir: dir, opts: opts}
}

// Options returns the scheduler's search bounds.
func (s *Scheduler) Options() Options {
	return s.opts
}
