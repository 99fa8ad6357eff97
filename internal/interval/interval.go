// Package interval provides minute-of-day interval arithmetic for occupancy
// and conflict detection. An Interval is the half-open range
// [Start, End) with 0 <= Start < End <= 1440; intervals never span days and
// are always derived from stored records at query time, never persisted.
package interval

import (
	"sort"
	"strings"

	"github.com/jeanfide/jadwalin/internal/utils"
)

type Interval struct {
	Start int // minutes from midnight, inclusive
	End   int // minutes from midnight, exclusive
}

// Overlaps reports whether two half-open intervals share any minute.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Contains reports whether other lies entirely within iv.
func (iv Interval) Contains(other Interval) bool {
	return iv.Start <= other.Start && other.End <= iv.End
}

// Minutes returns the interval length.
func (iv Interval) Minutes() int {
	return iv.End - iv.Start
}

// String renders the interval as "HH:MM-HH:MM".
func (iv Interval) String() string {
	return utils.FormatClock(iv.Start) + "-" + utils.FormatClock(iv.End)
}

// Parse reads a "HH:MM-HH:MM" range string. The boolean is false for
// malformed or inverted ranges; callers skip those entries rather than
// failing the whole lookup.
func Parse(s string) (Interval, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Interval{}, false
	}
	start, err := utils.ParseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return Interval{}, false
	}
	end, err := utils.ParseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return Interval{}, false
	}
	if start >= end {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// FromClock builds an interval from separate "HH:MM" start and end strings.
func FromClock(start, end string) (Interval, bool) {
	s, err := utils.ParseClock(start)
	if err != nil {
		return Interval{}, false
	}
	e, err := utils.ParseClock(end)
	if err != nil {
		return Interval{}, false
	}
	if s >= e {
		return Interval{}, false
	}
	return Interval{Start: s, End: e}, true
}

// Merge folds a set of intervals into a sorted, pairwise non-overlapping
// cover. Overlapping or touching intervals (next.Start <= prev.End) collapse
// into one, keeping the maximum end. The input slice is not modified.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
		} else {
			merged = append(merged, iv)
		}
	}

	return merged
}
