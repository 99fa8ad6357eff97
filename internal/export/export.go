// Package export renders the saved schedule as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/jeanfide/jadwalin/internal/models"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Write renders tasks sorted by (assigned date, start) in the requested
// format.
func Write(w io.Writer, tasks []models.Task, format Format) error {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].AssignedDate != sorted[j].AssignedDate {
			return sorted[i].AssignedDate < sorted[j].AssignedDate
		}
		return sorted[i].AssignedStart < sorted[j].AssignedStart
	})

	switch format {
	case FormatCSV:
		return writeCSV(w, sorted)
	case FormatJSON:
		return writeJSON(w, sorted)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

func writeCSV(w io.Writer, tasks []models.Task) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "title", "kind", "priority", "difficulty", "duration_min",
		"deadline", "owner_nim", "assigned_date", "assigned_start", "assigned_end"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, t := range tasks {
		record := []string{
			t.ID, t.Title, string(t.Kind),
			strconv.Itoa(t.Priority), strconv.Itoa(t.Difficulty), strconv.Itoa(t.DurationMin),
			t.Deadline, t.OwnerNIM, t.AssignedDate, t.AssignedStart, t.AssignedEnd,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, tasks []models.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}
