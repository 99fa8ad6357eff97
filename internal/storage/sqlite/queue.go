package sqlite

import (
	"time"

	"github.com/jeanfide/jadwalin/internal/constants"
	"github.com/jeanfide/jadwalin/internal/models"
)

const queueColumns = `id, title, kind, priority, difficulty, duration_min,
	deadline, owner_nim, requested_date, created_at`

// GetQueue returns pending items in insertion order, which is the stable
// tie-break the batch scheduler relies on.
func (s *Store) GetQueue() ([]models.PendingItem, error) {
	rows, err := s.db.Query(`SELECT ` + queueColumns + ` FROM queue ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queue []models.PendingItem
	for rows.Next() {
		var item models.PendingItem
		var kind, createdAt string

		err := rows.Scan(
			&item.ID, &item.Title, &kind, &item.Priority, &item.Difficulty, &item.DurationMin,
			&item.Deadline, &item.OwnerNIM, &item.RequestedDate, &createdAt,
		)
		if err != nil {
			return nil, err
		}

		item.Kind = constants.TaskKind(kind)
		if createdAt != "" {
			if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
				item.CreatedAt = ts
			}
		}
		queue = append(queue, item)
	}

	return queue, rows.Err()
}

func (s *Store) AddPendingItem(item models.PendingItem) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO queue (`+queueColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, string(item.Kind), item.Priority, item.Difficulty, item.DurationMin,
		item.Deadline, item.OwnerNIM, item.RequestedDate, item.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *Store) ClearQueue() error {
	_, err := s.db.Exec(`DELETE FROM queue`)
	return err
}
