package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jeanfide/jadwalin/internal/constants"
	"github.com/jeanfide/jadwalin/internal/models"
)

const taskColumns = `id, title, kind, priority, difficulty, duration_min,
	deadline, owner_nim, assigned_date, assigned_start, assigned_end, created_at`

func scanTask(row interface{ Scan(...any) error }) (models.Task, error) {
	var t models.Task
	var kind, createdAt string

	err := row.Scan(
		&t.ID, &t.Title, &kind, &t.Priority, &t.Difficulty, &t.DurationMin,
		&t.Deadline, &t.OwnerNIM, &t.AssignedDate, &t.AssignedStart, &t.AssignedEnd, &createdAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	t.Kind = constants.TaskKind(kind)
	if createdAt != "" {
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			t.CreatedAt = ts
		}
	}

	return t, nil
}

func (s *Store) AddTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (`+taskColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, kind = EXCLUDED.kind,
			priority = EXCLUDED.priority, difficulty = EXCLUDED.difficulty,
			duration_min = EXCLUDED.duration_min, deadline = EXCLUDED.deadline,
			owner_nim = EXCLUDED.owner_nim, assigned_date = EXCLUDED.assigned_date,
			assigned_start = EXCLUDED.assigned_start, assigned_end = EXCLUDED.assigned_end`,
		task.ID, task.Title, string(task.Kind), task.Priority, task.Difficulty, task.DurationMin,
		task.Deadline, task.OwnerNIM, task.AssignedDate, task.AssignedStart, task.AssignedEnd,
		task.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return models.Task{}, fmt.Errorf("task not found: %s", id)
	}
	return task, err
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks ORDER BY assigned_date, assigned_start, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	res, err := s.db.Exec(`
		UPDATE tasks SET title = $1, kind = $2, priority = $3, difficulty = $4, duration_min = $5,
			deadline = $6, owner_nim = $7, assigned_date = $8, assigned_start = $9, assigned_end = $10
		WHERE id = $11`,
		task.Title, string(task.Kind), task.Priority, task.Difficulty, task.DurationMin,
		task.Deadline, task.OwnerNIM, task.AssignedDate, task.AssignedStart, task.AssignedEnd,
		task.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("task not found: %s", task.ID)
	}
	return nil
}

func (s *Store) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("task not found: %s", id)
	}
	return nil
}

func (s *Store) ReplaceTasks(tasks []models.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, task := range tasks {
		_, err := stmt.Exec(
			task.ID, task.Title, string(task.Kind), task.Priority, task.Difficulty, task.DurationMin,
			task.Deadline, task.OwnerNIM, task.AssignedDate, task.AssignedStart, task.AssignedEnd,
			task.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
