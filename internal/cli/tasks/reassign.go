package tasks

import (
	"fmt"
	"time"

	"github.com/jeanfide/jadwalin/internal/cli"
	"github.com/jeanfide/jadwalin/internal/utils"
)

type TaskReassignCmd struct {
	ID   string `arg:"" help:"Task ID to move to a new slot."`
	Date string `short:"t" help:"Date to restart the search from (YYYY-MM-DD or 'today'). Defaults to the current assignment."`
}

// Run re-runs the slot search for an existing task. The task's own slot is
// excluded from the occupancy, so the search may confirm the current
// placement or move it; the identity never changes.
func (c *TaskReassignCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	sched, settings, err := ctx.NewScheduler()
	if err != nil {
		return err
	}

	var from time.Time
	switch {
	case c.Date != "":
		from, err = cli.ResolveDate(c.Date)
		if err != nil {
			return err
		}
	case task.AssignedDate != "":
		from, err = utils.ParseDate(task.AssignedDate)
		if err != nil {
			from = utils.Today()
		}
	default:
		from = utils.Today()
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	nim := task.OwnerNIM
	if nim == "" {
		nim = settings.ActiveNIM
	}

	placement, ok := sched.FindSlot(tasks, nim, from, task.DurationMin, task.ID)
	if !ok {
		return fmt.Errorf("no free slot for %q within %d days of %s",
			task.Title, sched.Options().MaxDaysAhead, utils.FormatDate(from))
	}

	previous := cli.FormatPlacement(task)
	task.OwnerNIM = nim
	task.AssignedDate = placement.Date
	task.AssignedStart = placement.Start
	task.AssignedEnd = placement.End

	if err := ctx.Store.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Printf("Moved %q: %s -> %s\n", task.Title, previous, cli.FormatPlacement(task))
	return nil
}
