package tasks

import (
	"fmt"
	"sort"

	"github.com/jeanfide/jadwalin/internal/cli"
	"github.com/jeanfide/jadwalin/internal/models"
)

type TaskListCmd struct {
	NIM string `help:"Show only one person's tasks."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	filtered := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if c.NIM != "" && task.OwnerNIM != c.NIM {
			continue
		}
		filtered = append(filtered, task)
	}

	if len(filtered) == 0 {
		fmt.Println("No tasks saved.")
		return nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].AssignedDate != filtered[j].AssignedDate {
			return filtered[i].AssignedDate < filtered[j].AssignedDate
		}
		return filtered[i].AssignedStart < filtered[j].AssignedStart
	})

	fmt.Printf("%d task(s):\n\n", len(filtered))
	for _, task := range filtered {
		deadline := "-"
		if task.Deadline != "" {
			deadline = task.Deadline
		}
		fmt.Printf("%-36s  %-22s  %-24s  [%-10s]  w=%d  deadline %s  %s\n",
			task.ID, cli.FormatPlacement(task), task.Title, task.Kind, task.Weight(),
			deadline, ctx.OwnerLabel(task.OwnerNIM))
	}
	return nil
}
