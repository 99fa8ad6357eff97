package cli

import "fmt"

type GenerateCmd struct {
	Keep bool `help:"Keep failed items in the queue for a later run."`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	sched, settings, err := ctx.NewScheduler()
	if err != nil {
		return err
	}

	queue, err := ctx.Store.GetQueue()
	if err != nil {
		return fmt.Errorf("failed to get queue: %w", err)
	}
	if len(queue) == 0 {
		fmt.Println("The queue is empty, nothing to schedule.")
		return nil
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	result := sched.RunBatch(queue, tasks, settings.ActiveNIM)

	// One snapshot write for the whole run.
	if err := ctx.Store.ReplaceTasks(result.Tasks); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	if err := ctx.Store.ClearQueue(); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	if c.Keep {
		for _, item := range result.Failed {
			if err := ctx.Store.AddPendingItem(item); err != nil {
				return fmt.Errorf("failed to re-queue item %s: %w", item.ID, err)
			}
		}
	}

	if len(result.Placed) > 0 {
		fmt.Printf("Scheduled %d task(s):\n\n", len(result.Placed))
		for _, task := range result.Placed {
			fmt.Printf("%s %s–%s  %-24s  %s\n",
				task.AssignedDate, task.AssignedStart, task.AssignedEnd, task.Title, ctx.OwnerLabel(task.OwnerNIM))
		}
	}

	if len(result.Failed) > 0 {
		fmt.Printf("\nCould not schedule %d item(s) within %d days:\n", len(result.Failed), sched.Options().MaxDaysAhead)
		for _, item := range result.Failed {
			fmt.Printf("  %-24s  %3d min  from %s\n", item.Title, item.DurationMin, item.RequestedDate)
		}
		if c.Keep {
			fmt.Println("Failed items were kept in the queue.")
		}
	}

	return nil
}
