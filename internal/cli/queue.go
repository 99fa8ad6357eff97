package cli

import "fmt"

type QueueListCmd struct{}

func (c *QueueListCmd) Run(ctx *Context) error {
	queue, err := ctx.Store.GetQueue()
	if err != nil {
		return fmt.Errorf("failed to get queue: %w", err)
	}

	if len(queue) == 0 {
		fmt.Println("The queue is empty.")
		return nil
	}

	fmt.Printf("%d pending item(s):\n\n", len(queue))
	for _, item := range queue {
		deadline := "-"
		if item.Deadline != "" {
			deadline = item.Deadline
		}
		fmt.Printf("%-36s  %-24s  %-10s  w=%d  %3d min  from %s  deadline %s\n",
			item.ID, item.Title, item.Kind, item.Weight(), item.DurationMin, item.RequestedDate, deadline)
	}
	return nil
}

type QueueClearCmd struct{}

func (c *QueueClearCmd) Run(ctx *Context) error {
	queue, err := ctx.Store.GetQueue()
	if err != nil {
		return fmt.Errorf("failed to get queue: %w", err)
	}
	if len(queue) == 0 {
		fmt.Println("The queue is already empty.")
		return nil
	}

	if err := ctx.Store.ClearQueue(); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	fmt.Printf("Cleared %d pending item(s).\n", len(queue))
	return nil
}
