package cli

import (
	"fmt"
	"os"

	"github.com/jeanfide/jadwalin/internal/export"
)

type ExportCmd struct {
	Format string `short:"f" help:"Export format (csv|json)." enum:"csv,json" default:"csv"`
	Output string `short:"o" help:"Output file. Defaults to stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	w := os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, tasks, export.Format(c.Format)); err != nil {
		return err
	}

	if c.Output != "" {
		fmt.Printf("Exported %d task(s) to %s\n", len(tasks), c.Output)
	}
	return nil
}
