package cli

import (
	"fmt"

	"github.com/jeanfide/jadwalin/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	validator := validation.New(ctx.Directory)
	result := validator.ValidateTasks(tasks)

	fmt.Print(result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found", len(result.Conflicts))
	}
	return nil
}
