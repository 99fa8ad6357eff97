package cli

import (
	"fmt"
	"sort"

	"github.com/jeanfide/jadwalin/internal/utils"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
	NIM  string `help:"Show only one person's schedule. Defaults to everyone."`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}
	dateStr := utils.FormatDate(date)

	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	var rows []int
	for i, task := range tasks {
		if task.AssignedDate != dateStr {
			continue
		}
		if c.NIM != "" && task.OwnerNIM != c.NIM {
			continue
		}
		rows = append(rows, i)
	}
	sort.Slice(rows, func(i, j int) bool {
		return tasks[rows[i]].AssignedStart < tasks[rows[j]].AssignedStart
	})

	fmt.Printf("Schedule for %s (%s):\n\n", utils.WeekdayLabel(date), dateStr)
	if len(rows) == 0 {
		fmt.Println("  No study sessions scheduled.")
	} else {
		for _, i := range rows {
			task := tasks[i]
			fmt.Printf("%s–%s  %-24s  [%s]  %s\n",
				task.AssignedStart, task.AssignedEnd, task.Title, task.Kind, ctx.OwnerLabel(task.OwnerNIM))
		}
	}

	// Show the class blocks that bounded the night window search.
	nim := c.NIM
	if nim == "" {
		nim = settings.ActiveNIM
	}
	if nim != "" {
		classes := ctx.Directory.ClassIntervals(nim, date)
		if len(classes) > 0 {
			fmt.Printf("\nClasses for %s:\n", ctx.OwnerLabel(nim))
			for _, class := range classes {
				fmt.Printf("  %s\n", class)
			}
		}
	}

	return nil
}
