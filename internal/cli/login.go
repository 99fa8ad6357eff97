package cli

import (
	"fmt"

	"github.com/jeanfide/jadwalin/internal/constants"
)

type LoginCmd struct {
	NIM string `arg:"" help:"Student number (NIM) to activate."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	person, ok := ctx.Directory.Lookup(c.NIM)
	if !ok {
		return fmt.Errorf("NIM %s is not registered in the directory", c.NIM)
	}

	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	settings.ActiveNIM = person.NIM
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Logged in as %s (%s)\n", person.Name, person.NIM)
	fmt.Println("\nWeekly class schedule:")
	hasClasses := false
	for _, label := range constants.Weekdays {
		entries := person.ClassSchedule[label]
		if len(entries) == 0 {
			continue
		}
		hasClasses = true
		fmt.Printf("  %-7s", label)
		for i, entry := range entries {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(entry)
		}
		fmt.Println()
	}
	if !hasClasses {
		fmt.Println("  (none)")
	}
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	if settings.ActiveNIM == "" {
		fmt.Println("No active login.")
		return nil
	}
	settings.ActiveNIM = ""
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Logged out.")
	return nil
}

// PeopleCmd lists every person in the directory.
type PeopleCmd struct{}

func (c *PeopleCmd) Run(ctx *Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	people := ctx.Directory.People()
	if len(people) == 0 {
		fmt.Println("The person directory is empty.")
		return nil
	}

	for _, person := range people {
		marker := " "
		if person.NIM == settings.ActiveNIM {
			marker = "*"
		}
		classes := 0
		for _, entries := range person.ClassSchedule {
			classes += len(entries)
		}
		fmt.Printf("%s %s  %-30s  %d class blocks/week\n", marker, person.NIM, person.Name, classes)
	}
	return nil
}
