package cli

import (
	"fmt"

	"github.com/jeanfide/jadwalin/internal/utils"
)

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	fmt.Printf("Night window:    %s–%s\n", settings.NightStart, settings.NightEnd)
	fmt.Printf("Search horizon:  %d days\n", settings.MaxDaysAhead)
	fmt.Printf("Difficulty max:  %d\n", settings.DifficultyMax)
	if settings.ActiveNIM != "" {
		fmt.Printf("Logged in as:    %s\n", ctx.OwnerLabel(settings.ActiveNIM))
	} else {
		fmt.Println("Logged in as:    (nobody)")
	}
	fmt.Printf("Store:           %s\n", ctx.Store.GetConfigPath())
	return nil
}

type ConfigSetCmd struct {
	NightStart    string `help:"Night window start (HH:MM)."`
	NightEnd      string `help:"Night window end (HH:MM)."`
	MaxDaysAhead  int    `help:"Slot search horizon in days."`
	DifficultyMax int    `help:"Upper difficulty bound for intake (3 or 4)."`
}

func (c *ConfigSetCmd) Validate() error {
	if c.NightStart != "" {
		if _, err := utils.ParseClock(c.NightStart); err != nil {
			return fmt.Errorf("invalid night-start (expected HH:MM): %w", err)
		}
	}
	if c.NightEnd != "" {
		if _, err := utils.ParseClock(c.NightEnd); err != nil {
			return fmt.Errorf("invalid night-end (expected HH:MM): %w", err)
		}
	}
	if c.MaxDaysAhead < 0 {
		return fmt.Errorf("max-days-ahead must be positive")
	}
	if c.DifficultyMax != 0 && (c.DifficultyMax < 3 || c.DifficultyMax > 4) {
		return fmt.Errorf("difficulty-max must be 3 or 4")
	}
	return nil
}

func (c *ConfigSetCmd) Run(ctx *Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	if c.NightStart != "" {
		settings.NightStart = c.NightStart
	}
	if c.NightEnd != "" {
		settings.NightEnd = c.NightEnd
	}
	if c.MaxDaysAhead > 0 {
		settings.MaxDaysAhead = c.MaxDaysAhead
	}
	if c.DifficultyMax > 0 {
		settings.DifficultyMax = c.DifficultyMax
	}

	start, _ := utils.ParseClock(settings.NightStart)
	end, _ := utils.ParseClock(settings.NightEnd)
	if start >= end {
		return fmt.Errorf("night window start (%s) must be before end (%s)", settings.NightStart, settings.NightEnd)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Settings saved. Night window %s–%s, horizon %d days, difficulty max %d.\n",
		settings.NightStart, settings.NightEnd, settings.MaxDaysAhead, settings.DifficultyMax)
	return nil
}
