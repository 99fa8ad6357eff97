package system

import (
	"fmt"

	"github.com/jeanfide/jadwalin/internal/cli"
	"github.com/jeanfide/jadwalin/internal/models"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Initialized jadwalin storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("Night window %s–%s, search horizon %d days.\n",
		settings.NightStart, settings.NightEnd, settings.MaxDaysAhead)
	return nil
}
