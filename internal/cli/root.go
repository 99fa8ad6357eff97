package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeanfide/jadwalin/internal/directory"
	"github.com/jeanfide/jadwalin/internal/models"
	"github.com/jeanfide/jadwalin/internal/scheduler"
	"github.com/jeanfide/jadwalin/internal/storage"
	"github.com/jeanfide/jadwalin/internal/utils"
)

type Context struct {
	Store     storage.Provider
	Directory *directory.Directory
}

// Settings returns the stored settings with defaults applied for any value
// that is missing or zero.
func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

// NewScheduler builds a slot-search engine from the stored settings.
func (c *Context) NewScheduler() (*scheduler.Scheduler, models.Settings, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, models.Settings{}, err
	}
	return scheduler.New(c.Directory, scheduler.OptionsFromSettings(settings)), settings, nil
}

// OwnerLabel renders a NIM with the person's name when the directory knows
// them.
func (c *Context) OwnerLabel(nim string) string {
	if nim == "" {
		return "-"
	}
	if person, ok := c.Directory.Lookup(nim); ok {
		return fmt.Sprintf("%s (%s)", person.Name, nim)
	}
	return nim
}

// ResolveDate parses a date argument that is either "today" or YYYY-MM-DD.
func ResolveDate(s string) (time.Time, error) {
	if strings.EqualFold(strings.TrimSpace(s), "today") {
		return utils.Today(), nil
	}
	date, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return date, nil
}

// FormatPlacement renders a task's assigned slot, or a marker when it has
// none yet.
func FormatPlacement(t models.Task) string {
	if !t.Scheduled() {
		return "unscheduled"
	}
	return fmt.Sprintf("%s %s–%s", t.AssignedDate, t.AssignedStart, t.AssignedEnd)
}
