package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/jeanfide/jadwalin/internal/constants"
	"github.com/jeanfide/jadwalin/internal/models"
	"github.com/jeanfide/jadwalin/internal/utils"
)

type AddCmd struct {
	Title      string `arg:"" optional:"" help:"Task title. Omit to use the interactive form."`
	Kind       string `short:"k" help:"Task kind (assignment|exam|lab|other)." default:"assignment"`
	Priority   int    `short:"p" help:"Priority (1-4, higher schedules earlier)." default:"2"`
	Difficulty int    `short:"d" help:"Difficulty tier; determines the study duration." default:"2"`
	Duration   int    `help:"Duration in minutes. Overrides the difficulty-derived duration."`
	Deadline   string `help:"Deadline (YYYY-MM-DD)."`
	Date       string `short:"t" help:"Earliest date to search from (YYYY-MM-DD or 'today')." default:"today"`
	Weekday    string `short:"w" help:"Indonesian weekday label (Senin..Minggu) instead of --date."`
	Week       int    `help:"Week-of-month occurrence (1-5) for --weekday." default:"1"`
	Month      int    `help:"Month (1-12) for --weekday. Defaults to the current month."`
	Year       int    `help:"Year for --weekday. Defaults to the current year."`
	NIM        string `help:"Owner NIM. Defaults to the active login."`
}

func (c *AddCmd) Validate() error {
	if c.Priority < constants.PriorityMin || c.Priority > constants.PriorityMax {
		return fmt.Errorf("priority must be between %d and %d", constants.PriorityMin, constants.PriorityMax)
	}
	if c.Difficulty < 1 {
		return fmt.Errorf("difficulty must be at least 1")
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must be positive")
	}
	if c.Deadline != "" {
		if _, err := utils.ParseDate(c.Deadline); err != nil {
			return fmt.Errorf("invalid deadline format (expected YYYY-MM-DD): %w", err)
		}
	}
	if c.Weekday != "" {
		if _, ok := utils.ParseWeekdayLabel(c.Weekday); !ok {
			return fmt.Errorf("unknown weekday label: %s (expected Senin..Minggu)", c.Weekday)
		}
		if c.Week < 1 || c.Week > 5 {
			return fmt.Errorf("--week must be between 1 and 5")
		}
	}
	if c.Month != 0 && (c.Month < 1 || c.Month > 12) {
		return fmt.Errorf("--month must be between 1 and 12")
	}
	if _, err := parseTaskKind(c.Kind); err != nil {
		return err
	}
	return nil
}

func (c *AddCmd) Run(ctx *Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	if c.Title == "" {
		if err := c.runIntakeForm(settings.DifficultyMax); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if c.Difficulty > settings.DifficultyMax {
		return fmt.Errorf("difficulty must be between 1 and %d", settings.DifficultyMax)
	}

	kind, err := parseTaskKind(c.Kind)
	if err != nil {
		return err
	}

	requested, err := c.requestedDate()
	if err != nil {
		return err
	}

	duration := c.Duration
	if duration == 0 {
		duration = models.DurationForDifficulty(c.Difficulty)
	}

	nim := c.NIM
	if nim == "" {
		nim = settings.ActiveNIM
	}
	if nim != "" {
		if _, ok := ctx.Directory.Lookup(nim); !ok {
			return fmt.Errorf("NIM %s is not registered in the directory", nim)
		}
	}

	item := models.PendingItem{
		ID:            uuid.New().String(),
		Title:         strings.TrimSpace(c.Title),
		Kind:          kind,
		Priority:      c.Priority,
		Difficulty:    c.Difficulty,
		DurationMin:   duration,
		Deadline:      c.Deadline,
		OwnerNIM:      nim,
		RequestedDate: utils.FormatDate(requested),
		CreatedAt:     time.Now(),
	}

	if err := ctx.Store.AddPendingItem(item); err != nil {
		return fmt.Errorf("failed to queue item: %w", err)
	}

	fmt.Printf("Queued: %s (%d min, searching from %s)\n", item.Title, item.DurationMin, item.RequestedDate)
	fmt.Println("Run 'jadwalin generate' to schedule the queue.")
	return nil
}

// requestedDate resolves the earliest search date from either --date or the
// weekday+week combination.
func (c *AddCmd) requestedDate() (time.Time, error) {
	if c.Weekday == "" {
		return ResolveDate(c.Date)
	}

	now := utils.Today()
	month := c.Month
	if month == 0 {
		month = int(now.Month())
	}
	year := c.Year
	if year == 0 {
		year = now.Year()
	}

	date, ok := utils.NthWeekday(c.Weekday, c.Week, month, year)
	if !ok {
		return time.Time{}, fmt.Errorf("no occurrence %d of %s in %d-%02d", c.Week, c.Weekday, year, month)
	}
	return date, nil
}

func (c *AddCmd) runIntakeForm(difficultyMax int) error {
	difficultyOptions := make([]huh.Option[int], 0, difficultyMax)
	for i := 1; i <= difficultyMax; i++ {
		difficultyOptions = append(difficultyOptions,
			huh.NewOption(fmt.Sprintf("%d (%d min)", i, models.DurationForDifficulty(i)), i))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&c.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Assignment", string(constants.TaskKindAssignment)),
					huh.NewOption("Exam prep", string(constants.TaskKindExam)),
					huh.NewOption("Lab report", string(constants.TaskKindLab)),
					huh.NewOption("Other", string(constants.TaskKindOther)),
				).
				Value(&c.Kind),
			huh.NewSelect[int]().
				Title("Priority").
				Options(
					huh.NewOption("1 (low)", 1),
					huh.NewOption("2", 2),
					huh.NewOption("3", 3),
					huh.NewOption("4 (urgent)", 4),
				).
				Value(&c.Priority),
			huh.NewSelect[int]().
				Title("Difficulty").
				Options(difficultyOptions...).
				Value(&c.Difficulty),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Description("Leave empty for no deadline").
				Value(&c.Deadline).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := utils.ParseDate(s); err != nil {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Search from (YYYY-MM-DD or 'today')").
				Value(&c.Date).
				Validate(func(s string) error {
					_, err := ResolveDate(s)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())

	return form.Run()
}

func parseTaskKind(s string) (constants.TaskKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "assignment":
		return constants.TaskKindAssignment, nil
	case "exam":
		return constants.TaskKindExam, nil
	case "lab":
		return constants.TaskKindLab, nil
	case "other":
		return constants.TaskKindOther, nil
	default:
		return "", fmt.Errorf("invalid task kind: %s", s)
	}
}
