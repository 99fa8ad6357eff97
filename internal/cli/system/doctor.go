package system

import (
	"fmt"
	"os"
	"time"

	"github.com/jeanfide/jadwalin/internal/cli"
	"github.com/jeanfide/jadwalin/internal/interval"
	"github.com/jeanfide/jadwalin/internal/lockfile"
	"github.com/jeanfide/jadwalin/internal/utils"
	"github.com/jeanfide/jadwalin/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	// Check 2: settings sane (only if store is reachable)
	if storeReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (store not reachable)\n")
	}

	// Check 3: person directory
	if err := checkDirectory(ctx); err != nil {
		fmt.Printf("❌ Person directory: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Person directory: OK\n")
	}

	// Check 4: data validation (only if store is reachable)
	if storeReachable {
		if err := checkValidation(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (store not reachable)\n")
	}

	// Check 5: single writer (warning only)
	if err := checkSingleWriter(ctx); err != nil {
		fmt.Printf("⚠ Single writer: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single writer: OK\n")
	}

	// Check 6: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	start, err := utils.ParseClock(settings.NightStart)
	if err != nil {
		return fmt.Errorf("night window start is not HH:MM: %q", settings.NightStart)
	}
	end, err := utils.ParseClock(settings.NightEnd)
	if err != nil {
		return fmt.Errorf("night window end is not HH:MM: %q", settings.NightEnd)
	}
	if start >= end {
		return fmt.Errorf("night window start (%s) must be before end (%s)", settings.NightStart, settings.NightEnd)
	}
	if settings.MaxDaysAhead <= 0 {
		return fmt.Errorf("max days ahead must be positive, got %d", settings.MaxDaysAhead)
	}
	if settings.DifficultyMax < 1 {
		return fmt.Errorf("difficulty max must be at least 1, got %d", settings.DifficultyMax)
	}
	if settings.ActiveNIM != "" {
		if _, ok := ctx.Directory.Lookup(settings.ActiveNIM); !ok {
			return fmt.Errorf("active NIM %s is not in the directory", settings.ActiveNIM)
		}
	}
	return nil
}

func checkDirectory(ctx *cli.Context) error {
	people := ctx.Directory.People()
	if len(people) == 0 {
		return fmt.Errorf("the person directory is empty")
	}

	malformed := 0
	for _, person := range people {
		for _, entries := range person.ClassSchedule {
			for _, entry := range entries {
				if _, ok := interval.Parse(entry); !ok {
					malformed++
				}
			}
		}
	}
	if malformed > 0 {
		return fmt.Errorf("found %d malformed class schedule entries (expected HH:MM-HH:MM)", malformed)
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	result := validation.New(ctx.Directory).ValidateTasks(tasks)
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found, run 'jadwalin validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkSingleWriter(ctx *cli.Context) error {
	path := lockfile.Path(ctx.Store.GetConfigPath())
	pid, alive := lockfile.Holder(path)
	if alive && pid != os.Getpid() {
		return fmt.Errorf("another jadwalin process (pid %d) is using this store", pid)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
