package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jeanfide/jadwalin/internal/cli"
	"github.com/jeanfide/jadwalin/internal/cli/system"
	"github.com/jeanfide/jadwalin/internal/cli/tasks"
	"github.com/jeanfide/jadwalin/internal/constants"
	"github.com/jeanfide/jadwalin/internal/directory"
	apperrors "github.com/jeanfide/jadwalin/internal/errors"
	"github.com/jeanfide/jadwalin/internal/keyring"
	"github.com/jeanfide/jadwalin/internal/lockfile"
	"github.com/jeanfide/jadwalin/internal/logger"
	"github.com/jeanfide/jadwalin/internal/storage"
)

var CLI struct {
	Version   kong.VersionFlag
	Config    string `help:"Store path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded; use the OS keyring, environment variables, or .pgpass." type:"string" default:"${config_path}"`
	Directory string `help:"Path to a JSON person directory. Defaults to the built-in demo directory." type:"path"`
	Debug     bool   `help:"Verbose logging to stderr."`

	Init     system.InitCmd   `cmd:"" help:"Initialize jadwalin storage."`
	Doctor   system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Login    cli.LoginCmd     `cmd:"" help:"Activate a student by NIM."`
	Logout   cli.LogoutCmd    `cmd:"" help:"Clear the active student."`
	People   cli.PeopleCmd    `cmd:"" help:"List the person directory."`
	Add      cli.AddCmd       `cmd:"" help:"Queue a study task for scheduling."`
	Generate cli.GenerateCmd  `cmd:"" help:"Schedule every queued task into the night window."`
	Day      cli.DayCmd       `cmd:"" help:"Show the schedule for a day."`
	Export   cli.ExportCmd    `cmd:"" help:"Export the saved schedule as CSV or JSON."`
	Validate cli.ValidateCmd  `cmd:"" help:"Check the saved schedule for conflicts."`
	Queue    struct {
		List  cli.QueueListCmd  `cmd:"" help:"List queued items." default:"1"`
		Clear cli.QueueClearCmd `cmd:"" help:"Remove every queued item."`
	} `cmd:"" help:"Inspect the pending queue."`
	Task struct {
		List     tasks.TaskListCmd     `cmd:"" help:"List saved tasks." default:"1"`
		Delete   tasks.TaskDeleteCmd   `cmd:"" help:"Delete a task."`
		Reassign tasks.TaskReassignCmd `cmd:"" help:"Find a new slot for an existing task."`
	} `cmd:"" help:"Manage saved tasks."`
	Timer struct {
		Countdown cli.TimerCountdownCmd `cmd:"" help:"Run a countdown timer." default:"1"`
		Pomodoro  cli.TimerPomodoroCmd  `cmd:"" help:"Run a pomodoro timer."`
	} `cmd:"" help:"Study timers."`
	Settings struct {
		Show cli.ConfigShowCmd `cmd:"" help:"Show the stored settings." default:"1"`
		Set  cli.ConfigSetCmd  `cmd:"" help:"Change the stored settings."`
	} `cmd:"" help:"Manage settings."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Night-window study scheduler for students"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := expandHome(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDirFor(configPath)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	store, err := selectStore(configPath)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	dir := directory.Default()
	if CLI.Directory != "" {
		dir, err = directory.LoadFile(CLI.Directory)
		if err != nil {
			apperrors.Fatal(err)
		}
	}

	// Advisory single-writer lock; a second process gets a warning, not a
	// refusal.
	if release, err := lockfile.Acquire(lockfile.Path(store.GetConfigPath())); err != nil {
		logger.Warn("Single-writer lock not acquired", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		defer release()
	}

	appCtx := &cli.Context{
		Store:     store,
		Directory: dir,
	}

	// Init bootstraps the store itself; everything else needs it loaded.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// selectStore picks a backend from the config value: a postgres:// string, a
// .json path, or the default SQLite file. When the config is untouched and
// the keyring holds a connection string, PostgreSQL wins.
func selectStore(config string) (storage.Provider, error) {
	if config == expandHome(constants.DefaultConfigPath) {
		if connStr, err := keyring.GetConnectionString(); err == nil {
			config = connStr
		} else if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("Keyring lookup failed", "error", err)
		}
	}

	if storage.IsPostgres(config) {
		if storage.HasEmbeddedCredentials(config) {
			return nil, errors.New("PostgreSQL connection strings with embedded credentials are not allowed; " +
				"store the full string with 'jadwalin keyring set', or use .pgpass or environment variables")
		}
		return storage.NewPostgresStore(config), nil
	}
	if strings.HasSuffix(config, ".json") {
		return storage.NewJSONStore(config), nil
	}
	return storage.NewSQLiteStore(config), nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func configDirFor(configPath string) string {
	if storage.IsPostgres(configPath) {
		if dir, err := os.UserConfigDir(); err == nil {
			return filepath.Join(dir, constants.AppName)
		}
		return os.TempDir()
	}
	return filepath.Dir(configPath)
}
