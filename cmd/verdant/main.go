package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"

	"github.com/jesswhitlock/verdant/internal/actions"
	"github.com/jesswhitlock/verdant/internal/cli"
	"github.com/jesswhitlock/verdant/internal/cli/backups"
	"github.com/jesswhitlock/verdant/internal/cli/plants"
	"github.com/jesswhitlock/verdant/internal/cli/suggest"
	"github.com/jesswhitlock/verdant/internal/cli/system"
	"github.com/jesswhitlock/verdant/internal/constants"
	"github.com/jesswhitlock/verdant/internal/errors"
	"github.com/jesswhitlock/verdant/internal/keyring"
	"github.com/jesswhitlock/verdant/internal/logger"
	"github.com/jesswhitlock/verdant/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use .pgpass, environment variables, or the OS keyring instead." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd     `cmd:"" help:"Initialize verdant storage."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd `cmd:"" help:"Check plants and history for inconsistencies."`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Due      cli.DueCmd         `cmd:"" help:"List plants that need watering."`
	Water    cli.WaterCmd       `cmd:"" help:"Record a watering."`
	Snooze   cli.SnoozeCmd      `cmd:"" help:"Push a plant's reminder out a few days."`
	Plant    struct {
		Add    plants.PlantAddCmd    `cmd:"" help:"Add a new plant."`
		List   plants.PlantListCmd   `cmd:"" help:"List all plants." default:"1"`
		Remove plants.PlantRemoveCmd `cmd:"" help:"Remove a plant (history is kept)."`
	} `cmd:"" help:"Manage plants."`
	Suggest struct {
		List    suggest.SuggestListCmd    `cmd:"" help:"Show watering interval suggestions." default:"1"`
		Accept  suggest.SuggestAcceptCmd  `cmd:"" help:"Adopt a suggested interval."`
		Dismiss suggest.SuggestDismissCmd `cmd:"" help:"Dismiss a suggested interval."`
	} `cmd:"" help:"Review watering interval suggestions."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage stored database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal plant-watering reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
			"snooze_days": cli.SnoozeDaysVar,
		},
	)

	config := expandHome(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configDirFor(config))}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store, err := selectStore(config)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:   store,
		Clock:   clockwork.NewRealClock(),
		Actions: actions.New(actions.DefaultConfig()),
	}

	// Init handles its own loading; everything else needs the store up
	// front.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" && !isKeyringCmd(ctx.Selected().Name) {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// selectStore picks a backend from the config value: a PostgreSQL
// connection string (explicit or stored in the OS keyring), a .db path
// for SQLite, or a JSON file path.
func selectStore(config string) (storage.Provider, error) {
	// A connection string stored in the OS keyring takes over only when
	// the user did not point --config somewhere explicit. A missing or
	// unavailable keyring falls through to the file store.
	if config == expandHome(constants.DefaultConfigPath) {
		if connStr, err := keyring.GetConnectionString(); err == nil {
			config = connStr
		}
	}

	if storage.IsPostgresConnString(config) {
		if storage.HasEmbeddedCredentials(config) {
			return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed; use 'verdant keyring set', environment variables, or .pgpass instead")
		}
		return storage.NewPostgresStore(config), nil
	}

	if strings.HasSuffix(config, ".db") {
		return storage.NewSQLiteStore(config), nil
	}

	return storage.NewJSONStore(config), nil
}

func isKeyringCmd(name string) bool {
	switch name {
	case "set", "get", "delete", "status":
		return true
	}
	return false
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// configDirFor returns a directory suitable for log output next to the
// store file. PostgreSQL stores fall back to the default config dir.
func configDirFor(config string) string {
	if storage.IsPostgresConnString(config) {
		return expandHome(constants.DefaultConfigPath)
	}
	return config
}
