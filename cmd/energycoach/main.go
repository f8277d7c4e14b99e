package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/cli/agenda"
	"github.com/julianstephens/energycoach/internal/cli/pantry"
	"github.com/julianstephens/energycoach/internal/cli/settings"
	"github.com/julianstephens/energycoach/internal/cli/sleep"
	"github.com/julianstephens/energycoach/internal/cli/system"
	"github.com/julianstephens/energycoach/internal/constants"
	apperrors "github.com/julianstephens/energycoach/internal/errors"
	"github.com/julianstephens/energycoach/internal/keyring"
	"github.com/julianstephens/energycoach/internal/logger"
	"github.com/julianstephens/energycoach/internal/storage"
	"github.com/julianstephens/energycoach/internal/storage/postgres"
	"github.com/julianstephens/energycoach/internal/utils"
)

var CLI struct {
	Version     kong.VersionFlag
	Config      string `help:"Config file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use the OS keyring or ${env} instead." type:"string" default:"${config}"`
	Credentials string `help:"Google OAuth client secrets file for calendar access." type:"string" default:"${credentials}"`
	Debug       bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize energycoach storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Today    agenda.TodayCmd      `cmd:"" help:"Show today's agenda." default:"1"`
	Checkin  agenda.CheckInCmd    `cmd:"" help:"Check in: anchor today's agenda at the current time."`
	Edit     agenda.EditCmd       `cmd:"" help:"Edit a slot's time or note."`
	Suggest  agenda.SuggestCmd    `cmd:"" help:"Re-roll a slot's recipe or workout."`
	Watch    system.WatchCmd      `cmd:"" help:"Keep the agenda on screen and deliver reminders."`
	Pantry   pantry.PantryCmd     `cmd:"" help:"Manage pantry stock."`
	Sleep    sleep.SleepCmd       `cmd:"" help:"View and log sleep."`
	Calendar system.CalendarCmd   `cmd:"" help:"Show today's Google Calendar events."`
	Notify   system.NotifyCmd     `cmd:"" help:"Notification tools."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage database credentials in the OS keyring."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily energy routine: meals, movement and a quote, anchored to when you wake"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config":      constants.DefaultConfigPath,
			"credentials": constants.DefaultCredentials,
			"env":         constants.EnvDBConnection,
		},
	)

	configDir, err := utils.ExpandHome(filepath.Dir(constants.DefaultConfigPath))
	if err != nil {
		apperrors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		apperrors.Fatalf("failed to initialize logger: %v", err)
	}

	store, err := openStore(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:       store,
		Credentials: CLI.Credentials,
	}

	// Init handles its own loading.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	appCtx.Close()
	_ = store.Close()
	if err != nil {
		apperrors.Fatal(err)
	}
}

// openStore resolves the storage backend. With the default config the
// environment and then the keyring may supply a PostgreSQL connection; those
// sources are trusted to hold credentials.
func openStore(config string) (storage.Provider, error) {
	if config == constants.DefaultConfigPath {
		if conn := os.Getenv(constants.EnvDBConnection); conn != "" {
			logger.Debug("Using database connection from environment")
			return postgres.New(conn), nil
		}
		if conn, err := keyring.GetConnectionString(); err == nil {
			logger.Debug("Using database connection from keyring")
			return postgres.New(conn), nil
		}
	}

	store, err := cli.OpenStore(config)
	if err != nil {
		if errors.Is(err, cli.ErrEmbeddedCredentials) {
			return nil, fmt.Errorf("%w; use 'energycoach keyring set' or %s instead", err, constants.EnvDBConnection)
		}
		return nil, err
	}
	return store, nil
}
