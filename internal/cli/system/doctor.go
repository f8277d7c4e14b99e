package system

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/keyring"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/notifier"
	"github.com/julianstephens/energycoach/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name     string
	warnOnly bool
	needsDB  bool
	run      func(ctx *cli.Context) error
}

var doctorChecks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Stored records", needsDB: true, run: checkRecords},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "Notification channel", warnOnly: true, run: checkChannel},
	{name: "OS keyring", warnOnly: true, run: checkKeyring},
	{name: "Calendar credentials", warnOnly: true, run: checkCalendarCredentials},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true

	for _, c := range doctorChecks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.name == "Database reachable" {
				dbReachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.Keys(""); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

// checkRecords verifies that every stored value is valid JSON of its type.
func checkRecords(ctx *cli.Context) error {
	keys, err := ctx.Store.Keys("")
	if err != nil {
		return err
	}
	var bad []string
	for _, key := range keys {
		raw, err := ctx.Store.Get(key)
		if err != nil {
			return err
		}
		var dst any
		switch {
		case key == constants.KeySettings:
			dst = &models.Settings{}
		case key == constants.KeyAgenda:
			dst = &models.Agenda{}
		case key == constants.KeyPantry:
			dst = &[]models.PantryItem{}
		case strings.HasPrefix(key, constants.KeySleepPrefix):
			dst = &models.SleepEntry{}
		default:
			dst = new(json.RawMessage)
		}
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			bad = append(bad, key)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("unreadable records (defaults will be used): %v", bad)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	settings := ctx.Settings()
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return fmt.Errorf("configured timezone %q is invalid: %w", settings.Timezone, err)
	}
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkChannel(ctx *cli.Context) error {
	ch := ctx.Channel
	if ch == nil {
		ch = notifier.Probe(ctx.Settings())
	}
	if p := ch.RequestPermission(); p != notifier.PermissionGranted {
		return fmt.Errorf("no delivery channel available (%s); reminders will only appear in 'watch'", p)
	}
	return nil
}

func checkKeyring(*cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}

func checkCalendarCredentials(ctx *cli.Context) error {
	if ctx.Credentials == "" {
		return fmt.Errorf("no credentials file configured")
	}
	path, err := utils.ExpandHome(ctx.Credentials)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("calendar disabled: %w", err)
	}
	return nil
}
