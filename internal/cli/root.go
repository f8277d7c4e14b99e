package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jmhodges/clock"

	"github.com/julianstephens/energycoach/internal/app"
	"github.com/julianstephens/energycoach/internal/calendar"
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/logger"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/notifier"
	"github.com/julianstephens/energycoach/internal/storage"
	"github.com/julianstephens/energycoach/internal/utils"
)

// Context is handed to every command's Run method.
type Context struct {
	Store       storage.Provider
	Clock       clock.Clock
	Out         io.Writer
	Credentials string // Google client secrets file

	// Channel overrides the probed notification channel when set.
	Channel notifier.Channel

	app *app.App
}

// Writer is the command output, stdout unless overridden.
func (c *Context) Writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes to the command output.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Writer(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Writer(), args...)
}

// Settings reads stored settings without building the full app.
func (c *Context) Settings() models.Settings {
	s := models.DefaultSettings()
	storage.GetJSON(c.Store, constants.KeySettings, &s)
	models.ApplyDefaultSettings(&s)
	return s
}

// App builds the composition root on first use. Capabilities are probed
// once here from the stored settings.
func (c *Context) App() *app.App {
	if c.app != nil {
		return c.app
	}
	settings := c.Settings()
	ch := c.Channel
	if ch == nil {
		ch = notifier.Probe(settings)
	}
	var cue notifier.Cue = notifier.NoopCue{}
	if settings.Notify.Sound {
		cue = notifier.NewTerminalBell(os.Stderr)
	}
	opts := app.Options{
		Channel: ch,
		Cue:     cue,
	}
	if src, err := c.CalendarSource(context.Background(), settings, nil); err == nil {
		opts.Calendar = src
	} else if !errors.Is(err, calendar.ErrNotAuthorized) && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("Calendar unavailable", "error", err)
	}
	c.app = app.New(c.Store, c.Clock, opts)
	return c.app
}

// CalendarSource builds the Google calendar source from the credentials file
// and the keyring token. authorize runs only when no token is cached.
func (c *Context) CalendarSource(ctx context.Context, settings models.Settings, authorize calendar.Authorizer) (calendar.Source, error) {
	if c.Credentials == "" {
		return nil, fmt.Errorf("no calendar credentials configured: %w", os.ErrNotExist)
	}
	path, err := utils.ExpandHome(c.Credentials)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	cfg, err := calendar.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	client, err := calendar.HTTPClient(ctx, cfg, authorize)
	if err != nil {
		return nil, err
	}
	return calendar.NewGoogleSource(ctx, client, settings.CalendarID)
}

func (c *Context) Close() {
	if c.app != nil {
		c.app.Close()
	}
}
