package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/julianstephens/energycoach/internal/calendar"
	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/keyring"
)

type CalendarCmd struct {
	Login  bool `help:"Run the Google sign-in flow, replacing any cached token."`
	Logout bool `help:"Forget the cached calendar token."`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	if c.Login || c.Logout {
		if err := keyring.DeleteSecret(constants.OAuthKeyringUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("failed to clear cached calendar token: %w", err)
		}
	}
	if c.Logout {
		ctx.Println("✓ Calendar token removed")
		return nil
	}

	var authorize calendar.Authorizer
	if c.Login {
		authorize = calendar.WebAuthorizer(ctx.Writer())
	}

	settings := ctx.Settings()
	bg := context.Background()
	src, err := ctx.CalendarSource(bg, settings, authorize)
	if err != nil {
		return fmt.Errorf("calendar unavailable (credentials %s): %w", ctx.Credentials, err)
	}

	now := ctx.App().Now()
	fetchCtx, cancel := context.WithTimeout(bg, constants.CalendarFetchTimeout)
	defer cancel()
	events, err := src.TodayEvents(fetchCtx, now)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}
	if len(events) == 0 {
		ctx.Println("No events today.")
		return nil
	}
	cli.PrintEvents(ctx.Writer(), events, now.Location())
	return nil
}
