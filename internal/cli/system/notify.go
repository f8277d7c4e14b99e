package system

import (
	"fmt"

	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/notifier"
)

type NotifyCmd struct {
	Test NotifyTestCmd `cmd:"" help:"Send a test notification through the probed channel."`
}

type NotifyTestCmd struct {
	Title string `help:"Notification title." default:"Energy Coach"`
	Body  string `help:"Notification body." default:"Notifications are working."`
}

func (c *NotifyTestCmd) Run(ctx *cli.Context) error {
	a := ctx.App()
	ctx.Printf("Channel: %s\n", a.Channel.Name())

	perm := a.Channel.RequestPermission()
	if perm != notifier.PermissionGranted {
		ctx.Printf("Permission: %s\n", perm)
		ctx.Println("Start the tray app or configure --webhook in settings to receive reminders.")
		return nil
	}

	if a.Settings().Notify.Sound {
		a.Cue.Emit(constants.CueDurationMs, constants.CueFrequencyHz)
	}
	if err := a.Channel.Deliver(c.Title, c.Body); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	ctx.Println("✓ Notification sent")
	return nil
}
