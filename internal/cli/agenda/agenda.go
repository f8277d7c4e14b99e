package agenda

import (
	"context"
	"errors"
	"fmt"

	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/constants"
	apperrors "github.com/julianstephens/energycoach/internal/errors"
	"github.com/julianstephens/energycoach/internal/models"
)

// CheckInCmd anchors today's agenda at the current time.
type CheckInCmd struct {
	Verbose bool `short:"v" help:"Print full recipe and workout notes."`
}

func (c *CheckInCmd) Run(ctx *cli.Context) error {
	a := ctx.App()
	ag := a.CheckIn()
	ctx.Printf("Checked in at %s.\n\n", a.Now().Format(constants.TimeFormat))
	cli.PrintAgenda(ctx.Writer(), ag, a.Now(), c.Verbose)
	return nil
}

// TodayCmd shows today's agenda and calendar.
type TodayCmd struct {
	Verbose  bool `short:"v" help:"Print full recipe and workout notes."`
	NoEvents bool `help:"Skip the calendar lookup."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	a := ctx.App()
	ag := a.Today()
	now := a.Now()
	cli.PrintAgenda(ctx.Writer(), ag, now, c.Verbose)
	if !c.NoEvents {
		cli.PrintEvents(ctx.Writer(), a.Events(context.Background()), now.Location())
	}
	return nil
}

type EditCmd struct {
	Time EditTimeCmd `cmd:"" help:"Move a slot to a new clock time."`
	Note EditNoteCmd `cmd:"" help:"Replace a slot's note."`
}

// EditTimeCmd moves one slot. Moving breakfast or lunch shifts the meals
// after it unless --no-cascade is given.
type EditTimeCmd struct {
	Slot      string `arg:"" enum:"breakfast,lunch,dinner,exercise" help:"Slot to move (breakfast, lunch, dinner, exercise)."`
	Time      string `arg:"" help:"New time (HH:MM)."`
	NoCascade bool   `help:"Only move this slot."`
}

func (c *EditTimeCmd) Run(ctx *cli.Context) error {
	kind, err := parseSlot(c.Slot)
	if err != nil {
		return err
	}
	a := ctx.App()
	ag, err := a.EditTime(kind, c.Time, !c.NoCascade)
	if err != nil {
		if errors.Is(err, apperrors.ErrPreconditionNotMet) {
			return errors.New("no check-in yet today; run 'energycoach checkin' first")
		}
		return err
	}
	ctx.Printf("%s moved to %s.\n\n", models.SlotLabel(kind), c.Time)
	cli.PrintAgenda(ctx.Writer(), ag, a.Now(), false)
	return nil
}

type EditNoteCmd struct {
	Slot string `arg:"" enum:"breakfast,lunch,dinner,exercise" help:"Slot to annotate (breakfast, lunch, dinner, exercise)."`
	Text string `arg:"" help:"New note text."`
}

func (c *EditNoteCmd) Run(ctx *cli.Context) error {
	kind, err := parseSlot(c.Slot)
	if err != nil {
		return err
	}
	if _, err := ctx.App().EditNote(kind, c.Text); err != nil {
		return err
	}
	ctx.Printf("%s note updated.\n", models.SlotLabel(kind))
	return nil
}

// SuggestCmd re-rolls a slot's note from the full library.
type SuggestCmd struct {
	Slot string `arg:"" enum:"breakfast,lunch,dinner,exercise" help:"Slot to re-roll (breakfast, lunch, dinner, exercise)."`
}

func (c *SuggestCmd) Run(ctx *cli.Context) error {
	kind, err := parseSlot(c.Slot)
	if err != nil {
		return err
	}
	ag, err := ctx.App().Reroll(kind)
	if err != nil {
		return err
	}
	ctx.Printf("New %s suggestion:\n\n%s\n", models.SlotLabel(kind), ag.Slot(kind).Note)
	return nil
}

func parseSlot(s string) (constants.SlotKind, error) {
	kind, ok := models.ParseSlotKind(s)
	if !ok {
		return "", fmt.Errorf("unknown slot %q", s)
	}
	return kind, nil
}
