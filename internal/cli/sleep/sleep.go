package sleep

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/sleep"
	"github.com/julianstephens/energycoach/internal/utils"
)

type SleepCmd struct {
	Show SleepShowCmd `cmd:"" help:"Show a night's sleep record." default:"1"`
	Set  SleepSetCmd  `cmd:"" help:"Update a sleep record from flags."`
	Log  SleepLogCmd  `cmd:"" help:"Log last night's sleep interactively."`
}

func resolveDay(ctx *cli.Context, day string) (string, error) {
	if day == "" {
		return ctx.App().TodayKey(), nil
	}
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", day)
	}
	return day, nil
}

type SleepShowCmd struct {
	Day string `arg:"" optional:"" help:"Wake day (YYYY-MM-DD), defaults to today."`
}

func (c *SleepShowCmd) Run(ctx *cli.Context) error {
	day, err := resolveDay(ctx, c.Day)
	if err != nil {
		return err
	}
	printEntry(ctx, ctx.App().Sleep(day))
	return nil
}

func printEntry(ctx *cli.Context, e models.SleepEntry) {
	loc := time.FixedZone("", e.TZOffsetMin*60)
	clockOf := func(t *time.Time) string {
		if t == nil {
			return "—"
		}
		return utils.ClockTime(t.In(loc))
	}
	ctx.Printf("Sleep for %s\n", e.Day)
	ctx.Printf("  Bed:      %s\n", clockOf(e.Bed))
	ctx.Printf("  Wake:     %s\n", clockOf(e.Wake))
	ctx.Printf("  Slept:    %s\n", sleep.FormatDuration(sleep.MinutesSlept(e)))
	ctx.Printf("  Quality:  %d/10\n", e.Quality)
	if e.Dream != "" {
		ctx.Printf("  Dream:    %s\n", e.Dream)
	}
}

type SleepSetCmd struct {
	Day     string  `help:"Wake day (YYYY-MM-DD), defaults to today."`
	Bed     *string `help:"Bed time (HH:MM)."`
	Wake    *string `help:"Wake time (HH:MM)."`
	Quality *int    `help:"Sleep quality from 1 to 10."`
	Dream   *string `help:"Dream notes."`
}

func (c *SleepSetCmd) Run(ctx *cli.Context) error {
	if c.Bed == nil && c.Wake == nil && c.Quality == nil && c.Dream == nil {
		return errors.New("nothing to update; pass --bed, --wake, --quality or --dream")
	}
	day, err := resolveDay(ctx, c.Day)
	if err != nil {
		return err
	}
	a := ctx.App()
	e, err := sleep.Update(a.Sleep(day), c.Bed, c.Wake, c.Quality, c.Dream, a.Now().Location())
	if err != nil {
		return err
	}
	if err := a.SaveSleep(e); err != nil {
		return fmt.Errorf("failed to save sleep record: %w", err)
	}
	printEntry(ctx, e)
	return nil
}

// sleepForm holds the string-typed form fields.
type sleepForm struct {
	Bed     string
	Wake    string
	Quality string
	Dream   string
}

func formFromEntry(e models.SleepEntry, loc *time.Location) sleepForm {
	fm := sleepForm{Quality: strconv.Itoa(e.Quality), Dream: e.Dream}
	if e.Bed != nil {
		fm.Bed = utils.ClockTime(e.Bed.In(loc))
	}
	if e.Wake != nil {
		fm.Wake = utils.ClockTime(e.Wake.In(loc))
	}
	return fm
}

// apply writes the form back; blank clock fields leave the record untouched.
func (fm sleepForm) apply(e models.SleepEntry, loc *time.Location) (models.SleepEntry, error) {
	var bed, wake *string
	if s := strings.TrimSpace(fm.Bed); s != "" {
		bed = &s
	}
	if s := strings.TrimSpace(fm.Wake); s != "" {
		wake = &s
	}
	quality, err := strconv.Atoi(strings.TrimSpace(fm.Quality))
	if err != nil {
		return e, fmt.Errorf("invalid quality %q", fm.Quality)
	}
	dream := strings.TrimSpace(fm.Dream)
	return sleep.Update(e, bed, wake, &quality, &dream, loc)
}

func validateClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if !utils.ValidateTimeFormat(strings.TrimSpace(s)) {
		return fmt.Errorf("use HH:MM")
	}
	return nil
}

func validateQuality(s string) error {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if i < 1 || i > 10 {
		return fmt.Errorf("quality must be 1-10")
	}
	return nil
}

func newSleepForm(fm *sleepForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Bed time (HH:MM)").
				Value(&fm.Bed).
				Validate(validateClock),
			huh.NewInput().
				Title("Wake time (HH:MM)").
				Value(&fm.Wake).
				Validate(validateClock),
			huh.NewInput().
				Title("Quality (1-10)").
				Value(&fm.Quality).
				Validate(validateQuality),
			huh.NewText().
				Title("Dreams").
				Value(&fm.Dream),
		),
	).WithTheme(huh.ThemeDracula())
}

type SleepLogCmd struct {
	Day string `help:"Wake day (YYYY-MM-DD), defaults to today."`
}

func (c *SleepLogCmd) Run(ctx *cli.Context) error {
	day, err := resolveDay(ctx, c.Day)
	if err != nil {
		return err
	}
	a := ctx.App()
	loc := a.Now().Location()
	e := a.Sleep(day)

	fm := formFromEntry(e, loc)
	if err := newSleepForm(&fm).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			ctx.Println("Cancelled.")
			return nil
		}
		return err
	}

	e, err = fm.apply(e, loc)
	if err != nil {
		return err
	}
	if err := a.SaveSleep(e); err != nil {
		return fmt.Errorf("failed to save sleep record: %w", err)
	}
	printEntry(ctx, e)
	return nil
}
