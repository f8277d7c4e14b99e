package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/tui"
)

// WatchCmd keeps the agenda on screen and delivers reminders while it runs.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	a := ctx.App()
	a.StartReminders()
	defer a.Close()

	p := tea.NewProgram(tui.NewModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch view failed: %w", err)
	}
	return nil
}
