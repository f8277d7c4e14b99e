package agenda

import (
	"github.com/julianstephens/energycoach/internal/logger"
	"github.com/julianstephens/energycoach/internal/models"
)

// CheckRollover returns a fresh empty agenda for today when a belongs to
// another day. The bool reports whether a reset happened.
func CheckRollover(a models.Agenda, today string) (models.Agenda, bool) {
	if a.Day == today {
		return a, false
	}
	return models.NewAgenda(today), true
}

// RolloverHook runs once per reset with the old and new day keys.
type RolloverHook func(from, to string)

// Monitor applies CheckRollover and notifies hooks on each reset.
type Monitor struct {
	hooks []RolloverHook
}

func NewMonitor(hooks ...RolloverHook) *Monitor {
	return &Monitor{hooks: hooks}
}

func (m *Monitor) OnRollover(h RolloverHook) {
	m.hooks = append(m.hooks, h)
}

func (m *Monitor) Check(a models.Agenda, today string) (models.Agenda, bool) {
	next, rolled := CheckRollover(a, today)
	if !rolled {
		return a, false
	}
	logger.Info("Day rolled over", "from", a.Day, "to", today)
	for _, h := range m.hooks {
		h(a.Day, today)
	}
	return next, true
}
