package notifier

import (
	"io"
	"sync"
)

// Cue emits a short audible signal before a reminder.
type Cue interface {
	Emit(durationMs, frequencyHz int)
}

// NoopCue is silent.
type NoopCue struct{}

func (NoopCue) Emit(int, int) {}

// TerminalBell rings the terminal bell. Terminals pick their own pitch and
// length, so both arguments are advisory.
type TerminalBell struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTerminalBell(w io.Writer) *TerminalBell {
	return &TerminalBell{w: w}
}

func (b *TerminalBell) Emit(durationMs, frequencyHz int) {
	if b == nil || b.w == nil || durationMs <= 0 || frequencyHz <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = b.w.Write([]byte{'\a'})
}
