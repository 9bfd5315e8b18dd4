package tui

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type timerKind string

const timerKindPhase timerKind = "phase"

// timerBus hands out the tea.Tick commands presenters use to schedule work.
// Every message it produces names its owner so the shell can drop callbacks
// for presenters that are no longer mounted.
type timerBus struct {
	counter int64
	frames  int64
}

func newTimerBus() *timerBus {
	return &timerBus{}
}

func (b *timerBus) nextID(kind timerKind) string {
	idx := atomic.AddInt64(&b.counter, 1)
	return fmt.Sprintf("%s-%d", kind, idx)
}

// Frame schedules the next animation frame for owner.
func (b *timerBus) Frame(owner uuid.UUID, every time.Duration) tea.Cmd {
	atomic.AddInt64(&b.frames, 1)
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return frameMsg{owner: owner, at: t}
	})
}

// After schedules a star phase transition for run gen of owner.
func (b *timerBus) After(owner uuid.UUID, gen uint64, wait time.Duration) tea.Cmd {
	id := b.nextID(timerKindPhase)
	log.Printf("[timers] %s armed (owner=%s, gen=%d, wait=%s)", id, shortID(owner), gen, wait)
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return phaseMsg{id: id, owner: owner, gen: gen, at: t}
	})
}

// Frames reports how many frame ticks have been armed.
func (b *timerBus) Frames() int64 {
	return atomic.LoadInt64(&b.frames)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
