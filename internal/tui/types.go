package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/csheth/fotoquantum/internal/content"
)

// presenter is the per-mode sub-model mounted by the shell. The shell owns
// exactly one at a time and drops it, with its timers, on every mode switch.
type presenter interface {
	ID() uuid.UUID
	Mode() content.Mode
	Init() tea.Cmd
	// Handle receives timer messages addressed to this presenter and any
	// other message the shell does not consume.
	Handle(msg tea.Msg) tea.Cmd
	Do(a action) tea.Cmd
	Available(a action) bool
	Actions() []action
	View(l pageLayout) string
	Stats() []string
	Close()
}

// frameMsg drives one animation frame of its owner.
type frameMsg struct {
	owner uuid.UUID
	at    time.Time
}

// phaseMsg fires when the star sequence run gen is due for its next phase.
type phaseMsg struct {
	id    string
	owner uuid.UUID
	gen   uint64
	at    time.Time
}

const heroTagline = "Light, energy and the quantum world."

const (
	defaultWindowWidth  = 100
	defaultWindowHeight = 34

	defaultSidebarWidth = 34
	compactSidebarWidth = 24
	minPanelWidth       = 30
	panelGap            = 2
	verticalChrome      = 14

	minCanvasRows = 9
	maxCanvasRows = 25

	// starFrameInterval paces the twinkle redraw; the star scene needs no
	// more than a handful of frames per second.
	starFrameInterval = 100 * time.Millisecond
)
