package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type action int

const (
	actionFire action = iota
	actionCycleColor
	actionSpeedUp
	actionSpeedDown
	actionResetAtom
	actionNextQuestion
	actionToggleAnswer
	actionActivateUV
)

type keyMap struct {
	Leap       key.Binding
	Quiz       key.Binding
	Star       key.Binding
	NextMode   key.Binding
	Help       key.Binding
	Quit       key.Binding
	InfoUp     key.Binding
	InfoDown   key.Binding
	Fire       key.Binding
	Cycle      key.Binding
	Faster     key.Binding
	Slower     key.Binding
	Reset      key.Binding
	NewQ       key.Binding
	Answer     key.Binding
	ActivateUV key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Leap:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "quantum leap")),
		Quiz:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "quiz")),
		Star:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "star")),
		NextMode:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next mode")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		InfoUp:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "scroll info up")),
		InfoDown:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "scroll info down")),
		Fire:       key.NewBinding(key.WithKeys(" ", "space", "f"), key.WithHelp("space/f", "fire photon")),
		Cycle:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "change photon")),
		Faster:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset atom")),
		NewQ:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new question")),
		Answer:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "show/hide answer")),
		ActivateUV: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "activate UV light")),
	}
}

// ShortHelp lists the shell bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Leap, k.Quiz, k.Star, k.NextMode, k.Help, k.Quit}
}

// FullHelp groups every binding for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Leap, k.Quiz, k.Star, k.NextMode},
		{k.Fire, k.Cycle, k.Faster, k.Slower, k.Reset},
		{k.NewQ, k.Answer, k.ActivateUV},
		{k.InfoUp, k.InfoDown, k.Help, k.Quit},
	}
}

func (k keyMap) binding(a action) key.Binding {
	switch a {
	case actionFire:
		return k.Fire
	case actionCycleColor:
		return k.Cycle
	case actionSpeedUp:
		return k.Faster
	case actionSpeedDown:
		return k.Slower
	case actionResetAtom:
		return k.Reset
	case actionNextQuestion:
		return k.NewQ
	case actionToggleAnswer:
		return k.Answer
	default:
		return k.ActivateUV
	}
}

// actionFor maps a key press to one of the active presenter's actions.
func (m *model) actionFor(msg tea.KeyMsg) (action, bool) {
	for _, a := range m.active.Actions() {
		if key.Matches(msg, m.keys.binding(a)) {
			return a, true
		}
	}
	return 0, false
}

// commandAvailable reports whether a control is currently enabled. Unknown
// actions for the active mode are never available.
func (m *model) commandAvailable(a action) bool {
	for _, candidate := range m.active.Actions() {
		if candidate == a {
			return m.active.Available(a)
		}
	}
	return false
}

func (m *model) runAction(a action) tea.Cmd {
	if !m.commandAvailable(a) {
		return nil
	}
	return m.active.Do(a)
}
