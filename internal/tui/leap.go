package tui

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/csheth/fotoquantum/internal/audio"
	"github.com/csheth/fotoquantum/internal/content"
	"github.com/csheth/fotoquantum/internal/physics"
)

// leapModel animates the Quantum Leap scene. It re-arms one frame tick per
// frame until the shell unmounts it.
type leapModel struct {
	presenterDeps
	atom     *physics.Atom
	interval time.Duration
	decayBar progress.Model
	now      time.Time
	status   string
	closed   bool
}

func newLeapModel(deps presenterDeps, interval time.Duration) *leapModel {
	return &leapModel{
		presenterDeps: deps,
		atom:          physics.NewAtom(),
		interval:      interval,
		decayBar:      progress.New(progress.WithGradient(string(quantumPink), string(quantumCyan)), progress.WithoutPercentage()),
		now:           deps.clock(),
		status:        "Pick a photon colour and fire it at the electron.",
	}
}

func (m *leapModel) Mode() content.Mode { return content.ModeQuantumLeap }

func (m *leapModel) Init() tea.Cmd {
	return m.timers.Frame(m.id, m.interval)
}

func (m *leapModel) Handle(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(frameMsg)
	if !ok || m.closed {
		return nil
	}
	m.now = frame.at
	m.apply(m.atom.Step(frame.at))
	return m.timers.Frame(m.id, m.interval)
}

func (m *leapModel) apply(events []physics.Event) {
	if len(events) == 0 {
		return
	}
	m.metrics.AtomEvents(events)
	for _, ev := range events {
		switch ev.Kind {
		case physics.EventAbsorbed:
			m.audio.Play(audio.CueAbsorb, ev.Photon.Energy)
			m.status = fmt.Sprintf("%s photon absorbed: level %d → %d.", ev.Photon.Name, ev.From, ev.To)
		case physics.EventCollided:
			m.audio.Play(audio.CueCollide, ev.Photon.Energy)
			if ev.Photon.Energy == 0 {
				m.status = fmt.Sprintf("%s photon has too little energy to excite the electron.", ev.Photon.Name)
			} else {
				m.status = fmt.Sprintf("%s photon would push the electron past level %d.", ev.Photon.Name, physics.MaxLevel)
			}
		case physics.EventPhotonLost:
			m.status = fmt.Sprintf("%s photon missed the electron.", ev.Photon.Name)
		case physics.EventDecayed:
			m.audio.Play(audio.CueDecay, ev.Photon.Energy)
			m.status = fmt.Sprintf("Electron decayed from level %d and emitted a photon.", ev.From)
		}
		log.Printf("[frames] %s %s (level %d → %d)", shortID(m.id), ev.Kind, ev.From, ev.To)
	}
}

func (m *leapModel) Actions() []action {
	return []action{actionFire, actionCycleColor, actionSpeedUp, actionSpeedDown, actionResetAtom}
}

func (m *leapModel) Available(a action) bool {
	switch a {
	case actionFire:
		return !m.atom.Incoming.Active
	case actionSpeedUp:
		return m.atom.Speed() < physics.MaxSpeed
	case actionSpeedDown:
		return m.atom.Speed() > physics.MinSpeed
	}
	return true
}

func (m *leapModel) Do(a action) tea.Cmd {
	switch a {
	case actionFire:
		if m.atom.Fire() {
			p := m.atom.Incoming.Photon
			m.metrics.PhotonFired(p)
			m.audio.Play(audio.CueFire, p.Energy)
			m.status = fmt.Sprintf("%s photon fired.", p.Name)
		}
	case actionCycleColor:
		m.atom.CycleColor()
	case actionSpeedUp:
		m.atom.SpeedUp()
	case actionSpeedDown:
		m.atom.SpeedDown()
	case actionResetAtom:
		m.atom.Reset()
		m.status = "Atom reset to the ground state."
	}
	return nil
}

func (m *leapModel) Close() {
	m.closed = true
}

func (m *leapModel) Stats() []string {
	return []string{
		fmt.Sprintf("Absorptions %s", humanize.Comma(int64(m.atom.Absorptions))),
		fmt.Sprintf("Level %d", m.atom.Level),
		fmt.Sprintf("Speed %d", int(math.Round(m.atom.Speed()*100))),
	}
}

func (m *leapModel) View(l pageLayout) string {
	scene := sceneBoxStyle.Render(m.renderScene(l.canvasCols, l.canvasRows))

	current := m.atom.Current()
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(current.Hex)).Render(string(m.glyphs.photon))
	readouts := []string{
		fmt.Sprintf("Absorptions: %s   Energy level: %s (%s)",
			readoutStyle.Render(humanize.Comma(int64(m.atom.Absorptions))),
			levelStyle.Render(fmt.Sprint(m.atom.Level)),
			humanize.Ordinal(m.atom.Level)),
		fmt.Sprintf("Electron speed: %s   Photon: %s %s (+%d)",
			readoutStyle.Render(fmt.Sprint(int(math.Round(m.atom.Speed()*100)))),
			swatch, current.Name, current.Energy),
	}
	if m.atom.Excited() {
		left := m.atom.DecayRemaining(m.now)
		m.decayBar.Width = l.wrapWidth(24)
		frac := 1 - float64(left)/float64(physics.DecayDelay)
		readouts = append(readouts, fmt.Sprintf("Decay in %4.1fs %s", left.Seconds(), m.decayBar.ViewAs(frac)))
	}
	readouts = append(readouts, helperStyle.Render(m.status))

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("QUANTUM LEAP"),
		scene,
		strings.Join(readouts, "\n"),
	)
}

func (m *leapModel) renderScene(cols, rows int) string {
	c := newCanvas(cols, rows)
	g := m.glyphs

	c.plot(physics.CenterX, physics.CenterY, g.nucleus, nucleusStyle)
	ex, ey := m.atom.Electron()
	c.plot(ex, ey, g.electron, electronStyle)
	if in := m.atom.Incoming; in.Active {
		c.plot(physics.CenterX, in.Pos, g.photon, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(in.Photon.Hex)))
	}
	if out := m.atom.Outgoing; out.Active {
		c.plot(out.Pos, physics.CenterY, g.emission, emissionStyle)
	}
	for level := physics.GroundLevel; level <= physics.MaxLevel; level++ {
		style := orbitStyle
		if level == m.atom.Level {
			style = electronStyle.Bold(false).Faint(true)
		}
		c.circle(physics.Radius(level), g.orbit, style)
	}
	return c.String()
}
