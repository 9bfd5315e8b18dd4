package tui

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/fotoquantum/internal/audio"
	"github.com/csheth/fotoquantum/internal/content"
	"github.com/csheth/fotoquantum/internal/star"
)

// starModel runs the UV-then-shine sequence with one-shot timers tagged by
// the sequence generation, and redraws the twinkling field on a slow frame
// tick.
type starModel struct {
	presenterDeps
	scene    *star.Scene
	spinner  spinner.Model
	phaseBar progress.Model
	now      time.Time
	closed   bool
}

func newStarModel(deps presenterDeps, rng *rand.Rand) *starModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	now := deps.clock()
	return &starModel{
		presenterDeps: deps,
		scene:         star.NewScene(rng, now),
		spinner:       spin,
		phaseBar:      progress.New(progress.WithSolidFill(string(quantumPurple)), progress.WithoutPercentage()),
		now:           now,
	}
}

func (m *starModel) Mode() content.Mode { return content.ModeStar }

func (m *starModel) Init() tea.Cmd {
	return m.timers.Frame(m.id, starFrameInterval)
}

func (m *starModel) Handle(msg tea.Msg) tea.Cmd {
	if m.closed {
		return nil
	}
	switch msg := msg.(type) {
	case frameMsg:
		m.now = msg.at
		return m.timers.Frame(m.id, starFrameInterval)
	case phaseMsg:
		return m.advance(msg)
	case spinner.TickMsg:
		if !m.scene.UVActive() {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (m *starModel) advance(msg phaseMsg) tea.Cmd {
	next, ok := m.scene.Advance(msg.gen, msg.at)
	if !ok {
		m.metrics.StaleTimer()
		log.Printf("[timers] %s ignored (gen=%d, current=%d)", msg.id, msg.gen, m.scene.Generation())
		return nil
	}
	m.now = msg.at
	phase := m.scene.Phase()
	m.metrics.StarPhase(phase)
	log.Printf("[timers] %s fired: %s", msg.id, phase)
	if phase == star.PhaseShining {
		m.audio.Play(audio.CueShine, 0)
	}
	if next.Wait == 0 {
		return nil
	}
	return m.timers.After(m.id, next.Gen, next.Wait)
}

func (m *starModel) Actions() []action {
	return []action{actionActivateUV}
}

func (m *starModel) Available(a action) bool {
	return a == actionActivateUV && !m.scene.Running()
}

func (m *starModel) Do(a action) tea.Cmd {
	if a != actionActivateUV {
		return nil
	}
	now := m.clock()
	timer, ok := m.scene.Trigger(now)
	if !ok {
		return nil
	}
	m.now = now
	m.metrics.StarPhase(star.PhaseUVGlow)
	m.audio.Play(audio.CueUV, 0)
	return tea.Batch(m.timers.After(m.id, timer.Gen, timer.Wait), m.spinner.Tick)
}

// Close cancels the running sequence so pending phase timers go stale.
func (m *starModel) Close() {
	m.closed = true
	m.scene.Cancel()
}

func (m *starModel) Stats() []string {
	return []string{fmt.Sprintf("Phase %s", phaseLabel(m.scene.Phase()))}
}

func phaseLabel(p star.Phase) string {
	switch p {
	case star.PhaseUVGlow:
		return "UV glow"
	case star.PhaseShining:
		return "shining"
	default:
		return "idle"
	}
}

func (m *starModel) View(l pageLayout) string {
	scene := sceneBoxStyle.Render(m.renderScene(l.canvasCols, l.canvasRows))

	var status string
	switch m.scene.Phase() {
	case star.PhaseUVGlow:
		m.phaseBar.Width = l.wrapWidth(36)
		status = fmt.Sprintf("%s UV light energising the star %s", m.spinner.View(), m.phaseBar.ViewAs(m.scene.Progress(m.now)))
	case star.PhaseShining:
		m.phaseBar.Width = l.wrapWidth(36)
		status = fmt.Sprintf("%s The star is shining!       %s", string(m.glyphs.twinkle[3]), m.phaseBar.ViewAs(m.scene.Progress(m.now)))
	default:
		status = "Activate the UV light to energise the star and watch it shine."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("STAR MODE"),
		scene,
		helperStyle.Render(status),
	)
}

func (m *starModel) renderScene(cols, rows int) string {
	c := newCanvas(cols, rows)
	if m.scene.UVActive() {
		c.tint(uvGlow)
	}
	for i, s := range m.scene.Field() {
		b := m.scene.Twinkle(i, m.now)
		level := int(b * float64(len(m.glyphs.twinkle)))
		if level >= len(m.glyphs.twinkle) {
			level = len(m.glyphs.twinkle) - 1
		}
		r := m.glyphs.twinkle[level]
		if s.Size < 2 && level > 1 {
			r = m.glyphs.twinkle[1]
		}
		c.plotPercent(s.Left, s.Top, r, twinkleStyles[level])
	}

	style := starDimStyle
	if m.scene.Shining() {
		style = starLitStyle
	}
	c.stamp(cols/2, rows/2, content.Icon(content.IconStar, m.scene.Shining()), style)
	return strings.TrimRight(c.String(), "\n")
}
