package tui

import (
	"log"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/csheth/fotoquantum/internal/audio"
	"github.com/csheth/fotoquantum/internal/config"
	"github.com/csheth/fotoquantum/internal/content"
	"github.com/csheth/fotoquantum/internal/quiz"
	"github.com/csheth/fotoquantum/internal/telemetry"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Settings config.Config
	Bank     quiz.Bank
	Metrics  *telemetry.Recorder
	Audio    audio.Player
	Rand     *rand.Rand
	// Clock defaults to time.Now.
	Clock func() time.Time
	// MarkdownStyle names the glamour style for explanations: "auto", a
	// standard style name, or "" for plain wrapped text.
	MarkdownStyle string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(cfg Config) tea.Model {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Audio == nil {
		cfg.Audio = audio.Mute{}
	}
	if cfg.Rand == nil {
		cfg.Rand = cfg.Settings.Rand()
	}
	if cfg.Bank.Len() == 0 {
		cfg.Bank = quiz.DefaultBank()
	}
	if cfg.Settings.FPS == 0 {
		cfg.Settings.FPS = config.Default().FPS
	}

	mode, err := content.ParseMode(cfg.Settings.Mode)
	if err != nil {
		log.Printf("[shell] %v; starting in %s", err, content.ModeQuantumLeap)
		mode = content.ModeQuantumLeap
	}

	m := &model{
		config: cfg,
		timers: newTimerBus(),
		keys:   newKeyMap(),
		help:   help.New(),
		info:   viewport.New(defaultSidebarWidth, minCanvasRows),
		layout: newPageLayout(),
		glyphs: glyphsFor(cfg.Settings.ASCII),
	}
	m.mount(mode)
	return m
}

type model struct {
	config Config
	timers *timerBus
	keys   keyMap
	help   help.Model
	info   viewport.Model
	layout pageLayout
	glyphs glyphSet

	active      presenter
	helpVisible bool
	stale       int
	switches    int
}

func (m *model) Init() tea.Cmd {
	return m.active.Init()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.refreshInfo()
		return m, nil
	case frameMsg:
		if !m.owns(msg.owner, "frame") {
			return m, nil
		}
		return m, m.active.Handle(msg)
	case phaseMsg:
		if !m.owns(msg.owner, msg.id) {
			return m, nil
		}
		return m, m.active.Handle(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, m.active.Handle(msg)
}

// owns reports whether a timer message belongs to the mounted presenter.
// Messages for discarded presenters are counted and dropped.
func (m *model) owns(owner uuid.UUID, what string) bool {
	if owner == m.active.ID() {
		return true
	}
	m.stale++
	m.config.Metrics.StaleTimer()
	log.Printf("[shell] dropped stale %s for %s (active=%s)", what, shortID(owner), shortID(m.active.ID()))
	return false
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible
		return nil
	case key.Matches(msg, m.keys.Leap):
		return m.switchTo(content.ModeQuantumLeap)
	case key.Matches(msg, m.keys.Quiz):
		return m.switchTo(content.ModeQuiz)
	case key.Matches(msg, m.keys.Star):
		return m.switchTo(content.ModeStar)
	case key.Matches(msg, m.keys.NextMode):
		return m.switchTo(m.active.Mode().Next())
	case key.Matches(msg, m.keys.InfoUp):
		m.info.LineUp(1)
		return nil
	case key.Matches(msg, m.keys.InfoDown):
		m.info.LineDown(1)
		return nil
	}
	if a, ok := m.actionFor(msg); ok {
		return m.runAction(a)
	}
	return nil
}

// switchTo replaces the active presenter. Selecting the active mode again
// keeps its state.
func (m *model) switchTo(mode content.Mode) tea.Cmd {
	if m.active != nil && m.active.Mode() == mode {
		return nil
	}
	m.mount(mode)
	return m.active.Init()
}

func (m *model) mount(mode content.Mode) {
	if m.active != nil {
		log.Printf("[shell] unmount %s (%s)", m.active.Mode(), shortID(m.active.ID()))
		m.active.Close()
		m.switches++
	}
	m.active = m.newPresenter(mode)
	m.config.Metrics.ModeSelected(mode.String())
	log.Printf("[shell] mount %s (%s)", mode, shortID(m.active.ID()))
	m.refreshInfo()
}

func (m *model) newPresenter(mode content.Mode) presenter {
	deps := presenterDeps{
		id:      uuid.New(),
		timers:  m.timers,
		clock:   m.config.Clock,
		metrics: m.config.Metrics,
		audio:   m.config.Audio,
		glyphs:  m.glyphs,
	}
	switch mode {
	case content.ModeQuiz:
		return newQuizModel(deps, m.config.Bank, m.config.Rand)
	case content.ModeStar:
		return newStarModel(deps, m.config.Rand)
	default:
		return newLeapModel(deps, m.config.Settings.FrameInterval())
	}
}

func (m *model) refreshInfo() {
	width := m.layout.sidebarWidth - 4
	m.info.Width = width
	m.info.Height = m.layout.infoHeight
	info := content.Describe(m.active.Mode())
	body := renderMarkdown(m.config.MarkdownStyle, width, info.Explanation)
	m.info.SetContent(lipgloss.JoinVertical(lipgloss.Left, infoTitleStyle.Render(info.Title), body))
	m.info.GotoTop()
}

// presenterDeps is what every presenter shares with the shell.
type presenterDeps struct {
	id      uuid.UUID
	timers  *timerBus
	clock   func() time.Time
	metrics *telemetry.Recorder
	audio   audio.Player
	glyphs  glyphSet
}

func (d presenterDeps) ID() uuid.UUID { return d.id }

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	quantumPink   = lipgloss.Color("#f72585")
	quantumPurple = lipgloss.Color("#7209b7")
	quantumCyan   = lipgloss.Color("#00f5d4")
	quantumBlue   = lipgloss.Color("#00bbf9")
	quantumYellow = lipgloss.Color("#fee440")
	quantumDark   = lipgloss.Color("#10002b")

	logoStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0def4"))
	logoAccentStyle = lipgloss.NewStyle().Bold(true).Foreground(quantumCyan)
	taglineStyle    = lipgloss.NewStyle().Foreground(quantumBlue).Italic(true)
	infoTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(quantumYellow)
	statusBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyOffStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e6a86")).Background(lipgloss.Color("#26233a")).Padding(0, 1)
	keyDescStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	keyDescOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e6a86")).Strikethrough(true)
	legendBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	helpBoxStyle    = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#7f5af0")).Padding(1, 2)
	sidebarStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(quantumPurple).Padding(0, 1)
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(quantumDark).Background(quantumCyan)
	menuStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	sceneBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(quantumBlue)
	readoutStyle    = lipgloss.NewStyle().Bold(true).Foreground(quantumYellow)
	levelStyle      = lipgloss.NewStyle().Bold(true).Foreground(quantumCyan)

	orbitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#1f6f8b"))
	nucleusStyle  = lipgloss.NewStyle().Bold(true).Foreground(quantumPink)
	electronStyle = lipgloss.NewStyle().Bold(true).Foreground(quantumCyan)
	emissionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))

	questionStyle  = lipgloss.NewStyle().Bold(true).Foreground(quantumCyan)
	answerBoxStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(quantumPurple).Padding(0, 1)

	starDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4b5563"))
	starLitStyle  = lipgloss.NewStyle().Bold(true).Foreground(quantumYellow)
	uvGlow        = lipgloss.Color("#4c1d95")
	twinkleStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#4b5563")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#e5e7eb")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
	}
)
