// Package gui is the desktop front end. It draws the same three modes as the
// terminal UI with ebiten and advances them once per game tick.
package gui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/csheth/fotoquantum/internal/audio"
	"github.com/csheth/fotoquantum/internal/config"
	"github.com/csheth/fotoquantum/internal/content"
	"github.com/csheth/fotoquantum/internal/gui/state"
	"github.com/csheth/fotoquantum/internal/quiz"
	"github.com/csheth/fotoquantum/internal/telemetry"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 460

	sceneX = 300
	sceneY = 60
)

// Config wires a Game.
type Config struct {
	Settings config.Config
	Bank     quiz.Bank
	Metrics  *telemetry.Recorder
	Audio    audio.Player
	Clock    func() time.Time
}

// Game implements ebiten.Game.
type Game struct {
	shell   *state.Shell
	clock   func() time.Time
	prevKey map[ebiten.Key]bool
	help    bool

	// loaded receives the result of the file dialog, which runs off the
	// game loop.
	loaded  chan bankResult
	loading bool
}

type bankResult struct {
	bank quiz.Bank
	path string
	err  error
}

var modeKeys = map[ebiten.Key]content.Mode{
	ebiten.Key1: content.ModeQuantumLeap,
	ebiten.Key2: content.ModeQuiz,
	ebiten.Key3: content.ModeStar,
}

var actionKeys = map[ebiten.Key]state.Action{
	ebiten.KeySpace: state.Fire,
	ebiten.KeyF:     state.Fire,
	ebiten.KeyC:     state.CycleColor,
	ebiten.KeyEqual: state.SpeedUp,
	ebiten.KeyMinus: state.SpeedDown,
	ebiten.KeyR:     state.ResetAtom,
	ebiten.KeyN:     state.NextQuestion,
	ebiten.KeyA:     state.ToggleAnswer,
	ebiten.KeyU:     state.ActivateUV,
}

// NewGame mounts the configured start mode.
func NewGame(cfg Config) *Game {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	mode, err := content.ParseMode(cfg.Settings.Mode)
	if err != nil {
		log.Printf("[shell] %v, starting in %s", err, content.ModeQuantumLeap)
		mode = content.ModeQuantumLeap
	}
	deps := state.Deps{
		Bank:    cfg.Bank,
		Rand:    cfg.Settings.Rand(),
		Metrics: cfg.Metrics,
		Audio:   cfg.Audio,
	}
	return &Game{
		shell:   state.New(deps, mode, cfg.Clock()),
		clock:   cfg.Clock,
		prevKey: map[ebiten.Key]bool{},
		loaded:  make(chan bankResult, 1),
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}
	now := g.clock()

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for k, mode := range modeKeys {
		if justPressed(k) {
			g.shell.Select(mode, now)
		}
	}
	if justPressed(ebiten.KeyTab) {
		g.shell.Select(g.shell.Mode().Next(), now)
	}
	if justPressed(ebiten.KeySlash) {
		g.help = !g.help
	}
	for k, a := range actionKeys {
		if justPressed(k) {
			g.shell.Do(a, now)
		}
	}
	if justPressed(ebiten.KeyO) && !g.loading {
		g.loading = true
		go g.chooseBank()
	}

	select {
	case res := <-g.loaded:
		g.loading = false
		g.applyBank(res)
	default:
	}

	g.shell.Tick(now)
	return nil
}

func (g *Game) chooseBank() {
	path, err := zenity.SelectFile(
		zenity.Title("Open Question Bank"),
		zenity.FileFilters{{
			Name:     "Question banks",
			Patterns: []string{"*.yaml", "*.yml", "*.json"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			err = nil
		}
		g.loaded <- bankResult{err: err}
		return
	}
	bank, err := quiz.LoadBank(path)
	g.loaded <- bankResult{bank: bank, path: path, err: err}
}

func (g *Game) applyBank(res bankResult) {
	switch {
	case res.err != nil:
		log.Printf("[quiz] %v", res.err)
		g.shell.Status = fmt.Sprintf("Could not load questions: %v", res.err)
	case res.path == "":
		// cancelled
	default:
		log.Printf("[quiz] loaded %d questions from %s", res.bank.Len(), res.path)
		g.shell.UseBank(res.bank)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
