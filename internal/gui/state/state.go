// Package state holds the desktop front end's mode switcher. It is driven by
// the game loop: every Tick advances the active scene, and star phases are
// applied by polling instead of timers.
package state

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/csheth/fotoquantum/internal/audio"
	"github.com/csheth/fotoquantum/internal/content"
	"github.com/csheth/fotoquantum/internal/physics"
	"github.com/csheth/fotoquantum/internal/quiz"
	"github.com/csheth/fotoquantum/internal/star"
	"github.com/csheth/fotoquantum/internal/telemetry"
)

// Action is a control of one of the modes.
type Action int

const (
	Fire Action = iota
	CycleColor
	SpeedUp
	SpeedDown
	ResetAtom
	NextQuestion
	ToggleAnswer
	ActivateUV
)

// Deps are shared by every mounted mode.
type Deps struct {
	Bank    quiz.Bank
	Rand    *rand.Rand
	Metrics *telemetry.Recorder
	Audio   audio.Player
}

// Shell owns the presenter of the active mode. Only the field for the active
// mode is non-nil.
type Shell struct {
	deps Deps
	mode content.Mode

	Atom *physics.Atom
	Quiz *quiz.Presenter
	Star *star.Scene

	Status string
}

// New mounts mode.
func New(deps Deps, mode content.Mode, now time.Time) *Shell {
	if deps.Audio == nil {
		deps.Audio = audio.Mute{}
	}
	if deps.Bank.Len() == 0 {
		deps.Bank = quiz.DefaultBank()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(now.UnixNano()))
	}
	s := &Shell{deps: deps}
	s.mount(mode, now)
	return s
}

// Mode returns the active mode.
func (s *Shell) Mode() content.Mode { return s.mode }

// Select switches modes. Selecting the active mode keeps its state.
func (s *Shell) Select(mode content.Mode, now time.Time) {
	if mode == s.mode {
		return
	}
	s.mount(mode, now)
}

// UseBank replaces the question bank and restarts the quiz if it is showing.
func (s *Shell) UseBank(bank quiz.Bank) {
	s.deps.Bank = bank
	if s.Quiz != nil {
		s.Quiz = quiz.NewPresenter(bank)
	}
	s.Status = fmt.Sprintf("Loaded %d questions.", bank.Len())
}

func (s *Shell) mount(mode content.Mode, now time.Time) {
	if s.Star != nil {
		s.Star.Cancel()
	}
	s.Atom, s.Quiz, s.Star = nil, nil, nil
	s.mode = mode
	s.Status = ""
	switch mode {
	case content.ModeQuiz:
		s.Quiz = quiz.NewPresenter(s.deps.Bank)
	case content.ModeStar:
		s.Star = star.NewScene(s.deps.Rand, now)
	default:
		s.mode = content.ModeQuantumLeap
		s.Atom = physics.NewAtom()
	}
	s.deps.Metrics.ModeSelected(s.mode.String())
	log.Printf("[shell] mount %s", s.mode)
}

// Available reports whether a control is enabled right now.
func (s *Shell) Available(a Action) bool {
	switch a {
	case Fire:
		return s.Atom != nil && !s.Atom.Incoming.Active
	case CycleColor, SpeedUp, SpeedDown, ResetAtom:
		return s.Atom != nil
	case NextQuestion, ToggleAnswer:
		return s.Quiz != nil
	case ActivateUV:
		return s.Star != nil && !s.Star.Running()
	}
	return false
}

// Do runs a control. Unavailable controls are ignored.
func (s *Shell) Do(a Action, now time.Time) {
	if !s.Available(a) {
		return
	}
	switch a {
	case Fire:
		if s.Atom.Fire() {
			s.deps.Metrics.PhotonFired(s.Atom.Incoming.Photon)
			s.deps.Audio.Play(audio.CueFire, s.Atom.Incoming.Photon.Energy)
		}
	case CycleColor:
		s.Atom.CycleColor()
	case SpeedUp:
		s.Atom.SpeedUp()
	case SpeedDown:
		s.Atom.SpeedDown()
	case ResetAtom:
		s.Atom.Reset()
	case NextQuestion:
		s.Quiz.Next(s.deps.Rand)
		s.deps.Metrics.QuestionDrawn()
	case ToggleAnswer:
		s.Quiz.ToggleAnswer()
		if s.Quiz.AnswerVisible() {
			s.deps.Metrics.AnswerRevealed()
		}
	case ActivateUV:
		if _, ok := s.Star.Trigger(now); ok {
			s.deps.Metrics.StarPhase(star.PhaseUVGlow)
			s.deps.Audio.Play(audio.CueUV, 0)
		}
	}
}

// Tick advances the active scene by one frame.
func (s *Shell) Tick(now time.Time) {
	switch {
	case s.Atom != nil:
		events := s.Atom.Step(now)
		s.deps.Metrics.AtomEvents(events)
		for _, ev := range events {
			s.react(ev)
		}
	case s.Star != nil:
		for _, p := range s.Star.Poll(now) {
			s.deps.Metrics.StarPhase(p)
			if p == star.PhaseShining {
				s.deps.Audio.Play(audio.CueShine, 0)
			}
		}
	}
}

func (s *Shell) react(ev physics.Event) {
	switch ev.Kind {
	case physics.EventAbsorbed:
		s.deps.Audio.Play(audio.CueAbsorb, ev.Photon.Energy)
		s.Status = fmt.Sprintf("%s photon absorbed: level %d -> %d", ev.Photon.Name, ev.From, ev.To)
	case physics.EventCollided:
		s.deps.Audio.Play(audio.CueCollide, ev.Photon.Energy)
		s.Status = fmt.Sprintf("%s photon was not absorbed", ev.Photon.Name)
	case physics.EventPhotonLost:
		s.Status = fmt.Sprintf("%s photon missed", ev.Photon.Name)
	case physics.EventDecayed:
		s.deps.Audio.Play(audio.CueDecay, ev.Photon.Energy)
		s.Status = fmt.Sprintf("Decayed from level %d, photon emitted", ev.From)
	}
}
