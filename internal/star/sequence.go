package star

import "time"

// Phase is a state of the UV-then-shine sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseUVGlow
	PhaseShining
)

const (
	UVDuration    = 9 * time.Second
	ShineDuration = 7 * time.Second
)

func (p Phase) String() string {
	switch p {
	case PhaseUVGlow:
		return "uv_glow"
	case PhaseShining:
		return "shining"
	default:
		return "idle"
	}
}

// Duration returns how long the sequence stays in the phase. Idle has no
// deadline.
func (p Phase) Duration() time.Duration {
	switch p {
	case PhaseUVGlow:
		return UVDuration
	case PhaseShining:
		return ShineDuration
	default:
		return 0
	}
}

// Timer asks the caller to invoke Advance with Gen after Wait.
type Timer struct {
	Gen  uint64
	Wait time.Duration
}

// Sequence is the Idle -> UVGlow -> Shining -> Idle state machine. Each run
// gets a generation number; callbacks carrying an older generation are
// ignored, which is how pending timers are cancelled.
type Sequence struct {
	phase     Phase
	gen       uint64
	enteredAt time.Time
}

// Phase returns the current phase.
func (s *Sequence) Phase() Phase { return s.phase }

// Generation identifies the current run.
func (s *Sequence) Generation() uint64 { return s.gen }

// Running reports whether a run is in progress.
func (s *Sequence) Running() bool { return s.phase != PhaseIdle }

// UVActive reports whether the UV glow is on.
func (s *Sequence) UVActive() bool { return s.phase == PhaseUVGlow }

// Shining reports whether the star is lit.
func (s *Sequence) Shining() bool { return s.phase == PhaseShining }

// Trigger starts a run and switches the UV glow on. It is a no-op returning
// false while a run is in progress.
func (s *Sequence) Trigger(now time.Time) (Timer, bool) {
	if s.Running() {
		return Timer{}, false
	}
	s.gen++
	s.enter(PhaseUVGlow, now)
	return Timer{Gen: s.gen, Wait: UVDuration}, true
}

// Advance performs the transition scheduled by a Timer. It returns false for a
// stale generation. A returned Timer with zero Wait means the run finished.
func (s *Sequence) Advance(gen uint64, now time.Time) (Timer, bool) {
	if gen != s.gen || !s.Running() {
		return Timer{}, false
	}
	switch s.phase {
	case PhaseUVGlow:
		s.enter(PhaseShining, now)
		return Timer{Gen: s.gen, Wait: ShineDuration}, true
	default:
		s.enter(PhaseIdle, now)
		return Timer{Gen: s.gen}, true
	}
}

// Poll applies every transition that is due at now and returns the phases
// entered, in order. Frame-driven callers use it instead of timers.
func (s *Sequence) Poll(now time.Time) []Phase {
	var entered []Phase
	for s.Running() {
		deadline := s.enteredAt.Add(s.phase.Duration())
		if now.Before(deadline) {
			break
		}
		if s.phase == PhaseUVGlow {
			s.enter(PhaseShining, deadline)
		} else {
			s.enter(PhaseIdle, deadline)
		}
		entered = append(entered, s.phase)
	}
	return entered
}

// Cancel returns to Idle and invalidates outstanding timers.
func (s *Sequence) Cancel() {
	s.gen++
	s.phase = PhaseIdle
	s.enteredAt = time.Time{}
}

// Progress returns how far the current phase has run, in [0, 1].
func (s *Sequence) Progress(now time.Time) float64 {
	d := s.phase.Duration()
	if d == 0 {
		return 0
	}
	p := float64(now.Sub(s.enteredAt)) / float64(d)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func (s *Sequence) enter(p Phase, at time.Time) {
	s.phase = p
	s.enteredAt = at
}
