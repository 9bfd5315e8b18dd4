package tuitest

import "time"

var (
	// KeyEnter sends a carriage return.
	KeyEnter = []byte{'\r'}
	// KeyCtrlC asks the program to terminate.
	KeyCtrlC = []byte{3}
	// KeyEsc closes overlays.
	KeyEsc = []byte{27}
	// KeyTab cycles modes.
	KeyTab = []byte{'\t'}
	// KeySpace fires a photon in Quantum Leap mode.
	KeySpace = []byte{' '}
)

// Script builds a Step list fluently.
type Script struct {
	steps []Step
}

// Wait pauses before the next input.
func (s *Script) Wait(d time.Duration) *Script {
	s.steps = append(s.steps, Step{Delay: d})
	return s
}

// WaitFor blocks the script until the screen shows text.
func (s *Script) WaitFor(text string) *Script {
	s.steps = append(s.steps, Step{Until: text})
	return s
}

// Press sends each key as its own write so the program sees separate key
// events.
func (s *Script) Press(keys ...[]byte) *Script {
	for _, k := range keys {
		s.steps = append(s.steps, Step{Input: k})
	}
	return s
}

// Type sends every rune of text as a separate key press.
func (s *Script) Type(text string) *Script {
	for _, r := range text {
		s.steps = append(s.steps, Step{Input: []byte(string(r))})
	}
	return s
}

// Steps returns the scripted steps.
func (s *Script) Steps() []Step {
	return append([]Step(nil), s.steps...)
}
