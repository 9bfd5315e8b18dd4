package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays sound cues.
type Player interface {
	Play(c Cue, energy int)
	Close()
}

// Mute is a Player that does nothing.
type Mute struct{}

func (Mute) Play(Cue, int) {}
func (Mute) Close()        {}

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeaker initialises the audio device and starts an always-on mixer.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(s.mixer)
	log.Printf("[audio] speaker ready (rate=%d, volume=%.2f)", SampleRate, volume)
	return s, nil
}

// Play queues a cue on the mixer.
func (s *Speaker) Play(c Cue, energy int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(Tone(c, energy, s.volume))
	speaker.Unlock()
}

// Close silences the mixer. Further cues are dropped.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Open returns a Speaker when enabled, falling back to Mute if the device
// cannot be opened.
func Open(enabled bool, volume float64) Player {
	if !enabled {
		return Mute{}
	}
	sp, err := NewSpeaker(volume)
	if err != nil {
		log.Printf("[audio] disabled: %v", err)
		return Mute{}
	}
	return sp
}
