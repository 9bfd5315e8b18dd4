package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is used for every generated cue.
const SampleRate = beep.SampleRate(44100)

// Cue names a sound event.
type Cue int

const (
	CueFire Cue = iota
	CueAbsorb
	CueCollide
	CueDecay
	CueUV
	CueShine
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueAbsorb:
		return "absorb"
	case CueCollide:
		return "collide"
	case CueDecay:
		return "decay"
	case CueUV:
		return "uv"
	case CueShine:
		return "shine"
	default:
		return "unknown"
	}
}

// sine is a fixed-length sine oscillator with a linear attack/release.
type sine struct {
	freq     float64
	phase    float64
	pos      int
	total    int
	attack   int
	release  int
	rate     beep.SampleRate
	freqStep float64
}

func newSine(freq, sweep float64, d, attack, release time.Duration, rate beep.SampleRate) *sine {
	total := rate.N(d)
	s := &sine{
		freq:    freq,
		total:   total,
		attack:  rate.N(attack),
		release: rate.N(release),
		rate:    rate,
	}
	if total > 0 {
		s.freqStep = sweep / float64(total)
	}
	return s
}

func (s *sine) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		vol := 1.0
		if s.attack > 0 && s.pos < s.attack {
			vol = float64(s.pos) / float64(s.attack)
		}
		if left := s.total - s.pos; s.release > 0 && left < s.release {
			vol = float64(left) / float64(s.release)
		}
		v := math.Sin(2*math.Pi*s.phase) * vol
		samples[i][0] = v
		samples[i][1] = v

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.freq += s.freqStep
		s.pos++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

func withVolume(st beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol)}
}

// Tone builds the streamer for a cue. Absorption pitch rises with the photon
// energy.
func Tone(c Cue, energy int, volume float64) beep.Streamer {
	var st beep.Streamer
	switch c {
	case CueFire:
		st = newSine(660, 220, 60*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, SampleRate)
	case CueAbsorb:
		base := 440 * math.Pow(2, float64(energy)/3)
		st = beep.Mix(
			withVolume(newSine(base, 0, 250*time.Millisecond, 10*time.Millisecond, 150*time.Millisecond, SampleRate), 0.7),
			withVolume(newSine(base*2, 0, 250*time.Millisecond, 10*time.Millisecond, 80*time.Millisecond, SampleRate), 0.3),
		)
	case CueCollide:
		st = newSine(180, -60, 90*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, SampleRate)
	case CueDecay:
		st = newSine(880, -440, 400*time.Millisecond, 10*time.Millisecond, 250*time.Millisecond, SampleRate)
	case CueUV:
		st = newSine(220, 110, 600*time.Millisecond, 150*time.Millisecond, 300*time.Millisecond, SampleRate)
	case CueShine:
		st = beep.Mix(
			withVolume(newSine(523.25, 0, 800*time.Millisecond, 20*time.Millisecond, 600*time.Millisecond, SampleRate), 0.5),
			withVolume(newSine(659.25, 0, 800*time.Millisecond, 20*time.Millisecond, 600*time.Millisecond, SampleRate), 0.3),
			withVolume(newSine(783.99, 0, 800*time.Millisecond, 20*time.Millisecond, 600*time.Millisecond, SampleRate), 0.2),
		)
	default:
		return beep.Silence(0)
	}
	return withVolume(st, volume)
}
