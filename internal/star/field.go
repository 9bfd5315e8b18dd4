package star

import (
	"math"
	"math/rand"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// FieldSize is the number of decorative background stars.
const FieldSize = 50

// Star is one decorative background star. Top and Left are percentages of
// the scene.
type Star struct {
	Size   float64
	Top    float64
	Left   float64
	Delay  time.Duration
	Period time.Duration
}

// NewField scatters n stars with independent size, position and twinkle
// timing.
func NewField(rng *rand.Rand, n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			Size:   rng.Float64()*2 + 1,
			Top:    rng.Float64() * 100,
			Left:   rng.Float64() * 100,
			Delay:  time.Duration(rng.Float64() * float64(2*time.Second)),
			Period: time.Duration((rng.Float64()*3 + 2) * float64(time.Second)),
		}
	}
	return stars
}

// Brightness returns the star's twinkle intensity in [0, 1] after elapsed
// time. The triangle wave is roughened by noise so neighbouring stars do not
// pulse in lockstep.
func (s Star) Brightness(elapsed time.Duration, noise opensimplex.Noise) float64 {
	const floor = 0.25
	if elapsed < s.Delay || s.Period <= 0 {
		return floor
	}
	phase := math.Mod(float64(elapsed-s.Delay), float64(s.Period)) / float64(s.Period)
	wave := 1 - math.Abs(2*phase-1)
	level := floor + (1-floor)*wave
	if noise != nil {
		n := noise.Eval2(s.Left/7, elapsed.Seconds()*0.8)
		level *= 0.7 + 0.6*n
	}
	return math.Max(0, math.Min(1, level))
}
