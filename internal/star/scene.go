package star

import (
	"math/rand"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Scene is the Star mode presenter: the UV sequence plus a star field that is
// generated once and kept for the scene's lifetime.
type Scene struct {
	Sequence

	field   []Star
	noise   opensimplex.Noise
	mounted time.Time
}

// NewScene generates the star field from rng.
func NewScene(rng *rand.Rand, now time.Time) *Scene {
	return &Scene{
		field:   NewField(rng, FieldSize),
		noise:   opensimplex.NewNormalized(rng.Int63()),
		mounted: now,
	}
}

// Field returns the decorative stars.
func (s *Scene) Field() []Star {
	return s.field
}

// Twinkle returns the brightness of star i at now.
func (s *Scene) Twinkle(i int, now time.Time) float64 {
	return s.field[i].Brightness(now.Sub(s.mounted), s.noise)
}
