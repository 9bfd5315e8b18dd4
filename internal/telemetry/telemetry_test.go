package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/fotoquantum/internal/physics"
	"github.com/csheth/fotoquantum/internal/star"
)

func TestRecorderCounts(t *testing.T) {
	r := New()
	blue, _ := physics.PhotonByName("Blue")
	r.PhotonFired(blue)
	r.PhotonFired(blue)
	r.AtomEvents([]physics.Event{{Kind: physics.EventAbsorbed, Photon: blue, From: 1, To: 4}})
	r.QuestionDrawn()
	r.StarPhase(star.PhaseShining)
	r.StaleTimer()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.photons.WithLabelValues("Blue")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.atomEvents.WithLabelValues("absorbed", "4")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.questions))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.starPhases.WithLabelValues("shining")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.staleTimers))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	r.PhotonFired(physics.Palette[0])
	r.QuestionDrawn()
	r.ModeSelected("quiz")
	assert.Nil(t, r.Registry())
	assert.NoError(t, r.WriteTextfile(filepath.Join(t.TempDir(), "m.prom")))
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.ModeSelected("star")
	path := filepath.Join(t.TempDir(), "fotoquantum.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `fotoquantum_mode_switches_total{mode="star"} 1`))
}
