package telemetry

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/csheth/fotoquantum/internal/physics"
	"github.com/csheth/fotoquantum/internal/star"
)

// Recorder counts what happened during a session. A nil *Recorder is valid
// and records nothing.
type Recorder struct {
	registry    *prometheus.Registry
	photons     *prometheus.CounterVec
	atomEvents  *prometheus.CounterVec
	questions   prometheus.Counter
	answers     prometheus.Counter
	starPhases  *prometheus.CounterVec
	modeSwitch  *prometheus.CounterVec
	staleTimers prometheus.Counter
}

// New registers the session counters on a private registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		photons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fotoquantum_photons_fired_total",
			Help: "Photons fired at the atom, by colour.",
		}, []string{"color"}),
		atomEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fotoquantum_atom_events_total",
			Help: "Simulation events produced by the Quantum Leap scene.",
		}, []string{"event", "level"}),
		questions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fotoquantum_quiz_questions_total",
			Help: "Questions drawn in the quiz.",
		}),
		answers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fotoquantum_quiz_answers_revealed_total",
			Help: "Times a quiz answer was revealed.",
		}),
		starPhases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fotoquantum_star_phases_total",
			Help: "Star sequence phases entered.",
		}, []string{"phase"}),
		modeSwitch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fotoquantum_mode_switches_total",
			Help: "Mode selections in the shell.",
		}, []string{"mode"}),
		staleTimers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fotoquantum_stale_timers_total",
			Help: "Timer callbacks dropped because their presenter was discarded.",
		}),
	}
	r.registry.MustRegister(r.photons, r.atomEvents, r.questions, r.answers, r.starPhases, r.modeSwitch, r.staleTimers)
	return r
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) PhotonFired(p physics.Photon) {
	if r == nil {
		return
	}
	r.photons.WithLabelValues(p.Name).Inc()
}

func (r *Recorder) AtomEvents(events []physics.Event) {
	if r == nil {
		return
	}
	for _, ev := range events {
		r.atomEvents.WithLabelValues(ev.Kind.String(), strconv.Itoa(ev.To)).Inc()
	}
}

func (r *Recorder) QuestionDrawn() {
	if r == nil {
		return
	}
	r.questions.Inc()
}

func (r *Recorder) AnswerRevealed() {
	if r == nil {
		return
	}
	r.answers.Inc()
}

func (r *Recorder) StarPhase(p star.Phase) {
	if r == nil {
		return
	}
	r.starPhases.WithLabelValues(p.String()).Inc()
}

func (r *Recorder) ModeSelected(slug string) {
	if r == nil {
		return
	}
	r.modeSwitch.WithLabelValues(slug).Inc()
}

func (r *Recorder) StaleTimer() {
	if r == nil {
		return
	}
	r.staleTimers.Inc()
}

// WriteTextfile dumps the counters in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
