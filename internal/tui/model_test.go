package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/fotoquantum/internal/config"
	"github.com/csheth/fotoquantum/internal/content"
	"github.com/csheth/fotoquantum/internal/physics"
	"github.com/csheth/fotoquantum/internal/star"
	"github.com/csheth/fotoquantum/internal/telemetry"
)

var testEpoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T, mode string) (*model, *testClock) {
	t.Helper()
	clock := &testClock{now: testEpoch}
	settings := config.Default()
	settings.Seed = 7
	settings.Mode = mode
	teaModel, ok := New(Config{
		Settings: settings,
		Metrics:  telemetry.New(),
		Clock:    clock.Now,
	}).(*model)
	if !ok {
		t.Fatalf("expected *model, got %T", teaModel)
	}
	return teaModel, clock
}

func press(m *model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestStartsInConfiguredMode(t *testing.T) {
	m, _ := newTestModel(t, "star")
	if m.active.Mode() != content.ModeStar {
		t.Fatalf("expected star mode, got %v", m.active.Mode())
	}

	m, _ = newTestModel(t, "nonsense")
	if m.active.Mode() != content.ModeQuantumLeap {
		t.Fatalf("unknown mode should fall back to quantum leap, got %v", m.active.Mode())
	}
}

func TestModeKeysSwitchPresenter(t *testing.T) {
	m, _ := newTestModel(t, "leap")
	first := m.active.ID()

	if cmd := press(m, "1"); cmd != nil {
		t.Fatal("re-selecting the active mode should not schedule anything")
	}
	if m.active.ID() != first {
		t.Fatal("re-selecting the active mode should keep the presenter")
	}

	press(m, "2")
	if m.active.Mode() != content.ModeQuiz {
		t.Fatalf("expected quiz, got %v", m.active.Mode())
	}
	press(m, "tab")
	if m.active.Mode() != content.ModeStar {
		t.Fatalf("tab from quiz should select star, got %v", m.active.Mode())
	}
	press(m, "tab")
	if m.active.Mode() != content.ModeQuantumLeap {
		t.Fatalf("tab from star should wrap to quantum leap, got %v", m.active.Mode())
	}
	if m.active.ID() == first {
		t.Fatal("returning to a mode should mount a fresh presenter")
	}
	if m.switches != 3 {
		t.Fatalf("expected 3 switches, got %d", m.switches)
	}
}

func TestFrameAdvancesOwnedAtom(t *testing.T) {
	m, _ := newTestModel(t, "leap")
	leap := m.active.(*leapModel)
	armed := m.timers.Frames()

	_, cmd := m.Update(frameMsg{owner: leap.ID(), at: testEpoch})
	if cmd == nil {
		t.Fatal("a frame should re-arm the next frame")
	}
	if got := m.timers.Frames(); got != armed+1 {
		t.Fatalf("expected one more armed frame, got %d -> %d", armed, got)
	}
	if math.Abs(leap.atom.Angle-physics.DefaultSpeed) > 1e-9 {
		t.Fatalf("angle should advance by the default speed, got %f", leap.atom.Angle)
	}
}

func TestFrameForDiscardedPresenterIsDropped(t *testing.T) {
	m, _ := newTestModel(t, "leap")
	old := m.active.ID()
	press(m, "2", "1")
	fresh := m.active.(*leapModel)
	armed := m.timers.Frames()

	_, cmd := m.Update(frameMsg{owner: old, at: testEpoch})
	if cmd != nil {
		t.Fatal("stale frame should not re-arm a timer")
	}
	if fresh.atom.Angle != 0 {
		t.Fatalf("stale frame touched the new atom (angle=%f)", fresh.atom.Angle)
	}
	if m.stale != 1 {
		t.Fatalf("expected one dropped timer, got %d", m.stale)
	}
	if m.timers.Frames() != armed {
		t.Fatal("stale frame armed another frame")
	}
}

func TestBluePhotonAbsorbsThenDecays(t *testing.T) {
	m, _ := newTestModel(t, "leap")
	leap := m.active.(*leapModel)

	press(m, "c", "c", "c")
	if got := leap.atom.Current().Name; got != "Blue" {
		t.Fatalf("expected Blue selected, got %s", got)
	}
	press(m, "space")
	if !leap.atom.Incoming.Active {
		t.Fatal("space should fire a photon")
	}

	// Line the photon up with the electron at the bottom of its orbit.
	leap.atom.Angle = math.Pi/2 - leap.atom.Speed()
	ey := physics.CenterY + physics.Radius(physics.GroundLevel)
	leap.atom.Incoming.Pos = ey + physics.PhotonStep

	m.Update(frameMsg{owner: leap.ID(), at: testEpoch})
	if leap.atom.Level != 4 || leap.atom.Absorptions != 1 {
		t.Fatalf("expected level 4 after one absorption, got level %d count %d", leap.atom.Level, leap.atom.Absorptions)
	}

	m.Update(frameMsg{owner: leap.ID(), at: testEpoch.Add(physics.DecayDelay)})
	if leap.atom.Level != physics.GroundLevel {
		t.Fatalf("expected decay to ground level, got %d", leap.atom.Level)
	}
	if !leap.atom.Outgoing.Active {
		t.Fatal("decay should emit an outgoing photon")
	}
	start := leap.atom.Outgoing.Pos
	m.Update(frameMsg{owner: leap.ID(), at: testEpoch.Add(physics.DecayDelay + time.Second)})
	if leap.atom.Outgoing.Pos <= start {
		t.Fatal("emitted photon should travel right")
	}
}

func TestStarSequenceThroughPhaseMessages(t *testing.T) {
	m, clock := newTestModel(t, "star")
	st := m.active.(*starModel)

	if cmd := press(m, "u"); cmd == nil {
		t.Fatal("activating UV should schedule the phase timer")
	}
	if !st.scene.UVActive() {
		t.Fatalf("expected UV glow, got %v", st.scene.Phase())
	}
	gen := st.scene.Generation()

	clock.now = testEpoch.Add(time.Second)
	if cmd := press(m, "u"); cmd != nil {
		t.Fatal("activating UV mid-run should be a no-op")
	}
	if st.scene.Generation() != gen {
		t.Fatal("a second trigger must not start a new run")
	}

	_, cmd := m.Update(phaseMsg{owner: st.ID(), gen: gen, at: testEpoch.Add(star.UVDuration)})
	if !st.scene.Shining() || cmd == nil {
		t.Fatalf("expected shining with a follow-up timer, got %v", st.scene.Phase())
	}
	_, cmd = m.Update(phaseMsg{owner: st.ID(), gen: gen, at: testEpoch.Add(star.UVDuration + star.ShineDuration)})
	if st.scene.Running() || cmd != nil {
		t.Fatalf("expected idle with nothing scheduled, got %v", st.scene.Phase())
	}
}

func TestStarTimersCancelledOnModeSwitch(t *testing.T) {
	m, _ := newTestModel(t, "star")
	st := m.active.(*starModel)
	press(m, "u")
	gen := st.scene.Generation()

	press(m, "1")
	if st.scene.Running() {
		t.Fatal("unmounting the star scene should cancel its sequence")
	}
	leap := m.active.(*leapModel)

	_, cmd := m.Update(phaseMsg{owner: st.ID(), gen: gen, at: testEpoch.Add(star.UVDuration)})
	if cmd != nil {
		t.Fatal("stale phase timer should not schedule anything")
	}
	if st.scene.Phase() != star.PhaseIdle {
		t.Fatalf("stale timer advanced a discarded scene to %v", st.scene.Phase())
	}
	if m.active != presenter(leap) || m.stale != 1 {
		t.Fatalf("stale timer should be dropped by the shell (stale=%d)", m.stale)
	}
}

func TestQuizKeys(t *testing.T) {
	m, _ := newTestModel(t, "quiz")
	qm := m.active.(*quizModel)

	press(m, "a")
	if !qm.quiz.AnswerVisible() {
		t.Fatal("a should reveal the answer")
	}
	answer := strings.Fields(qm.quiz.Current().Answer)[0]
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if view := m.View(); !strings.Contains(view, answer) {
		t.Fatalf("view should show the answer, missing %q", answer)
	}

	before := qm.quiz.Index()
	press(m, "n")
	if qm.quiz.Index() == before {
		t.Fatal("n should draw a different question")
	}
	if qm.quiz.AnswerVisible() {
		t.Fatal("a new question should hide the answer")
	}
}

func TestViewShowsActiveMode(t *testing.T) {
	m, _ := newTestModel(t, "leap")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 34})

	cases := []struct {
		key    string
		header string
		menu   string
	}{
		{key: "1", header: "QUANTUM LEAP", menu: "Quantum Leap"},
		{key: "2", header: "QUANTUM QUIZ", menu: "Quantum Quiz"},
		{key: "3", header: "STAR MODE", menu: "Star Simulation"},
	}
	for _, tc := range cases {
		press(m, tc.key)
		view := m.View()
		if !strings.Contains(view, tc.header) {
			t.Fatalf("%s: missing header %q", tc.menu, tc.header)
		}
		if !strings.Contains(view, "▸ "+tc.key) {
			t.Fatalf("%s: active menu marker missing", tc.menu)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, "leap")
	press(m, "?")
	if !m.helpVisible || !strings.Contains(m.View(), "How to play") {
		t.Fatal("? should open the help panel")
	}
	press(m, "?")
	if m.helpVisible {
		t.Fatal("? should close the help panel")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, "leap")
	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should return tea.Quit")
	}
}
