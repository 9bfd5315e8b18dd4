package physics

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// aim positions the electron and the in-flight photon so the next Step
// puts them on top of each other.
func aim(t *testing.T, a *Atom) {
	t.Helper()
	require.True(t, a.Incoming.Active, "aim needs a photon in flight")
	a.Angle = math.Pi/2 - a.Speed()
	a.Incoming.Pos = CenterY + Radius(a.Level) + PhotonStep
}

func selectColor(t *testing.T, a *Atom, name string) {
	t.Helper()
	for i := 0; i < len(Palette); i++ {
		if a.Current().Name == name {
			return
		}
		a.CycleColor()
	}
	t.Fatalf("palette has no %q", name)
}

func TestNewAtomStartsInGroundState(t *testing.T) {
	a := NewAtom()
	assert.Equal(t, GroundLevel, a.Level)
	assert.InDelta(t, DefaultSpeed, a.Speed(), 1e-9)
	assert.Equal(t, "Red", a.Current().Name)
	assert.False(t, a.Incoming.Active)
	assert.Equal(t, SpawnY, a.Incoming.Pos)
	assert.Zero(t, a.DecayRemaining(epoch))
}

func TestStepAdvancesOrbitAngle(t *testing.T) {
	a := NewAtom()
	a.Step(epoch)
	a.Step(epoch)
	assert.InDelta(t, 2*DefaultSpeed, a.Angle, 1e-9)
	x, y := a.Electron()
	r := Radius(GroundLevel)
	assert.InDelta(t, CenterX+r*math.Cos(a.Angle), x, 1e-9)
	assert.InDelta(t, CenterY+r*math.Sin(a.Angle), y, 1e-9)
}

func TestRadiusGrowsWithLevel(t *testing.T) {
	assert.Equal(t, 45.0, Radius(1))
	assert.Equal(t, 70.0, Radius(2))
	assert.Equal(t, 95.0, Radius(3))
	assert.Equal(t, 120.0, Radius(4))
}

func TestFireIgnoredWhileInFlight(t *testing.T) {
	a := NewAtom()
	require.True(t, a.Fire())
	a.Incoming.Pos = 100
	assert.False(t, a.Fire())
	assert.Equal(t, 100.0, a.Incoming.Pos, "second fire must not reset the photon")
}

func TestCycleColorWrapsAndKeepsInFlightPhoton(t *testing.T) {
	a := NewAtom()
	selectColor(t, a, "Blue")
	require.True(t, a.Fire())
	a.CycleColor()
	assert.Equal(t, "Red", a.Current().Name)
	assert.Equal(t, "Blue", a.Incoming.Photon.Name)
}

func TestPhotonLostPastTopEdge(t *testing.T) {
	a := NewAtom()
	a.Fire()
	a.Angle = 0
	a.speedSteps = minSpeedSteps
	a.Incoming.Pos = 2
	events := a.Step(epoch)
	require.Len(t, events, 1)
	assert.Equal(t, EventPhotonLost, events[0].Kind)
	assert.False(t, a.Incoming.Active)
	assert.Equal(t, SpawnY, a.Incoming.Pos)
	assert.Zero(t, a.Absorptions)
}

func TestPhotonTravelsUpward(t *testing.T) {
	a := NewAtom()
	a.Fire()
	a.Angle = 0
	a.Step(epoch)
	assert.True(t, a.Incoming.Active)
	assert.Equal(t, SpawnY-PhotonStep, a.Incoming.Pos)
}

func TestAbsorptionRules(t *testing.T) {
	cases := []struct {
		name      string
		level     int
		color     string
		wantLevel int
		wantCount int
		wantKind  EventKind
	}{
		{name: "blue from ground", level: 1, color: "Blue", wantLevel: 4, wantCount: 1, wantKind: EventAbsorbed},
		{name: "yellow one step", level: 2, color: "Yellow", wantLevel: 3, wantCount: 1, wantKind: EventAbsorbed},
		{name: "green to top", level: 2, color: "Green", wantLevel: 4, wantCount: 1, wantKind: EventAbsorbed},
		{name: "red never excites", level: 1, color: "Red", wantLevel: 1, wantCount: 0, wantKind: EventCollided},
		{name: "blue overshoots", level: 3, color: "Blue", wantLevel: 3, wantCount: 0, wantKind: EventCollided},
		{name: "yellow at top", level: 4, color: "Yellow", wantLevel: 4, wantCount: 0, wantKind: EventCollided},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAtom()
			a.Level = tc.level
			selectColor(t, a, tc.color)
			require.True(t, a.Fire())
			aim(t, a)

			events := a.Step(epoch)
			require.NotEmpty(t, events)
			assert.Equal(t, tc.wantKind, events[0].Kind)
			assert.Equal(t, tc.wantLevel, a.Level)
			assert.Equal(t, tc.wantCount, a.Absorptions)
			assert.False(t, a.Incoming.Active, "collision always consumes the photon")
			assert.Equal(t, SpawnY, a.Incoming.Pos)
		})
	}
}

func TestBlueAbsorptionThenDecay(t *testing.T) {
	a := NewAtom()
	selectColor(t, a, "Blue")
	a.Fire()
	aim(t, a)
	a.Step(epoch)
	require.Equal(t, 4, a.Level)
	require.Equal(t, 1, a.Absorptions)
	assert.Equal(t, DecayDelay, a.DecayRemaining(epoch))

	events := a.Step(epoch.Add(DecayDelay - time.Millisecond))
	assert.Empty(t, events)
	assert.Equal(t, 4, a.Level)

	events = a.Step(epoch.Add(DecayDelay))
	require.Len(t, events, 1)
	assert.Equal(t, EventDecayed, events[0].Kind)
	assert.Equal(t, 4, events[0].From)
	assert.Equal(t, GroundLevel, a.Level)
	assert.False(t, a.Excited())
	assert.True(t, a.Outgoing.Active)
	assert.Equal(t, CenterX+PhotonStep, a.Outgoing.Pos)

	var done bool
	for i := 0; i < 100 && !done; i++ {
		for _, ev := range a.Step(epoch.Add(DecayDelay + time.Duration(i+1)*16*time.Millisecond)) {
			if ev.Kind == EventEmissionDone {
				done = true
			}
		}
	}
	assert.True(t, done, "emitted photon should leave the right edge")
	assert.False(t, a.Outgoing.Active)
	assert.Greater(t, a.Outgoing.Pos, SceneWidth)
	assert.Equal(t, 1, a.Absorptions)
}

func TestDecayNeedsAbsorptionStamp(t *testing.T) {
	a := NewAtom()
	a.Level = 3
	events := a.Step(epoch.Add(time.Hour))
	assert.Empty(t, events)
	assert.Equal(t, 3, a.Level)
}

func TestRedNeverChangesState(t *testing.T) {
	a := NewAtom()
	for i := 0; i < 5; i++ {
		require.True(t, a.Fire())
		aim(t, a)
		a.Step(epoch.Add(time.Duration(i) * time.Second))
	}
	assert.Equal(t, GroundLevel, a.Level)
	assert.Zero(t, a.Absorptions)
}

func TestSpeedClamped(t *testing.T) {
	a := NewAtom()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			a.SpeedUp()
		} else {
			a.SpeedDown()
		}
		require.GreaterOrEqual(t, a.Speed(), MinSpeed-1e-12)
		require.LessOrEqual(t, a.Speed(), MaxSpeed+1e-12)
	}
	for i := 0; i < 20; i++ {
		a.SpeedUp()
	}
	assert.InDelta(t, MaxSpeed, a.Speed(), 1e-12)
	for i := 0; i < 20; i++ {
		a.SpeedDown()
	}
	assert.InDelta(t, MinSpeed, a.Speed(), 1e-12)
}

func TestLevelStaysInRangeUnderRandomPlay(t *testing.T) {
	a := NewAtom()
	rng := rand.New(rand.NewSource(42))
	now := epoch
	for i := 0; i < 5000; i++ {
		now = now.Add(time.Duration(rng.Intn(400)) * time.Millisecond)
		switch rng.Intn(6) {
		case 0:
			a.CycleColor()
		case 1:
			if a.Fire() && rng.Intn(2) == 0 {
				aim(t, a)
			}
		case 2:
			a.SpeedUp()
		case 3:
			a.SpeedDown()
		}
		a.Step(now)
		require.GreaterOrEqual(t, a.Level, GroundLevel)
		require.LessOrEqual(t, a.Level, MaxLevel)
	}
}

func TestResetKeepsColor(t *testing.T) {
	a := NewAtom()
	selectColor(t, a, "Green")
	a.SpeedUp()
	a.Fire()
	aim(t, a)
	a.Step(epoch)
	require.Equal(t, 3, a.Level)

	a.Reset()
	assert.Equal(t, GroundLevel, a.Level)
	assert.Zero(t, a.Absorptions)
	assert.InDelta(t, DefaultSpeed, a.Speed(), 1e-12)
	assert.Equal(t, "Green", a.Current().Name)
	assert.False(t, a.Excited())
}

func TestPhotonByName(t *testing.T) {
	p, ok := PhotonByName("Green")
	require.True(t, ok)
	assert.Equal(t, 2, p.Energy)
	_, ok = PhotonByName("Violet")
	assert.False(t, ok)
}
