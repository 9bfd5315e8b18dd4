package physics

import (
	"math"
	"time"
)

const (
	SceneWidth  = 300.0
	SceneHeight = 300.0
	CenterX     = SceneWidth / 2
	CenterY     = SceneHeight / 2

	// SpawnY is where fired photons enter the scene.
	SpawnY = SceneHeight - 20

	PhotonStep         = 3.0
	CollisionThreshold = 10.0
	DecayDelay         = 10 * time.Second

	GroundLevel = 1
	MaxLevel    = 4

	// Orbit speed is kept in hundredths of a radian per tick.
	minSpeedSteps     = 1
	maxSpeedSteps     = 10
	defaultSpeedSteps = 2
)

// MinSpeed and MaxSpeed bound the orbit speed in radians per tick.
const (
	MinSpeed     = float64(minSpeedSteps) / 100
	MaxSpeed     = float64(maxSpeedSteps) / 100
	DefaultSpeed = float64(defaultSpeedSteps) / 100
)

// EventKind classifies what happened during a Step.
type EventKind int

const (
	EventAbsorbed EventKind = iota
	EventCollided
	EventPhotonLost
	EventDecayed
	EventEmissionDone
)

func (k EventKind) String() string {
	switch k {
	case EventAbsorbed:
		return "absorbed"
	case EventCollided:
		return "collided"
	case EventPhotonLost:
		return "photon_lost"
	case EventDecayed:
		return "decayed"
	case EventEmissionDone:
		return "emission_done"
	default:
		return "unknown"
	}
}

// Event reports a state change produced by a Step. From and To hold the
// excitation level before and after the event.
type Event struct {
	Kind   EventKind
	Photon Photon
	From   int
	To     int
}

// Atom is the Quantum Leap scene: one electron orbiting a nucleus, a photon
// that can be fired at it and the photon it emits when it decays.
type Atom struct {
	Level       int
	Angle       float64
	Absorptions int
	Incoming    Beam
	Outgoing    Beam

	paletteIdx     int
	speedSteps     int
	lastAbsorption time.Time
}

// NewAtom returns an atom in its ground state with the default orbit speed.
func NewAtom() *Atom {
	a := &Atom{}
	a.Reset()
	return a
}

// Reset restores the initial state. The selected photon colour is kept.
func (a *Atom) Reset() {
	idx := a.paletteIdx
	*a = Atom{
		Level:      GroundLevel,
		Incoming:   Beam{Pos: SpawnY},
		Outgoing:   Beam{Pos: CenterX},
		paletteIdx: idx,
		speedSteps: defaultSpeedSteps,
	}
}

// Radius returns the orbit radius for an excitation level.
func Radius(level int) float64 {
	return float64(level)*25 + 20
}

// Electron returns the current electron position in scene coordinates.
func (a *Atom) Electron() (float64, float64) {
	r := Radius(a.Level)
	return CenterX + r*math.Cos(a.Angle), CenterY + r*math.Sin(a.Angle)
}

// Speed returns the orbit speed in radians per tick.
func (a *Atom) Speed() float64 {
	return float64(a.speedSteps) / 100
}

// SpeedUp raises the orbit speed by one step, up to MaxSpeed.
func (a *Atom) SpeedUp() {
	if a.speedSteps < maxSpeedSteps {
		a.speedSteps++
	}
}

// SpeedDown lowers the orbit speed by one step, down to MinSpeed.
func (a *Atom) SpeedDown() {
	if a.speedSteps > minSpeedSteps {
		a.speedSteps--
	}
}

// Current returns the palette entry the next Fire will use.
func (a *Atom) Current() Photon {
	return Palette[a.paletteIdx]
}

// CycleColor selects the next palette entry. A photon already in flight keeps
// the colour it was fired with.
func (a *Atom) CycleColor() {
	a.paletteIdx = (a.paletteIdx + 1) % len(Palette)
}

// Fire launches a photon of the current colour from the spawn point. It does
// nothing and returns false while another photon is in flight.
func (a *Atom) Fire() bool {
	if a.Incoming.Active {
		return false
	}
	a.Incoming = Beam{Active: true, Pos: SpawnY, Photon: a.Current()}
	return true
}

// Excited reports whether an absorption is waiting to decay.
func (a *Atom) Excited() bool {
	return a.Level > GroundLevel && !a.lastAbsorption.IsZero()
}

// DecayRemaining returns how long until the atom decays, or zero when it is
// not excited.
func (a *Atom) DecayRemaining(now time.Time) time.Duration {
	if !a.Excited() {
		return 0
	}
	left := DecayDelay - now.Sub(a.lastAbsorption)
	if left < 0 {
		return 0
	}
	return left
}

// Step advances the scene by one frame.
func (a *Atom) Step(now time.Time) []Event {
	var events []Event

	a.Angle += a.Speed()

	if a.Incoming.Active {
		if ev, ok := a.advanceIncoming(now); ok {
			events = append(events, ev)
		}
	}

	if a.Excited() && now.Sub(a.lastAbsorption) >= DecayDelay {
		from := a.Level
		a.Level = GroundLevel
		a.Outgoing = Beam{Active: true, Pos: CenterX, Photon: Photon{Name: "Emission", Hex: "#ffffff", ANSI: "15", Energy: from - GroundLevel}}
		a.lastAbsorption = time.Time{}
		events = append(events, Event{Kind: EventDecayed, Photon: a.Outgoing.Photon, From: from, To: GroundLevel})
	}

	if a.Outgoing.Active {
		a.Outgoing.Pos += PhotonStep
		if a.Outgoing.Pos > SceneWidth {
			a.Outgoing.Active = false
			events = append(events, Event{Kind: EventEmissionDone, Photon: a.Outgoing.Photon, From: a.Level, To: a.Level})
		}
	}
	return events
}

func (a *Atom) advanceIncoming(now time.Time) (Event, bool) {
	photon := a.Incoming.Photon
	y := a.Incoming.Pos - PhotonStep
	if y < 0 {
		a.Incoming = Beam{Pos: SpawnY}
		return Event{Kind: EventPhotonLost, Photon: photon, From: a.Level, To: a.Level}, true
	}

	ex, ey := a.Electron()
	if math.Hypot(CenterX-ex, y-ey) >= CollisionThreshold {
		a.Incoming.Pos = y
		return Event{}, false
	}

	a.Incoming = Beam{Pos: SpawnY}
	from := a.Level
	if photon.Energy > 0 && a.Level+photon.Energy <= MaxLevel {
		a.Level += photon.Energy
		a.Absorptions++
		a.lastAbsorption = now
		return Event{Kind: EventAbsorbed, Photon: photon, From: from, To: a.Level}, true
	}
	return Event{Kind: EventCollided, Photon: photon, From: from, To: from}, true
}
