package content

import "fmt"

// Mode selects which presenter the shell shows.
type Mode int

const (
	ModeQuantumLeap Mode = iota
	ModeQuiz
	ModeStar
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeQuantumLeap, ModeQuiz, ModeStar}

// Info carries the static copy shown next to a mode.
type Info struct {
	Name        string
	Slug        string
	Icon        IconKind
	Title       string
	Explanation string
}

var registry = map[Mode]Info{
	ModeQuantumLeap: {
		Name:  "Quantum Leap",
		Slug:  "leap",
		Icon:  IconAtom,
		Title: "What is a quantum leap?",
		Explanation: "An electron **absorbs** a photon with a specific energy to jump to a higher, " +
			"unstable energy level. After a short while it *decays* back to its stable ground state, " +
			"**emitting** a new photon. The colour of the light depends on the size of the energy jump.",
	},
	ModeQuiz: {
		Name:  "Quantum Quiz",
		Slug:  "quiz",
		Icon:  IconQuiz,
		Title: "Test your knowledge",
		Explanation: "Quantum mechanics can be counter-intuitive. This quiz checks some of the " +
			"fundamental ideas shown in the simulations. See how well you understand the quantum world!",
	},
	ModeStar: {
		Name:  "Star Simulation",
		Slug:  "star",
		Icon:  IconStar,
		Title: "Light & energy",
		Explanation: "Stars are giant fusion reactors that emit energy across the whole " +
			"electromagnetic spectrum. A star's colour is tied to its temperature and the elements it " +
			"contains. **Red** stars are cooler, while **blue** and *ultraviolet* stars are much hotter.",
	},
}

// Describe returns the copy for m.
func Describe(m Mode) Info {
	return registry[m]
}

func (m Mode) String() string {
	if info, ok := registry[m]; ok {
		return info.Slug
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Next returns the mode after m, wrapping around.
func (m Mode) Next() Mode {
	return Modes[(int(m)+1)%len(Modes)]
}

// ParseMode resolves a slug such as "leap", "quiz" or "star".
func ParseMode(slug string) (Mode, error) {
	for _, m := range Modes {
		if registry[m].Slug == slug {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want leap, quiz or star)", slug)
}
