package physics

// Photon is one entry of the fixed colour palette the player can fire.
type Photon struct {
	Name   string
	Hex    string
	ANSI   string
	Energy int
}

// Palette is ordered by increasing energy. Red carries no energy and never
// excites the atom.
var Palette = []Photon{
	{Name: "Red", Hex: "#ef4444", ANSI: "196", Energy: 0},
	{Name: "Yellow", Hex: "#facc15", ANSI: "220", Energy: 1},
	{Name: "Green", Hex: "#4ade80", ANSI: "84", Energy: 2},
	{Name: "Blue", Hex: "#60a5fa", ANSI: "75", Energy: 3},
}

// PhotonByName looks up a palette entry, case-sensitively.
func PhotonByName(name string) (Photon, bool) {
	for _, p := range Palette {
		if p.Name == name {
			return p, true
		}
	}
	return Photon{}, false
}

// Beam is a photon travelling through the scene along one axis.
type Beam struct {
	Active bool
	Pos    float64
	Photon Photon
}
