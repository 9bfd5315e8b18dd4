package content

// IconKind tags one of the built-in glyphs.
type IconKind int

const (
	IconAtom IconKind = iota
	IconQuiz
	IconStar
	IconInfo
)

var icons = map[IconKind][]string{
	IconAtom: {
		"╲ ╱",
		" ● ",
		"╱ ╲",
	},
	IconQuiz: {
		"╭─╮",
		" ╭╯",
		" • ",
	},
	IconStar: {
		" ╱╲ ",
		"<  >",
		" ╲╱ ",
	},
	IconInfo: {
		"╭─╮",
		"│i│",
		"╰─╯",
	},
}

var filledStar = []string{
	" ▲ ",
	"◀█▶",
	" ▼ ",
}

// Icon returns the glyph rows for kind. Only the star has a filled variant;
// filled is ignored for every other kind.
func Icon(kind IconKind, filled bool) []string {
	if kind == IconStar && filled {
		return filledStar
	}
	return icons[kind]
}

// Symbol returns a single-rune form of the icon for inline menus.
func Symbol(kind IconKind) string {
	switch kind {
	case IconAtom:
		return "⚛"
	case IconQuiz:
		return "?"
	case IconStar:
		return "☆"
	default:
		return "ℹ"
	}
}
