package gui

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/fotoquantum/internal/content"
	"github.com/csheth/fotoquantum/internal/physics"
	"github.com/csheth/fotoquantum/internal/star"
)

// DebugPrint glyphs are 6x16 pixels.
const (
	glyphWidth = 6
	lineHeight = 16
)

var (
	backgroundColor = color.RGBA{R: 16, G: 0, B: 43, A: 255}
	panelColor      = color.RGBA{R: 36, G: 12, B: 70, A: 255}
	borderColor     = color.RGBA{R: 114, G: 9, B: 183, A: 255}
	orbitColor      = color.RGBA{R: 0, G: 187, B: 249, A: 120}
	nucleusColor    = color.RGBA{R: 247, G: 37, B: 133, A: 255}
	electronColor   = color.RGBA{R: 0, G: 245, B: 212, A: 255}
	uvColor         = color.RGBA{R: 114, G: 9, B: 183, A: 90}
	starDimColor    = color.RGBA{R: 120, G: 110, B: 90, A: 255}
	starLitColor    = color.RGBA{R: 254, G: 228, B: 64, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	now := g.clock()

	g.drawSidebar(screen)
	vector.DrawFilledRect(screen, sceneX, sceneY, physics.SceneWidth, physics.SceneHeight, panelColor, false)
	vector.StrokeRect(screen, sceneX, sceneY, physics.SceneWidth, physics.SceneHeight, 2, borderColor, false)

	s := g.shell
	var lines []string
	switch {
	case s.Atom != nil:
		drawAtom(screen, s.Atom)
		lines = atomReadout(s.Atom, now)
	case s.Quiz != nil:
		lines = g.quizLines()
	case s.Star != nil:
		drawStar(screen, s.Star, now)
		lines = starReadout(s.Star, now)
	}
	info := content.Describe(s.Mode())
	ebitenutil.DebugPrintAt(screen, strings.ToUpper(info.Name), sceneX, sceneY-lineHeight-8)
	if s.Quiz != nil {
		printLines(screen, lines, sceneX+12, sceneY+12)
	} else {
		printLines(screen, lines, sceneX, sceneY+physics.SceneHeight+6)
	}
	if s.Status != "" {
		ebitenutil.DebugPrintAt(screen, s.Status, 12, ScreenHeight-lineHeight-4)
	}
}

func (g *Game) drawSidebar(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "FotoQuantum", 12, 12)
	y := 44
	for i, m := range content.Modes {
		marker := "  "
		if m == g.shell.Mode() {
			marker = "> "
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s%d %s", marker, i+1, content.Describe(m).Name), 12, y)
		y += lineHeight
	}
	y += lineHeight

	var body string
	if g.help {
		body = helpText
	} else {
		info := content.Describe(g.shell.Mode())
		body = info.Title + "\n\n" + plain(info.Explanation)
	}
	width := (sceneX - 36) / glyphWidth
	printLines(screen, strings.Split(wordwrap.String(body, width), "\n"), 12, y)
}

const helpText = `1/2/3 or Tab: switch mode
Space: fire   C: colour
+/-: speed    R: reset
N: new question
A: show/hide answer
U: UV light
O: open question bank
?: help   Esc/Q: quit`

func plain(markdown string) string {
	return strings.NewReplacer("**", "", "*", "").Replace(markdown)
}

func printLines(screen *ebiten.Image, lines []string, x, y int) {
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x, y+i*lineHeight)
	}
}

func drawAtom(screen *ebiten.Image, a *physics.Atom) {
	cx, cy := toScreen(physics.CenterX, physics.CenterY)
	for level := physics.GroundLevel; level <= physics.MaxLevel; level++ {
		drawDashedCircle(screen, cx, cy, float32(physics.Radius(level)), orbitColor)
	}
	vector.DrawFilledCircle(screen, cx, cy, 8, nucleusColor, true)

	ex, ey := toScreen(a.Electron())
	vector.DrawFilledCircle(screen, ex, ey, 5, electronColor, true)

	if a.Incoming.Active {
		px, py := toScreen(physics.CenterX, a.Incoming.Pos)
		vector.DrawFilledCircle(screen, px, py, 4, hexColor(a.Incoming.Photon.Hex), true)
		vector.StrokeLine(screen, px, py, px, py+12, 2, hexColor(a.Incoming.Photon.Hex), true)
	}
	if a.Outgoing.Active {
		px, py := toScreen(a.Outgoing.Pos, physics.CenterY)
		vector.DrawFilledCircle(screen, px, py, 4, color.White, true)
		vector.StrokeLine(screen, px-12, py, px, py, 2, color.White, true)
	}
}

// drawDashedCircle strokes every other arc segment.
func drawDashedCircle(screen *ebiten.Image, cx, cy, r float32, clr color.Color) {
	const segments = 48
	for i := 0; i < segments; i += 2 {
		a0 := 2 * math.Pi * float64(i) / segments
		a1 := 2 * math.Pi * float64(i+1) / segments
		x0, y0 := cx+r*float32(math.Cos(a0)), cy+r*float32(math.Sin(a0))
		x1, y1 := cx+r*float32(math.Cos(a1)), cy+r*float32(math.Sin(a1))
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, true)
	}
}

func atomReadout(a *physics.Atom, now time.Time) []string {
	current := a.Current()
	lines := []string{
		fmt.Sprintf("Absorptions: %s   Level: %d (%s)", humanize.Comma(int64(a.Absorptions)), a.Level, humanize.Ordinal(a.Level)),
		fmt.Sprintf("Speed: %d   Photon: %s (+%d)", int(math.Round(a.Speed()*100)), current.Name, current.Energy),
	}
	if a.Excited() {
		lines = append(lines, fmt.Sprintf("Decay in %4.1fs", a.DecayRemaining(now).Seconds()))
	}
	return lines
}

func drawStar(screen *ebiten.Image, s *star.Scene, now time.Time) {
	if s.UVActive() {
		vector.DrawFilledRect(screen, sceneX, sceneY, physics.SceneWidth, physics.SceneHeight, uvColor, false)
	}
	for i, st := range s.Field() {
		b := s.Twinkle(i, now)
		x, y := toScreen(st.Left/100*physics.SceneWidth, st.Top/100*physics.SceneHeight)
		clr := color.RGBA{R: 255, G: 255, B: 255, A: uint8(60 + 195*b)}
		vector.DrawFilledCircle(screen, x, y, float32(st.Size)/2+0.5, clr, true)
	}

	cx, cy := toScreen(physics.CenterX, physics.CenterY)
	clr := starDimColor
	radius := float32(18)
	if s.Shining() {
		clr = starLitColor
		radius = 26
		// rays
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			dx, dy := float32(math.Cos(a)), float32(math.Sin(a))
			vector.StrokeLine(screen, cx+dx*(radius+4), cy+dy*(radius+4), cx+dx*(radius+18), cy+dy*(radius+18), 2, clr, true)
		}
	}
	vector.DrawFilledCircle(screen, cx, cy, radius, clr, true)
}

func starReadout(s *star.Scene, now time.Time) []string {
	switch s.Phase() {
	case star.PhaseUVGlow:
		return []string{fmt.Sprintf("UV light energising the star... %3.0f%%", s.Progress(now)*100)}
	case star.PhaseShining:
		return []string{"The star is shining!"}
	default:
		return []string{"Press U to activate the UV light."}
	}
}

func (g *Game) quizLines() []string {
	p := g.shell.Quiz
	width := int(physics.SceneWidth-24) / glyphWidth
	lines := strings.Split(wordwrap.String(p.Current().Question, width), "\n")
	lines = append(lines, "")
	if p.AnswerVisible() {
		lines = append(lines, strings.Split(wordwrap.String("Answer: "+p.Current().Answer, width), "\n")...)
		lines = append(lines, "", "N: new question   A: hide answer")
	} else {
		lines = append(lines, "N: new question   A: show answer")
	}
	return lines
}

// toScreen maps scene coordinates onto the scene panel.
func toScreen(x, y float64) (float32, float32) {
	return float32(sceneX + x), float32(sceneY + y)
}

// hexColor parses a palette colour, falling back to white.
func hexColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.White
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
