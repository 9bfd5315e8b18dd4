package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/fotoquantum/internal/physics"
)

// glyphSet holds the runes used to draw scenes.
type glyphSet struct {
	orbit    rune
	nucleus  rune
	electron rune
	photon   rune
	emission rune
	twinkle  []rune
}

func glyphsFor(ascii bool) glyphSet {
	if ascii {
		return glyphSet{orbit: '.', nucleus: '@', electron: 'o', photon: '*', emission: '>', twinkle: []rune{'.', '.', '+', '*'}}
	}
	return glyphSet{orbit: '·', nucleus: '◉', electron: '●', photon: '●', emission: '➤', twinkle: []rune{'·', '•', '✦', '★'}}
}

type cell struct {
	r     rune
	style lipgloss.Style
}

// canvas is a character grid addressed in scene coordinates.
type canvas struct {
	cols   int
	rows   int
	cells  [][]cell
	fill   lipgloss.Style
	tinted bool
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows}
	c.cells = make([][]cell, rows)
	for i := range c.cells {
		c.cells[i] = make([]cell, cols)
	}
	return c
}

// cellAt converts a scene point to a grid cell.
func (c *canvas) cellAt(x, y float64) (int, int, bool) {
	col := int(x / physics.SceneWidth * float64(c.cols))
	row := int(y / physics.SceneHeight * float64(c.rows))
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0, 0, false
	}
	return col, row, true
}

// plot draws r at scene point (x, y), replacing what was there.
func (c *canvas) plot(x, y float64, r rune, style lipgloss.Style) {
	if col, row, ok := c.cellAt(x, y); ok {
		c.cells[row][col] = cell{r: r, style: style}
	}
}

// plotPercent places r at a position given as percentages of the scene.
func (c *canvas) plotPercent(left, top float64, r rune, style lipgloss.Style) {
	c.plot(left/100*physics.SceneWidth, top/100*physics.SceneHeight, r, style)
}

// stamp writes lines centred on grid cell (col, row).
func (c *canvas) stamp(col, row int, lines []string, style lipgloss.Style) {
	top := row - len(lines)/2
	for dy, line := range lines {
		runes := []rune(line)
		left := col - len(runes)/2
		for dx, r := range runes {
			x, y := left+dx, top+dy
			if r == ' ' || x < 0 || x >= c.cols || y < 0 || y >= c.rows {
				continue
			}
			c.cells[y][x] = cell{r: r, style: style}
		}
	}
}

// circle traces a ring of radius r around the scene centre without
// overwriting cells already drawn.
func (c *canvas) circle(radius float64, r rune, style lipgloss.Style) {
	steps := int(radius) * 2
	if steps < 24 {
		steps = 24
	}
	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * 2 * math.Pi
		x := physics.CenterX + radius*math.Cos(a)
		y := physics.CenterY + radius*math.Sin(a)
		if col, row, ok := c.cellAt(x, y); ok && c.cells[row][col].r == 0 {
			c.cells[row][col] = cell{r: r, style: style}
		}
	}
}

// tint paints the background of every cell.
func (c *canvas) tint(bg lipgloss.Color) {
	c.fill = lipgloss.NewStyle().Background(bg)
	c.tinted = true
}

func (c *canvas) String() string {
	lines := make([]string, c.rows)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			switch {
			case cl.r == 0 && c.tinted:
				b.WriteString(c.fill.Render(" "))
			case cl.r == 0:
				b.WriteRune(' ')
			case c.tinted:
				b.WriteString(cl.style.Inherit(c.fill).Render(string(cl.r)))
			default:
				b.WriteString(cl.style.Render(string(cl.r)))
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
