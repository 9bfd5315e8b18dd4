package tui

import (
	"log"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// pageLayout splits the window into the sidebar and the scene panel and sizes
// the scene canvas. Canvas cells are twice as tall as they are wide, so the
// canvas keeps two columns per row to stay square on screen.
type pageLayout struct {
	windowWidth  int
	windowHeight int
	sidebarWidth int
	panelWidth   int
	canvasCols   int
	canvasRows   int
	infoHeight   int
}

func newPageLayout() pageLayout {
	var l pageLayout
	l.Update(defaultWindowWidth, defaultWindowHeight)
	return l
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height

	l.sidebarWidth = defaultSidebarWidth
	if width < 80 {
		l.sidebarWidth = compactSidebarWidth
	}
	l.panelWidth = width - l.sidebarWidth - panelGap
	if l.panelWidth < minPanelWidth {
		l.panelWidth = minPanelWidth
	}

	rows := height - verticalChrome
	if rows < minCanvasRows {
		rows = minCanvasRows
	}
	if rows > maxCanvasRows {
		rows = maxCanvasRows
	}
	cols := rows * 2
	if limit := l.panelWidth - 2; cols > limit {
		cols = limit &^ 1
		rows = cols / 2
	}
	l.canvasRows = rows
	l.canvasCols = cols
	l.infoHeight = rows
}

// wrapWidth is the usable text width inside the scene panel.
func (l pageLayout) wrapWidth(padding int) int {
	available := l.panelWidth - padding
	if available < 20 {
		available = 20
	}
	return available
}

var emphasisMarks = regexp.MustCompile(`\*{1,2}([^*]+)\*{1,2}`)

// renderMarkdown renders an explanation with glamour, falling back to plain
// wrapped text when no style is set or rendering fails.
func renderMarkdown(style string, width int, text string) string {
	if width < 10 {
		width = 10
	}
	if style != "" {
		opt := glamour.WithStandardStyle(style)
		if style == "auto" {
			opt = glamour.WithAutoStyle()
		}
		r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(width))
		if err == nil {
			var out string
			out, err = r.Render(text)
			if err == nil {
				return strings.Trim(out, "\n")
			}
		}
		log.Printf("[shell] markdown fallback (style=%s): %v", style, err)
	}
	return wordwrap.String(emphasisMarks.ReplaceAllString(text, "$1"), width)
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
