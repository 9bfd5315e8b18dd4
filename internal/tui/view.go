package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/fotoquantum/internal/content"
)

func (m *model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebarView(),
		strings.Repeat(" ", panelGap),
		m.active.View(m.layout),
	)
	parts := []string{m.heroView(), body, m.statusView(), m.keyLegendView()}
	if m.helpVisible {
		parts = append(parts, m.helpView())
	} else {
		parts = append(parts, m.help.View(m.keys))
	}
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	logo := logoAccentStyle.Render("F") + logoStyle.Render("oto") +
		logoAccentStyle.Render("Q") + logoStyle.Render("uantum")
	return lipgloss.JoinHorizontal(lipgloss.Bottom, logo, "  ", taglineStyle.Render(heroTagline))
}

func (m *model) sidebarView() string {
	width := m.layout.sidebarWidth - 4
	rows := []string{sectionHeaderStyle.Render("Modes")}
	for i, mode := range content.Modes {
		info := content.Describe(mode)
		label := fmt.Sprintf("%d %s %s", i+1, content.Symbol(info.Icon), info.Name)
		if mode == m.active.Mode() {
			rows = append(rows, menuActiveStyle.Width(width).Render("▸ "+label))
			continue
		}
		rows = append(rows, menuStyle.Render("  "+label))
	}
	rows = append(rows, "")
	icon := strings.Join(content.Icon(content.IconInfo, false), "\n")
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, infoTitleStyle.Render(icon), " ", sectionHeaderStyle.Render("About")))
	rows = append(rows, m.info.View())
	return sidebarStyle.Width(m.layout.sidebarWidth - 2).Render(strings.Join(rows, "\n"))
}

func (m *model) statusView() string {
	stats := []string{fmt.Sprintf("Mode %s", content.Describe(m.active.Mode()).Name)}
	stats = append(stats, m.active.Stats()...)
	if m.stale > 0 {
		stats = append(stats, fmt.Sprintf("Dropped timers %d", m.stale))
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

// keyLegendView lists the active mode's controls. Controls that cannot run
// right now are shown struck through.
func (m *model) keyLegendView() string {
	var cells []string
	for _, a := range m.active.Actions() {
		h := m.keys.binding(a).Help()
		k, d := keyStyle, keyDescStyle
		if !m.active.Available(a) {
			k, d = keyOffStyle, keyDescOffStyle
		}
		cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, k.Render(h.Key), d.Render(" "+h.Desc+"  ")))
	}
	if len(cells) == 0 {
		return ""
	}
	return legendBoxStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m *model) helpView() string {
	lines := []string{
		sectionHeaderStyle.Render("How to play"),
		helperStyle.Render("• 1, 2 and 3 pick Quantum Leap, Quiz and Star; tab cycles through them."),
		helperStyle.Render("• Quantum Leap: space fires the selected photon, c changes colour, + and - set the electron speed, r resets."),
		helperStyle.Render("• A photon is absorbed only if it carries energy and the electron stays within level 4."),
		helperStyle.Render("• Quiz: n draws a new question, a shows or hides the answer."),
		helperStyle.Render("• Star: u switches the UV light on; the star shines once the UV phase ends."),
		helperStyle.Render("• [ and ] scroll the explanation, ? closes this panel, q quits."),
		"",
		m.help.View(m.keys),
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n")
}
