package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/square-rush/internal/core"
)

// foregrounds maps core.Color to terminal colors.
var foregrounds = map[core.Color]lipgloss.Color{
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorBlue:        lipgloss.Color("4"),
	core.ColorWhite:       lipgloss.Color("7"),
	core.ColorBrightRed:   lipgloss.Color("9"),
	core.ColorBrightWhite: lipgloss.Color("15"),
	core.ColorGray:        lipgloss.Color("245"),
}

// cellStyle returns the style for a run of cells sharing fg and bg.
func cellStyle(fg core.Color, bg string) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := foregrounds[fg]; ok {
		style = style.Foreground(c)
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors are grouped to keep escape sequences short.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != first.Color || cell.Bg != first.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(first.Color, first.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// place shifts a multi-line block right by left columns and down by top rows.
func place(block string, left, top int) string {
	pad := strings.Repeat(" ", max(left, 0))
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Repeat("\n", max(top, 0)) + strings.Join(lines, "\n")
}
