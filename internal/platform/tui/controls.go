package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/square-rush/internal/core"
	"github.com/vovakirdan/square-rush/internal/game"
)

// Button styles
var (
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("238"))

	disabledButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("243")).
				Background(lipgloss.Color("235"))

	durationStyle = buttonStyle.Background(lipgloss.Color("4"))
	selectedStyle = buttonStyle.Background(lipgloss.Color("2")).Bold(true)
)

// buttonGap is the number of blank columns between buttons.
const buttonGap = 1

// button is one clickable control, positioned relative to the control bar.
type button struct {
	label  string
	action core.Action
	option int // duration index for ActionSelect
	style  lipgloss.Style
	rect   core.Rect
}

// controlBar lays out the buttons for the controller's current state.
func controlBar(c *game.Controller) []button {
	start := buttonStyle
	if !c.StartEnabled() {
		start = disabledButtonStyle
	}

	buttons := []button{
		{label: "Start", action: core.ActionStart, style: start},
		{label: c.PauseLabel(), action: core.ActionPause, style: buttonStyle},
	}
	for i, d := range c.Durations() {
		style := durationStyle
		if c.Highlighted(d) {
			style = selectedStyle
		}
		buttons = append(buttons, button{
			label:  fmt.Sprintf("%ds", d),
			action: core.ActionSelect,
			option: i,
			style:  style,
		})
	}

	x := 0
	for i := range buttons {
		w := len(buttons[i].label) + 2 // padding
		buttons[i].rect = core.NewRect(x, 0, w, 1)
		x += w + buttonGap
	}
	return buttons
}

// renderControls draws the buttons on one line.
func renderControls(buttons []button) string {
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		parts[i] = b.style.Render(b.label)
	}
	return strings.Join(parts, strings.Repeat(" ", buttonGap))
}

// hitTest returns the button under (x, y), relative to the control bar.
func hitTest(buttons []button, x, y int) (button, bool) {
	for _, b := range buttons {
		if b.rect.Contains(x, y) {
			return b, true
		}
	}
	return button{}, false
}
