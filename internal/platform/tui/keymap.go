package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-rush/internal/config"
	"github.com/vovakirdan/square-rush/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	Pause      key.Binding
	Duration   key.Binding
	Dismiss    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// NewKeyMap builds bindings from the configured movement keys and the number
// of duration options (selected with 1..n).
func NewKeyMap(keys config.KeysConfig, options int) KeyMap {
	digits := make([]string, 0, options)
	for i := 1; i <= options && i <= 9; i++ {
		digits = append(digits, strconv.Itoa(i))
	}
	durationHelp := "1"
	if len(digits) > 1 {
		durationHelp = fmt.Sprintf("1-%d", len(digits))
	}

	return KeyMap{
		Up:    key.NewBinding(key.WithKeys(keys.Up), key.WithHelp(keys.Up, "up")),
		Down:  key.NewBinding(key.WithKeys(keys.Down), key.WithHelp(keys.Down, "down")),
		Left:  key.NewBinding(key.WithKeys(keys.Left), key.WithHelp(keys.Left, "left")),
		Right: key.NewBinding(key.WithKeys(keys.Right), key.WithHelp(keys.Right, "right")),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Duration: key.NewBinding(
			key.WithKeys(digits...),
			key.WithHelp(durationHelp, "duration"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Start, k.Pause, k.Duration, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Pause, k.Duration},
		{k.Dismiss, k.Screenshot, k.Quit},
	}
}

// MapKey translates a key message to an action. For ActionSelect the second
// result is the 0-based duration option.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Action, int) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, k.Up):
		return core.ActionUp, 0
	case key.Matches(msg, k.Down):
		return core.ActionDown, 0
	case key.Matches(msg, k.Left):
		return core.ActionLeft, 0
	case key.Matches(msg, k.Right):
		return core.ActionRight, 0
	case key.Matches(msg, k.Start):
		return core.ActionStart, 0
	case key.Matches(msg, k.Pause):
		return core.ActionPause, 0
	case key.Matches(msg, k.Dismiss):
		return core.ActionDismiss, 0
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot, 0
	case key.Matches(msg, k.Duration):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return core.ActionNone, 0
		}
		return core.ActionSelect, n - 1
	}
	return core.ActionNone, 0
}
