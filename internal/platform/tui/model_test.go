package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-rush/internal/assets"
	"github.com/vovakirdan/square-rush/internal/config"
	"github.com/vovakirdan/square-rush/internal/core"
	"github.com/vovakirdan/square-rush/internal/game"
	"github.com/vovakirdan/square-rush/internal/schedule"
)

// With a 100x50 terminal the surface is 80x40 at (10, 3) and the control
// bar starts at (10, 44).
const (
	testControlsX = 10
	testControlsY = 44
)

func newLoadingModel() Model {
	ctrl := game.NewController(config.DefaultGameConfig(), nil)
	return NewModel(ctrl, core.RuntimeConfig{ScreenW: 100, ScreenH: 50}, nil)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return update(t, newLoadingModel(), BackdropMsg{Image: assets.Fallback()})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func clockToken(m Model) schedule.Token {
	return findTask(m.ctrl.Tasks(), game.ClockTask).Token()
}

func tick(t *testing.T, m Model, token schedule.Token) Model {
	t.Helper()
	return update(t, m, TaskMsg{Name: game.ClockTask, Token: token})
}

func TestModelViewWaitsForBackdrop(t *testing.T) {
	m := newLoadingModel()
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before backdrop = %q, want Loading...", got)
	}

	m = update(t, m, BackdropMsg{Image: assets.Fallback()})
	if !strings.Contains(m.View(), "Time Left: 60 seconds") {
		t.Error("View after backdrop should show the countdown")
	}
}

func TestModelBackdropFailureFallsBack(t *testing.T) {
	m := update(t, newLoadingModel(), BackdropMsg{Err: errors.New("missing")})
	if m.backdrop == nil {
		t.Fatal("backdrop should fall back when loading fails")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("View should draw with the fallback backdrop")
	}
}

func TestModelStartAndMove(t *testing.T) {
	m := newTestModel(t)
	before := m.ctrl.Player()

	m = update(t, m, runeKey("d"))
	if m.ctrl.Player() != before {
		t.Error("player should not move before the game starts")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.ctrl.Session().Running {
		t.Fatal("enter should start the game")
	}

	m = update(t, m, runeKey("d"))
	if got := m.ctrl.Player().X; got != before.X+2 {
		t.Errorf("player X = %v, want %v", got, before.X+2)
	}
}

func TestModelClockTicks(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = tick(t, m, clockToken(m))
	if got := m.ctrl.Session().SecondsRemaining; got != 59 {
		t.Errorf("SecondsRemaining = %d, want 59", got)
	}
	if !strings.Contains(m.View(), "Time Left: 59 seconds") {
		t.Error("View should show the new countdown")
	}
}

func TestModelStaleTickIgnored(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	stale := clockToken(m)

	m = update(t, m, runeKey("p"))
	m = update(t, m, runeKey("p"))
	m = tick(t, m, stale)
	if got := m.ctrl.Session().SecondsRemaining; got != 60 {
		t.Errorf("stale tick changed SecondsRemaining to %d", got)
	}

	m = tick(t, m, clockToken(m))
	if got := m.ctrl.Session().SecondsRemaining; got != 59 {
		t.Errorf("SecondsRemaining = %d, want 59", got)
	}
}

func TestModelNoticeIsModal(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runeKey("1")) // 30s
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for range 30 {
		m = tick(t, m, clockToken(m))
	}
	if m.ctrl.Notice() == "" {
		t.Fatal("notice should be open when time is up")
	}
	if !strings.Contains(m.View(), "Time's up! Final Score: 0") {
		t.Error("View should show the notice")
	}

	m = update(t, m, runeKey("2"))
	if got := m.ctrl.Session().SelectedDuration; got != 30 {
		t.Errorf("duration changed to %d behind the notice", got)
	}
	m = update(t, m, click(testControlsX, testControlsY))
	if m.ctrl.Session().Running {
		t.Error("click behind the notice should not start a game")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ctrl.Notice() != "" {
		t.Fatal("enter should close the notice")
	}
	if m.ctrl.Session().Running {
		t.Error("closing the notice should not start a game")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.ctrl.Session().Running {
		t.Error("enter should start a new game once the notice is closed")
	}
}

func TestModelMouseControls(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, click(testControlsX+17, testControlsY)) // 30s
	if got := m.ctrl.Session().SelectedDuration; got != 30 {
		t.Errorf("SelectedDuration = %d, want 30", got)
	}

	m = update(t, m, click(testControlsX+1, testControlsY)) // Start
	if !m.ctrl.Session().Running {
		t.Fatal("clicking Start should start the game")
	}

	m = update(t, m, click(testControlsX+29, testControlsY)) // 90s
	if got := m.ctrl.Session().SelectedDuration; got != 30 {
		t.Errorf("duration changed to %d while running", got)
	}

	m = update(t, m, click(testControlsX+9, testControlsY)) // Pause
	if !m.ctrl.Session().Paused {
		t.Error("clicking Pause should pause the game")
	}

	right := tea.MouseMsg{X: testControlsX + 9, Y: testControlsY, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	m = update(t, m, right)
	if !m.ctrl.Session().Paused {
		t.Error("right click should be ignored")
	}
}

func TestModelIgnoresClicksWhileShaking(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runeKey("1")) // 30s
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for range 30 {
		m = tick(t, m, clockToken(m))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // close the notice
	if !m.ctrl.Shaking() {
		t.Fatal("shake should still be running without frame timers")
	}

	x, y := m.controlsOrigin()
	m = update(t, m, click(x+1, y))
	if m.ctrl.Session().Running {
		t.Error("click during the shake should be ignored")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.ctrl.Session().Running || m.ctrl.Shaking() {
		t.Error("enter should still start a game and cancel the shake")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, clockToken(m))

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	// 80% of 30 rows is 24, capped to leave the footer and shake travel.
	if s := m.ctrl.Surface(); s.Width != 48 || s.Height != 23 {
		t.Errorf("surface = %dx%d, want 48x23", s.Width, s.Height)
	}
	session := m.ctrl.Session()
	if !session.Running || session.SecondsRemaining != 59 {
		t.Errorf("session reset on resize: %+v", session)
	}
}

func TestModelViewFitsShortTerminals(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		shaking       bool
		want          string // top lines of the surface
	}{
		{"24 rows", 100, 24, false, "Time Left:"},
		{"24 rows while shaking", 100, 24, true, "Time Left:"},
		{"12 rows", 40, 12, false, "Time Left:"},
		{"12 rows while shaking", 40, 12, true, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m = update(t, m, tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			m = update(t, m, runeKey("1")) // 30s
			if tt.shaking {
				m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
				for range 30 {
					m = tick(t, m, clockToken(m))
				}
				if _, dy := m.ctrl.Offset(); !m.ctrl.Shaking() || dy == 0 {
					t.Fatalf("expected a vertical shake offset, got dy=%d", dy)
				}
			}

			view := m.View()
			if rows := strings.Count(view, "\n") + 1; rows > tt.height {
				t.Errorf("view has %d rows, terminal has %d", rows, tt.height)
			}
			if !strings.Contains(view, tt.want) {
				t.Errorf("view should keep %q on screen", tt.want)
			}
		})
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := newTestModel(t).WithScreenshots(dir)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "rush_*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(files))
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Time Left: 60 seconds") {
		t.Errorf("screenshot should hold the surface, got %q", data)
	}
	if m.ctrl.Session().Running {
		t.Error("screenshot should not change the game")
	}
}

func TestModelScreenshotDisabled(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS}) // Should not write or panic
	if m.screenshotDir != "" {
		t.Error("screenshots should be off by default")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	next, cmd := m.Update(runeKey("q"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
	if findTask(m.ctrl.Tasks(), game.ClockTask).Running() {
		t.Error("clock should stop on quit")
	}
}
