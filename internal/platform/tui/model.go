package tui

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/square-rush/internal/assets"
	"github.com/vovakirdan/square-rush/internal/core"
	"github.com/vovakirdan/square-rush/internal/game"
)

// footerRows is the space under the surface: a gap, the control bar and help.
const footerRows = 3

// BackdropMsg carries the result of loading the background image.
type BackdropMsg struct {
	Image image.Image
	Err   error
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	ctrl     *game.Controller
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	backdrop *assets.Backdrop
	logger   *log.Logger

	frame string // last rendered surface
	drawn int    // controller redraw count reflected by frame

	width, height int
	quitting      bool

	screenshotDir string // ctrl+s is ignored when empty
}

// NewModel creates a model around a controller. cfg gives the initial
// terminal size, used until the first WindowSizeMsg arrives.
func NewModel(ctrl *game.Controller, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	gc := ctrl.Config()
	// The shake moves the surface up to ShakeX/ShakeY cells either way from
	// its centred position.
	ctrl.Reserve(2*gc.Effects.ShakeX, footerRows+2*gc.Effects.ShakeY)
	ctrl.Resize(cfg.ScreenW, cfg.ScreenH)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		ctrl:   ctrl,
		keys:   NewKeyMap(gc.Keys, len(gc.Timer.Durations)),
		help:   h,
		screen: core.NewScreen(0, 0),
		logger: logger,
		drawn:  -1,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// WithScreenshots enables ctrl+s, saving the surface as text files in dir.
func (m Model) WithScreenshots(dir string) Model {
	m.screenshotDir = dir
	return m
}

// Init starts loading the background image.
func (m Model) Init() tea.Cmd {
	return loadBackdrop(m.ctrl.Config().Assets.Background)
}

// loadBackdrop decodes the image off the event loop.
func loadBackdrop(path string) tea.Cmd {
	return func() tea.Msg {
		img, err := assets.LoadImage(path)
		return BackdropMsg{Image: img, Err: err}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m = m.handleResize(msg)
	case TaskMsg:
		cmd = m.handleTask(msg)
	case BackdropMsg:
		m = m.handleBackdrop(msg)
	}

	m.refresh()
	return m, tea.Batch(cmd, armTasks(m.ctrl.Tasks()))
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	action, option := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.ctrl.Halt()
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	// The game-over notice is modal.
	if m.ctrl.Notice() != "" {
		if action == core.ActionStart || action == core.ActionDismiss {
			m.ctrl.DismissNotice()
		}
		return m, nil
	}

	m.apply(action, option)
	return m, nil
}

// handleMouse presses the control under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	// The control bar moves with the surface while it shakes.
	if m.backdrop == nil || m.ctrl.Notice() != "" || m.ctrl.Shaking() {
		return m
	}

	left, top := m.controlsOrigin()
	if b, ok := hitTest(controlBar(m.ctrl), msg.X-left, msg.Y-top); ok {
		m.apply(b.action, b.option)
	}
	return m
}

// apply routes an action to the controller. Rejected operations are no-ops.
func (m Model) apply(action core.Action, option int) {
	if dir, ok := game.DirectionFor(action); ok {
		m.ctrl.Move(dir)
		return
	}

	switch action {
	case core.ActionStart:
		m.ctrl.Start()
	case core.ActionPause:
		m.ctrl.TogglePause()
	case core.ActionSelect:
		m.ctrl.SelectOption(option)
	}
}

// handleResize processes window resize events. The session is preserved.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.ctrl.Resize(msg.Width, msg.Height)
	return m
}

// handleTask delivers a timer and re-arms it while its run is current.
func (m Model) handleTask(msg TaskMsg) tea.Cmd {
	if !m.ctrl.Fire(msg.Name, msg.Token) {
		return nil
	}
	t := findTask(m.ctrl.Tasks(), msg.Name)
	if t == nil {
		return nil
	}
	return taskCmd(t, msg.Token)
}

// handleBackdrop installs the loaded image, or a generated one on failure.
func (m Model) handleBackdrop(msg BackdropMsg) Model {
	img := msg.Image
	if msg.Err != nil || img == nil {
		m.logger.Warn("background unavailable, using fallback", "error", msg.Err)
		img = assets.Fallback()
	}
	m.backdrop = assets.NewBackdrop(img, m.ctrl.Config().Effects.Dim)
	m.drawn = -1
	return m
}

// saveScreenshot writes the last drawn surface to a timestamped file.
func (m Model) saveScreenshot() {
	if m.screenshotDir == "" || m.backdrop == nil {
		return
	}
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("rush_%s.txt", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// refresh redraws the cached frame when the controller asked for it.
func (m *Model) refresh() {
	if m.backdrop == nil || m.drawn == m.ctrl.Redraws() {
		return
	}
	m.ctrl.Draw(m.screen, m.backdrop)
	m.frame = RenderScreen(m.screen)
	m.drawn = m.ctrl.Redraws()
}

// surfaceOrigin returns where the surface is drawn, shake offset included.
func (m Model) surfaceOrigin() (int, int) {
	s := m.ctrl.Surface()
	dx, dy := m.ctrl.Offset()
	left := (m.width-s.Width)/2 + dx
	top := (m.height-s.Height-footerRows)/2 + dy
	return max(left, 0), max(top, 0)
}

// controlsOrigin returns the screen position of the control bar.
func (m Model) controlsOrigin() (int, int) {
	s := m.ctrl.Surface()
	_, top := m.surfaceOrigin()
	return max((m.width-s.Width)/2, 0), top + s.Height + 1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.backdrop == nil {
		return "Loading..."
	}

	left, top := m.surfaceOrigin()
	controlsLeft, _ := m.controlsOrigin()

	var sb strings.Builder
	sb.WriteString(place(m.frame, left, top))
	sb.WriteString("\n\n")
	sb.WriteString(place(renderControls(controlBar(m.ctrl)), controlsLeft, 0))
	sb.WriteString("\n")
	sb.WriteString(place(m.help.View(m.keys), controlsLeft, 0))
	return sb.String()
}

// Run starts the Bubble Tea program for a controller. Screenshots go to
// screenshotDir; empty disables them.
func Run(ctrl *game.Controller, cfg core.RuntimeConfig, logger *log.Logger, screenshotDir string) error {
	p := tea.NewProgram(
		NewModel(ctrl, cfg, logger).WithScreenshots(screenshotDir),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
