package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/square-rush/internal/audio"
	"github.com/vovakirdan/square-rush/internal/config"
	"github.com/vovakirdan/square-rush/internal/schedule"
)

// Names of the scheduled tasks, used by the platform to route timer messages.
const (
	ClockTask = "clock"
	FrameTask = "frame"
)

// Control labels.
const (
	LabelPause  = "Pause"
	LabelResume = "Resume"
)

// Controller owns one session and every piece of state it touches.
// All methods must be called from a single goroutine (the UI event loop).
//
// Operations return whether they were applied; a guard that rejects an
// operation leaves the state untouched.
type Controller struct {
	cfg     config.GameConfig
	session Session
	player  Player
	surface Surface
	placed  bool // player centred on the first surface

	reservedCols, reservedRows int // viewport space kept free of the surface

	sound  audio.Player
	clock  *schedule.Task
	frames *schedule.Task

	shake            Shake
	offsetX, offsetY int
	notice           string
	redraws          int

	now    func() time.Time
	logger *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithNow replaces the wall clock used by the shake effect.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates an idle game. sound may be nil for silence.
func NewController(cfg config.GameConfig, sound audio.Player, opts ...Option) *Controller {
	if sound == nil {
		sound = audio.Nop{}
	}
	fps := max(cfg.Effects.FPS, 1)

	c := &Controller{
		cfg: cfg,
		session: Session{
			SecondsRemaining: cfg.Timer.Default,
			SelectedDuration: cfg.Timer.Default,
		},
		sound:  sound,
		clock:  schedule.NewTask(ClockTask, time.Second),
		frames: schedule.NewTask(FrameTask, time.Second/time.Duration(fps)),
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a game with the selected duration.
func (c *Controller) Start() bool {
	if c.session.Running || c.notice != "" {
		return false
	}

	c.cancelShake()
	c.session.SecondsRemaining = c.session.SelectedDuration
	c.session.Score = 0
	c.session.Running = true
	c.session.Paused = false

	c.sound.Play(audio.CueStart)
	c.clock.Start()
	c.sound.Play(audio.CueAmbient)

	c.logger.Debug("game started", "duration", c.session.SelectedDuration)
	c.requestRedraw()
	return true
}

// TogglePause pauses a running game or resumes a paused one.
func (c *Controller) TogglePause() bool {
	if !c.session.Running {
		return false
	}

	c.session.Paused = !c.session.Paused
	if c.session.Paused {
		c.clock.Stop()
		c.sound.Stop(audio.CueAmbient)
		c.sound.Play(audio.CuePause)
		c.logger.Debug("game paused", "remaining", c.session.SecondsRemaining)
	} else {
		c.clock.Start()
		c.sound.Play(audio.CueAmbient)
		c.logger.Debug("game resumed", "remaining", c.session.SecondsRemaining)
	}

	c.requestRedraw()
	return true
}

// SelectDuration chooses the length of the next game. Only allowed while idle.
func (c *Controller) SelectDuration(seconds int) bool {
	if c.session.Running || seconds <= 0 {
		return false
	}
	c.session.SelectedDuration = seconds
	c.requestRedraw()
	return true
}

// SelectOption selects the i-th configured duration (0-based).
func (c *Controller) SelectOption(i int) bool {
	if i < 0 || i >= len(c.cfg.Timer.Durations) {
		return false
	}
	return c.SelectDuration(c.cfg.Timer.Durations[i])
}

// Move steps the player in dir while the game is running and unpaused.
func (c *Controller) Move(dir Direction) bool {
	if !c.session.Active() || c.notice != "" {
		return false
	}
	c.player = c.player.Moved(dir, c.cfg.Player.StepX, c.cfg.Player.StepY, c.bounds())
	c.requestRedraw()
	return true
}

// Reserve keeps cols columns and rows rows of every viewport free of the
// surface, for the UI drawn around it. It applies from the next Resize.
func (c *Controller) Reserve(cols, rows int) {
	c.reservedCols, c.reservedRows = max(cols, 0), max(rows, 0)
}

// Resize recomputes the surface for a new viewport. The session is kept; the
// player is only clamped into the new bounds.
func (c *Controller) Resize(viewportW, viewportH int) {
	c.surface = SurfaceFor(viewportW, viewportH, c.cfg.Surface.Ratio)
	c.surface.Width = min(c.surface.Width, max(viewportW-c.reservedCols, 0))
	c.surface.Height = min(c.surface.Height, max(viewportH-c.reservedRows, 0))
	if !c.placed {
		c.player = Player{X: float64(c.surface.Width) / 2, Y: float64(c.surface.Height) / 2}
		c.placed = true
	}
	c.player = c.player.Clamped(c.bounds())
	c.requestRedraw()
}

// Fire delivers a timer for the named task. It returns true when the task
// wants its next timer armed with the same token.
func (c *Controller) Fire(name string, token schedule.Token) bool {
	switch name {
	case ClockTask:
		c.Tick(token)
		return c.clock.Fire(token)
	case FrameTask:
		c.Frame(token)
		return c.frames.Fire(token)
	}
	return false
}

// Tick is one second of the countdown. Ticks from a stopped or superseded
// clock run are ignored.
func (c *Controller) Tick(token schedule.Token) bool {
	if !c.clock.Fire(token) {
		c.logger.Debug("stale tick dropped", "token", token, "current", c.clock.Token())
		return false
	}
	if !c.session.Active() {
		return false
	}

	c.session.SecondsRemaining--
	if c.session.SecondsRemaining <= 0 {
		c.session.SecondsRemaining = 0
		c.endGame()
	}

	c.requestRedraw()
	return true
}

// endGame runs once when the countdown reaches zero.
func (c *Controller) endGame() {
	c.clock.Stop()
	c.sound.Stop(audio.CueAmbient)
	c.sound.Play(audio.CueGameOver)
	c.notice = fmt.Sprintf("Time's up! Final Score: %d", c.session.Score)
	c.session.Running = false
	c.session.Paused = false
	c.logger.Info("game over", "score", c.session.Score, "duration", c.session.SelectedDuration)
	c.startShake()
}

// Frame advances the shake effect by one animation frame.
func (c *Controller) Frame(token schedule.Token) bool {
	if !c.frames.Fire(token) {
		return false
	}
	dx, dy, done := c.shake.Offset(c.now())
	if done {
		c.cancelShake()
		return true
	}
	c.offsetX, c.offsetY = dx, dy
	return true
}

func (c *Controller) startShake() {
	e := c.cfg.Effects
	if e.ShakeDuration() <= 0 {
		return
	}
	c.shake = Shake{
		Start:      c.now(),
		Duration:   e.ShakeDuration(),
		IntensityX: float64(e.ShakeX),
		IntensityY: float64(e.ShakeY),
	}
	c.offsetX, c.offsetY, _ = c.shake.Offset(c.shake.Start)
	c.frames.Start()
}

// cancelShake stops the effect and puts the surface back at (0, 0).
func (c *Controller) cancelShake() {
	c.frames.Stop()
	c.offsetX, c.offsetY = 0, 0
}

// DismissNotice closes the game-over notice.
func (c *Controller) DismissNotice() bool {
	if c.notice == "" {
		return false
	}
	c.notice = ""
	c.requestRedraw()
	return true
}

// Halt stops every task and sound, leaving the session as it is.
// Called when the program exits.
func (c *Controller) Halt() {
	c.clock.Stop()
	c.cancelShake()
	c.sound.Stop(audio.CueAmbient)
}

func (c *Controller) requestRedraw() {
	c.redraws++
}

func (c *Controller) bounds() Bounds {
	return c.surface.Bounds(c.cfg.Player.Width, c.cfg.Player.Height)
}

// Session returns a copy of the session state.
func (c *Controller) Session() Session {
	return c.session
}

// Player returns the player position.
func (c *Controller) Player() Player {
	return c.player
}

// Surface returns the current surface dimensions.
func (c *Controller) Surface() Surface {
	return c.surface
}

// Tasks returns the scheduled tasks so the event loop can arm new runs.
func (c *Controller) Tasks() []*schedule.Task {
	return []*schedule.Task{c.clock, c.frames}
}

// Redraws counts redraw requests; it changes whenever the frame content may have.
func (c *Controller) Redraws() int {
	return c.redraws
}

// Offset returns the current on-screen displacement of the surface.
func (c *Controller) Offset() (int, int) {
	return c.offsetX, c.offsetY
}

// Shaking reports whether the end-of-game effect is running.
func (c *Controller) Shaking() bool {
	return c.frames.Running()
}

// Notice returns the open game-over message, or "".
func (c *Controller) Notice() string {
	return c.notice
}

// StartEnabled reports whether the start control is actionable.
func (c *Controller) StartEnabled() bool {
	return !c.session.Running && c.notice == ""
}

// PauseLabel returns the label of the pause control.
func (c *Controller) PauseLabel() string {
	if c.session.Paused {
		return LabelResume
	}
	return LabelPause
}

// Durations returns the selectable durations in seconds.
func (c *Controller) Durations() []int {
	return c.cfg.Timer.Durations
}

// Highlighted reports whether a duration option is the selected one.
func (c *Controller) Highlighted(seconds int) bool {
	return seconds == c.session.SelectedDuration
}

// Config returns the game configuration.
func (c *Controller) Config() config.GameConfig {
	return c.cfg
}
