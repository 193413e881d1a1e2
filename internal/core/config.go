package core

// RuntimeConfig contains the terminal-level settings a game is started with.
type RuntimeConfig struct {
	ScreenW int // Viewport width in characters
	ScreenH int // Viewport height in characters
}

// DefaultConfig returns a RuntimeConfig used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
