package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The simulation uses it to size the viewport and seed its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in world pixels
	ScreenH  int   // Viewport height in world pixels
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig matching an 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
