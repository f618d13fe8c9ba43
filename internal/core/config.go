package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends use this to size their drawing surface and seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Frames per second requested from the frontend (default 60)
	Seed     int64 // RNG seed for deterministic pipe placement, 0 = time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
