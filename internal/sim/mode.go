package sim

// Mode is the state machine's current state. Exactly one is active at a time.
type Mode int

const (
	ModeReady Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeReady:
		return "Ready"
	case ModePlaying:
		return "Playing"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
