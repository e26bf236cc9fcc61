package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level index (0-based)
	Ticks    int  // Simulation ticks elapsed in the current run
	GameOver bool // Whether the game has ended
	Victory  bool // Whether the run ended in a win rather than a loss
	Paused   bool // Whether the game is paused
}

// Event is a notable occurrence during a single simulation tick.
// The platform layer reacts to events (sound effects, persistence) without
// inspecting game internals.
type Event int

const (
	EventNone Event = iota
	EventJump
	EventStomp
	EventDamage
	EventPickup
	EventShot
	EventLevelComplete
	EventBossDefeated
	EventGameOver
	EventVictory
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "Jump"
	case EventStomp:
		return "Stomp"
	case EventDamage:
		return "Damage"
	case EventPickup:
		return "Pickup"
	case EventShot:
		return "Shot"
	case EventLevelComplete:
		return "LevelComplete"
	case EventBossDefeated:
		return "BossDefeated"
	case EventGameOver:
		return "GameOver"
	case EventVictory:
		return "Victory"
	default:
		return "None"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
