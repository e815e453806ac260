// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the normal state: the elephant moves and the hunter hunts.
	StatePlaying State = iota
	// StateGameOver is entered once when the elephant dies.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
