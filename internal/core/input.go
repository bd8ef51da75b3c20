package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota
	ActionJump        // Space - jump when grounded
	ActionQuit        // Q, Ctrl+C - leave the run without a game-over report
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyCtrlC is the byte a raw-mode terminal delivers for Ctrl+C.
const KeyCtrlC rune = 0x03

// KeyMap translates single key presses to actions.
type KeyMap struct {
	Jump rune
	Quit rune
}

// DefaultKeyMap returns the standard bindings: space jumps, q quits.
func DefaultKeyMap() KeyMap {
	return KeyMap{Jump: ' ', Quit: 'q'}
}

// Action maps a key to an action. Unknown keys map to ActionNone.
// Ctrl+C always quits.
func (km KeyMap) Action(key rune) Action {
	switch key {
	case km.Jump:
		return ActionJump
	case km.Quit, KeyCtrlC:
		return ActionQuit
	}
	return ActionNone
}
