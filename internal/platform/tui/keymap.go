package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// KeyMap holds the Bubble Tea key bindings for a run.
type KeyMap struct {
	Jump key.Binding
	Quit key.Binding
}

// NewKeyMap builds bindings from the configured keys.
// Ctrl+C always quits as well.
func NewKeyMap(km core.KeyMap) KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(keyString(km.Jump)),
			key.WithHelp(keyLabel(km.Jump), "jump"),
		),
		Quit: key.NewBinding(
			key.WithKeys(keyString(km.Quit), "ctrl+c"),
			key.WithHelp(keyLabel(km.Quit), "quit"),
		),
	}
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Action maps a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	}
	return core.ActionNone
}

// keyString is the name Bubble Tea gives a key press of r.
func keyString(r rune) string {
	return string(r)
}

// keyLabel is how a key is shown in the help footer.
func keyLabel(r rune) string {
	if r == ' ' {
		return "space"
	}
	return string(r)
}
