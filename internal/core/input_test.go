package core

import "testing"

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      rune
		expected Action
	}{
		{' ', ActionJump},
		{'q', ActionQuit},
		{KeyCtrlC, ActionQuit},
		{'x', ActionNone},
		{'Q', ActionNone},
	}

	for _, tc := range tests {
		if got := km.Action(tc.key); got != tc.expected {
			t.Errorf("Action(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}
