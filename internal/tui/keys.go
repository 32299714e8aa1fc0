package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"toyrobot/internal/interpreter"
)

// shortcut maps the discrete keys onto robot commands.
func shortcut(msg tea.KeyMsg) (interpreter.CommandKind, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return interpreter.Move, true
	case tea.KeyLeft:
		return interpreter.Left, true
	case tea.KeyRight:
		return interpreter.Right, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && msg.Runes[0] == ' ' {
			return interpreter.Move, true
		}
	}
	return "", false
}

const helpText = "commands: PLACE X,Y,F | MOVE | LEFT | RIGHT\n" +
	"enter run/apply  tab switch field  space move  ←/→ turn  ctrl+r reset  esc dismiss  ctrl+c quit"
