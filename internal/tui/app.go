package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"toyrobot/internal/interpreter"
)

// Run starts the interactive shell on the terminal and blocks until the
// user quits.
func Run(s *interpreter.Session, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newModel(s), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
