package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toyrobot/internal/interpreter"
)

type focus int

const (
	focusCommand focus = iota
	focusRows
	focusCols
	focusGrid
	focusCount
)

type model struct {
	session *interpreter.Session
	command textinput.Model
	rows    textinput.Model
	cols    textinput.Model
	focus   focus
	// err is a shell-level failure such as a bad table size; robot
	// rejections live in the session.
	err error
}

func newModel(s *interpreter.Session) model {
	command := textinput.New()
	command.Placeholder = "Your wish is my command"
	command.Prompt = "> "
	command.CharLimit = 64

	rows := newNumberInput("rows", s.Bounds().Rows)
	cols := newNumberInput("cols", s.Bounds().Cols)

	m := model{session: s, command: command, rows: rows, cols: cols}
	m.command.Focus()
	return m
}

func newNumberInput(placeholder string, v int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 3
	in.Width = 4
	if v > 0 {
		in.SetValue(strconv.Itoa(v))
	}
	return in
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) textFocused() bool {
	return m.focus != focusGrid
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyCtrlR:
		m.session.Reset()
		m.err = nil
		m.command.SetValue("")
		return m, nil
	case tea.KeyEsc:
		m.session.Dismiss()
		m.err = nil
		return m, nil
	case tea.KeyTab:
		return m.setFocus((m.focus + 1) % focusCount)
	case tea.KeyShiftTab:
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case tea.KeyEnter:
		return m.submit()
	}

	if kind, ok := shortcut(key); ok {
		// Dropped by the session while a text field has focus; the key
		// then goes on to that field.
		_ = m.session.Dispatch(interpreter.KeyInput(kind, m.textFocused()))
		if !m.textFocused() {
			return m, nil
		}
	}
	return m.updateInputs(msg)
}

func (m model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.command.Blur()
	m.rows.Blur()
	m.cols.Blur()
	var cmd tea.Cmd
	switch f {
	case focusCommand:
		cmd = m.command.Focus()
	case focusRows:
		cmd = m.rows.Focus()
	case focusCols:
		cmd = m.cols.Focus()
	}
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusCommand:
		if err := m.session.Exec(m.command.Value()); err == nil {
			m.command.SetValue("")
		}
	case focusRows, focusCols:
		m.err = m.applyBounds()
	}
	return m, nil
}

func (m model) applyBounds() error {
	rows, err := parseSize(m.rows.Value())
	if err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	cols, err := parseSize(m.cols.Value())
	if err != nil {
		return fmt.Errorf("cols: %w", err)
	}
	return m.session.SetBounds(interpreter.Bounds{Rows: rows, Cols: cols})
}

// parseSize reads a table dimension; blank leaves it unset.
func parseSize(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q is not a table size", s)
	}
	return n, nil
}

func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusCommand:
		m.command, cmd = m.command.Update(msg)
	case focusRows:
		m.rows, cmd = m.rows.Update(msg)
	case focusCols:
		m.cols, cmd = m.cols.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Toy Robot"))
	b.WriteString("\n")
	b.WriteString(m.command.View())
	b.WriteString("\n")
	b.WriteString(m.label("rows", focusRows) + " " + m.rows.View() + "  " + m.label("cols", focusCols) + " " + m.cols.View())
	b.WriteString("\n\n")

	grid := gridStyle
	if m.focus == focusGrid {
		grid = focusedGridStyle
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, grid.Render(m.gridView()), "  ", m.statusView()))
	b.WriteString("\n")

	if err := m.shownError(); err != nil {
		title := "Error occurred"
		if kind := interpreter.KindOf(err); kind != "" {
			title += " (" + string(kind) + ")"
		}
		b.WriteString(errorBoxStyle.Render(errorTitleStyle.Render(title) + "\n" + err.Error() + "\n" + labelStyle.Render("esc to dismiss")))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}

func (m model) shownError() error {
	if m.err != nil {
		return m.err
	}
	return m.session.Pending()
}

func (m model) label(text string, f focus) string {
	if m.focus == f {
		return focusedLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m model) gridView() string {
	rows := interpreter.Render(m.session.State(), m.session.Bounds())
	if len(rows) == 0 {
		return labelStyle.Render("set rows and cols")
	}
	for i, row := range rows {
		for _, g := range "^>v<" {
			if strings.ContainsRune(row, g) {
				rows[i] = strings.Replace(row, string(g), robotStyle.Render(string(g)), 1)
			}
		}
	}
	return strings.Join(rows, "\n")
}

func (m model) statusView() string {
	s := m.session.State()
	lines := []string{
		"table   " + m.session.Bounds().String(),
		fmt.Sprintf("moves   %d/%d", s.Moves, m.session.Budget()),
	}
	if s.Placed {
		lines = append(lines,
			fmt.Sprintf("at      %d,%d", s.X, s.Y),
			fmt.Sprintf("facing  %s (%d°)", s.Facing, s.Facing.Degrees()))
	} else {
		lines = append(lines, "robot   not placed")
	}
	return strings.Join(lines, "\n")
}
