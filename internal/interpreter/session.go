package interpreter

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

// ErrBoundsLocked is returned when the table is resized under a placed robot.
var ErrBoundsLocked = errors.New("table size cannot change while the robot is placed, reset first")

// Session owns the single robot and table of a running shell. It is not
// safe for concurrent use; shells feed it from one event loop.
type Session struct {
	ID      string
	machine Machine
	state   State
	bounds  Bounds
	pending error
	log     *slog.Logger
}

// NewSession starts an unplaced robot on a table of the given size. A nil
// logger discards log output.
func NewSession(b Bounds, budget int, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	id := uuid.NewString()
	m := Machine{Budget: budget}
	return &Session{
		ID:      id,
		machine: m,
		state:   m.Reset(),
		bounds:  b,
		log:     log.With("session", id),
	}
}

func (s *Session) State() State   { return s.state }
func (s *Session) Bounds() Bounds { return s.bounds }
func (s *Session) Budget() int    { return s.machine.Budget }

// Pending is the last rejection, kept until Dismiss, Reset or the next
// accepted command.
func (s *Session) Pending() error { return s.pending }

// Dispatch parses in and applies it. Empty and suppressed inputs are
// dropped without touching the session.
func (s *Session) Dispatch(in Input) error {
	cmd, err := ParseInput(in)
	if Ignorable(err) {
		return nil
	}
	if err != nil {
		return s.reject(in, err)
	}
	next, err := s.machine.Apply(s.state, s.bounds, cmd)
	if err != nil {
		return s.reject(in, err)
	}
	s.state = next
	s.pending = nil
	s.log.Debug("command applied",
		"command", cmd.String(),
		"x", next.X,
		"y", next.Y,
		"facing", next.Facing.String(),
		"moves", next.Moves)
	return nil
}

// Exec runs a typed command line.
func (s *Session) Exec(line string) error {
	return s.Dispatch(TextInput(line))
}

func (s *Session) reject(in Input, err error) error {
	s.pending = err
	attrs := []any{"kind", string(KindOf(err)), "error", err}
	if in.Source == SourceKey {
		attrs = append(attrs, "key", string(in.Key))
	} else {
		attrs = append(attrs, "line", in.Text)
	}
	s.log.Info("command rejected", attrs...)
	return err
}

// Dismiss clears the pending error.
func (s *Session) Dismiss() {
	s.pending = nil
}

// Reset takes the robot off the table and restores the move budget.
func (s *Session) Reset() {
	s.state = s.machine.Reset()
	s.pending = nil
	s.log.Debug("session reset", "moves", s.state.Moves)
}

// SetBounds resizes the table. Only allowed while the robot is unplaced.
func (s *Session) SetBounds(b Bounds) error {
	if s.state.Placed {
		return ErrBoundsLocked
	}
	s.bounds = b
	s.log.Debug("table resized", "rows", b.Rows, "cols", b.Cols)
	return nil
}
