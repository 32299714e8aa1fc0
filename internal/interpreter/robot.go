package interpreter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultBudget is the number of moves granted per placement.
const DefaultBudget = 15

// State is the robot as the shell sees it. The zero Facing and a false
// Placed mean the robot is not on the table.
type State struct {
	Placed bool
	X, Y   int
	Facing Direction
	Moves  int
}

// NewState returns an unplaced robot holding budget moves.
func NewState(budget int) State {
	return State{Moves: budget}
}

func (s State) String() string {
	if !s.Placed {
		return fmt.Sprintf("unplaced moves=%d", s.Moves)
	}
	return fmt.Sprintf("%d,%d,%s moves=%d", s.X, s.Y, s.Facing, s.Moves)
}

// Machine applies commands to robot states. It holds no state of its own.
type Machine struct {
	Budget int
}

// Apply runs cmd with DefaultBudget.
func Apply(s State, b Bounds, cmd Command) (State, error) {
	return Machine{Budget: DefaultBudget}.Apply(s, b, cmd)
}

// Reset is the unplaced robot holding the full budget.
func (m Machine) Reset() State {
	return NewState(m.Budget)
}

// Apply returns the state after cmd. On error s is returned unchanged.
func (m Machine) Apply(s State, b Bounds, cmd Command) (State, error) {
	if cmd.Kind == Place {
		return m.place(s, b, cmd)
	}
	if !s.Placed {
		switch cmd.Kind {
		case Move, Left, Right:
			return s, ErrNotInitialized
		}
		return s, fmt.Errorf("%w: %q", ErrInvalidCommand, cmd.Kind)
	}
	switch cmd.Kind {
	case Move:
		return m.move(s, b)
	case Left:
		s.Facing = s.Facing.Left()
		return s, nil
	case Right:
		s.Facing = s.Facing.Right()
		return s, nil
	}
	return s, fmt.Errorf("%w: %q", ErrInvalidCommand, cmd.Kind)
}

func (m Machine) place(s State, b Bounds, cmd Command) (State, error) {
	x, ok := parseCoordinate(cmd.X)
	if !ok {
		return s, fmt.Errorf("%w: x=%q", ErrWrongCoordinate, cmd.X)
	}
	y, ok := parseCoordinate(cmd.Y)
	if !ok {
		return s, fmt.Errorf("%w: y=%q", ErrWrongCoordinate, cmd.Y)
	}
	f, ok := ParseDirection(cmd.Facing)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrWrongDirection, cmd.Facing)
	}
	if !b.InBounds(x, y) {
		return s, fmt.Errorf("%w: (%d,%d) on %s table", ErrWrongPlace, x, y, b)
	}
	return State{Placed: true, X: x, Y: y, Facing: f, Moves: m.Budget}, nil
}

func (m Machine) move(s State, b Bounds) (State, error) {
	if s.Moves <= 0 {
		return s, ErrEmptyMove
	}
	dx, dy := s.Facing.Delta()
	nx, ny := s.X+dx, s.Y+dy
	if !b.InBounds(nx, ny) {
		return s, fmt.Errorf("%w: (%d,%d) on %s table", ErrWrongMovingDirection, nx, ny, b)
	}
	s.X, s.Y = nx, ny
	s.Moves--
	return s, nil
}

// parseCoordinate accepts base-10 integers that are zero or greater.
// Integers too large for int are still coordinates; they map to MaxInt,
// which no table contains.
func parseCoordinate(tok string) (int, bool) {
	n, err := strconv.Atoi(tok)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(tok, "-") {
		return math.MaxInt, true
	}
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
