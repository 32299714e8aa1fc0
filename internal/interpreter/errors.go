package interpreter

import "errors"

// ErrorKind identifies an entry of the error catalog.
type ErrorKind string

const (
	KindInvalidCommand        ErrorKind = "INVALID_COMMAND"
	KindNotInitialized        ErrorKind = "NOT_INITIALIZED"
	KindInvalidInitialCommand ErrorKind = "INVALID_INITIAL_COMMAND"
	KindWrongCoordinate       ErrorKind = "WRONG_COORDINATE"
	KindWrongDirection        ErrorKind = "WRONG_DIRECTION"
	KindWrongPlace            ErrorKind = "WRONG_PLACE"
	KindEmptyMove             ErrorKind = "EMPTY_MOVE"
	KindWrongMovingDirection  ErrorKind = "WRONG_MOVING_DIRECTION"
)

// Error is a rejected command. Two errors match under errors.Is when
// their kinds are equal.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidCommand        = &Error{KindInvalidCommand, "invalid command, use PLACE X,Y,F | MOVE | LEFT | RIGHT"}
	ErrNotInitialized        = &Error{KindNotInitialized, "robot is not placed yet, start with PLACE X,Y,F"}
	ErrInvalidInitialCommand = &Error{KindInvalidInitialCommand, "PLACE needs X, Y and F, e.g. PLACE 0,0,NORTH"}
	ErrWrongCoordinate       = &Error{KindWrongCoordinate, "coordinates must be non-negative integers"}
	ErrWrongDirection        = &Error{KindWrongDirection, "facing must be NORTH, EAST, SOUTH or WEST"}
	ErrWrongPlace            = &Error{KindWrongPlace, "position is outside the table"}
	ErrEmptyMove             = &Error{KindEmptyMove, "no moves left, reset to play again"}
	ErrWrongMovingDirection  = &Error{KindWrongMovingDirection, "the robot would fall off the table"}
)

// Not part of the catalog: the shell ignores these inputs.
var (
	ErrEmpty      = errors.New("empty command")
	ErrSuppressed = errors.New("key input suppressed while the text field has focus")
)

// KindOf returns the catalog kind carried by err, or "" when err is not
// a catalog error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Ignorable reports whether err is an input the shell drops silently.
func Ignorable(err error) bool {
	return errors.Is(err, ErrEmpty) || errors.Is(err, ErrSuppressed)
}
