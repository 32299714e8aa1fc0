package interpreter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// CommandKind names one of the commands the robot understands.
type CommandKind string

const (
	Place CommandKind = "PLACE"
	Move  CommandKind = "MOVE"
	Left  CommandKind = "LEFT"
	Right CommandKind = "RIGHT"
)

var commandKinds = map[CommandKind]bool{Place: true, Move: true, Left: true, Right: true}

// Command is a parsed instruction. For PLACE the X, Y and Facing tokens
// are kept as typed; they are checked when the command is applied.
type Command struct {
	Kind   CommandKind
	X      string
	Y      string
	Facing string
}

func (c Command) String() string {
	if c.Kind == Place {
		return fmt.Sprintf("PLACE %s,%s,%s", c.X, c.Y, c.Facing)
	}
	return string(c.Kind)
}

// Source tells the parser where an input came from.
type Source int

const (
	SourceText Source = iota
	SourceKey
)

// Input is one user action handed over by the shell.
type Input struct {
	Source Source
	// Text is the command line for SourceText.
	Text string
	// Key is the discrete command for SourceKey.
	Key CommandKind
	// TextFocused is set while the command line has input focus.
	TextFocused bool
}

func TextInput(line string) Input {
	return Input{Source: SourceText, Text: line}
}

func KeyInput(key CommandKind, textFocused bool) Input {
	return Input{Source: SourceKey, Key: key, TextFocused: textFocused}
}

// Line is a command line: a name followed by its arguments, separated by
// any mix of whitespace and commas.
type Line struct {
	Name string   `parser:"@Word"`
	Args []string `parser:"@Word*"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Sep", Pattern: `[\s\p{Z}\v\x{85}\x{FEFF},]+`},
	{Name: "Word", Pattern: `[^\s\p{Z}\v\x{85}\x{FEFF},]+`},
})

var parser = participle.MustBuild[Line](
	participle.Lexer(lineLexer),
	participle.Elide("Sep"),
	participle.Map(func(t lexer.Token) (lexer.Token, error) {
		t.Value = strings.ToUpper(t.Value)
		return t, nil
	}, "Word"),
)

// Parse turns a command line into a Command. It checks only the command
// name and the number of PLACE arguments.
func Parse(raw string) (Command, error) {
	if strings.TrimFunc(raw, isSep) == "" {
		return Command{}, ErrEmpty
	}
	line, err := parser.ParseString("command", raw)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	kind := CommandKind(line.Name)
	if !commandKinds[kind] {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, line.Name)
	}
	if kind != Place {
		return Command{Kind: kind}, nil
	}
	if len(line.Args) < 3 {
		return Command{}, ErrInvalidInitialCommand
	}
	return Command{Kind: Place, X: line.Args[0], Y: line.Args[1], Facing: line.Args[2]}, nil
}

// ParseInput resolves an Input into a Command. Key inputs win over the
// text line, but are dropped while the text field has focus.
func ParseInput(in Input) (Command, error) {
	if in.Source != SourceKey {
		return Parse(in.Text)
	}
	if in.TextFocused {
		return Command{}, ErrSuppressed
	}
	switch in.Key {
	case Move, Left, Right:
		return Command{Kind: in.Key}, nil
	}
	return Command{}, fmt.Errorf("%w: key %q", ErrInvalidCommand, in.Key)
}

// isSep matches the Sep token: Unicode white space, the byte order mark
// and commas.
func isSep(r rune) bool {
	return r == ',' || r == '\uFEFF' || unicode.IsSpace(r) || unicode.Is(unicode.Z, r)
}
