package interpreter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineError is a rejected script line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

type ScriptOptions struct {
	// Strict stops at the first rejected line.
	Strict bool
}

type ScriptResult struct {
	State  State
	Errors []*LineError
}

// RunScript feeds every line of r to the session. Blank lines and lines
// starting with '#' are skipped. Lines may be of any length.
func RunScript(ctx context.Context, r io.Reader, s *Session, opts ScriptOptions) (ScriptResult, error) {
	var res ScriptResult
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			res.State = s.State()
			return res, fmt.Errorf("reading script: %w", readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		if err := ctx.Err(); err != nil {
			res.State = s.State()
			return res, err
		}
		text := strings.TrimSpace(line)
		if text != "" && !strings.HasPrefix(text, "#") {
			if err := s.Exec(text); err != nil {
				le := &LineError{Line: n, Text: text, Err: err}
				res.Errors = append(res.Errors, le)
				if opts.Strict {
					res.State = s.State()
					return res, le
				}
			}
		}
		if readErr != nil {
			break
		}
	}
	res.State = s.State()
	return res, nil
}
