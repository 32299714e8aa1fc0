package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"toyrobot/internal/interpreter"
)

func newRunCmd(opts *options) *cobra.Command {
	var strict, show bool
	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a command script against the robot",
		Long: `Reads one command per line from the script file, or from stdin when the
file is omitted or "-". Blank lines and lines starting with '#' are skipped.
Rejected lines are reported and the run continues unless --strict is set.`,
		Example: `  # Five by five table from the flags
  toyrobot run --rows 5 --cols 5 moves.txt

  # Pipe commands in and draw the table at the end
  printf 'PLACE 0,0,NORTH\nMOVE\nRIGHT\n' | toyrobot run --show`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			s := newSession(cfg, log)
			res, runErr := interpreter.RunScript(cmd.Context(), in, s, interpreter.ScriptOptions{Strict: strict})

			out := cmd.OutOrStdout()
			printLineErrors(out, res.Errors)
			if show {
				interpreter.Display(out, res.State, s.Bounds())
			} else {
				fmt.Fprintln(out, res.State)
			}
			var le *interpreter.LineError
			if errors.As(runErr, &le) {
				// already printed with the other rejected lines
				return &stoppedError{line: le}
			}
			return runErr
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "stop at the first rejected command")
	cmd.Flags().BoolVar(&show, "show", false, "draw the table after the run")
	return cmd
}

// stoppedError ends a strict run without repeating the rejected line.
type stoppedError struct {
	line *interpreter.LineError
}

func (e *stoppedError) Error() string {
	return fmt.Sprintf("script stopped at line %d", e.line.Line)
}

func (e *stoppedError) Unwrap() error { return e.line }
