package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"toyrobot/internal/config"
	"toyrobot/internal/interpreter"
	"toyrobot/internal/logging"
)

type options struct {
	cfgFile  string
	rows     int
	cols     int
	budget   int
	logLevel string
}

// NewRootCmd builds the toyrobot command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "toyrobot",
		Short: "Drive a toy robot around a table",
		Long: `A robot on a rectangular table, driven by PLACE X,Y,F | MOVE | LEFT | RIGHT.
Each placement grants a fixed budget of moves; the robot refuses to leave the table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ./toyrobot.yaml)")
	flags.IntVar(&opts.rows, "rows", 0, "table rows (overrides config)")
	flags.IntVar(&opts.cols, "cols", 0, "table columns (overrides config)")
	flags.IntVar(&opts.budget, "budget", 0, "moves per placement (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(newPlayCmd(opts), newRunCmd(opts))
	return root
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// load reads the config file and applies the flags the user set.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Table.Rows = o.rows
	}
	if flags.Changed("cols") {
		cfg.Table.Cols = o.cols
	}
	if flags.Changed("budget") {
		cfg.MoveBudget = o.budget
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	noColor := true
	if f, ok := w.(*os.File); ok && f == os.Stderr {
		noColor = os.Getenv("NO_COLOR") != ""
	}
	return logging.New(w, level, noColor), nil
}

func newSession(cfg *config.Config, log *slog.Logger) *interpreter.Session {
	s := interpreter.NewSession(cfg.Table, cfg.MoveBudget, log)
	log.Debug("session started", "session", s.ID, "table", cfg.Table.String(), "budget", cfg.MoveBudget)
	return s
}

func printLineErrors(w io.Writer, errs []*interpreter.LineError) {
	for _, le := range errs {
		kind := interpreter.KindOf(le)
		fmt.Fprintf(w, "line %d: %s: %s: %v\n", le.Line, le.Text, kind, le.Err)
	}
}
