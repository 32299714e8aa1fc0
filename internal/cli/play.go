package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"toyrobot/internal/config"
	"toyrobot/internal/logging"
	"toyrobot/internal/tui"
)

func newPlayCmd(opts *options) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Drive the robot interactively",
		Long: `Opens the terminal shell. Type commands in the command field, or tab to the
table and use space to move and the arrow keys to turn.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}

			log, closeLog, err := shellLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			return tui.Run(newSession(cfg, log), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write the session log to this file")
	return cmd
}

// shellLogger opens the log of the interactive shell. The shell owns the
// terminal, so the log goes to cfg.LogFile or nowhere.
func shellLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, nil, err
	}
	if cfg.LogFile == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log, err := newLogger(cfg, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return log, func() { f.Close() }, nil
}
