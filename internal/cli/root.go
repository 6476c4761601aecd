package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/restevesd/arnes/config"
	"github.com/restevesd/arnes/internal/logging"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute runs the bootfit command line and exits non-zero on failure
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportedError marks a failure whose message a command already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func printError(w io.Writer, err error) {
	var re *reportedError
	if errors.As(err, &re) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

// NewRootCmd builds the bootfit command tree. Running it without a subcommand serves the API.
func NewRootCmd() *cobra.Command {
	var (
		logLevel string
		cfg      *config.Config
	)

	cmd := &cobra.Command{
		Use:           "bootfit",
		Short:         "Dog boot size advisor",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if logLevel != "" {
				level, err := log.ParseLevel(logLevel)
				if err != nil {
					return err
				}
				loaded.LogLevel = level
			}
			if err := logging.Setup(cmd.ErrOrStderr(), loaded.LogLevel, loaded.LogFormat); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(func() *config.Config { return cfg }))
	cmd.AddCommand(newCheckCmd(func() *config.Config { return cfg }))
	return cmd
}
