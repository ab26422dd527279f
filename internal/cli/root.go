// Package cli is the terminal presentation layer of the directory client.
package cli

import (
	"fmt"
	"slices"
	"time"

	"go-workforce/internal/attendance"
	"go-workforce/internal/config"
	"go-workforce/internal/employee"
	"go-workforce/internal/gateway"
	"go-workforce/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Remote is everything the client needs from the remote service.
type Remote interface {
	store.Fetcher
	employee.Gateway
	attendance.Gateway
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	BaseURL    string
	Format     string // "json" | "text"
	Verbose    bool

	dial func(cfg config.Client, logger *zap.Logger) Remote
	now  func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the directory CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	if opts.dial == nil {
		opts.dial = func(cfg config.Client, logger *zap.Logger) Remote {
			return gateway.New(cfg.BaseURL, cfg.Timeout, logger)
		}
	}
	if opts.now == nil {
		opts.now = time.Now
	}

	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Workforce directory client",
		Long:  "Browse, create and delete employees and record daily attendance against the directory service.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file (default $"+config.EnvConfigPath+")")
	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "", "directory service URL, overrides config")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewEmployeesCommand(opts))
	cmd.AddCommand(NewAttendanceCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}
