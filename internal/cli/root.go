package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/five82/smsshield/internal/app"
	"github.com/five82/smsshield/internal/config"
	"github.com/five82/smsshield/internal/logging"
)

// rootOptions holds the persistent flags that are not read through config.
type rootOptions struct {
	configPath string
	verbose    bool
	noColor    bool
	userAgent  string
}

// ExitError carries a process exit code out of a command without printing
// anything further.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCommand creates the root command.
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &rootOptions{userAgent: "smsshield/" + displayVersion(version)}

	rootCmd := &cobra.Command{
		Use:   "smsshield",
		Short: "SMS spam classifier",
		Long: `SMS Shield checks whether a text message looks like spam by asking a
remote classification service.

Run without arguments for the interactive terminal UI, or use the classify
subcommand from scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			appOpts, closeLog, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog()
			return app.Run(cmd.Context(), appOpts)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file path (default "+config.DefaultPath()+")")
	flags.StringP("endpoint", "e", "", "classification endpoint URL")
	flags.String("timeout", "", "request timeout, e.g. 10s (default 10s)")
	flags.String("log-file", "", "log file path (default ~/.local/state/smsshield/smsshield.log)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(newClassifyCommand(opts))
	rootCmd.AddCommand(newHealthCommand(opts))
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "smsshield: %v\n", err)
	return 1
}

// setup loads configuration and opens the log file. The returned func
// closes the log.
func (o *rootOptions) setup(cmd *cobra.Command) (app.Options, func(), error) {
	cfg, err := config.Load(o.configPath, cmd.Flags())
	if err != nil {
		return app.Options{}, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.Open(cfg.LogFile, o.verbose)
	if err != nil {
		return app.Options{}, nil, err
	}
	logger.Debug("config loaded",
		"command", cmd.Name(),
		"endpoint", cfg.Endpoint,
		"timeout", cfg.Timeout,
		"log_file", logger.Path())

	closeLog := func() { _ = logger.Close() }
	return app.Options{
		Config:    cfg,
		Logger:    logger.Logger,
		UserAgent: o.userAgent,
	}, closeLog, nil
}

func displayVersion(version string) string {
	if version == "" || version == "dev" {
		return "dev"
	}
	return version
}
