package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/smsshield/internal/app"
)

func newHealthCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the classification backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appOpts, closeLog, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			endpoint, err := app.CheckHealth(cmd.Context(), appOpts)
			if err != nil {
				appOpts.Logger.Warn("health check failed", "endpoint", endpoint, "error", err)
				return fmt.Errorf("backend unreachable: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s is reachable\n", endpoint)
			return nil
		},
	}
}
