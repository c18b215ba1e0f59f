package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult
			if err := app.Client.Get(cmd.Context(), "/health").Decode(&result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
