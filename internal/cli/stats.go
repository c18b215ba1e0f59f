package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/mockify/internal/model"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show interview statistics from the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			var stats model.InterviewStats
			if err := app.Client.Get(cmd.Context(), "/stats").Decode(&stats); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(stats)
			return nil
		},
	}
}
