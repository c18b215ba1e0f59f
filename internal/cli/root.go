package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/mockify/internal/config"
	"github.com/mcoot/mockify/internal/factory"
)

var (
	cfg       *Config
	clientCfg config.Client
	app       *factory.ClientApp
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "mockify",
		Short: "CLI client for the Mockify interview backend",
		Long: `mockify is a command line client for the Mockify mock interview backend.

It checks backend health, asks for interview questions through the configured
AI mode, keeps a local demo login, shows interview statistics and screens resumes.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := cfg.Resolve()
			if err != nil {
				return err
			}
			clientCfg = resolved

			app, err = newApp(cfg, clientCfg)
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "API base URL (env: MOCKIFY_API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.Profile, "profile", cfg.Profile, "Config profile: default, local, cloud (env: MOCKIFY_PROFILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.AIMode, "ai-mode", cfg.AIMode, "AI mode: local, cloud (env: MOCKIFY_AI_MODE)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageFile, "storage-file", cfg.StorageFile, "Client storage file (env: MOCKIFY_STORAGE_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newInterviewCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newDemoLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newNavCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newResumeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
