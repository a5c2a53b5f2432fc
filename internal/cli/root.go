package cli

import "github.com/spf13/cobra"

var version = "dev"

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "restaurant",
		Short:         "Restaurant menu and order service",
		Long:          "Serves the menu catalog and order workflow over HTTP, backed by memory or PostgreSQL.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (overrides CONFIG_FILE)")

	cmd.AddCommand(newServeCmd(&configPath))
	cmd.AddCommand(newMigrateCmd(&configPath))
	return cmd
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}
