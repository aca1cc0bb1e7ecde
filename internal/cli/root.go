// Package cli holds the devlog command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/devlog-backend/internal/config"
)

// NewRootCmd builds the devlog command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "devlog",
		Short:         "Development log and schedule tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				return os.Setenv("CONFIG_PATH", configPath)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml, or $CONFIG_PATH)")

	root.AddGroup(
		&cobra.Group{ID: "run", Title: "Run Commands:"},
		&cobra.Group{ID: "data", Title: "Data Commands:"},
	)

	root.AddCommand(
		newServeCmd(),
		newTUICmd(),
		newMigrateCmd(),
		newStatsCmd(),
		newImportCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
