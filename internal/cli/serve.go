package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/devlog-backend/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP API",
		GroupID: "run",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Serve(cmd.Context(), cfg)
		},
	}
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Short:   "Open the terminal dashboard",
		GroupID: "run",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return app.RunTUI(cmd.Context(), cfg)
		},
	}
}
