package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/devlog-backend/internal/app"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply or inspect database migrations",
		Long:      "Runs the embedded SQL migrations against the postgres record store. Defaults to up.",
		GroupID:   "data",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{app.MigrateUp, app.MigrateDown, app.MigrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := app.MigrateUp
			if len(args) == 1 {
				command = args[0]
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Migrate(cmd.Context(), cfg, command, cmd.OutOrStdout())
		},
	}
}
