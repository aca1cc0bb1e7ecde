package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/devlog-backend/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "devlog", app.BuildVersion())
		},
	}
}
