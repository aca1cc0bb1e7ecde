package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/devlog-backend/internal/app"
	"github.com/heartmarshall/devlog-backend/internal/importer"
)

var errImportFailed = errors.New("some records were rejected")

func newImportCmd() *cobra.Command {
	var opts importer.Options

	cmd := &cobra.Command{
		Use:     "import <file-or-dir>...",
		Short:   "Import log entries and schedules from JSON files",
		Long:    "Reads JSON documents with \"entries\" and \"schedules\" arrays, using the REST field names, and creates each record. A directory contributes its *.json files.",
		GroupID: "data",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logger := app.NewLogger(cfg.Log)
			stores, err := app.OpenStores(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer stores.Close()

			svc := app.NewServices(stores, cfg, logger)
			res, err := importer.New(svc.Entries, svc.Schedules, logger).Run(cmd.Context(), args, opts)
			if res != nil {
				printImportResult(cmd, res, opts.DryRun)
			}
			if err != nil {
				return err
			}
			if len(res.Failed) > 0 {
				return errImportFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "validate without writing")
	cmd.Flags().BoolVar(&opts.StopOnError, "stop-on-error", false, "stop at the first rejected record")
	return cmd
}

func printImportResult(cmd *cobra.Command, res *importer.Result, dryRun bool) {
	out := cmd.OutOrStdout()
	verb := "imported"
	if dryRun {
		verb = "validated"
	}
	fmt.Fprintf(out, "%s %d entries and %d schedules from %d files\n", verb, res.Entries, res.Schedules, res.Files)
	for _, err := range res.Failed {
		fmt.Fprintln(out, "  rejected:", err)
	}
}
