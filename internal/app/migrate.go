package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/devlog-backend/internal/config"
	"github.com/heartmarshall/devlog-backend/migrations"
)

// Migration commands.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// ErrMigrateUnsupported is returned when the record store is not postgres.
var ErrMigrateUnsupported = errors.New("migrations need the postgres record store")

// Migrate applies, rolls back or lists the embedded migrations and reports
// each step to w.
func Migrate(ctx context.Context, cfg *config.Config, command string, w io.Writer) error {
	if cfg.RecordDriver() != config.DriverPostgres {
		return ErrMigrateUnsupported
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	switch command {
	case MigrateUp:
		results, err := provider.Up(ctx)
		printResults(w, results)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		if len(results) == 0 {
			fmt.Fprintln(w, "no migrations to apply")
		}
	case MigrateDown:
		result, err := provider.Down(ctx)
		if result != nil {
			printResults(w, []*goose.MigrationResult{result})
		}
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, st := range statuses {
			applied := "pending"
			if st.State == goose.StateApplied {
				applied = "applied " + st.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(w, "%05d  %-30s  %s\n", st.Source.Version, st.Source.Path, applied)
		}
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	return nil
}

func printResults(w io.Writer, results []*goose.MigrationResult) {
	for _, r := range results {
		status := "OK"
		if r.Error != nil {
			status = "FAILED: " + r.Error.Error()
		}
		fmt.Fprintf(w, "%-4s %05d  %-30s  %s (%s)\n", r.Direction, r.Source.Version, r.Source.Path, status, r.Duration)
	}
}
