// Package importer loads log entries and schedule items from JSON files
// into the record store through the application services.
package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/devlog"
	"github.com/heartmarshall/devlog-backend/internal/service/schedule"
)

type entryCreator interface {
	CreateEntry(ctx context.Context, input devlog.CreateEntryInput) (*domain.LogEntry, error)
}

type scheduleCreator interface {
	Create(ctx context.Context, input schedule.CreateInput) (*domain.ScheduleItem, error)
}

// Options controls an import run.
type Options struct {
	// DryRun validates every record without writing.
	DryRun bool
	// StopOnError aborts at the first rejected record.
	StopOnError bool
}

// Result summarizes an import run.
type Result struct {
	Files     int
	Entries   int
	Schedules int
	Failed    []error
}

// Importer writes import documents through the services.
type Importer struct {
	entries   entryCreator
	schedules scheduleCreator
	log       *slog.Logger
}

// New creates an Importer.
func New(entries entryCreator, schedules scheduleCreator, log *slog.Logger) *Importer {
	return &Importer{entries: entries, schedules: schedules, log: log.With("component", "importer")}
}

// Run imports every path. A directory contributes its *.json files in name
// order. Rejected records are collected in Result.Failed; the returned error
// is reserved for unreadable input and context cancellation.
func (im *Importer) Run(ctx context.Context, paths []string, opts Options) (*Result, error) {
	files, err := expand(paths)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, path := range files {
		doc, err := readDocument(path)
		if err != nil {
			return res, err
		}
		res.Files++

		if err := im.importDocument(ctx, path, doc, opts, res); err != nil {
			return res, err
		}
	}

	im.log.InfoContext(ctx, "import finished",
		slog.Int("files", res.Files),
		slog.Int("entries", res.Entries),
		slog.Int("schedules", res.Schedules),
		slog.Int("failed", len(res.Failed)),
		slog.Bool("dry_run", opts.DryRun),
	)
	return res, nil
}

func (im *Importer) importDocument(ctx context.Context, path string, doc *Document, opts Options, res *Result) error {
	fail := func(kind string, i int, err error) error {
		err = fmt.Errorf("%s: %s[%d]: %w", path, kind, i, err)
		res.Failed = append(res.Failed, err)
		im.log.WarnContext(ctx, "record rejected", slog.String("error", err.Error()))
		if opts.StopOnError {
			return err
		}
		return nil
	}

	for i, e := range doc.Entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		in, err := e.Input()
		if err == nil && !opts.DryRun {
			_, err = im.entries.CreateEntry(ctx, in)
		}
		if err != nil {
			if stop := fail("entries", i, err); stop != nil {
				return stop
			}
			continue
		}
		res.Entries++
	}

	for i, s := range doc.Schedules {
		if err := ctx.Err(); err != nil {
			return err
		}
		in, err := s.Input()
		if err == nil && !opts.DryRun {
			_, err = im.schedules.Create(ctx, in)
		}
		if err != nil {
			if stop := fail("schedules", i, err); stop != nil {
				return stop
			}
			continue
		}
		res.Schedules++
	}
	return nil
}

func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("import: %w", err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(p, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("import: list %s: %w", p, err)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files, nil
}

func readDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("import: read %s: %w", path, err)
	}
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("import: decode %s: %w", path, err)
	}
	return &doc, nil
}
