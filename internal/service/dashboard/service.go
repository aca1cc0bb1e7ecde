package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// RecentLimit is the number of filtered entries shown on the dashboard.
const RecentLimit = 10

type entryLister interface {
	List(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error)
}

type scheduleLister interface {
	List(ctx context.Context, activeOnly bool) ([]domain.ScheduleItem, error)
}

// Service composes dashboard views from the stores.
type Service struct {
	entries   entryLister
	schedules scheduleLister
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new dashboard service.
func NewService(log *slog.Logger, entries entryLister, schedules scheduleLister) *Service {
	return &Service{
		entries:   entries,
		schedules: schedules,
		log:       log.With("service", "dashboard"),
		now:       time.Now,
	}
}

// Overview is the dashboard page.
type Overview struct {
	Selection Selection
	Stats     Stats // over the filtered entries
	Overall   Stats // over every entry
	Recent    []domain.LogEntry
	Schedule  ScheduleStats
	Today     time.Time
}

// Overview loads entries and schedules concurrently and aggregates them.
func (s *Service) Overview(ctx context.Context, sel Selection) (*Overview, error) {
	var (
		entries []domain.LogEntry
		items   []domain.ScheduleItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.entries.List(gctx, domain.EntryFilter{})
		if err != nil {
			return fmt.Errorf("load entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		items, err = s.schedules.List(gctx, false)
		if err != nil {
			return fmt.Errorf("load schedules: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard overview: %w", err)
	}

	filtered := FilterEntries(entries, sel)
	recent := filtered
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	s.log.DebugContext(ctx, "overview computed",
		slog.Int("entries", len(entries)),
		slog.Int("filtered", len(filtered)),
	)

	today := domain.DateOf(s.now())
	return &Overview{
		Selection: sel,
		Stats:     ComputeStats(filtered),
		Overall:   ComputeStats(entries),
		Recent:    recent,
		Schedule:  ComputeScheduleStats(items, today),
		Today:     today,
	}, nil
}

// Schedule builds the schedule board as of today. A zero today means now.
func (s *Service) Schedule(ctx context.Context, today time.Time) (*Board, error) {
	if today.IsZero() {
		today = s.now()
	}
	items, err := s.schedules.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("schedule board: %w", err)
	}
	board := BuildBoard(items, today)
	return &board, nil
}
