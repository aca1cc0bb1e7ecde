package devlog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/devlog-backend/internal/config"
	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const (
	// SearchLinkLimit caps the related-issue picker's search results.
	SearchLinkLimit = 20
	// RecentLinkLimit is the default size of the picker's recent list.
	RecentLinkLimit = 10
)

type entryRepo interface {
	List(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error)
	ListPage(ctx context.Context, f domain.EntryFilter, limit, offset int) ([]domain.LogEntry, int, error)
	GetByID(ctx context.Context, id int64) (*domain.LogEntry, error)
	GetBriefs(ctx context.Context, ids []int64) ([]domain.EntryBrief, error)
	SearchBriefs(ctx context.Context, term string, excludeID int64, limit int) ([]domain.EntryBrief, error)
	Create(ctx context.Context, e *domain.LogEntry) (*domain.LogEntry, error)
	Update(ctx context.Context, id int64, p domain.EntryUpdateParams) (*domain.LogEntry, error)
	Delete(ctx context.Context, id int64) error
}

// Service manages dev-log entries.
type Service struct {
	entries     entryRepo
	log         *slog.Logger
	pageSize    int
	maxPageSize int
	now         func() time.Time
}

// NewService creates a new devlog service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	timeline config.TimelineConfig,
) *Service {
	return &Service{
		entries:     entries,
		log:         log.With("service", "devlog"),
		pageSize:    timeline.PageSize,
		maxPageSize: timeline.MaxPageSize,
		now:         time.Now,
	}
}

func (s *Service) today() time.Time {
	return domain.DateOf(s.now())
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// cleanList trims every item, drops blanks and keeps the first of duplicates.
func cleanList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// cleanIDs drops non-positive and duplicate ids, keeping order.
func cleanIDs(in []int64) []int64 {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(in))
	out := make([]int64, 0, len(in))
	for _, id := range in {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
