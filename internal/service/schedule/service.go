package schedule

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

type scheduleRepo interface {
	List(ctx context.Context, activeOnly bool) ([]domain.ScheduleItem, error)
	GetByID(ctx context.Context, id int64) (*domain.ScheduleItem, error)
	Create(ctx context.Context, s *domain.ScheduleItem) (*domain.ScheduleItem, error)
	Update(ctx context.Context, id int64, p domain.ScheduleUpdateParams) (*domain.ScheduleItem, error)
	Delete(ctx context.Context, id int64) error
}

// Service manages the schedule board.
type Service struct {
	schedules scheduleRepo
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new schedule service.
func NewService(log *slog.Logger, schedules scheduleRepo) *Service {
	return &Service{
		schedules: schedules,
		log:       log.With("service", "schedule"),
		now:       time.Now,
	}
}

// cleanAssignees trims names, drops blanks and keeps the first of duplicates.
func cleanAssignees(in []string) []string {
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
	return out
}

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
