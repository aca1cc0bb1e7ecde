package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
)

// List returns every schedule item by due date.
func (s *Service) List(ctx context.Context) ([]domain.ScheduleItem, error) {
	items, err := s.schedules.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return items, nil
}

// ListActive returns the items that are not done, by due date.
func (s *Service) ListActive(ctx context.Context) ([]domain.ScheduleItem, error) {
	items, err := s.schedules.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list active schedules: %w", err)
	}
	return items, nil
}

// Get returns one schedule item.
func (s *Service) Get(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}
	item, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return item, nil
}

// Create adds a schedule item.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.ScheduleItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item := &domain.ScheduleItem{
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		StartDate:   domain.DateOf(*input.StartDate),
		DueDate:     domain.DateOf(*input.DueDate),
		Status:      input.Status,
		Priority:    input.Priority,
		Assignees:   cleanAssignees(input.Assignees),
	}
	if item.Status == "" {
		item.Status = domain.StatusUpcoming
	}
	if item.Priority == "" {
		item.Priority = domain.PriorityNormal
	}
	if input.Phase != nil && *input.Phase != "" {
		p := *input.Phase
		item.Phase = &p
	}

	created, err := s.schedules.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	s.log.InfoContext(ctx, "schedule created",
		slog.Int64("schedule_id", created.ID),
		slog.String("due_date", domain.FormatDate(created.DueDate)),
	)
	return created, nil
}

// Update applies a partial edit. When only one of the dates changes, the
// new range is checked against the stored item.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.ScheduleItem, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}
	if input.isEmpty() {
		return nil, domain.NewValidationError("input", "at least one field must be provided")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if (input.StartDate == nil) != (input.DueDate == nil) {
		current, err := s.schedules.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("update schedule: %w", err)
		}
		start, due := current.StartDate, current.DueDate
		if input.StartDate != nil {
			start = *input.StartDate
		}
		if input.DueDate != nil {
			due = *input.DueDate
		}
		if errs := validateRange(nil, start, due); len(errs) > 0 {
			return nil, &domain.ValidationError{Errors: errs}
		}
	}

	params := domain.ScheduleUpdateParams{
		Status:   input.Status,
		Priority: input.Priority,
		Phase:    input.Phase,
	}
	if input.Title != nil {
		t := strings.TrimSpace(*input.Title)
		params.Title = &t
	}
	if input.Description != nil {
		d := strings.TrimSpace(*input.Description)
		params.Description = &d
	}
	if input.StartDate != nil {
		d := domain.DateOf(*input.StartDate)
		params.StartDate = &d
	}
	if input.DueDate != nil {
		d := domain.DateOf(*input.DueDate)
		params.DueDate = &d
	}
	if input.Assignees != nil {
		a := cleanAssignees(*input.Assignees)
		params.Assignees = &a
	}

	updated, err := s.schedules.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update schedule: %w", err)
	}

	s.log.InfoContext(ctx, "schedule updated", slog.Int64("schedule_id", id))
	return updated, nil
}

// ChangeStatus moves an item to another status.
func (s *Service) ChangeStatus(ctx context.Context, id int64, status domain.ScheduleStatus) (*domain.ScheduleItem, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid value")
	}
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}

	updated, err := s.schedules.Update(ctx, id, domain.ScheduleUpdateParams{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("change schedule status: %w", err)
	}

	s.log.InfoContext(ctx, "schedule status changed",
		slog.Int64("schedule_id", id),
		slog.String("status", status.String()),
	)
	return updated, nil
}

// Delete removes a schedule item.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if err := s.schedules.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	s.log.InfoContext(ctx, "schedule deleted", slog.Int64("schedule_id", id))
	return nil
}

// Board builds the schedule board as of today. A zero today means now.
func (s *Service) Board(ctx context.Context, today time.Time) (*dashboard.Board, error) {
	if today.IsZero() {
		today = s.now()
	}
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	board := dashboard.BuildBoard(items, today)
	return &board, nil
}
