package postgrest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const schedulesTable = "schedules"

// ScheduleRepo is the schedules table over the REST API.
type ScheduleRepo struct {
	c *Client
}

// List returns schedule items by due date, earliest first.
func (r *ScheduleRepo) List(ctx context.Context, activeOnly bool) ([]domain.ScheduleItem, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "due_date.asc,id.asc")
	if activeOnly {
		q.Set("status", "neq."+string(domain.StatusDone))
	}

	var rows []scheduleJSON
	if err := r.c.get(ctx, schedulesTable, 0, q, &rows); err != nil {
		return nil, err
	}

	out := make([]domain.ScheduleItem, 0, len(rows))
	for _, row := range rows {
		s, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// GetByID returns a single item or domain.ErrNotFound.
func (r *ScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	q := idFilter(id)
	q.Set("select", "*")

	var rows []scheduleJSON
	if err := r.c.get(ctx, schedulesTable, id, q, &rows); err != nil {
		return nil, err
	}
	return firstSchedule(rows, id)
}

// Create inserts a new item and returns the stored row.
func (r *ScheduleRepo) Create(ctx context.Context, s *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	var rows []scheduleJSON
	if err := r.c.write(ctx, http.MethodPost, schedulesTable, 0, nil, toScheduleInsert(s), &rows); err != nil {
		return nil, err
	}
	return firstSchedule(rows, 0)
}

// Update applies the set fields of p. A missing id yields domain.ErrNotFound.
func (r *ScheduleRepo) Update(ctx context.Context, id int64, p domain.ScheduleUpdateParams) (*domain.ScheduleItem, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var rows []scheduleJSON
	if err := r.c.write(ctx, http.MethodPatch, schedulesTable, id, idFilter(id), schedulePatch(p), &rows); err != nil {
		return nil, err
	}
	return firstSchedule(rows, id)
}

// Delete removes an item. A missing id yields domain.ErrNotFound.
func (r *ScheduleRepo) Delete(ctx context.Context, id int64) error {
	var rows []struct {
		ID int64 `json:"id"`
	}
	q := idFilter(id)
	q.Set("select", "id")
	if err := r.c.write(ctx, http.MethodDelete, schedulesTable, id, q, nil, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s %d: %w", schedulesTable, id, domain.ErrNotFound)
	}
	return nil
}

func firstSchedule(rows []scheduleJSON, id int64) (*domain.ScheduleItem, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %d: %w", schedulesTable, id, domain.ErrNotFound)
	}
	s, err := rows[0].toDomain()
	if err != nil {
		return nil, err
	}
	return &s, nil
}
