// Package schedule implements the schedules repository.
package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/devlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const table = "schedules"

var (
	columns = []string{
		"id", "created_at", "title", "description", "start_date", "due_date",
		"status", "priority", "dev_phase", "assignees",
	}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides schedules persistence.
type Repo struct {
	q postgres.Querier
}

// New creates a Repo.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// List returns schedule items ordered by due date, earliest first.
// With activeOnly, completed items are left out.
func (r *Repo) List(ctx context.Context, activeOnly bool) ([]domain.ScheduleItem, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("due_date ASC", "id ASC")

	if activeOnly {
		q = q.Where(sq.NotEq{"status": string(domain.StatusDone)})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []scheduleRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, table, 0)
	}

	out := make([]domain.ScheduleItem, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// GetByID returns a single item or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// Create inserts a new item and returns the stored row.
func (r *Repo) Create(ctx context.Context, s *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("title", "description", "start_date", "due_date", "status", "priority", "dev_phase", "assignees").
		Values(s.Title, s.Description, domain.DateOf(s.StartDate), domain.DateOf(s.DueDate),
			string(s.Status), string(s.Priority), phaseArg(s.Phase), s.Assignees).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}
	return r.getOne(ctx, 0, query, args)
}

// Update applies the non-nil fields of p and returns the stored row.
// A missing id yields domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, id int64, p domain.ScheduleUpdateParams) (*domain.ScheduleItem, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update(table).Where(sq.Eq{"id": id}).Suffix(returning)

	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.Description != nil {
		if strings.TrimSpace(*p.Description) == "" {
			b = b.Set("description", nil)
		} else {
			b = b.Set("description", *p.Description)
		}
	}
	if p.StartDate != nil {
		b = b.Set("start_date", domain.DateOf(*p.StartDate))
	}
	if p.DueDate != nil {
		b = b.Set("due_date", domain.DateOf(*p.DueDate))
	}
	if p.Status != nil {
		b = b.Set("status", string(*p.Status))
	}
	if p.Priority != nil {
		b = b.Set("priority", string(*p.Priority))
	}
	if p.Phase != nil {
		b = b.Set("dev_phase", phaseArg(p.Phase))
	}
	if p.Assignees != nil {
		b = b.Set("assignees", *p.Assignees)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// Delete removes an item. A missing id yields domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, table, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, id int64, query string, args []any) (*domain.ScheduleItem, error) {
	var row scheduleRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, table, id)
	}
	s := row.toDomain()
	return &s, nil
}

// phaseArg maps a nil or empty phase to SQL NULL.
func phaseArg(p *domain.Phase) *string {
	if p == nil || *p == "" {
		return nil
	}
	s := string(*p)
	return &s
}

type scheduleRow struct {
	ID          int64     `db:"id"`
	CreatedAt   time.Time `db:"created_at"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	StartDate   time.Time `db:"start_date"`
	DueDate     time.Time `db:"due_date"`
	Status      string    `db:"status"`
	Priority    string    `db:"priority"`
	DevPhase    *string   `db:"dev_phase"`
	Assignees   []string  `db:"assignees"`
}

func (row scheduleRow) toDomain() domain.ScheduleItem {
	s := domain.ScheduleItem{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		StartDate:   domain.DateOf(row.StartDate),
		DueDate:     domain.DateOf(row.DueDate),
		Status:      domain.ScheduleStatus(row.Status),
		Priority:    domain.Priority(row.Priority),
		Assignees:   row.Assignees,
		CreatedAt:   row.CreatedAt,
	}
	if row.DevPhase != nil {
		p := domain.Phase(*row.DevPhase)
		s.Phase = &p
	}
	return s
}
