// Package comment implements the comments repository.
package comment

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

const table = "comments"

var columns = []string{"id", "created_at", "dev_history_id", "author_name", "content"}

// Repo provides comments persistence.
type Repo struct {
	q postgres.Querier
}

// New creates a Repo.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ListByEntry returns the comments of an entry, oldest first.
func (r *Repo) ListByEntry(ctx context.Context, entryID int64) ([]domain.Comment, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"dev_history_id": entryID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []commentRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, table, entryID)
	}

	out := make([]domain.Comment, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Create inserts a comment. A missing parent entry yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("dev_history_id", "author_name", "content").
		Values(c.EntryID, c.Author, c.Content).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var row commentRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "dev_history", c.EntryID)
	}
	out := row.toDomain()
	return &out, nil
}

// Delete removes a comment. A missing id yields domain.ErrNotFound.
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

// CountByEntries returns the number of comments per entry id.
// Entries without comments are absent from the result.
func (r *Repo) CountByEntries(ctx context.Context, entryIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(entryIDs))
	if len(entryIDs) == 0 {
		return counts, nil
	}

	query, args, err := postgres.Builder().
		Select("dev_history_id", "count(*) AS n").
		From(table).
		Where(sq.Eq{"dev_history_id": entryIDs}).
		GroupBy("dev_history_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []struct {
		EntryID int64 `db:"dev_history_id"`
		N       int64 `db:"n"`
	}
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, table, 0)
	}

	for _, row := range rows {
		counts[row.EntryID] = int(row.N)
	}
	return counts, nil
}

type commentRow struct {
	ID         int64     `db:"id"`
	CreatedAt  time.Time `db:"created_at"`
	EntryID    int64     `db:"dev_history_id"`
	AuthorName string    `db:"author_name"`
	Content    string    `db:"content"`
}

func (row commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:        row.ID,
		EntryID:   row.EntryID,
		Author:    row.AuthorName,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}
}
