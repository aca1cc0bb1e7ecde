package postgrest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const commentsTable = "comments"

// CommentRepo is the comments table over the REST API.
type CommentRepo struct {
	c *Client
}

// ListByEntry returns the comments of an entry, oldest first.
func (r *CommentRepo) ListByEntry(ctx context.Context, entryID int64) ([]domain.Comment, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("dev_history_id", eqID(entryID))
	q.Set("order", "created_at.asc,id.asc")

	var rows []commentJSON
	if err := r.c.get(ctx, commentsTable, entryID, q, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Comment, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Create inserts a comment. A missing parent entry yields domain.ErrNotFound.
func (r *CommentRepo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	body := commentInsert{DevHistoryID: c.EntryID, AuthorName: c.Author, Content: c.Content}

	var rows []commentJSON
	if err := r.c.write(ctx, http.MethodPost, commentsTable, c.EntryID, nil, body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w: empty insert response", commentsTable, domain.ErrRequestFailed)
	}
	out := rows[0].toDomain()
	return &out, nil
}

// Delete removes a comment. A missing id yields domain.ErrNotFound.
func (r *CommentRepo) Delete(ctx context.Context, id int64) error {
	var rows []struct {
		ID int64 `json:"id"`
	}
	q := idFilter(id)
	q.Set("select", "id")
	if err := r.c.write(ctx, http.MethodDelete, commentsTable, id, q, nil, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s %d: %w", commentsTable, id, domain.ErrNotFound)
	}
	return nil
}

// CountByEntries returns the number of comments per entry id.
// The API has no GROUP BY, so the parent ids are fetched and tallied here.
func (r *CommentRepo) CountByEntries(ctx context.Context, entryIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(entryIDs))
	if len(entryIDs) == 0 {
		return counts, nil
	}

	q := url.Values{}
	q.Set("select", "dev_history_id")
	q.Set("dev_history_id", idList(entryIDs))

	var rows []struct {
		DevHistoryID int64 `json:"dev_history_id"`
	}
	if err := r.c.get(ctx, commentsTable, 0, q, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.DevHistoryID]++
	}
	return counts, nil
}

