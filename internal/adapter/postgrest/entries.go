package postgrest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const (
	entriesTable       = "dev_history"
	defaultSearchLimit = 20
)

// EntryRepo is the dev_history table over the REST API.
type EntryRepo struct {
	c *Client
}

// List returns every entry matching f, newest event first.
func (r *EntryRepo) List(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error) {
	var rows []entryJSON
	if err := r.c.get(ctx, entriesTable, 0, entryQuery(f), &rows); err != nil {
		return nil, err
	}
	return entriesToDomain(rows)
}

// ListPage returns one offset page of entries and the total match count.
func (r *EntryRepo) ListPage(ctx context.Context, f domain.EntryFilter, limit, offset int) ([]domain.LogEntry, int, error) {
	q := entryQuery(f)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var rows []entryJSON
	total, err := r.c.getCounted(ctx, entriesTable, q, &rows)
	if err != nil {
		return nil, 0, err
	}
	items, err := entriesToDomain(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID returns a single entry or domain.ErrNotFound.
func (r *EntryRepo) GetByID(ctx context.Context, id int64) (*domain.LogEntry, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", eqID(id))

	var rows []entryJSON
	if err := r.c.get(ctx, entriesTable, id, q, &rows); err != nil {
		return nil, err
	}
	return firstEntry(rows, id)
}

// GetBriefs returns the display info of the given ids, newest event first.
func (r *EntryRepo) GetBriefs(ctx context.Context, ids []int64) ([]domain.EntryBrief, error) {
	if len(ids) == 0 {
		return []domain.EntryBrief{}, nil
	}

	q := url.Values{}
	q.Set("select", briefSelect)
	q.Set("id", idList(ids))
	q.Set("order", timelineOrder)

	return r.briefs(ctx, q)
}

// SearchBriefs finds linkable entries whose title or content contains term.
func (r *EntryRepo) SearchBriefs(ctx context.Context, term string, excludeID int64, limit int) ([]domain.EntryBrief, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	q := url.Values{}
	q.Set("select", briefSelect)
	q.Set("order", timelineOrder)
	q.Set("limit", strconv.Itoa(limit))
	if term != "" {
		q.Set("or", searchOr(term))
	}
	if excludeID != 0 {
		q.Set("id", "neq."+strconv.FormatInt(excludeID, 10))
	}

	return r.briefs(ctx, q)
}

func (r *EntryRepo) briefs(ctx context.Context, q url.Values) ([]domain.EntryBrief, error) {
	var rows []briefJSON
	if err := r.c.get(ctx, entriesTable, 0, q, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.EntryBrief, len(rows))
	for i, row := range rows {
		b, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// Create inserts a new entry and returns the stored row.
func (r *EntryRepo) Create(ctx context.Context, e *domain.LogEntry) (*domain.LogEntry, error) {
	var rows []entryJSON
	if err := r.c.write(ctx, http.MethodPost, entriesTable, 0, nil, toEntryInsert(e), &rows); err != nil {
		return nil, err
	}
	return firstEntry(rows, 0)
}

// Update applies the set fields of p. A missing id yields domain.ErrNotFound.
func (r *EntryRepo) Update(ctx context.Context, id int64, p domain.EntryUpdateParams) (*domain.LogEntry, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var rows []entryJSON
	if err := r.c.write(ctx, http.MethodPatch, entriesTable, id, idFilter(id), entryPatch(p), &rows); err != nil {
		return nil, err
	}
	return firstEntry(rows, id)
}

// Delete removes an entry. A missing id yields domain.ErrNotFound.
func (r *EntryRepo) Delete(ctx context.Context, id int64) error {
	var rows []struct {
		ID int64 `json:"id"`
	}
	q := idFilter(id)
	q.Set("select", "id")
	if err := r.c.write(ctx, http.MethodDelete, entriesTable, id, q, nil, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s %d: %w", entriesTable, id, domain.ErrNotFound)
	}
	return nil
}

func idFilter(id int64) url.Values {
	q := url.Values{}
	q.Set("id", eqID(id))
	return q
}

func entriesToDomain(rows []entryJSON) ([]domain.LogEntry, error) {
	out := make([]domain.LogEntry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func firstEntry(rows []entryJSON, id int64) (*domain.LogEntry, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %d: %w", entriesTable, id, domain.ErrNotFound)
	}
	e, err := rows[0].toDomain()
	if err != nil {
		return nil, err
	}
	return &e, nil
}
