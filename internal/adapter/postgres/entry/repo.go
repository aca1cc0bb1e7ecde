// Package entry implements the dev_history repository.
package entry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/devlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const table = "dev_history"

var (
	columns = []string{
		"id", "created_at", "event_date", "author_name", "dev_phase", "domain",
		"log_type", "title", "content", "meta_data", "image_urls", "related_links",
	}
	briefColumns = []string{"id", "title", "author_name", "dev_phase", "domain", "log_type", "event_date"}

	timelineOrder = []string{"event_date DESC", "created_at DESC"}
	returning     = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides dev_history persistence.
type Repo struct {
	q postgres.Querier
}

// New creates a Repo.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// List returns every entry matching f, newest event first.
func (r *Repo) List(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error) {
	q := applyFilter(postgres.Builder().Select(columns...).From(table), f).
		OrderBy(timelineOrder...)

	return r.selectEntries(ctx, q)
}

// ListPage returns one offset page of entries matching f together with the
// total number of matching rows.
func (r *Repo) ListPage(ctx context.Context, f domain.EntryFilter, limit, offset int) ([]domain.LogEntry, int, error) {
	limit, offset = normalizePage(limit, offset)

	countSQL, countArgs, err := applyFilter(postgres.Builder().Select("count(*)").From(table), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, table, 0)
	}
	if total == 0 || int64(offset) >= total {
		return []domain.LogEntry{}, int(total), nil
	}

	q := applyFilter(postgres.Builder().Select(columns...).From(table), f).
		OrderBy(timelineOrder...).
		Limit(uint64(limit)).
		Offset(uint64(offset))

	items, err := r.selectEntries(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

// GetByID returns a single entry or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.LogEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, table, id)
	}
	return row.toDomain()
}

// GetBriefs returns the display info of the given ids, newest event first.
// Unknown ids are skipped.
func (r *Repo) GetBriefs(ctx context.Context, ids []int64) ([]domain.EntryBrief, error) {
	if len(ids) == 0 {
		return []domain.EntryBrief{}, nil
	}

	q := postgres.Builder().
		Select(briefColumns...).
		From(table).
		Where(sq.Eq{"id": ids}).
		OrderBy(timelineOrder...)

	return r.selectBriefs(ctx, q)
}

// SearchBriefs finds linkable entries whose title or content contains term.
// An empty term matches everything; excludeID 0 excludes nothing.
func (r *Repo) SearchBriefs(ctx context.Context, term string, excludeID int64, limit int) ([]domain.EntryBrief, error) {
	limit, _ = normalizePage(limit, 0)

	q := postgres.Builder().
		Select(briefColumns...).
		From(table).
		OrderBy(timelineOrder...).
		Limit(uint64(limit))

	if term != "" {
		q = q.Where(searchClause(term))
	}
	if excludeID != 0 {
		q = q.Where(sq.NotEq{"id": excludeID})
	}

	return r.selectBriefs(ctx, q)
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the stored row.
func (r *Repo) Create(ctx context.Context, e *domain.LogEntry) (*domain.LogEntry, error) {
	meta, err := json.Marshal(e.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("event_date", "author_name", "dev_phase", "domain", "log_type",
			"title", "content", "meta_data", "image_urls", "related_links").
		Values(domain.DateOf(e.EventDate), e.Author, string(e.Phase), string(e.Domain), string(e.LogType),
			e.Title, e.Content, meta, e.ImageURLs, e.RelatedLinks).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, table, 0)
	}
	return row.toDomain()
}

// Update applies the non-nil fields of p and returns the stored row.
// A missing id yields domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, id int64, p domain.EntryUpdateParams) (*domain.LogEntry, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update(table).Where(sq.Eq{"id": id}).Suffix(returning)

	if p.EventDate != nil {
		b = b.Set("event_date", domain.DateOf(*p.EventDate))
	}
	if p.Author != nil {
		b = b.Set("author_name", *p.Author)
	}
	if p.Phase != nil {
		b = b.Set("dev_phase", string(*p.Phase))
	}
	if p.Domain != nil {
		b = b.Set("domain", string(*p.Domain))
	}
	if p.LogType != nil {
		b = b.Set("log_type", string(*p.LogType))
	}
	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.Content != nil {
		b = b.Set("content", nilIfEmpty(*p.Content))
	}
	if p.Metadata != nil {
		meta, err := json.Marshal(*p.Metadata)
		if err != nil {
			return nil, fmt.Errorf("encode metadata: %w", err)
		}
		b = b.Set("meta_data", meta)
	}
	if p.ImageURLs != nil {
		b = b.Set("image_urls", *p.ImageURLs)
	}
	if p.RelatedLinks != nil {
		b = b.Set("related_links", *p.RelatedLinks)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, table, id)
	}
	return row.toDomain()
}

// Delete removes an entry. Its comments are removed by the foreign key.
// A missing id yields domain.ErrNotFound.
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

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type entryRow struct {
	ID           int64     `db:"id"`
	CreatedAt    time.Time `db:"created_at"`
	EventDate    time.Time `db:"event_date"`
	AuthorName   string    `db:"author_name"`
	DevPhase     string    `db:"dev_phase"`
	Domain       string    `db:"domain"`
	LogType      string    `db:"log_type"`
	Title        string    `db:"title"`
	Content      *string   `db:"content"`
	MetaData     []byte    `db:"meta_data"`
	ImageURLs    []string  `db:"image_urls"`
	RelatedLinks []string  `db:"related_links"`
}

func (row entryRow) toDomain() (*domain.LogEntry, error) {
	logType := domain.LogType(row.LogType)

	meta, err := domain.DecodeMetadata(logType, row.MetaData)
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w: %w", table, row.ID, domain.ErrRequestFailed, err)
	}

	return &domain.LogEntry{
		ID:           row.ID,
		EventDate:    domain.DateOf(row.EventDate),
		Author:       row.AuthorName,
		Phase:        domain.Phase(row.DevPhase),
		Domain:       domain.Domain(row.Domain),
		LogType:      logType,
		Title:        row.Title,
		Content:      row.Content,
		Metadata:     meta,
		ImageURLs:    row.ImageURLs,
		RelatedLinks: row.RelatedLinks,
		CreatedAt:    row.CreatedAt,
	}, nil
}

type briefRow struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	AuthorName string    `db:"author_name"`
	DevPhase   string    `db:"dev_phase"`
	Domain     string    `db:"domain"`
	LogType    string    `db:"log_type"`
	EventDate  time.Time `db:"event_date"`
}

func (r *Repo) selectEntries(ctx context.Context, q sq.SelectBuilder) ([]domain.LogEntry, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, table, 0)
	}

	out := make([]domain.LogEntry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *Repo) selectBriefs(ctx context.Context, q sq.SelectBuilder) ([]domain.EntryBrief, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []briefRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, table, 0)
	}

	out := make([]domain.EntryBrief, len(rows))
	for i, row := range rows {
		out[i] = domain.EntryBrief{
			ID:        row.ID,
			Title:     row.Title,
			Author:    row.AuthorName,
			Phase:     domain.Phase(row.DevPhase),
			Domain:    domain.Domain(row.Domain),
			LogType:   domain.LogType(row.LogType),
			EventDate: domain.DateOf(row.EventDate),
		}
	}
	return out, nil
}

func nilIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
