package entry

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/devlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = domain.MaxPageSize
)

// applyFilter adds the WHERE clauses of f to q.
// One value in a dimension is an equality test, several become IN (...).
func applyFilter(q sq.SelectBuilder, f domain.EntryFilter) sq.SelectBuilder {
	if v := inOrEq("dev_phase", f.Phases); v != nil {
		q = q.Where(v)
	}
	if v := inOrEq("domain", f.Domains); v != nil {
		q = q.Where(v)
	}
	if v := inOrEq("log_type", f.LogTypes); v != nil {
		q = q.Where(v)
	}

	if f.Author != "" {
		q = q.Where(sq.ILike{"author_name": postgres.ContainsPattern(f.Author)})
	}

	if f.Search != "" {
		q = q.Where(searchClause(f.Search))
	}

	if f.From != nil {
		q = q.Where(sq.GtOrEq{"event_date": domain.DateOf(*f.From)})
	}
	if f.To != nil {
		q = q.Where(sq.LtOrEq{"event_date": domain.DateOf(*f.To)})
	}

	return q
}

// searchClause matches term as a substring of the title or the content.
func searchClause(term string) sq.Sqlizer {
	p := postgres.ContainsPattern(term)
	return sq.Or{
		sq.ILike{"title": p},
		sq.ILike{"content": p},
	}
}

func inOrEq[T ~string](column string, values []T) sq.Sqlizer {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return sq.Eq{column: string(values[0])}
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return sq.Eq{column: out}
}

// normalizePage clamps limit and offset to sane bounds.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
