package rest

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// pathID parses a positive integer path variable.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(q url.Values, name string, def int) (int, error) {
	v := strings.TrimSpace(q.Get(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

// queryInt64 parses an optional int64 query parameter.
func queryInt64(q url.Values, name string) (int64, error) {
	v := strings.TrimSpace(q.Get(name))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

// queryList collects a repeatable parameter. Comma-separated values are
// split as well, so "?phase=WS&phase=PT" equals "?phase=WS,PT".
func queryList(q url.Values, name string) []string {
	var out []string
	for _, raw := range q[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func queryDate(q url.Values, name string) (*time.Time, error) {
	v := strings.TrimSpace(q.Get(name))
	if v == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be YYYY-MM-DD")
	}
	return &d, nil
}

// parseDateField parses an optional YYYY-MM-DD body field.
func parseDateField(field string, v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(strings.TrimSpace(*v))
	if err != nil {
		return nil, domain.NewValidationError(field, "must be YYYY-MM-DD")
	}
	return &d, nil
}

// parseEntryFilter reads the timeline filter from the query string.
func parseEntryFilter(q url.Values) (domain.EntryFilter, error) {
	f := domain.EntryFilter{
		Author: strings.TrimSpace(q.Get("author")),
		Search: strings.TrimSpace(q.Get("search")),
	}
	for _, v := range queryList(q, "phase") {
		f.Phases = append(f.Phases, domain.Phase(v))
	}
	for _, v := range queryList(q, "domain") {
		f.Domains = append(f.Domains, domain.Domain(v))
	}
	for _, v := range queryList(q, "log_type") {
		f.LogTypes = append(f.LogTypes, domain.LogType(v))
	}

	var err error
	if f.From, err = queryDate(q, "from"); err != nil {
		return domain.EntryFilter{}, err
	}
	if f.To, err = queryDate(q, "to"); err != nil {
		return domain.EntryFilter{}, err
	}
	return f, nil
}

// today is the "today" query parameter, or the current date.
func today(q url.Values, now func() time.Time) (time.Time, error) {
	d, err := queryDate(q, "today")
	if err != nil {
		return time.Time{}, err
	}
	if d == nil {
		return domain.DateOf(now()), nil
	}
	return *d, nil
}
