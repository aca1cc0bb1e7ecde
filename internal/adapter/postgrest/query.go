package postgrest

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const timelineOrder = "event_date.desc,created_at.desc"

// entryQuery translates f into REST filter operators.
func entryQuery(f domain.EntryFilter) url.Values {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", timelineOrder)

	setInOrEq(q, "dev_phase", f.Phases)
	setInOrEq(q, "domain", f.Domains)
	setInOrEq(q, "log_type", f.LogTypes)

	if f.Author != "" {
		q.Set("author_name", "ilike."+containsPattern(f.Author))
	}
	if f.Search != "" {
		q.Set("or", searchOr(f.Search))
	}
	if f.From != nil {
		q.Add("event_date", "gte."+domain.FormatDate(domain.DateOf(*f.From)))
	}
	if f.To != nil {
		q.Add("event_date", "lte."+domain.FormatDate(domain.DateOf(*f.To)))
	}
	return q
}

func setInOrEq[T ~string](q url.Values, column string, values []T) {
	switch len(values) {
	case 0:
		return
	case 1:
		q.Set(column, "eq."+string(values[0]))
		return
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = quote(string(v))
	}
	q.Set(column, "in.("+strings.Join(parts, ",")+")")
}

// idList renders ids as an in.(...) operand.
func idList(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return "in.(" + strings.Join(parts, ",") + ")"
}

func eqID(id int64) string {
	return "eq." + strconv.FormatInt(id, 10)
}

// searchOr matches term as a substring of the title or the content.
func searchOr(term string) string {
	p := quote(containsPattern(term))
	return "(title.ilike." + p + ",content.ilike." + p + ")"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps s in the API's "*" wildcard with LIKE wildcards escaped.
func containsPattern(s string) string {
	return "*" + likeEscaper.Replace(s) + "*"
}

// quote double-quotes a value used inside a list operand so that commas,
// dots and parentheses in user input are taken literally.
func quote(s string) string {
	if !strings.ContainsAny(s, `,.:()"\ `) {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
