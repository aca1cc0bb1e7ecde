package dashboard

import "github.com/heartmarshall/devlog-backend/internal/domain"

// Selection is the active dashboard filter. An empty value in a dimension
// means "all".
type Selection struct {
	Phase    domain.Phase
	Category domain.DomainCategory
	LogType  domain.LogType
}

// IsAll reports whether the selection filters nothing.
func (s Selection) IsAll() bool {
	return s.Phase == "" && s.Category == "" && s.LogType == ""
}

// Matches reports whether the entry satisfies every selected dimension.
// The domain dimension compares the derived category.
func (s Selection) Matches(e *domain.LogEntry) bool {
	if s.Phase != "" && e.Phase != s.Phase {
		return false
	}
	if s.Category != "" && e.Category() != s.Category {
		return false
	}
	if s.LogType != "" && e.LogType != s.LogType {
		return false
	}
	return true
}

// FilterEntries returns the entries matching the selection, keeping order.
func FilterEntries(entries []domain.LogEntry, sel Selection) []domain.LogEntry {
	out := make([]domain.LogEntry, 0, len(entries))
	for i := range entries {
		if sel.Matches(&entries[i]) {
			out = append(out, entries[i])
		}
	}
	return out
}

// Stats are the dashboard counters over a set of entries.
type Stats struct {
	Total      int
	Alignment  int
	Bug        int
	Decision   int
	Meeting    int
	ByPhase    map[domain.Phase]int
	ByCategory map[domain.DomainCategory]int
	ByDomain   map[domain.Domain]int
	ByLogType  map[domain.LogType]int
}

// ComputeStats counts entries in a single pass. Every known phase and
// category is present in the maps, zero when unused.
func ComputeStats(entries []domain.LogEntry) Stats {
	st := Stats{
		Total:      len(entries),
		ByPhase:    make(map[domain.Phase]int, len(domain.Phases())),
		ByCategory: make(map[domain.DomainCategory]int, len(domain.Categories())),
		ByDomain:   make(map[domain.Domain]int),
		ByLogType:  make(map[domain.LogType]int),
	}
	for _, p := range domain.Phases() {
		st.ByPhase[p] = 0
	}
	for _, c := range domain.Categories() {
		st.ByCategory[c] = 0
	}

	for i := range entries {
		e := &entries[i]
		switch e.LogType {
		case domain.LogTypeAlignment:
			st.Alignment++
		case domain.LogTypeBug:
			st.Bug++
		case domain.LogTypeDecision:
			st.Decision++
		case domain.LogTypeMeeting:
			st.Meeting++
		}
		st.ByPhase[e.Phase]++
		st.ByCategory[e.Category()]++
		st.ByDomain[e.Domain]++
		st.ByLogType[e.LogType]++
	}
	return st
}
