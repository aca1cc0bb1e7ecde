package domain

import "time"

// EntryFilter selects log entries. Within a dimension one value means
// equality and several mean set membership. Empty dimensions match all.
type EntryFilter struct {
	Phases   []Phase
	Domains  []Domain
	LogTypes []LogType
	Author   string     // case-insensitive substring
	Search   string     // case-insensitive substring of title or content
	From     *time.Time // inclusive
	To       *time.Time // inclusive
}

// MaxPageSize is the largest page any record store driver returns.
const MaxPageSize = 200

// Page is one offset-based slice of a larger result.
type Page[T any] struct {
	Items      []T
	TotalCount int
	HasMore    bool
}
