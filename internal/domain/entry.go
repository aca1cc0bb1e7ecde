package domain

import "time"

// LogEntry is a dated development log record: a bug, an alignment or
// calibration note, a decision, or meeting minutes.
type LogEntry struct {
	ID           int64
	EventDate    time.Time
	Author       string
	Phase        Phase
	Domain       Domain
	LogType      LogType
	Title        string
	Content      *string
	Metadata     Metadata
	ImageURLs    []string
	RelatedLinks []string
	CreatedAt    time.Time
}

// Category returns the derived domain category of the entry.
func (e *LogEntry) Category() DomainCategory {
	return e.Domain.Category()
}

// Brief returns the display subset used for linked issues.
func (e *LogEntry) Brief() EntryBrief {
	return EntryBrief{
		ID:        e.ID,
		Title:     e.Title,
		Author:    e.Author,
		Phase:     e.Phase,
		Domain:    e.Domain,
		LogType:   e.LogType,
		EventDate: e.EventDate,
	}
}

// EntryBrief is the display info of a linked log entry.
type EntryBrief struct {
	ID        int64
	Title     string
	Author    string
	Phase     Phase
	Domain    Domain
	LogType   LogType
	EventDate time.Time
}

// EntryUpdateParams is a partial update of a log entry.
// A nil field is left unchanged. Content set to "" clears it.
type EntryUpdateParams struct {
	EventDate    *time.Time
	Author       *string
	Phase        *Phase
	Domain       *Domain
	LogType      *LogType
	Title        *string
	Content      *string
	Metadata     *Metadata
	ImageURLs    *[]string
	RelatedLinks *[]string
}

// IsEmpty reports whether no field is set.
func (p EntryUpdateParams) IsEmpty() bool {
	return p.EventDate == nil && p.Author == nil && p.Phase == nil && p.Domain == nil &&
		p.LogType == nil && p.Title == nil && p.Content == nil && p.Metadata == nil &&
		p.ImageURLs == nil && p.RelatedLinks == nil
}

// Comment is a note left on a log entry.
type Comment struct {
	ID        int64
	EntryID   int64
	Author    string
	Content   string
	CreatedAt time.Time
}
