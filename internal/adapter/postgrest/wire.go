package postgrest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

type entryJSON struct {
	ID           int64           `json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	EventDate    string          `json:"event_date"`
	AuthorName   string          `json:"author_name"`
	DevPhase     string          `json:"dev_phase"`
	Domain       string          `json:"domain"`
	LogType      string          `json:"log_type"`
	Title        string          `json:"title"`
	Content      *string         `json:"content"`
	MetaData     json.RawMessage `json:"meta_data"`
	ImageURLs    []string        `json:"image_urls"`
	RelatedLinks []string        `json:"related_links"`
}

type entryInsert struct {
	EventDate    string          `json:"event_date"`
	AuthorName   string          `json:"author_name"`
	DevPhase     string          `json:"dev_phase"`
	Domain       string          `json:"domain"`
	LogType      string          `json:"log_type"`
	Title        string          `json:"title"`
	Content      *string         `json:"content"`
	MetaData     domain.Metadata `json:"meta_data"`
	ImageURLs    []string        `json:"image_urls"`
	RelatedLinks []string        `json:"related_links"`
}

func (w entryJSON) toDomain() (domain.LogEntry, error) {
	date, err := domain.ParseDate(w.EventDate)
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("dev_history %d: %w: %w", w.ID, domain.ErrRequestFailed, err)
	}

	logType := domain.LogType(w.LogType)
	meta, err := domain.DecodeMetadata(logType, w.MetaData)
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("dev_history %d: %w: %w", w.ID, domain.ErrRequestFailed, err)
	}

	return domain.LogEntry{
		ID:           w.ID,
		EventDate:    date,
		Author:       w.AuthorName,
		Phase:        domain.Phase(w.DevPhase),
		Domain:       domain.Domain(w.Domain),
		LogType:      logType,
		Title:        w.Title,
		Content:      w.Content,
		Metadata:     meta,
		ImageURLs:    w.ImageURLs,
		RelatedLinks: w.RelatedLinks,
		CreatedAt:    w.CreatedAt,
	}, nil
}

func toEntryInsert(e *domain.LogEntry) entryInsert {
	return entryInsert{
		EventDate:    domain.FormatDate(domain.DateOf(e.EventDate)),
		AuthorName:   e.Author,
		DevPhase:     string(e.Phase),
		Domain:       string(e.Domain),
		LogType:      string(e.LogType),
		Title:        e.Title,
		Content:      e.Content,
		MetaData:     e.Metadata,
		ImageURLs:    e.ImageURLs,
		RelatedLinks: e.RelatedLinks,
	}
}

// entryPatch renders only the set fields of p.
func entryPatch(p domain.EntryUpdateParams) map[string]any {
	m := make(map[string]any)
	if p.EventDate != nil {
		m["event_date"] = domain.FormatDate(domain.DateOf(*p.EventDate))
	}
	if p.Author != nil {
		m["author_name"] = *p.Author
	}
	if p.Phase != nil {
		m["dev_phase"] = string(*p.Phase)
	}
	if p.Domain != nil {
		m["domain"] = string(*p.Domain)
	}
	if p.LogType != nil {
		m["log_type"] = string(*p.LogType)
	}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Content != nil {
		m["content"] = nilIfBlank(*p.Content)
	}
	if p.Metadata != nil {
		m["meta_data"] = *p.Metadata
	}
	if p.ImageURLs != nil {
		m["image_urls"] = *p.ImageURLs
	}
	if p.RelatedLinks != nil {
		m["related_links"] = *p.RelatedLinks
	}
	return m
}

type briefJSON struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
	DevPhase   string `json:"dev_phase"`
	Domain     string `json:"domain"`
	LogType    string `json:"log_type"`
	EventDate  string `json:"event_date"`
}

const briefSelect = "id,title,author_name,dev_phase,domain,log_type,event_date"

func (w briefJSON) toDomain() (domain.EntryBrief, error) {
	date, err := domain.ParseDate(w.EventDate)
	if err != nil {
		return domain.EntryBrief{}, fmt.Errorf("dev_history %d: %w: %w", w.ID, domain.ErrRequestFailed, err)
	}
	return domain.EntryBrief{
		ID:        w.ID,
		Title:     w.Title,
		Author:    w.AuthorName,
		Phase:     domain.Phase(w.DevPhase),
		Domain:    domain.Domain(w.Domain),
		LogType:   domain.LogType(w.LogType),
		EventDate: date,
	}, nil
}

type scheduleJSON struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	StartDate   string    `json:"start_date"`
	DueDate     string    `json:"due_date"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DevPhase    *string   `json:"dev_phase"`
	Assignees   []string  `json:"assignees"`
}

type scheduleInsert struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	StartDate   string   `json:"start_date"`
	DueDate     string   `json:"due_date"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	DevPhase    *string  `json:"dev_phase"`
	Assignees   []string `json:"assignees"`
}

func (w scheduleJSON) toDomain() (domain.ScheduleItem, error) {
	start, err := domain.ParseDate(w.StartDate)
	if err != nil {
		return domain.ScheduleItem{}, fmt.Errorf("schedules %d: %w: %w", w.ID, domain.ErrRequestFailed, err)
	}
	due, err := domain.ParseDate(w.DueDate)
	if err != nil {
		return domain.ScheduleItem{}, fmt.Errorf("schedules %d: %w: %w", w.ID, domain.ErrRequestFailed, err)
	}

	s := domain.ScheduleItem{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		StartDate:   start,
		DueDate:     due,
		Status:      domain.ScheduleStatus(w.Status),
		Priority:    domain.Priority(w.Priority),
		Assignees:   w.Assignees,
		CreatedAt:   w.CreatedAt,
	}
	if w.DevPhase != nil && *w.DevPhase != "" {
		p := domain.Phase(*w.DevPhase)
		s.Phase = &p
	}
	return s, nil
}

func toScheduleInsert(s *domain.ScheduleItem) scheduleInsert {
	return scheduleInsert{
		Title:       s.Title,
		Description: s.Description,
		StartDate:   domain.FormatDate(domain.DateOf(s.StartDate)),
		DueDate:     domain.FormatDate(domain.DateOf(s.DueDate)),
		Status:      string(s.Status),
		Priority:    string(s.Priority),
		DevPhase:    phaseValue(s.Phase),
		Assignees:   s.Assignees,
	}
}

func schedulePatch(p domain.ScheduleUpdateParams) map[string]any {
	m := make(map[string]any)
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Description != nil {
		m["description"] = nilIfBlank(*p.Description)
	}
	if p.StartDate != nil {
		m["start_date"] = domain.FormatDate(domain.DateOf(*p.StartDate))
	}
	if p.DueDate != nil {
		m["due_date"] = domain.FormatDate(domain.DateOf(*p.DueDate))
	}
	if p.Status != nil {
		m["status"] = string(*p.Status)
	}
	if p.Priority != nil {
		m["priority"] = string(*p.Priority)
	}
	if p.Phase != nil {
		m["dev_phase"] = phaseValue(p.Phase)
	}
	if p.Assignees != nil {
		m["assignees"] = *p.Assignees
	}
	return m
}

type commentJSON struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	DevHistoryID int64     `json:"dev_history_id"`
	AuthorName   string    `json:"author_name"`
	Content      string    `json:"content"`
}

type commentInsert struct {
	DevHistoryID int64  `json:"dev_history_id"`
	AuthorName   string `json:"author_name"`
	Content      string `json:"content"`
}

func (w commentJSON) toDomain() domain.Comment {
	return domain.Comment{
		ID:        w.ID,
		EntryID:   w.DevHistoryID,
		Author:    w.AuthorName,
		Content:   w.Content,
		CreatedAt: w.CreatedAt,
	}
}

func phaseValue(p *domain.Phase) *string {
	if p == nil || *p == "" {
		return nil
	}
	s := string(*p)
	return &s
}

func nilIfBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
