package importer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/devlog"
	"github.com/heartmarshall/devlog-backend/internal/service/schedule"
)

// Document is one import file. Field names follow the REST API.
type Document struct {
	Entries   []Entry    `json:"entries"`
	Schedules []Schedule `json:"schedules"`
}

// Entry is one log entry to import.
type Entry struct {
	EventDate    string          `json:"event_date"`
	AuthorName   string          `json:"author_name"`
	DevPhase     string          `json:"dev_phase"`
	Domain       string          `json:"domain"`
	LogType      string          `json:"log_type"`
	Title        string          `json:"title"`
	Content      *string         `json:"content,omitempty"`
	MetaData     json.RawMessage `json:"meta_data,omitempty"`
	ImageURLs    []string        `json:"image_urls,omitempty"`
	RelatedLinks []string        `json:"related_links,omitempty"`
}

// Schedule is one schedule item to import.
type Schedule struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	StartDate   string   `json:"start_date"`
	DueDate     string   `json:"due_date"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	Phase       *string  `json:"phase,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
}

// Input maps the entry to a create request and validates it.
func (e Entry) Input() (devlog.CreateEntryInput, error) {
	date, err := optionalDate("event_date", e.EventDate)
	if err != nil {
		return devlog.CreateEntryInput{}, err
	}

	in := devlog.CreateEntryInput{
		EventDate:    date,
		Author:       e.AuthorName,
		Phase:        domain.Phase(e.DevPhase),
		Domain:       domain.Domain(e.Domain),
		LogType:      domain.LogType(e.LogType),
		Title:        e.Title,
		Content:      e.Content,
		ImageURLs:    e.ImageURLs,
		RelatedLinks: e.RelatedLinks,
	}
	if len(e.MetaData) > 0 && in.LogType.IsValid() {
		meta, err := domain.DecodeMetadata(in.LogType, e.MetaData)
		if err != nil {
			return devlog.CreateEntryInput{}, domain.NewValidationError("meta_data", err.Error())
		}
		in.Metadata = &meta
	}
	return in, in.Validate()
}

// Input maps the schedule item to a create request and validates it.
func (s Schedule) Input() (schedule.CreateInput, error) {
	start, err := optionalDate("start_date", s.StartDate)
	if err != nil {
		return schedule.CreateInput{}, err
	}
	due, err := optionalDate("due_date", s.DueDate)
	if err != nil {
		return schedule.CreateInput{}, err
	}

	in := schedule.CreateInput{
		Title:       s.Title,
		Description: s.Description,
		StartDate:   start,
		DueDate:     due,
		Status:      domain.ScheduleStatus(s.Status),
		Priority:    domain.Priority(s.Priority),
		Assignees:   s.Assignees,
	}
	if s.Phase != nil {
		p := domain.Phase(*s.Phase)
		in.Phase = &p
	}
	return in, in.Validate()
}

func optionalDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return nil, domain.NewValidationError(field, fmt.Sprintf("invalid date %q", s))
	}
	return &t, nil
}
