package devlog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const (
	maxTitleLen   = 200
	maxAuthorLen  = 50
	maxContentLen = 20000
	maxImages     = 20
)

// CreateEntryInput holds the parameters for logging a new entry.
type CreateEntryInput struct {
	EventDate    *time.Time // nil means today
	Author       string
	Phase        domain.Phase
	Domain       domain.Domain
	LogType      domain.LogType
	Title        string
	Content      *string
	Metadata     *domain.Metadata // nil means an empty block for the log type
	ImageURLs    []string
	RelatedLinks []string
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	errs = validateAuthor(errs, i.Author)
	errs = validateTitle(errs, i.Title)

	if !i.Phase.IsValid() {
		errs = append(errs, domain.FieldError{Field: "phase", Message: "invalid value"})
	}
	if !i.Domain.IsValid() {
		errs = append(errs, domain.FieldError{Field: "domain", Message: "invalid value"})
	}
	if !i.LogType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "log_type", Message: "invalid value"})
	} else if i.Metadata != nil && !i.Metadata.MatchesLogType(i.LogType) {
		errs = append(errs, domain.FieldError{Field: "metadata", Message: "does not match log type"})
	}

	errs = validateContent(errs, i.Content)

	if len(i.ImageURLs) > maxImages {
		errs = append(errs, domain.FieldError{Field: "image_urls", Message: "max 20 images"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateMeetingInput holds the meeting-minutes form.
// Domain and log type are fixed to Project_Common and Meeting.
type CreateMeetingInput struct {
	EventDate       *time.Time
	Author          string
	Phase           domain.Phase
	Title           string
	Content         *string
	Attendees       []string
	ActionItems     []string
	NextMeetingDate *time.Time
	RelatedIssues   []int64
}

// Validate checks all fields and collects all errors.
func (i CreateMeetingInput) Validate() error {
	var errs []domain.FieldError

	errs = validateAuthor(errs, i.Author)
	errs = validateTitle(errs, i.Title)

	if !i.Phase.IsValid() {
		errs = append(errs, domain.FieldError{Field: "phase", Message: "invalid value"})
	}
	errs = validateContent(errs, i.Content)

	if i.EventDate != nil && i.NextMeetingDate != nil &&
		domain.DateOf(*i.NextMeetingDate).Before(domain.DateOf(*i.EventDate)) {
		errs = append(errs, domain.FieldError{Field: "next_meeting_date", Message: "before meeting date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput is a partial edit. Nil fields are left unchanged.
type UpdateEntryInput struct {
	EventDate    *time.Time
	Author       *string
	Phase        *domain.Phase
	Domain       *domain.Domain
	LogType      *domain.LogType
	Title        *string
	Content      *string // "" clears the content
	Metadata     *domain.Metadata
	ImageURLs    *[]string
	RelatedLinks *[]string
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.Author != nil {
		errs = validateAuthor(errs, *i.Author)
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Phase != nil && !i.Phase.IsValid() {
		errs = append(errs, domain.FieldError{Field: "phase", Message: "invalid value"})
	}
	if i.Domain != nil && !i.Domain.IsValid() {
		errs = append(errs, domain.FieldError{Field: "domain", Message: "invalid value"})
	}
	if i.LogType != nil && !i.LogType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "log_type", Message: "invalid value"})
	}
	errs = validateContent(errs, i.Content)
	if i.ImageURLs != nil && len(*i.ImageURLs) > maxImages {
		errs = append(errs, domain.FieldError{Field: "image_urls", Message: "max 20 images"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateEntryInput) isEmpty() bool {
	return i.EventDate == nil && i.Author == nil && i.Phase == nil && i.Domain == nil &&
		i.LogType == nil && i.Title == nil && i.Content == nil && i.Metadata == nil &&
		i.ImageURLs == nil && i.RelatedLinks == nil
}

// ListPageInput selects one timeline page. PageIndex starts at 0.
type ListPageInput struct {
	Filter    domain.EntryFilter
	PageIndex int
	PageSize  int // 0 means the configured default
}

// Validate checks all fields and collects all errors.
func (i ListPageInput) Validate(maxPageSize int) error {
	var errs []domain.FieldError
	if i.PageIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be non-negative"})
	}
	if i.PageSize < 0 {
		errs = append(errs, domain.FieldError{Field: "size", Message: "must be non-negative"})
	}
	if i.PageSize > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "size", Message: "too large"})
	}
	errs = validateFilter(errs, i.Filter)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateFilter(errs []domain.FieldError, f domain.EntryFilter) []domain.FieldError {
	for _, p := range f.Phases {
		if !p.IsValid() {
			errs = append(errs, domain.FieldError{Field: "phase", Message: "invalid value"})
			break
		}
	}
	for _, d := range f.Domains {
		if !d.IsValid() {
			errs = append(errs, domain.FieldError{Field: "domain", Message: "invalid value"})
			break
		}
	}
	for _, t := range f.LogTypes {
		if !t.IsValid() {
			errs = append(errs, domain.FieldError{Field: "log_type", Message: "invalid value"})
			break
		}
	}
	if f.From != nil && f.To != nil && domain.DateOf(*f.To).Before(domain.DateOf(*f.From)) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "before from"})
	}
	return errs
}

func validateAuthor(errs []domain.FieldError, author string) []domain.FieldError {
	a := strings.TrimSpace(author)
	switch {
	case a == "":
		errs = append(errs, domain.FieldError{Field: "author", Message: "required"})
	case utf8.RuneCountInString(a) > maxAuthorLen:
		errs = append(errs, domain.FieldError{Field: "author", Message: "max 50 characters"})
	}
	return errs
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	t := strings.TrimSpace(title)
	switch {
	case t == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case utf8.RuneCountInString(t) > maxTitleLen:
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

func validateContent(errs []domain.FieldError, content *string) []domain.FieldError {
	if content != nil && utf8.RuneCountInString(*content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 20000 characters"})
	}
	return errs
}
