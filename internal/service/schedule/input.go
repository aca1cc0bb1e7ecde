package schedule

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxAssignees      = 20
)

// CreateInput holds the parameters for a new schedule item.
type CreateInput struct {
	Title       string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
	Status      domain.ScheduleStatus // empty means upcoming
	Priority    domain.Priority       // empty means normal
	Phase       *domain.Phase
	Assignees   []string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title)
	errs = validateDescription(errs, i.Description)

	if i.StartDate == nil {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if i.DueDate == nil {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "required"})
	}
	if i.StartDate != nil && i.DueDate != nil {
		errs = validateRange(errs, *i.StartDate, *i.DueDate)
	}

	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Phase != nil && *i.Phase != "" && !i.Phase.IsValid() {
		errs = append(errs, domain.FieldError{Field: "phase", Message: "invalid value"})
	}
	if len(i.Assignees) > maxAssignees {
		errs = append(errs, domain.FieldError{Field: "assignees", Message: "max 20 assignees"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput is a partial edit. Nil fields are left unchanged.
type UpdateInput struct {
	Title       *string
	Description *string // "" clears the description
	StartDate   *time.Time
	DueDate     *time.Time
	Status      *domain.ScheduleStatus
	Priority    *domain.Priority
	Phase       *domain.Phase // "" clears the phase
	Assignees   *[]string
}

// Validate checks the fields that can be checked without the stored item.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	errs = validateDescription(errs, i.Description)

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Phase != nil && *i.Phase != "" && !i.Phase.IsValid() {
		errs = append(errs, domain.FieldError{Field: "phase", Message: "invalid value"})
	}
	if i.Assignees != nil && len(*i.Assignees) > maxAssignees {
		errs = append(errs, domain.FieldError{Field: "assignees", Message: "max 20 assignees"})
	}
	if i.StartDate != nil && i.DueDate != nil {
		errs = validateRange(errs, *i.StartDate, *i.DueDate)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) isEmpty() bool {
	return i.Title == nil && i.Description == nil && i.StartDate == nil && i.DueDate == nil &&
		i.Status == nil && i.Priority == nil && i.Phase == nil && i.Assignees == nil
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

func validateDescription(errs []domain.FieldError, d *string) []domain.FieldError {
	if d != nil && utf8.RuneCountInString(*d) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	return errs
}

func validateRange(errs []domain.FieldError, start, due time.Time) []domain.FieldError {
	if domain.DateOf(due).Before(domain.DateOf(start)) {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "before start date"})
	}
	return errs
}
