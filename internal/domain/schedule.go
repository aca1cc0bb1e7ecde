package domain

import "time"

// ScheduleItem is a deadline tracked on the schedule board.
type ScheduleItem struct {
	ID          int64
	Title       string
	Description *string
	StartDate   time.Time
	DueDate     time.Time
	Status      ScheduleStatus
	Priority    Priority
	Phase       *Phase
	Assignees   []string
	CreatedAt   time.Time
}

// DDay returns the signed number of days from today to the due date.
// Negative means overdue.
func (s *ScheduleItem) DDay(today time.Time) int {
	return DaysBetween(today, s.DueDate)
}

// IsDone reports whether the item is completed.
func (s *ScheduleItem) IsDone() bool {
	return s.Status == StatusDone
}

// ScheduleUpdateParams is a partial update of a schedule item.
// A nil field is left unchanged. Description set to "" clears it,
// and Phase pointing at "" clears the phase.
type ScheduleUpdateParams struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
	Status      *ScheduleStatus
	Priority    *Priority
	Phase       *Phase
	Assignees   *[]string
}

// IsEmpty reports whether no field is set.
func (p ScheduleUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.StartDate == nil && p.DueDate == nil &&
		p.Status == nil && p.Priority == nil && p.Phase == nil && p.Assignees == nil
}
