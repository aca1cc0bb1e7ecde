package domain

import "strings"

// Phase is the development maturity stage of the tracked product.
type Phase string

const (
	PhasePlanning Phase = "기획"
	PhaseWS       Phase = "WS"
	PhasePT       Phase = "PT"
	PhaseES       Phase = "ES"
	PhasePP       Phase = "PP"
	PhaseMP       Phase = "MP"
)

// Phases returns all phases in display order.
func Phases() []Phase {
	return []Phase{PhasePlanning, PhaseWS, PhasePT, PhaseES, PhasePP, PhaseMP}
}

func (p Phase) String() string { return string(p) }

func (p Phase) IsValid() bool {
	switch p {
	case PhasePlanning, PhaseWS, PhasePT, PhaseES, PhasePP, PhaseMP:
		return true
	}
	return false
}

// Domain is the engineering subsystem tag of a log entry.
type Domain string

const (
	DomainOpticsARK     Domain = "Optics_ARK"
	DomainOpticsLM      Domain = "Optics_LM"
	DomainMechMoving    Domain = "Mech_Moving"
	DomainHWBoard       Domain = "HW_Board"
	DomainSWAlgo        Domain = "SW_Algo"
	DomainSWUI          Domain = "SW_UI"
	DomainProjectCommon Domain = "Project_Common"
)

// Domains returns all domains in display order.
func Domains() []Domain {
	return []Domain{
		DomainOpticsARK, DomainOpticsLM, DomainMechMoving, DomainHWBoard,
		DomainSWAlgo, DomainSWUI, DomainProjectCommon,
	}
}

func (d Domain) String() string { return string(d) }

func (d Domain) IsValid() bool {
	switch d {
	case DomainOpticsARK, DomainOpticsLM, DomainMechMoving, DomainHWBoard,
		DomainSWAlgo, DomainSWUI, DomainProjectCommon:
		return true
	}
	return false
}

// Category returns the coarse category the domain belongs to.
func (d Domain) Category() DomainCategory {
	return CategoryOf(string(d))
}

// DomainCategory is the coarse grouping of domains used by the dashboard.
type DomainCategory string

const (
	CategoryOptics DomainCategory = "Optics"
	CategoryMech   DomainCategory = "Mech"
	CategoryHW     DomainCategory = "HW"
	CategorySW     DomainCategory = "SW"
	CategoryCommon DomainCategory = "Common"
)

// Categories returns all categories in display order.
func Categories() []DomainCategory {
	return []DomainCategory{CategoryOptics, CategoryMech, CategoryHW, CategorySW, CategoryCommon}
}

func (c DomainCategory) String() string { return string(c) }

func (c DomainCategory) IsValid() bool {
	switch c {
	case CategoryOptics, CategoryMech, CategoryHW, CategorySW, CategoryCommon:
		return true
	}
	return false
}

// CategoryOf maps a raw domain value to its category by prefix.
// It is total: unknown values fall back to SW.
func CategoryOf(domain string) DomainCategory {
	switch {
	case domain == string(DomainProjectCommon):
		return CategoryCommon
	case strings.HasPrefix(domain, "Optics_"):
		return CategoryOptics
	case strings.HasPrefix(domain, "Mech_"):
		return CategoryMech
	case strings.HasPrefix(domain, "HW_"):
		return CategoryHW
	default:
		return CategorySW
	}
}

// ParseCategoryFilter parses a dashboard category selector.
// The dashboard labels the HW category "Board", so both spellings are accepted.
func ParseCategoryFilter(s string) (DomainCategory, bool) {
	if strings.EqualFold(s, "Board") {
		return CategoryHW, true
	}
	c := DomainCategory(s)
	return c, c.IsValid()
}

// LogType classifies the nature of a log entry.
type LogType string

const (
	LogTypeMeeting     LogType = "Meeting"
	LogTypeAlignment   LogType = "Alignment"
	LogTypeCalibration LogType = "Calibration"
	LogTypeAccuracy    LogType = "Accuracy"
	LogTypeBug         LogType = "Bug"
	LogTypeDecision    LogType = "Decision"
)

// LogTypes returns all log types in display order.
func LogTypes() []LogType {
	return []LogType{
		LogTypeMeeting, LogTypeAlignment, LogTypeCalibration,
		LogTypeAccuracy, LogTypeBug, LogTypeDecision,
	}
}

func (t LogType) String() string { return string(t) }

func (t LogType) IsValid() bool {
	switch t {
	case LogTypeMeeting, LogTypeAlignment, LogTypeCalibration,
		LogTypeAccuracy, LogTypeBug, LogTypeDecision:
		return true
	}
	return false
}

// ScheduleStatus is the lifecycle state of a schedule item.
type ScheduleStatus string

const (
	StatusInProgress ScheduleStatus = "진행중"
	StatusDone       ScheduleStatus = "완료"
	StatusDelayed    ScheduleStatus = "지연"
	StatusUpcoming   ScheduleStatus = "예정"
)

// Statuses returns all schedule statuses in display order.
func Statuses() []ScheduleStatus {
	return []ScheduleStatus{StatusInProgress, StatusDelayed, StatusUpcoming, StatusDone}
}

func (s ScheduleStatus) String() string { return string(s) }

func (s ScheduleStatus) IsValid() bool {
	switch s {
	case StatusInProgress, StatusDone, StatusDelayed, StatusUpcoming:
		return true
	}
	return false
}

// Priority is the urgency of a schedule item.
type Priority string

const (
	PriorityHigh   Priority = "높음"
	PriorityNormal Priority = "보통"
	PriorityLow    Priority = "낮음"
)

// Priorities returns all priorities from highest to lowest.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityNormal, PriorityLow}
}

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}
