package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Metadata is the structured detail block of a log entry. Exactly one of
// Meeting or Measurement is set, chosen by the entry's log type. Keys that
// belong to neither branch are kept verbatim in Extra.
type Metadata struct {
	Meeting       *MeetingMeta
	Measurement   *MeasurementMeta
	RelatedIssues []int64
	Extra         map[string]json.RawMessage
}

// MeetingMeta holds meeting minutes fields.
type MeetingMeta struct {
	Attendees       []string `json:"attendees,omitempty"`
	ActionItems     []string `json:"action_items,omitempty"`
	NextMeetingDate string   `json:"next_meeting_date,omitempty"`
}

// MeasurementMeta holds optical measurement and test fields.
type MeasurementMeta struct {
	DiopterError         *float64          `json:"diopterError,omitempty"`
	ErrorCode            string            `json:"error_code,omitempty"`
	MeasuredValue        *float64          `json:"measured_val,omitempty"`
	ModelEye             string            `json:"modelEye,omitempty"`
	Range                *MeasurementRange `json:"measurementRange,omitempty"`
	Repeatability        *float64          `json:"repeatability,omitempty"`
	EnvironmentCondition string            `json:"environmentCondition,omitempty"`
	SoftwareVersion      string            `json:"softwareVersion,omitempty"`
	FirmwareVersion      string            `json:"firmwareVersion,omitempty"`
	TestResults          *TestResults      `json:"testResults,omitempty"`
}

// MeasurementRange is the sphere/cylinder range covered by a measurement.
type MeasurementRange struct {
	Sph *Bounds `json:"sph,omitempty"`
	Cyl *Bounds `json:"cyl,omitempty"`
}

// Bounds is an inclusive numeric interval.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TestResults is the pass/fail outcome of a test run.
type TestResults struct {
	Passed  bool   `json:"passed"`
	Details string `json:"details,omitempty"`
}

const keyRelatedIssues = "related_issues"

var (
	meetingKeys = []string{"attendees", "action_items", "next_meeting_date"}

	measurementKeys = []string{
		"diopterError", "error_code", "measured_val", "modelEye", "measurementRange",
		"repeatability", "environmentCondition", "softwareVersion", "firmwareVersion", "testResults",
	}
)

// NewMetadata returns empty metadata with the branch matching the log type.
func NewMetadata(t LogType) Metadata {
	if t == LogTypeMeeting {
		return Metadata{Meeting: &MeetingMeta{}}
	}
	return Metadata{Measurement: &MeasurementMeta{}}
}

// MatchesLogType reports whether the active branch fits the log type.
func (m Metadata) MatchesLogType(t LogType) bool {
	if t == LogTypeMeeting {
		return m.Meeting != nil && m.Measurement == nil
	}
	return m.Measurement != nil && m.Meeting == nil
}

// Rebind re-keys the metadata for another log type. Fields of the previous
// branch move into Extra so nothing is lost.
func (m Metadata) Rebind(t LogType) (Metadata, error) {
	raw, err := m.MarshalJSON()
	if err != nil {
		return Metadata{}, err
	}
	return DecodeMetadata(t, raw)
}

// MarshalJSON renders the metadata as one flat object.
func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(m.Extra)+4)
	for k, v := range m.Extra {
		out[k] = v
	}

	var branch any
	switch {
	case m.Meeting != nil:
		branch = m.Meeting
	case m.Measurement != nil:
		branch = m.Measurement
	}
	if branch != nil {
		fields, err := toRawMap(branch)
		if err != nil {
			return nil, err
		}
		for k, v := range fields {
			out[k] = v
		}
	}

	if len(m.RelatedIssues) > 0 {
		raw, err := json.Marshal(m.RelatedIssues)
		if err != nil {
			return nil, fmt.Errorf("marshal related issues: %w", err)
		}
		out[keyRelatedIssues] = raw
	}

	return json.Marshal(out)
}

// DecodeMetadata parses the flat wire object for an entry of the given log type.
// Known keys of the active branch become typed fields; every other key lands in Extra.
func DecodeMetadata(t LogType, raw []byte) (Metadata, error) {
	m := NewMetadata(t)

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return m, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Metadata{}, fmt.Errorf("decode metadata: %w", err)
	}

	if v, ok := fields[keyRelatedIssues]; ok {
		var ids []int64
		if err := json.Unmarshal(v, &ids); err == nil {
			m.RelatedIssues = ids
			delete(fields, keyRelatedIssues)
		}
	}

	if t == LogTypeMeeting {
		m.Meeting = takeBranch[MeetingMeta](fields, meetingKeys)
	} else {
		m.Measurement = takeBranch[MeasurementMeta](fields, measurementKeys)
	}

	if len(fields) > 0 {
		m.Extra = fields
	}
	return m, nil
}

// takeBranch moves the branch keys out of fields into a typed value. A
// branch that fails to decode is left in fields untouched.
func takeBranch[T any](fields map[string]json.RawMessage, keys []string) *T {
	var dst T
	sub := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		if v, ok := fields[k]; ok {
			sub[k] = v
		}
	}
	if len(sub) == 0 {
		return &dst
	}

	raw, err := json.Marshal(sub)
	if err != nil {
		return &dst
	}
	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return &dst
	}
	for k := range sub {
		delete(fields, k)
	}
	return &decoded
}

func toRawMap(v any) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata branch: %w", err)
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("flatten metadata branch: %w", err)
	}
	return out, nil
}
