package devlog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// CreateEntry logs a new entry.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.LogEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	meta := domain.NewMetadata(input.LogType)
	if input.Metadata != nil {
		meta = *input.Metadata
	}

	entry := &domain.LogEntry{
		EventDate:    s.eventDate(input.EventDate),
		Author:       strings.TrimSpace(input.Author),
		Phase:        input.Phase,
		Domain:       input.Domain,
		LogType:      input.LogType,
		Title:        strings.TrimSpace(input.Title),
		Content:      trimOrNil(input.Content),
		Metadata:     meta,
		ImageURLs:    cleanList(input.ImageURLs),
		RelatedLinks: cleanList(input.RelatedLinks),
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.Int64("entry_id", created.ID),
		slog.String("log_type", created.LogType.String()),
		slog.String("domain", created.Domain.String()),
	)
	return created, nil
}

// CreateMeeting logs meeting minutes. The phase defaults to WS.
func (s *Service) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*domain.LogEntry, error) {
	if input.Phase == "" {
		input.Phase = domain.PhaseWS
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	meeting := &domain.MeetingMeta{
		Attendees:   cleanList(input.Attendees),
		ActionItems: dropBlank(input.ActionItems),
	}
	if input.NextMeetingDate != nil {
		meeting.NextMeetingDate = domain.FormatDate(*input.NextMeetingDate)
	}

	entry := &domain.LogEntry{
		EventDate: s.eventDate(input.EventDate),
		Author:    strings.TrimSpace(input.Author),
		Phase:     input.Phase,
		Domain:    domain.DomainProjectCommon,
		LogType:   domain.LogTypeMeeting,
		Title:     strings.TrimSpace(input.Title),
		Content:   trimOrNil(input.Content),
		Metadata: domain.Metadata{
			Meeting:       meeting,
			RelatedIssues: cleanIDs(input.RelatedIssues),
		},
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}

	s.log.InfoContext(ctx, "meeting logged",
		slog.Int64("entry_id", created.ID),
		slog.Int("attendees", len(meeting.Attendees)),
		slog.Int("action_items", len(meeting.ActionItems)),
	)
	return created, nil
}

func (s *Service) eventDate(d *time.Time) time.Time {
	if d == nil {
		return s.today()
	}
	return domain.DateOf(*d)
}

// dropBlank trims items and drops empty ones. Duplicates are kept.
func dropBlank(in []string) []string {
	var out []string
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
