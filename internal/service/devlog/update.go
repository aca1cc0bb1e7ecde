package devlog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// UpdateEntry applies a partial edit to an entry.
func (s *Service) UpdateEntry(ctx context.Context, id int64, input UpdateEntryInput) (*domain.LogEntry, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}
	if input.isEmpty() {
		return nil, domain.NewValidationError("input", "at least one field must be provided")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Metadata != nil {
		logType, err := s.targetLogType(ctx, id, input.LogType)
		if err != nil {
			return nil, err
		}
		if !input.Metadata.MatchesLogType(logType) {
			return nil, domain.NewValidationError("metadata", "does not match log type")
		}
	}

	params := domain.EntryUpdateParams{
		Phase:    input.Phase,
		Domain:   input.Domain,
		LogType:  input.LogType,
		Metadata: input.Metadata,
	}
	if input.LogType != nil && input.Metadata == nil {
		meta, err := s.rebindMetadata(ctx, id, *input.LogType)
		if err != nil {
			return nil, err
		}
		params.Metadata = meta
	}
	if input.EventDate != nil {
		d := domain.DateOf(*input.EventDate)
		params.EventDate = &d
	}
	if input.Author != nil {
		a := strings.TrimSpace(*input.Author)
		params.Author = &a
	}
	if input.Title != nil {
		t := strings.TrimSpace(*input.Title)
		params.Title = &t
	}
	if input.Content != nil {
		c := strings.TrimSpace(*input.Content)
		params.Content = &c
	}
	if input.ImageURLs != nil {
		urls := cleanList(*input.ImageURLs)
		params.ImageURLs = &urls
	}
	if input.RelatedLinks != nil {
		links := cleanList(*input.RelatedLinks)
		params.RelatedLinks = &links
	}

	updated, err := s.entries.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry updated", slog.Int64("entry_id", id))
	return updated, nil
}

// targetLogType is the log type the entry will have after the edit.
func (s *Service) targetLogType(ctx context.Context, id int64, next *domain.LogType) (domain.LogType, error) {
	if next != nil {
		return *next, nil
	}
	current, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("update entry: %w", err)
	}
	return current.LogType, nil
}

// rebindMetadata re-keys the stored metadata when the log type moves to
// the other branch. It returns nil when the stored metadata already fits.
func (s *Service) rebindMetadata(ctx context.Context, id int64, next domain.LogType) (*domain.Metadata, error) {
	current, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	if current.Metadata.MatchesLogType(next) {
		return nil, nil
	}
	meta, err := current.Metadata.Rebind(next)
	if err != nil {
		return nil, fmt.Errorf("update entry: rebind metadata: %w", err)
	}
	return &meta, nil
}

// DeleteEntry removes an entry and, through the store, its comments.
func (s *Service) DeleteEntry(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted", slog.Int64("entry_id", id))
	return nil
}
