package devlog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// ListEntries returns every entry matching the filter, newest first.
func (s *Service) ListEntries(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error) {
	if errs := validateFilter(nil, f); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	entries, err := s.entries.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// ListPage returns one timeline page. HasMore is true while entries
// remain past this page.
func (s *Service) ListPage(ctx context.Context, input ListPageInput) (domain.Page[domain.LogEntry], error) {
	if err := input.Validate(s.maxPageSize); err != nil {
		return domain.Page[domain.LogEntry]{}, err
	}

	size := input.PageSize
	if size == 0 {
		size = s.pageSize
	}
	offset := input.PageIndex * size

	items, total, err := s.entries.ListPage(ctx, input.Filter, size, offset)
	if err != nil {
		return domain.Page[domain.LogEntry]{}, fmt.Errorf("list page: %w", err)
	}
	if items == nil {
		items = []domain.LogEntry{}
	}

	return domain.Page[domain.LogEntry]{
		Items:      items,
		TotalCount: total,
		HasMore:    offset+len(items) < total,
	}, nil
}

// GetEntry returns one entry.
func (s *Service) GetEntry(ctx context.Context, id int64) (*domain.LogEntry, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}
