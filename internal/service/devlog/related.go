package devlog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// RelatedIssues resolves the entry's linked issues, newest first.
// Links to entries that no longer exist are skipped.
func (s *Service) RelatedIssues(ctx context.Context, id int64) ([]domain.EntryBrief, error) {
	entry, err := s.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.ResolveBriefs(ctx, entry.Metadata.RelatedIssues)
}

// ResolveBriefs loads briefs for the given ids, newest first.
func (s *Service) ResolveBriefs(ctx context.Context, ids []int64) ([]domain.EntryBrief, error) {
	ids = cleanIDs(ids)
	if len(ids) == 0 {
		return []domain.EntryBrief{}, nil
	}

	briefs, err := s.entries.GetBriefs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("related issues: %w", err)
	}
	sortBriefs(briefs)
	return briefs, nil
}

// SearchLinkable finds entries to link by title or content.
// A blank term returns nothing.
func (s *Service) SearchLinkable(ctx context.Context, term string, excludeID int64) ([]domain.EntryBrief, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.EntryBrief{}, nil
	}

	briefs, err := s.entries.SearchBriefs(ctx, term, excludeID, SearchLinkLimit)
	if err != nil {
		return nil, fmt.Errorf("search linkable: %w", err)
	}
	return briefs, nil
}

// RecentLinkable lists the latest entries offered as link candidates.
func (s *Service) RecentLinkable(ctx context.Context, excludeID int64, limit int) ([]domain.EntryBrief, error) {
	if limit <= 0 {
		limit = RecentLinkLimit
	}
	if limit > SearchLinkLimit {
		limit = SearchLinkLimit
	}

	briefs, err := s.entries.SearchBriefs(ctx, "", excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent linkable: %w", err)
	}
	return briefs, nil
}

func sortBriefs(briefs []domain.EntryBrief) {
	sort.SliceStable(briefs, func(i, j int) bool {
		if !briefs[i].EventDate.Equal(briefs[j].EventDate) {
			return briefs[i].EventDate.After(briefs[j].EventDate)
		}
		return briefs[i].ID > briefs[j].ID
	})
}
