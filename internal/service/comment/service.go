package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const (
	maxAuthorLen  = 50
	maxContentLen = 2000
)

type commentRepo interface {
	ListByEntry(ctx context.Context, entryID int64) ([]domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
	CountByEntries(ctx context.Context, entryIDs []int64) (map[int64]int, error)
}

// Service manages comments on log entries.
type Service struct {
	comments commentRepo
	log      *slog.Logger
}

// NewService creates a new comment service.
func NewService(log *slog.Logger, comments commentRepo) *Service {
	return &Service{
		comments: comments,
		log:      log.With("service", "comment"),
	}
}

// CreateInput holds the parameters for commenting on an entry.
type CreateInput struct {
	EntryID int64
	Author  string
	Content string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "must be positive"})
	}

	author := strings.TrimSpace(i.Author)
	switch {
	case author == "":
		errs = append(errs, domain.FieldError{Field: "author", Message: "required"})
	case utf8.RuneCountInString(author) > maxAuthorLen:
		errs = append(errs, domain.FieldError{Field: "author", Message: "max 50 characters"})
	}

	content := strings.TrimSpace(i.Content)
	switch {
	case content == "":
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	case utf8.RuneCountInString(content) > maxContentLen:
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns the comments of an entry, oldest first.
func (s *Service) List(ctx context.Context, entryID int64) ([]domain.Comment, error) {
	if entryID <= 0 {
		return nil, domain.NewValidationError("entry_id", "must be positive")
	}
	comments, err := s.comments.ListByEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Create adds a comment. A missing entry yields ErrNotFound.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		EntryID: input.EntryID,
		Author:  strings.TrimSpace(input.Author),
		Content: strings.TrimSpace(input.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.Int64("comment_id", created.ID),
		slog.Int64("entry_id", created.EntryID),
	)
	return created, nil
}

// Delete removes a comment.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment deleted", slog.Int64("comment_id", id))
	return nil
}

// Counts returns the number of comments per entry. Entries without
// comments map to zero.
func (s *Service) Counts(ctx context.Context, entryIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}

	counts, err := s.comments.CountByEntries(ctx, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	for _, id := range entryIDs {
		out[id] = counts[id]
	}
	return out, nil
}
