// Package dataloader provides per-request DataLoaders that batch the
// per-entry lookups of list responses (comment counts and linked-issue
// briefs) into single store calls.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const (
	maxBatch = 200
	wait     = 2 * time.Millisecond
)

type commentCounter interface {
	Counts(ctx context.Context, entryIDs []int64) (map[int64]int, error)
}

type briefResolver interface {
	ResolveBriefs(ctx context.Context, ids []int64) ([]domain.EntryBrief, error)
}

// Sources holds the services the loaders batch into.
type Sources struct {
	Comments commentCounter
	Briefs   briefResolver
}

// Loaders contains the per-request DataLoaders. Created per-request via
// NewLoaders.
type Loaders struct {
	CommentCountByEntryID *dataloader.Loader[int64, int]
	BriefByEntryID        *dataloader.Loader[int64, *domain.EntryBrief]
}

// NewLoaders creates a new set of DataLoaders backed by the given sources.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(src *Sources) *Loaders {
	return &Loaders{
		CommentCountByEntryID: newLoader(newCommentCountBatchFn(src.Comments)),
		BriefByEntryID:        newLoader(newBriefBatchFn(src.Briefs)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
