package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Comment counts by EntryID
// ---------------------------------------------------------------------------

func newCommentCountBatchFn(src commentCounter) dataloader.BatchFunc[int64, int] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[int] {
		counts, err := src.Counts(ctx, keys)
		if err != nil {
			return errorResults[int](len(keys), err)
		}
		return mapResults(keys, counts, func() int { return 0 })
	}
}

// ---------------------------------------------------------------------------
// Briefs by EntryID
// ---------------------------------------------------------------------------

// newBriefBatchFn resolves linked entries. A dangling id yields a nil brief.
func newBriefBatchFn(src briefResolver) dataloader.BatchFunc[int64, *domain.EntryBrief] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.EntryBrief] {
		briefs, err := src.ResolveBriefs(ctx, keys)
		if err != nil {
			return errorResults[*domain.EntryBrief](len(keys), err)
		}

		byID := make(map[int64]*domain.EntryBrief, len(briefs))
		for i := range briefs {
			byID[briefs[i].ID] = &briefs[i]
		}
		return mapResults(keys, byID, func() *domain.EntryBrief { return nil })
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// LoadCommentCounts loads the comment count of every entry in one batch.
func (l *Loaders) LoadCommentCounts(ctx context.Context, entryIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}
	counts, errs := l.CommentCountByEntryID.LoadMany(ctx, entryIDs)()
	for i, id := range entryIDs {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		out[id] = counts[i]
	}
	return out, nil
}

// LoadBriefs resolves ids to briefs in one batch, dropping dangling ids
// and keeping input order.
func (l *Loaders) LoadBriefs(ctx context.Context, ids []int64) ([]domain.EntryBrief, error) {
	out := []domain.EntryBrief{}
	if len(ids) == 0 {
		return out, nil
	}
	briefs, errs := l.BriefByEntryID.LoadMany(ctx, ids)()
	for i := range ids {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		if briefs[i] != nil {
			out = append(out, *briefs[i])
		}
	}
	return out, nil
}
