package comment

import (
	"context"
	"sync"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	ListByEntryFunc    func(ctx context.Context, entryID int64) ([]domain.Comment, error)
	CreateFunc         func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	DeleteFunc         func(ctx context.Context, id int64) error
	CountByEntriesFunc func(ctx context.Context, entryIDs []int64) (map[int64]int, error)

	calls struct {
		ListByEntry []struct {
			Ctx     context.Context
			EntryID int64
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Comment
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		CountByEntries []struct {
			Ctx      context.Context
			EntryIDs []int64
		}
	}
	lockListByEntry    sync.RWMutex
	lockCreate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockCountByEntries sync.RWMutex
}

func (mock *commentRepoMock) ListByEntry(ctx context.Context, entryID int64) ([]domain.Comment, error) {
	if mock.ListByEntryFunc == nil {
		panic("commentRepoMock.ListByEntryFunc: method is nil but commentRepo.ListByEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID int64
	}{
		Ctx:     ctx,
		EntryID: entryID,
	}
	mock.lockListByEntry.Lock()
	mock.calls.ListByEntry = append(mock.calls.ListByEntry, callInfo)
	mock.lockListByEntry.Unlock()
	return mock.ListByEntryFunc(ctx, entryID)
}

func (mock *commentRepoMock) ListByEntryCalls() []struct {
	Ctx     context.Context
	EntryID int64
} {
	mock.lockListByEntry.RLock()
	calls := mock.calls.ListByEntry
	mock.lockListByEntry.RUnlock()
	return calls
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Comment
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Comment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("commentRepoMock.DeleteFunc: method is nil but commentRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *commentRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *commentRepoMock) CountByEntries(ctx context.Context, entryIDs []int64) (map[int64]int, error) {
	if mock.CountByEntriesFunc == nil {
		panic("commentRepoMock.CountByEntriesFunc: method is nil but commentRepo.CountByEntries was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		EntryIDs []int64
	}{
		Ctx:      ctx,
		EntryIDs: entryIDs,
	}
	mock.lockCountByEntries.Lock()
	mock.calls.CountByEntries = append(mock.calls.CountByEntries, callInfo)
	mock.lockCountByEntries.Unlock()
	return mock.CountByEntriesFunc(ctx, entryIDs)
}

func (mock *commentRepoMock) CountByEntriesCalls() []struct {
	Ctx      context.Context
	EntryIDs []int64
} {
	mock.lockCountByEntries.RLock()
	calls := mock.calls.CountByEntries
	mock.lockCountByEntries.RUnlock()
	return calls
}
