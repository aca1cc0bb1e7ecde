package devlog

import (
	"context"
	"sync"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListFunc         func(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error)
	ListPageFunc     func(ctx context.Context, f domain.EntryFilter, limit int, offset int) ([]domain.LogEntry, int, error)
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.LogEntry, error)
	GetBriefsFunc    func(ctx context.Context, ids []int64) ([]domain.EntryBrief, error)
	SearchBriefsFunc func(ctx context.Context, term string, excludeID int64, limit int) ([]domain.EntryBrief, error)
	CreateFunc       func(ctx context.Context, e *domain.LogEntry) (*domain.LogEntry, error)
	UpdateFunc       func(ctx context.Context, id int64, p domain.EntryUpdateParams) (*domain.LogEntry, error)
	DeleteFunc       func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.EntryFilter
		}
		ListPage []struct {
			Ctx    context.Context
			F      domain.EntryFilter
			Limit  int
			Offset int
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetBriefs []struct {
			Ctx context.Context
			Ids []int64
		}
		SearchBriefs []struct {
			Ctx       context.Context
			Term      string
			ExcludeID int64
			Limit     int
		}
		Create []struct {
			Ctx context.Context
			E   *domain.LogEntry
		}
		Update []struct {
			Ctx context.Context
			ID  int64
			P   domain.EntryUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList         sync.RWMutex
	lockListPage     sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetBriefs    sync.RWMutex
	lockSearchBriefs sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *entryRepoMock) List(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.EntryFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.EntryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListPage(ctx context.Context, f domain.EntryFilter, limit int, offset int) ([]domain.LogEntry, int, error) {
	if mock.ListPageFunc == nil {
		panic("entryRepoMock.ListPageFunc: method is nil but entryRepo.ListPage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		F      domain.EntryFilter
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		F:      f,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListPage.Lock()
	mock.calls.ListPage = append(mock.calls.ListPage, callInfo)
	mock.lockListPage.Unlock()
	return mock.ListPageFunc(ctx, f, limit, offset)
}

func (mock *entryRepoMock) ListPageCalls() []struct {
	Ctx    context.Context
	F      domain.EntryFilter
	Limit  int
	Offset int
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id int64) (*domain.LogEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetBriefs(ctx context.Context, ids []int64) ([]domain.EntryBrief, error) {
	if mock.GetBriefsFunc == nil {
		panic("entryRepoMock.GetBriefsFunc: method is nil but entryRepo.GetBriefs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []int64
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockGetBriefs.Lock()
	mock.calls.GetBriefs = append(mock.calls.GetBriefs, callInfo)
	mock.lockGetBriefs.Unlock()
	return mock.GetBriefsFunc(ctx, ids)
}

func (mock *entryRepoMock) GetBriefsCalls() []struct {
	Ctx context.Context
	Ids []int64
} {
	mock.lockGetBriefs.RLock()
	calls := mock.calls.GetBriefs
	mock.lockGetBriefs.RUnlock()
	return calls
}

func (mock *entryRepoMock) SearchBriefs(ctx context.Context, term string, excludeID int64, limit int) ([]domain.EntryBrief, error) {
	if mock.SearchBriefsFunc == nil {
		panic("entryRepoMock.SearchBriefsFunc: method is nil but entryRepo.SearchBriefs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Term      string
		ExcludeID int64
		Limit     int
	}{
		Ctx:       ctx,
		Term:      term,
		ExcludeID: excludeID,
		Limit:     limit,
	}
	mock.lockSearchBriefs.Lock()
	mock.calls.SearchBriefs = append(mock.calls.SearchBriefs, callInfo)
	mock.lockSearchBriefs.Unlock()
	return mock.SearchBriefsFunc(ctx, term, excludeID, limit)
}

func (mock *entryRepoMock) SearchBriefsCalls() []struct {
	Ctx       context.Context
	Term      string
	ExcludeID int64
	Limit     int
} {
	mock.lockSearchBriefs.RLock()
	calls := mock.calls.SearchBriefs
	mock.lockSearchBriefs.RUnlock()
	return calls
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.LogEntry) (*domain.LogEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.LogEntry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.LogEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Update(ctx context.Context, id int64, p domain.EntryUpdateParams) (*domain.LogEntry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		P   domain.EntryUpdateParams
	}{
		Ctx: ctx,
		ID:  id,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  int64
	P   domain.EntryUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
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

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
