package schedule

import (
	"context"
	"sync"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

var _ scheduleRepo = &scheduleRepoMock{}

type scheduleRepoMock struct {
	ListFunc    func(ctx context.Context, activeOnly bool) ([]domain.ScheduleItem, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.ScheduleItem, error)
	CreateFunc  func(ctx context.Context, s *domain.ScheduleItem) (*domain.ScheduleItem, error)
	UpdateFunc  func(ctx context.Context, id int64, p domain.ScheduleUpdateParams) (*domain.ScheduleItem, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx        context.Context
			ActiveOnly bool
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx context.Context
			S   *domain.ScheduleItem
		}
		Update []struct {
			Ctx context.Context
			ID  int64
			P   domain.ScheduleUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *scheduleRepoMock) List(ctx context.Context, activeOnly bool) ([]domain.ScheduleItem, error) {
	if mock.ListFunc == nil {
		panic("scheduleRepoMock.ListFunc: method is nil but scheduleRepo.List was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ActiveOnly bool
	}{
		Ctx:        ctx,
		ActiveOnly: activeOnly,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, activeOnly)
}

func (mock *scheduleRepoMock) ListCalls() []struct {
	Ctx        context.Context
	ActiveOnly bool
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) GetByID(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	if mock.GetByIDFunc == nil {
		panic("scheduleRepoMock.GetByIDFunc: method is nil but scheduleRepo.GetByID was just called")
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

func (mock *scheduleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) Create(ctx context.Context, s *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	if mock.CreateFunc == nil {
		panic("scheduleRepoMock.CreateFunc: method is nil but scheduleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.ScheduleItem
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *scheduleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.ScheduleItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) Update(ctx context.Context, id int64, p domain.ScheduleUpdateParams) (*domain.ScheduleItem, error) {
	if mock.UpdateFunc == nil {
		panic("scheduleRepoMock.UpdateFunc: method is nil but scheduleRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		P   domain.ScheduleUpdateParams
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

func (mock *scheduleRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  int64
	P   domain.ScheduleUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("scheduleRepoMock.DeleteFunc: method is nil but scheduleRepo.Delete was just called")
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

func (mock *scheduleRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
