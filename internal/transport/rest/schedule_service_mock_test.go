package rest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
	"github.com/heartmarshall/devlog-backend/internal/service/schedule"
)

var _ scheduleService = &scheduleServiceMock{}

type scheduleServiceMock struct {
	ListFunc         func(ctx context.Context) ([]domain.ScheduleItem, error)
	ListActiveFunc   func(ctx context.Context) ([]domain.ScheduleItem, error)
	GetFunc          func(ctx context.Context, id int64) (*domain.ScheduleItem, error)
	CreateFunc       func(ctx context.Context, input schedule.CreateInput) (*domain.ScheduleItem, error)
	UpdateFunc       func(ctx context.Context, id int64, input schedule.UpdateInput) (*domain.ScheduleItem, error)
	ChangeStatusFunc func(ctx context.Context, id int64, status domain.ScheduleStatus) (*domain.ScheduleItem, error)
	DeleteFunc       func(ctx context.Context, id int64) error
	BoardFunc        func(ctx context.Context, today time.Time) (*dashboard.Board, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		ListActive []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx   context.Context
			Input schedule.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			ID    int64
			Input schedule.UpdateInput
		}
		ChangeStatus []struct {
			Ctx    context.Context
			ID     int64
			Status domain.ScheduleStatus
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Board []struct {
			Ctx   context.Context
			Today time.Time
		}
	}
	lockList         sync.RWMutex
	lockListActive   sync.RWMutex
	lockGet          sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockChangeStatus sync.RWMutex
	lockDelete       sync.RWMutex
	lockBoard        sync.RWMutex
}

func (mock *scheduleServiceMock) List(ctx context.Context) ([]domain.ScheduleItem, error) {
	if mock.ListFunc == nil {
		panic("scheduleServiceMock.ListFunc: method is nil but scheduleService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *scheduleServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *scheduleServiceMock) ListActive(ctx context.Context) ([]domain.ScheduleItem, error) {
	if mock.ListActiveFunc == nil {
		panic("scheduleServiceMock.ListActiveFunc: method is nil but scheduleService.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *scheduleServiceMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *scheduleServiceMock) Get(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	if mock.GetFunc == nil {
		panic("scheduleServiceMock.GetFunc: method is nil but scheduleService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *scheduleServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *scheduleServiceMock) Create(ctx context.Context, input schedule.CreateInput) (*domain.ScheduleItem, error) {
	if mock.CreateFunc == nil {
		panic("scheduleServiceMock.CreateFunc: method is nil but scheduleService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input schedule.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *scheduleServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input schedule.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *scheduleServiceMock) Update(ctx context.Context, id int64, input schedule.UpdateInput) (*domain.ScheduleItem, error) {
	if mock.UpdateFunc == nil {
		panic("scheduleServiceMock.UpdateFunc: method is nil but scheduleService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Input schedule.UpdateInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *scheduleServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    int64
	Input schedule.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *scheduleServiceMock) ChangeStatus(ctx context.Context, id int64, status domain.ScheduleStatus) (*domain.ScheduleItem, error) {
	if mock.ChangeStatusFunc == nil {
		panic("scheduleServiceMock.ChangeStatusFunc: method is nil but scheduleService.ChangeStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Status domain.ScheduleStatus
	}{
		Ctx:    ctx,
		ID:     id,
		Status: status,
	}
	mock.lockChangeStatus.Lock()
	mock.calls.ChangeStatus = append(mock.calls.ChangeStatus, callInfo)
	mock.lockChangeStatus.Unlock()
	return mock.ChangeStatusFunc(ctx, id, status)
}

func (mock *scheduleServiceMock) ChangeStatusCalls() []struct {
	Ctx    context.Context
	ID     int64
	Status domain.ScheduleStatus
} {
	mock.lockChangeStatus.RLock()
	calls := mock.calls.ChangeStatus
	mock.lockChangeStatus.RUnlock()
	return calls
}

func (mock *scheduleServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("scheduleServiceMock.DeleteFunc: method is nil but scheduleService.Delete was just called")
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

func (mock *scheduleServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *scheduleServiceMock) Board(ctx context.Context, today time.Time) (*dashboard.Board, error) {
	if mock.BoardFunc == nil {
		panic("scheduleServiceMock.BoardFunc: method is nil but scheduleService.Board was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Today time.Time
	}{
		Ctx:   ctx,
		Today: today,
	}
	mock.lockBoard.Lock()
	mock.calls.Board = append(mock.calls.Board, callInfo)
	mock.lockBoard.Unlock()
	return mock.BoardFunc(ctx, today)
}

func (mock *scheduleServiceMock) BoardCalls() []struct {
	Ctx   context.Context
	Today time.Time
} {
	mock.lockBoard.RLock()
	calls := mock.calls.Board
	mock.lockBoard.RUnlock()
	return calls
}
