package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/comment"
)

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	ListFunc   func(ctx context.Context, entryID int64) ([]domain.Comment, error)
	CreateFunc func(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	DeleteFunc func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx     context.Context
			EntryID int64
		}
		Create []struct {
			Ctx   context.Context
			Input comment.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *commentServiceMock) List(ctx context.Context, entryID int64) ([]domain.Comment, error) {
	if mock.ListFunc == nil {
		panic("commentServiceMock.ListFunc: method is nil but commentService.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID int64
	}{
		Ctx:     ctx,
		EntryID: entryID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, entryID)
}

func (mock *commentServiceMock) ListCalls() []struct {
	Ctx     context.Context
	EntryID int64
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *commentServiceMock) Create(ctx context.Context, input comment.CreateInput) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentServiceMock.CreateFunc: method is nil but commentService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *commentServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input comment.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("commentServiceMock.DeleteFunc: method is nil but commentService.Delete was just called")
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

func (mock *commentServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
