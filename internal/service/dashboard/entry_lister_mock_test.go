package dashboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

var _ entryLister = &entryListerMock{}

type entryListerMock struct {
	ListFunc func(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.EntryFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *entryListerMock) List(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error) {
	if mock.ListFunc == nil {
		panic("entryListerMock.ListFunc: method is nil but entryLister.List was just called")
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

func (mock *entryListerMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.EntryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
