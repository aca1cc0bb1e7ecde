package dashboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

var _ scheduleLister = &scheduleListerMock{}

type scheduleListerMock struct {
	ListFunc func(ctx context.Context, activeOnly bool) ([]domain.ScheduleItem, error)

	calls struct {
		List []struct {
			Ctx        context.Context
			ActiveOnly bool
		}
	}
	lockList sync.RWMutex
}

func (mock *scheduleListerMock) List(ctx context.Context, activeOnly bool) ([]domain.ScheduleItem, error) {
	if mock.ListFunc == nil {
		panic("scheduleListerMock.ListFunc: method is nil but scheduleLister.List was just called")
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

func (mock *scheduleListerMock) ListCalls() []struct {
	Ctx        context.Context
	ActiveOnly bool
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
