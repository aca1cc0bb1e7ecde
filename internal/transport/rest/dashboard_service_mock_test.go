package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	OverviewFunc func(ctx context.Context, sel dashboard.Selection) (*dashboard.Overview, error)

	calls struct {
		Overview []struct {
			Ctx context.Context
			Sel dashboard.Selection
		}
	}
	lockOverview sync.RWMutex
}

func (mock *dashboardServiceMock) Overview(ctx context.Context, sel dashboard.Selection) (*dashboard.Overview, error) {
	if mock.OverviewFunc == nil {
		panic("dashboardServiceMock.OverviewFunc: method is nil but dashboardService.Overview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sel dashboard.Selection
	}{
		Ctx: ctx,
		Sel: sel,
	}
	mock.lockOverview.Lock()
	mock.calls.Overview = append(mock.calls.Overview, callInfo)
	mock.lockOverview.Unlock()
	return mock.OverviewFunc(ctx, sel)
}

func (mock *dashboardServiceMock) OverviewCalls() []struct {
	Ctx context.Context
	Sel dashboard.Selection
} {
	mock.lockOverview.RLock()
	calls := mock.calls.Overview
	mock.lockOverview.RUnlock()
	return calls
}
