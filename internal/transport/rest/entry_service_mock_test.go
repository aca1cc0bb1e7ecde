package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/devlog"
)

var _ entryService = &entryServiceMock{}

type entryServiceMock struct {
	ListEntriesFunc    func(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error)
	ListPageFunc       func(ctx context.Context, input devlog.ListPageInput) (domain.Page[domain.LogEntry], error)
	GetEntryFunc       func(ctx context.Context, id int64) (*domain.LogEntry, error)
	CreateEntryFunc    func(ctx context.Context, input devlog.CreateEntryInput) (*domain.LogEntry, error)
	CreateMeetingFunc  func(ctx context.Context, input devlog.CreateMeetingInput) (*domain.LogEntry, error)
	UpdateEntryFunc    func(ctx context.Context, id int64, input devlog.UpdateEntryInput) (*domain.LogEntry, error)
	DeleteEntryFunc    func(ctx context.Context, id int64) error
	RelatedIssuesFunc  func(ctx context.Context, id int64) ([]domain.EntryBrief, error)
	SearchLinkableFunc func(ctx context.Context, term string, excludeID int64) ([]domain.EntryBrief, error)
	RecentLinkableFunc func(ctx context.Context, excludeID int64, limit int) ([]domain.EntryBrief, error)

	calls struct {
		ListEntries []struct {
			Ctx context.Context
			F   domain.EntryFilter
		}
		ListPage []struct {
			Ctx   context.Context
			Input devlog.ListPageInput
		}
		GetEntry []struct {
			Ctx context.Context
			ID  int64
		}
		CreateEntry []struct {
			Ctx   context.Context
			Input devlog.CreateEntryInput
		}
		CreateMeeting []struct {
			Ctx   context.Context
			Input devlog.CreateMeetingInput
		}
		UpdateEntry []struct {
			Ctx   context.Context
			ID    int64
			Input devlog.UpdateEntryInput
		}
		DeleteEntry []struct {
			Ctx context.Context
			ID  int64
		}
		RelatedIssues []struct {
			Ctx context.Context
			ID  int64
		}
		SearchLinkable []struct {
			Ctx       context.Context
			Term      string
			ExcludeID int64
		}
		RecentLinkable []struct {
			Ctx       context.Context
			ExcludeID int64
			Limit     int
		}
	}
	lockListEntries    sync.RWMutex
	lockListPage       sync.RWMutex
	lockGetEntry       sync.RWMutex
	lockCreateEntry    sync.RWMutex
	lockCreateMeeting  sync.RWMutex
	lockUpdateEntry    sync.RWMutex
	lockDeleteEntry    sync.RWMutex
	lockRelatedIssues  sync.RWMutex
	lockSearchLinkable sync.RWMutex
	lockRecentLinkable sync.RWMutex
}

func (mock *entryServiceMock) ListEntries(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error) {
	if mock.ListEntriesFunc == nil {
		panic("entryServiceMock.ListEntriesFunc: method is nil but entryService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.EntryFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, f)
}

func (mock *entryServiceMock) ListEntriesCalls() []struct {
	Ctx context.Context
	F   domain.EntryFilter
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *entryServiceMock) ListPage(ctx context.Context, input devlog.ListPageInput) (domain.Page[domain.LogEntry], error) {
	if mock.ListPageFunc == nil {
		panic("entryServiceMock.ListPageFunc: method is nil but entryService.ListPage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input devlog.ListPageInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListPage.Lock()
	mock.calls.ListPage = append(mock.calls.ListPage, callInfo)
	mock.lockListPage.Unlock()
	return mock.ListPageFunc(ctx, input)
}

func (mock *entryServiceMock) ListPageCalls() []struct {
	Ctx   context.Context
	Input devlog.ListPageInput
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}

func (mock *entryServiceMock) GetEntry(ctx context.Context, id int64) (*domain.LogEntry, error) {
	if mock.GetEntryFunc == nil {
		panic("entryServiceMock.GetEntryFunc: method is nil but entryService.GetEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetEntry.Lock()
	mock.calls.GetEntry = append(mock.calls.GetEntry, callInfo)
	mock.lockGetEntry.Unlock()
	return mock.GetEntryFunc(ctx, id)
}

func (mock *entryServiceMock) GetEntryCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetEntry.RLock()
	calls := mock.calls.GetEntry
	mock.lockGetEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) CreateEntry(ctx context.Context, input devlog.CreateEntryInput) (*domain.LogEntry, error) {
	if mock.CreateEntryFunc == nil {
		panic("entryServiceMock.CreateEntryFunc: method is nil but entryService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input devlog.CreateEntryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *entryServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input devlog.CreateEntryInput
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) CreateMeeting(ctx context.Context, input devlog.CreateMeetingInput) (*domain.LogEntry, error) {
	if mock.CreateMeetingFunc == nil {
		panic("entryServiceMock.CreateMeetingFunc: method is nil but entryService.CreateMeeting was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input devlog.CreateMeetingInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateMeeting.Lock()
	mock.calls.CreateMeeting = append(mock.calls.CreateMeeting, callInfo)
	mock.lockCreateMeeting.Unlock()
	return mock.CreateMeetingFunc(ctx, input)
}

func (mock *entryServiceMock) CreateMeetingCalls() []struct {
	Ctx   context.Context
	Input devlog.CreateMeetingInput
} {
	mock.lockCreateMeeting.RLock()
	calls := mock.calls.CreateMeeting
	mock.lockCreateMeeting.RUnlock()
	return calls
}

func (mock *entryServiceMock) UpdateEntry(ctx context.Context, id int64, input devlog.UpdateEntryInput) (*domain.LogEntry, error) {
	if mock.UpdateEntryFunc == nil {
		panic("entryServiceMock.UpdateEntryFunc: method is nil but entryService.UpdateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Input devlog.UpdateEntryInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, id, input)
}

func (mock *entryServiceMock) UpdateEntryCalls() []struct {
	Ctx   context.Context
	ID    int64
	Input devlog.UpdateEntryInput
} {
	mock.lockUpdateEntry.RLock()
	calls := mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) DeleteEntry(ctx context.Context, id int64) error {
	if mock.DeleteEntryFunc == nil {
		panic("entryServiceMock.DeleteEntryFunc: method is nil but entryService.DeleteEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, id)
}

func (mock *entryServiceMock) DeleteEntryCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteEntry.RLock()
	calls := mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) RelatedIssues(ctx context.Context, id int64) ([]domain.EntryBrief, error) {
	if mock.RelatedIssuesFunc == nil {
		panic("entryServiceMock.RelatedIssuesFunc: method is nil but entryService.RelatedIssues was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockRelatedIssues.Lock()
	mock.calls.RelatedIssues = append(mock.calls.RelatedIssues, callInfo)
	mock.lockRelatedIssues.Unlock()
	return mock.RelatedIssuesFunc(ctx, id)
}

func (mock *entryServiceMock) RelatedIssuesCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockRelatedIssues.RLock()
	calls := mock.calls.RelatedIssues
	mock.lockRelatedIssues.RUnlock()
	return calls
}

func (mock *entryServiceMock) SearchLinkable(ctx context.Context, term string, excludeID int64) ([]domain.EntryBrief, error) {
	if mock.SearchLinkableFunc == nil {
		panic("entryServiceMock.SearchLinkableFunc: method is nil but entryService.SearchLinkable was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Term      string
		ExcludeID int64
	}{
		Ctx:       ctx,
		Term:      term,
		ExcludeID: excludeID,
	}
	mock.lockSearchLinkable.Lock()
	mock.calls.SearchLinkable = append(mock.calls.SearchLinkable, callInfo)
	mock.lockSearchLinkable.Unlock()
	return mock.SearchLinkableFunc(ctx, term, excludeID)
}

func (mock *entryServiceMock) SearchLinkableCalls() []struct {
	Ctx       context.Context
	Term      string
	ExcludeID int64
} {
	mock.lockSearchLinkable.RLock()
	calls := mock.calls.SearchLinkable
	mock.lockSearchLinkable.RUnlock()
	return calls
}

func (mock *entryServiceMock) RecentLinkable(ctx context.Context, excludeID int64, limit int) ([]domain.EntryBrief, error) {
	if mock.RecentLinkableFunc == nil {
		panic("entryServiceMock.RecentLinkableFunc: method is nil but entryService.RecentLinkable was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ExcludeID int64
		Limit     int
	}{
		Ctx:       ctx,
		ExcludeID: excludeID,
		Limit:     limit,
	}
	mock.lockRecentLinkable.Lock()
	mock.calls.RecentLinkable = append(mock.calls.RecentLinkable, callInfo)
	mock.lockRecentLinkable.Unlock()
	return mock.RecentLinkableFunc(ctx, excludeID, limit)
}

func (mock *entryServiceMock) RecentLinkableCalls() []struct {
	Ctx       context.Context
	ExcludeID int64
	Limit     int
} {
	mock.lockRecentLinkable.RLock()
	calls := mock.calls.RecentLinkable
	mock.lockRecentLinkable.RUnlock()
	return calls
}
