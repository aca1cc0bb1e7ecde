package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/attachment"
	"github.com/heartmarshall/devlog-backend/internal/service/comment"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
	"github.com/heartmarshall/devlog-backend/internal/service/devlog"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
	"github.com/heartmarshall/devlog-backend/internal/viewstate"
)

var testDay = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeEntries struct {
	mu       sync.Mutex
	entries  []domain.LogEntry
	pages    []int
	created  []devlog.CreateEntryInput
	meetings []devlog.CreateMeetingInput
	failWith error
}

func newFakeEntries(n int) *fakeEntries {
	f := &fakeEntries{}
	for i := n; i >= 1; i-- {
		f.entries = append(f.entries, domain.LogEntry{
			ID:        int64(i),
			EventDate: testDay,
			Author:    "kim",
			Phase:     domain.PhasePT,
			Domain:    domain.DomainOpticsARK,
			LogType:   domain.LogTypeBug,
			Title:     "entry",
		})
	}
	return f
}

func (f *fakeEntries) ListPage(_ context.Context, in devlog.ListPageInput) (domain.Page[domain.LogEntry], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = append(f.pages, in.PageIndex)

	start := min(in.PageIndex*in.PageSize, len(f.entries))
	end := min(start+in.PageSize, len(f.entries))
	return domain.Page[domain.LogEntry]{
		Items:      f.entries[start:end],
		TotalCount: len(f.entries),
		HasMore:    end < len(f.entries),
	}, nil
}

func (f *fakeEntries) GetEntry(_ context.Context, id int64) (*domain.LogEntry, error) {
	for i := range f.entries {
		if f.entries[i].ID == id {
			e := f.entries[i]
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEntries) RelatedIssues(_ context.Context, id int64) ([]domain.EntryBrief, error) {
	return []domain.EntryBrief{{ID: id + 100, Title: "linked", LogType: domain.LogTypeBug}}, nil
}

func (f *fakeEntries) CreateEntry(_ context.Context, in devlog.CreateEntryInput) (*domain.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.created = append(f.created, in)
	return &domain.LogEntry{ID: 99, Title: in.Title}, nil
}

func (f *fakeEntries) CreateMeeting(_ context.Context, in devlog.CreateMeetingInput) (*domain.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.meetings = append(f.meetings, in)
	return &domain.LogEntry{ID: 98, Title: in.Title}, nil
}

type fakeComments struct {
	comments []domain.Comment
	deleted  []int64
}

func (f *fakeComments) List(_ context.Context, entryID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range f.comments {
		if c.EntryID == entryID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComments) Create(_ context.Context, in comment.CreateInput) (*domain.Comment, error) {
	c := domain.Comment{ID: int64(len(f.comments) + 1), EntryID: in.EntryID, Author: in.Author, Content: in.Content}
	f.comments = append(f.comments, c)
	return &c, nil
}

func (f *fakeComments) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeDashboard struct {
	overview *dashboard.Overview
	board    dashboard.Board
}

func (f *fakeDashboard) Overview(context.Context, dashboard.Selection) (*dashboard.Overview, error) {
	return f.overview, nil
}

func (f *fakeDashboard) Schedule(context.Context, time.Time) (*dashboard.Board, error) {
	b := f.board
	return &b, nil
}

func testBoard() dashboard.Board {
	return dashboard.BuildBoard([]domain.ScheduleItem{
		{ID: 1, Title: "ES build", DueDate: testDay.AddDate(0, 0, 3), Status: domain.StatusInProgress, Priority: domain.PriorityHigh},
		{ID: 2, Title: "Calibration jig", DueDate: testDay.AddDate(0, 0, 20), Status: domain.StatusUpcoming, Priority: domain.PriorityNormal},
		{ID: 3, Title: "WS review", DueDate: testDay.AddDate(0, 0, -5), Status: domain.StatusDone, Priority: domain.PriorityLow},
	}, testDay)
}

// ============================================================
// Helpers
// ============================================================

func TestCycle(t *testing.T) {
	t.Parallel()

	all := []domain.Phase{domain.PhasePT, domain.PhaseES}
	assert.Equal(t, domain.PhasePT, cycle(domain.Phase(""), all))
	assert.Equal(t, domain.PhaseES, cycle(domain.PhasePT, all))
	assert.Equal(t, domain.Phase(""), cycle(domain.PhaseES, all))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "광학…", truncate("광학부품", 3))
	assert.Equal(t, "abc", truncate("abc", 0))
}

func TestKeyMapHelp(t *testing.T) {
	t.Parallel()

	assert.Contains(t, keys.ShortHelp(), keys.Quit)
	assert.NotEmpty(t, keys.FullHelp())
}

// ============================================================
// Timeline
// ============================================================

func TestTimeline_LoadsAndAppendsPages(t *testing.T) {
	t.Parallel()

	svc := newFakeEntries(5)
	m := newTimelineModel(svc, 3)

	m, cmd := m.request(false)
	require.NotNil(t, cmd)
	assert.True(t, m.tl.Loading)
	m, _ = m.update(cmd())
	assert.Len(t, m.tl.Items, 3)
	assert.True(t, m.tl.HasMore)

	m, cmd = m.request(true)
	require.NotNil(t, cmd)
	m, _ = m.update(cmd())
	assert.Len(t, m.tl.Items, 5)
	assert.False(t, m.tl.HasMore)
	assert.Equal(t, 5, m.tl.TotalCount)

	// nothing left to append
	_, cmd = m.request(true)
	assert.Nil(t, cmd)
	assert.Equal(t, []int{0, 1}, svc.pages)
}

func TestTimeline_DropsReplyAfterLeave(t *testing.T) {
	t.Parallel()

	m := newTimelineModel(newFakeEntries(2), 10)
	m, cmd := m.request(false)
	require.NotNil(t, cmd)

	m = m.leave()
	m, _ = m.update(cmd())

	assert.Empty(t, m.tl.Items)
	assert.False(t, m.tl.Loading)
}

func TestTimeline_EnterOpensDetail(t *testing.T) {
	t.Parallel()

	m := newTimelineModel(newFakeEntries(2), 10)
	m, cmd := m.request(false)
	m, _ = m.update(cmd())

	m, _ = m.update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = m.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, openDetailMsg{id: 1}, cmd())
}

func TestScrollOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, scrollOffset(2, 0, 5))
	assert.Equal(t, 3, scrollOffset(7, 0, 5))
	assert.Equal(t, 1, scrollOffset(1, 4, 5))
}

// ============================================================
// Dashboard and schedule
// ============================================================

func TestDashboard_FilterKeysReload(t *testing.T) {
	t.Parallel()

	svc := &fakeDashboard{overview: &dashboard.Overview{Today: testDay}}
	d := newDashboardModel(svc)

	d, cmd := d.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	require.NotNil(t, cmd)
	assert.Equal(t, domain.PhasePlanning, d.sel.Phase)

	d, _ = d.update(cmd())
	assert.False(t, d.loading)
	assert.NotNil(t, d.overview)

	d, _ = d.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.True(t, d.sel.IsAll())
}

func TestDashboard_StaleOverviewDropped(t *testing.T) {
	t.Parallel()

	svc := &fakeDashboard{overview: &dashboard.Overview{Today: testDay}}
	d := newDashboardModel(svc)

	d, first := d.load()
	d, second := d.load()

	d, _ = d.update(first())
	assert.Nil(t, d.overview)
	assert.True(t, d.loading)

	d, _ = d.update(second())
	assert.NotNil(t, d.overview)
}

func TestSchedule_ViewShowsBoard(t *testing.T) {
	t.Parallel()

	s := newScheduleModel(&fakeDashboard{board: testBoard()})
	s.setSize(160, 40)

	s, cmd := s.load()
	s, _ = s.update(cmd())
	require.NotNil(t, s.board)

	out := s.view()
	assert.Contains(t, out, "D-3")
	assert.Contains(t, out, "ES build")
	assert.Contains(t, out, "Calibration jig")
	assert.Contains(t, out, "2024-05-10")
}

// ============================================================
// Detail
// ============================================================

func TestDetail_LoadsEntryRelatedAndComments(t *testing.T) {
	t.Parallel()

	comments := &fakeComments{comments: []domain.Comment{
		{ID: 1, EntryID: 2, Author: "lee", Content: "확인했습니다"},
		{ID: 2, EntryID: 1, Author: "park", Content: "other"},
	}}
	d := newDetailModel(newFakeEntries(3), comments)
	d.setSize(120, 40)

	d, cmd := d.open(2)
	require.NotNil(t, cmd)
	d, _ = d.update(cmd())

	require.NotNil(t, d.entry)
	assert.Equal(t, int64(2), d.entry.ID)
	assert.Equal(t, []domain.EntryBrief{{ID: 102, Title: "linked", LogType: domain.LogTypeBug}}, d.related)
	require.Len(t, d.thread, 1)
	assert.Contains(t, d.body(), "확인했습니다")
}

func TestDetail_MissingEntryShowsError(t *testing.T) {
	t.Parallel()

	d := newDetailModel(newFakeEntries(1), &fakeComments{})
	d, cmd := d.open(42)
	d, _ = d.update(cmd())

	assert.Equal(t, usermsg.NotFound, d.err)
	assert.Contains(t, d.view(), usermsg.NotFound)
}

func TestDetail_ReplyForPreviousEntryDropped(t *testing.T) {
	t.Parallel()

	d := newDetailModel(newFakeEntries(3), &fakeComments{})
	d, first := d.open(1)
	d, second := d.open(3)

	d, _ = d.update(first())
	assert.Nil(t, d.entry)

	d, _ = d.update(second())
	require.NotNil(t, d.entry)
	assert.Equal(t, int64(3), d.entry.ID)
}

func TestDetail_SaveCommentReloadsThread(t *testing.T) {
	t.Parallel()

	comments := &fakeComments{}
	d := newDetailModel(newFakeEntries(1), comments)
	d, cmd := d.open(1)
	d, _ = d.update(cmd())

	saved := d.saveComment("kim", "측정 재확인 필요")()
	d, cmd = d.update(saved)
	require.NotNil(t, cmd)
	require.Len(t, comments.comments, 1)
	assert.Equal(t, int64(1), comments.comments[0].EntryID)

	d, _ = d.update(d.reloadComments()())
	assert.Len(t, d.thread, 1)
}

func TestMetadataLines(t *testing.T) {
	t.Parallel()

	diopter := 0.25
	lines := metadataLines(domain.Metadata{Measurement: &domain.MeasurementMeta{
		DiopterError: &diopter,
		ErrorCode:    "E-12",
		TestResults:  &domain.TestResults{Passed: true},
	}})

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "0.25")
	assert.Contains(t, joined, "E-12")
	assert.Contains(t, joined, "PASS")
	assert.Empty(t, metadataLines(domain.Metadata{}))
}

// ============================================================
// Forms
// ============================================================

// readyToSubmit drives the form state to Submitting as a completed huh form would.
func readyToSubmit(t *testing.T, f formModel) formModel {
	t.Helper()
	f.state, _ = f.state.Reduce(viewstate.Edited[draft]{Values: *f.values})
	var eff viewstate.FormEffect
	f.state, eff = f.state.Reduce(viewstate.SubmitRequested{})
	require.Equal(t, viewstate.FormSubmit, eff.Kind)
	return f
}

func TestForm_FailedSubmitKeepsValues(t *testing.T) {
	t.Parallel()

	svc := newFakeEntries(0)
	svc.failWith = domain.ErrRequestFailed

	f := newFormModel(svc, nil, quickLogForm, testDay, 1)
	f.values.Author = "kim"
	f.values.Title = "렌즈 정렬 오차"
	f = readyToSubmit(t, f)

	f, _ = f.update(f.submit()())

	assert.Equal(t, viewstate.FormFailed, f.state.Status)
	assert.Equal(t, usermsg.For(domain.ErrRequestFailed, usermsg.OpSave), f.state.Error)
	assert.Equal(t, "렌즈 정렬 오차", f.values.Title)
	assert.Equal(t, "kim", f.state.Values.Author)
	f.setSize(120)
	assert.Contains(t, f.view(), f.state.Error)
}

func TestForm_SuccessSchedulesClose(t *testing.T) {
	t.Parallel()

	svc := newFakeEntries(0)
	f := newFormModel(svc, nil, quickLogForm, testDay, 4)
	f.values.Author = "kim"
	f.values.Title = "FW 업데이트"
	f.values.Content = "   "
	f = readyToSubmit(t, f)

	f, cmd := f.update(f.submit()())
	require.NotNil(t, cmd)
	assert.Equal(t, viewstate.FormSucceeded, f.state.Status)

	require.Len(t, svc.created, 1)
	in := svc.created[0]
	assert.Equal(t, "FW 업데이트", in.Title)
	assert.Nil(t, in.Content)
	require.NotNil(t, in.EventDate)
	assert.Equal(t, testDay, *in.EventDate)
}

func TestForm_StaleSubmitResultIgnored(t *testing.T) {
	t.Parallel()

	f := newFormModel(newFakeEntries(0), nil, quickLogForm, testDay, 2)
	f = readyToSubmit(t, f)

	f, cmd := f.update(submitResultMsg{seq: 1, err: errors.New("boom")})
	assert.Nil(t, cmd)
	assert.Equal(t, viewstate.FormSubmitting, f.state.Status)
}

type fakeImages struct {
	mu       sync.Mutex
	files    []attachment.File
	failWith error
}

func (f *fakeImages) UploadImages(_ context.Context, files []attachment.File) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files = append(f.files, files...)
	if f.failWith != nil {
		return nil, f.failWith
	}
	urls := make([]string, len(files))
	for i, file := range files {
		urls[i] = "/files/" + file.Name
	}
	return urls, nil
}

func writeImage(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte("\x89PNG\r\n\x1a\n"), 0o644))
	return p
}

func TestForm_SubmitWaitsForImageUploads(t *testing.T) {
	t.Parallel()

	entries := newFakeEntries(0)
	images := &fakeImages{}
	f := newFormModel(entries, images, quickLogForm, testDay, 5)
	f.values.Author = "kim"
	f.values.Title = "렌즈 정렬 오차"
	f.values.Images = writeImage(t, "a.png") + ", " + writeImage(t, "b.png")

	f, upload := f.completed()
	require.NotNil(t, upload)
	assert.Equal(t, 2, f.state.PendingUploads)
	assert.False(t, f.state.CanSubmit())
	assert.NotEqual(t, viewstate.FormSubmitting, f.state.Status)
	assert.Contains(t, f.view(), "업로드 중")

	// a second completion while uploading must not submit
	blocked, cmd := f.requestSubmit()
	assert.Nil(t, cmd)
	assert.Equal(t, viewstate.FormIdle, blocked.state.Status)
	assert.Empty(t, entries.created)

	f, submit := f.update(upload())
	require.NotNil(t, submit)
	assert.Equal(t, viewstate.FormSubmitting, f.state.Status)
	assert.Zero(t, f.state.PendingUploads)

	f, _ = f.update(submit())
	assert.Equal(t, viewstate.FormSucceeded, f.state.Status)

	require.Len(t, images.files, 2)
	assert.Equal(t, "a.png", images.files[0].Name)
	require.Len(t, entries.created, 1)
	assert.Equal(t, []string{"/files/a.png", "/files/b.png"}, entries.created[0].ImageURLs)
}

func TestForm_UploadFailureKeepsValues(t *testing.T) {
	t.Parallel()

	entries := newFakeEntries(0)
	images := &fakeImages{failWith: domain.ErrRequestFailed}
	f := newFormModel(entries, images, quickLogForm, testDay, 6)
	f.values.Author = "kim"
	f.values.Title = "FW 업데이트"
	path := writeImage(t, "a.png")
	f.values.Images = path

	f, upload := f.completed()
	require.NotNil(t, upload)

	f, _ = f.update(upload())
	assert.Zero(t, f.state.PendingUploads)
	assert.Equal(t, usermsg.For(domain.ErrRequestFailed, usermsg.OpUpload), f.state.UploadError)
	assert.Equal(t, viewstate.FormIdle, f.state.Status)
	assert.True(t, f.state.CanSubmit())
	assert.Equal(t, path, f.values.Images)
	assert.Equal(t, "FW 업데이트", f.values.Title)
	assert.Empty(t, entries.created)
	f.setSize(120)
	assert.Contains(t, f.view(), f.state.UploadError)
}

func TestForm_UnreadableImageSkipsUpload(t *testing.T) {
	t.Parallel()

	images := &fakeImages{}
	f := newFormModel(newFakeEntries(0), images, quickLogForm, testDay, 7)
	f.values.Author = "kim"
	f.values.Title = "missing file"
	f.values.Images = filepath.Join(t.TempDir(), "nope.png")

	f, upload := f.completed()
	require.NotNil(t, upload)

	msg := upload().(imagesUploadedMsg)
	assert.ErrorIs(t, msg.err, domain.ErrValidation)
	assert.Empty(t, images.files)

	f, _ = f.update(msg)
	assert.NotEmpty(t, f.state.UploadError)
	assert.Zero(t, f.state.PendingUploads)
}

func TestForm_NoImagesSubmitsDirectly(t *testing.T) {
	t.Parallel()

	entries := newFakeEntries(0)
	f := newFormModel(entries, &fakeImages{}, quickLogForm, testDay, 8)
	f.values.Author = "kim"
	f.values.Title = "정렬"

	f, submit := f.completed()
	require.NotNil(t, submit)
	assert.Equal(t, viewstate.FormSubmitting, f.state.Status)

	_, _ = f.update(submit())
	require.Len(t, entries.created, 1)
	assert.Nil(t, entries.created[0].ImageURLs)
}

func TestForm_StaleUploadResultIgnored(t *testing.T) {
	t.Parallel()

	f := newFormModel(newFakeEntries(0), &fakeImages{}, quickLogForm, testDay, 9)
	f.values.Images = writeImage(t, "a.png")
	f, _ = f.completed()

	f, cmd := f.update(imagesUploadedMsg{seq: 3, n: 1, urls: []string{"/files/x.png"}})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, f.state.PendingUploads)
}

func TestDraft_MeetingInput(t *testing.T) {
	t.Parallel()

	d := newDraft(meetingForm, testDay)
	d.Author = " kim "
	d.Title = "주간 회의"
	d.Attendees = "kim, lee,, park "
	d.ActionItems = "지그 수정\n\n펌웨어 배포\n"
	d.NextMeeting = "2024-05-17"
	d.RelatedIssues = "#3, 12"

	in, err := d.meetingInput()
	require.NoError(t, err)

	assert.Equal(t, "kim", in.Author)
	assert.Equal(t, []string{"kim", "lee", "park"}, in.Attendees)
	assert.Equal(t, []string{"지그 수정", "펌웨어 배포"}, in.ActionItems)
	assert.Equal(t, []int64{3, 12}, in.RelatedIssues)
	require.NotNil(t, in.NextMeetingDate)
	assert.Equal(t, testDay.AddDate(0, 0, 7), *in.NextMeetingDate)
	assert.Nil(t, in.Content)
}

func TestDraft_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft draft
	}{
		{name: "bad event date", draft: draft{EventDate: "05/10/2024"}},
		{name: "bad next meeting", draft: draft{NextMeeting: "next week"}},
		{name: "bad issue id", draft: draft{RelatedIssues: "#abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.draft.meetingInput()
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// ============================================================
// App
// ============================================================

func newTestApp() App {
	svc := Services{
		Entries:   newFakeEntries(3),
		Comments:  &fakeComments{},
		Dashboard: &fakeDashboard{overview: &dashboard.Overview{Today: testDay}, board: testBoard()},
	}
	a := NewApp(svc, 10)
	a.now = func() time.Time { return testDay }
	return a
}

func TestApp_InitLoadsDashboard(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	require.NotNil(t, a.initCmd)
	model, _ := a.Update(a.initCmd())
	a = model.(App)
	assert.NotNil(t, a.dashboard.overview)
}

func TestApp_ViewBeforeResize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Loading...", newTestApp().View())
}

func TestApp_SwitchingViewDropsPendingReply(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	var cmd tea.Cmd
	a.dashboard, cmd = a.dashboard.load()
	pending := cmd()

	model, next := a.switchTo(viewTimeline)
	a = model.(App)
	require.NotNil(t, next)

	model, _ = a.Update(pending)
	a = model.(App)
	assert.Nil(t, a.dashboard.overview)
	assert.Equal(t, viewTimeline, a.activeView)

	model, _ = a.Update(next())
	a = model.(App)
	assert.Len(t, a.timeline.tl.Items, 3)
}

func TestApp_FormClosedAfterSaveRefreshes(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	model, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = model.(App)

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	a = model.(App)
	require.NotNil(t, a.form)
	assert.Contains(t, a.View(), "빠른 기록")

	model, cmd := a.Update(formClosedMsg{saved: true})
	a = model.(App)
	assert.Nil(t, a.form)
	assert.Equal(t, usermsg.Saved, a.status)
	require.NotNil(t, cmd)
}

func TestApp_EscClosesDetail(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	model, cmd := a.Update(openDetailMsg{id: 2})
	a = model.(App)
	require.True(t, a.showDetail)
	pending := cmd()

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(App)
	assert.False(t, a.showDetail)

	model, _ = a.Update(pending)
	a = model.(App)
	assert.Nil(t, a.detail.entry)
}
