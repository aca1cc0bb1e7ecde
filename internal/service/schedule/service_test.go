package schedule

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
)

//go:generate moq -out schedule_repo_mock_test.go -pkg schedule . scheduleRepo

var today = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, mock *scheduleRepoMock) *Service {
	t.Helper()
	return &Service{
		schedules: mock,
		log:       slog.Default(),
		now:       func() time.Time { return today },
	}
}

func ptr[T any](v T) *T { return &v }

func day(offset int) *time.Time {
	d := today.AddDate(0, 0, offset)
	return &d
}

func fieldErrors(t *testing.T, err error) map[string]bool {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	out := make(map[string]bool, len(ve.Errors))
	for _, fe := range ve.Errors {
		out[fe.Field] = true
	}
	return out
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestCreate_Defaults(t *testing.T) {
	t.Parallel()

	mock := &scheduleRepoMock{
		CreateFunc: func(ctx context.Context, s *domain.ScheduleItem) (*domain.ScheduleItem, error) {
			out := *s
			out.ID = 1
			return &out, nil
		},
	}
	svc := newTestService(t, mock)

	got, err := svc.Create(context.Background(), CreateInput{
		Title:     " ES 빌드 검증 ",
		StartDate: day(0),
		DueDate:   day(10),
		Assignees: []string{"김철수", " 김철수 ", "", "박영희"},
		Phase:     ptr(domain.Phase("")),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusUpcoming || got.Priority != domain.PriorityNormal {
		t.Errorf("defaults: got %q/%q", got.Status, got.Priority)
	}
	if got.Title != "ES 빌드 검증" {
		t.Errorf("title: got %q", got.Title)
	}
	if len(got.Assignees) != 2 || got.Assignees[0] != "김철수" || got.Assignees[1] != "박영희" {
		t.Errorf("assignees: got %v", got.Assignees)
	}
	if got.Phase != nil {
		t.Errorf("phase: got %v, want nil", *got.Phase)
	}
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input CreateInput
		field string
	}{
		{"missing title", CreateInput{StartDate: day(0), DueDate: day(1)}, "title"},
		{"missing start", CreateInput{Title: "t", DueDate: day(1)}, "start_date"},
		{"missing due", CreateInput{Title: "t", StartDate: day(0)}, "due_date"},
		{"due before start", CreateInput{Title: "t", StartDate: day(3), DueDate: day(1)}, "due_date"},
		{"bad status", CreateInput{Title: "t", StartDate: day(0), DueDate: day(1), Status: "보류"}, "status"},
		{"bad priority", CreateInput{Title: "t", StartDate: day(0), DueDate: day(1), Priority: "긴급"}, "priority"},
		{"bad phase", CreateInput{Title: "t", StartDate: day(0), DueDate: day(1), Phase: ptr(domain.Phase("QA"))}, "phase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &scheduleRepoMock{}
			svc := newTestService(t, mock)

			_, err := svc.Create(context.Background(), tt.input)
			if !fieldErrors(t, err)[tt.field] {
				t.Errorf("expected error on %q, got: %v", tt.field, err)
			}
			if len(mock.CreateCalls()) != 0 {
				t.Errorf("Create calls: got %d, want 0", len(mock.CreateCalls()))
			}
		})
	}
}

func TestCreate_SameDayAllowed(t *testing.T) {
	t.Parallel()

	mock := &scheduleRepoMock{
		CreateFunc: func(ctx context.Context, s *domain.ScheduleItem) (*domain.ScheduleItem, error) { return s, nil },
	}
	svc := newTestService(t, mock)

	if _, err := svc.Create(context.Background(), CreateInput{Title: "t", StartDate: day(2), DueDate: day(2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update / ChangeStatus / Delete
// ---------------------------------------------------------------------------

func TestUpdate_DueDateCheckedAgainstStoredStart(t *testing.T) {
	t.Parallel()

	mock := &scheduleRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
			return &domain.ScheduleItem{ID: id, StartDate: *day(5), DueDate: *day(10)}, nil
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.Update(context.Background(), 2, UpdateInput{DueDate: day(4)})
	if !fieldErrors(t, err)["due_date"] {
		t.Errorf("expected due_date error, got: %v", err)
	}
	if len(mock.UpdateCalls()) != 0 {
		t.Errorf("Update calls: got %d, want 0", len(mock.UpdateCalls()))
	}
}

func TestUpdate_BothDatesSkipLookup(t *testing.T) {
	t.Parallel()

	mock := &scheduleRepoMock{
		UpdateFunc: func(ctx context.Context, id int64, p domain.ScheduleUpdateParams) (*domain.ScheduleItem, error) {
			return &domain.ScheduleItem{ID: id, StartDate: *p.StartDate, DueDate: *p.DueDate}, nil
		},
	}
	svc := newTestService(t, mock)

	if _, err := svc.Update(context.Background(), 2, UpdateInput{StartDate: day(1), DueDate: day(2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.GetByIDCalls()) != 0 {
		t.Errorf("GetByID calls: got %d, want 0", len(mock.GetByIDCalls()))
	}
}

func TestUpdate_ClearsDescriptionAndPhase(t *testing.T) {
	t.Parallel()

	mock := &scheduleRepoMock{
		UpdateFunc: func(ctx context.Context, id int64, p domain.ScheduleUpdateParams) (*domain.ScheduleItem, error) {
			return &domain.ScheduleItem{ID: id}, nil
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.Update(context.Background(), 2, UpdateInput{
		Description: ptr("  "),
		Phase:       ptr(domain.Phase("")),
		Assignees:   &[]string{" a ", "a"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := mock.UpdateCalls()[0].P
	if p.Description == nil || *p.Description != "" {
		t.Errorf("description: got %v", p.Description)
	}
	if p.Phase == nil || *p.Phase != "" {
		t.Errorf("phase: got %v", p.Phase)
	}
	if p.Assignees == nil || len(*p.Assignees) != 1 {
		t.Errorf("assignees: got %v", p.Assignees)
	}
}

func TestUpdate_Empty(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &scheduleRepoMock{})
	_, err := svc.Update(context.Background(), 2, UpdateInput{})
	if !fieldErrors(t, err)["input"] {
		t.Errorf("expected input error, got: %v", err)
	}
}

func TestChangeStatus(t *testing.T) {
	t.Parallel()

	mock := &scheduleRepoMock{
		UpdateFunc: func(ctx context.Context, id int64, p domain.ScheduleUpdateParams) (*domain.ScheduleItem, error) {
			return &domain.ScheduleItem{ID: id, Status: *p.Status}, nil
		},
	}
	svc := newTestService(t, mock)

	got, err := svc.ChangeStatus(context.Background(), 4, domain.StatusDone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusDone {
		t.Errorf("status: got %q", got.Status)
	}
	p := mock.UpdateCalls()[0].P
	if p.Title != nil || p.DueDate != nil {
		t.Errorf("only status should be sent: %+v", p)
	}

	if _, err := svc.ChangeStatus(context.Background(), 4, "보류"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	mock := &scheduleRepoMock{
		DeleteFunc: func(ctx context.Context, id int64) error { return domain.ErrNotFound },
	}
	svc := newTestService(t, mock)

	if err := svc.Delete(context.Background(), 3); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Lists and board
// ---------------------------------------------------------------------------

func TestListActive_PassesFlag(t *testing.T) {
	t.Parallel()

	mock := &scheduleRepoMock{
		ListFunc: func(ctx context.Context, activeOnly bool) ([]domain.ScheduleItem, error) { return nil, nil },
	}
	svc := newTestService(t, mock)

	if _, err := svc.ListActive(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := mock.ListCalls()
	if !calls[0].ActiveOnly || calls[1].ActiveOnly {
		t.Errorf("flags: got %v, %v", calls[0].ActiveOnly, calls[1].ActiveOnly)
	}
}

func TestBoard(t *testing.T) {
	t.Parallel()

	mock := &scheduleRepoMock{
		ListFunc: func(ctx context.Context, activeOnly bool) ([]domain.ScheduleItem, error) {
			return []domain.ScheduleItem{
				{ID: 1, Status: domain.StatusInProgress, DueDate: *day(-1)},
				{ID: 2, Status: domain.StatusDone, DueDate: *day(-3)},
			}, nil
		},
	}
	svc := newTestService(t, mock)

	board, err := svc.Board(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board.Active) != 1 || board.Active[0].Color != dashboard.ColorRed {
		t.Errorf("active: got %+v", board.Active)
	}
	if len(board.Completed) != 1 || board.Completed[0].Color != dashboard.ColorGray {
		t.Errorf("completed: got %+v", board.Completed)
	}
	if board.Stats.Nearest == nil || board.Stats.Nearest.Item.ID != 1 {
		t.Errorf("nearest: got %+v", board.Stats.Nearest)
	}
}
