package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/attachment"
	"github.com/heartmarshall/devlog-backend/internal/service/comment"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
	"github.com/heartmarshall/devlog-backend/internal/service/devlog"
)

const requestTimeout = 30 * time.Second

type entryService interface {
	ListPage(ctx context.Context, input devlog.ListPageInput) (domain.Page[domain.LogEntry], error)
	GetEntry(ctx context.Context, id int64) (*domain.LogEntry, error)
	RelatedIssues(ctx context.Context, id int64) ([]domain.EntryBrief, error)
	CreateEntry(ctx context.Context, input devlog.CreateEntryInput) (*domain.LogEntry, error)
	CreateMeeting(ctx context.Context, input devlog.CreateMeetingInput) (*domain.LogEntry, error)
}

type commentService interface {
	List(ctx context.Context, entryID int64) ([]domain.Comment, error)
	Create(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type dashboardService interface {
	Overview(ctx context.Context, sel dashboard.Selection) (*dashboard.Overview, error)
	Schedule(ctx context.Context, today time.Time) (*dashboard.Board, error)
}

type imageService interface {
	UploadImages(ctx context.Context, files []attachment.File) ([]string, error)
}

// Services are the application services the terminal UI drives.
type Services struct {
	Entries   entryService
	Comments  commentService
	Dashboard dashboardService
	Images    imageService
}

// viewState represents the currently active tab.
type viewState int

const (
	viewDashboard viewState = iota
	viewTimeline
	viewSchedule
)

var viewNames = []string{"대시보드", "타임라인", "일정"}

// --- Messages ---
//
// Every reply carries the seq of the request that produced it. A view bumps
// its seq when the user leaves it, so late replies are dropped.

type overviewMsg struct {
	seq      int
	overview *dashboard.Overview
	err      error
}

type pageMsg struct {
	seq    int
	page   domain.Page[domain.LogEntry]
	append bool
	err    error
}

type boardMsg struct {
	seq   int
	board *dashboard.Board
	err   error
}

type detailMsg struct {
	seq      int
	entry    *domain.LogEntry
	related  []domain.EntryBrief
	comments []domain.Comment
	err      error
}

type commentsMsg struct {
	seq      int
	comments []domain.Comment
	err      error
}

type commentSavedMsg struct {
	seq int
	err error
}

type openDetailMsg struct {
	id int64
}

type submitResultMsg struct {
	seq   int
	entry *domain.LogEntry
	err   error
}

type imagesUploadedMsg struct {
	seq   int
	paths string
	n     int
	urls  []string
	err   error
}

type formClosedMsg struct {
	saved bool
}

type statusMsg struct {
	text    string
	isError bool
}

// --- Helpers ---

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// cycle steps through all and back to the zero value ("all").
func cycle[T comparable](cur T, all []T) T {
	var zero T
	if cur == zero {
		return all[0]
	}
	for i, v := range all {
		if v == cur && i+1 < len(all) {
			return all[i+1]
		}
	}
	return zero
}

func labelOr[T ~string](v T, fallback string) string {
	if v == "" {
		return fallback
	}
	return string(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// renderMarkdown renders entry content for the terminal. It falls back to the
// raw text when the renderer fails.
func renderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
