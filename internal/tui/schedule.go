package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
)

type scheduleModel struct {
	svc    dashboardService
	width  int
	height int

	board   *dashboard.Board
	loading bool
	err     string
	seq     int
}

func newScheduleModel(svc dashboardService) scheduleModel {
	return scheduleModel{svc: svc}
}

func (s *scheduleModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s scheduleModel) load() (scheduleModel, tea.Cmd) {
	s.seq++
	s.loading = true
	s.err = ""

	seq, svc := s.seq, s.svc
	return s, func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		board, err := svc.Schedule(ctx, time.Time{})
		return boardMsg{seq: seq, board: board, err: err}
	}
}

func (s scheduleModel) leave() scheduleModel {
	s.seq++
	s.loading = false
	return s
}

func (s scheduleModel) update(msg tea.Msg) (scheduleModel, tea.Cmd) {
	switch msg := msg.(type) {
	case boardMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.err = usermsg.For(msg.err, usermsg.OpLoadSchedules)
			return s, nil
		}
		s.board = msg.board
	case tea.KeyMsg:
		if key.Matches(msg, keys.Refresh) {
			return s.load()
		}
	}
	return s, nil
}

func (s scheduleModel) view() string {
	w := max(s.width-4, 30)

	if s.err != "" {
		return panelStyle.Width(w).Render(errorStyle.Render(s.err) + "\n" + mutedStyle.Render("r: 다시 시도"))
	}
	if s.board == nil {
		return panelStyle.Width(w).Render(mutedStyle.Render("불러오는 중..."))
	}

	st := s.board.Stats
	header := fmt.Sprintf("%s  %s  전체 %d  진행중 %d  지연 %d  완료 %d",
		titleStyle.Render("일정"),
		mutedStyle.Render(domain.FormatDate(s.board.Today)),
		st.Total, st.InProgress, st.Delayed, st.Completed)
	if st.Nearest != nil {
		c := dashboard.DDayColor(st.Nearest.DDay)
		header += "  가장 가까운 마감 " + ddayStyle(c).Render(dashboard.DDayLabel(st.Nearest.DDay)) + " " + st.Nearest.Item.Title
	}

	colWidth := max((w-6)/3, 20)
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		boardColumn("진행중 / 지연", s.board.Active, colWidth),
		boardColumn("예정", s.board.Upcoming, colWidth),
		boardColumn("완료", s.board.Completed, colWidth),
	)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, header, "", columns))
}

func boardColumn(title string, items []dashboard.BoardItem, width int) string {
	rows := []string{titleStyle.Render(fmt.Sprintf("%s (%d)", title, len(items))), ""}
	if len(items) == 0 {
		rows = append(rows, mutedStyle.Render("없음"))
	}
	for _, it := range items {
		badge := ddayStyle(it.Color).Render(it.Label)
		rows = append(rows, badge+" "+truncate(it.Item.Title, width-lipgloss.Width(badge)-4))

		meta := fmt.Sprintf("   %s ~ %s  %s", domain.FormatDate(it.Item.StartDate), domain.FormatDate(it.Item.DueDate), it.Item.Priority)
		if len(it.Item.Assignees) > 0 {
			meta += "  " + strings.Join(it.Item.Assignees, ", ")
		}
		rows = append(rows, mutedStyle.Render(truncate(meta, width-2)))
	}
	return panelStyle.Width(width).Render(strings.Join(rows, "\n"))
}
