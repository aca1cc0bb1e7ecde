package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/devlog"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
	"github.com/heartmarshall/devlog-backend/internal/viewstate"
)

type timelineModel struct {
	svc      entryService
	width    int
	height   int
	pageSize int

	tl     viewstate.Timeline[domain.LogEntry]
	cursor int
	offset int
	seq    int
}

func newTimelineModel(svc entryService, pageSize int) timelineModel {
	return timelineModel{
		svc:      svc,
		pageSize: pageSize,
		tl:       viewstate.NewTimeline[domain.LogEntry](),
	}
}

func (m *timelineModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// request asks for the first page, or the next one when appending.
func (m timelineModel) request(appendPage bool) (timelineModel, tea.Cmd) {
	tl, eff := m.tl.Reduce(viewstate.PageRequested{Append: appendPage})
	m.tl = tl
	if !eff.Load {
		return m, nil
	}

	seq, svc := m.seq, m.svc
	input := devlog.ListPageInput{PageIndex: eff.PageIndex, PageSize: m.pageSize}
	return m, func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		page, err := svc.ListPage(ctx, input)
		return pageMsg{seq: seq, page: page, append: eff.Append, err: err}
	}
}

func (m timelineModel) leave() timelineModel {
	m.seq++
	m.tl.Loading = false
	return m
}

func (m timelineModel) update(msg tea.Msg) (timelineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case pageMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			m.tl, _ = m.tl.Reduce(viewstate.PageFailed{Message: usermsg.For(msg.err, usermsg.OpLoad)})
			return m, nil
		}
		m.tl, _ = m.tl.Reduce(viewstate.PageLoaded[domain.LogEntry]{Page: msg.page, Append: msg.append})
		if !msg.append {
			m.cursor, m.offset = 0, 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.tl.Items)-1 {
				m.cursor++
			} else if m.tl.HasMore {
				return m.request(true)
			}
		case key.Matches(msg, keys.More):
			return m.request(true)
		case key.Matches(msg, keys.Refresh):
			return m.request(false)
		case key.Matches(msg, keys.Enter):
			if m.cursor < len(m.tl.Items) {
				id := m.tl.Items[m.cursor].ID
				return m, func() tea.Msg { return openDetailMsg{id: id} }
			}
		}
		m.offset = scrollOffset(m.cursor, m.offset, m.visibleRows())
	}
	return m, nil
}

func (m timelineModel) visibleRows() int {
	return max(m.height-8, 3)
}

// scrollOffset keeps the cursor inside a window of n rows.
func scrollOffset(cursor, offset, n int) int {
	switch {
	case cursor < offset:
		return cursor
	case cursor >= offset+n:
		return cursor - n + 1
	}
	return offset
}

func (m timelineModel) view() string {
	w := max(m.width-4, 20)

	title := titleStyle.Render(fmt.Sprintf("타임라인  %s", mutedStyle.Render(fmt.Sprintf("%d / %d", len(m.tl.Items), m.tl.TotalCount))))
	rows := []string{title, ""}

	if len(m.tl.Items) == 0 && !m.tl.Loading && m.tl.Error == "" {
		rows = append(rows, mutedStyle.Render("  기록이 없습니다. n을 눌러 새 기록을 작성하세요."))
	}

	end := min(m.offset+m.visibleRows(), len(m.tl.Items))
	for i := m.offset; i < end; i++ {
		rows = append(rows, entryRow(m.tl.Items[i], i == m.cursor, w-4))
	}

	rows = append(rows, "")
	switch {
	case m.tl.Error != "":
		rows = append(rows, errorStyle.Render("  "+m.tl.Error))
	case m.tl.Loading:
		rows = append(rows, mutedStyle.Render("  불러오는 중..."))
	case m.tl.HasMore:
		rows = append(rows, mutedStyle.Render("  m: 더 보기"))
	}
	rows = append(rows, mutedStyle.Render("  enter: 상세  r: 새로고침"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
