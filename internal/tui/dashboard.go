package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
)

type dashboardModel struct {
	svc    dashboardService
	width  int
	height int

	sel      dashboard.Selection
	overview *dashboard.Overview
	cursor   int
	loading  bool
	err      string
	seq      int
}

func newDashboardModel(svc dashboardService) dashboardModel {
	return dashboardModel{svc: svc}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) load() (dashboardModel, tea.Cmd) {
	d.seq++
	d.loading = true
	d.err = ""

	seq, sel, svc := d.seq, d.sel, d.svc
	return d, func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		ov, err := svc.Overview(ctx, sel)
		return overviewMsg{seq: seq, overview: ov, err: err}
	}
}

// leave drops any request in flight.
func (d dashboardModel) leave() dashboardModel {
	d.seq++
	d.loading = false
	return d
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewMsg:
		if msg.seq != d.seq {
			return d, nil
		}
		d.loading = false
		if msg.err != nil {
			d.err = usermsg.For(msg.err, usermsg.OpLoad)
			return d, nil
		}
		d.overview = msg.overview
		if d.cursor >= len(d.overview.Recent) {
			d.cursor = max(0, len(d.overview.Recent)-1)
		}
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Phase):
			d.sel.Phase = cycle(d.sel.Phase, domain.Phases())
			return d.load()
		case key.Matches(msg, keys.Category):
			d.sel.Category = cycle(d.sel.Category, domain.Categories())
			return d.load()
		case key.Matches(msg, keys.LogType):
			d.sel.LogType = cycle(d.sel.LogType, domain.LogTypes())
			return d.load()
		case key.Matches(msg, keys.ClearFilter):
			d.sel = dashboard.Selection{}
			return d.load()
		case key.Matches(msg, keys.Refresh):
			return d.load()
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.overview != nil && d.cursor < len(d.overview.Recent)-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if d.overview != nil && d.cursor < len(d.overview.Recent) {
				id := d.overview.Recent[d.cursor].ID
				return d, func() tea.Msg { return openDetailMsg{id: id} }
			}
		}
	}
	return d, nil
}

func (d dashboardModel) view() string {
	w := max(d.width-4, 20)

	filters := mutedStyle.Render(fmt.Sprintf("단계: %s  ·  분류: %s  ·  유형: %s",
		labelOr(d.sel.Phase, "전체"),
		labelOr(d.sel.Category, "전체"),
		labelOr(d.sel.LogType, "전체"),
	))

	if d.err != "" {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			filters, "", errorStyle.Render(d.err), mutedStyle.Render("r: 다시 시도")))
	}
	if d.overview == nil {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, filters, "", mutedStyle.Render("불러오는 중...")))
	}

	st := d.overview.Stats
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("전체", st.Total),
		statCard("Alignment", st.Alignment),
		statCard("Bug", st.Bug),
		statCard("Decision", st.Decision),
		statCard("Meeting", st.Meeting),
	)

	phases := make([]string, 0, len(domain.Phases()))
	for _, p := range domain.Phases() {
		phases = append(phases, fmt.Sprintf("%s %d", p, st.ByPhase[p]))
	}
	categories := make([]string, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		categories = append(categories, fmt.Sprintf("%s %d", c, st.ByCategory[c]))
	}

	rows := []string{
		filters,
		"",
		cards,
		titleStyle.Render("단계별") + "  " + strings.Join(phases, "  "),
		titleStyle.Render("분류별") + "  " + strings.Join(categories, "  "),
		d.scheduleLine(),
		"",
		titleStyle.Render("최근 기록"),
	}

	if len(d.overview.Recent) == 0 {
		rows = append(rows, mutedStyle.Render("  기록이 없습니다."))
	}
	for i, e := range d.overview.Recent {
		rows = append(rows, entryRow(e, i == d.cursor, w-4))
	}

	rows = append(rows, "", mutedStyle.Render("  p: 단계  c: 분류  t: 유형  a: 전체  enter: 상세"))
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) scheduleLine() string {
	s := d.overview.Schedule
	line := fmt.Sprintf("%s  진행중 %d  지연 %d  완료 %d / %d",
		titleStyle.Render("일정"), s.InProgress, s.Delayed, s.Completed, s.Total)
	if s.Nearest != nil {
		color := dashboard.DDayColor(s.Nearest.DDay)
		line += "  " + ddayStyle(color).Render(dashboard.DDayLabel(s.Nearest.DDay)) + " " + s.Nearest.Item.Title
	}
	return line
}

func statCard(label string, n int) string {
	return cardStyle.Width(14).Render(fmt.Sprintf("%s\n%s", mutedStyle.Render(label), titleStyle.Render(fmt.Sprint(n))))
}

func entryRow(e domain.LogEntry, selected bool, width int) string {
	cursor := "  "
	style := normalItemStyle
	if selected {
		cursor = "> "
		style = selectedItemStyle
	}
	tag := logTypeStyle(e.LogType).Render(fmt.Sprintf("%-11s", e.LogType))
	meta := mutedStyle.Render(fmt.Sprintf("%s %-3s %-14s", domain.FormatDate(e.EventDate), e.Phase, e.Domain))
	title := truncate(e.Title, max(width-50, 10))
	return fmt.Sprintf("%s%s %s %s %s", cursor, meta, tag, style.Render(title), mutedStyle.Render(e.Author))
}
