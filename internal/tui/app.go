package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/devlog-backend/internal/usermsg"
)

// App is the root Bubble Tea model.
type App struct {
	svc    Services
	width  int
	height int
	now    func() time.Time

	activeView viewState
	showHelp   bool

	dashboard dashboardModel
	timeline  timelineModel
	schedule  scheduleModel

	detail     detailModel
	showDetail bool
	form       *formModel
	formSeq    int

	initCmd tea.Cmd
	help    help.Model
	spinner spinner.Model
	status  string
	isError bool
}

// NewApp builds the root model. pageSize is the timeline page size.
func NewApp(svc Services, pageSize int) App {
	h := help.New()
	h.ShowAll = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = mutedStyle

	dash, initCmd := newDashboardModel(svc.Dashboard).load()

	return App{
		svc:        svc,
		now:        time.Now,
		activeView: viewDashboard,
		dashboard:  dash,
		initCmd:    initCmd,
		timeline:   newTimelineModel(svc.Entries, pageSize),
		schedule:   newScheduleModel(svc.Dashboard),
		detail:     newDetailModel(svc.Entries, svc.Comments),
		help:       h,
		spinner:    sp,
	}
}

// Run starts the terminal UI and blocks until the user quits or ctx ends.
func Run(ctx context.Context, svc Services, pageSize int) error {
	p := tea.NewProgram(NewApp(svc, pageSize), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.initCmd, a.spinner.Tick)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.timeline.setSize(a.width, contentHeight)
		a.schedule.setSize(a.width, contentHeight)
		a.detail.setSize(a.width, contentHeight)
		if a.form != nil {
			a.form.setSize(a.width)
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case statusMsg:
		a.status, a.isError = msg.text, msg.isError
		return a, nil

	case openDetailMsg:
		a.showDetail = true
		var cmd tea.Cmd
		a.detail, cmd = a.detail.open(msg.id)
		return a, cmd

	case detailMsg, commentsMsg, commentSavedMsg:
		var cmd tea.Cmd
		a.detail, cmd = a.detail.update(msg)
		return a, cmd

	case overviewMsg:
		var cmd tea.Cmd
		a.dashboard, cmd = a.dashboard.update(msg)
		return a, cmd

	case pageMsg:
		var cmd tea.Cmd
		a.timeline, cmd = a.timeline.update(msg)
		return a, cmd

	case boardMsg:
		var cmd tea.Cmd
		a.schedule, cmd = a.schedule.update(msg)
		return a, cmd

	case submitResultMsg, imagesUploadedMsg:
		if a.form == nil {
			return a, nil
		}
		f, cmd := a.form.update(msg)
		a.form = &f
		return a, cmd

	case formClosedMsg:
		a.form = nil
		a.formSeq++
		if msg.saved {
			a.status, a.isError = usermsg.Saved, false
			return a, a.refreshCurrentView()
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			f, cmd := a.form.update(msg)
			a.form = &f
			return a, cmd
		}
		if a.showDetail {
			return a.updateDetail(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.NewLog):
			return a.openForm(quickLogForm)
		case key.Matches(msg, keys.NewMeeting):
			return a.openForm(meetingForm)
		case key.Matches(msg, keys.Tab1):
			return a.switchTo(viewDashboard)
		case key.Matches(msg, keys.Tab2):
			return a.switchTo(viewTimeline)
		case key.Matches(msg, keys.Tab3):
			return a.switchTo(viewSchedule)
		case key.Matches(msg, keys.Tab):
			return a.switchTo((a.activeView + 1) % viewState(len(viewNames)))
		}
	}

	if a.form != nil {
		f, cmd := a.form.update(msg)
		a.form = &f
		return a, cmd
	}
	if a.showDetail {
		var cmd tea.Cmd
		a.detail, cmd = a.detail.update(msg)
		return a, cmd
	}
	return a.updateActiveView(msg)
}

func (a App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !a.detail.formActive() && key.Matches(msg, keys.Back) {
		a.showDetail = false
		a.detail = a.detail.leave()
		return a, nil
	}
	var cmd tea.Cmd
	a.detail, cmd = a.detail.update(msg)
	return a, cmd
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewTimeline:
		a.timeline, cmd = a.timeline.update(msg)
	case viewSchedule:
		a.schedule, cmd = a.schedule.update(msg)
	}
	return a, cmd
}

// switchTo leaves the current view, dropping its pending replies, and loads the next one.
func (a App) switchTo(v viewState) (tea.Model, tea.Cmd) {
	switch a.activeView {
	case viewDashboard:
		a.dashboard = a.dashboard.leave()
	case viewTimeline:
		a.timeline = a.timeline.leave()
	case viewSchedule:
		a.schedule = a.schedule.leave()
	}
	a.activeView = v
	return a, a.refreshCurrentView()
}

func (a *App) refreshCurrentView() tea.Cmd {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.load()
	case viewTimeline:
		a.timeline, cmd = a.timeline.request(false)
	case viewSchedule:
		a.schedule, cmd = a.schedule.load()
	}
	return cmd
}

func (a App) openForm(kind formKind) (tea.Model, tea.Cmd) {
	a.formSeq++
	f := newFormModel(a.svc.Entries, a.svc.Images, kind, a.now(), a.formSeq)
	f.setSize(a.width)
	a.form = &f
	a.status = ""
	return a, f.init()
}

func (a App) loading() bool {
	if a.showDetail {
		return a.detail.loading
	}
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.loading
	case viewTimeline:
		return a.timeline.tl.Loading
	case viewSchedule:
		return a.schedule.loading
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch {
	case a.form != nil:
		content = a.form.view()
	case a.showDetail:
		content = a.detail.view()
	default:
		switch a.activeView {
		case viewDashboard:
			content = a.dashboard.view()
		case viewTimeline:
			content = a.timeline.view()
		case viewSchedule:
			content = a.schedule.view()
		}
	}

	contentHeight := max(a.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("devlog")
	if a.loading() {
		title += " " + a.spinner.View()
	}
	gap := max(a.width-lipgloss.Width(title)-lipgloss.Width(tabRow)-4, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow))
}

func (a App) renderFooter() string {
	left := footerStyle.Render(a.help.View(keys))

	right := ""
	if a.status != "" {
		style := mutedStyle
		if a.isError {
			style = errorStyle
		}
		right = style.Render(" " + a.status)
	}

	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}
