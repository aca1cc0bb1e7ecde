package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/comment"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
)

type detailModel struct {
	entries  entryService
	comments commentService
	width    int
	height   int

	id       int64
	entry    *domain.LogEntry
	related  []domain.EntryBrief
	thread   []domain.Comment
	cursor   int
	loading  bool
	err      string
	seq      int
	viewport viewport.Model

	form      *huh.Form
	formMode  detailForm
	author    *string
	content   *string
	confirmed *bool
}

type detailForm int

const (
	detailNoForm detailForm = iota
	detailCommentForm
	detailConfirmDelete
)

func newDetailModel(entries entryService, comments commentService) detailModel {
	author, content, confirmed := "", "", false
	return detailModel{
		entries:   entries,
		comments:  comments,
		viewport:  viewport.New(80, 20),
		author:    &author,
		content:   &content,
		confirmed: &confirmed,
	}
}

func (d *detailModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.viewport.Width = max(w-6, 20)
	d.viewport.Height = max(h-4, 5)
	d.refreshViewport()
}

func (d detailModel) formActive() bool {
	return d.formMode != detailNoForm && d.form != nil
}

// open loads the entry, its related issues and its comments in one round.
func (d detailModel) open(id int64) (detailModel, tea.Cmd) {
	d.seq++
	d.id = id
	d.entry = nil
	d.related = nil
	d.thread = nil
	d.cursor = 0
	d.loading = true
	d.err = ""
	d.formMode = detailNoForm
	d.form = nil
	d.viewport.GotoTop()

	seq, entries, comments := d.seq, d.entries, d.comments
	return d, func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()

		msg := detailMsg{seq: seq}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.entry, err = entries.GetEntry(gctx, id)
			return err
		})
		g.Go(func() error {
			var err error
			msg.related, err = entries.RelatedIssues(gctx, id)
			return err
		})
		g.Go(func() error {
			var err error
			msg.comments, err = comments.List(gctx, id)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (d detailModel) leave() detailModel {
	d.seq++
	d.loading = false
	d.form = nil
	d.formMode = detailNoForm
	return d
}

func (d detailModel) reloadComments() tea.Cmd {
	seq, id, svc := d.seq, d.id, d.comments
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		list, err := svc.List(ctx, id)
		return commentsMsg{seq: seq, comments: list, err: err}
	}
}

func (d detailModel) update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case detailMsg:
		if msg.seq != d.seq {
			return d, nil
		}
		d.loading = false
		if msg.err != nil {
			d.err = usermsg.For(msg.err, usermsg.OpLoad)
			return d, nil
		}
		d.entry, d.related, d.thread = msg.entry, msg.related, msg.comments
		d.refreshViewport()
		return d, nil

	case commentsMsg:
		if msg.seq != d.seq {
			return d, nil
		}
		if msg.err != nil {
			d.err = usermsg.For(msg.err, usermsg.OpLoad)
			return d, nil
		}
		d.thread = msg.comments
		if d.cursor >= len(d.thread) {
			d.cursor = max(0, len(d.thread)-1)
		}
		d.refreshViewport()
		return d, nil

	case commentSavedMsg:
		if msg.seq != d.seq {
			return d, nil
		}
		if msg.err != nil {
			return d, statusCmd(usermsg.For(msg.err, usermsg.OpSave), true)
		}
		return d, tea.Batch(d.reloadComments(), statusCmd(usermsg.Saved, false))
	}

	if d.formActive() {
		return d.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Comment):
			return d.showCommentForm()
		case key.Matches(msg, keys.Delete):
			if len(d.thread) > 0 {
				return d.showConfirmDelete()
			}
			return d, nil
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
				d.refreshViewport()
			}
			return d, nil
		case key.Matches(msg, keys.Down):
			if d.cursor < len(d.thread)-1 {
				d.cursor++
				d.refreshViewport()
			}
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

func (d detailModel) showCommentForm() (detailModel, tea.Cmd) {
	*d.content = ""
	d.formMode = detailCommentForm
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("작성자").Value(d.author).Validate(required(usermsg.AuthorRequired)),
			huh.NewText().Title("댓글").Value(d.content).Validate(required(usermsg.ContentRequired)),
		),
	).WithShowHelp(true).WithShowErrors(true)
	return d, d.form.Init()
}

func (d detailModel) showConfirmDelete() (detailModel, tea.Cmd) {
	*d.confirmed = false
	d.formMode = detailConfirmDelete
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title(usermsg.ConfirmDeleteReply).Affirmative("삭제").Negative("취소").Value(d.confirmed),
		),
	)
	return d, d.form.Init()
}

func (d detailModel) updateForm(msg tea.Msg) (detailModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Back) {
		d.form = nil
		d.formMode = detailNoForm
		return d, nil
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	switch d.form.State {
	case huh.StateAborted:
		d.form = nil
		d.formMode = detailNoForm
		return d, nil
	case huh.StateCompleted:
		mode := d.formMode
		d.form = nil
		d.formMode = detailNoForm
		switch mode {
		case detailCommentForm:
			return d, d.saveComment(*d.author, *d.content)
		case detailConfirmDelete:
			if *d.confirmed && d.cursor < len(d.thread) {
				return d, d.deleteComment(d.thread[d.cursor].ID)
			}
		}
		return d, nil
	}
	return d, cmd
}

func (d detailModel) saveComment(author, content string) tea.Cmd {
	seq, id, svc := d.seq, d.id, d.comments
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		_, err := svc.Create(ctx, comment.CreateInput{EntryID: id, Author: author, Content: content})
		return commentSavedMsg{seq: seq, err: err}
	}
}

func (d detailModel) deleteComment(commentID int64) tea.Cmd {
	seq, svc := d.seq, d.comments
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		return commentSavedMsg{seq: seq, err: svc.Delete(ctx, commentID)}
	}
}

func (d *detailModel) refreshViewport() {
	if d.entry == nil {
		d.viewport.SetContent("")
		return
	}
	d.viewport.SetContent(d.body())
}

func (d detailModel) body() string {
	e := d.entry
	rows := []string{
		titleStyle.Render(e.Title),
		mutedStyle.Render(fmt.Sprintf("#%d  %s  %s  %s · %s (%s)  %s",
			e.ID, domain.FormatDate(e.EventDate), e.Author, e.Phase, e.Domain, e.Category(), e.LogType)),
		"",
	}

	if meta := metadataLines(e.Metadata); len(meta) > 0 {
		rows = append(rows, titleStyle.Render("상세 정보"))
		rows = append(rows, meta...)
		rows = append(rows, "")
	}

	if e.Content != nil {
		rows = append(rows, renderMarkdown(*e.Content, d.viewport.Width), "")
	}

	if len(e.ImageURLs) > 0 {
		rows = append(rows, titleStyle.Render("이미지"))
		for _, u := range e.ImageURLs {
			rows = append(rows, "  "+u)
		}
		rows = append(rows, "")
	}
	if len(e.RelatedLinks) > 0 {
		rows = append(rows, titleStyle.Render("링크"))
		for _, u := range e.RelatedLinks {
			rows = append(rows, "  "+u)
		}
		rows = append(rows, "")
	}

	rows = append(rows, titleStyle.Render(fmt.Sprintf("관련 이슈 (%d)", len(d.related))))
	for _, b := range d.related {
		rows = append(rows, fmt.Sprintf("  #%d %s %s", b.ID, logTypeStyle(b.LogType).Render(string(b.LogType)), b.Title))
	}
	rows = append(rows, "", titleStyle.Render(fmt.Sprintf("댓글 (%d)", len(d.thread))))
	for i, c := range d.thread {
		cursor, style := "  ", normalItemStyle
		if i == d.cursor {
			cursor, style = "> ", selectedItemStyle
		}
		rows = append(rows, cursor+style.Render(c.Author)+" "+mutedStyle.Render(c.CreatedAt.Format("2006-01-02 15:04")))
		rows = append(rows, "    "+c.Content)
	}
	return strings.Join(rows, "\n")
}

func metadataLines(m domain.Metadata) []string {
	var out []string
	add := func(label, value string) {
		if value != "" {
			out = append(out, fmt.Sprintf("  %s: %s", mutedStyle.Render(label), value))
		}
	}
	num := func(v *float64) string {
		if v == nil {
			return ""
		}
		return fmt.Sprintf("%g", *v)
	}

	if mm := m.Meeting; mm != nil {
		add("참석자", strings.Join(mm.Attendees, ", "))
		for _, item := range mm.ActionItems {
			add("액션 아이템", item)
		}
		add("다음 회의", mm.NextMeetingDate)
	}
	if ms := m.Measurement; ms != nil {
		add("디옵터 오차", num(ms.DiopterError))
		add("측정값", num(ms.MeasuredValue))
		add("반복성", num(ms.Repeatability))
		add("모델아이", ms.ModelEye)
		add("에러 코드", ms.ErrorCode)
		add("환경", ms.EnvironmentCondition)
		add("SW 버전", ms.SoftwareVersion)
		add("FW 버전", ms.FirmwareVersion)
		if ms.TestResults != nil {
			result := "FAIL"
			if ms.TestResults.Passed {
				result = "PASS"
			}
			add("테스트 결과", strings.TrimSpace(result+" "+ms.TestResults.Details))
		}
	}
	return out
}

func (d detailModel) view() string {
	w := max(d.width-4, 20)

	switch {
	case d.err != "":
		return panelStyle.Width(w).Render(errorStyle.Render(d.err) + "\n" + mutedStyle.Render("esc: 뒤로"))
	case d.entry == nil:
		return panelStyle.Width(w).Render(mutedStyle.Render("불러오는 중..."))
	case d.formActive():
		title := titleStyle.Render("댓글 작성")
		if d.formMode == detailConfirmDelete {
			title = titleStyle.Render("댓글 삭제")
		}
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", d.form.View()))
	}

	footer := mutedStyle.Render("  c: 댓글  d: 댓글 삭제  ↑/↓: 댓글 선택  esc: 뒤로")
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, d.viewport.View(), footer))
}

func required(message string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	}
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}
