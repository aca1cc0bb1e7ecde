package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/attachment"
	"github.com/heartmarshall/devlog-backend/internal/service/devlog"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
	"github.com/heartmarshall/devlog-backend/internal/viewstate"
)

var errInvalidDate = errors.New(usermsg.InvalidDate)

type formKind int

const (
	quickLogForm formKind = iota
	meetingForm
)

// draft holds the raw field text of the quick log and meeting forms.
type draft struct {
	EventDate     string
	Author        string
	Phase         string
	Domain        string
	LogType       string
	Title         string
	Content       string
	Attendees     string // comma separated
	ActionItems   string // one per line
	NextMeeting   string
	RelatedIssues string // comma separated ids, "#" optional
	Images        string // comma separated local file paths

	// ImageURLs are the uploaded copies of Images.
	ImageURLs []string
}

func newDraft(kind formKind, today time.Time) draft {
	d := draft{
		EventDate: domain.FormatDate(today),
		Phase:     string(domain.PhasePT),
		Domain:    string(domain.DomainSWAlgo),
		LogType:   string(domain.LogTypeBug),
	}
	if kind == meetingForm {
		d.Domain = string(domain.DomainProjectCommon)
		d.LogType = string(domain.LogTypeMeeting)
	}
	return d
}

type formModel struct {
	svc    entryService
	images imageService
	kind   formKind
	width  int
	values *draft
	state  viewstate.Form[draft]
	form   *huh.Form
	seq    int

	// uploaded is the Images text ImageURLs were produced from.
	uploaded string
}

func newFormModel(svc entryService, images imageService, kind formKind, today time.Time, seq int) formModel {
	d := newDraft(kind, today)
	f := formModel{
		svc:    svc,
		images: images,
		kind:   kind,
		values: &d,
		state:  viewstate.NewForm(d),
		seq:    seq,
	}
	f.form = f.build()
	return f
}

func (f formModel) title() string {
	if f.kind == meetingForm {
		return "회의록 작성"
	}
	return "빠른 기록"
}

func (f formModel) build() *huh.Form {
	v := f.values
	fields := []huh.Field{
		huh.NewInput().Title("날짜").Placeholder("YYYY-MM-DD").Value(&v.EventDate).Validate(validDate(false)),
		huh.NewInput().Title("작성자").Value(&v.Author).Validate(required(usermsg.AuthorRequired)),
		huh.NewSelect[string]().Title("단계").Options(stringOptions(domain.Phases())...).Value(&v.Phase),
	}
	if f.kind == quickLogForm {
		fields = append(fields,
			huh.NewSelect[string]().Title("분야").Options(stringOptions(domain.Domains())...).Value(&v.Domain),
			huh.NewSelect[string]().Title("유형").Options(stringOptions(domain.LogTypes())...).Value(&v.LogType),
		)
	}
	fields = append(fields,
		huh.NewInput().Title("제목").Value(&v.Title).Validate(required(usermsg.TitleRequired)),
		huh.NewText().Title("내용").Value(&v.Content),
	)
	if f.kind == quickLogForm && f.images != nil {
		fields = append(fields,
			huh.NewInput().Title("이미지").Placeholder("파일 경로, 쉼표로 구분").Value(&v.Images),
		)
	}
	groups := []*huh.Group{huh.NewGroup(fields...)}

	if f.kind == meetingForm {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().Title("참석자").Placeholder("쉼표로 구분").Value(&v.Attendees),
			huh.NewText().Title("액션 아이템").Placeholder("한 줄에 하나씩").Value(&v.ActionItems),
			huh.NewInput().Title("다음 회의").Placeholder("YYYY-MM-DD").Value(&v.NextMeeting).Validate(validDate(true)),
			huh.NewInput().Title("관련 이슈").Placeholder("#12, 34").Value(&v.RelatedIssues),
		))
	}

	return huh.NewForm(groups...).WithShowHelp(true).WithShowErrors(true).WithWidth(max(f.width-8, 40))
}

func (f formModel) init() tea.Cmd {
	return f.form.Init()
}

func (f *formModel) setSize(w int) {
	f.width = w
	f.form = f.form.WithWidth(max(w-8, 40))
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case imagesUploadedMsg:
		if msg.seq != f.seq {
			return f, nil
		}
		return f.uploadsFinished(msg)

	case submitResultMsg:
		if msg.seq != f.seq {
			return f, nil
		}
		if msg.err != nil {
			f.state, _ = f.state.Reduce(viewstate.SubmitFailed{Message: usermsg.For(msg.err, usermsg.OpSave)})
			// values stay bound to the rebuilt form
			*f.values = f.state.Values
			f.form = f.build()
			return f, f.form.Init()
		}
		var eff viewstate.FormEffect
		f.state, eff = f.state.Reduce(viewstate.SubmitSucceeded{})
		if eff.Kind == viewstate.FormCloseAfter {
			return f, tea.Tick(eff.Delay, func(time.Time) tea.Msg { return formClosedMsg{saved: true} })
		}
		return f, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Back) && !f.state.Busy() {
			return f, func() tea.Msg { return formClosedMsg{} }
		}
	}

	if f.state.Busy() || f.state.Status == viewstate.FormSucceeded {
		return f, nil
	}

	model, cmd := f.form.Update(msg)
	if hf, ok := model.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateAborted:
		return f, func() tea.Msg { return formClosedMsg{} }
	case huh.StateCompleted:
		return f.completed()
	}
	return f, cmd
}

// completed takes the filled-in values. Images are uploaded first and the
// submit goes out once they are stored.
func (f formModel) completed() (formModel, tea.Cmd) {
	f.state, _ = f.state.Reduce(viewstate.Edited[draft]{Values: *f.values})
	upload := f.startUploads()
	if next, submit := f.requestSubmit(); submit != nil {
		return next, submit
	}
	return f, upload
}

// requestSubmit submits the current values unless the form refuses,
// for example while uploads are still pending.
func (f formModel) requestSubmit() (formModel, tea.Cmd) {
	var eff viewstate.FormEffect
	f.state, eff = f.state.Reduce(viewstate.SubmitRequested{})
	if eff.Kind == viewstate.FormSubmit {
		return f, f.submit()
	}
	return f, nil
}

// startUploads begins uploading the image paths that have no URLs yet.
// It returns nil when there is nothing to upload.
func (f *formModel) startUploads() tea.Cmd {
	values := f.state.Values
	paths := splitList(values.Images, ",")
	if len(paths) == 0 {
		values.ImageURLs = nil
		f.state, _ = f.state.Reduce(viewstate.Edited[draft]{Values: values})
		f.uploaded = ""
		return nil
	}
	if values.Images == f.uploaded && len(values.ImageURLs) == len(paths) {
		return nil
	}

	f.state, _ = f.state.Reduce(viewstate.UploadStarted{N: len(paths)})
	return uploadImages(f.images, f.seq, values.Images, paths)
}

func (f formModel) uploadsFinished(msg imagesUploadedMsg) (formModel, tea.Cmd) {
	if msg.err != nil {
		f.state, _ = f.state.Reduce(viewstate.UploadFinished{N: msg.n, Message: usermsg.For(msg.err, usermsg.OpUpload)})
		*f.values = f.state.Values
		f.form = f.build()
		return f, f.form.Init()
	}

	f.state, _ = f.state.Reduce(viewstate.UploadFinished{N: msg.n})
	values := f.state.Values
	values.ImageURLs = msg.urls
	f.state, _ = f.state.Reduce(viewstate.Edited[draft]{Values: values})
	*f.values = values
	f.uploaded = msg.paths
	return f.requestSubmit()
}

func uploadImages(svc imageService, seq int, text string, paths []string) tea.Cmd {
	return func() tea.Msg {
		msg := imagesUploadedMsg{seq: seq, paths: text, n: len(paths)}
		if svc == nil {
			msg.err = domain.ErrNotConfigured
			return msg
		}

		files := make([]attachment.File, len(paths))
		for i, p := range paths {
			data, err := os.ReadFile(p)
			if err != nil {
				msg.err = domain.NewValidationError("files", fmt.Sprintf("cannot read %s", filepath.Base(p)))
				return msg
			}
			files[i] = attachment.File{Name: filepath.Base(p), Data: data}
		}

		ctx, cancel := requestContext()
		defer cancel()
		msg.urls, msg.err = svc.UploadImages(ctx, files)
		return msg
	}
}

func (f formModel) submit() tea.Cmd {
	seq, kind, values, svc := f.seq, f.kind, f.state.Values, f.svc
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()

		var (
			entry *domain.LogEntry
			err   error
		)
		if kind == meetingForm {
			var in devlog.CreateMeetingInput
			if in, err = values.meetingInput(); err == nil {
				entry, err = svc.CreateMeeting(ctx, in)
			}
		} else {
			var in devlog.CreateEntryInput
			if in, err = values.entryInput(); err == nil {
				entry, err = svc.CreateEntry(ctx, in)
			}
		}
		return submitResultMsg{seq: seq, entry: entry, err: err}
	}
}

func (f formModel) view() string {
	w := max(f.width-4, 40)
	rows := []string{titleStyle.Render(f.title()), ""}

	switch f.state.Status {
	case viewstate.FormSubmitting:
		rows = append(rows, mutedStyle.Render("저장 중..."))
	case viewstate.FormIdle, viewstate.FormFailed:
		if f.state.PendingUploads > 0 {
			rows = append(rows, mutedStyle.Render(fmt.Sprintf("이미지 %d개 업로드 중...", f.state.PendingUploads)))
			break
		}
		if f.state.UploadError != "" {
			rows = append(rows, errorStyle.Render(f.state.UploadError), "")
		}
		if f.state.Error != "" {
			rows = append(rows, errorStyle.Render(f.state.Error), "")
		}
		rows = append(rows, f.form.View())
	case viewstate.FormSucceeded:
		rows = append(rows, successStyle.Render(usermsg.Saved))
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (d draft) entryInput() (devlog.CreateEntryInput, error) {
	date, err := optionalDate("event_date", d.EventDate)
	if err != nil {
		return devlog.CreateEntryInput{}, err
	}
	return devlog.CreateEntryInput{
		EventDate: date,
		Author:    strings.TrimSpace(d.Author),
		Phase:     domain.Phase(d.Phase),
		Domain:    domain.Domain(d.Domain),
		LogType:   domain.LogType(d.LogType),
		Title:     strings.TrimSpace(d.Title),
		Content:   optionalText(d.Content),
		ImageURLs: d.ImageURLs,
	}, nil
}

func (d draft) meetingInput() (devlog.CreateMeetingInput, error) {
	date, err := optionalDate("event_date", d.EventDate)
	if err != nil {
		return devlog.CreateMeetingInput{}, err
	}
	next, err := optionalDate("next_meeting_date", d.NextMeeting)
	if err != nil {
		return devlog.CreateMeetingInput{}, err
	}
	related, err := parseIssueIDs(d.RelatedIssues)
	if err != nil {
		return devlog.CreateMeetingInput{}, err
	}
	return devlog.CreateMeetingInput{
		EventDate:       date,
		Author:          strings.TrimSpace(d.Author),
		Phase:           domain.Phase(d.Phase),
		Title:           strings.TrimSpace(d.Title),
		Content:         optionalText(d.Content),
		Attendees:       splitList(d.Attendees, ","),
		ActionItems:     splitList(d.ActionItems, "\n"),
		NextMeetingDate: next,
		RelatedIssues:   related,
	}, nil
}

func optionalDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return nil, domain.NewValidationError(field, "invalid date")
	}
	return &t, nil
}

func optionalText(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseIssueIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range splitList(s, ",") {
		id, err := strconv.ParseInt(strings.TrimPrefix(part, "#"), 10, 64)
		if err != nil || id <= 0 {
			return nil, domain.NewValidationError("related_issues", "invalid issue id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func validDate(optional bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" && optional {
			return nil
		}
		if _, err := domain.ParseDate(s); err != nil {
			return errInvalidDate
		}
		return nil
	}
}

func stringOptions[T ~string](values []T) []huh.Option[string] {
	opts := make([]huh.Option[string], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(string(v), string(v))
	}
	return opts
}
