package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/devlog"
	"github.com/heartmarshall/devlog-backend/internal/transport/dataloader"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
)

// entryService defines the minimal interface needed by EntryHandler.
type entryService interface {
	ListEntries(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error)
	ListPage(ctx context.Context, input devlog.ListPageInput) (domain.Page[domain.LogEntry], error)
	GetEntry(ctx context.Context, id int64) (*domain.LogEntry, error)
	CreateEntry(ctx context.Context, input devlog.CreateEntryInput) (*domain.LogEntry, error)
	CreateMeeting(ctx context.Context, input devlog.CreateMeetingInput) (*domain.LogEntry, error)
	UpdateEntry(ctx context.Context, id int64, input devlog.UpdateEntryInput) (*domain.LogEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
	RelatedIssues(ctx context.Context, id int64) ([]domain.EntryBrief, error)
	SearchLinkable(ctx context.Context, term string, excludeID int64) ([]domain.EntryBrief, error)
	RecentLinkable(ctx context.Context, excludeID int64, limit int) ([]domain.EntryBrief, error)
}

// EntryHandler serves the log entry endpoints.
type EntryHandler struct {
	svc entryService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

type createEntryRequest struct {
	EventDate    *string         `json:"event_date"`
	AuthorName   string          `json:"author_name"`
	DevPhase     domain.Phase    `json:"dev_phase"`
	Domain       domain.Domain   `json:"domain"`
	LogType      domain.LogType  `json:"log_type"`
	Title        string          `json:"title"`
	Content      *string         `json:"content"`
	MetaData     json.RawMessage `json:"meta_data"`
	ImageURLs    []string        `json:"image_urls"`
	RelatedLinks []string        `json:"related_links"`
}

type createMeetingRequest struct {
	EventDate       *string  `json:"event_date"`
	AuthorName      string   `json:"author_name"`
	DevPhase        string   `json:"dev_phase"`
	Title           string   `json:"title"`
	Content         *string  `json:"content"`
	Attendees       []string `json:"attendees"`
	ActionItems     []string `json:"action_items"`
	NextMeetingDate *string  `json:"next_meeting_date"`
	RelatedIssues   []int64  `json:"related_issues"`
}

type updateEntryRequest struct {
	EventDate    *string         `json:"event_date"`
	AuthorName   *string         `json:"author_name"`
	DevPhase     *domain.Phase   `json:"dev_phase"`
	Domain       *domain.Domain  `json:"domain"`
	LogType      *domain.LogType `json:"log_type"`
	Title        *string         `json:"title"`
	Content      *string         `json:"content"`
	MetaData     json.RawMessage `json:"meta_data"`
	ImageURLs    *[]string       `json:"image_urls"`
	RelatedLinks *[]string       `json:"related_links"`
}

// List handles GET /api/entries.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseEntryFilter(r.URL.Query())
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), f)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	items, err := h.enrich(r, entries)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Timeline handles GET /api/timeline.
func (h *EntryHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := parseEntryFilter(q)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}
	pageIndex, err := queryInt(q, "page", 0)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}
	size, err := queryInt(q, "size", 0)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	page, err := h.svc.ListPage(r.Context(), devlog.ListPageInput{
		Filter:    f,
		PageIndex: pageIndex,
		PageSize:  size,
	})
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	items, err := h.enrich(r, page.Items)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		HasMore:    page.HasMore,
		Page:       pageIndex,
	})
}

// Get handles GET /api/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	items, err := h.enrich(r, []domain.LogEntry{*entry})
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}
	writeJSON(w, http.StatusOK, items[0])
}

// Create handles POST /api/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	eventDate, err := parseDateField("event_date", req.EventDate)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	input := devlog.CreateEntryInput{
		EventDate:    eventDate,
		Author:       req.AuthorName,
		Phase:        req.DevPhase,
		Domain:       req.Domain,
		LogType:      req.LogType,
		Title:        req.Title,
		Content:      req.Content,
		ImageURLs:    req.ImageURLs,
		RelatedLinks: req.RelatedLinks,
	}
	if len(req.MetaData) > 0 {
		meta, err := domain.DecodeMetadata(req.LogType, req.MetaData)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("meta_data", "must be a JSON object"), usermsg.OpSave)
			return
		}
		input.Metadata = &meta
	}

	entry, err := h.svc.CreateEntry(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// CreateMeeting handles POST /api/meetings.
func (h *EntryHandler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var req createMeetingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	eventDate, err := parseDateField("event_date", req.EventDate)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}
	next, err := parseDateField("next_meeting_date", req.NextMeetingDate)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	entry, err := h.svc.CreateMeeting(r.Context(), devlog.CreateMeetingInput{
		EventDate:       eventDate,
		Author:          req.AuthorName,
		Phase:           domain.Phase(req.DevPhase),
		Title:           req.Title,
		Content:         req.Content,
		Attendees:       req.Attendees,
		ActionItems:     req.ActionItems,
		NextMeetingDate: next,
		RelatedIssues:   req.RelatedIssues,
	})
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Update handles PATCH /api/entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	var req updateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	eventDate, err := parseDateField("event_date", req.EventDate)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	input := devlog.UpdateEntryInput{
		EventDate:    eventDate,
		Author:       req.AuthorName,
		Phase:        req.DevPhase,
		Domain:       req.Domain,
		LogType:      req.LogType,
		Title:        req.Title,
		Content:      req.Content,
		ImageURLs:    req.ImageURLs,
		RelatedLinks: req.RelatedLinks,
	}

	if len(req.MetaData) > 0 {
		meta, err := h.decodePatchedMetadata(r.Context(), id, req.LogType, req.MetaData)
		if err != nil {
			respondError(w, r, h.log, err, usermsg.OpSave)
			return
		}
		input.Metadata = &meta
	}

	entry, err := h.svc.UpdateEntry(r.Context(), id, input)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// decodePatchedMetadata decodes meta_data against the log type the entry
// will have after the update.
func (h *EntryHandler) decodePatchedMetadata(ctx context.Context, id int64, next *domain.LogType, raw json.RawMessage) (domain.Metadata, error) {
	var t domain.LogType
	if next != nil {
		t = *next
	} else {
		current, err := h.svc.GetEntry(ctx, id)
		if err != nil {
			return domain.Metadata{}, err
		}
		t = current.LogType
	}

	meta, err := domain.DecodeMetadata(t, raw)
	if err != nil {
		return domain.Metadata{}, domain.NewValidationError("meta_data", "must be a JSON object")
	}
	return meta, nil
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpDelete)
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, usermsg.OpDelete)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Related handles GET /api/entries/{id}/related.
func (h *EntryHandler) Related(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	briefs, err := h.svc.RelatedIssues(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}
	writeJSON(w, http.StatusOK, toBriefResponses(briefs))
}

// SearchLinks handles GET /api/links/search?q=&exclude=.
func (h *EntryHandler) SearchLinks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	exclude, err := queryInt64(q, "exclude")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	briefs, err := h.svc.SearchLinkable(r.Context(), q.Get("q"), exclude)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}
	writeJSON(w, http.StatusOK, toBriefResponses(briefs))
}

// RecentLinks handles GET /api/links/recent?exclude=&limit=.
func (h *EntryHandler) RecentLinks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	exclude, err := queryInt64(q, "exclude")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}
	limit, err := queryInt(q, "limit", 0)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	briefs, err := h.svc.RecentLinkable(r.Context(), exclude, limit)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}
	writeJSON(w, http.StatusOK, toBriefResponses(briefs))
}

// enrich converts entries to responses with comment counts and, when
// ?expand=related is set, the briefs of their related issues. Both lookups
// go through the request's loaders so a page costs one query per kind.
func (h *EntryHandler) enrich(r *http.Request, entries []domain.LogEntry) ([]entryResponse, error) {
	ctx := r.Context()
	loaders := dataloader.FromContext(ctx)

	ids := make([]int64, len(entries))
	for i := range entries {
		ids[i] = entries[i].ID
	}
	counts, err := loaders.LoadCommentCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	var briefs map[int64]domain.EntryBrief
	if r.URL.Query().Get("expand") == "related" {
		briefs, err = loadRelated(ctx, loaders, entries)
		if err != nil {
			return nil, err
		}
	}

	out := make([]entryResponse, len(entries))
	for i := range entries {
		out[i] = toEntryResponse(&entries[i])
		n := counts[entries[i].ID]
		out[i].CommentCount = &n

		if briefs != nil {
			related := make([]domain.EntryBrief, 0, len(entries[i].Metadata.RelatedIssues))
			for _, rid := range entries[i].Metadata.RelatedIssues {
				if b, ok := briefs[rid]; ok {
					related = append(related, b)
				}
			}
			out[i].Related = toBriefResponses(related)
		}
	}
	return out, nil
}

func loadRelated(ctx context.Context, loaders *dataloader.Loaders, entries []domain.LogEntry) (map[int64]domain.EntryBrief, error) {
	seen := make(map[int64]struct{})
	var ids []int64
	for i := range entries {
		for _, id := range entries[i].Metadata.RelatedIssues {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	briefs, err := loaders.LoadBriefs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]domain.EntryBrief, len(briefs))
	for _, b := range briefs {
		out[b.ID] = b
	}
	return out, nil
}
