package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
	"github.com/heartmarshall/devlog-backend/internal/service/schedule"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
)

// scheduleService defines the minimal interface needed by ScheduleHandler.
type scheduleService interface {
	List(ctx context.Context) ([]domain.ScheduleItem, error)
	ListActive(ctx context.Context) ([]domain.ScheduleItem, error)
	Get(ctx context.Context, id int64) (*domain.ScheduleItem, error)
	Create(ctx context.Context, input schedule.CreateInput) (*domain.ScheduleItem, error)
	Update(ctx context.Context, id int64, input schedule.UpdateInput) (*domain.ScheduleItem, error)
	ChangeStatus(ctx context.Context, id int64, status domain.ScheduleStatus) (*domain.ScheduleItem, error)
	Delete(ctx context.Context, id int64) error
	Board(ctx context.Context, today time.Time) (*dashboard.Board, error)
}

// ScheduleHandler serves the schedule endpoints.
type ScheduleHandler struct {
	svc scheduleService
	log *slog.Logger
	now func() time.Time
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: logger.With("handler", "schedules"), now: time.Now}
}

type createScheduleRequest struct {
	Title       string                `json:"title"`
	Description *string               `json:"description"`
	StartDate   *string               `json:"start_date"`
	DueDate     *string               `json:"due_date"`
	Status      domain.ScheduleStatus `json:"status"`
	Priority    domain.Priority       `json:"priority"`
	DevPhase    *domain.Phase         `json:"dev_phase"`
	Assignees   []string              `json:"assignees"`
}

type updateScheduleRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	StartDate   *string                `json:"start_date"`
	DueDate     *string                `json:"due_date"`
	Status      *domain.ScheduleStatus `json:"status"`
	Priority    *domain.Priority       `json:"priority"`
	DevPhase    *domain.Phase          `json:"dev_phase"`
	Assignees   *[]string              `json:"assignees"`
}

type statusRequest struct {
	Status domain.ScheduleStatus `json:"status"`
}

// List handles GET /api/schedules. ?active=true hides completed items.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	var activeOnly bool
	if v := r.URL.Query().Get("active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("active", "must be a boolean"), usermsg.OpLoadSchedules)
			return
		}
		activeOnly = b
	}

	var (
		items []domain.ScheduleItem
		err   error
	)
	if activeOnly {
		items, err = h.svc.ListActive(r.Context())
	} else {
		items, err = h.svc.List(r.Context())
	}
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoadSchedules)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleResponses(items))
}

// Board handles GET /api/schedules/board?today=YYYY-MM-DD.
func (h *ScheduleHandler) Board(w http.ResponseWriter, r *http.Request) {
	day, err := today(r.URL.Query(), h.now)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoadSchedules)
		return
	}

	board, err := h.svc.Board(r.Context(), day)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoadSchedules)
		return
	}
	writeJSON(w, http.StatusOK, toBoardResponse(board))
}

// Get handles GET /api/schedules/{id}.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoadSchedules)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoadSchedules)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleResponse(item))
}

// Create handles POST /api/schedules.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	start, err := parseDateField("start_date", req.StartDate)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}
	due, err := parseDateField("due_date", req.DueDate)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	item, err := h.svc.Create(r.Context(), schedule.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		DueDate:     due,
		Status:      req.Status,
		Priority:    req.Priority,
		Phase:       req.DevPhase,
		Assignees:   req.Assignees,
	})
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}
	writeJSON(w, http.StatusCreated, toScheduleResponse(item))
}

// Update handles PATCH /api/schedules/{id}.
func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	var req updateScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	start, err := parseDateField("start_date", req.StartDate)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}
	due, err := parseDateField("due_date", req.DueDate)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	item, err := h.svc.Update(r.Context(), id, schedule.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		DueDate:     due,
		Status:      req.Status,
		Priority:    req.Priority,
		Phase:       req.DevPhase,
		Assignees:   req.Assignees,
	})
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleResponse(item))
}

// ChangeStatus handles PATCH /api/schedules/{id}/status.
func (h *ScheduleHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	item, err := h.svc.ChangeStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleResponse(item))
}

// Delete handles DELETE /api/schedules/{id}.
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpDelete)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, usermsg.OpDelete)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
