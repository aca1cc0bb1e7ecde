package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	Overview(ctx context.Context, sel dashboard.Selection) (*dashboard.Overview, error)
}

// DashboardHandler serves the dashboard overview.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Overview handles GET /api/dashboard. Each selector accepts "all" to clear it.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	ov, err := h.svc.Overview(r.Context(), sel)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	recent := make([]entryResponse, len(ov.Recent))
	for i := range ov.Recent {
		recent[i] = toEntryResponse(&ov.Recent[i])
	}
	writeJSON(w, http.StatusOK, overviewResponse{
		Selection: selectionResponse{
			Phase:    ov.Selection.Phase,
			Category: ov.Selection.Category,
			LogType:  ov.Selection.LogType,
		},
		Stats:    toStatsResponse(ov.Stats),
		Overall:  toStatsResponse(ov.Overall),
		Recent:   recent,
		Schedule: toScheduleStatsResponse(ov.Schedule, ov.Today),
	})
}

func parseSelection(r *http.Request) (dashboard.Selection, error) {
	q := r.URL.Query()
	var (
		sel  dashboard.Selection
		errs []domain.FieldError
	)

	if v := selector(q.Get("phase")); v != "" {
		sel.Phase = domain.Phase(v)
		if !sel.Phase.IsValid() {
			errs = append(errs, domain.FieldError{Field: "phase", Message: "invalid value"})
		}
	}
	if v := selector(q.Get("category")); v != "" {
		c, ok := domain.ParseCategoryFilter(v)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
		}
		sel.Category = c
	}
	if v := selector(q.Get("log_type")); v != "" {
		sel.LogType = domain.LogType(v)
		if !sel.LogType.IsValid() {
			errs = append(errs, domain.FieldError{Field: "log_type", Message: "invalid value"})
		}
	}

	if len(errs) > 0 {
		return dashboard.Selection{}, domain.NewValidationErrors(errs)
	}
	return sel, nil
}

// selector normalizes a dashboard selector; "all" means no filter.
func selector(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}
