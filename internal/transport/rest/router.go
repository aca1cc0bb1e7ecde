package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/devlog-backend/internal/config"
	"github.com/heartmarshall/devlog-backend/internal/transport/dataloader"
	"github.com/heartmarshall/devlog-backend/internal/transport/middleware"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
)

// Handlers groups every endpoint handler served by the router.
type Handlers struct {
	Health    *HealthHandler
	Entries   *EntryHandler
	Comments  *CommentHandler
	Schedules *ScheduleHandler
	Dashboard *DashboardHandler
	Uploads   *UploadHandler

	// Files serves locally stored images below FilesPrefix. Nil when images
	// live in the hosted bucket.
	Files       http.Handler
	FilesPrefix string
}

// RouterDeps is the shared infrastructure the router wires into middleware.
type RouterDeps struct {
	Logger      *slog.Logger
	Loaders     *dataloader.Sources
	RateLimiter *middleware.RateLimiter
	Registry    *prometheus.Registry
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	TrustProxy  bool
}

// NewRouter builds the HTTP handler tree.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := mux.NewRouter()
	r.StrictSlash(true)

	metrics := middleware.NewMetrics(deps.Registry)
	r.Use(
		mux.MiddlewareFunc(metrics.Middleware()),
		mux.MiddlewareFunc(middleware.Logger(deps.Logger)),
	)

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	if h.Files != nil && h.FilesPrefix != "" {
		prefix := "/" + strings.Trim(h.FilesPrefix, "/") + "/"
		r.PathPrefix(prefix).Handler(http.StripPrefix(prefix, h.Files)).Methods(http.MethodGet, http.MethodHead)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.Use(
		mux.MiddlewareFunc(deps.RateLimiter.LimitWrites(deps.RateLimit.WritesPerMinute)),
		dataloader.Middleware(deps.Loaders),
	)

	api.HandleFunc("/entries", h.Entries.List).Methods(http.MethodGet)
	api.HandleFunc("/entries", h.Entries.Create).Methods(http.MethodPost)
	api.HandleFunc("/timeline", h.Entries.Timeline).Methods(http.MethodGet)
	api.HandleFunc("/meetings", h.Entries.CreateMeeting).Methods(http.MethodPost)
	api.HandleFunc("/entries/{id:[0-9]+}", h.Entries.Get).Methods(http.MethodGet)
	api.HandleFunc("/entries/{id:[0-9]+}", h.Entries.Update).Methods(http.MethodPatch)
	api.HandleFunc("/entries/{id:[0-9]+}", h.Entries.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/entries/{id:[0-9]+}/related", h.Entries.Related).Methods(http.MethodGet)
	api.HandleFunc("/links/search", h.Entries.SearchLinks).Methods(http.MethodGet)
	api.HandleFunc("/links/recent", h.Entries.RecentLinks).Methods(http.MethodGet)

	api.HandleFunc("/entries/{id:[0-9]+}/comments", h.Comments.List).Methods(http.MethodGet)
	api.HandleFunc("/entries/{id:[0-9]+}/comments", h.Comments.Create).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id:[0-9]+}", h.Comments.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/dashboard", h.Dashboard.Overview).Methods(http.MethodGet)

	api.HandleFunc("/schedules", h.Schedules.List).Methods(http.MethodGet)
	api.HandleFunc("/schedules", h.Schedules.Create).Methods(http.MethodPost)
	api.HandleFunc("/schedules/board", h.Schedules.Board).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{id:[0-9]+}", h.Schedules.Get).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{id:[0-9]+}", h.Schedules.Update).Methods(http.MethodPatch)
	api.HandleFunc("/schedules/{id:[0-9]+}", h.Schedules.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/schedules/{id:[0-9]+}/status", h.Schedules.ChangeStatus).Methods(http.MethodPatch)

	api.HandleFunc("/uploads", h.Uploads.Upload).Methods(http.MethodPost)
	api.HandleFunc("/uploads", h.Uploads.Delete).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", usermsg.RouteNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", usermsg.MethodNotAllowed)
	})

	return middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.ClientIP(deps.TrustProxy),
		middleware.CORS(deps.CORS),
	)(r)
}
