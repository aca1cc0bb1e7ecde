package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/devlog-backend/internal/config"
	"github.com/heartmarshall/devlog-backend/internal/service/attachment"
	"github.com/heartmarshall/devlog-backend/internal/service/comment"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
	"github.com/heartmarshall/devlog-backend/internal/service/devlog"
	"github.com/heartmarshall/devlog-backend/internal/service/schedule"
	"github.com/heartmarshall/devlog-backend/internal/transport/dataloader"
	"github.com/heartmarshall/devlog-backend/internal/transport/middleware"
	"github.com/heartmarshall/devlog-backend/internal/transport/rest"
	"github.com/heartmarshall/devlog-backend/internal/tui"
)

// Services are the application services built over the stores.
type Services struct {
	Entries     *devlog.Service
	Comments    *comment.Service
	Schedules   *schedule.Service
	Dashboard   *dashboard.Service
	Attachments *attachment.Service
}

// NewServices builds every service on top of s.
func NewServices(s *Stores, cfg *config.Config, logger *slog.Logger) *Services {
	return &Services{
		Entries:     devlog.NewService(logger, s.Entries, cfg.Timeline),
		Comments:    comment.NewService(logger, s.Comments),
		Schedules:   schedule.NewService(logger, s.Schedules),
		Dashboard:   dashboard.NewService(logger, s.Entries, s.Schedules),
		Attachments: attachment.NewService(logger, s.Images, cfg.Storage.MaxUploadBytes),
	}
}

// Serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)
	logger.Info("starting server",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	stores, err := OpenStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer stores.Close()

	svc := NewServices(stores, cfg, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewHandler(stores, svc, cfg, logger, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler assembles the REST router with its own metrics registry.
func NewHandler(s *Stores, svc *Services, cfg *config.Config, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	health := rest.NewHealthHandler(pinger(s.Records), nil, BuildVersion())
	if s.ImagesPing != nil {
		health = rest.NewHealthHandler(pinger(s.Records), pinger(s.ImagesPing), BuildVersion())
	}

	h := rest.Handlers{
		Health:    health,
		Entries:   rest.NewEntryHandler(svc.Entries, logger),
		Comments:  rest.NewCommentHandler(svc.Comments, logger),
		Schedules: rest.NewScheduleHandler(svc.Schedules, logger),
		Dashboard: rest.NewDashboardHandler(svc.Dashboard, logger),
		Uploads:   rest.NewUploadHandler(svc.Attachments, logger, cfg.Storage.MaxUploadBytes),
	}
	if s.Files != nil {
		h.Files = s.Files
		h.FilesPrefix = filesPrefix(cfg.Storage.PublicBaseURL)
	}

	return rest.NewRouter(h, rest.RouterDeps{
		Logger:      logger,
		Loaders:     &dataloader.Sources{Comments: svc.Comments, Briefs: svc.Entries},
		RateLimiter: limiter,
		Registry:    reg,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		TrustProxy:  cfg.Server.TrustProxy,
	})
}

// RunTUI opens the stores and runs the terminal UI. Logs go to cfg.Log.File.
func RunTUI(ctx context.Context, cfg *config.Config) error {
	logger, closer, err := NewFileLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	stores, err := OpenStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer stores.Close()

	svc := NewServices(stores, cfg, logger)
	return tui.Run(ctx, tui.Services{
		Entries:   svc.Entries,
		Comments:  svc.Comments,
		Dashboard: svc.Dashboard,
		Images:    svc.Attachments,
	}, cfg.Timeline.PageSize)
}

type pinger func(ctx context.Context) error

func (p pinger) Ping(ctx context.Context) error { return p(ctx) }

// filesPrefix is the path component of the public base URL.
func filesPrefix(publicBaseURL string) string {
	u, err := url.Parse(publicBaseURL)
	if err != nil || u.Path == "" {
		return "/files"
	}
	return u.Path
}
