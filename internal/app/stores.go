package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/devlog-backend/internal/adapter/nullstore"
	"github.com/heartmarshall/devlog-backend/internal/adapter/objectstore"
	"github.com/heartmarshall/devlog-backend/internal/adapter/postgres"
	pgcomment "github.com/heartmarshall/devlog-backend/internal/adapter/postgres/comment"
	pgentry "github.com/heartmarshall/devlog-backend/internal/adapter/postgres/entry"
	pgschedule "github.com/heartmarshall/devlog-backend/internal/adapter/postgres/schedule"
	"github.com/heartmarshall/devlog-backend/internal/adapter/postgrest"
	"github.com/heartmarshall/devlog-backend/internal/config"
	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// EntryStore persists log entries.
type EntryStore interface {
	List(ctx context.Context, f domain.EntryFilter) ([]domain.LogEntry, error)
	ListPage(ctx context.Context, f domain.EntryFilter, limit, offset int) ([]domain.LogEntry, int, error)
	GetByID(ctx context.Context, id int64) (*domain.LogEntry, error)
	GetBriefs(ctx context.Context, ids []int64) ([]domain.EntryBrief, error)
	SearchBriefs(ctx context.Context, term string, excludeID int64, limit int) ([]domain.EntryBrief, error)
	Create(ctx context.Context, e *domain.LogEntry) (*domain.LogEntry, error)
	Update(ctx context.Context, id int64, p domain.EntryUpdateParams) (*domain.LogEntry, error)
	Delete(ctx context.Context, id int64) error
}

// ScheduleStore persists schedule items.
type ScheduleStore interface {
	List(ctx context.Context, activeOnly bool) ([]domain.ScheduleItem, error)
	GetByID(ctx context.Context, id int64) (*domain.ScheduleItem, error)
	Create(ctx context.Context, s *domain.ScheduleItem) (*domain.ScheduleItem, error)
	Update(ctx context.Context, id int64, p domain.ScheduleUpdateParams) (*domain.ScheduleItem, error)
	Delete(ctx context.Context, id int64) error
}

// CommentStore persists comments.
type CommentStore interface {
	ListByEntry(ctx context.Context, entryID int64) ([]domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
	CountByEntries(ctx context.Context, entryIDs []int64) (map[int64]int, error)
}

// ObjectStore holds uploaded images.
type ObjectStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	PublicURL(path string) string
	Delete(ctx context.Context, path string) error
}

// Stores are the resolved record and object stores.
type Stores struct {
	RecordDriver  string
	StorageDriver string

	Entries   EntryStore
	Schedules ScheduleStore
	Comments  CommentStore
	Images    ObjectStore

	// Records and ImagesPing probe the stores for health checks.
	// ImagesPing is nil when there is nothing to probe.
	Records    func(ctx context.Context) error
	ImagesPing func(ctx context.Context) error
	// Files serves locally stored images. Nil for other drivers.
	Files http.Handler

	closers []func()
}

// Close releases connections held by the stores.
func (s *Stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// OpenStores connects the stores selected by cfg. Missing credentials
// resolve to the unconfigured driver, whose reads are empty and whose
// writes fail with domain.ErrNotConfigured.
func OpenStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Stores, error) {
	s := &Stores{
		RecordDriver:  cfg.RecordDriver(),
		StorageDriver: cfg.StorageDriver(),
	}

	switch s.RecordDriver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open record store: %w", err)
		}
		s.closers = append(s.closers, pool.Close)
		s.Entries = pgentry.New(pool)
		s.Schedules = pgschedule.New(pool)
		s.Comments = pgcomment.New(pool)
		s.Records = pool.Ping

	case config.DriverREST:
		client := postgrest.New(cfg.API, logger)
		s.Entries = client.Entries()
		s.Schedules = client.Schedules()
		s.Comments = client.Comments()
		s.Records = client.Ping

	default:
		logger.Warn("record store is not configured, writes will be rejected")
		s.Entries = nullstore.Entries{}
		s.Schedules = nullstore.Schedules{}
		s.Comments = nullstore.Comments{}
		s.Records = nullstore.Ping
	}

	switch s.StorageDriver {
	case config.DriverREST:
		bucket := objectstore.NewHTTPBucket(cfg.API, cfg.Storage.Bucket, logger)
		s.Images = bucket
		s.ImagesPing = bucket.Ping
	case config.DriverLocal:
		local, err := objectstore.NewLocalBucket(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL, logger)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("open object store: %w", err)
		}
		s.Images = local
		s.ImagesPing = local.Ping
		s.Files = local.Handler()
	default:
		logger.Warn("image storage is not configured, uploads will be rejected")
		s.Images = nullstore.Bucket{}
	}

	logger.Info("stores opened",
		slog.String("records", s.RecordDriver),
		slog.String("images", s.StorageDriver),
	)
	return s, nil
}
