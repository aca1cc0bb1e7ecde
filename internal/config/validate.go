package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "", DriverPostgres, DriverREST, DriverNone:
	default:
		return fmt.Errorf("store.driver must be one of postgres, rest, none (got %q)", c.Store.Driver)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Timeline.validate(); err != nil {
		return fmt.Errorf("timeline: %w", err)
	}

	if c.API.URL != "" && !strings.HasPrefix(c.API.URL, "http://") && !strings.HasPrefix(c.API.URL, "https://") {
		return fmt.Errorf("api.url must be an http(s) URL (got %q)", c.API.URL)
	}

	if c.RateLimit.WritesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case "", DriverREST, DriverLocal, DriverNone:
	default:
		return fmt.Errorf("driver must be one of rest, local, none (got %q)", s.Driver)
	}
	if s.Driver == DriverLocal && s.LocalDir == "" {
		return fmt.Errorf("local_dir is required for the local driver")
	}
	if s.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	return nil
}

func (t *TimelineConfig) validate() error {
	if t.MaxPageSize <= 0 || t.MaxPageSize > domain.MaxPageSize {
		return fmt.Errorf("max_page_size must be in 1..%d (got %d)", domain.MaxPageSize, t.MaxPageSize)
	}
	if t.PageSize <= 0 || t.PageSize > t.MaxPageSize {
		return fmt.Errorf("page_size must be in 1..%d (got %d)", t.MaxPageSize, t.PageSize)
	}
	return nil
}
