package config

import "time"

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverREST     = "rest"
	DriverLocal    = "local"
	DriverNone     = "none"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Database  DatabaseConfig  `yaml:"database"`
	API       APIConfig       `yaml:"api"`
	Storage   StorageConfig   `yaml:"storage"`
	Timeline  TimelineConfig  `yaml:"timeline"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy takes the client IP from X-Forwarded-For.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// StoreConfig selects the record store driver.
// An empty driver picks postgres when a DSN is set, else the hosted API
// when its URL and key are set, else none.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// APIConfig holds the hosted backend's REST endpoint and anonymous key.
type APIConfig struct {
	URL     string        `yaml:"url"     env:"DEVLOG_API_URL"`
	Key     string        `yaml:"key"     env:"DEVLOG_API_KEY"`
	Timeout time.Duration `yaml:"timeout" env:"DEVLOG_API_TIMEOUT" env-default:"30s"`
}

// Configured reports whether both URL and key are present.
func (c APIConfig) Configured() bool {
	return c.URL != "" && c.Key != ""
}

// StorageConfig holds image storage settings.
type StorageConfig struct {
	Driver         string `yaml:"driver"           env:"STORAGE_DRIVER"`
	Bucket         string `yaml:"bucket"           env:"STORAGE_BUCKET"           env-default:"dev-history-images"`
	LocalDir       string `yaml:"local_dir"        env:"STORAGE_LOCAL_DIR"`
	PublicBaseURL  string `yaml:"public_base_url"  env:"STORAGE_PUBLIC_BASE_URL"  env-default:"/files"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// TimelineConfig holds pagination settings.
type TimelineConfig struct {
	PageSize    int `yaml:"page_size"     env:"TIMELINE_PAGE_SIZE"     env-default:"20"`
	MaxPageSize int `yaml:"max_page_size" env:"TIMELINE_MAX_PAGE_SIZE" env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	// File redirects logs away from stderr; the terminal UI needs it.
	File string `yaml:"file" env:"LOG_FILE"`
}

// RateLimitConfig holds per-IP limits for write endpoints.
type RateLimitConfig struct {
	WritesPerMinute int           `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// RecordDriver resolves which record store backs the application.
// Missing credentials resolve to DriverNone.
func (c *Config) RecordDriver() string {
	switch c.Store.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return DriverNone
		}
		return DriverPostgres
	case DriverREST:
		if !c.API.Configured() {
			return DriverNone
		}
		return DriverREST
	case DriverNone:
		return DriverNone
	}

	switch {
	case c.Database.DSN != "":
		return DriverPostgres
	case c.API.Configured():
		return DriverREST
	default:
		return DriverNone
	}
}

// StorageDriver resolves which object store holds uploaded images.
func (c *Config) StorageDriver() string {
	switch c.Storage.Driver {
	case DriverREST:
		if !c.API.Configured() {
			return DriverNone
		}
		return DriverREST
	case DriverLocal:
		return DriverLocal
	case DriverNone:
		return DriverNone
	}

	switch {
	case c.API.Configured():
		return DriverREST
	case c.Storage.LocalDir != "":
		return DriverLocal
	default:
		return DriverNone
	}
}
