// Package objectstore holds uploaded images, either in the hosted storage
// API or in a local directory.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/devlog-backend/internal/config"
	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// HTTPBucket stores objects in a bucket of the hosted storage API.
type HTTPBucket struct {
	http    *resty.Client
	baseURL string
	bucket  string
	log     *slog.Logger
}

// NewHTTPBucket creates an HTTPBucket for the given bucket name.
func NewHTTPBucket(cfg config.APIConfig, bucket string, logger *slog.Logger) *HTTPBucket {
	base := strings.TrimRight(cfg.URL, "/")

	c := resty.New().
		SetBaseURL(base+"/storage/v1").
		SetHeader("apikey", cfg.Key).
		SetAuthToken(cfg.Key).
		SetTimeout(cfg.Timeout)

	return &HTTPBucket{
		http:    c,
		baseURL: base,
		bucket:  bucket,
		log:     logger.With("adapter", "objectstore", "bucket", bucket),
	}
}

// Upload stores data under path. An existing object is not overwritten.
func (b *HTTPBucket) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	resp, err := b.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetBody(data).
		Post("/object/" + b.bucket + "/" + escapePath(path))
	if err := b.check(ctx, resp, err, "upload", path); err != nil {
		return "", err
	}

	b.log.InfoContext(ctx, "object uploaded", slog.String("path", path), slog.Int("bytes", len(data)))
	return path, nil
}

// PublicURL returns the anonymous read URL of path.
func (b *HTTPBucket) PublicURL(path string) string {
	return b.baseURL + "/storage/v1/object/public/" + b.bucket + "/" + escapePath(path)
}

// Delete removes the object at path.
func (b *HTTPBucket) Delete(ctx context.Context, path string) error {
	body := struct {
		Prefixes []string `json:"prefixes"`
	}{Prefixes: []string{path}}

	resp, err := b.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Delete("/object/" + b.bucket)
	if err := b.check(ctx, resp, err, "delete", path); err != nil {
		return err
	}

	b.log.InfoContext(ctx, "object deleted", slog.String("path", path))
	return nil
}

// Ping fetches the bucket's metadata.
func (b *HTTPBucket) Ping(ctx context.Context) error {
	resp, err := b.http.R().SetContext(ctx).Get("/bucket/" + b.bucket)
	return b.check(ctx, resp, err, "ping", b.bucket)
}

func (b *HTTPBucket) check(ctx context.Context, resp *resty.Response, err error, op, path string) error {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s %s: %w", op, path, err)
		}
		return fmt.Errorf("%s %s: %w: %w", op, path, domain.ErrRequestFailed, err)
	}
	if resp.IsSuccess() {
		return nil
	}

	b.log.WarnContext(ctx, "storage request rejected",
		slog.String("op", op),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode()),
		slog.String("body", resp.String()),
	)

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", op, path, domain.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s %s: %w", op, path, domain.ErrConflict)
	}
	return fmt.Errorf("%s %s: %w: status %d", op, path, domain.ErrRequestFailed, resp.StatusCode())
}

func escapePath(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
