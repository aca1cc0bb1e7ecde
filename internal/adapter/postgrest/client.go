// Package postgrest reaches the record store through the hosted backend's
// REST query API.
package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/devlog-backend/internal/config"
	"github.com/heartmarshall/devlog-backend/internal/domain"
)

const (
	headerPrefer       = "Prefer"
	headerContentRange = "Content-Range"

	preferCount          = "count=exact"
	preferRepresentation = "return=representation"
)

// Client is a thin REST client for the hosted tables.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// New creates a Client for cfg.URL authenticated with the anonymous key.
func New(cfg config.APIConfig, logger *slog.Logger) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")+"/rest/v1").
		SetHeader("apikey", cfg.Key).
		SetAuthToken(cfg.Key).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout)

	return &Client{
		http: c,
		log:  logger.With("adapter", "postgrest"),
	}
}

// Entries returns the dev_history repository.
func (c *Client) Entries() *EntryRepo { return &EntryRepo{c: c} }

// Schedules returns the schedules repository.
func (c *Client) Schedules() *ScheduleRepo { return &ScheduleRepo{c: c} }

// Comments returns the comments repository.
func (c *Client) Comments() *CommentRepo { return &CommentRepo{c: c} }

// Ping checks that the API answers.
func (c *Client) Ping(ctx context.Context) error {
	q := url.Values{}
	q.Set("select", "id")
	q.Set("limit", "1")
	return c.get(ctx, "dev_history", 0, q, nil)
}

// apiError is the JSON error body of the REST API.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// get runs a GET and decodes the JSON array into dst.
func (c *Client) get(ctx context.Context, table string, id int64, q url.Values, dst any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(q).
		Get("/" + table)
	if err := c.check(ctx, resp, err, table, id); err != nil {
		return err
	}
	if dst == nil {
		return nil
	}
	return decode(resp, table, dst)
}

// getCounted is get with the exact number of matching rows requested.
func (c *Client) getCounted(ctx context.Context, table string, q url.Values, dst any) (int, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(q).
		SetHeader(headerPrefer, preferCount).
		Get("/" + table)
	if err == nil && resp.StatusCode() == http.StatusRequestedRangeNotSatisfiable {
		// Offset past the last row: the range is empty but the total is still reported.
		total, perr := parseTotal(resp.Header().Get(headerContentRange))
		if perr == nil {
			return total, nil
		}
	}
	if err := c.check(ctx, resp, err, table, 0); err != nil {
		return 0, err
	}
	if err := decode(resp, table, dst); err != nil {
		return 0, err
	}

	total, err := parseTotal(resp.Header().Get(headerContentRange))
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", table, domain.ErrRequestFailed, err)
	}
	return total, nil
}

// write runs a POST, PATCH or DELETE asking for the affected rows back.
func (c *Client) write(ctx context.Context, method, table string, id int64, q url.Values, body any, dst any) error {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(q).
		SetHeader(headerPrefer, preferRepresentation)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, "/"+table)
	if err := c.check(ctx, resp, err, table, id); err != nil {
		return err
	}

	return decode(resp, table, dst)
}

func decode(resp *resty.Response, table string, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%s: decode response: %w: %w", table, domain.ErrRequestFailed, err)
	}
	return nil
}

// check maps transport failures and non-2xx responses to domain errors.
func (c *Client) check(ctx context.Context, resp *resty.Response, err error, table string, id int64) error {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s %d: %w", table, id, err)
		}
		c.log.WarnContext(ctx, "request failed", slog.String("table", table), slog.String("error", err.Error()))
		return fmt.Errorf("%s %d: %w: %w", table, id, domain.ErrRequestFailed, err)
	}
	if resp.IsSuccess() {
		return nil
	}

	var body apiError
	_ = json.Unmarshal(resp.Body(), &body)

	c.log.WarnContext(ctx, "request rejected",
		slog.String("table", table),
		slog.Int("status", resp.StatusCode()),
		slog.String("code", body.Code),
		slog.String("message", body.Message),
	)

	return fmt.Errorf("%s %d: %w", table, id, mapStatus(resp.StatusCode(), body))
}

func mapStatus(status int, body apiError) error {
	switch body.Code {
	case "23505":
		return domain.ErrConflict
	case "23503", "PGRST116":
		return domain.ErrNotFound
	case "23514", "22P02", "22007":
		return domain.ErrValidation
	}

	switch status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	}

	msg := body.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	return fmt.Errorf("%w: status %d: %s", domain.ErrRequestFailed, status, msg)
}

// parseTotal reads the total from a Content-Range header such as "0-19/57" or "*/0".
func parseTotal(h string) (int, error) {
	i := strings.LastIndexByte(h, '/')
	if i < 0 || i == len(h)-1 {
		return 0, fmt.Errorf("invalid content range %q", h)
	}
	total := h[i+1:]
	if total == "*" {
		return 0, fmt.Errorf("content range %q has no exact count", h)
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("invalid content range %q: %w", h, err)
	}
	return n, nil
}
