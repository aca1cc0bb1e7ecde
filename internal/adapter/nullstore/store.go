// Package nullstore stands in for the record and object stores when no
// credentials are configured. Reads come back empty and every write fails
// with domain.ErrNotConfigured without touching the network.
package nullstore

import (
	"context"
	"fmt"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// Entries is the unconfigured dev_history store.
type Entries struct{}

func (Entries) List(context.Context, domain.EntryFilter) ([]domain.LogEntry, error) {
	return []domain.LogEntry{}, nil
}

func (Entries) ListPage(context.Context, domain.EntryFilter, int, int) ([]domain.LogEntry, int, error) {
	return []domain.LogEntry{}, 0, nil
}

func (Entries) GetByID(_ context.Context, id int64) (*domain.LogEntry, error) {
	return nil, fmt.Errorf("dev_history %d: %w", id, domain.ErrNotFound)
}

func (Entries) GetBriefs(context.Context, []int64) ([]domain.EntryBrief, error) {
	return []domain.EntryBrief{}, nil
}

func (Entries) SearchBriefs(context.Context, string, int64, int) ([]domain.EntryBrief, error) {
	return []domain.EntryBrief{}, nil
}

func (Entries) Create(context.Context, *domain.LogEntry) (*domain.LogEntry, error) {
	return nil, domain.ErrNotConfigured
}

func (Entries) Update(context.Context, int64, domain.EntryUpdateParams) (*domain.LogEntry, error) {
	return nil, domain.ErrNotConfigured
}

func (Entries) Delete(context.Context, int64) error {
	return domain.ErrNotConfigured
}

// Schedules is the unconfigured schedules store.
type Schedules struct{}

func (Schedules) List(context.Context, bool) ([]domain.ScheduleItem, error) {
	return []domain.ScheduleItem{}, nil
}

func (Schedules) GetByID(_ context.Context, id int64) (*domain.ScheduleItem, error) {
	return nil, fmt.Errorf("schedules %d: %w", id, domain.ErrNotFound)
}

func (Schedules) Create(context.Context, *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	return nil, domain.ErrNotConfigured
}

func (Schedules) Update(context.Context, int64, domain.ScheduleUpdateParams) (*domain.ScheduleItem, error) {
	return nil, domain.ErrNotConfigured
}

func (Schedules) Delete(context.Context, int64) error {
	return domain.ErrNotConfigured
}

// Comments is the unconfigured comments store.
type Comments struct{}

func (Comments) ListByEntry(context.Context, int64) ([]domain.Comment, error) {
	return []domain.Comment{}, nil
}

func (Comments) Create(context.Context, *domain.Comment) (*domain.Comment, error) {
	return nil, domain.ErrNotConfigured
}

func (Comments) Delete(context.Context, int64) error {
	return domain.ErrNotConfigured
}

func (Comments) CountByEntries(context.Context, []int64) (map[int64]int, error) {
	return map[int64]int{}, nil
}

// Bucket is the unconfigured object store.
type Bucket struct{}

func (Bucket) Upload(context.Context, string, []byte, string) (string, error) {
	return "", domain.ErrNotConfigured
}

func (Bucket) PublicURL(string) string { return "" }

func (Bucket) Delete(context.Context, string) error {
	return domain.ErrNotConfigured
}

// Ping always succeeds: there is nothing to reach.
func Ping(context.Context) error { return nil }
