package providers

import (
	"context"

	"github.com/hsd-hub/ngo-explorer/internal/platform/httpx"
)

// Pagination defaults and bounds for listings.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// ListOptions carries the optional filters and pagination window for List.
// The zero value is valid and means "first page, default size, no filters".
type ListOptions struct {
	Skip                int
	Limit               int
	LocalHealthDistrict string
	CommissioningAgency string
	Search              string
}

// normalized clamps the pagination window: Skip is never negative, Limit
// falls back to DefaultLimit when unset and is capped at MaxLimit.
func (o ListOptions) normalized() ListOptions {
	if o.Skip < 0 {
		o.Skip = 0
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	return o
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of providers and the total matching count.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Provider, int, ListOptions, error) {
	opts = opts.normalized()
	records, total, err := s.repo.List(ctx, opts)
	return records, total, opts, err
}

// Get looks up a single provider. A missing id yields httpx.ErrNotFound,
// not a storage failure.
func (s *Service) Get(ctx context.Context, id int64) (Provider, error) {
	if id <= 0 {
		return Provider{}, httpx.ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// FilterValues returns the distinct filter choices.
func (s *Service) FilterValues(ctx context.Context) (FilterValues, error) {
	return s.repo.DistinctFilterValues(ctx)
}
