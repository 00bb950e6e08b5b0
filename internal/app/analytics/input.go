package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// DefaultTrendWorkers bounds per-dimension trend fan-out when not configured
const DefaultTrendWorkers = 4

// Input is the read-only state shared by every dimension of one run.
type Input struct {
	// Alumni is the working set after the date window
	Alumni []models.Alumni
	// Candidates is the fetched set before the date window; trends read it
	Candidates []models.Alumni
	Now        time.Time
	Trends     TrendGenerator
	Workers    int
	// Classifications titles ESCO codes truncated to a requested level
	Classifications map[string]models.EscoClassification
}

// Params controls one dimension's sorting, paging and trend.
type Params struct {
	Offset    int
	Limit     int
	SortBy    SortField
	SortOrder SortOrder // empty selects the dimension default
	Trend     bool
	EscoLevel int
}

func (p Params) sortBy(def SortField) SortField {
	if p.SortBy == "" {
		return def
	}
	return p.SortBy
}

func (p Params) sortOrder(def SortOrder) SortOrder {
	if p.SortOrder == "" {
		return def
	}
	return p.SortOrder
}

// page sorts and paginates items with the default count/desc ordering
func page[T any](items []T, p Params, keyOf func(*T) SortKeys) []T {
	sorted := Sort(items, keyOf, p.sortBy(SortByCount), p.sortOrder(SortDesc))
	return Paginate(sorted, p.Offset, p.Limit)
}

// attachTrends runs fn for every item of a page with bounded concurrency and
// stops at the first error or on cancellation.
func attachTrends[T any](ctx context.Context, in *Input, items []T, fn func(ctx context.Context, item *T) error) error {
	if len(items) == 0 {
		return nil
	}
	workers := in.Workers
	if workers <= 0 {
		workers = DefaultTrendWorkers
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range items {
		item := &items[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, item)
		})
	}
	return g.Wait()
}
