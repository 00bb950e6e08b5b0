package analytics

import (
	"context"
	"time"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/pkg/helpers"
)

// Granularity is the bucket size of a trend series
type Granularity string

const (
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

// DefaultHorizonYears is how far back trends reach when not configured
const DefaultHorizonYears = 30

// ParseGranularity returns the granularity for s, defaulting to monthly
func ParseGranularity(s string) Granularity {
	if Granularity(s) == GranularityYearly {
		return GranularityYearly
	}
	return GranularityMonthly
}

// TrendGenerator builds gap-free time series over a fixed horizon ending at now.
type TrendGenerator struct {
	HorizonYears int
	Granularity  Granularity
}

// RoleMatcher selects the roles that count towards one trend
type RoleMatcher func(a *models.Alumni, r *models.Role) bool

// GraduationMatcher selects the graduations that count towards one trend
type GraduationMatcher func(g *models.Graduation) bool

// Buckets returns the bucket instants from now minus the horizon through now,
// each normalised to the first day of its month (or year) in UTC. The start
// is derived from the normalised last bucket so leap days cannot drop one.
func (g TrendGenerator) Buckets(now time.Time) []time.Time {
	horizon := g.HorizonYears
	if horizon <= 0 {
		horizon = DefaultHorizonYears
	}
	now = now.UTC()

	var buckets []time.Time
	if g.Granularity == GranularityYearly {
		last := helpers.StartOfYear(now)
		for b := last.AddDate(-horizon, 0, 0); !b.After(last); b = b.AddDate(1, 0, 0) {
			buckets = append(buckets, b)
		}
		return buckets
	}

	last := helpers.StartOfMonth(now)
	buckets = make([]time.Time, 0, horizon*12+1)
	for b := last.AddDate(-horizon, 0, 0); !b.After(last); b = b.AddDate(0, 1, 0) {
		buckets = append(buckets, b)
	}
	return buckets
}

// Label formats a bucket as YYYY-MM (monthly) or YYYY (yearly)
func (g TrendGenerator) Label(bucket time.Time) string {
	if g.Granularity == GranularityYearly {
		return bucket.Format("2006")
	}
	return bucket.Format("2006-01")
}

// Roles counts, per bucket, the matching roles active at the bucket instant:
// start <= bucket and (no end or end >= bucket).
func (g TrendGenerator) Roles(ctx context.Context, alumni []models.Alumni, match RoleMatcher, now time.Time) ([]dto.DataPoint, error) {
	buckets := g.Buckets(now)
	first := buckets[0]

	var roles []*models.Role
	for i := range alumni {
		a := &alumni[i]
		for j := range a.Roles {
			r := &a.Roles[j]
			if r.EndDate != nil && r.EndDate.Before(first) {
				continue
			}
			if match(a, r) {
				roles = append(roles, r)
			}
		}
	}

	points := make([]dto.DataPoint, len(buckets))
	for i, b := range buckets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		active := 0
		for _, r := range roles {
			if r.ActiveAt(b) {
				active++
			}
		}
		points[i] = dto.DataPoint{Label: g.Label(b), Value: active}
	}
	return points, nil
}

// Graduations counts, per bucket, the matching graduations concluded in the
// bucket's year.
func (g TrendGenerator) Graduations(ctx context.Context, alumni []models.Alumni, match GraduationMatcher, now time.Time) ([]dto.DataPoint, error) {
	perYear := make(map[int]int)
	for i := range alumni {
		for j := range alumni[i].Graduations {
			grad := &alumni[i].Graduations[j]
			if match(grad) {
				perYear[grad.ConclusionYear]++
			}
		}
	}

	buckets := g.Buckets(now)
	points := make([]dto.DataPoint, len(buckets))
	for i, b := range buckets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		points[i] = dto.DataPoint{Label: g.Label(b), Value: perYear[b.Year()]}
	}
	return points, nil
}
