package analytics

import (
	"context"
	"strings"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
)

// geoGroup accumulates one country or city. Alumni and companies are
// deduplicated by two independent counters sharing the group key.
type geoGroup struct {
	name        string
	countryCode string
	location    *models.Location
}

type geoAccumulator struct {
	alumni    *DedupCounter
	companies *DedupCounter
	groups    map[string]*geoGroup
}

func newGeoAccumulator() *geoAccumulator {
	return &geoAccumulator{
		alumni:    NewDedupCounter(),
		companies: NewDedupCounter(),
		groups:    make(map[string]*geoGroup),
	}
}

func (acc *geoAccumulator) add(key, name string, a *models.Alumni, r *models.Role) {
	g, ok := acc.groups[key]
	if !ok {
		g = &geoGroup{name: name, countryCode: strings.ToUpper(r.Location.CountryCodeValue())}
		acc.groups[key] = g
	}
	if g.name == "" {
		g.name = name
	}
	if g.location == nil {
		if _, _, ok := r.Location.Coordinates(); ok {
			g.location = r.Location
		}
	}
	acc.alumni.Add(key, a.ID)
	if r.Company != nil && r.Company.ID != "" {
		acc.companies.Add(key, r.Company.ID)
	}
}

func coordinates(l *models.Location) (*float64, *float64) {
	if l == nil {
		return nil, nil
	}
	return l.Latitude, l.Longitude
}

// AggregateCountries counts distinct alumni and distinct companies per role
// country code. Roles without a country code are skipped.
func AggregateCountries(ctx context.Context, in *Input, p Params) (*dto.DimensionResult[dto.CountryListItem], error) {
	acc := newGeoAccumulator()
	for i := range in.Alumni {
		a := &in.Alumni[i]
		for j := range a.Roles {
			r := &a.Roles[j]
			code := strings.ToUpper(r.Location.CountryCodeValue())
			if code == "" {
				continue
			}
			acc.add(code, r.Location.CountryValue(), a, r)
		}
	}

	items := make([]dto.CountryListItem, 0, acc.alumni.Len())
	for _, code := range acc.alumni.Keys() {
		g := acc.groups[code]
		lat, lng := coordinates(g.location)
		name := g.name
		if name == "" {
			name = code
		}
		items = append(items, dto.CountryListItem{
			ID:           code,
			Name:         name,
			Code:         code,
			Latitude:     lat,
			Longitude:    lng,
			Count:        acc.alumni.Count(code),
			CompanyCount: acc.companies.Count(code),
		})
	}

	paged := page(items, p, func(c *dto.CountryListItem) SortKeys {
		return SortKeys{ID: c.ID, Name: c.Name, Count: c.Count, CompanyCount: c.CompanyCount}
	})

	if p.Trend {
		err := attachTrends(ctx, in, paged, func(ctx context.Context, c *dto.CountryListItem) error {
			trend, err := in.Trends.Roles(ctx, in.Candidates, func(_ *models.Alumni, r *models.Role) bool {
				return strings.EqualFold(r.Location.CountryCodeValue(), c.Code)
			}, in.Now)
			c.Trend = trend
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.DimensionResult[dto.CountryListItem]{Items: paged, Count: len(items)}, nil
}

// AggregateCities counts distinct alumni and distinct companies per role
// location. Roles whose location has no city are skipped.
func AggregateCities(ctx context.Context, in *Input, p Params) (*dto.DimensionResult[dto.CityListItem], error) {
	acc := newGeoAccumulator()
	for i := range in.Alumni {
		a := &in.Alumni[i]
		for j := range a.Roles {
			r := &a.Roles[j]
			if r.Location == nil || r.Location.ID == "" || r.Location.CityValue() == "" {
				continue
			}
			acc.add(r.Location.ID, r.Location.CityValue(), a, r)
		}
	}

	items := make([]dto.CityListItem, 0, acc.alumni.Len())
	for _, id := range acc.alumni.Keys() {
		g := acc.groups[id]
		lat, lng := coordinates(g.location)
		items = append(items, dto.CityListItem{
			ID:           id,
			Name:         g.name,
			CountryCode:  g.countryCode,
			Latitude:     lat,
			Longitude:    lng,
			Count:        acc.alumni.Count(id),
			CompanyCount: acc.companies.Count(id),
		})
	}

	paged := page(items, p, func(c *dto.CityListItem) SortKeys {
		return SortKeys{ID: c.ID, Name: c.Name, Count: c.Count, CompanyCount: c.CompanyCount}
	})

	if p.Trend {
		err := attachTrends(ctx, in, paged, func(ctx context.Context, c *dto.CityListItem) error {
			trend, err := in.Trends.Roles(ctx, in.Candidates, func(_ *models.Alumni, r *models.Role) bool {
				return r.Location != nil && r.Location.ID == c.ID
			}, in.Now)
			c.Trend = trend
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.DimensionResult[dto.CityListItem]{Items: paged, Count: len(items)}, nil
}
