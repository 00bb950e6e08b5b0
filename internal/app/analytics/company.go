package analytics

import (
	"context"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
)

// companyGroup is a company with the distinct alumni who held a role there
type companyGroup struct {
	company *models.Company
	alumni  int
}

// groupCompanies counts each (alumni, company) pair once. Roles without a
// company are skipped.
func groupCompanies(alumni []models.Alumni) []companyGroup {
	counter := NewDedupCounter()
	companies := make(map[string]*models.Company)
	for i := range alumni {
		a := &alumni[i]
		for j := range a.Roles {
			c := a.Roles[j].Company
			if c == nil || c.ID == "" {
				continue
			}
			if _, ok := companies[c.ID]; !ok {
				companies[c.ID] = c
			}
			counter.Add(c.ID, a.ID)
		}
	}

	groups := make([]companyGroup, 0, counter.Len())
	for _, id := range counter.Keys() {
		groups = append(groups, companyGroup{company: companies[id], alumni: counter.Count(id)})
	}
	return groups
}

// AggregateCompanies counts distinct alumni per company
func AggregateCompanies(ctx context.Context, in *Input, p Params) (*dto.DimensionResult[dto.CompanyListItem], error) {
	groups := groupCompanies(in.Alumni)
	items := make([]dto.CompanyListItem, 0, len(groups))
	for _, g := range groups {
		item := dto.CompanyListItem{
			ID:           g.company.ID,
			Name:         g.company.Name,
			Logo:         g.company.Logo,
			LevelsFyiURL: g.company.LevelsFyiURL,
			Count:        g.alumni,
		}
		if ind := g.company.Industry; ind != nil {
			item.IndustryID = ind.ID
			item.Industry = ind.Name
		}
		items = append(items, item)
	}

	paged := page(items, p, func(c *dto.CompanyListItem) SortKeys {
		return SortKeys{ID: c.ID, Name: c.Name, Count: c.Count}
	})

	if p.Trend {
		err := attachTrends(ctx, in, paged, func(ctx context.Context, c *dto.CompanyListItem) error {
			trend, err := in.Trends.Roles(ctx, in.Candidates, func(_ *models.Alumni, r *models.Role) bool {
				return r.Company != nil && r.Company.ID == c.ID
			}, in.Now)
			c.Trend = trend
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.DimensionResult[dto.CompanyListItem]{Items: paged, Count: len(items)}, nil
}
