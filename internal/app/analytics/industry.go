package analytics

import (
	"context"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
)

// AggregateIndustries sums the per-company distinct alumni counts of every
// industry. An alumnus who worked at two companies of one industry counts
// twice, once per company. CompanyCount is the number of distinct companies.
func AggregateIndustries(ctx context.Context, in *Input, p Params) (*dto.DimensionResult[dto.IndustryListItem], error) {
	index := make(map[string]int)
	var items []dto.IndustryListItem
	for _, g := range groupCompanies(in.Alumni) {
		ind := g.company.Industry
		if ind == nil || ind.ID == "" {
			continue
		}
		pos, ok := index[ind.ID]
		if !ok {
			pos = len(items)
			index[ind.ID] = pos
			items = append(items, dto.IndustryListItem{ID: ind.ID, Name: ind.Name})
		}
		items[pos].Count += g.alumni
		items[pos].CompanyCount++
	}
	if items == nil {
		items = []dto.IndustryListItem{}
	}

	paged := page(items, p, func(i *dto.IndustryListItem) SortKeys {
		return SortKeys{ID: i.ID, Name: i.Name, Count: i.Count, CompanyCount: i.CompanyCount}
	})

	if p.Trend {
		err := attachTrends(ctx, in, paged, func(ctx context.Context, item *dto.IndustryListItem) error {
			trend, err := in.Trends.Roles(ctx, in.Candidates, func(_ *models.Alumni, r *models.Role) bool {
				ind := r.Industry()
				return ind != nil && ind.ID == item.ID
			}, in.Now)
			item.Trend = trend
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.DimensionResult[dto.IndustryListItem]{Items: paged, Count: len(items)}, nil
}
