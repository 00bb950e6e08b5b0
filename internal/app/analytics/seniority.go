package analytics

import (
	"context"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
)

// AggregateSeniority counts roles per seniority level
func AggregateSeniority(ctx context.Context, in *Input, p Params) (*dto.DimensionResult[dto.SeniorityListItem], error) {
	index := make(map[models.SeniorityLevel]int)
	items := []dto.SeniorityListItem{}
	for i := range in.Alumni {
		for j := range in.Alumni[i].Roles {
			level := in.Alumni[i].Roles[j].SeniorityLevel
			if level == "" {
				continue
			}
			pos, ok := index[level]
			if !ok {
				pos = len(items)
				index[level] = pos
				items = append(items, dto.SeniorityListItem{ID: string(level), Name: string(level)})
			}
			items[pos].Count++
		}
	}

	paged := page(items, p, func(s *dto.SeniorityListItem) SortKeys {
		return SortKeys{ID: s.ID, Name: s.Name, Count: s.Count}
	})

	if p.Trend {
		err := attachTrends(ctx, in, paged, func(ctx context.Context, item *dto.SeniorityListItem) error {
			trend, err := in.Trends.Roles(ctx, in.Candidates, func(_ *models.Alumni, r *models.Role) bool {
				return string(r.SeniorityLevel) == item.ID
			}, in.Now)
			item.Trend = trend
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.DimensionResult[dto.SeniorityListItem]{Items: paged, Count: len(items)}, nil
}
