package analytics

import (
	"context"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
)

// AggregateRoles counts roles per ESCO code of their primary classification.
// With an ESCO level the codes are truncated to that level and titled from
// in.Classifications; roles classified less specifically than the level, and
// codes missing from the catalog, are skipped.
func AggregateRoles(ctx context.Context, in *Input, p Params) (*dto.DimensionResult[dto.RoleListItem], error) {
	index := make(map[string]int)
	items := []dto.RoleListItem{}
	for i := range in.Alumni {
		for j := range in.Alumni[i].Roles {
			jc := in.Alumni[i].Roles[j].PrimaryClassification()
			if jc == nil || jc.EscoClassification.Code == "" {
				continue
			}
			code, ok := ResolveEscoCode(jc.EscoClassification.Code, jc.EscoClassification.Level, p.EscoLevel)
			if !ok {
				continue
			}

			pos, seen := index[code]
			if !seen {
				cls := jc.EscoClassification
				if code != cls.Code {
					if cls, ok = in.Classifications[code]; !ok {
						continue
					}
				}
				pos = len(items)
				index[code] = pos
				items = append(items, dto.RoleListItem{
					Code:    code,
					Name:    cls.TitleEn,
					Level:   cls.Level,
					EscoURL: cls.EscoURL,
				})
			}
			items[pos].Count++
		}
	}

	paged := page(items, p, func(r *dto.RoleListItem) SortKeys {
		return SortKeys{ID: r.Code, Name: r.Name, Count: r.Count}
	})

	if p.Trend {
		err := attachTrends(ctx, in, paged, func(ctx context.Context, item *dto.RoleListItem) error {
			trend, err := in.Trends.Roles(ctx, in.Candidates, func(_ *models.Alumni, r *models.Role) bool {
				jc := r.PrimaryClassification()
				if jc == nil {
					return false
				}
				code, ok := ResolveEscoCode(jc.EscoClassification.Code, jc.EscoClassification.Level, p.EscoLevel)
				return ok && code == item.Code
			}, in.Now)
			item.Trend = trend
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.DimensionResult[dto.RoleListItem]{Items: paged, Count: len(items)}, nil
}
