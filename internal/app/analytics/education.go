package analytics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
)

// majorLabel renders "[<faculty acronym>] <course acronym>", dropping the
// bracket when the faculty is unknown.
func majorLabel(c *models.Course) string {
	if c.Faculty == nil || c.Faculty.Acronym == "" {
		return c.Acronym
	}
	return fmt.Sprintf("[%s] %s", c.Faculty.Acronym, c.Acronym)
}

// AggregateFaculties counts graduation records per faculty
func AggregateFaculties(ctx context.Context, in *Input, p Params) (*dto.DimensionResult[dto.FacultyListItem], error) {
	index := make(map[string]int)
	items := []dto.FacultyListItem{}
	for i := range in.Alumni {
		for j := range in.Alumni[i].Graduations {
			f := in.Alumni[i].Graduations[j].Faculty()
			if f == nil || f.ID == "" {
				continue
			}
			pos, ok := index[f.ID]
			if !ok {
				pos = len(items)
				index[f.ID] = pos
				items = append(items, dto.FacultyListItem{ID: f.ID, Name: f.Name, Acronym: f.Acronym})
			}
			items[pos].Count++
		}
	}

	paged := page(items, p, func(f *dto.FacultyListItem) SortKeys {
		return SortKeys{ID: f.ID, Name: f.Name, Count: f.Count}
	})

	if p.Trend {
		err := attachTrends(ctx, in, paged, func(ctx context.Context, item *dto.FacultyListItem) error {
			trend, err := in.Trends.Graduations(ctx, in.Candidates, func(g *models.Graduation) bool {
				f := g.Faculty()
				return f != nil && f.ID == item.ID
			}, in.Now)
			item.Trend = trend
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.DimensionResult[dto.FacultyListItem]{Items: paged, Count: len(items)}, nil
}

// AggregateMajors counts graduation records per course
func AggregateMajors(ctx context.Context, in *Input, p Params) (*dto.DimensionResult[dto.MajorListItem], error) {
	index := make(map[string]int)
	items := []dto.MajorListItem{}
	for i := range in.Alumni {
		for j := range in.Alumni[i].Graduations {
			g := &in.Alumni[i].Graduations[j]
			if g.Course == nil || g.CourseID == "" {
				continue
			}
			pos, ok := index[g.CourseID]
			if !ok {
				item := dto.MajorListItem{ID: g.CourseID, Name: g.Course.Name, Acronym: majorLabel(g.Course)}
				if g.Course.Faculty != nil {
					item.FacultyAcronym = g.Course.Faculty.Acronym
				}
				pos = len(items)
				index[g.CourseID] = pos
				items = append(items, item)
			}
			items[pos].Count++
		}
	}

	paged := page(items, p, func(m *dto.MajorListItem) SortKeys {
		return SortKeys{ID: m.ID, Name: m.Name, Count: m.Count}
	})

	if p.Trend {
		err := attachTrends(ctx, in, paged, func(ctx context.Context, item *dto.MajorListItem) error {
			trend, err := in.Trends.Graduations(ctx, in.Candidates, func(g *models.Graduation) bool {
				return g.CourseID == item.ID
			}, in.Now)
			item.Trend = trend
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.DimensionResult[dto.MajorListItem]{Items: paged, Count: len(items)}, nil
}

// AggregateGraduations counts graduation records per (course acronym,
// conclusion year) cohort.
func AggregateGraduations(_ context.Context, in *Input, p Params) (*dto.DimensionResult[dto.GraduationListItem], error) {
	index := make(map[string]int)
	items := []dto.GraduationListItem{}
	for i := range in.Alumni {
		for j := range in.Alumni[i].Graduations {
			g := &in.Alumni[i].Graduations[j]
			if g.Course == nil {
				continue
			}
			key := g.Course.Acronym + "-" + strconv.Itoa(g.ConclusionYear)
			pos, ok := index[key]
			if !ok {
				pos = len(items)
				index[key] = pos
				items = append(items, dto.GraduationListItem{
					ID:       key,
					CourseID: g.CourseID,
					Name:     g.Course.Name,
					Acronym:  majorLabel(g.Course),
					Year:     g.ConclusionYear,
				})
			}
			items[pos].Count++
		}
	}

	paged := page(items, p, func(g *dto.GraduationListItem) SortKeys {
		return SortKeys{ID: g.ID, Name: g.Name, Count: g.Count, Year: g.Year}
	})

	return &dto.DimensionResult[dto.GraduationListItem]{Items: paged, Count: len(items)}, nil
}
