package analytics

import (
	"context"

	"github.com/yigit/alumnisphere/internal/app/models/dto"
)

// ListAlumni projects the working set sorted by full name, ascending unless
// a sort order is given.
func ListAlumni(_ context.Context, in *Input, p Params) (*dto.DimensionResult[dto.AlumniListItem], error) {
	items := make([]dto.AlumniListItem, 0, len(in.Alumni))
	for i := range in.Alumni {
		a := &in.Alumni[i]
		items = append(items, dto.AlumniListItem{
			ID:                a.ID,
			FullName:          a.FullName,
			LinkedinURL:       a.LinkedinURL,
			ProfilePictureURL: a.ProfilePictureURL,
		})
	}

	sorted := Sort(items, func(a *dto.AlumniListItem) SortKeys {
		return SortKeys{ID: a.ID, Name: a.FullName}
	}, SortByName, p.sortOrder(SortAsc))

	return &dto.DimensionResult[dto.AlumniListItem]{
		Items: Paginate(sorted, p.Offset, p.Limit),
		Count: len(items),
	}, nil
}
