package analytics

import (
	"context"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// Source returns the alumni matching a compiled filter, fully populated:
// roles with company, industry, locations, primary classification and
// seniority; graduations with course and faculty. Only the Alumni and Role
// groups are its concern, the date window is applied afterwards.
type Source interface {
	Find(ctx context.Context, filter CompiledFilter) ([]models.Alumni, error)
}

// ClassificationCatalog looks up ESCO classifications by code. Unknown
// codes are absent from the result.
type ClassificationCatalog interface {
	Classifications(ctx context.Context, codes []string) (map[string]models.EscoClassification, error)
}
