package analytics

import (
	"context"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// MemorySource evaluates compiled filters over an in-memory snapshot. It
// implements both Source and ClassificationCatalog.
type MemorySource struct {
	alumni  []models.Alumni
	catalog map[string]models.EscoClassification
}

// NewMemorySource indexes the snapshot. Classifications referenced by roles
// are added to the catalog next to the extra entries given.
func NewMemorySource(alumni []models.Alumni, classifications ...models.EscoClassification) *MemorySource {
	catalog := make(map[string]models.EscoClassification, len(classifications))
	for _, c := range classifications {
		catalog[c.Code] = c
	}
	for i := range alumni {
		for j := range alumni[i].Roles {
			for _, jc := range alumni[i].Roles[j].Classifications {
				if _, ok := catalog[jc.EscoClassification.Code]; !ok && jc.EscoClassification.Code != "" {
					catalog[jc.EscoClassification.Code] = jc.EscoClassification
				}
			}
		}
	}
	return &MemorySource{alumni: alumni, catalog: catalog}
}

// Find implements Source
func (s *MemorySource) Find(ctx context.Context, filter CompiledFilter) ([]models.Alumni, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Alumni, 0, len(s.alumni))
	for i := range s.alumni {
		if filter.Matches(&s.alumni[i]) {
			out = append(out, s.alumni[i])
		}
	}
	return out, nil
}

// Classifications implements ClassificationCatalog
func (s *MemorySource) Classifications(ctx context.Context, codes []string) (map[string]models.EscoClassification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(map[string]models.EscoClassification, len(codes))
	for _, code := range codes {
		if c, ok := s.catalog[code]; ok {
			out[code] = c
		}
	}
	return out, nil
}

// Len returns the snapshot size
func (s *MemorySource) Len() int {
	return len(s.alumni)
}
