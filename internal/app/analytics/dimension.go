package analytics

import (
	"fmt"
	"strings"

	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

// Selector picks the dimensions computed by one run
type Selector string

const (
	SelectorAlumni    Selector = "ALUMNI"
	SelectorCompany   Selector = "COMPANY"
	SelectorGeo       Selector = "GEO"
	SelectorRole      Selector = "ROLE"
	SelectorSeniority Selector = "SENIORITY"
	SelectorIndustry  Selector = "INDUSTRY"
	SelectorEducation Selector = "EDUCATION"
	SelectorAll       Selector = "ALL"
)

// Dimension is one aggregation axis
type Dimension string

const (
	DimensionAlumni     Dimension = "alumni"
	DimensionCompany    Dimension = "company"
	DimensionIndustry   Dimension = "industry"
	DimensionCountry    Dimension = "country"
	DimensionCity       Dimension = "city"
	DimensionRole       Dimension = "role"
	DimensionSeniority  Dimension = "seniority"
	DimensionFaculty    Dimension = "faculty"
	DimensionMajor      Dimension = "major"
	DimensionGraduation Dimension = "graduation"
)

// AllDimensions lists every dimension in response order
var AllDimensions = []Dimension{
	DimensionAlumni,
	DimensionCompany,
	DimensionIndustry,
	DimensionCountry,
	DimensionCity,
	DimensionRole,
	DimensionSeniority,
	DimensionFaculty,
	DimensionMajor,
	DimensionGraduation,
}

var selectorDimensions = map[Selector][]Dimension{
	SelectorAlumni:    {DimensionAlumni},
	SelectorCompany:   {DimensionCompany},
	SelectorGeo:       {DimensionCountry, DimensionCity},
	SelectorRole:      {DimensionRole},
	SelectorSeniority: {DimensionSeniority},
	SelectorIndustry:  {DimensionIndustry},
	SelectorEducation: {DimensionFaculty, DimensionMajor, DimensionGraduation},
	SelectorAll:       AllDimensions,
}

// pathSelectors maps the /analytics/:dimension path segment to a selector
var pathSelectors = map[string]Selector{
	"alumni":     SelectorAlumni,
	"companies":  SelectorCompany,
	"geo":        SelectorGeo,
	"roles":      SelectorRole,
	"seniority":  SelectorSeniority,
	"industries": SelectorIndustry,
	"education":  SelectorEducation,
}

// ParseSelector parses a selector name case-insensitively. An empty value
// selects every dimension.
func ParseSelector(s string) (Selector, error) {
	if s == "" {
		return SelectorAll, nil
	}
	sel := Selector(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := selectorDimensions[sel]; !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownSelector, s)
	}
	return sel, nil
}

// SelectorFromPath resolves a path segment such as "companies"
func SelectorFromPath(segment string) (Selector, error) {
	sel, ok := pathSelectors[strings.ToLower(segment)]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownDimension, segment)
	}
	return sel, nil
}

// Dimensions returns the dimensions a selector covers
func (s Selector) Dimensions() ([]Dimension, error) {
	dims, ok := selectorDimensions[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownSelector, string(s))
	}
	return dims, nil
}
