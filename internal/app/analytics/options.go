package analytics

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

// OptionKind names a value-label list offered to filter inputs
type OptionKind string

const (
	OptionCompanies  OptionKind = "companies"
	OptionIndustries OptionKind = "industries"
	OptionCountries  OptionKind = "countries"
	OptionCities     OptionKind = "cities"
	OptionRoles      OptionKind = "roles"
	OptionAlumni     OptionKind = "alumni"
	OptionCourses    OptionKind = "courses"
	OptionFaculties  OptionKind = "faculties"
)

var optionKinds = []OptionKind{
	OptionCompanies, OptionIndustries, OptionCountries, OptionCities,
	OptionRoles, OptionAlumni, OptionCourses, OptionFaculties,
}

// ParseOptionKind resolves a path segment such as "countries"
func ParseOptionKind(s string) (OptionKind, error) {
	kind := OptionKind(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(optionKinds, kind) {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownDimension, s)
	}
	return kind, nil
}

// OptionFilter narrows the cities and courses lists. Other kinds ignore it.
type OptionFilter struct {
	CountryCodes []string
	FacultyIDs   []string
}

// OptionSource lists option values straight from storage. Sources that do
// not implement it get options derived from their full alumni set.
type OptionSource interface {
	Options(ctx context.Context, kind OptionKind, filter OptionFilter) ([]dto.Option, error)
}

type optionSet struct {
	seen map[string]struct{}
	out  []dto.Option
}

func (s *optionSet) add(o dto.Option) {
	if o.ID == "" || o.Name == "" {
		return
	}
	if _, ok := s.seen[o.ID]; ok {
		return
	}
	s.seen[o.ID] = struct{}{}
	s.out = append(s.out, o)
}

// DeriveOptions lists the distinct values of kind referenced by alumni
func DeriveOptions(alumni []models.Alumni, kind OptionKind, filter OptionFilter) []dto.Option {
	set := &optionSet{seen: make(map[string]struct{})}
	countries := upperAll(filter.CountryCodes)

	addLocation := func(l *models.Location) {
		switch kind {
		case OptionCountries:
			code := strings.ToUpper(l.CountryCodeValue())
			set.add(dto.Option{ID: code, Name: l.CountryValue()})
		case OptionCities:
			if l == nil {
				return
			}
			code := strings.ToUpper(l.CountryCodeValue())
			if len(countries) > 0 && !slices.Contains(countries, code) {
				return
			}
			set.add(dto.Option{ID: l.ID, Name: l.CityValue(), Country: code})
		}
	}

	for i := range alumni {
		a := &alumni[i]
		if kind == OptionAlumni {
			set.add(dto.Option{ID: a.ID, Name: a.FullName})
			continue
		}
		for j := range a.Roles {
			r := &a.Roles[j]
			switch kind {
			case OptionCompanies:
				if r.Company != nil {
					set.add(dto.Option{ID: r.Company.ID, Name: r.Company.Name})
				}
			case OptionIndustries:
				if ind := r.Industry(); ind != nil {
					set.add(dto.Option{ID: ind.ID, Name: ind.Name})
				}
			case OptionCountries, OptionCities:
				addLocation(r.Location)
			case OptionRoles:
				for _, jc := range r.Classifications {
					set.add(dto.Option{ID: jc.EscoClassification.Code, Name: jc.EscoClassification.TitleEn})
				}
			}
		}
		for j := range a.Graduations {
			c := a.Graduations[j].Course
			if c == nil {
				continue
			}
			switch kind {
			case OptionCourses:
				if len(filter.FacultyIDs) == 0 || slices.Contains(filter.FacultyIDs, c.FacultyID) {
					set.add(dto.Option{ID: c.ID, Name: c.Name})
				}
			case OptionFaculties:
				if c.Faculty != nil {
					set.add(dto.Option{ID: c.Faculty.ID, Name: c.Faculty.Name})
				}
			}
		}
	}
	return SortOptions(set.out)
}

// SortOptions orders options by name with the locale collator
func SortOptions(options []dto.Option) []dto.Option {
	return Sort(options, func(o *dto.Option) SortKeys {
		return SortKeys{ID: o.ID, Name: o.Name}
	}, SortByName, SortAsc)
}
