package analytics

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

var companySizeLabels = map[models.CompanySize]string{
	models.CompanySizeUnspecified: "Not specified",
	models.CompanySize1To10:       "1-10 employees",
	models.CompanySize11To50:      "11-50 employees",
	models.CompanySize51To200:     "51-200 employees",
	models.CompanySize201To500:    "201-500 employees",
	models.CompanySize501To1000:   "501-1000 employees",
	models.CompanySize1001To5000:  "1,001-5,000 employees",
	models.CompanySize5001To10000: "5,001-10,000 employees",
	models.CompanySize10001Plus:   "10,001+ employees",
}

// CompanySizeLabel returns the headcount bracket label, or "" when unset
func CompanySizeLabel(s *models.CompanySize) string {
	if s == nil {
		return ""
	}
	return companySizeLabels[*s]
}

// fullMonths counts the complete calendar months between from and to
func fullMonths(from, to time.Time) int {
	m := (to.Year()-from.Year())*12 + int(to.Month()-from.Month())
	if to.Day() < from.Day() {
		m--
	}
	return max(m, 0)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// HumanizeMonths renders a duration such as "2 years and 3 months"
func HumanizeMonths(months int) string {
	years, rest := months/12, months%12
	switch {
	case years > 0 && rest > 0:
		return plural(years, "year") + " and " + plural(rest, "month")
	case years > 0:
		return plural(years, "year")
	case rest > 0:
		return plural(rest, "month")
	}
	return "0 years"
}

// CompanyInsights describes one company from the alumni who held a role
// there. alumni is expected to be the result of a company filter; roles at
// other companies only feed the career length of current employees.
//
// The average time in company is the mean tenure over every role at the
// company, ongoing roles ending now. The average career length is taken
// over alumni currently employed there, from their earliest role start.
func CompanyInsights(_ context.Context, alumni []models.Alumni, companyID string, now time.Time) (*dto.CompanyInsights, error) {
	var (
		company      *models.Company
		roles        int
		tenureMonths int
		current      int
		members      int
		careerYears  int
	)
	for i := range alumni {
		a := &alumni[i]
		worked, employed := false, false
		var earliest time.Time
		for j := range a.Roles {
			r := &a.Roles[j]
			if earliest.IsZero() || r.StartDate.Before(earliest) {
				earliest = r.StartDate
			}
			if r.Company == nil || r.Company.ID != companyID {
				continue
			}
			if company == nil {
				company = r.Company
			}
			worked = true
			roles++
			tenureMonths += fullMonths(r.StartDate, r.EffectiveEnd(now))
			if r.EndDate == nil {
				employed = true
			}
		}
		if worked {
			members++
		}
		if employed {
			current++
			careerYears += fullMonths(earliest, now) / 12
		}
	}
	if company == nil {
		return nil, apperrors.NewResourceNotFoundError("company not found")
	}

	out := &dto.CompanyInsights{
		ID:                    company.ID,
		Name:                  company.Name,
		Logo:                  company.Logo,
		LevelsFyiURL:          company.LevelsFyiURL,
		CompanySize:           CompanySizeLabel(company.Size),
		Founded:               company.Founded,
		Headquarters:          headquarters(company.Location),
		AlumniCount:           members,
		CurrentAlumniCount:    current,
		AverageYearsInCompany: HumanizeMonths(tenureMonths / roles),
	}
	if company.Type != nil {
		out.CompanyType = string(*company.Type)
	}
	if company.Industry != nil {
		out.Industry = company.Industry.Name
	}
	if current > 0 {
		out.AverageYearsOfCareer = int(math.Round(float64(careerYears) / float64(current)))
	}
	return out, nil
}

func headquarters(l *models.Location) string {
	parts := make([]string, 0, 2)
	if city := l.CityValue(); city != "" {
		parts = append(parts, city)
	}
	if country := l.CountryValue(); country != "" {
		parts = append(parts, country)
	}
	return strings.Join(parts, ", ")
}
