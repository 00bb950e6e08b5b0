package analytics

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/yigit/alumnisphere/internal/app/models"
)

var testNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func loc(id, country, code, city string) *models.Location {
	l := &models.Location{ID: id}
	if country != "" {
		l.Country = ptr(country)
	}
	if code != "" {
		l.CountryCode = ptr(code)
	}
	if city != "" {
		l.City = ptr(city)
	}
	return l
}

func company(id, name string, industry *models.Industry, hq *models.Location) *models.Company {
	return &models.Company{ID: id, Name: name, Industry: industry, Location: hq}
}

func role(id string, c *models.Company, l *models.Location, start time.Time, end *time.Time) models.Role {
	return models.Role{
		ID:        id,
		StartDate: start,
		EndDate:   end,
		IsCurrent: end == nil,
		Company:   c,
		Location:  l,
	}
}

func withEsco(r models.Role, code string, level int, title string) models.Role {
	r.Classifications = append(r.Classifications, models.JobClassification{
		RoleID:               r.ID,
		EscoClassificationID: code,
		Rank:                 1,
		EscoClassification:   models.EscoClassification{Code: code, TitleEn: title, Level: level},
	})
	return r
}

func withSeniority(r models.Role, level models.SeniorityLevel) models.Role {
	r.SeniorityLevel = level
	return r
}

func alumnus(id, name string, roles ...models.Role) models.Alumni {
	for i := range roles {
		roles[i].AlumniID = id
	}
	return models.Alumni{ID: id, FullName: name, Roles: roles}
}

func graduated(a models.Alumni, course *models.Course, year int) models.Alumni {
	a.Graduations = append(a.Graduations, models.Graduation{
		ID:             fmt.Sprintf("%s-%s-%d", a.ID, course.ID, year),
		AlumniID:       a.ID,
		CourseID:       course.ID,
		ConclusionYear: year,
		Course:         course,
	})
	return a
}

// fixture data shared by the scenario tests
var (
	software  = &models.Industry{ID: "ind-software", Name: "Software Development"}
	research  = &models.Industry{ID: "ind-research", Name: "Research Services"}
	portugal  = loc("loc-porto", "Portugal", "PT", "Porto")
	lisbon    = loc("loc-lisbon", "Portugal", "PT", "Lisbon")
	spain     = loc("loc-madrid", "Spain", "ES", "Madrid")
	companyX  = company("company-x", "Company X", software, portugal)
	companyY  = company("company-y", "Company Y", software, spain)
	companyZ  = company("company-z", "Zeta Labs", research, lisbon)
	feup      = &models.Faculty{ID: "fac-feup", Name: "Faculty of Engineering", Acronym: "FEUP"}
	fcup      = &models.Faculty{ID: "fac-fcup", Name: "Faculty of Sciences", Acronym: "FCUP"}
	leic      = &models.Course{ID: "course-leic", Name: "Informatics and Computing Engineering", Acronym: "L.EIC", FacultyID: feup.ID, Faculty: feup}
	meic      = &models.Course{ID: "course-meic", Name: "Master in Informatics", Acronym: "M.EIC", FacultyID: feup.ID, Faculty: feup}
	lcc       = &models.Course{ID: "course-lcc", Name: "Computer Science", Acronym: "L.CC", FacultyID: fcup.ID, Faculty: fcup}
	ended2020 = ptr(date(2020, time.January, 1))
)

// scenarioAlumni: A1 worked at X in Portugal (ended) and is at Y in Spain,
// A2 worked at X in Portugal (ended), A3 has no roles.
func scenarioAlumni() []models.Alumni {
	return []models.Alumni{
		alumnus("a2", "Bruno Costa",
			role("r3", companyX, portugal, date(2017, time.March, 1), ended2020),
		),
		alumnus("a1", "Ana Silva",
			role("r1", companyX, portugal, date(2016, time.September, 1), ended2020),
			role("r2", companyY, spain, date(2020, time.February, 1), nil),
		),
		alumnus("a3", "Carla Dias"),
	}
}

func testInput(alumni []models.Alumni) *Input {
	return &Input{
		Alumni:     alumni,
		Candidates: alumni,
		Now:        testNow,
		Trends:     TrendGenerator{HorizonYears: 30, Granularity: GranularityMonthly},
		Workers:    2,
	}
}

func allPage() Params {
	return Params{Limit: 1000}
}

// randomAlumni builds a deterministic random working set from seed
func randomAlumni(seed int64, size int) []models.Alumni {
	rng := rand.New(rand.NewSource(seed))
	locations := []*models.Location{portugal, lisbon, spain, loc("loc-berlin", "Germany", "DE", "Berlin"), loc("loc-nowhere", "", "", "")}
	companies := []*models.Company{companyX, companyY, companyZ, company("company-w", "Widgets", nil, nil)}
	levels := models.SeniorityLevels

	out := make([]models.Alumni, 0, size)
	for i := 0; i < size; i++ {
		var roles []models.Role
		n := rng.Intn(4)
		for j := 0; j < n; j++ {
			start := date(1990+rng.Intn(35), time.Month(1+rng.Intn(12)), 1)
			var end *time.Time
			if rng.Intn(2) == 0 {
				end = ptr(start.AddDate(0, 1+rng.Intn(60), 0))
			}
			var c *models.Company
			if rng.Intn(5) > 0 {
				c = companies[rng.Intn(len(companies))]
			}
			var l *models.Location
			if rng.Intn(5) > 0 {
				l = locations[rng.Intn(len(locations))]
			}
			r := role(fmt.Sprintf("r-%d-%d", i, j), c, l, start, end)
			r = withSeniority(r, levels[rng.Intn(len(levels))])
			if rng.Intn(3) > 0 {
				r = withEsco(r, fmt.Sprintf("25%d%d.%d", rng.Intn(3), rng.Intn(3), rng.Intn(3)), 5, "developer")
			}
			roles = append(roles, r)
		}
		a := alumnus(fmt.Sprintf("a-%03d", i), fmt.Sprintf("Alumnus %03d", rng.Intn(1000)), roles...)
		if rng.Intn(2) == 0 {
			a = graduated(a, []*models.Course{leic, meic, lcc}[rng.Intn(3)], 2000+rng.Intn(25))
		}
		out = append(out, a)
	}
	return out
}
