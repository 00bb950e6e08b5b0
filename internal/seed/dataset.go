package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// Dataset is a self-consistent alumni population with every referenced entity
type Dataset struct {
	Faculties       []models.Faculty
	Courses         []models.Course
	Industries      []models.Industry
	Locations       []models.Location
	Companies       []models.Company
	Classifications []models.EscoClassification
	Alumni          []models.Alumni
}

type place struct {
	country, code, city string
	lat, lng            float64
}

var places = []place{
	{"Portugal", "PT", "Porto", 41.1579, -8.6291},
	{"Portugal", "PT", "Lisbon", 38.7223, -9.1393},
	{"Portugal", "PT", "Braga", 41.5454, -8.4265},
	{"Spain", "ES", "Madrid", 40.4168, -3.7038},
	{"Germany", "DE", "Berlin", 52.52, 13.405},
	{"Germany", "DE", "Munich", 48.1351, 11.582},
	{"Netherlands", "NL", "Amsterdam", 52.3676, 4.9041},
	{"United Kingdom", "GB", "London", 51.5072, -0.1276},
	{"United States", "US", "New York", 40.7128, -74.006},
	{"Switzerland", "CH", "Zurich", 47.3769, 8.5417},
}

var industryNames = []string{
	"Software Development",
	"IT Services and IT Consulting",
	"Financial Services",
	"Telecommunications",
	"Research Services",
	"Higher Education",
	"Automotive",
}

type companySeed struct {
	name     string
	industry int
	place    int
	size     models.CompanySize
	kind     models.CompanyType
}

var companySeeds = []companySeed{
	{"Northwind Labs", 0, 0, models.CompanySize51To200, models.CompanyTypePrivatelyHeld},
	{"Bluefin Systems", 0, 4, models.CompanySize501To1000, models.CompanyTypePrivatelyHeld},
	{"Atlas Consulting", 1, 1, models.CompanySize1001To5000, models.CompanyTypePartnership},
	{"Meridian Bank", 2, 7, models.CompanySize10001Plus, models.CompanyTypePublicCompany},
	{"Tagus Telecom", 3, 1, models.CompanySize5001To10000, models.CompanyTypePublicCompany},
	{"Institute for Systems Research", 4, 0, models.CompanySize201To500, models.CompanyTypeNonProfit},
	{"University of the North", 5, 0, models.CompanySize5001To10000, models.CompanyTypeEducational},
	{"Autoforge", 6, 5, models.CompanySize10001Plus, models.CompanyTypePublicCompany},
	{"Canal Cloud", 0, 6, models.CompanySize201To500, models.CompanyTypePrivatelyHeld},
	{"Hudson Analytics", 1, 8, models.CompanySize11To50, models.CompanyTypePrivatelyHeld},
	{"Alpine Payments", 2, 9, models.CompanySize501To1000, models.CompanyTypePrivatelyHeld},
	{"Meseta Software", 0, 3, models.CompanySize51To200, models.CompanyTypeSelfOwned},
}

// ESCO groups down to one occupation per leaf
var classificationSeeds = []models.EscoClassification{
	{Code: "2", TitleEn: "Professionals", Level: 1},
	{Code: "21", TitleEn: "Science and engineering professionals", Level: 2},
	{Code: "23", TitleEn: "Teaching professionals", Level: 2},
	{Code: "25", TitleEn: "Information and communications technology professionals", Level: 2},
	{Code: "214", TitleEn: "Engineering professionals (excluding electrotechnology)", Level: 3},
	{Code: "231", TitleEn: "University and higher education teachers", Level: 3},
	{Code: "251", TitleEn: "Software and applications developers and analysts", Level: 3},
	{Code: "252", TitleEn: "Database and network professionals", Level: 3},
	{Code: "2141", TitleEn: "Industrial and production engineers", Level: 4},
	{Code: "2310", TitleEn: "University and higher education teachers", Level: 4},
	{Code: "2511", TitleEn: "Systems analysts", Level: 4},
	{Code: "2512", TitleEn: "Software developers", Level: 4},
	{Code: "2521", TitleEn: "Database designers and administrators", Level: 4},
	{Code: "2141.1", TitleEn: "industrial engineer", Level: 5},
	{Code: "2310.1", TitleEn: "lecturer", Level: 5},
	{Code: "2511.1", TitleEn: "ICT business analyst", Level: 5},
	{Code: "2512.4", TitleEn: "software developer", Level: 5},
	{Code: "2512.4.1", TitleEn: "backend developer", Level: 6},
	{Code: "2521.2", TitleEn: "data warehouse designer", Level: 5},
}

var occupationCodes = []string{"2141.1", "2310.1", "2511.1", "2512.4", "2512.4.1", "2521.2"}

type courseSeed struct {
	faculty             int
	name, acronym       string
	startYear, duration int
}

var facultySeeds = []models.Faculty{
	{Name: "Faculty of Engineering", Acronym: "FEUP"},
	{Name: "Faculty of Sciences", Acronym: "FCUP"},
	{Name: "Faculty of Economics", Acronym: "FEP"},
}

var courseSeeds = []courseSeed{
	{0, "Informatics and Computing Engineering", "L.EIC", 1995, 5},
	{0, "Mechanical Engineering", "M.EM", 1980, 5},
	{0, "Electrical and Computer Engineering", "M.EEC", 1990, 5},
	{1, "Computer Science", "L.CC", 2000, 3},
	{1, "Mathematics", "L.M", 1985, 3},
	{2, "Economics", "L.EC", 1988, 3},
}

var firstNames = []string{"Ana", "Bruno", "Carla", "Diogo", "Eva", "Filipe", "Gabriela", "Hugo", "Inês", "João", "Leonor", "Miguel", "Nuno", "Rita", "Sofia", "Tiago"}
var lastNames = []string{"Silva", "Santos", "Ferreira", "Pereira", "Oliveira", "Costa", "Rodrigues", "Martins", "Sousa", "Fernandes", "Gomes", "Lopes"}

// Generate builds a deterministic dataset of n alumni relative to now. The
// same seed always yields the same ids and histories.
func Generate(n int, seed int64, now time.Time) Dataset {
	rng := rand.New(rand.NewSource(seed))
	newID := func() string {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			panic(fmt.Sprintf("seed: uuid from math/rand: %v", err))
		}
		return id.String()
	}

	ds := Dataset{Classifications: append([]models.EscoClassification(nil), classificationSeeds...)}
	for i := range ds.Classifications {
		url := "http://data.europa.eu/esco/isco/C" + ds.Classifications[i].Code
		ds.Classifications[i].EscoURL = &url
	}
	classByCode := make(map[string]models.EscoClassification, len(ds.Classifications))
	for _, c := range ds.Classifications {
		classByCode[c.Code] = c
	}

	for _, p := range places {
		ds.Locations = append(ds.Locations, models.Location{
			ID:          newID(),
			Country:     &p.country,
			CountryCode: &p.code,
			City:        &p.city,
			Latitude:    &p.lat,
			Longitude:   &p.lng,
		})
	}
	for _, name := range industryNames {
		ds.Industries = append(ds.Industries, models.Industry{ID: newID(), Name: name})
	}
	for _, cs := range companySeeds {
		size, kind := cs.size, cs.kind
		logo := fmt.Sprintf("https://logo.example.com/%s.png", slug(cs.name))
		ds.Companies = append(ds.Companies, models.Company{
			ID:       newID(),
			Name:     cs.name,
			Logo:     &logo,
			Size:     &size,
			Type:     &kind,
			Industry: &ds.Industries[cs.industry],
			Location: &ds.Locations[cs.place],
		})
	}
	for _, f := range facultySeeds {
		f.ID = newID()
		ds.Faculties = append(ds.Faculties, f)
	}
	for _, cs := range courseSeeds {
		ds.Courses = append(ds.Courses, models.Course{
			ID:        newID(),
			Name:      cs.name,
			Acronym:   cs.acronym,
			FacultyID: ds.Faculties[cs.faculty].ID,
			StartYear: cs.startYear,
			Faculty:   &ds.Faculties[cs.faculty],
		})
	}

	seniorities := models.SeniorityLevels
	ds.Alumni = make([]models.Alumni, 0, n)
	for i := 0; i < n; i++ {
		a := models.Alumni{
			ID:       newID(),
			FullName: firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
		}
		linkedin := "https://www.linkedin.com/in/" + slug(a.FullName) + "-" + a.ID[:8]
		a.LinkedinURL = &linkedin

		ci := rng.Intn(len(ds.Courses))
		course := &ds.Courses[ci]
		year := now.Year() - rng.Intn(30)
		a.Graduations = append(a.Graduations, models.Graduation{
			ID:             newID(),
			AlumniID:       a.ID,
			CourseID:       course.ID,
			ConclusionYear: year,
			Course:         course,
		})
		// some alumni go on to a second degree
		if rng.Intn(5) == 0 {
			next := &ds.Courses[(ci+1)%len(ds.Courses)]
			a.Graduations = append(a.Graduations, models.Graduation{
				ID:             newID(),
				AlumniID:       a.ID,
				CourseID:       next.ID,
				ConclusionYear: min(year+2, now.Year()),
				Course:         next,
			})
		}

		start := time.Date(year, time.Month(1+rng.Intn(12)), 1, 0, 0, 0, 0, time.UTC)
		roles := rng.Intn(4)
		for r := 0; r < roles && start.Before(now); r++ {
			company := &ds.Companies[rng.Intn(len(ds.Companies))]
			role := models.Role{
				ID:             newID(),
				AlumniID:       a.ID,
				StartDate:      start,
				SeniorityLevel: seniorities[min(r+rng.Intn(3), len(seniorities)-1)],
				Company:        company,
				Location:       company.Location,
			}
			// remote roles keep the company but not its location
			if rng.Intn(6) == 0 {
				role.Location = &ds.Locations[rng.Intn(len(ds.Locations))]
			}
			if r < roles-1 || rng.Intn(3) == 0 {
				end := start.AddDate(1+rng.Intn(4), rng.Intn(12), 0)
				if end.Before(now) {
					role.EndDate = &end
				}
			}
			role.IsCurrent = role.EndDate == nil

			code := occupationCodes[rng.Intn(len(occupationCodes))]
			confidence := 0.5 + rng.Float64()/2
			role.Classifications = []models.JobClassification{{
				RoleID:               role.ID,
				EscoClassificationID: code,
				Rank:                 1,
				Confidence:           &confidence,
				EscoClassification:   classByCode[code],
			}}

			a.Roles = append(a.Roles, role)
			if role.EndDate == nil {
				break
			}
			start = role.EndDate.AddDate(0, 1, 0)
		}
		ds.Alumni = append(ds.Alumni, a)
	}
	return ds
}

func slug(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+'a'-'A')
		case r == ' ' || r == '-':
			out = append(out, '-')
		}
	}
	return string(out)
}
