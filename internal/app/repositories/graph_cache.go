package repositories

import "github.com/yigit/alumnisphere/internal/app/models"

func locationColumns(alias string) []string {
	return []string{
		alias + ".id",
		alias + ".country",
		alias + ".country_code",
		alias + ".city",
		alias + ".latitude",
		alias + ".longitude",
	}
}

// locationCols scans a LEFT JOINed location; a NULL id means no location
type locationCols struct {
	id, country, code, city *string
	lat, lng                *float64
}

func (c *locationCols) dest() []any {
	return []any{&c.id, &c.country, &c.code, &c.city, &c.lat, &c.lng}
}

func (c *locationCols) location() *models.Location {
	if c.id == nil {
		return nil
	}
	return &models.Location{
		ID:          *c.id,
		Country:     c.country,
		CountryCode: c.code,
		City:        c.city,
		Latitude:    c.lat,
		Longitude:   c.lng,
	}
}

// companyCols scans a LEFT JOINed company
type companyCols struct {
	id, name, logo, levelsFyi, size, kind *string
	founded                               *int
}

func (c *companyCols) dest() []any {
	return []any{&c.id, &c.name, &c.logo, &c.levelsFyi, &c.size, &c.kind, &c.founded}
}

// graphCache shares one instance per related entity across the loaded graph
type graphCache struct {
	locations  map[string]*models.Location
	industries map[string]*models.Industry
	companies  map[string]*models.Company
	faculties  map[string]*models.Faculty
	courses    map[string]*models.Course
}

func newGraphCache() *graphCache {
	return &graphCache{
		locations:  make(map[string]*models.Location),
		industries: make(map[string]*models.Industry),
		companies:  make(map[string]*models.Company),
		faculties:  make(map[string]*models.Faculty),
		courses:    make(map[string]*models.Course),
	}
}

func (g *graphCache) location(c locationCols) *models.Location {
	if c.id == nil {
		return nil
	}
	if l, ok := g.locations[*c.id]; ok {
		return l
	}
	l := c.location()
	g.locations[l.ID] = l
	return l
}

func (g *graphCache) industry(id, name string) *models.Industry {
	if ind, ok := g.industries[id]; ok {
		return ind
	}
	ind := &models.Industry{ID: id, Name: name}
	g.industries[id] = ind
	return ind
}

// company resolves the industry lazily so cached companies skip the lookup
func (g *graphCache) company(c companyCols, industry func() *models.Industry, hq *models.Location) *models.Company {
	if c.id == nil {
		return nil
	}
	if co, ok := g.companies[*c.id]; ok {
		return co
	}
	co := &models.Company{
		ID:           *c.id,
		Name:         deref(c.name),
		Logo:         c.logo,
		LevelsFyiURL: c.levelsFyi,
		Founded:      c.founded,
		Industry:     industry(),
		Location:     hq,
	}
	if c.size != nil {
		size := models.CompanySize(*c.size)
		co.Size = &size
	}
	if c.kind != nil {
		kind := models.CompanyType(*c.kind)
		co.Type = &kind
	}
	g.companies[co.ID] = co
	return co
}

func (g *graphCache) course(c models.Course, f models.Faculty) *models.Course {
	if cached, ok := g.courses[c.ID]; ok {
		return cached
	}
	fac, ok := g.faculties[f.ID]
	if !ok {
		fac = &f
		g.faculties[f.ID] = fac
	}
	c.Faculty = fac
	g.courses[c.ID] = &c
	return &c
}
