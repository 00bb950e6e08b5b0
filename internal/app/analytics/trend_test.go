package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/models"
)

func atCompany(id string) RoleMatcher {
	return func(_ *models.Alumni, r *models.Role) bool {
		return r.Company != nil && r.Company.ID == id
	}
}

func TestTrendGenerator_Buckets(t *testing.T) {
	monthly := TrendGenerator{HorizonYears: 30, Granularity: GranularityMonthly}
	buckets := monthly.Buckets(testNow)

	require.Len(t, buckets, 30*12+1)
	assert.Equal(t, date(1995, time.March, 1), buckets[0])
	assert.Equal(t, date(2025, time.March, 1), buckets[len(buckets)-1])

	yearly := TrendGenerator{HorizonYears: 30, Granularity: GranularityYearly}
	buckets = yearly.Buckets(testNow)
	require.Len(t, buckets, 31)
	assert.Equal(t, date(1995, time.January, 1), buckets[0])
	assert.Equal(t, date(2025, time.January, 1), buckets[30])
}

func TestTrendGenerator_BucketCountProperty(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("one bucket per month or year of the horizon, no gaps", prop.ForAll(
		func(offsetHours int64, horizon int, yearly bool) bool {
			now := date(2000, time.January, 1).Add(time.Duration(offsetHours) * time.Hour)
			g := TrendGenerator{HorizonYears: horizon, Granularity: GranularityMonthly}
			want := horizon*12 + 1
			if yearly {
				g.Granularity = GranularityYearly
				want = horizon + 1
			}

			buckets := g.Buckets(now)
			if len(buckets) != want {
				return false
			}
			for i := 1; i < len(buckets); i++ {
				next := buckets[i-1].AddDate(0, 1, 0)
				if yearly {
					next = buckets[i-1].AddDate(1, 0, 0)
				}
				if !buckets[i].Equal(next) {
					return false
				}
			}
			return true
		},
		gen.Int64Range(0, 24*365*40),
		gen.IntRange(1, 40),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestTrendGenerator_RolesPointInTime(t *testing.T) {
	alumni := []models.Alumni{
		alumnus("a1", "Ana", role("r1", companyX, portugal, date(2020, time.January, 1), ptr(date(2020, time.June, 1)))),
	}
	g := TrendGenerator{HorizonYears: 30, Granularity: GranularityMonthly}

	points, err := g.Roles(context.Background(), alumni, atCompany(companyX.ID), testNow)
	require.NoError(t, err)
	require.Len(t, points, 361)

	for _, p := range points {
		want := 0
		if p.Label >= "2020-01" && p.Label <= "2020-06" {
			want = 1
		}
		assert.Equal(t, want, p.Value, p.Label)
	}
}

func TestTrendGenerator_OngoingRoleStartedBeforeHorizon(t *testing.T) {
	alumni := []models.Alumni{
		alumnus("a1", "Ana", role("r1", companyX, portugal, date(1980, time.May, 1), nil)),
	}
	g := TrendGenerator{HorizonYears: 30, Granularity: GranularityYearly}

	points, err := g.Roles(context.Background(), alumni, atCompany(companyX.ID), testNow)
	require.NoError(t, err)
	for _, p := range points {
		assert.Equal(t, 1, p.Value, p.Label)
	}
	assert.Equal(t, "1995", points[0].Label)
	assert.Equal(t, "2025", points[len(points)-1].Label)
}

func TestTrendGenerator_CountsRolesNotAlumni(t *testing.T) {
	alumni := []models.Alumni{
		alumnus("a1", "Ana",
			role("r1", companyX, portugal, date(2010, time.January, 1), nil),
			role("r2", companyX, lisbon, date(2012, time.January, 1), nil),
		),
	}
	g := TrendGenerator{HorizonYears: 30, Granularity: GranularityYearly}

	points, err := g.Roles(context.Background(), alumni, atCompany(companyX.ID), testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, points[len(points)-15].Value) // 2011
	assert.Equal(t, 2, points[len(points)-1].Value)
}

func TestTrendGenerator_Graduations(t *testing.T) {
	alumni := []models.Alumni{
		graduated(alumnus("a1", "Ana"), leic, 2019),
		graduated(alumnus("a2", "Bruno"), leic, 2019),
		graduated(alumnus("a3", "Carla"), meic, 2019),
		graduated(alumnus("a4", "Duarte"), leic, 2021),
	}
	g := TrendGenerator{HorizonYears: 30, Granularity: GranularityYearly}

	points, err := g.Graduations(context.Background(), alumni, func(gr *models.Graduation) bool {
		return gr.CourseID == leic.ID
	}, testNow)
	require.NoError(t, err)

	byLabel := map[string]int{}
	for _, p := range points {
		byLabel[p.Label] = p.Value
	}
	assert.Equal(t, 2, byLabel["2019"])
	assert.Equal(t, 0, byLabel["2020"])
	assert.Equal(t, 1, byLabel["2021"])
}

func TestTrendGenerator_StopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := TrendGenerator{HorizonYears: 30}
	_, err := g.Roles(ctx, scenarioAlumni(), atCompany(companyX.ID), testNow)
	assert.ErrorIs(t, err, context.Canceled)
}
