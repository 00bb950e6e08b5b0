package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

func TestHumanizeMonths(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "0 years"},
		{-3, "0 years"},
		{1, "1 month"},
		{5, "5 months"},
		{12, "1 year"},
		{24, "2 years"},
		{13, "1 year and 1 month"},
		{26, "2 years and 2 months"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanizeMonths(tt.months), "months=%d", tt.months)
	}
}

func TestFullMonths(t *testing.T) {
	assert.Equal(t, 2, fullMonths(date(2020, time.January, 15), date(2020, time.March, 15)))
	assert.Equal(t, 0, fullMonths(date(2020, time.January, 31), date(2020, time.February, 29)))
	assert.Equal(t, 0, fullMonths(date(2021, time.January, 1), date(2020, time.January, 1)))
}

func TestCompanySizeLabel(t *testing.T) {
	assert.Equal(t, "", CompanySizeLabel(nil))
	assert.Equal(t, "1,001-5,000 employees", CompanySizeLabel(ptr(models.CompanySize1001To5000)))
	assert.Equal(t, "Not specified", CompanySizeLabel(ptr(models.CompanySizeUnspecified)))
}

func TestCompanyInsights(t *testing.T) {
	t.Run("past employees only", func(t *testing.T) {
		got, err := CompanyInsights(context.Background(), scenarioAlumni(), companyX.ID, testNow)
		require.NoError(t, err)

		assert.Equal(t, "Company X", got.Name)
		assert.Equal(t, "Software Development", got.Industry)
		assert.Equal(t, "Porto, Portugal", got.Headquarters)
		assert.Equal(t, 2, got.AlumniCount)
		assert.Equal(t, 0, got.CurrentAlumniCount)
		// 40 and 34 months
		assert.Equal(t, "3 years and 1 month", got.AverageYearsInCompany)
		assert.Zero(t, got.AverageYearsOfCareer)
	})

	t.Run("current employee career spans earlier roles", func(t *testing.T) {
		got, err := CompanyInsights(context.Background(), scenarioAlumni(), companyY.ID, testNow)
		require.NoError(t, err)

		assert.Equal(t, 1, got.AlumniCount)
		assert.Equal(t, 1, got.CurrentAlumniCount)
		assert.Equal(t, "5 years and 1 month", got.AverageYearsInCompany)
		// first role started September 2016
		assert.Equal(t, 8, got.AverageYearsOfCareer)
	})

	t.Run("company details", func(t *testing.T) {
		c := company("company-s", "Sized", nil, nil)
		c.Size = ptr(models.CompanySize51To200)
		c.Type = ptr(models.CompanyTypePrivatelyHeld)
		c.Founded = ptr(1998)
		alumni := []models.Alumni{
			alumnus("a1", "Ana Silva", role("r1", c, nil, date(2024, time.March, 1), nil)),
		}

		got, err := CompanyInsights(context.Background(), alumni, c.ID, testNow)
		require.NoError(t, err)
		assert.Equal(t, "51-200 employees", got.CompanySize)
		assert.Equal(t, "PRIVATELY_HELD", got.CompanyType)
		assert.Equal(t, ptr(1998), got.Founded)
		assert.Empty(t, got.Headquarters)
		assert.Equal(t, "1 year", got.AverageYearsInCompany)
		assert.Equal(t, 1, got.AverageYearsOfCareer)
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := CompanyInsights(context.Background(), scenarioAlumni(), "company-missing", testNow)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}
