package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		in   string
		want Selector
		err  error
	}{
		{"", SelectorAll, nil},
		{"ALL", SelectorAll, nil},
		{"geo", SelectorGeo, nil},
		{" Education ", SelectorEducation, nil},
		{"COMPANIES", "", apperrors.ErrUnknownSelector},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSelector(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectorFromPath(t *testing.T) {
	sel, err := SelectorFromPath("companies")
	require.NoError(t, err)
	assert.Equal(t, SelectorCompany, sel)

	sel, err = SelectorFromPath("Industries")
	require.NoError(t, err)
	assert.Equal(t, SelectorIndustry, sel)

	_, err = SelectorFromPath("company")
	assert.ErrorIs(t, err, apperrors.ErrUnknownDimension)
}

func TestSelector_Dimensions(t *testing.T) {
	dims, err := SelectorGeo.Dimensions()
	require.NoError(t, err)
	assert.Equal(t, []Dimension{DimensionCountry, DimensionCity}, dims)

	dims, err = SelectorAll.Dimensions()
	require.NoError(t, err)
	assert.Equal(t, AllDimensions, dims)

	_, err = Selector("NOPE").Dimensions()
	assert.ErrorIs(t, err, apperrors.ErrUnknownSelector)
}
