package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRole_ActiveAt(t *testing.T) {
	end := day(2020, time.December, 31)
	ended := Role{StartDate: day(2018, time.March, 1), EndDate: &end}
	ongoing := Role{StartDate: day(2021, time.January, 1)}

	tests := []struct {
		name string
		role Role
		at   time.Time
		want bool
	}{
		{"before start", ended, day(2018, time.February, 28), false},
		{"on start", ended, day(2018, time.March, 1), true},
		{"inside", ended, day(2019, time.June, 1), true},
		{"on end", ended, end, true},
		{"after end", ended, day(2021, time.January, 1), false},
		{"ongoing after start", ongoing, day(2030, time.January, 1), true},
		{"ongoing before start", ongoing, day(2020, time.December, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.ActiveAt(tt.at))
		})
	}
}

func TestRole_EffectiveEndAndPrimary(t *testing.T) {
	now := day(2025, time.June, 1)
	r := Role{
		StartDate: day(2020, time.January, 1),
		Classifications: []JobClassification{
			{EscoClassificationID: "2511", Rank: 2},
			{EscoClassificationID: "2512", Rank: 1},
		},
	}
	assert.Equal(t, now, r.EffectiveEnd(now))
	assert.Equal(t, "2512", r.PrimaryClassification().EscoClassificationID)

	r.Classifications = nil
	assert.Nil(t, r.PrimaryClassification())
}
