package week

import (
	"testing"
	"time"

	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartDate(t *testing.T) {
	cases := []struct {
		name string
		week int
		year int
		want time.Time
	}{
		// 2025-01-04 is a Saturday, so week 1 of 2025 starts in December 2024.
		{"week 1 of 2025 starts in previous year", 1, 2025, date(2024, time.December, 30)},
		{"week 2 of 2025", 2, 2025, date(2025, time.January, 6)},
		{"week 1 of 2024", 1, 2024, date(2024, time.January, 1)},
		{"week 53 of 2020", 53, 2020, date(2020, time.December, 28)},
		{"week 1 of 2026", 1, 2026, date(2025, time.December, 29)},
		{"mid-year week", 27, 2025, date(2025, time.June, 30)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := StartDate(c.week, c.year)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestStartDateInvalidArguments(t *testing.T) {
	cases := []struct {
		name  string
		week  int
		year  int
		field string
	}{
		{"year below 2000", 1, 1999, "year"},
		{"week zero", 0, 2025, "week_number"},
		{"week 54", 54, 2025, "week_number"},
		{"negative week", -3, 2025, "week_number"},
		{"week 53 of a 52-week year", 53, 2023, "week_number"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := StartDate(c.week, c.year)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}

func TestEndDate(t *testing.T) {
	start, err := StartDate(2, 2025)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.January, 12), EndDate(start))
	assert.Equal(t, time.Sunday, EndDate(start).Weekday())
}

func TestOf(t *testing.T) {
	year, wk := Of(date(2025, time.January, 6))
	assert.Equal(t, 2025, year)
	assert.Equal(t, 2, wk)

	// December 29 2025 already belongs to week 1 of 2026.
	year, wk = Of(date(2025, time.December, 29))
	assert.Equal(t, 2026, year)
	assert.Equal(t, 1, wk)

	year, wk = Of(date(2021, time.January, 1))
	assert.Equal(t, 2020, year)
	assert.Equal(t, 53, wk)
}

// Any date must fall within the week it maps to.
func TestStartDateOfRoundTrip(t *testing.T) {
	d := date(2023, time.January, 1)
	for i := 0; i < 1100; i++ {
		year, wk := Of(d)
		start, err := StartDate(wk, year)
		require.NoError(t, err)

		assert.False(t, d.Before(start), "date %s before week start %s", d, start)
		assert.True(t, d.Before(start.AddDate(0, 0, 7)), "date %s past week end %s", d, start)

		d = d.AddDate(0, 0, 1)
	}
}
