package period_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var allGranularities = []domain.Granularity{domain.Week, domain.Month, domain.Semester, domain.Year, domain.All}

func TestResolve_StartNotAfterEnd(t *testing.T) {
	anchor := date(2023, time.January, 1)
	for i := 0; i < 800; i++ {
		d := anchor.AddDate(0, 0, i)
		for _, g := range allGranularities {
			r, err := period.Resolve(d, g)
			require.NoError(t, err)
			assert.False(t, r.Start.After(r.End), "%s %s", d.Format(time.DateOnly), g)
			assert.True(t, period.Contains(r, d), "anchor must lie in its own range: %s %s", d.Format(time.DateOnly), g)
		}
	}
}

func TestResolve_MonthEnd(t *testing.T) {
	tests := []struct {
		name    string
		anchor  time.Time
		wantEnd time.Time
	}{
		{"leap february", date(2024, time.February, 10), date(2024, time.February, 29)},
		{"non-leap february", date(2023, time.February, 10), date(2023, time.February, 28)},
		{"january 31", date(2024, time.January, 31), date(2024, time.January, 31)},
		{"april", date(2024, time.April, 1), date(2024, time.April, 30)},
		{"december", date(2024, time.December, 15), date(2024, time.December, 31)},
		{"century non-leap", date(2100, time.February, 1), date(2100, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := period.Resolve(tt.anchor, domain.Month)
			require.NoError(t, err)
			assert.Equal(t, 1, r.Start.Day())
			assert.Equal(t, tt.anchor.Month(), r.Start.Month())
			assert.Equal(t, tt.wantEnd.Format(time.DateOnly), r.End.Format(time.DateOnly))
			assert.Equal(t, 23, r.End.Hour())
			assert.Equal(t, 59, r.End.Minute())
			assert.Equal(t, 59, r.End.Second())
		})
	}
}

func TestStep_MonthFromJanuary31LandsInFebruary(t *testing.T) {
	next := period.Step(date(2024, time.January, 31), domain.Month, period.Next)
	assert.Equal(t, time.February, next.Month())
	assert.Equal(t, 29, next.Day())

	next = period.Step(date(2023, time.January, 31), domain.Month, period.Next)
	assert.Equal(t, time.February, next.Month())
	assert.Equal(t, 28, next.Day())

	r, err := period.Resolve(next, domain.Month)
	require.NoError(t, err)
	assert.Equal(t, "2023-02-28", r.End.Format(time.DateOnly))
}

func TestResolve_WeekSpansSevenDaysFromSunday(t *testing.T) {
	anchor := date(2024, time.December, 20)
	for i := 0; i < 60; i++ {
		d := anchor.AddDate(0, 0, i)
		r, err := period.Resolve(d, domain.Week)
		require.NoError(t, err)
		assert.Equal(t, time.Sunday, r.Start.Weekday())
		assert.Equal(t, time.Saturday, r.End.Weekday())
		assert.Equal(t, 6, int(r.End.Sub(r.Start).Hours()/24))
		assert.Equal(t, r.Start.AddDate(0, 0, 6).Format(time.DateOnly), r.End.Format(time.DateOnly))
	}
}

func TestResolve_Semester(t *testing.T) {
	r, err := period.Resolve(date(2024, time.June, 30), domain.Semester)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", r.Start.Format(time.DateOnly))
	assert.Equal(t, "2024-06-30", r.End.Format(time.DateOnly))

	r, err = period.Resolve(date(2024, time.July, 1), domain.Semester)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-01", r.Start.Format(time.DateOnly))
	assert.Equal(t, "2024-12-31", r.End.Format(time.DateOnly))
}

func TestResolve_YearAndAll(t *testing.T) {
	r, err := period.Resolve(date(2023, time.May, 5), domain.Year)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01", r.Start.Format(time.DateOnly))
	assert.Equal(t, "2023-12-31", r.End.Format(time.DateOnly))

	r, err = period.Resolve(date(2023, time.May, 5), domain.All)
	require.NoError(t, err)
	assert.True(t, period.Contains(r, date(1950, time.March, 1)))
	assert.True(t, period.Contains(r, date(2200, time.March, 1)))
}

func TestResolve_UnknownGranularity(t *testing.T) {
	_, err := period.Resolve(date(2023, time.May, 5), "DECADE")
	assert.ErrorIs(t, err, period.ErrUnknownGranularity)
}

func TestStep(t *testing.T) {
	anchor := date(2024, time.August, 31)
	tests := []struct {
		g    domain.Granularity
		dir  period.Direction
		want string
	}{
		{domain.Week, period.Next, "2024-09-07"},
		{domain.Week, period.Prev, "2024-08-24"},
		{domain.Month, period.Next, "2024-09-30"},
		{domain.Month, period.Prev, "2024-07-31"},
		{domain.Semester, period.Next, "2025-02-28"},
		{domain.Semester, period.Prev, "2024-02-29"},
		{domain.Year, period.Next, "2025-08-31"},
		{domain.All, period.Next, "2024-08-31"},
	}
	for _, tt := range tests {
		t.Run(string(tt.g), func(t *testing.T) {
			assert.Equal(t, tt.want, period.Step(anchor, tt.g, tt.dir).Format(time.DateOnly))
		})
	}

	assert.Equal(t, "2025-02-28", period.Step(date(2024, time.February, 29), domain.Year, period.Next).Format(time.DateOnly))
}

func TestAddMonths_NegativeAcrossYears(t *testing.T) {
	assert.Equal(t, "2023-11-30", period.AddMonths(date(2024, time.January, 30), -2).Format(time.DateOnly))
	assert.Equal(t, "2022-12-31", period.AddMonths(date(2024, time.December, 31), -24).Format(time.DateOnly))
	assert.Equal(t, "2025-03-31", period.AddMonths(date(2024, time.March, 31), 12).Format(time.DateOnly))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Jan 7 – Jan 13, 2024", period.Label(date(2024, time.January, 10), domain.Week))
	assert.Equal(t, "Dec 31, 2023 – Jan 6, 2024", period.Label(date(2024, time.January, 2), domain.Week))
	assert.Equal(t, "February 2024", period.Label(date(2024, time.February, 10), domain.Month))
	assert.Equal(t, "1st half of 2024", period.Label(date(2024, time.June, 30), domain.Semester))
	assert.Equal(t, "2nd half of 2024", period.Label(date(2024, time.July, 1), domain.Semester))
	assert.Equal(t, "2024", period.Label(date(2024, time.July, 1), domain.Year))
	assert.Equal(t, "All time", period.Label(date(2024, time.July, 1), domain.All))
}

func TestContains_LastDayOfRangeIsIncluded(t *testing.T) {
	r, err := period.Resolve(date(2024, time.February, 10), domain.Month)
	require.NoError(t, err)

	assert.True(t, period.Contains(r, date(2024, time.February, 29)))
	assert.True(t, period.Contains(r, time.Date(2024, time.February, 29, 23, 59, 59, 999, time.UTC)))
	assert.True(t, period.Contains(r, date(2024, time.February, 1)))
	assert.False(t, period.Contains(r, date(2024, time.March, 1)))
	assert.False(t, period.Contains(r, date(2024, time.January, 31)))
}

func TestParseGranularity(t *testing.T) {
	g, err := period.ParseGranularity(" semester ")
	require.NoError(t, err)
	assert.Equal(t, domain.Semester, g)

	_, err = period.ParseGranularity("fortnight")
	assert.ErrorIs(t, err, period.ErrUnknownGranularity)
}

func TestCursor_Navigation(t *testing.T) {
	c := period.NewCursor(date(2024, time.January, 31), domain.Month)

	next := c.Next()
	assert.Equal(t, "February 2024", next.Label())
	r, err := next.Range()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", r.End.Format(time.DateOnly))

	assert.Equal(t, "December 2023", c.Prev().Label())
	assert.Equal(t, c.Anchor, c.Next().Prev().Anchor.AddDate(0, 0, 2), "clamping is not reversible")
}
