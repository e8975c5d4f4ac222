package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGridShapeForEveryMonth(t *testing.T) {
	t.Parallel()

	for _, weekStart := range []time.Weekday{time.Sunday, time.Monday} {
		for year := 2020; year <= 2030; year++ {
			for month := time.January; month <= time.December; month++ {
				weeks := BuildMonthGrid(year, month, weekStart, time.UTC)

				require.GreaterOrEqual(t, len(weeks), 4, "%d-%02d", year, month)
				require.LessOrEqual(t, len(weeks), 6, "%d-%02d", year, month)

				inMonth := 0
				var prev time.Time
				for _, week := range weeks {
					require.Len(t, week, 7)
					require.Equal(t, weekStart, week[0].Date.Weekday())
					for _, day := range week {
						if !prev.IsZero() {
							require.Equal(t, 1, DaysBetween(prev, day.Date))
						}
						prev = day.Date

						want := day.Date.Year() == year && day.Date.Month() == month
						require.Equal(t, want, day.IsCurrentMonth)
						if day.IsCurrentMonth {
							inMonth++
						}
					}
				}
				require.Equal(t, DaysIn(year, month), inMonth, "%d-%02d", year, month)

				last := weeks[len(weeks)-1]
				hasCurrent := false
				for _, day := range last {
					hasCurrent = hasCurrent || day.IsCurrentMonth
				}
				require.True(t, hasCurrent, "trailing week must contain a day of the month")
			}
		}
	}
}

func TestBuildMonthGridMarch2024(t *testing.T) {
	t.Parallel()

	weeks := BuildMonthGrid(2024, time.March, time.Sunday, time.UTC)
	require.Len(t, weeks, 6)

	assert.Equal(t, "2024-02-25", weeks[0][0].Date.Format(DateLayout))
	assert.False(t, weeks[0][0].IsCurrentMonth)
	assert.Equal(t, "2024-03-01", weeks[0][5].Date.Format(DateLayout))
	assert.True(t, weeks[0][5].IsCurrentMonth)
	assert.Equal(t, "2024-04-06", weeks[5][6].Date.Format(DateLayout))
}

func TestBuildMonthGridDropsEmptyTrailingWeek(t *testing.T) {
	t.Parallel()

	// February 2015 starts on a Sunday and has 28 days: exactly four weeks.
	weeks := BuildMonthGrid(2015, time.February, time.Sunday, time.UTC)
	require.Len(t, weeks, 4)
	assert.Equal(t, "2015-02-28", weeks[3][6].Date.Format(DateLayout))
}

func TestBuildMonthGridMondayStart(t *testing.T) {
	t.Parallel()

	weeks := BuildMonthGrid(2024, time.September, time.Monday, time.UTC)
	assert.Equal(t, "2024-08-26", weeks[0][0].Date.Format(DateLayout))
	assert.Equal(t, "2024-09-01", weeks[0][6].Date.Format(DateLayout))
}
