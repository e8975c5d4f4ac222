package calendar

import "time"

const (
	daysPerWeek  = 7
	maxGridWeeks = 6
)

// BuildMonthGrid lays out the weeks covering the given month. The grid starts
// on the week containing the first of the month and spans up to six weeks;
// trailing weeks without a day of the month are dropped. No constraints or
// selection are applied here.
func BuildMonthGrid(year int, month time.Month, weekStart time.Weekday, loc *time.Location) [][]Day {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	cursor := StartOfWeek(first, weekStart)

	weeks := make([][]Day, 0, maxGridWeeks)
	for w := 0; w < maxGridWeeks; w++ {
		week := make([]Day, 0, daysPerWeek)
		inMonth := false
		for d := 0; d < daysPerWeek; d++ {
			current := cursor.Year() == year && cursor.Month() == month
			inMonth = inMonth || current
			week = append(week, Day{Date: cursor, IsCurrentMonth: current})
			cursor = AddDays(cursor, 1)
		}
		if !inMonth {
			break
		}
		weeks = append(weeks, week)
	}
	return weeks
}
