package config

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
)

// ModeConfig converts the mode section into the engine's ModeConfig. Dates
// are interpreted as local calendar days in loc.
func (c *Config) ModeConfig(loc *time.Location) (calendar.ModeConfig, error) {
	partial, err := calendar.ParsePartialRangeType(c.Mode.PartialType)
	if err != nil {
		return calendar.ModeConfig{}, err
	}
	before, err := optionalDay(c.Mode.DisableBefore, loc)
	if err != nil {
		return calendar.ModeConfig{}, fmt.Errorf("mode.disable_before: %w", err)
	}
	after, err := optionalDay(c.Mode.DisableAfter, loc)
	if err != nil {
		return calendar.ModeConfig{}, fmt.Errorf("mode.disable_after: %w", err)
	}

	return calendar.ModeConfig{
		AllowRangeSelection:        c.Mode.Range,
		AllowPartialRangeSelection: c.Mode.Partial,
		PartialRangeSelectionType:  partial,
		EnableDeselection:          c.Mode.Deselect,
		AllowedDateRangeDays:       c.Mode.AllowedRangeDays,
		DisableBefore:              before,
		DisableAfter:               after,
	}, nil
}

// InitialSelection converts the selection section into a SelectionState.
func (c *Config) InitialSelection(loc *time.Location) (calendar.SelectionState, error) {
	start, err := optionalDay(c.Selection.Start, loc)
	if err != nil {
		return calendar.SelectionState{}, fmt.Errorf("selection.start: %w", err)
	}
	end, err := optionalDay(c.Selection.End, loc)
	if err != nil {
		return calendar.SelectionState{}, fmt.Errorf("selection.end: %w", err)
	}
	return calendar.SelectionState{Start: start, End: end}.Normalize(), nil
}

// DefaultDisplayDate returns the configured default month seed, or the zero
// time when none is set.
func (c *Config) DefaultDisplayDate(loc *time.Location) (time.Time, error) {
	return optionalDay(c.Display.DefaultDate, loc)
}

// WeekStart returns the first weekday of grid rows.
func (c *Config) WeekStart() time.Weekday {
	day, ok := ParseWeekday(c.Display.WeekStart)
	if !ok {
		return time.Sunday
	}
	return day
}

// YearBounds returns the year picker range, defaulting to a century either
// side of now.
func (c *Config) YearBounds(now time.Time) (int, int) {
	start, end := c.Display.StartYear, c.Display.EndYear
	if start == 0 {
		start = now.Year() + defaultStartYearOffset
	}
	if end == 0 {
		end = now.Year() + defaultEndYearOffset
	}
	return start, end
}

func optionalDay(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, raw, loc)
}
