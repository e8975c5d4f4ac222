package calendar

import (
	"fmt"
	"time"
)

// PartialRangeType selects which bound a partial-range click commits.
type PartialRangeType string

const (
	// PartialRange behaves like a regular closed range.
	PartialRange PartialRangeType = "range"
	// PartialOnOrBefore commits only the end bound.
	PartialOnOrBefore PartialRangeType = "onOrBefore"
	// PartialOnOrAfter commits only the start bound.
	PartialOnOrAfter PartialRangeType = "onOrAfter"
)

// ParsePartialRangeType converts user input into a PartialRangeType.
func ParsePartialRangeType(raw string) (PartialRangeType, error) {
	switch PartialRangeType(raw) {
	case "", PartialRange:
		return PartialRange, nil
	case PartialOnOrBefore:
		return PartialOnOrBefore, nil
	case PartialOnOrAfter:
		return PartialOnOrAfter, nil
	default:
		return "", fmt.Errorf("unknown partial range type %q", raw)
	}
}

// ModeConfig carries the per-instance selection behaviour. Zero times mean
// "not set" for DisableBefore and DisableAfter.
type ModeConfig struct {
	AllowRangeSelection        bool
	AllowPartialRangeSelection bool
	PartialRangeSelectionType  PartialRangeType
	EnableDeselection          bool
	AllowedDateRangeDays       int
	DisableBefore              time.Time
	DisableAfter               time.Time
}

// partialBound reports the partial mode in effect, or PartialRange when
// clicks should build a closed range.
func (c ModeConfig) partialBound() PartialRangeType {
	if !c.AllowRangeSelection || !c.AllowPartialRangeSelection {
		return PartialRange
	}
	switch c.PartialRangeSelectionType {
	case PartialOnOrAfter, PartialOnOrBefore:
		return c.PartialRangeSelectionType
	default:
		return PartialRange
	}
}

// SelectionState is the committed selection. A zero time marks an unset bound.
// When both bounds are set Start is never after End.
type SelectionState struct {
	Start time.Time
	End   time.Time
}

// HasStart reports whether the start bound is set.
func (s SelectionState) HasStart() bool { return !s.Start.IsZero() }

// HasEnd reports whether the end bound is set.
func (s SelectionState) HasEnd() bool { return !s.End.IsZero() }

// IsEmpty reports whether neither bound is set.
func (s SelectionState) IsEmpty() bool { return !s.HasStart() && !s.HasEnd() }

// Equal compares two selections instant by instant.
func (s SelectionState) Equal(other SelectionState) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End)
}

// Normalize snaps set bounds onto their committed representation and
// restores Start <= End ordering.
func (s SelectionState) Normalize() SelectionState {
	out := SelectionState{}
	if s.HasStart() {
		out.Start = StartOfDay(s.Start)
	}
	if s.HasEnd() {
		out.End = EndOfDay(s.End)
	}
	if out.HasStart() && out.HasEnd() && out.Start.After(out.End) {
		out.Start, out.End = StartOfDay(out.End), EndOfDay(out.Start)
	}
	return out
}

// Contains reports whether day lies within a closed range selection.
func (s SelectionState) Contains(day time.Time) bool {
	if !s.HasStart() || !s.HasEnd() {
		return false
	}
	return DaysBetween(s.Start, day) >= 0 && DaysBetween(day, s.End) >= 0
}

// String renders the selection for logs and plain output.
func (s SelectionState) String() string {
	return fmt.Sprintf("%s..%s", formatBound(s.Start), formatBound(s.End))
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateLayout)
}

// DateLayout is the canonical calendar-day layout used across the engine.
const DateLayout = "2006-01-02"

// Day is a raw grid cell produced by BuildMonthGrid.
type Day struct {
	Date           time.Time
	IsCurrentMonth bool
}

// CalendarDate is the annotated, render-ready grid cell. IsInPreview marks
// the days between a lone bound and the focused day.
type CalendarDate struct {
	Date           time.Time
	IsCurrentMonth bool
	IsDisabled     bool
	IsSelected     bool
	IsInRange      bool
	IsInPreview    bool
	IsFocused      bool
	IsToday        bool
}

// DisplayState is the visible month and the keyboard cursor. A zero
// FocusedDate means no cursor.
type DisplayState struct {
	Year        int
	Month       time.Month
	FocusedDate time.Time
}

// FirstOfMonth returns midnight of the first day of the displayed month.
func (d DisplayState) FirstOfMonth(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, loc)
}

// Shows reports whether t lies in the displayed month.
func (d DisplayState) Shows(t time.Time) bool {
	return t.Year() == d.Year && t.Month() == d.Month
}
