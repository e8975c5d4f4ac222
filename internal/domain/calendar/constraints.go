package calendar

import "time"

// IsDisabled reports whether candidate may not be clicked given the current
// selection and mode. Rules are checked in order and the first match wins:
//
//  1. before DisableBefore
//  2. after DisableAfter
//  3. one bound set: outside AllowedDateRangeDays-1 days either side of it
//  4. both bounds set: outside both the forward window from Start and the
//     backward window from End
func IsDisabled(candidate time.Time, selection SelectionState, cfg ModeConfig) bool {
	if !cfg.DisableBefore.IsZero() && DaysBetween(cfg.DisableBefore, candidate) < 0 {
		return true
	}
	if !cfg.DisableAfter.IsZero() && DaysBetween(cfg.DisableAfter, candidate) > 0 {
		return true
	}
	if cfg.AllowedDateRangeDays <= 0 {
		return false
	}

	span := cfg.AllowedDateRangeDays - 1
	switch {
	case selection.HasStart() && selection.HasEnd():
		return !withinWindow(candidate, selection.Start, 0, span) &&
			!withinWindow(candidate, selection.End, -span, 0)
	case selection.HasStart():
		return !withinWindow(candidate, selection.Start, -span, span)
	case selection.HasEnd():
		return !withinWindow(candidate, selection.End, -span, span)
	default:
		return false
	}
}

// withinWindow reports whether candidate lies in [anchor+from, anchor+to]
// measured in calendar days.
func withinWindow(candidate, anchor time.Time, from, to int) bool {
	offset := DaysBetween(anchor, candidate)
	return offset >= from && offset <= to
}
