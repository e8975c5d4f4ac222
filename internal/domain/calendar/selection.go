package calendar

import "time"

// Select returns the selection that results from clicking day. Callers must
// drop clicks on disabled days before calling; every other input yields a
// valid, ordered selection.
func Select(day time.Time, current SelectionState, cfg ModeConfig) SelectionState {
	current = current.Normalize()

	if cfg.EnableDeselection {
		if current.HasStart() && SameDay(day, current.Start) {
			return SelectionState{End: current.End}
		}
		if current.HasEnd() && SameDay(day, current.End) {
			return SelectionState{Start: current.Start}
		}
	}

	switch cfg.partialBound() {
	case PartialOnOrAfter:
		return SelectionState{Start: StartOfDay(day)}
	case PartialOnOrBefore:
		return SelectionState{End: EndOfDay(day)}
	}

	if !cfg.AllowRangeSelection {
		return selectSingle(day, current)
	}
	return selectRange(day, current)
}

// selectSingle always replaces the start and never keeps an end bound.
func selectSingle(day time.Time, current SelectionState) SelectionState {
	if current.HasStart() && SameDay(day, current.Start) && !current.HasEnd() {
		return current
	}
	return SelectionState{Start: StartOfDay(day)}
}

// selectRange extends a range. With only a start set, a later day commits the
// end and an earlier one swaps. With both set, any later day moves the end
// (shrinking or extending) and an earlier day becomes the start with the old
// start as end.
func selectRange(day time.Time, current SelectionState) SelectionState {
	if !current.HasStart() {
		// An end left behind by deselecting the start is kept, reordered if needed.
		return SelectionState{Start: day, End: current.End}.Normalize()
	}

	offset := DaysBetween(current.Start, day)
	switch {
	case offset > 0:
		return SelectionState{Start: current.Start, End: EndOfDay(day)}
	case offset < 0:
		return SelectionState{Start: StartOfDay(day), End: EndOfDay(current.Start)}
	default:
		return current
	}
}

// InPreview reports whether day falls between the single committed bound
// and the focused day, inclusive. Only closed-range modes preview, and a
// disabled focus shows nothing.
func InPreview(day, focused time.Time, sel SelectionState, cfg ModeConfig) bool {
	if !cfg.AllowRangeSelection || cfg.partialBound() != PartialRange {
		return false
	}
	if focused.IsZero() || sel.HasStart() == sel.HasEnd() {
		return false
	}
	if IsDisabled(focused, sel, cfg) {
		return false
	}

	anchor := sel.Start
	if !sel.HasStart() {
		anchor = sel.End
	}
	lo, hi := anchor, focused
	if DaysBetween(lo, hi) < 0 {
		lo, hi = hi, lo
	}
	return DaysBetween(lo, day) >= 0 && DaysBetween(day, hi) >= 0
}
