package calendar

import (
	"time"

	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
)

// state is everything a controller owns. It is replaced wholesale on every
// accepted interaction and never mutated in place.
type state struct {
	display   calendar.DisplayState
	selection calendar.SelectionState
}

type actionKind int

const (
	actionShowDate actionKind = iota
	actionShowMonth
	actionFocus
	actionClick
	actionReplaceSelection
	actionClearSelection
)

// action is a single input to reduce.
type action struct {
	kind      actionKind
	date      time.Time
	selection calendar.SelectionState
}

// reduce is the pure transition function behind the controller.
func reduce(s state, a action, cfg calendar.ModeConfig) state {
	switch a.kind {
	case actionShowDate:
		focus := calendar.StartOfDay(a.date)
		s.display = calendar.DisplayState{Year: focus.Year(), Month: focus.Month(), FocusedDate: focus}
	case actionShowMonth:
		s.display.Year = a.date.Year()
		s.display.Month = a.date.Month()
	case actionFocus:
		s.display.FocusedDate = calendar.StartOfDay(a.date)
	case actionClick:
		s.selection = calendar.Select(a.date, s.selection, cfg)
		s.display.FocusedDate = calendar.StartOfDay(a.date)
	case actionReplaceSelection:
		s.selection = a.selection.Normalize()
	case actionClearSelection:
		s.selection = calendar.SelectionState{}
	}
	return s
}

// gridKey captures every input of the annotated grid. Days are compared by
// calendar day so equal keys always render identical grids.
type gridKey struct {
	year    int
	month   time.Month
	focused string
	start   string
	end     string
	today   string
}

func keyFor(s state, today time.Time) gridKey {
	return gridKey{
		year:    s.display.Year,
		month:   s.display.Month,
		focused: dayKey(s.display.FocusedDate),
		start:   dayKey(s.selection.Start),
		end:     dayKey(s.selection.End),
		today:   dayKey(today),
	}
}

func dayKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(calendar.DateLayout)
}

// annotate applies constraints and selection to the raw grid.
func annotate(weeks [][]calendar.Day, s state, cfg calendar.ModeConfig, today time.Time) [][]calendar.CalendarDate {
	out := make([][]calendar.CalendarDate, len(weeks))
	for i, week := range weeks {
		row := make([]calendar.CalendarDate, len(week))
		for j, d := range week {
			row[j] = calendar.CalendarDate{
				Date:           d.Date,
				IsCurrentMonth: d.IsCurrentMonth,
				IsDisabled:     calendar.IsDisabled(d.Date, s.selection, cfg),
				IsSelected:     isBound(d.Date, s.selection),
				IsInRange:      s.selection.Contains(d.Date),
				IsInPreview:    calendar.InPreview(d.Date, s.display.FocusedDate, s.selection, cfg),
				IsFocused:      !s.display.FocusedDate.IsZero() && calendar.SameDay(d.Date, s.display.FocusedDate),
				IsToday:        !today.IsZero() && calendar.SameDay(d.Date, today),
			}
		}
		out[i] = row
	}
	return out
}

func isBound(day time.Time, sel calendar.SelectionState) bool {
	return (sel.HasStart() && calendar.SameDay(day, sel.Start)) ||
		(sel.HasEnd() && calendar.SameDay(day, sel.End))
}
