package calendar

import "time"

// Key is a keyboard input understood by the navigation controller.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyPageUp     Key = "PageUp"
	KeyPageDown   Key = "PageDown"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyEnter      Key = "Enter"
	KeySpace      Key = "Space"
)

// Move is the outcome of a key press.
type Move struct {
	// Handled is false for keys the calendar does not react to.
	Handled bool
	// Focus is the new keyboard cursor.
	Focus time.Time
	// DisplayChanged is set when Focus left the displayed month.
	DisplayChanged bool
	// Activate asks the caller to treat Focus as clicked.
	Activate bool
}

// Navigate maps a key press on the focused day to the next cursor position.
// Enter and Space do not move the cursor; they request activation of the
// focused day instead.
func Navigate(focused time.Time, key Key, display DisplayState) Move {
	var next time.Time
	switch key {
	case KeyArrowLeft:
		next = AddDays(focused, -1)
	case KeyArrowRight:
		next = AddDays(focused, 1)
	case KeyArrowUp:
		next = AddDays(focused, -daysPerWeek)
	case KeyArrowDown:
		next = AddDays(focused, daysPerWeek)
	case KeyPageUp:
		next = AddMonths(focused, -1)
	case KeyPageDown:
		next = AddMonths(focused, 1)
	case KeyHome:
		next = StartOfMonth(focused)
	case KeyEnd:
		next = EndOfMonth(focused)
	case KeyEnter, KeySpace:
		return Move{Handled: true, Focus: focused, Activate: true}
	default:
		return Move{Focus: focused}
	}

	next = StartOfDay(next)
	return Move{
		Handled:        true,
		Focus:          next,
		DisplayChanged: !display.Shows(next),
	}
}
