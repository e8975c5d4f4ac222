// Package picker is the interactive terminal front end for the calendar
// controller.
package picker

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	calendarapp "github.com/alexisbeaulieu97/rangepick/internal/application/calendar"
	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
)

const (
	// cellWidth is the rendered width of one day, padding included.
	cellWidth = 4
	// gridTop is the line of the first week row: title then weekday header.
	gridTop = 2
	// minWidth fits seven cells.
	minWidth = cellWidth * 7
)

// Model is the picker's bubbletea model.
type Model struct {
	ctx        context.Context
	controller *calendarapp.Controller
	paint      *paintQueue
	keys       KeyMap
	help       help.Model
	now        func() time.Time

	done    bool
	aborted bool

	width  int
	height int
}

// New builds a picker around a fresh controller. The refocus hooks in opts
// are replaced: after a keyboard move leaves the visible month the focus
// ring is hidden until the new month has been drawn.
func New(ctx context.Context, opts calendarapp.Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	queue := newPaintQueue()
	opts.AfterPaint = queue.schedule
	opts.Refocus = func(time.Time) { queue.gridFocused = true }

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return Model{
		ctx:        ctx,
		controller: calendarapp.NewController(opts),
		paint:      queue,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		now:        now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller exposes the underlying controller.
func (m Model) Controller() *calendarapp.Controller {
	return m.controller
}

// Selection returns the committed selection.
func (m Model) Selection() calendar.SelectionState {
	return m.controller.Selection()
}

// Done reports whether the user confirmed the selection.
func (m Model) Done() bool {
	return m.done
}

// Aborted reports whether the user cancelled with ctrl+c.
func (m Model) Aborted() bool {
	return m.aborted
}

// cellAt maps terminal coordinates onto the grid.
func (m Model) cellAt(x, y int) (calendar.CalendarDate, bool) {
	if x < 0 || y < gridTop {
		return calendar.CalendarDate{}, false
	}
	weeks := m.controller.CalendarDates()
	row, col := y-gridTop, x/cellWidth
	if row >= len(weeks) || col >= len(weeks[row]) {
		return calendar.CalendarDate{}, false
	}
	return weeks[row][col], true
}

// nextPartialType cycles range, on-or-after and on-or-before.
func nextPartialType(current calendar.PartialRangeType) calendar.PartialRangeType {
	switch current {
	case calendar.PartialOnOrAfter:
		return calendar.PartialOnOrBefore
	case calendar.PartialOnOrBefore:
		return calendar.PartialRange
	default:
		return calendar.PartialOnOrAfter
	}
}
