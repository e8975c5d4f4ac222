// Package calendar wires the date-selection engine into a stateful
// controller. The controller owns the display and selection state, routes
// clicks and key presses through the pure engine, and publishes change
// notifications. A Controller belongs to a single calendar instance and is
// not safe for concurrent use; every call runs to completion before the next.
package calendar

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
	"github.com/alexisbeaulieu97/rangepick/internal/ports"
)

// Options configures a Controller at construction time.
type Options struct {
	Mode calendar.ModeConfig
	// DefaultDisplayDate seeds the visible month when Selection has no start.
	DefaultDisplayDate time.Time
	// Selection is the externally supplied selection, if any.
	Selection calendar.SelectionState
	WeekStart time.Weekday
	// StartYear and EndYear bound month and year stepping. Zero StartYear
	// leaves stepping unbounded.
	StartYear int
	EndYear   int
	Location  *time.Location
	Now       func() time.Time

	Publisher ports.EventPublisher
	Logger    ports.Logger

	// Refocus is called with the focused day once the grid for a newly
	// displayed month has been painted. Nil means no focus management.
	Refocus func(focused time.Time)
	// AfterPaint defers fn until after the next paint. UI adapters supply
	// it; without one fn runs immediately.
	AfterPaint func(fn func())
}

// Controller is the calendar orchestrator.
type Controller struct {
	mode      calendar.ModeConfig
	weekStart time.Weekday
	startYear int
	endYear   int
	loc       *time.Location
	now       func() time.Time

	publisher  ports.EventPublisher
	logger     ports.Logger
	refocus    func(time.Time)
	afterPaint func(func())

	state state

	memoKey  gridKey
	memoGrid [][]calendar.CalendarDate
}

// NewController builds a controller and performs its one-time display
// initialization.
func NewController(opts Options) *Controller {
	c := &Controller{
		mode:       opts.Mode,
		weekStart:  opts.WeekStart,
		startYear:  opts.StartYear,
		endYear:    opts.EndYear,
		loc:        opts.Location,
		now:        opts.Now,
		publisher:  opts.Publisher,
		logger:     opts.Logger,
		refocus:    opts.Refocus,
		afterPaint: opts.AfterPaint,
	}
	if c.loc == nil {
		c.loc = time.Local
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger != nil {
		c.logger = c.logger.With("component", "calendar_controller")
	}

	c.state.selection = opts.Selection.Normalize()
	c.initDisplay(opts.DefaultDisplayDate)
	return c
}

// initDisplay seeds the visible month from the selection start when present,
// else from the default display date, else from today. It runs once, from
// NewController.
func (c *Controller) initDisplay(defaultDate time.Time) {
	seed := c.state.selection.Start
	if seed.IsZero() {
		seed = defaultDate
	}
	if seed.IsZero() {
		seed = c.now()
	}
	c.state = reduce(c.state, action{kind: actionShowDate, date: seed.In(c.loc)}, c.mode)
}

// SetDisplayDate shows the month containing date and focuses date.
func (c *Controller) SetDisplayDate(ctx context.Context, date time.Time) {
	c.transition(ctx, action{kind: actionShowDate, date: date.In(c.loc)})
}

// ShiftMonths moves the visible month by n months, keeping the focus. A
// target outside the year bounds leaves the display where it is.
func (c *Controller) ShiftMonths(ctx context.Context, n int) {
	target := calendar.AddMonths(c.state.display.FirstOfMonth(c.loc), n)
	if !c.InYearRange(target.Year()) {
		if c.logger != nil {
			c.logger.Debug(ctx, "month step outside year bounds", "year", target.Year())
		}
		return
	}
	c.transition(ctx, action{kind: actionShowMonth, date: target})
}

// HandleDateClick applies a click on cell. Disabled cells are ignored and
// false is returned; otherwise the new selection is published.
func (c *Controller) HandleDateClick(ctx context.Context, cell calendar.CalendarDate) bool {
	if cell.IsDisabled {
		if c.logger != nil {
			c.logger.Debug(ctx, "ignored click on disabled date", "date", cell.Date.Format(calendar.DateLayout))
		}
		return false
	}

	next := c.transition(ctx, action{kind: actionClick, date: cell.Date.In(c.loc)})
	if c.logger != nil {
		c.logger.Debug(ctx, "selection changed",
			"date", cell.Date.Format(calendar.DateLayout),
			"selection", next.selection.String(),
		)
	}
	publishEvent(ctx, c.publisher, c.logger, SelectionChangedEvent{
		Start: next.selection.Start,
		End:   next.selection.End,
	})
	return true
}

// HandleDateHover moves the focus to cell for range previews. The selection
// is never touched.
func (c *Controller) HandleDateHover(cell calendar.CalendarDate) {
	c.state = reduce(c.state, action{kind: actionFocus, date: cell.Date.In(c.loc)}, c.mode)
}

// HandleKeyDown routes a key press. Navigation keys move the focus and, when
// the focus leaves the visible month, advance the display and schedule a
// refocus after the next paint. Enter and Space click the focused day.
// It reports whether the key was handled.
func (c *Controller) HandleKeyDown(ctx context.Context, key calendar.Key) bool {
	focused := c.state.display.FocusedDate
	if focused.IsZero() {
		focused = c.state.display.FirstOfMonth(c.loc)
	}

	move := calendar.Navigate(focused, key, c.state.display)
	if !move.Handled {
		return false
	}
	if move.Activate {
		c.HandleDateClick(ctx, c.cellFor(move.Focus))
		return true
	}

	if !move.DisplayChanged {
		c.state = reduce(c.state, action{kind: actionFocus, date: move.Focus}, c.mode)
		return true
	}

	if !c.InYearRange(move.Focus.Year()) {
		return true
	}
	c.transition(ctx, action{kind: actionShowDate, date: move.Focus})
	c.scheduleRefocus(move.Focus)
	return true
}

// SetSelection replaces the selection from outside (for example a form
// control writing its value). No selection event is published.
func (c *Controller) SetSelection(selection calendar.SelectionState) {
	c.state = reduce(c.state, action{kind: actionReplaceSelection, selection: selection}, c.mode)
}

// SetPartialRangeType switches the partial range mode. Any change clears
// the selection.
func (c *Controller) SetPartialRangeType(ctx context.Context, mode calendar.PartialRangeType) {
	if c.mode.PartialRangeSelectionType == mode {
		return
	}
	c.mode.PartialRangeSelectionType = mode
	c.memoGrid = nil
	c.state = reduce(c.state, action{kind: actionClearSelection}, c.mode)

	if c.logger != nil {
		c.logger.Info(ctx, "partial range mode changed", "mode", string(mode))
	}
	publishEvent(ctx, c.publisher, c.logger, SelectionResetEvent{Mode: mode})
}

// CalendarDates returns the annotated grid for the current state. The grid
// is rebuilt only when one of its inputs changed; callers get their own copy.
func (c *Controller) CalendarDates() [][]calendar.CalendarDate {
	today := calendar.StartOfDay(c.now().In(c.loc))
	key := keyFor(c.state, today)
	if c.memoGrid == nil || key != c.memoKey {
		weeks := calendar.BuildMonthGrid(c.state.display.Year, c.state.display.Month, c.weekStart, c.loc)
		c.memoGrid = annotate(weeks, c.state, c.mode, today)
		c.memoKey = key
	}

	out := make([][]calendar.CalendarDate, len(c.memoGrid))
	for i, week := range c.memoGrid {
		out[i] = append([]calendar.CalendarDate(nil), week...)
	}
	return out
}

// DisplayYear returns the visible year.
func (c *Controller) DisplayYear() int { return c.state.display.Year }

// DisplayMonth returns the visible month.
func (c *Controller) DisplayMonth() time.Month { return c.state.display.Month }

// FocusedDate returns the keyboard cursor, or the zero time when unset.
func (c *Controller) FocusedDate() time.Time { return c.state.display.FocusedDate }

// Selection returns the committed selection.
func (c *Controller) Selection() calendar.SelectionState { return c.state.selection }

// Mode returns the active mode configuration.
func (c *Controller) Mode() calendar.ModeConfig { return c.mode }

// WeekStart returns the first weekday of grid rows.
func (c *Controller) WeekStart() time.Weekday { return c.weekStart }

// YearOptions lists the years a year picker should offer.
func (c *Controller) YearOptions() []int {
	if c.startYear == 0 || c.endYear < c.startYear {
		return nil
	}
	years := make([]int, 0, c.endYear-c.startYear+1)
	for y := c.startYear; y <= c.endYear; y++ {
		years = append(years, y)
	}
	return years
}

// InYearRange reports whether year lies within the configured bounds.
// Without bounds every year is in range.
func (c *Controller) InYearRange(year int) bool {
	if c.startYear == 0 || c.endYear < c.startYear {
		return true
	}
	return year >= c.startYear && year <= c.endYear
}

// transition applies a to the current state, swaps the state in and
// publishes a month change when the visible month moved.
func (c *Controller) transition(ctx context.Context, a action) state {
	prev := c.state
	next := reduce(prev, a, c.mode)
	c.state = next

	if prev.display.Year != next.display.Year || prev.display.Month != next.display.Month {
		if c.logger != nil {
			c.logger.Debug(ctx, "display month changed",
				"year", next.display.Year,
				"month", int(next.display.Month),
			)
		}
		publishEvent(ctx, c.publisher, c.logger, MonthChangedEvent{
			CurrentMonth:  next.display.Month,
			CurrentYear:   next.display.Year,
			PreviousMonth: prev.display.Month,
			PreviousYear:  prev.display.Year,
		})
	}
	return next
}

func (c *Controller) scheduleRefocus(focused time.Time) {
	if c.refocus == nil {
		return
	}
	restore := func() { c.refocus(focused) }
	if c.afterPaint == nil {
		restore()
		return
	}
	c.afterPaint(restore)
}

// cellFor annotates a single day against the current state.
func (c *Controller) cellFor(day time.Time) calendar.CalendarDate {
	return calendar.CalendarDate{
		Date:           day,
		IsCurrentMonth: c.state.display.Shows(day),
		IsDisabled:     calendar.IsDisabled(day, c.state.selection, c.mode),
	}
}
