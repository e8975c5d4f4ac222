package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	calendarapp "github.com/alexisbeaulieu97/rangepick/internal/application/calendar"
	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
)

type selectOptions struct {
	clicks  []string
	partial string
}

func newSelectCmd(app *AppContext, flags *calendarFlags) *cobra.Command {
	opts := &selectOptions{}

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Replay date clicks and print the resulting selection",
		Long: `Replay clicks through the calendar exactly as the picker would apply
them and print the resulting selection. Clicks on disabled dates are
reported and skipped.`,
		Example: `  rangepick select --range --click 2024-03-10 --click 2024-03-15
  rangepick select -c calendar.yaml --format ics --click 2024-07-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, app, flags, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.clicks, "click", nil, "Date to click (YYYY-MM-DD); repeat in order")
	cmd.Flags().StringVar(&opts.partial, "partial-type", "", "Partial range mode to switch to before clicking (range, onOrBefore, onOrAfter)")

	return cmd
}

func runSelect(cmd *cobra.Command, app *AppContext, flags *calendarFlags, opts *selectOptions) error {
	s, err := app.openSession(cmd, flags, "command.select", false)
	if err != nil {
		return err
	}
	defer s.Close()

	controller := calendarapp.NewController(s.options)
	s.showMonth(controller)

	if opts.partial != "" {
		mode, err := calendar.ParsePartialRangeType(opts.partial)
		if err != nil {
			return newCommandError("select", "reading --partial-type", err, "Use range, onOrBefore or onOrAfter.")
		}
		controller.SetPartialRangeType(s.ctx, mode)
	}

	for _, raw := range opts.clicks {
		day, err := time.ParseInLocation(calendar.DateLayout, raw, app.Location)
		if err != nil {
			return newCommandError("select", fmt.Sprintf("reading --click %q", raw), err, "Dates use the YYYY-MM-DD layout.")
		}

		controller.SetDisplayDate(s.ctx, day)
		cell, ok := findCell(controller, day)
		if !ok || !controller.HandleDateClick(s.ctx, cell) {
			s.logger.Warn(s.ctx, "click ignored", "date", raw, "reason", "disabled")
			fmt.Fprintf(cmd.ErrOrStderr(), "skipped disabled date %s\n", raw)
		}
	}

	return writeSelection(cmd, s, flags, controller.Selection())
}

func findCell(c *calendarapp.Controller, day time.Time) (calendar.CalendarDate, bool) {
	for _, week := range c.CalendarDates() {
		for _, cell := range week {
			if cell.IsCurrentMonth && calendar.SameDay(cell.Date, day) {
				return cell, true
			}
		}
	}
	return calendar.CalendarDate{}, false
}
