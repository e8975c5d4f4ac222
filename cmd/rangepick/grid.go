package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	calendarapp "github.com/alexisbeaulieu97/rangepick/internal/application/calendar"
	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
	"github.com/alexisbeaulieu97/rangepick/internal/export"
)

func newGridCmd(app *AppContext, flags *calendarFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the annotated month grid",
		Long: `Print the month grid without starting the interactive picker.

  [dd]  selected bound     -dd-  inside the range
  (dd)  disabled            dd*  today
   ·    day of an adjacent month`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openSession(cmd, flags, "command.grid", false)
			if err != nil {
				return err
			}
			defer s.Close()

			controller := calendarapp.NewController(s.options)
			s.showMonth(controller)
			renderGrid(cmd.OutOrStdout(), controller)
			return nil
		},
	}

	return cmd
}

func renderGrid(w io.Writer, c *calendarapp.Controller) {
	first := time.Date(c.DisplayYear(), c.DisplayMonth(), 1, 0, 0, 0, 0, time.UTC)
	fmt.Fprintln(w, first.Format("January 2006"))

	header := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(c.WeekStart()) + i) % 7)
		header = append(header, fmt.Sprintf(" %s ", day.String()[:2]))
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(header, ""), " "))

	for _, week := range c.CalendarDates() {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			cells = append(cells, gridCell(cell))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, ""), " "))
	}

	fmt.Fprintf(w, "\nSelected: %s\n", export.Text(c.Selection()))
}

func gridCell(cell calendar.CalendarDate) string {
	day := cell.Date.Day()
	switch {
	case !cell.IsCurrentMonth:
		return "  · "
	case cell.IsSelected:
		return fmt.Sprintf("[%2d]", day)
	case cell.IsDisabled:
		return fmt.Sprintf("(%2d)", day)
	case cell.IsInRange:
		return fmt.Sprintf("-%2d-", day)
	case cell.IsToday:
		return fmt.Sprintf(" %2d*", day)
	default:
		return fmt.Sprintf(" %2d ", day)
	}
}
