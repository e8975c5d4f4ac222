package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &calendarFlags{}

	cmd := &cobra.Command{
		Use:           "rangepick",
		Short:         "rangepick picks dates and date ranges from a terminal calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the picker
			if len(args) == 0 {
				return runPick(cmd, app, flags)
			}
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to calendar configuration file")
	pf.StringVar(&flags.month, "month", "", "Month to display first (YYYY-MM)")
	pf.BoolVar(&flags.rangeMode, "range", false, "Select a date range instead of a single date")
	pf.IntVar(&flags.allowedDays, "allowed-days", 0, "Limit ranges to this many days either side of the anchor (0 = unlimited)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVarP(&flags.format, "format", "f", "text", "Output format (text, json, ics)")
	pf.StringVarP(&flags.out, "out", "o", "", "Write the selection to this file instead of stdout")
	pf.StringVar(&flags.summary, "summary", "", "Event title for ics output")

	cmd.AddCommand(newPickCmd(app, flags))
	cmd.AddCommand(newGridCmd(app, flags))
	cmd.AddCommand(newSelectCmd(app, flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
