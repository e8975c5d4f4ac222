package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/rangepick/internal/tui/picker"
)

// runPicker drives the terminal program. Tests swap it for a scripted run.
var runPicker = func(ctx context.Context, model picker.Model) (picker.Model, error) {
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	final, err := program.Run()
	if err != nil {
		return model, err
	}
	result, ok := final.(picker.Model)
	if !ok {
		return model, fmt.Errorf("unexpected model type %T", final)
	}
	return result, nil
}

func newPickCmd(app *AppContext, flags *calendarFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date or range interactively",
		Long: `Open the interactive calendar. Confirm with q or esc to print the
selection in the requested format; ctrl+c aborts without output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app, flags)
		},
	}

	return cmd
}

func runPick(cmd *cobra.Command, app *AppContext, flags *calendarFlags) error {
	if !app.IsTerminal() {
		return newCommandError("pick", "starting the picker",
			errors.New("stdout is not a terminal"),
			"Use 'rangepick select --click YYYY-MM-DD' or 'rangepick grid' from scripts.")
	}

	s, err := app.openSession(cmd, flags, "command.pick", true)
	if err != nil {
		return err
	}
	defer s.Close()

	model := picker.New(s.ctx, s.options)
	s.showMonth(model.Controller())
	s.logger.Info(s.ctx, "launching picker",
		"year", model.Controller().DisplayYear(),
		"month", int(model.Controller().DisplayMonth()),
	)

	result, err := runPicker(s.ctx, model)
	if err != nil {
		s.logger.Error(s.ctx, "picker execution failed", "error", err)
		return fmt.Errorf("failed to run picker: %w", err)
	}

	if !result.Done() {
		s.logger.Info(s.ctx, "picker closed without confirmation", "aborted", result.Aborted())
		return nil
	}

	return writeSelection(cmd, s, flags, result.Selection())
}
