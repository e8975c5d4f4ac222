package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
	"github.com/alexisbeaulieu97/rangepick/internal/export"
)

// writeSelection renders sel per --format to --out or stdout.
func writeSelection(cmd *cobra.Command, s *session, flags *calendarFlags, sel calendar.SelectionState) error {
	format, err := export.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	var (
		w    io.Writer = cmd.OutOrStdout()
		file *os.File
	)
	if flags.out != "" {
		file, err = os.Create(flags.out)
		if err != nil {
			return newCommandError(cmd.Name(), "creating output file", err, "Check that the --out directory exists and is writable.")
		}
		w = file
	}

	opts := export.Options{Summary: flags.summary, Now: s.options.Now}
	err = closeOutput(cmd.Name(), file, export.Write(w, sel, format, opts))
	if err != nil {
		s.logger.Error(s.ctx, "export failed", "format", string(format), "error", err)
		return err
	}

	s.logger.Info(s.ctx, "selection written",
		"format", string(format),
		"selection", sel.String(),
		"out", outName(flags.out),
	)
	return nil
}

// closeOutput closes file, if any, and reports a close failure unless an
// earlier write error is already being returned.
func closeOutput(command string, file *os.File, err error) error {
	if file == nil {
		return err
	}
	if closeErr := file.Close(); closeErr != nil && err == nil {
		return newCommandError(command, "closing output file", closeErr, "Check free space on the --out device.")
	}
	return err
}

func outName(path string) string {
	if path == "" {
		return "stdout"
	}
	return fmt.Sprintf("%q", path)
}
