package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// calendarFlags are shared by every calendar command.
type calendarFlags struct {
	configPath  string
	month       string
	rangeMode   bool
	allowedDays int
	logLevel    string
	format      string
	out         string
	summary     string
}

const monthLayout = "2006-01"

func validateConfigPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

// parseMonth reads a YYYY-MM flag value as the first of that month.
func parseMonth(raw string, loc *time.Location) (time.Time, error) {
	month, err := time.ParseInLocation(monthLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --month %q: want YYYY-MM", raw)
	}
	return month, nil
}
