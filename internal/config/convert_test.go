package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
)

func TestConfigModeConfig(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Mode = ModeSettings{
		Range:            true,
		Partial:          true,
		PartialType:      "onOrAfter",
		Deselect:         true,
		AllowedRangeDays: 14,
		DisableBefore:    "2024-01-01",
		DisableAfter:     "2024-12-31",
	}

	mode, err := cfg.ModeConfig(time.UTC)
	require.NoError(t, err)

	assert.Equal(t, calendar.ModeConfig{
		AllowRangeSelection:        true,
		AllowPartialRangeSelection: true,
		PartialRangeSelectionType:  calendar.PartialOnOrAfter,
		EnableDeselection:          true,
		AllowedDateRangeDays:       14,
		DisableBefore:              time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		DisableAfter:               time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}, mode)
}

func TestConfigInitialSelection(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Selection = SelectionSettings{Start: "2024-03-10", End: "2024-03-15"}

	sel, err := cfg.InitialSelection(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), sel.Start)
	assert.Equal(t, time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC), sel.End)

	cfg.Selection = SelectionSettings{}
	sel, err = cfg.InitialSelection(time.UTC)
	require.NoError(t, err)
	assert.True(t, sel.IsEmpty())
}

func TestConfigDisplayHelpers(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, time.Sunday, cfg.WeekStart())

	cfg.Display.WeekStart = "Monday"
	assert.Equal(t, time.Monday, cfg.WeekStart())

	seed, err := cfg.DefaultDisplayDate(time.UTC)
	require.NoError(t, err)
	assert.True(t, seed.IsZero())

	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	start, end := cfg.YearBounds(now)
	assert.Equal(t, 1924, start)
	assert.Equal(t, 2124, end)

	cfg.Display.StartYear = 2000
	start, _ = cfg.YearBounds(now)
	assert.Equal(t, 2000, start)
}
