package config

import (
	"fmt"

	rperrors "github.com/alexisbeaulieu97/rangepick/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire
// configuration. Mode combinations the engine accepts but cannot honour are
// rejected here rather than inside the engine.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return rperrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Mode.Partial && !cfg.Mode.Range {
		return rperrors.NewValidationError("mode.partial", "partial range selection requires mode.range to be enabled", nil)
	}
	if cfg.Mode.AllowedRangeDays > 0 && !cfg.Mode.Range {
		return rperrors.NewValidationError("mode.allowed_range_days", "an allowed range window requires mode.range to be enabled", nil)
	}

	if err := orderedDates("mode.disable_before", cfg.Mode.DisableBefore, cfg.Mode.DisableAfter); err != nil {
		return err
	}
	if err := orderedDates("selection.start", cfg.Selection.Start, cfg.Selection.End); err != nil {
		return err
	}
	if cfg.Selection.End != "" && !cfg.Mode.Range {
		return rperrors.NewValidationError("selection.end", "an end date requires mode.range to be enabled", nil)
	}

	display := cfg.Display
	if display.StartYear != 0 && display.EndYear != 0 && display.StartYear > display.EndYear {
		return rperrors.NewValidationError("display.start_year",
			fmt.Sprintf("start year %d is after end year %d", display.StartYear, display.EndYear), nil)
	}

	return nil
}

// orderedDates rejects pairs where first falls after second. Either may be empty.
func orderedDates(field, first, second string) error {
	if first == "" || second == "" {
		return nil
	}
	a, err := parseDay(first)
	if err != nil {
		return rperrors.NewValidationError(field, err.Error(), err)
	}
	b, err := parseDay(second)
	if err != nil {
		return rperrors.NewValidationError(field, err.Error(), err)
	}
	if a.After(b) {
		return rperrors.NewValidationError(field, fmt.Sprintf("%s is after %s", first, second), nil)
	}
	return nil
}
