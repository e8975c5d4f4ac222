package config

// Config represents a calendar configuration document.
type Config struct {
	Mode      ModeSettings      `yaml:"mode"`
	Display   DisplaySettings   `yaml:"display"`
	Selection SelectionSettings `yaml:"selection,omitempty"`
	Log       LogSettings       `yaml:"log"`
}

// ModeSettings mirrors the engine's selection behaviour switches.
type ModeSettings struct {
	Range            bool   `yaml:"range"`
	Partial          bool   `yaml:"partial"`
	PartialType      string `yaml:"partial_type" validate:"omitempty,oneof=range onOrBefore onOrAfter"`
	Deselect         bool   `yaml:"deselect"`
	AllowedRangeDays int    `yaml:"allowed_range_days" validate:"min=0,max=3660"`
	DisableBefore    string `yaml:"disable_before,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DisableAfter     string `yaml:"disable_after,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// DisplaySettings controls the initial month and grid layout.
type DisplaySettings struct {
	DefaultDate string `yaml:"default_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WeekStart   string `yaml:"week_start,omitempty" validate:"omitempty,weekday"`
	StartYear   int    `yaml:"start_year,omitempty" validate:"omitempty,min=1,max=9999"`
	EndYear     int    `yaml:"end_year,omitempty" validate:"omitempty,min=1,max=9999"`
}

// SelectionSettings describes a selection supplied from outside the picker.
type SelectionSettings struct {
	Start string `yaml:"start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	End   string `yaml:"end,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// LogSettings configures structured logging.
type LogSettings struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=text json logfmt"`
	File   string `yaml:"file,omitempty"`
	// TimeFormat is a Go time layout such as "15:04:05" or "2006-01-02T15:04:05Z07:00".
	TimeFormat string `yaml:"time_format,omitempty"`
}

const (
	defaultStartYearOffset = -100
	defaultEndYearOffset   = 100
)

// Default returns the configuration used when no file is supplied: a
// single-date picker with deselection, Sunday-first weeks and info logs.
func Default() *Config {
	return &Config{
		Mode: ModeSettings{
			PartialType: "range",
			Deselect:    true,
		},
		Display: DisplaySettings{
			WeekStart: "sunday",
		},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}
