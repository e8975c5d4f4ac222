package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	calendarapp "github.com/alexisbeaulieu97/rangepick/internal/application/calendar"
	"github.com/alexisbeaulieu97/rangepick/internal/config"
	"github.com/alexisbeaulieu97/rangepick/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/rangepick/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/rangepick/internal/logger"
	"github.com/alexisbeaulieu97/rangepick/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Bootstrap  *logger.Logger
	Location   *time.Location
	Now        func() time.Time
	IsTerminal func() bool
}

func newAppContext(bootstrap *logger.Logger) *AppContext {
	return &AppContext{
		Bootstrap: bootstrap,
		Location:  time.Local,
		Now:       time.Now,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// session is the per-command wiring: configuration, logger, publisher and
// the controller options derived from them.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	logger  ports.Logger
	options calendarapp.Options
	month   time.Time
	closers []io.Closer
}

func (s *session) Close() {
	for _, c := range s.closers {
		_ = c.Close()
	}
}

// showMonth moves c to the --month override, if one was given.
func (s *session) showMonth(c *calendarapp.Controller) {
	if !s.month.IsZero() {
		c.SetDisplayDate(s.ctx, s.month)
	}
}

// openSession loads configuration and builds the logger and publisher for
// one command. Interactive sessions never log to the terminal.
func (a *AppContext) openSession(cmd *cobra.Command, flags *calendarFlags, component string, interactive bool) (*session, error) {
	cfg, err := a.loadConfig(cmd, flags)
	if err != nil {
		return nil, err
	}
	a.Bootstrap.WithFields(map[string]any{"component": component}).Debug("configuration loaded")

	s := &session{cfg: cfg}

	var writer io.Writer
	switch {
	case !interactive:
		writer = cmd.ErrOrStderr()
	case cfg.Log.File != "":
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, newCommandError(cmd.Name(), "opening log file", err, "Check log.file in your configuration.")
		}
		s.closers = append(s.closers, file)
		writer = file
	}

	if writer == nil {
		s.logger = logging.NewNoOpLogger()
	} else {
		source := flags.configPath
		if strings.TrimSpace(source) == "" {
			source = "default"
		}
		base, err := logging.New(logging.Options{
			Writer:     writer,
			Level:      cfg.Log.Level,
			Format:     cfg.Log.Format,
			TimeFormat: cfg.Log.TimeFormat,
			Layer:      "cli",
			Component:  component,
			Fields:     map[string]interface{}{"config": source},
		})
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("configure logger: %w", err)
		}
		s.logger = base
	}

	s.ctx = ports.WithCorrelationID(cmd.Context(), ports.GenerateCorrelationID())

	options, err := a.controllerOptions(cfg)
	if err != nil {
		s.Close()
		return nil, err
	}
	options.Publisher = events.NewLoggingPublisher(s.logger)
	options.Logger = s.logger
	s.options = options

	if flags.month != "" {
		month, err := parseMonth(flags.month, a.Location)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.month = month
	}

	return s, nil
}

// loadConfig reads --config when given and applies flag overrides on top.
func (a *AppContext) loadConfig(cmd *cobra.Command, flags *calendarFlags) (*config.Config, error) {
	cfg := config.Default()
	if strings.TrimSpace(flags.configPath) != "" {
		if err := validateConfigPath(flags.configPath); err != nil {
			return nil, err
		}
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	changed := cmd.Flags().Changed
	if changed("range") {
		cfg.Mode.Range = flags.rangeMode
	}
	if changed("allowed-days") {
		cfg.Mode.AllowedRangeDays = flags.allowedDays
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *AppContext) controllerOptions(cfg *config.Config) (calendarapp.Options, error) {
	mode, err := cfg.ModeConfig(a.Location)
	if err != nil {
		return calendarapp.Options{}, err
	}
	selection, err := cfg.InitialSelection(a.Location)
	if err != nil {
		return calendarapp.Options{}, err
	}
	defaultDate, err := cfg.DefaultDisplayDate(a.Location)
	if err != nil {
		return calendarapp.Options{}, err
	}
	startYear, endYear := cfg.YearBounds(a.Now())

	return calendarapp.Options{
		Mode:               mode,
		DefaultDisplayDate: defaultDate,
		Selection:          selection,
		WeekStart:          cfg.WeekStart(),
		StartYear:          startYear,
		EndYear:            endYear,
		Location:           a.Location,
		Now:                a.Now,
	}, nil
}
