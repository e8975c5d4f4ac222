package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/rangepick/internal/ports"
)

// Options configures the charmbracelet/log adapter.
type Options struct {
	// Writer receives entries; nil means stderr.
	Writer io.Writer
	Level  string
	// Format names the encoding: "text", "json" or "logfmt".
	Format string
	// TimeFormat is a Go time layout for the timestamp. Empty keeps the
	// library default.
	TimeFormat string
	Layer      string
	Component  string
	// Fields are attached to every entry, sorted by key.
	Fields map[string]interface{}
}

// ParseFormat maps a format name onto a charmbracelet/log formatter.
func ParseFormat(name string) (cblog.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return cblog.TextFormatter, nil
	case "json":
		return cblog.JSONFormatter, nil
	case "logfmt":
		return cblog.LogfmtFormatter, nil
	default:
		return cblog.TextFormatter, fmt.Errorf("unknown log format %q", name)
	}
}

// Logger implements ports.Logger on top of charmbracelet/log. Persistent
// fields live on the adapter so that later values replace earlier ones
// with the same key.
type Logger struct {
	base   *cblog.Logger
	fields []interface{}
	layer  string
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	formatter, err := ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:           level,
		Formatter:       formatter,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: true,
	})

	keys := make([]string, 0, len(opts.Fields))
	for k := range opts.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]interface{}, 0, 2*len(keys)+2)
	for _, k := range keys {
		fields = append(fields, k, opts.Fields[k])
	}
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}

	layer := opts.Layer
	if layer == "" {
		layer = "application"
	}

	return &Logger{base: base, fields: fields, layer: layer}, nil
}

// Debug emits a debug log entry.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.entry(ctx, cblog.DebugLevel, msg, fields)
}

// Info emits an info log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.entry(ctx, cblog.InfoLevel, msg, fields)
}

// Warn emits a warning log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.entry(ctx, cblog.WarnLevel, msg, fields)
}

// Error emits an error log entry.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.entry(ctx, cblog.ErrorLevel, msg, fields)
}

// With derives a logger that adds fields to every entry.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return &NoOpLogger{}
	}
	next := make([]interface{}, 0, len(l.fields)+len(fields))
	next = append(next, l.fields...)
	next = append(next, fields...)
	return &Logger{base: l.base, fields: next, layer: l.layer}
}

func (l *Logger) entry(ctx context.Context, level cblog.Level, msg string, fields []interface{}) {
	if l == nil || l.base == nil {
		return
	}
	l.base.Log(level, msg, l.keyvals(ctx, fields)...)
}

// keyvals flattens persistent fields, call fields, the layer and the
// correlation ID into one key/value list. A repeated key keeps its first
// position and its last value; non-string keys are dropped.
func (l *Logger) keyvals(ctx context.Context, fields []interface{}) []interface{} {
	out := make([]interface{}, 0, len(l.fields)+len(fields)+4)
	index := make(map[string]int)
	add := func(kv ...interface{}) {
		for i := 0; i+1 < len(kv); i += 2 {
			key, ok := kv[i].(string)
			if !ok || key == "" {
				continue
			}
			if at, seen := index[key]; seen {
				out[at+1] = kv[i+1]
				continue
			}
			index[key] = len(out)
			out = append(out, key, kv[i+1])
		}
	}

	add(l.fields...)
	add(fields...)
	add("layer", l.layer)
	if id := ports.GetCorrelationID(ctx); id != "" {
		add("correlation_id", id)
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
