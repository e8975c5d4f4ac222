// Package export renders a committed selection for consumers outside the
// picker: plain text for shells, JSON for scripts and iCalendar for
// calendar applications.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
	rperrors "github.com/alexisbeaulieu97/rangepick/pkg/errors"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatICS  Format = "ics"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatICS, "ical", "icalendar":
		return FormatICS, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or ics)", raw)
	}
}

// Options tunes exported documents.
type Options struct {
	// Summary titles the iCalendar event.
	Summary string
	// UID identifies the iCalendar event; derived from the dates when empty.
	UID string
	// Now stamps iCalendar documents; defaults to time.Now.
	Now func() time.Time
}

// Write renders sel to w in the requested format.
func Write(w io.Writer, sel calendar.SelectionState, format Format, opts Options) error {
	var (
		out string
		err error
	)
	switch format {
	case FormatText, "":
		out = Text(sel) + "\n"
	case FormatJSON:
		out, err = JSON(sel)
		out += "\n"
	case FormatICS:
		out, err = ICS(sel, opts)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return rperrors.NewExportError(string(format), err)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return rperrors.NewExportError(string(format), err)
	}
	return nil
}

// Text renders the selection as a human-readable line.
func Text(sel calendar.SelectionState) string {
	switch {
	case sel.HasStart() && sel.HasEnd():
		if calendar.SameDay(sel.Start, sel.End) {
			return sel.Start.Format(calendar.DateLayout)
		}
		return fmt.Sprintf("%s to %s", sel.Start.Format(calendar.DateLayout), sel.End.Format(calendar.DateLayout))
	case sel.HasStart():
		return "on or after " + sel.Start.Format(calendar.DateLayout)
	case sel.HasEnd():
		return "on or before " + sel.End.Format(calendar.DateLayout)
	default:
		return "no selection"
	}
}

type jsonSelection struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// JSON renders the selection as {"start": ..., "end": ...} with RFC 3339
// instants and null for unset bounds.
func JSON(sel calendar.SelectionState) (string, error) {
	payload := jsonSelection{Start: rfc3339(sel.Start), End: rfc3339(sel.End)}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func rfc3339(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// ICS renders the selection as a single all-day VEVENT. DTEND is exclusive,
// so a range ending on the 15th ends on the 16th. A selection with one bound
// becomes a single-day event on that bound.
func ICS(sel calendar.SelectionState, opts Options) (string, error) {
	if sel.IsEmpty() {
		return "", fmt.Errorf("nothing selected")
	}

	first, last := sel.Start, sel.End
	switch {
	case first.IsZero():
		first = last
	case last.IsZero():
		last = first
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	uid := opts.UID
	if uid == "" {
		uid = fmt.Sprintf("%s-%s@rangepick", first.Format("20060102"), last.Format("20060102"))
	}
	summary := opts.Summary
	if summary == "" {
		summary = Text(sel)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//rangepick//calendar selection//EN")

	event := cal.AddEvent(uid)
	event.SetDtStampTime(now().UTC())
	event.SetSummary(summary)
	event.SetAllDayStartAt(calendar.StartOfDay(first))
	event.SetAllDayEndAt(calendar.AddDays(calendar.StartOfDay(last), 1))

	return cal.Serialize(), nil
}
