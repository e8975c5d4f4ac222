package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", raw, time.UTC)
	require.NoError(t, err)
	return parsed
}

func clickAll(t *testing.T, cfg ModeConfig, dates ...string) []SelectionState {
	t.Helper()
	var (
		state   SelectionState
		history []SelectionState
	)
	for _, raw := range dates {
		state = Select(day(t, raw), state, cfg)
		history = append(history, state)
	}
	return history
}

func TestSelectSingleReplaces(t *testing.T) {
	t.Parallel()

	history := clickAll(t, ModeConfig{}, "2024-03-10", "2024-03-15")

	assert.Equal(t, SelectionState{Start: at(t, "2024-03-10T00:00:00")}, history[0])
	assert.Equal(t, SelectionState{Start: at(t, "2024-03-15T00:00:00")}, history[1])
}

func TestSelectRangeCommitsAndSwaps(t *testing.T) {
	t.Parallel()

	cfg := ModeConfig{AllowRangeSelection: true}
	history := clickAll(t, cfg, "2024-03-10", "2024-03-15", "2024-03-05")

	assert.Equal(t, SelectionState{Start: at(t, "2024-03-10T00:00:00")}, history[0])
	assert.Equal(t, SelectionState{
		Start: at(t, "2024-03-10T00:00:00"),
		End:   at(t, "2024-03-15T23:59:59"),
	}, history[1])
	assert.Equal(t, SelectionState{
		Start: at(t, "2024-03-05T00:00:00"),
		End:   at(t, "2024-03-10T23:59:59"),
	}, history[2])
}

func TestSelectRangeTransitions(t *testing.T) {
	t.Parallel()

	cfg := ModeConfig{AllowRangeSelection: true}
	committed := SelectionState{
		Start: at(t, "2024-03-10T00:00:00"),
		End:   at(t, "2024-03-20T23:59:59"),
	}

	tests := []struct {
		name    string
		current SelectionState
		click   string
		want    SelectionState
	}{
		{
			name:    "only start, earlier click swaps",
			current: SelectionState{Start: at(t, "2024-03-10T00:00:00")},
			click:   "2024-03-01",
			want:    SelectionState{Start: at(t, "2024-03-01T00:00:00"), End: at(t, "2024-03-10T23:59:59")},
		},
		{
			name:    "only start, same day without deselection is a no-op",
			current: SelectionState{Start: at(t, "2024-03-10T00:00:00")},
			click:   "2024-03-10",
			want:    SelectionState{Start: at(t, "2024-03-10T00:00:00")},
		},
		{
			name:    "inside range shrinks the end",
			current: committed,
			click:   "2024-03-14",
			want:    SelectionState{Start: at(t, "2024-03-10T00:00:00"), End: at(t, "2024-03-14T23:59:59")},
		},
		{
			name:    "after range moves the end",
			current: committed,
			click:   "2024-03-25",
			want:    SelectionState{Start: at(t, "2024-03-10T00:00:00"), End: at(t, "2024-03-25T23:59:59")},
		},
		{
			name:    "before range swaps with old start",
			current: committed,
			click:   "2024-03-02",
			want:    SelectionState{Start: at(t, "2024-03-02T00:00:00"), End: at(t, "2024-03-10T23:59:59")},
		},
		{
			name:    "only end, earlier click becomes start",
			current: SelectionState{End: at(t, "2024-03-20T23:59:59")},
			click:   "2024-03-12",
			want:    SelectionState{Start: at(t, "2024-03-12T00:00:00"), End: at(t, "2024-03-20T23:59:59")},
		},
		{
			name:    "only end, later click keeps ordering",
			current: SelectionState{End: at(t, "2024-03-20T23:59:59")},
			click:   "2024-03-22",
			want:    SelectionState{Start: at(t, "2024-03-20T00:00:00"), End: at(t, "2024-03-22T23:59:59")},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Select(day(t, tt.click), tt.current, cfg)
			assert.Equal(t, tt.want, got)
			if got.HasStart() && got.HasEnd() {
				assert.False(t, got.Start.After(got.End))
			}
		})
	}
}

func TestSelectSingleClearsStrayEnd(t *testing.T) {
	t.Parallel()

	got := Select(day(t, "2024-03-10"), SelectionState{End: at(t, "2024-03-20T23:59:59")}, ModeConfig{})
	assert.Equal(t, SelectionState{Start: at(t, "2024-03-10T00:00:00")}, got)
}

func TestSelectDeselectionRoundTrip(t *testing.T) {
	t.Parallel()

	single := ModeConfig{EnableDeselection: true}
	history := clickAll(t, single, "2024-03-10", "2024-03-10")
	assert.True(t, history[1].IsEmpty())

	ranged := ModeConfig{AllowRangeSelection: true, EnableDeselection: true}
	history = clickAll(t, ranged, "2024-03-10", "2024-03-15", "2024-03-15")
	assert.Equal(t, SelectionState{Start: at(t, "2024-03-10T00:00:00")}, history[2])

	history = clickAll(t, ranged, "2024-03-10", "2024-03-15", "2024-03-10")
	assert.Equal(t, SelectionState{End: at(t, "2024-03-15T23:59:59")}, history[2])
}

func TestSelectPartialModes(t *testing.T) {
	t.Parallel()

	after := ModeConfig{
		AllowRangeSelection:        true,
		AllowPartialRangeSelection: true,
		PartialRangeSelectionType:  PartialOnOrAfter,
	}
	history := clickAll(t, after, "2024-03-10", "2024-03-15")
	assert.Equal(t, SelectionState{Start: at(t, "2024-03-10T00:00:00")}, history[0])
	assert.Equal(t, SelectionState{Start: at(t, "2024-03-15T00:00:00")}, history[1])

	before := after
	before.PartialRangeSelectionType = PartialOnOrBefore
	history = clickAll(t, before, "2024-03-10")
	assert.Equal(t, SelectionState{End: at(t, "2024-03-10T23:59:59")}, history[0])

	// A partial type of "range" builds closed ranges.
	closed := after
	closed.PartialRangeSelectionType = PartialRange
	history = clickAll(t, closed, "2024-03-10", "2024-03-15")
	assert.Equal(t, SelectionState{Start: at(t, "2024-03-10T00:00:00"), End: at(t, "2024-03-15T23:59:59")}, history[1])
}

func TestSelectPartialIgnoredWithoutRange(t *testing.T) {
	t.Parallel()

	cfg := ModeConfig{AllowPartialRangeSelection: true, PartialRangeSelectionType: PartialOnOrBefore}
	got := Select(day(t, "2024-03-10"), SelectionState{}, cfg)
	assert.Equal(t, SelectionState{Start: at(t, "2024-03-10T00:00:00")}, got)
}

func TestParsePartialRangeType(t *testing.T) {
	t.Parallel()

	got, err := ParsePartialRangeType("")
	require.NoError(t, err)
	assert.Equal(t, PartialRange, got)

	got, err = ParsePartialRangeType("onOrAfter")
	require.NoError(t, err)
	assert.Equal(t, PartialOnOrAfter, got)

	_, err = ParsePartialRangeType("sometime")
	require.Error(t, err)
}

func TestInPreview(t *testing.T) {
	t.Parallel()

	rangeCfg := ModeConfig{AllowRangeSelection: true}
	started := SelectionState{Start: day(t, "2024-03-10")}

	tests := []struct {
		name    string
		day     string
		focused string
		sel     SelectionState
		cfg     ModeConfig
		want    bool
	}{
		{name: "between anchor and focus", day: "2024-03-12", focused: "2024-03-14", sel: started, cfg: rangeCfg, want: true},
		{name: "anchor itself", day: "2024-03-10", focused: "2024-03-14", sel: started, cfg: rangeCfg, want: true},
		{name: "focus itself", day: "2024-03-14", focused: "2024-03-14", sel: started, cfg: rangeCfg, want: true},
		{name: "past the focus", day: "2024-03-15", focused: "2024-03-14", sel: started, cfg: rangeCfg, want: false},
		{name: "focus before anchor", day: "2024-03-08", focused: "2024-03-07", sel: started, cfg: rangeCfg, want: true},
		{name: "no focus", day: "2024-03-12", sel: started, cfg: rangeCfg, want: false},
		{name: "single mode", day: "2024-03-12", focused: "2024-03-14", sel: started, cfg: ModeConfig{}, want: false},
		{
			name:    "closed range",
			day:     "2024-03-12",
			focused: "2024-03-20",
			sel:     SelectionState{Start: day(t, "2024-03-10"), End: EndOfDay(day(t, "2024-03-14"))},
			cfg:     rangeCfg,
			want:    false,
		},
		{
			name:    "partial mode",
			day:     "2024-03-12",
			focused: "2024-03-14",
			sel:     started,
			cfg:     ModeConfig{AllowRangeSelection: true, AllowPartialRangeSelection: true, PartialRangeSelectionType: PartialOnOrAfter},
			want:    false,
		},
		{
			name:    "disabled focus",
			day:     "2024-03-12",
			focused: "2024-03-14",
			sel:     started,
			cfg:     ModeConfig{AllowRangeSelection: true, DisableAfter: day(t, "2024-03-13")},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var focused time.Time
			if tt.focused != "" {
				focused = day(t, tt.focused)
			}
			assert.Equal(t, tt.want, InPreview(day(t, tt.day), focused, tt.sel, tt.cfg))
		})
	}
}
