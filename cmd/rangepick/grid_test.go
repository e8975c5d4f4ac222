package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rperrors "github.com/alexisbeaulieu97/rangepick/pkg/errors"
)

func TestGridCommand_CurrentMonth(t *testing.T) {
	stdout, _, err := executeCommand(t, newTestApp(t), "grid")
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	require.Greater(t, len(lines), 7)
	assert.Equal(t, "March 2024", lines[0])
	assert.Equal(t, " Su  Mo  Tu  We  Th  Fr  Sa", lines[1])
	assert.Equal(t, "  ·   ·   ·   ·   ·   1   2", lines[2])
	assert.Contains(t, stdout, " 17  18  19  20* 21  22  23")
	assert.Contains(t, stdout, "Selected: no selection")
}

func TestGridCommand_MonthFlag(t *testing.T) {
	stdout, _, err := executeCommand(t, newTestApp(t), "grid", "--month", "2024-07")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "July 2024\n"))

	_, _, err = executeCommand(t, newTestApp(t), "grid", "--month", "July")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want YYYY-MM")
}

func TestGridCommand_ConfiguredSelection(t *testing.T) {
	path := writeConfig(t, `
mode:
  range: true
display:
  week_start: monday
selection:
  start: 2024-03-10
  end: 2024-03-15
`)

	stdout, _, err := executeCommand(t, newTestApp(t), "grid", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, " Mo  Tu  We  Th  Fr  Sa  Su")
	assert.Contains(t, stdout, "[10]")
	assert.Contains(t, stdout, "-11--12--13--14-[15] 16  17")
	assert.Contains(t, stdout, "Selected: 2024-03-10 to 2024-03-15")
}

func TestGridCommand_DisabledDays(t *testing.T) {
	path := writeConfig(t, `
mode:
  disable_before: 2024-03-05
`)

	stdout, _, err := executeCommand(t, newTestApp(t), "grid", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "( 3)( 4)  5   6 ")
}

func TestGridCommand_InvalidConfig(t *testing.T) {
	path := writeConfig(t, `
mode:
  partial: true
`)

	_, _, err := executeCommand(t, newTestApp(t), "grid", "--config", path)
	var validationErr *rperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestGridCommand_MissingConfig(t *testing.T) {
	_, _, err := executeCommand(t, newTestApp(t), "grid", "--config", "does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}
