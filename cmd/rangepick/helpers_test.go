package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/rangepick/internal/logger"
)

func newTestApp(t *testing.T) *AppContext {
	t.Helper()

	bootstrap, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)

	return &AppContext{
		Bootstrap:  bootstrap,
		Location:   time.UTC,
		Now:        func() time.Time { return time.Date(2024, time.March, 20, 9, 30, 0, 0, time.UTC) },
		IsTerminal: func() bool { return true },
	}
}

func executeCommand(t *testing.T, app *AppContext, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd(app)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "calendar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
