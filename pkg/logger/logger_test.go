package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "error 4")
}

func TestLogger_UnknownLevelLogsEverything(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "verbose")

	l.Debug("hidden?")
	assert.Contains(t, buf.String(), "hidden?")
}

func TestLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bot.log")

	l, err := NewLogger(path, "debug", false)
	require.NoError(t, err)
	l.Lookup("AAPL", 150, "+50.00%", 42)
	l.Close()

	assert.FileExists(t, path)
}

func TestGlobal_SetGlobal(t *testing.T) {
	prev := GetLogger()
	t.Cleanup(func() { SetGlobal(prev) })

	var buf bytes.Buffer
	SetGlobal(NewWithWriter(&buf, "info"))
	Info("hello %s", "world")
	Debug("quiet")

	assert.Contains(t, buf.String(), "hello world")
	assert.NotContains(t, buf.String(), "quiet")
}
