package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fix-layout/pkg/core"
)

var _ core.Logger = (*Logger)(nil)

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(WithWriter(&buf), WithFile(""), WithLevel(zerolog.DebugLevel))
	require.NoError(t, err)
	defer log.Close()

	log.Debug("rule evaluated", "rule", 2, "matched", true)
	log.Error("spawn failed", errors.New("boom"), "command", "xkb-switch")

	out := buf.String()
	assert.Contains(t, out, "rule evaluated")
	assert.Contains(t, out, "rule=2")
	assert.Contains(t, out, "matched=true")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "command=xkb-switch")
	assert.Contains(t, out, "file=logger_test.go")
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(WithWriter(&buf), WithFile(""), WithLevel(zerolog.InfoLevel))
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.log")
	log, err := NewLogger(WithFile(path))
	require.NoError(t, err)

	log.Info("to file", "key", "value")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, string(data), "key=value")
}

func TestLogFieldsOddCount(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(WithWriter(&buf), WithFile(""))
	require.NoError(t, err)

	log.Info("odd", "dangling")
	log.Info("non-string key", 1, "x")

	assert.Contains(t, buf.String(), "odd")
	assert.NotContains(t, buf.String(), "dangling")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nothing")
	log.Error("nothing", errors.New("x"))
	assert.NoError(t, log.Close())
}
