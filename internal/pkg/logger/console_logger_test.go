//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(buf *bytes.Buffer, level slog.Level, exit func(int)) *ConsoleLogger {
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})
	return &ConsoleLogger{slogLogger{logger: slog.New(handler), exit: exit}}
}

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedLogger(&buf, slog.LevelInfo, func(int) {})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestConsoleLogger_KeyValueAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedLogger(&buf, slog.LevelDebug, func(int) {})

	logger.Info("lead stored", "kind", "quote", "id", 7)

	output := buf.String()
	assert.Contains(t, output, `msg="lead stored"`)
	assert.Contains(t, output, "kind=quote")
	assert.Contains(t, output, "id=7")
}

func TestConsoleLogger_FatalCallsExit(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	logger := newBufferedLogger(&buf, slog.LevelInfo, func(c int) { code = c })

	logger.Fatal("cannot continue")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "cannot continue")
}

func TestConsoleLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedLogger(&buf, slog.LevelInfo, func(int) {})

	assert.PanicsWithValue(t, "boom", func() {
		logger.Panic("boom")
	})
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}
