package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelInfo, cfg.Level)
	assert.False(t, cfg.JSON)
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.AddSource)
}

func TestInit(t *testing.T) {
	t.Run("default_config", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{
			Level:  slog.LevelInfo,
			JSON:   false,
			Output: &buf,
		})
		assert.NotNil(t, Logger())
	})

	t.Run("json_config", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{
			Level:  slog.LevelDebug,
			JSON:   true,
			Output: &buf,
		})
		assert.True(t, Debug)
	})

	t.Run("nil_output_uses_stderr", func(t *testing.T) {
		Init(Config{
			Level:  slog.LevelInfo,
			Output: nil,
		})
		assert.NotNil(t, Logger())
	})
}

func TestInitDebug(t *testing.T) {
	InitDebug()
	assert.True(t, Debug)
}

func TestWith(t *testing.T) {
	logger := With("key", "value")
	assert.NotNil(t, logger)
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Level:  slog.LevelDebug,
		JSON:   true,
		Output: &buf,
	})

	t.Run("info", func(t *testing.T) {
		buf.Reset()
		Info("test message", "key", "value")
		assert.Contains(t, buf.String(), "test message")
	})

	t.Run("debug", func(t *testing.T) {
		buf.Reset()
		DebugLog("debug message", "key", "value")
		assert.Contains(t, buf.String(), "debug message")
	})

	t.Run("warn", func(t *testing.T) {
		buf.Reset()
		Warn("warn message", "key", "value")
		assert.Contains(t, buf.String(), "warn message")
	})

	t.Run("error", func(t *testing.T) {
		buf.Reset()
		Error("error message", "key", "value")
		assert.Contains(t, buf.String(), "error message")
	})
}

func TestContextLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Level:  slog.LevelDebug,
		JSON:   true,
		Output: &buf,
	})

	ctx := context.Background()

	t.Run("info_context", func(t *testing.T) {
		buf.Reset()
		InfoContext(ctx, "test message", "key", "value")
		assert.Contains(t, buf.String(), "test message")
	})

	t.Run("error_context", func(t *testing.T) {
		buf.Reset()
		ErrorContext(ctx, "error message", "key", "value")
		assert.Contains(t, buf.String(), "error message")
	})
}

func TestKeyConstants(t *testing.T) {
	assert.Equal(t, "request_id", KeyRequestID)
	assert.Equal(t, "op", KeyOperation)
	assert.Equal(t, "duration_ms", KeyDuration)
	assert.Equal(t, "error", KeyError)
	assert.Equal(t, "entry_id", KeyEntryID)
	assert.Equal(t, "project", KeyProject)
	assert.Equal(t, "category", KeyCategory)
	assert.Equal(t, "status", KeyStatus)
	assert.Equal(t, "count", KeyCount)
}

// =============================================================================
// Context Tests
// =============================================================================

func TestGenerateRequestID(t *testing.T) {
	id1 := GenerateRequestID()
	id2 := GenerateRequestID()

	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, id2)
	assert.Len(t, id1, 16) // 8 bytes = 16 hex chars
	assert.NotEqual(t, id1, id2)
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-request-123")
	assert.Equal(t, "test-request-123", RequestIDFromContext(ctx))
}

func TestNewRequestContext(t *testing.T) {
	ctx := NewRequestContext()
	id := RequestIDFromContext(ctx)
	assert.NotEmpty(t, id)
	assert.Len(t, id, 16)
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Level:  slog.LevelInfo,
		JSON:   true,
		Output: &buf,
	})

	ctx := WithRequestID(context.Background(), "req-abc")
	LoggerFromContext(ctx).Info("tagged")

	assert.Contains(t, buf.String(), "req-abc")
}
