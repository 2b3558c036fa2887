package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs(t *testing.T) {
	t.Parallel()

	got := sanitizeKVs([]interface{}{"user_id", 7, "api_key", "sk-live", "Authorization", "Bearer x", "dangling"})
	assert.Equal(t, []interface{}{"user_id", 7, "api_key", "[REDACTED]", "Authorization", "[REDACTED]", "dangling"}, got)
}

func TestLoggerRedactsCredentials(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("service", "test").Info("saved settings", "apiKey", "sk-123", "category", "Go")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "[REDACTED]", fields["apiKey"])
		assert.Equal(t, "Go", fields["category"])
		assert.Equal(t, "test", fields["service"])
	}
}
