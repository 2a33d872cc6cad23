package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"default config", DefaultConfig()},
		{"production config", ProductionConfig()},
		{"json to stderr", &Config{Level: "debug", Format: "json", Output: "stderr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)
			logger.Info("test message")
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("ERROR"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("unknown"))
}

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	// No logger stored yet, should fall back to a no-op
	assert.NotNil(t, FromContext(ctx))
	assert.Empty(t, GetRequestID(ctx))
	assert.Empty(t, GetUserID(ctx))

	logger := zap.NewNop()
	ctx = WithContext(ctx, logger)
	assert.Equal(t, logger, FromContext(ctx))

	ctx, reqLogger := WithRequestID(ctx, "req-123")
	assert.NotNil(t, reqLogger)
	assert.Equal(t, "req-123", GetRequestID(ctx))

	ctx, userLogger := WithUserID(ctx, "user-456")
	assert.NotNil(t, userLogger)
	assert.Equal(t, "user-456", GetUserID(ctx))
}

func TestGormLoggerLogMode(t *testing.T) {
	base := NewGormLogger(zap.NewNop(), gormlogger.Warn)
	clone := base.LogMode(gormlogger.Silent)

	assert.NotSame(t, base, clone)
	assert.Equal(t, gormlogger.Warn, base.logLevel)
}

func TestGormLoggerTrace(t *testing.T) {
	logger := NewGormLogger(zap.NewNop(), gormlogger.Info,
		WithSlowThreshold(time.Millisecond),
		WithIgnoreRecordNotFoundError(true),
	)

	// Should not panic at any level
	logger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)
	logger.Info(context.Background(), "info %s", "msg")
	logger.Warn(context.Background(), "warn %s", "msg")
	logger.Error(context.Background(), "error %s", "msg")
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("info"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel(""))
}
