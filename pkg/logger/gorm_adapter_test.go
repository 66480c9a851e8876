package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLoggerRespectsLevel(t *testing.T) {
	logs := withObserver(t, zapcore.DebugLevel)

	l := NewGormLogger(gormlogger.Warn, DefaultGormConfig())
	ctx := context.Background()
	l.Info(ctx, "info %d", 1)
	l.Warn(ctx, "warn %d", 2)
	l.Error(ctx, "error %d", 3)

	var messages []string
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{"warn 2", "error 3"}, messages)
}

func TestGormLoggerLogModeReturnsCopy(t *testing.T) {
	l := NewGormLogger(gormlogger.Silent, DefaultGormConfig())
	verbose := l.LogMode(gormlogger.Info).(*GormLogger)

	assert.Equal(t, gormlogger.Info, verbose.level)
	assert.Equal(t, gormlogger.Silent, l.level)
}

func TestGormLoggerTrace(t *testing.T) {
	logs := withObserver(t, zapcore.DebugLevel)

	l := NewGormLogger(gormlogger.Info, GormConfig{SlowThreshold: 10 * time.Millisecond, IgnoreRecordNotFound: true})
	ctx := ContextWithRequestID(context.Background(), "req-7")

	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	l.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) { return "SELECT SLEEP(1)", 1 }, nil)
	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT * FROM Brokers WHERE Id = 9", 0 }, gormlogger.ErrRecordNotFound)
	l.Trace(ctx, time.Now(), func() (string, int64) { return "INSERT", 0 }, errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "sql", entries[0].Message)
	assert.Equal(t, "SELECT 1", entries[0].ContextMap()["sql"])
	assert.Equal(t, "req-7", entries[0].ContextMap()["request_id"])

	assert.Equal(t, "slow sql", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	assert.Equal(t, "sql failed", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestGormLoggerSilent(t *testing.T) {
	logs := withObserver(t, zapcore.DebugLevel)

	l := NewGormLogger(gormlogger.Silent, DefaultGormConfig())
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("x"))

	assert.Zero(t, logs.Len())
}

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, ParseGormLevel("debug"))
	assert.Equal(t, gormlogger.Error, ParseGormLevel("ERROR"))
	assert.Equal(t, gormlogger.Silent, ParseGormLevel("silent"))
	assert.Equal(t, gormlogger.Warn, ParseGormLevel(""))
}
