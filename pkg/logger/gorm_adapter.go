package logger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

type GormConfig struct {
	SlowThreshold        time.Duration
	IgnoreRecordNotFound bool
}

func DefaultGormConfig() GormConfig {
	return GormConfig{SlowThreshold: 200 * time.Millisecond, IgnoreRecordNotFound: true}
}

// GormLogger routes GORM's statements and errors into zap.
type GormLogger struct {
	level  gormlogger.LogLevel
	logger *zap.Logger
	config GormConfig
}

// NewGormLogger binds to the global logger as it is at call time.
func NewGormLogger(level gormlogger.LogLevel, cfg GormConfig) *GormLogger {
	return &GormLogger{level: level, logger: Get().Named("gorm"), config: cfg}
}

// ParseGormLevel maps the database.log_level setting.
func ParseGormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "debug", "info":
		return gormlogger.Info
	case "error":
		return gormlogger.Error
	case "silent":
		return gormlogger.Silent
	default:
		return gormlogger.Warn
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) forContext(ctx context.Context) *zap.Logger {
	if id := RequestIDFromContext(ctx); id != "" {
		return l.logger.With(zap.String("request_id", id))
	}
	return l.logger
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.forContext(ctx).Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.forContext(ctx).Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.forContext(ctx).Error(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
	}
	log := l.forContext(ctx)

	switch {
	case err != nil && l.level >= gormlogger.Error:
		if errors.Is(err, gormlogger.ErrRecordNotFound) && l.config.IgnoreRecordNotFound {
			return
		}
		log.Error("sql failed", append(fields, zap.Error(err))...)
	case l.config.SlowThreshold > 0 && elapsed > l.config.SlowThreshold && l.level >= gormlogger.Warn:
		log.Warn("slow sql", append(fields, zap.Duration("threshold", l.config.SlowThreshold))...)
	case l.level >= gormlogger.Info:
		log.Debug("sql", fields...)
	}
}

var _ gormlogger.Interface = (*GormLogger)(nil)
