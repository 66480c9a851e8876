package mysql

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ecommerce/infrastructure/persistence/mysql/po"
	"ecommerce/pkg/logger"
)

const (
	DefaultMaxOpenConns    = 25
	DefaultMaxIdleConns    = 10
	DefaultConnMaxLifetime = 10 * time.Minute
	DefaultConnMaxIdleTime = 5 * time.Minute

	DefaultConnectRetries  = 5
	DefaultConnectMaxDelay = 30 * time.Second
)

type Config struct {
	Host            string        `mapstructure:"host" json:"host"`
	Port            string        `mapstructure:"port" json:"port"`
	Username        string        `mapstructure:"username" json:"username"`
	Password        string        `mapstructure:"password" json:"password"`
	Database        string        `mapstructure:"database" json:"database"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" json:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" json:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" json:"conn_max_idle_time"`
	LogLevel        string        `mapstructure:"log_level" json:"log_level"`

	// ConnectRetries and ConnectMaxDelay bound ConnectWithRetry.
	ConnectRetries  int           `mapstructure:"connect_retries" json:"connect_retries"`
	ConnectMaxDelay time.Duration `mapstructure:"connect_max_delay" json:"connect_max_delay"`
}

func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4&collation=utf8mb4_unicode_ci&readTimeout=10s&writeTimeout=10s",
		c.Username, c.Password, c.Host, c.Port, c.Database)
}

func (c *Config) applyDefaults() {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = DefaultMaxOpenConns
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = DefaultMaxIdleConns
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		c.MaxIdleConns = c.MaxOpenConns
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = DefaultConnMaxLifetime
	}
	if c.ConnMaxIdleTime <= 0 {
		c.ConnMaxIdleTime = DefaultConnMaxIdleTime
	}
	if c.ConnectRetries <= 0 {
		c.ConnectRetries = DefaultConnectRetries
	}
	if c.ConnectMaxDelay <= 0 {
		c.ConnectMaxDelay = DefaultConnectMaxDelay
	}
}

func (c *Config) Connect() (*gorm.DB, error) {
	c.applyDefaults()
	return Open(mysql.Open(c.DSN()), c)
}

// Open wires a dialector with the pool settings and the zap-backed GORM logger.
func Open(dialector gorm.Dialector, c *Config) (*gorm.DB, error) {
	c.applyDefaults()
	gormConfig := &gorm.Config{
		Logger:  logger.NewGormLogger(logger.ParseGormLevel(c.LogLevel), logger.DefaultGormConfig()),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(c.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(c.ConnMaxIdleTime)

	logger.Info("Database connected",
		zap.String("host", c.Host),
		zap.String("database", c.Database),
		zap.Int("max_open_conns", c.MaxOpenConns),
		zap.Int("max_idle_conns", c.MaxIdleConns),
		zap.Duration("conn_max_lifetime", c.ConnMaxLifetime),
	)
	return db, nil
}

// ConnectWithRetry keeps dialing until the database answers a ping, doubling
// the wait between attempts up to ConnectMaxDelay.
func (c *Config) ConnectWithRetry(ctx context.Context) (*gorm.DB, error) {
	c.applyDefaults()

	delay := time.Second
	var lastErr error
	for attempt := 1; attempt <= c.ConnectRetries; attempt++ {
		db, err := c.Connect()
		if err == nil {
			if err = ping(ctx, db); err == nil {
				return db, nil
			}
			closeDB(db)
		}
		lastErr = err
		logger.Warn("Database not reachable, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.ConnectRetries),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if attempt == c.ConnectRetries {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		delay *= 2
		if delay > c.ConnectMaxDelay {
			delay = c.ConnectMaxDelay
		}
	}
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", c.ConnectRetries, lastErr)
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate creates or alters every back-office table plus the outbox.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(po.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
