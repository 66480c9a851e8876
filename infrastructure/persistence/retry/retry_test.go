package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"ecommerce/config"
	"ecommerce/domain/shared"
)

func TestIsRetryableError(t *testing.T) {
	cfg := DefaultConfig

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadlock", &mysqlDriver.MySQLError{Number: 1213}, true},
		{"wrapped deadlock", fmt.Errorf("insert: %w", &mysqlDriver.MySQLError{Number: 1213}), true},
		{"lock wait timeout", &mysqlDriver.MySQLError{Number: 1205}, true},
		{"duplicate entry", &mysqlDriver.MySQLError{Number: 1062}, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, false},
		{"invalid transaction", gorm.ErrInvalidTransaction, true},
		{"deadlock text", errors.New("Deadlock found when trying to get lock"), true},
		{"connection lost", errors.New("connection was lost"), true},
		{"business rule", shared.NewBusinessRuleError("broker", "duplicado"), false},
		{"not found", shared.NewNotFoundError("broker", 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryableError(tt.err, cfg))
		})
	}
}

func TestIsRetryableErrorHonoursSwitches(t *testing.T) {
	cfg := DefaultConfig
	cfg.RetryOnDeadlock = false
	cfg.RetryOnLockTimeout = false

	assert.False(t, IsRetryableError(&mysqlDriver.MySQLError{Number: 1213}, cfg))
	assert.False(t, IsRetryableError(&mysqlDriver.MySQLError{Number: 1205}, cfg))

	cfg.RetryPredicate = func(err error) bool { return err.Error() == "flaky" }
	assert.True(t, IsRetryableError(errors.New("flaky"), cfg))
}

func TestExponentialBackoffWithJitter(t *testing.T) {
	cfg := Config{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, BackoffFactor: 2}

	assert.Zero(t, ExponentialBackoffWithJitter(0, cfg))
	assert.Equal(t, 100*time.Millisecond, ExponentialBackoffWithJitter(1, cfg))
	assert.Equal(t, 400*time.Millisecond, ExponentialBackoffWithJitter(3, cfg))
	assert.Equal(t, time.Second, ExponentialBackoffWithJitter(10, cfg))

	cfg.JitterEnabled = true
	for i := 0; i < 20; i++ {
		d := ExponentialBackoffWithJitter(1, cfg)
		assert.GreaterOrEqual(t, d, 80*time.Millisecond)
		assert.LessOrEqual(t, d, 120*time.Millisecond)
	}
}

func TestExecuteWithRetry(t *testing.T) {
	cfg := Config{Enabled: true, MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 1, RetryOnDeadlock: true}
	deadlock := &mysqlDriver.MySQLError{Number: 1213}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := ExecuteWithRetry(context.Background(), cfg, func(context.Context) error {
			calls++
			if calls < 3 {
				return deadlock
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := ExecuteWithRetry(context.Background(), cfg, func(context.Context) error {
			calls++
			return deadlock
		})
		assert.ErrorIs(t, err, deadlock)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		calls := 0
		permanent := errors.New("syntax error")
		err := ExecuteWithRetry(context.Background(), cfg, func(context.Context) error {
			calls++
			return permanent
		})
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("disabled runs once", func(t *testing.T) {
		calls := 0
		disabled := cfg
		disabled.Enabled = false
		_ = ExecuteWithRetry(context.Background(), disabled, func(context.Context) error {
			calls++
			return deadlock
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := ExecuteWithRetry(ctx, cfg, func(context.Context) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFromAppConfig(t *testing.T) {
	app := &config.Config{Database: config.DatabaseConfig{Retry: config.RetryConfig{
		Enabled:         true,
		MaxAttempts:     5,
		InitialDelay:    50 * time.Millisecond,
		MaxDelay:        time.Second,
		BackoffFactor:   1.5,
		RetryOnDeadlock: true,
	}}}

	got := FromAppConfig(app)
	assert.True(t, got.Enabled)
	assert.Equal(t, 5, got.MaxAttempts)
	assert.Equal(t, 50*time.Millisecond, got.InitialDelay)
	assert.Equal(t, 1.5, got.BackoffFactor)
	assert.True(t, got.RetryOnDeadlock)
	assert.False(t, got.RetryOnLockTimeout)
}
