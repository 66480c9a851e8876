package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ecommerce/config"
	"ecommerce/infrastructure/messaging/natsbus"
	"ecommerce/infrastructure/messaging/redisstream"
	"ecommerce/infrastructure/persistence/mysql"
)

// NewOutboxPublisher picks the relay target named by worker.publisher. The
// returned close func releases the broker connection.
func NewOutboxPublisher(ctx context.Context, cfg *config.Config, logger *zap.Logger) (mysql.OutboxPublisher, func() error, error) {
	switch cfg.Worker.Publisher {
	case "", "log":
		return mysql.NewLoggingOutboxPublisher(logger), func() error { return nil }, nil
	case "redis":
		p, err := redisstream.New(ctx, redisstream.Config{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			StreamPrefix: cfg.Redis.StreamPrefix,
			MaxLen:       cfg.Redis.MaxLen,
		})
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	case "nats":
		p, err := natsbus.New(natsbus.Config{
			URL:           cfg.NATS.URL,
			SubjectPrefix: cfg.NATS.SubjectPrefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown outbox publisher %q", cfg.Worker.Publisher)
	}
}
