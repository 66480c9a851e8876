// Package redisstream relays outbox events to Redis Streams, one stream per
// event type.
package redisstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultStreamPrefix = "ecommerce.events."

// client is the subset of go-redis the publisher needs.
type client interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Close() error
}

type Config struct {
	Addr         string
	Password     string
	DB           int
	StreamPrefix string
	// MaxLen caps each stream approximately; 0 keeps everything.
	MaxLen int64
}

type Publisher struct {
	client client
	prefix string
	maxLen int64
}

// New dials Redis and checks the connection.
func New(ctx context.Context, cfg Config) (*Publisher, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redisstream: addr is required")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redisstream: ping %s: %w", cfg.Addr, err)
	}
	return NewWithClient(rdb, cfg), nil
}

func NewWithClient(c client, cfg Config) *Publisher {
	prefix := cfg.StreamPrefix
	if prefix == "" {
		prefix = DefaultStreamPrefix
	}
	return &Publisher{client: c, prefix: prefix, maxLen: cfg.MaxLen}
}

func (p *Publisher) Stream(eventType string) string {
	return p.prefix + eventType
}

// Publish appends one entry holding the event type and its JSON payload.
func (p *Publisher) Publish(ctx context.Context, eventType, payload string) error {
	args := &redis.XAddArgs{
		Stream: p.Stream(eventType),
		Values: map[string]any{
			"type":         eventType,
			"payload":      payload,
			"published_at": time.Now().UTC().Format(time.RFC3339Nano),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}
	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("redisstream: xadd %s: %w", args.Stream, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
