package mysql

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// OutboxPublisher ships one stored event to the outside world.
type OutboxPublisher interface {
	Publish(ctx context.Context, eventType, payload string) error
}

// LoggingOutboxPublisher only logs; used when no broker is configured.
type LoggingOutboxPublisher struct {
	logger *zap.Logger
}

func NewLoggingOutboxPublisher(logger *zap.Logger) *LoggingOutboxPublisher {
	return &LoggingOutboxPublisher{logger: logger}
}

func (p *LoggingOutboxPublisher) Publish(_ context.Context, eventType, payload string) error {
	p.logger.Info("Outbox event published",
		zap.String("event_type", eventType),
		zap.String("payload", payload),
	)
	return nil
}

type OutboxWorker struct {
	repository   *OutboxRepository
	publisher    OutboxPublisher
	logger       *zap.Logger
	pollInterval time.Duration
	batchSize    int
	maxRetries   int
}

func NewOutboxWorker(
	repository *OutboxRepository,
	publisher OutboxPublisher,
	logger *zap.Logger,
	pollInterval time.Duration,
	batchSize int,
	maxRetries int,
) (*OutboxWorker, error) {
	switch {
	case repository == nil:
		return nil, fmt.Errorf("outbox repository is required")
	case publisher == nil:
		return nil, fmt.Errorf("outbox publisher is required")
	case logger == nil:
		return nil, fmt.Errorf("logger is required")
	case pollInterval <= 0:
		return nil, fmt.Errorf("poll interval must be positive")
	case batchSize <= 0:
		return nil, fmt.Errorf("batch size must be positive")
	case maxRetries <= 0:
		return nil, fmt.Errorf("max retries must be positive")
	}

	return &OutboxWorker{
		repository:   repository,
		publisher:    publisher,
		logger:       logger.Named("outbox"),
		pollInterval: pollInterval,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
	}, nil
}

// Run polls until ctx is cancelled.
func (w *OutboxWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.ProcessBatch(ctx); err != nil {
				w.logger.Error("Outbox batch processing failed", zap.Error(err))
			}
		}
	}
}

// ProcessBatch relays one batch and returns how many events were published.
func (w *OutboxWorker) ProcessBatch(ctx context.Context) (int, error) {
	if n, err := w.repository.RequeueStale(ctx, 10*w.pollInterval); err != nil {
		w.logger.Warn("Failed to requeue stale outbox events", zap.Error(err))
	} else if n > 0 {
		w.logger.Info("Requeued stale outbox events", zap.Int64("count", n))
	}

	events, err := w.repository.GetPendingEvents(ctx, w.batchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, event := range events {
		if err := w.repository.MarkEventProcessing(ctx, event.ID); err != nil {
			w.logger.Warn("Skip outbox event due to lock contention",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		if err := w.publisher.Publish(ctx, event.EventType, event.Payload); err != nil {
			w.logger.Warn("Outbox publish failed",
				zap.String("event_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			if failErr := w.repository.MarkEventFailed(ctx, event.ID, w.maxRetries); failErr != nil {
				w.logger.Error("Failed to mark outbox event as failed",
					zap.String("event_id", event.ID),
					zap.Error(failErr),
				)
			}
			continue
		}

		if err := w.repository.MarkEventPublished(ctx, event.ID); err != nil {
			w.logger.Error("Failed to mark outbox event as published",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		published++
	}
	return published, nil
}
