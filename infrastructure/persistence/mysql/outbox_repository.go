package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecommerce/domain/shared"
	"ecommerce/infrastructure/persistence"
	"ecommerce/infrastructure/persistence/mysql/po"
)

// OutboxRepository stores domain events next to the aggregate rows that
// raised them, for the outbox worker to relay later.
type OutboxRepository struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) *OutboxRepository {
	return &OutboxRepository{db: db}
}

func (r *OutboxRepository) conn(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// SaveEvent joins the unit-of-work transaction when ctx carries one.
func (r *OutboxRepository) SaveEvent(ctx context.Context, event shared.DomainEvent) error {
	if err := shared.ValidateEvent(event); err != nil {
		return fmt.Errorf("invalid domain event: %w", err)
	}
	row, err := po.FromDomainEvent(event)
	if err != nil {
		return fmt.Errorf("failed to convert domain event: %w", err)
	}
	if err := r.conn(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to save event to outbox: %w", err)
	}
	return nil
}

// GetPendingEvents returns the oldest pending events. Rows locked by another
// worker are skipped.
func (r *OutboxRepository) GetPendingEvents(ctx context.Context, limit int) ([]*po.OutboxEventPO, error) {
	var events []*po.OutboxEventPO
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", string(po.EventStatusPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending events: %w", err)
	}
	return events, nil
}

// MarkEventProcessing claims a pending event; it fails when another worker
// got there first.
func (r *OutboxRepository) MarkEventProcessing(ctx context.Context, eventID string) error {
	result := r.conn(ctx).Model(&po.OutboxEventPO{}).
		Where("id = ? AND status = ?", eventID, string(po.EventStatusPending)).
		Update("status", string(po.EventStatusProcessing))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("event not found or already being processed: %s", eventID)
	}
	return nil
}

func (r *OutboxRepository) MarkEventPublished(ctx context.Context, eventID string) error {
	result := r.conn(ctx).Model(&po.OutboxEventPO{}).
		Where("id = ?", eventID).
		Update("status", string(po.EventStatusPublished))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("event not found: %s", eventID)
	}
	return nil
}

// MarkEventFailed puts the event back in the queue until maxRetries is
// reached, then parks it as FAILED.
func (r *OutboxRepository) MarkEventFailed(ctx context.Context, eventID string, maxRetries int) error {
	db := r.conn(ctx)

	var event po.OutboxEventPO
	if err := db.First(&event, "id = ?", eventID).Error; err != nil {
		return fmt.Errorf("failed to find event: %w", err)
	}

	retries := event.RetryCount + 1
	status := po.EventStatusFailed
	if retries < maxRetries {
		status = po.EventStatusPending
	}

	return db.Model(&po.OutboxEventPO{}).
		Where("id = ?", eventID).
		Updates(map[string]any{
			"status":      string(status),
			"retry_count": retries,
		}).Error
}

// RequeueStale returns events stuck in PROCESSING for longer than olderThan
// (a worker died mid-publish) to the pending queue.
func (r *OutboxRepository) RequeueStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	result := r.conn(ctx).Model(&po.OutboxEventPO{}).
		Where("status = ? AND updated_at < ?", string(po.EventStatusProcessing), time.Now().Add(-olderThan)).
		Update("status", string(po.EventStatusPending))
	return result.RowsAffected, result.Error
}

var _ shared.OutboxRepository = (*OutboxRepository)(nil)
