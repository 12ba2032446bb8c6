package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus is the delivery status of an outbox event.
type OutboxStatus string

const (
	OutboxStatus_PENDING OutboxStatus = "PENDING"
	OutboxStatus_FAILED  OutboxStatus = "FAILED"
)

// DefaultOutboxMaxRetries is the number of delivery attempts before an event is marked as failed.
const DefaultOutboxMaxRetries = 3

// OutboxEvent is a todo event waiting to be delivered.
type OutboxEvent struct {
	ID         uuid.UUID
	Event      TodoEvent
	Status     OutboxStatus
	RetryCount int
	MaxRetries int
	LastError  string
	CreatedAt  time.Time
}

// OutboxRepository stores todo events written in the same unit of work as the mutation.
type OutboxRepository interface {
	RecordEvent(ctx context.Context, event TodoEvent) error
	FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	UpdateEvent(ctx context.Context, id uuid.UUID, status OutboxStatus, retryCount int, lastError string) error
}
