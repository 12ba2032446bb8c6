package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TodoEventType identifies the kind of change applied to a todo.
type TodoEventType string

const (
	// TodoEventType_TODO_ADDED represents the event when a todo item is added.
	TodoEventType_TODO_ADDED TodoEventType = "TODO.ADDED"
	// TodoEventType_TODO_UPDATED represents the event when a todo item content is updated.
	TodoEventType_TODO_UPDATED TodoEventType = "TODO.UPDATED"
	// TodoEventType_TODO_REMOVED represents the event when a todo item is removed.
	TodoEventType_TODO_REMOVED TodoEventType = "TODO.REMOVED"
)

// TodoEvent represents a domain event emitted by a todo mutation.
type TodoEvent struct {
	ID         uuid.UUID     `json:"id"`
	Type       TodoEventType `json:"type"`
	TodoID     TodoID        `json:"todo_id"`
	Content    string        `json:"content,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// TodoEventPublisher publishes todo events to downstream consumers.
type TodoEventPublisher interface {
	PublishEvent(ctx context.Context, event TodoEvent) error
}
