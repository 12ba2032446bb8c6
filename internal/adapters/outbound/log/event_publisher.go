package log

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/cleitonmarx/symbiont/depend"
)

// TodoEventPublisher implements domain.TodoEventPublisher by writing events to the logger.
type TodoEventPublisher struct {
	logger *log.Logger
}

// NewTodoEventPublisher creates a new TodoEventPublisher.
func NewTodoEventPublisher(logger *log.Logger) TodoEventPublisher {
	return TodoEventPublisher{logger: logger}
}

// PublishEvent logs the event as a JSON line.
func (p TodoEventPublisher) PublishEvent(ctx context.Context, event domain.TodoEvent) error {
	_, span := tracing.Start(ctx)
	defer span.End()

	b, err := json.Marshal(event)
	if tracing.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	p.logger.Printf("TodoEvent: %s", b)
	return nil
}

// InitTodoEventPublisher registers the log publisher when EVENT_PUBLISHER is "log".
type InitTodoEventPublisher struct {
	Logger    *log.Logger `resolve:""`
	Publisher string      `config:"EVENT_PUBLISHER" default:"log"`
}

// Initialize registers the TodoEventPublisher in the dependency container.
func (i InitTodoEventPublisher) Initialize(ctx context.Context) (context.Context, error) {
	if i.Publisher != "log" {
		return ctx, nil
	}
	depend.Register[domain.TodoEventPublisher](NewTodoEventPublisher(i.Logger))
	return ctx, nil
}
