package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/cleitonmarx/symbiont/config"
	"github.com/cleitonmarx/symbiont/depend"
)

// TodoEventPublisher implements domain.TodoEventPublisher using Google Cloud Pub/Sub.
type TodoEventPublisher struct {
	publisher *pubsubV2.Publisher
}

// NewTodoEventPublisher creates a new TodoEventPublisher for the given topic.
func NewTodoEventPublisher(client *pubsubV2.Client, topicID string) *TodoEventPublisher {
	return &TodoEventPublisher{
		publisher: client.Publisher(topicID),
	}
}

// PublishEvent publishes a todo event and waits for the server acknowledgement.
func (p *TodoEventPublisher) PublishEvent(ctx context.Context, event domain.TodoEvent) error {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	eventData, err := json.Marshal(event)
	if tracing.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	result := p.publisher.Publish(spanCtx, &pubsubV2.Message{
		Data: eventData,
		Attributes: map[string]string{
			"event_type": string(event.Type),
			"todo_id":    strconv.FormatInt(int64(event.TodoID), 10),
		},
	})

	_, err = result.Get(spanCtx)
	if tracing.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Stop flushes pending messages and releases the publisher.
func (p *TodoEventPublisher) Stop() {
	p.publisher.Stop()
}

// InitTodoEventPublisher creates the Pub/Sub client and registers the publisher
// when EVENT_PUBLISHER is "pubsub".
type InitTodoEventPublisher struct {
	Logger    *log.Logger `resolve:""`
	Publisher string      `config:"EVENT_PUBLISHER" default:"log"`
	TopicID   string      `config:"PUBSUB_TOPIC_ID" default:"todo-events"`
	client    *pubsubV2.Client
	publisher *TodoEventPublisher
}

// Initialize registers the TodoEventPublisher in the dependency container.
func (i *InitTodoEventPublisher) Initialize(ctx context.Context) (context.Context, error) {
	if i.Publisher != "pubsub" {
		return ctx, nil
	}

	// PUBSUB_PROJECT_ID is only required when Pub/Sub is selected.
	projectID, err := config.Get[string](ctx, "PUBSUB_PROJECT_ID")
	if err != nil {
		return ctx, err
	}

	client, err := pubsubV2.NewClient(ctx, projectID)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	i.client = client
	i.publisher = NewTodoEventPublisher(client, i.TopicID)

	depend.Register(client)
	depend.Register[domain.TodoEventPublisher](i.publisher)

	return ctx, nil
}

// Close stops the publisher and closes the client.
func (i *InitTodoEventPublisher) Close() {
	if i.publisher != nil {
		i.publisher.Stop()
	}
	if i.client != nil {
		if err := i.client.Close(); err != nil {
			i.Logger.Printf("InitTodoEventPublisher: failed to close pubsub client: %v", err)
		}
	}
}
