package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const outboxBatchSize = 100

// MessageRelay is a runnable that delivers outbox events through the configured publisher.
type MessageRelay struct {
	Uow       domain.UnitOfWork         `resolve:""`
	Publisher domain.TodoEventPublisher `resolve:""`
	Logger    *log.Logger               `resolve:""`
	Interval  time.Duration             `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
}

// Run starts the periodic processing of outbox events.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Println("MessageRelay: running...")
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := mr.processBatch(ctx); err != nil {
				mr.Logger.Printf("MessageRelay: error processing batch: %v", err)
			}
		case <-ctx.Done():
			mr.Logger.Println("MessageRelay: stopping...")
			return nil
		}
	}
}

// processBatch publishes a batch of pending events. Delivered events are deleted,
// failed ones are retried until MaxRetries and then marked FAILED.
// Publishing happens outside any unit of work so a slow publisher never holds
// the store while mutations wait.
func (mr MessageRelay) processBatch(ctx context.Context) error {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	var events []domain.OutboxEvent
	err := mr.Uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		var err error
		events, err = uow.Outbox().FetchPendingEvents(spanCtx, outboxBatchSize)
		return err
	})
	if tracing.RecordErrorAndStatus(span, err) {
		return err
	}

	for _, event := range events {
		pubErr := mr.publish(spanCtx, event)
		err := mr.Uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
			if pubErr == nil {
				return uow.Outbox().DeleteEvent(spanCtx, event.ID)
			}
			status := domain.OutboxStatus_PENDING
			if event.RetryCount+1 >= event.MaxRetries {
				status = domain.OutboxStatus_FAILED
			}
			return uow.Outbox().UpdateEvent(spanCtx, event.ID, status, event.RetryCount+1, pubErr.Error())
		})
		if tracing.RecordErrorAndStatus(span, err) {
			return err
		}
	}

	return nil
}

func (mr MessageRelay) publish(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := tracing.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.Event.Type)),
			attribute.Int64("todo_id", int64(event.Event.TodoID)),
		),
	)
	defer span.End()

	err := mr.Publisher.PublishEvent(spanCtx, event.Event)
	if tracing.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}
