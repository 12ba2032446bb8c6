package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// OutboxRepository implements domain.OutboxRepository on top of the outbox_events table.
type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

// NewOutboxRepository creates an OutboxRepository that runs its statements with br.
func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// RecordEvent stores a todo event as a pending outbox row.
func (ob OutboxRepository) RecordEvent(ctx context.Context, event domain.TodoEvent) error {
	spanCtx, span := tracing.Start(ctx, trace.WithAttributes(
		attribute.String("event_type", string(event.Type)),
	))
	defer span.End()

	payload, err := json.Marshal(event)
	if tracing.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal todo event: %w", err)
	}

	_, err = ob.sb.Insert("outbox_events").
		Columns(
			"id",
			"todo_id",
			"event_type",
			"payload",
			"status",
			"retry_count",
			"max_retries",
			"created_at",
		).
		Values(
			event.ID,
			int64(event.TodoID),
			string(event.Type),
			payload,
			string(domain.OutboxStatus_PENDING),
			0,
			domain.DefaultOutboxMaxRetries,
			event.OccurredAt,
		).
		ExecContext(spanCtx)
	if tracing.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// FetchPendingEvents locks and returns up to limit pending events, oldest first.
// Rows locked by another relay are skipped.
func (ob OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	rows, err := ob.sb.Select(
		"id",
		"payload",
		"status",
		"retry_count",
		"max_retries",
		"last_error",
		"created_at",
	).
		From("outbox_events").
		Where(squirrel.Eq{"status": string(domain.OutboxStatus_PENDING)}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(spanCtx)
	if tracing.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to fetch outbox events: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var (
			oe        domain.OutboxEvent
			payload   []byte
			status    string
			lastError sql.NullString
			createdAt time.Time
		)
		err := rows.Scan(
			&oe.ID,
			&payload,
			&status,
			&oe.RetryCount,
			&oe.MaxRetries,
			&lastError,
			&createdAt,
		)
		if tracing.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("failed to scan outbox event: %w", err)
		}
		if err := json.Unmarshal(payload, &oe.Event); tracing.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("failed to unmarshal outbox event %s: %w", oe.ID, err)
		}
		oe.Status = domain.OutboxStatus(status)
		oe.LastError = lastError.String
		oe.CreatedAt = createdAt
		events = append(events, oe)
	}
	if err := rows.Err(); tracing.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to fetch outbox events: %w", err)
	}

	return events, nil
}

// DeleteEvent removes a delivered event.
func (ob OutboxRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	_, err := ob.sb.Delete("outbox_events").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if tracing.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to delete outbox event: %w", err)
	}
	return nil
}

// UpdateEvent records a failed delivery attempt.
func (ob OutboxRepository) UpdateEvent(ctx context.Context, id uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	res, err := ob.sb.Update("outbox_events").
		Set("status", string(status)).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if tracing.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to update outbox event: %w", err)
	}
	n, err := res.RowsAffected()
	if tracing.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to update outbox event: %w", err)
	}
	if n == 0 {
		err = domain.NewNotFoundErr(fmt.Sprintf("outbox event %s not found", id))
		tracing.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}
