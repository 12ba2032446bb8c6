package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TodoRepository implements domain.TodoRepository on top of the todos table.
type TodoRepository struct {
	sb     squirrel.StatementBuilderType
	viewer domain.User
}

// NewTodoRepository creates a TodoRepository that runs its statements with br,
// which is either the *sql.DB or the *sql.Tx of a unit of work.
func NewTodoRepository(br squirrel.BaseRunner, viewer domain.User) TodoRepository {
	return TodoRepository{
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
		viewer: viewer,
	}
}

// CreateTodo inserts a todo and returns its generated id.
func (tr TodoRepository) CreateTodo(ctx context.Context, content string) (domain.TodoID, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	var id int64
	err := tr.sb.Insert("todos").
		Columns("content").
		Values(content).
		Suffix("RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&id)
	if tracing.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("failed to insert todo: %w", err)
	}
	return domain.TodoID(id), nil
}

// GetTodo retrieves a todo by its id.
func (tr TodoRepository) GetTodo(ctx context.Context, id domain.TodoID) (domain.Todo, error) {
	spanCtx, span := tracing.Start(ctx, trace.WithAttributes(attribute.Int64("todo_id", int64(id))))
	defer span.End()

	var (
		todo    domain.Todo
		localID int64
	)
	err := tr.sb.Select("id", "content").
		From("todos").
		Where(squirrel.Eq{"id": int64(id)}).
		QueryRowContext(spanCtx).
		Scan(&localID, &todo.Content)
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.NewNotFoundErr(fmt.Sprintf("todo with id %d not found", id))
		tracing.RecordErrorAndStatus(span, err)
		return domain.Todo{}, err
	}
	if tracing.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}
	todo.ID = domain.TodoID(localID)
	return todo, nil
}

// DeleteTodo deletes a todo. Deleting a missing todo is not an error.
func (tr TodoRepository) DeleteTodo(ctx context.Context, id domain.TodoID) error {
	spanCtx, span := tracing.Start(ctx, trace.WithAttributes(attribute.Int64("todo_id", int64(id))))
	defer span.End()

	_, err := tr.sb.Delete("todos").
		Where(squirrel.Eq{"id": int64(id)}).
		ExecContext(spanCtx)
	if tracing.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// UpdateTodo overwrites the content of an existing todo.
func (tr TodoRepository) UpdateTodo(ctx context.Context, id domain.TodoID, content string) error {
	spanCtx, span := tracing.Start(ctx, trace.WithAttributes(attribute.Int64("todo_id", int64(id))))
	defer span.End()

	res, err := tr.sb.Update("todos").
		Set("content", content).
		Where(squirrel.Eq{"id": int64(id)}).
		ExecContext(spanCtx)
	if tracing.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	n, err := res.RowsAffected()
	if tracing.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	if n == 0 {
		err = domain.NewNotFoundErr(fmt.Sprintf("todo with id %d not found", id))
		tracing.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// CountTodos returns the number of todos.
func (tr TodoRepository) CountTodos(ctx context.Context) (int, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	var count int
	err := tr.sb.Select("COUNT(*)").
		From("todos").
		QueryRowContext(spanCtx).
		Scan(&count)
	if tracing.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	return count, nil
}

// ListTodos returns up to limit todos in insertion order, skipping the first offset ones.
func (tr TodoRepository) ListTodos(ctx context.Context, offset int, limit int) ([]domain.Todo, error) {
	spanCtx, span := tracing.Start(ctx, trace.WithAttributes(
		attribute.Int("offset", offset),
		attribute.Int("limit", limit),
	))
	defer span.End()

	if limit <= 0 {
		return []domain.Todo{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := tr.sb.Select("id", "content").
		From("todos").
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		QueryContext(spanCtx)
	if tracing.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	todos := []domain.Todo{}
	for rows.Next() {
		var (
			id      int64
			content string
		)
		if err := rows.Scan(&id, &content); tracing.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, domain.Todo{ID: domain.TodoID(id), Content: content})
	}
	if err := rows.Err(); tracing.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// CurrentUser returns the single configured viewer.
func (tr TodoRepository) CurrentUser(ctx context.Context) (domain.User, error) {
	_, span := tracing.Start(ctx)
	defer span.End()

	return tr.viewer, nil
}
