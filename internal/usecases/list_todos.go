package usecases

import (
	"context"
	"fmt"
	"math"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	// DefaultPageSize is used when no page size is given.
	DefaultPageSize = 20
	// MaxPageSize is the largest page a single query may request.
	MaxPageSize = 100
)

// ListTodoParams holds the parameters for listing todos.
type ListTodoParams struct {
	First *int
	After *string
}

// ListTodoOptions defines a function type for specifying options when listing todos.
type ListTodoOptions func(*ListTodoParams)

// WithFirst limits the number of edges returned.
func WithFirst(first int) ListTodoOptions {
	return func(params *ListTodoParams) {
		params.First = &first
	}
}

// WithAfter starts the listing right after the given cursor.
func WithAfter(cursor string) ListTodoOptions {
	return func(params *ListTodoParams) {
		params.After = &cursor
	}
}

// ListTodos defines the interface for the ListTodos use case.
type ListTodos interface {
	Query(ctx context.Context, opts ...ListTodoOptions) (domain.TodoConnection, error)
}

// ListTodosImpl is the implementation of the ListTodos use case.
type ListTodosImpl struct {
	todoRepo domain.TodoRepository
}

// NewListTodosImpl creates a new instance of ListTodosImpl.
func NewListTodosImpl(todoRepo domain.TodoRepository) ListTodosImpl {
	return ListTodosImpl{
		todoRepo: todoRepo,
	}
}

// Query returns a forward page of the viewer's todos in insertion order.
func (lti ListTodosImpl) Query(ctx context.Context, opts ...ListTodoOptions) (domain.TodoConnection, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	params := ListTodoParams{}
	for _, opt := range opts {
		opt(&params)
	}

	first := DefaultPageSize
	if params.First != nil {
		first = *params.First
	}
	if first < 0 || first > MaxPageSize {
		err := domain.NewValidationErr(fmt.Sprintf("first must be between 0 and %d", MaxPageSize))
		tracing.RecordErrorAndStatus(span, err)
		return domain.TodoConnection{}, err
	}

	offset := 0
	if params.After != nil {
		after, err := domain.CursorToOffset(*params.After)
		if tracing.RecordErrorAndStatus(span, err) {
			return domain.TodoConnection{}, err
		}
		// offset+first must stay representable so every edge cursor decodes again.
		if after > math.MaxInt-1-MaxPageSize {
			err := domain.NewValidationErr(fmt.Sprintf("invalid cursor %q", *params.After))
			tracing.RecordErrorAndStatus(span, err)
			return domain.TodoConnection{}, err
		}
		offset = after + 1
	}

	total, err := lti.todoRepo.CountTodos(spanCtx)
	if tracing.RecordErrorAndStatus(span, err) {
		return domain.TodoConnection{}, err
	}

	todos, err := lti.todoRepo.ListTodos(spanCtx, offset, first)
	if tracing.RecordErrorAndStatus(span, err) {
		return domain.TodoConnection{}, err
	}

	edges := make([]domain.TodoEdge, 0, len(todos))
	for i, todo := range todos {
		edges = append(edges, domain.TodoEdge{
			Cursor: domain.OffsetToCursor(offset + i),
			Node:   todo,
		})
	}

	return domain.TodoConnection{
		Edges:           edges,
		TotalCount:      total,
		HasNextPage:     offset+len(todos) < total,
		HasPreviousPage: offset > 0,
	}, nil
}

// InitListTodos initializes the ListTodos use case.
type InitListTodos struct {
	TodoRepo domain.TodoRepository `resolve:""`
}

// Initialize registers the ListTodos use case in the dependency container.
func (ilt InitListTodos) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTodos](NewListTodosImpl(ilt.TodoRepo))
	return ctx, nil
}
