package usecases

import (
	"context"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/cleitonmarx/symbiont/depend"
)

// GetTodo defines the interface for the GetTodo use case.
type GetTodo interface {
	Query(ctx context.Context, id domain.TodoID) (domain.Todo, error)
}

// GetTodoImpl is the implementation of the GetTodo use case.
type GetTodoImpl struct {
	todoRepo domain.TodoRepository
}

// NewGetTodoImpl creates a new instance of GetTodoImpl.
func NewGetTodoImpl(todoRepo domain.TodoRepository) GetTodoImpl {
	return GetTodoImpl{todoRepo: todoRepo}
}

// Query fetches a single todo.
func (gti GetTodoImpl) Query(ctx context.Context, id domain.TodoID) (domain.Todo, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	todo, err := gti.todoRepo.GetTodo(spanCtx, id)
	if tracing.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}
	return todo, nil
}

// GetViewer defines the interface for the GetViewer use case.
type GetViewer interface {
	Query(ctx context.Context) (domain.User, error)
}

// GetViewerImpl is the implementation of the GetViewer use case.
type GetViewerImpl struct {
	todoRepo domain.TodoRepository
}

// NewGetViewerImpl creates a new instance of GetViewerImpl.
func NewGetViewerImpl(todoRepo domain.TodoRepository) GetViewerImpl {
	return GetViewerImpl{todoRepo: todoRepo}
}

// Query returns the current user.
func (gvi GetViewerImpl) Query(ctx context.Context) (domain.User, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	viewer, err := gvi.todoRepo.CurrentUser(spanCtx)
	if tracing.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}
	return viewer, nil
}

// InitGetNode registers the single node lookups.
type InitGetNode struct {
	TodoRepo domain.TodoRepository `resolve:""`
}

// Initialize registers GetTodo and GetViewer in the dependency container.
func (ign InitGetNode) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetTodo](NewGetTodoImpl(ign.TodoRepo))
	depend.Register[GetViewer](NewGetViewerImpl(ign.TodoRepo))
	return ctx, nil
}
