package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// AddTodoResult is the outcome of adding a todo.
type AddTodoResult struct {
	// Edge pairs the new todo with the cursor of the last position of the listing.
	Edge   domain.TodoEdge
	Viewer domain.User
}

// AddTodo defines the interface for the AddTodo use case.
type AddTodo interface {
	Execute(ctx context.Context, content string) (AddTodoResult, error)
}

// AddTodoImpl is the implementation of the AddTodo use case.
type AddTodoImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewAddTodoImpl creates a new instance of AddTodoImpl.
func NewAddTodoImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) AddTodoImpl {
	return AddTodoImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute creates a todo and returns it as the last edge of the viewer's listing.
//
// The cursor is computed from the total count after the insert instead of
// searching the listing for the new todo, since listings are append ordered.
func (ati AddTodoImpl) Execute(ctx context.Context, content string) (AddTodoResult, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	if err := validateContent(content); tracing.RecordErrorAndStatus(span, err) {
		return AddTodoResult{}, err
	}

	var result AddTodoResult
	err := ati.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		id, err := uow.Todo().CreateTodo(spanCtx, content)
		if err != nil {
			return err
		}
		todo, err := uow.Todo().GetTodo(spanCtx, id)
		if err != nil {
			return err
		}
		count, err := uow.Todo().CountTodos(spanCtx)
		if err != nil {
			return err
		}
		if count < 1 {
			return fmt.Errorf("todo count is %d after adding todo %d", count, id)
		}
		viewer, err := uow.Todo().CurrentUser(spanCtx)
		if err != nil {
			return err
		}

		err = uow.Outbox().RecordEvent(spanCtx, domain.TodoEvent{
			ID:         uuid.New(),
			Type:       domain.TodoEventType_TODO_ADDED,
			TodoID:     todo.ID,
			Content:    todo.Content,
			OccurredAt: ati.timeProvider.Now(),
		})
		if err != nil {
			return err
		}

		result = AddTodoResult{
			Edge: domain.TodoEdge{
				Cursor: domain.OffsetToCursor(count - 1),
				Node:   todo,
			},
			Viewer: viewer,
		}
		return nil
	})
	if tracing.RecordErrorAndStatus(span, err) {
		return AddTodoResult{}, err
	}

	return result, nil
}

// InitAddTodo initializes the AddTodo use case.
type InitAddTodo struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the AddTodo use case in the dependency container.
func (iat InitAddTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AddTodo](NewAddTodoImpl(iat.Uow, iat.TimeProvider))
	return ctx, nil
}
