package usecases

import (
	"context"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// RemoveTodo defines the interface for the RemoveTodo use case.
type RemoveTodo interface {
	Execute(ctx context.Context, id domain.TodoID) (domain.User, error)
}

// RemoveTodoImpl is the implementation of the RemoveTodo use case.
type RemoveTodoImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewRemoveTodoImpl creates a new instance of RemoveTodoImpl.
func NewRemoveTodoImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) RemoveTodoImpl {
	return RemoveTodoImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute deletes a todo item by its ID and returns the viewer.
// Removing a todo that does not exist succeeds.
func (rti RemoveTodoImpl) Execute(ctx context.Context, id domain.TodoID) (domain.User, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	var viewer domain.User
	err := rti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Todo().DeleteTodo(spanCtx, id); err != nil {
			return err
		}

		err := uow.Outbox().RecordEvent(spanCtx, domain.TodoEvent{
			ID:         uuid.New(),
			Type:       domain.TodoEventType_TODO_REMOVED,
			TodoID:     id,
			OccurredAt: rti.timeProvider.Now(),
		})
		if err != nil {
			return err
		}

		viewer, err = uow.Todo().CurrentUser(spanCtx)
		return err
	})
	if tracing.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}
	return viewer, nil
}

// InitRemoveTodo initializes the RemoveTodo use case.
type InitRemoveTodo struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the RemoveTodo use case in the dependency container.
func (irt InitRemoveTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RemoveTodo](NewRemoveTodoImpl(irt.Uow, irt.TimeProvider))
	return ctx, nil
}
