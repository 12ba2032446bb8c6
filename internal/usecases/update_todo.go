package usecases

import (
	"context"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// UpdateTodo defines the interface for the UpdateTodo use case.
type UpdateTodo interface {
	Execute(ctx context.Context, id domain.TodoID, content string) (domain.Todo, error)
}

// UpdateTodoImpl is the implementation of the UpdateTodo use case.
type UpdateTodoImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateTodoImpl creates a new instance of UpdateTodoImpl.
func NewUpdateTodoImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) UpdateTodoImpl {
	return UpdateTodoImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute overwrites the content of an existing todo and returns the todo as
// read back from the repository after the write.
func (uti UpdateTodoImpl) Execute(ctx context.Context, id domain.TodoID, content string) (domain.Todo, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	if err := validateContent(content); tracing.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	var todo domain.Todo
	err := uti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Todo().UpdateTodo(spanCtx, id, content); err != nil {
			return err
		}

		var err error
		todo, err = uow.Todo().GetTodo(spanCtx, id)
		if err != nil {
			return err
		}

		return uow.Outbox().RecordEvent(spanCtx, domain.TodoEvent{
			ID:         uuid.New(),
			Type:       domain.TodoEventType_TODO_UPDATED,
			TodoID:     todo.ID,
			Content:    todo.Content,
			OccurredAt: uti.timeProvider.Now(),
		})
	})
	if tracing.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	return todo, nil
}

// InitUpdateTodo initializes the UpdateTodo use case.
type InitUpdateTodo struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the UpdateTodo use case in the dependency container.
func (iut InitUpdateTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateTodo](NewUpdateTodoImpl(iut.Uow, iut.TimeProvider))
	return ctx, nil
}
