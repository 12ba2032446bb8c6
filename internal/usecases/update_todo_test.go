package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateTodoImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		id          domain.TodoID
		content     string
		setupMocks  func(*domain.MockTodoRepository, *domain.MockOutboxRepository, *domain.MockCurrentTimeProvider)
		expected    domain.Todo
		expectedErr error
	}{
		"returns-refetched-todo": {
			id:      1,
			content: "Buy oat milk",
			setupMocks: func(repo *domain.MockTodoRepository, outbox *domain.MockOutboxRepository, clock *domain.MockCurrentTimeProvider) {
				repo.EXPECT().UpdateTodo(mock.Anything, domain.TodoID(1), "Buy oat milk").Return(nil)
				repo.EXPECT().GetTodo(mock.Anything, domain.TodoID(1)).Return(domain.Todo{ID: 1, Content: "Buy oat milk"}, nil)
				clock.EXPECT().Now().Return(fixedTime)
				outbox.EXPECT().
					RecordEvent(mock.Anything, mock.MatchedBy(func(e domain.TodoEvent) bool {
						return e.Type == domain.TodoEventType_TODO_UPDATED && e.TodoID == 1 && e.Content == "Buy oat milk"
					})).
					Return(nil)
			},
			expected: domain.Todo{ID: 1, Content: "Buy oat milk"},
		},
		"not-found": {
			id:      9,
			content: "x",
			setupMocks: func(repo *domain.MockTodoRepository, outbox *domain.MockOutboxRepository, clock *domain.MockCurrentTimeProvider) {
				repo.EXPECT().UpdateTodo(mock.Anything, domain.TodoID(9), "x").Return(domain.NewNotFoundErr("todo with id 9 not found"))
			},
			expectedErr: domain.NewNotFoundErr("todo with id 9 not found"),
		},
		"refetch-error": {
			id:      1,
			content: "x",
			setupMocks: func(repo *domain.MockTodoRepository, outbox *domain.MockOutboxRepository, clock *domain.MockCurrentTimeProvider) {
				repo.EXPECT().UpdateTodo(mock.Anything, domain.TodoID(1), "x").Return(nil)
				repo.EXPECT().GetTodo(mock.Anything, domain.TodoID(1)).Return(domain.Todo{}, errors.New("read failed"))
			},
			expectedErr: errors.New("read failed"),
		},
		"blank-content": {
			id:          1,
			content:     "   ",
			expectedErr: domain.NewValidationErr("content is required"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			repo := domain.NewMockTodoRepository(t)
			outbox := domain.NewMockOutboxRepository(t)
			clock := domain.NewMockCurrentTimeProvider(t)
			if tt.setupMocks != nil {
				expectUnitOfWork(uow, repo, outbox)
				tt.setupMocks(repo, outbox, clock)
			}

			uc := NewUpdateTodoImpl(uow, clock)
			got, err := uc.Execute(context.Background(), tt.id, tt.content)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
