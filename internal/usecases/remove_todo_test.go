package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRemoveTodoImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		id          domain.TodoID
		setupMocks  func(*domain.MockTodoRepository, *domain.MockOutboxRepository, *domain.MockCurrentTimeProvider)
		expected    domain.User
		expectedErr error
	}{
		"success": {
			id: 3,
			setupMocks: func(repo *domain.MockTodoRepository, outbox *domain.MockOutboxRepository, clock *domain.MockCurrentTimeProvider) {
				repo.EXPECT().DeleteTodo(mock.Anything, domain.TodoID(3)).Return(nil)
				clock.EXPECT().Now().Return(fixedTime)
				outbox.EXPECT().
					RecordEvent(mock.Anything, mock.MatchedBy(func(e domain.TodoEvent) bool {
						return e.Type == domain.TodoEventType_TODO_REMOVED && e.TodoID == 3 && e.Content == ""
					})).
					Return(nil)
				repo.EXPECT().CurrentUser(mock.Anything).Return(testViewer, nil)
			},
			expected: testViewer,
		},
		"missing-todo-still-succeeds": {
			id: 404,
			setupMocks: func(repo *domain.MockTodoRepository, outbox *domain.MockOutboxRepository, clock *domain.MockCurrentTimeProvider) {
				repo.EXPECT().DeleteTodo(mock.Anything, domain.TodoID(404)).Return(nil)
				clock.EXPECT().Now().Return(fixedTime)
				outbox.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(nil)
				repo.EXPECT().CurrentUser(mock.Anything).Return(testViewer, nil)
			},
			expected: testViewer,
		},
		"delete-error": {
			id: 3,
			setupMocks: func(repo *domain.MockTodoRepository, outbox *domain.MockOutboxRepository, clock *domain.MockCurrentTimeProvider) {
				repo.EXPECT().DeleteTodo(mock.Anything, domain.TodoID(3)).Return(errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
		"viewer-error": {
			id: 3,
			setupMocks: func(repo *domain.MockTodoRepository, outbox *domain.MockOutboxRepository, clock *domain.MockCurrentTimeProvider) {
				repo.EXPECT().DeleteTodo(mock.Anything, domain.TodoID(3)).Return(nil)
				clock.EXPECT().Now().Return(fixedTime)
				outbox.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(nil)
				repo.EXPECT().CurrentUser(mock.Anything).Return(domain.User{}, errors.New("no viewer"))
			},
			expectedErr: errors.New("no viewer"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			repo := domain.NewMockTodoRepository(t)
			outbox := domain.NewMockOutboxRepository(t)
			clock := domain.NewMockCurrentTimeProvider(t)
			expectUnitOfWork(uow, repo, outbox)
			tt.setupMocks(repo, outbox, clock)

			uc := NewRemoveTodoImpl(uow, clock)
			got, err := uc.Execute(context.Background(), tt.id)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
