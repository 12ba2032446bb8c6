package usecases

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListTodosImpl_Query(t *testing.T) {
	todos := []domain.Todo{
		{ID: 1, Content: "a"},
		{ID: 2, Content: "b"},
		{ID: 3, Content: "c"},
	}

	tests := map[string]struct {
		opts        []ListTodoOptions
		setupMocks  func(*domain.MockTodoRepository)
		expected    domain.TodoConnection
		expectedErr error
	}{
		"default-page": {
			setupMocks: func(repo *domain.MockTodoRepository) {
				repo.EXPECT().CountTodos(mock.Anything).Return(3, nil)
				repo.EXPECT().ListTodos(mock.Anything, 0, DefaultPageSize).Return(todos, nil)
			},
			expected: domain.TodoConnection{
				Edges: []domain.TodoEdge{
					{Cursor: domain.OffsetToCursor(0), Node: todos[0]},
					{Cursor: domain.OffsetToCursor(1), Node: todos[1]},
					{Cursor: domain.OffsetToCursor(2), Node: todos[2]},
				},
				TotalCount: 3,
			},
		},
		"first-page-of-two": {
			opts: []ListTodoOptions{WithFirst(2)},
			setupMocks: func(repo *domain.MockTodoRepository) {
				repo.EXPECT().CountTodos(mock.Anything).Return(3, nil)
				repo.EXPECT().ListTodos(mock.Anything, 0, 2).Return(todos[:2], nil)
			},
			expected: domain.TodoConnection{
				Edges: []domain.TodoEdge{
					{Cursor: domain.OffsetToCursor(0), Node: todos[0]},
					{Cursor: domain.OffsetToCursor(1), Node: todos[1]},
				},
				TotalCount:  3,
				HasNextPage: true,
			},
		},
		"after-cursor": {
			opts: []ListTodoOptions{WithFirst(2), WithAfter(domain.OffsetToCursor(1))},
			setupMocks: func(repo *domain.MockTodoRepository) {
				repo.EXPECT().CountTodos(mock.Anything).Return(3, nil)
				repo.EXPECT().ListTodos(mock.Anything, 2, 2).Return(todos[2:], nil)
			},
			expected: domain.TodoConnection{
				Edges: []domain.TodoEdge{
					{Cursor: domain.OffsetToCursor(2), Node: todos[2]},
				},
				TotalCount:      3,
				HasPreviousPage: true,
			},
		},
		"zero-first": {
			opts: []ListTodoOptions{WithFirst(0)},
			setupMocks: func(repo *domain.MockTodoRepository) {
				repo.EXPECT().CountTodos(mock.Anything).Return(3, nil)
				repo.EXPECT().ListTodos(mock.Anything, 0, 0).Return([]domain.Todo{}, nil)
			},
			expected: domain.TodoConnection{
				Edges:       []domain.TodoEdge{},
				TotalCount:  3,
				HasNextPage: true,
			},
		},
		"negative-first": {
			opts:        []ListTodoOptions{WithFirst(-1)},
			expectedErr: domain.NewValidationErr("first must be between 0 and 100"),
		},
		"first-too-large": {
			opts:        []ListTodoOptions{WithFirst(MaxPageSize + 1)},
			expectedErr: domain.NewValidationErr("first must be between 0 and 100"),
		},
		"invalid-cursor": {
			opts:        []ListTodoOptions{WithAfter("not-a-cursor")},
			expectedErr: domain.NewValidationErr(`invalid cursor "not-a-cursor"`),
		},
		"cursor-offset-overflow": {
			opts:        []ListTodoOptions{WithAfter(domain.OffsetToCursor(math.MaxInt)), WithFirst(2)},
			expectedErr: domain.NewValidationErr(fmt.Sprintf("invalid cursor %q", domain.OffsetToCursor(math.MaxInt))),
		},
		"cursor-offset-near-limit": {
			opts:        []ListTodoOptions{WithAfter(domain.OffsetToCursor(math.MaxInt - MaxPageSize)), WithFirst(2)},
			expectedErr: domain.NewValidationErr(fmt.Sprintf("invalid cursor %q", domain.OffsetToCursor(math.MaxInt-MaxPageSize))),
		},
		"count-error": {
			setupMocks: func(repo *domain.MockTodoRepository) {
				repo.EXPECT().CountTodos(mock.Anything).Return(0, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockTodoRepository(t)
			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}

			uc := NewListTodosImpl(repo)
			got, err := uc.Query(context.Background(), tt.opts...)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
