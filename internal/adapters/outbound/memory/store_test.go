package memory

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedTime  = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	testViewer = domain.User{ID: domain.ViewerID, Name: "Tester"}
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return fixedTime }

func TestStore_TodoLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewStore(testViewer, fixedClock{})
	repo := store.Todo()

	firstID, err := repo.CreateTodo(ctx, "buy milk")
	require.NoError(t, err)
	secondID, err := repo.CreateTodo(ctx, "buy eggs")
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)

	count, err := repo.CountTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	todos, err := repo.ListTodos(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.Todo{
		{ID: firstID, Content: "buy milk"},
		{ID: secondID, Content: "buy eggs"},
	}, todos)

	require.NoError(t, repo.UpdateTodo(ctx, firstID, "buy oat milk"))
	got, err := repo.GetTodo(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, domain.Todo{ID: firstID, Content: "buy oat milk"}, got)

	require.NoError(t, repo.DeleteTodo(ctx, firstID))
	require.NoError(t, repo.DeleteTodo(ctx, firstID), "deleting twice must not fail")

	_, err = repo.GetTodo(ctx, firstID)
	var notFound *domain.NotFoundErr
	assert.ErrorAs(t, err, &notFound)

	err = repo.UpdateTodo(ctx, firstID, "gone")
	assert.ErrorAs(t, err, &notFound)

	todos, err = repo.ListTodos(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.Todo{{ID: secondID, Content: "buy eggs"}}, todos)

	user, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, testViewer, user)
}

func TestStore_ListTodos_Pagination(t *testing.T) {
	ctx := context.Background()
	store := NewStore(testViewer, fixedClock{})
	repo := store.Todo()
	for _, c := range []string{"a", "b", "c", "d"} {
		_, err := repo.CreateTodo(ctx, c)
		require.NoError(t, err)
	}

	tests := map[string]struct {
		offset   int
		limit    int
		expected []string
	}{
		"first-page":      {offset: 0, limit: 2, expected: []string{"a", "b"}},
		"last-page":       {offset: 2, limit: 5, expected: []string{"c", "d"}},
		"past-the-end":    {offset: 4, limit: 2, expected: []string{}},
		"zero-limit":      {offset: 0, limit: 0, expected: []string{}},
		"negative-offset": {offset: -3, limit: 1, expected: []string{"a"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			todos, err := repo.ListTodos(ctx, tt.offset, tt.limit)
			require.NoError(t, err)
			contents := make([]string, 0, len(todos))
			for _, todo := range todos {
				contents = append(contents, todo.Content)
			}
			assert.Equal(t, tt.expected, contents)
		})
	}
}

func TestStore_Execute_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore(testViewer, fixedClock{})
	existingID, err := store.Todo().CreateTodo(ctx, "keep me")
	require.NoError(t, err)

	failure := errors.New("storage unavailable")
	err = store.Execute(ctx, func(uow domain.UnitOfWork) error {
		if _, err := uow.Todo().CreateTodo(ctx, "partial"); err != nil {
			return err
		}
		if err := uow.Todo().UpdateTodo(ctx, existingID, "changed"); err != nil {
			return err
		}
		if err := uow.Outbox().RecordEvent(ctx, domain.TodoEvent{Type: domain.TodoEventType_TODO_ADDED}); err != nil {
			return err
		}
		return failure
	})
	assert.Equal(t, failure, err)

	count, err := store.Todo().CountTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	todo, err := store.Todo().GetTodo(ctx, existingID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", todo.Content)

	events, err := store.Outbox().FetchPendingEvents(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events)

	nextID, err := store.Todo().CreateTodo(ctx, "after rollback")
	require.NoError(t, err)
	assert.Equal(t, existingID+1, nextID, "rolled back IDs are reused")
}

func TestStore_Outbox(t *testing.T) {
	ctx := context.Background()
	store := NewStore(testViewer, fixedClock{})

	err := store.Execute(ctx, func(uow domain.UnitOfWork) error {
		for _, typ := range []domain.TodoEventType{
			domain.TodoEventType_TODO_ADDED,
			domain.TodoEventType_TODO_UPDATED,
			domain.TodoEventType_TODO_REMOVED,
		} {
			if err := uow.Outbox().RecordEvent(ctx, domain.TodoEvent{Type: typ, TodoID: 1}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	events, err := store.Outbox().FetchPendingEvents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.TodoEventType_TODO_ADDED, events[0].Event.Type)
	assert.Equal(t, domain.OutboxStatus_PENDING, events[0].Status)
	assert.Equal(t, domain.DefaultOutboxMaxRetries, events[0].MaxRetries)
	assert.Equal(t, fixedTime, events[0].CreatedAt)

	require.NoError(t, store.Outbox().DeleteEvent(ctx, events[0].ID))
	require.NoError(t, store.Outbox().UpdateEvent(ctx, events[1].ID, domain.OutboxStatus_FAILED, 3, "boom"))

	events, err = store.Outbox().FetchPendingEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.TodoEventType_TODO_REMOVED, events[0].Event.Type)

	err = store.Outbox().UpdateEvent(ctx, events[0].ID, domain.OutboxStatus_FAILED, 1, "x")
	assert.NoError(t, err)
	var notFound *domain.NotFoundErr
	err = store.Outbox().UpdateEvent(ctx, uuid.Nil, domain.OutboxStatus_FAILED, 1, "x")
	assert.ErrorAs(t, err, &notFound)
}

func TestStore_ConcurrentUnitsOfWork(t *testing.T) {
	ctx := context.Background()
	store := NewStore(testViewer, fixedClock{})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Execute(ctx, func(uow domain.UnitOfWork) error {
				_, err := uow.Todo().CreateTodo(ctx, "concurrent")
				return err
			})
		}()
	}
	wg.Wait()

	count, err := store.Todo().CountTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}

func TestInitStore_Initialize(t *testing.T) {
	tests := map[string]struct {
		backend    string
		registered bool
	}{
		"memory-selected":   {backend: "memory", registered: true},
		"postgres-selected": {backend: "postgres", registered: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			depend.ClearContainer()
			i := InitStore{
				Logger:     log.New(&strings.Builder{}, "", 0),
				Clock:      fixedClock{},
				Backend:    tt.backend,
				ViewerName: "Tester",
			}
			_, err := i.Initialize(context.Background())
			assert.NoError(t, err)

			uow, err := depend.Resolve[domain.UnitOfWork]()
			assert.Equal(t, tt.registered, err == nil)
			_, err = depend.Resolve[domain.TodoRepository]()
			assert.Equal(t, tt.registered, err == nil)

			if tt.registered {
				user, err := uow.Todo().CurrentUser(context.Background())
				assert.NoError(t, err)
				assert.Equal(t, domain.User{ID: domain.ViewerID, Name: "Tester"}, user)
			}
		})
	}
}
