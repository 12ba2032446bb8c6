package memory

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// state holds every todo and outbox event kept by the Store.
type state struct {
	todos  map[domain.TodoID]domain.Todo
	order  []domain.TodoID
	nextID domain.TodoID
	outbox []domain.OutboxEvent
}

func newState() state {
	return state{
		todos:  make(map[domain.TodoID]domain.Todo),
		nextID: 1,
	}
}

func (s state) clone() state {
	c := state{
		todos:  make(map[domain.TodoID]domain.Todo, len(s.todos)),
		order:  slices.Clone(s.order),
		nextID: s.nextID,
		outbox: slices.Clone(s.outbox),
	}
	for id, todo := range s.todos {
		c.todos[id] = todo
	}
	return c
}

// Store is an in-memory implementation of domain.UnitOfWork.
// Units of work are serialized and roll back to a snapshot on error.
type Store struct {
	mu     sync.RWMutex
	st     state
	viewer domain.User
	clock  domain.CurrentTimeProvider
}

// NewStore creates an empty Store owned by the given viewer.
func NewStore(viewer domain.User, clock domain.CurrentTimeProvider) *Store {
	return &Store{
		st:     newState(),
		viewer: viewer,
		clock:  clock,
	}
}

// Todo returns a repository whose calls each lock the store.
func (s *Store) Todo() domain.TodoRepository {
	return lockedRepository{store: s}
}

// Outbox returns an outbox repository whose calls each lock the store.
func (s *Store) Outbox() domain.OutboxRepository {
	return lockedOutbox{store: s}
}

// Execute runs fn while holding the store lock, restoring the previous state if fn fails.
func (s *Store) Execute(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
	_, span := tracing.Start(ctx)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	err := fn(&unit{st: &s.st, viewer: s.viewer, clock: s.clock})
	if err != nil {
		s.st = snapshot
	}
	tracing.RecordErrorAndStatus(span, err)
	return err
}

// unit is the view of the Store handed to a running unit of work. The store lock is already held.
type unit struct {
	st     *state
	viewer domain.User
	clock  domain.CurrentTimeProvider
}

func (u *unit) Todo() domain.TodoRepository     { return repository{u} }
func (u *unit) Outbox() domain.OutboxRepository { return outbox{u} }

// Execute runs fn in the enclosing unit of work.
func (u *unit) Execute(_ context.Context, fn func(uow domain.UnitOfWork) error) error {
	return fn(u)
}

type repository struct {
	u *unit
}

func (r repository) CreateTodo(ctx context.Context, content string) (domain.TodoID, error) {
	_, span := tracing.Start(ctx)
	defer span.End()

	id := r.u.st.nextID
	r.u.st.nextID++
	r.u.st.todos[id] = domain.Todo{ID: id, Content: content}
	r.u.st.order = append(r.u.st.order, id)
	span.SetAttributes(attribute.Int64("todo_id", int64(id)))
	return id, nil
}

func (r repository) GetTodo(ctx context.Context, id domain.TodoID) (domain.Todo, error) {
	_, span := tracing.Start(ctx, trace.WithAttributes(attribute.Int64("todo_id", int64(id))))
	defer span.End()

	todo, ok := r.u.st.todos[id]
	if !ok {
		err := domain.NewNotFoundErr(fmt.Sprintf("todo with id %d not found", id))
		tracing.RecordErrorAndStatus(span, err)
		return domain.Todo{}, err
	}
	return todo, nil
}

func (r repository) DeleteTodo(ctx context.Context, id domain.TodoID) error {
	_, span := tracing.Start(ctx, trace.WithAttributes(attribute.Int64("todo_id", int64(id))))
	defer span.End()

	if _, ok := r.u.st.todos[id]; !ok {
		return nil
	}
	delete(r.u.st.todos, id)
	r.u.st.order = slices.DeleteFunc(r.u.st.order, func(o domain.TodoID) bool { return o == id })
	return nil
}

func (r repository) UpdateTodo(ctx context.Context, id domain.TodoID, content string) error {
	_, span := tracing.Start(ctx, trace.WithAttributes(attribute.Int64("todo_id", int64(id))))
	defer span.End()

	todo, ok := r.u.st.todos[id]
	if !ok {
		err := domain.NewNotFoundErr(fmt.Sprintf("todo with id %d not found", id))
		tracing.RecordErrorAndStatus(span, err)
		return err
	}
	todo.Content = content
	r.u.st.todos[id] = todo
	return nil
}

func (r repository) CountTodos(ctx context.Context) (int, error) {
	_, span := tracing.Start(ctx)
	defer span.End()

	return len(r.u.st.order), nil
}

func (r repository) ListTodos(ctx context.Context, offset int, limit int) ([]domain.Todo, error) {
	_, span := tracing.Start(ctx, trace.WithAttributes(
		attribute.Int("offset", offset),
		attribute.Int("limit", limit),
	))
	defer span.End()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.u.st.order) || limit <= 0 {
		return []domain.Todo{}, nil
	}
	end := min(offset+limit, len(r.u.st.order))

	todos := make([]domain.Todo, 0, end-offset)
	for _, id := range r.u.st.order[offset:end] {
		todos = append(todos, r.u.st.todos[id])
	}
	return todos, nil
}

func (r repository) CurrentUser(ctx context.Context) (domain.User, error) {
	return r.u.viewer, nil
}

type outbox struct {
	u *unit
}

func (o outbox) RecordEvent(ctx context.Context, event domain.TodoEvent) error {
	_, span := tracing.Start(ctx)
	defer span.End()

	o.u.st.outbox = append(o.u.st.outbox, domain.OutboxEvent{
		ID:         uuid.New(),
		Event:      event,
		Status:     domain.OutboxStatus_PENDING,
		MaxRetries: domain.DefaultOutboxMaxRetries,
		CreatedAt:  o.u.clock.Now(),
	})
	return nil
}

func (o outbox) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	_, span := tracing.Start(ctx)
	defer span.End()

	var events []domain.OutboxEvent
	for _, e := range o.u.st.outbox {
		if len(events) >= limit {
			break
		}
		if e.Status == domain.OutboxStatus_PENDING {
			events = append(events, e)
		}
	}
	return events, nil
}

func (o outbox) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	_, span := tracing.Start(ctx)
	defer span.End()

	o.u.st.outbox = slices.DeleteFunc(o.u.st.outbox, func(e domain.OutboxEvent) bool { return e.ID == id })
	return nil
}

func (o outbox) UpdateEvent(ctx context.Context, id uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	_, span := tracing.Start(ctx)
	defer span.End()

	for i := range o.u.st.outbox {
		if o.u.st.outbox[i].ID == id {
			o.u.st.outbox[i].Status = status
			o.u.st.outbox[i].RetryCount = retryCount
			o.u.st.outbox[i].LastError = lastError
			return nil
		}
	}
	return domain.NewNotFoundErr(fmt.Sprintf("outbox event with id %s not found", id))
}

// lockedRepository serves domain.TodoRepository calls made outside of a unit of work.
type lockedRepository struct {
	store *Store
}

func (l lockedRepository) read() repository {
	return repository{&unit{st: &l.store.st, viewer: l.store.viewer, clock: l.store.clock}}
}

func (l lockedRepository) CreateTodo(ctx context.Context, content string) (domain.TodoID, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return l.read().CreateTodo(ctx, content)
}

func (l lockedRepository) GetTodo(ctx context.Context, id domain.TodoID) (domain.Todo, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	return l.read().GetTodo(ctx, id)
}

func (l lockedRepository) DeleteTodo(ctx context.Context, id domain.TodoID) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return l.read().DeleteTodo(ctx, id)
}

func (l lockedRepository) UpdateTodo(ctx context.Context, id domain.TodoID, content string) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return l.read().UpdateTodo(ctx, id, content)
}

func (l lockedRepository) CountTodos(ctx context.Context) (int, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	return l.read().CountTodos(ctx)
}

func (l lockedRepository) ListTodos(ctx context.Context, offset int, limit int) ([]domain.Todo, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	return l.read().ListTodos(ctx, offset, limit)
}

func (l lockedRepository) CurrentUser(ctx context.Context) (domain.User, error) {
	return l.store.viewer, nil
}

// lockedOutbox serves domain.OutboxRepository calls made outside of a unit of work.
type lockedOutbox struct {
	store *Store
}

func (l lockedOutbox) outbox() outbox {
	return outbox{&unit{st: &l.store.st, viewer: l.store.viewer, clock: l.store.clock}}
}

func (l lockedOutbox) RecordEvent(ctx context.Context, event domain.TodoEvent) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return l.outbox().RecordEvent(ctx, event)
}

func (l lockedOutbox) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	return l.outbox().FetchPendingEvents(ctx, limit)
}

func (l lockedOutbox) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return l.outbox().DeleteEvent(ctx, id)
}

func (l lockedOutbox) UpdateEvent(ctx context.Context, id uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return l.outbox().UpdateEvent(ctx, id, status, retryCount, lastError)
}

// InitStore registers the in-memory Store when TODO_STORE is "memory".
type InitStore struct {
	Logger     *log.Logger                `resolve:""`
	Clock      domain.CurrentTimeProvider `resolve:""`
	Backend    string                     `config:"TODO_STORE" default:"memory"`
	ViewerName string                     `config:"VIEWER_NAME" default:"Anonymous"`
}

// Initialize registers the Store as the domain.UnitOfWork and domain.TodoRepository.
func (i InitStore) Initialize(ctx context.Context) (context.Context, error) {
	if i.Backend != "memory" {
		return ctx, nil
	}
	store := NewStore(domain.User{ID: domain.ViewerID, Name: i.ViewerName}, i.Clock)
	depend.Register[domain.UnitOfWork](store)
	depend.Register[domain.TodoRepository](store.Todo())
	i.Logger.Println("InitStore: using in-memory todo store")
	return ctx, nil
}
