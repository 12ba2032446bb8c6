package domain

import "context"

// TodoID is the storage-internal identifier of a todo item.
type TodoID int64

// Todo represents a todo item.
type Todo struct {
	ID      TodoID
	Content string
}

// TodoEdge pairs a todo with its position cursor in the viewer's listing.
type TodoEdge struct {
	Cursor string
	Node   Todo
}

// TodoConnection is a page of the viewer's todo listing.
type TodoConnection struct {
	Edges           []TodoEdge
	TotalCount      int
	HasNextPage     bool
	HasPreviousPage bool
}

// TodoRepository defines the data accessor for todo items.
type TodoRepository interface {
	// CreateTodo stores a new todo and returns its freshly assigned ID.
	CreateTodo(ctx context.Context, content string) (TodoID, error)
	// GetTodo returns the todo or a NotFoundErr.
	GetTodo(ctx context.Context, id TodoID) (Todo, error)
	// DeleteTodo removes the todo. Deleting a missing todo is not an error.
	DeleteTodo(ctx context.Context, id TodoID) error
	// UpdateTodo overwrites the todo content or returns a NotFoundErr.
	UpdateTodo(ctx context.Context, id TodoID, content string) error
	// CountTodos returns the total number of todos.
	CountTodos(ctx context.Context) (int, error)
	// ListTodos returns todos in creation order starting at offset.
	ListTodos(ctx context.Context, offset int, limit int) ([]Todo, error)
	// CurrentUser returns the viewer that owns the todo list.
	CurrentUser(ctx context.Context) (User, error)
}
