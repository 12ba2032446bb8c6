package client

import (
	"github.com/cleitonmarx/relaytodo/internal/adapters/inbound/graphql"
)

const addTodoDocument = `mutation AddTodoMutation($input: AddTodoInput!) {
  addTodo(input: $input) {
    clientMutationId
    newTodoEdge {
      cursor
      node {
        id
        content
      }
    }
    viewer {
      id
      totalCount
    }
  }
}`

// AddTodoMutation appends a todo to the viewer's list.
type AddTodoMutation struct {
	ViewerID string
	Content  string
}

func (AddTodoMutation) Name() string     { return "addTodo" }
func (AddTodoMutation) Document() string { return addTodoDocument }

func (m AddTodoMutation) RequiredNodes() []string { return []string{m.ViewerID} }

func (m AddTodoMutation) Variables() map[string]any {
	return map[string]any{"content": m.Content}
}

func (AddTodoMutation) AffectedFields() []Field {
	return []Field{
		{Type: graphql.KindUser, Name: TodoConnectionName},
		{Type: graphql.KindUser, Name: "totalCount"},
	}
}

func (m AddTodoMutation) Configs() []Config {
	return []Config{
		{
			Type:     ConfigFieldsChange,
			FieldIDs: map[string]string{"viewer": m.ViewerID},
		},
		{
			Type:           ConfigRangeAdd,
			ParentID:       m.ViewerID,
			ConnectionName: TodoConnectionName,
			EdgeName:       "newTodoEdge",
		},
	}
}

const removeTodoDocument = `mutation RemoveTodoMutation($input: RemoveTodoInput!) {
  removeTodo(input: $input) {
    clientMutationId
    deletedTodoId
    viewer {
      id
      totalCount
    }
  }
}`

// RemoveTodoMutation deletes a todo from the viewer's list.
type RemoveTodoMutation struct {
	ViewerID string
	TodoID   string
}

func (RemoveTodoMutation) Name() string     { return "removeTodo" }
func (RemoveTodoMutation) Document() string { return removeTodoDocument }

func (m RemoveTodoMutation) RequiredNodes() []string { return []string{m.ViewerID, m.TodoID} }

func (m RemoveTodoMutation) Variables() map[string]any {
	return map[string]any{"id": m.TodoID}
}

func (RemoveTodoMutation) AffectedFields() []Field {
	return []Field{
		{Type: graphql.KindUser, Name: TodoConnectionName},
		{Type: graphql.KindUser, Name: "totalCount"},
	}
}

func (m RemoveTodoMutation) Configs() []Config {
	return []Config{
		{
			Type:     ConfigFieldsChange,
			FieldIDs: map[string]string{"viewer": m.ViewerID},
		},
		{
			Type:               ConfigNodeDelete,
			ParentID:           m.ViewerID,
			ConnectionName:     TodoConnectionName,
			DeletedIDFieldName: "deletedTodoId",
		},
	}
}

// OptimisticResponse removes the todo before the server confirms.
func (m RemoveTodoMutation) OptimisticResponse() map[string]any {
	return map[string]any{"deletedTodoId": m.TodoID}
}

const updateTodoDocument = `mutation UpdateTodoMutation($input: UpdateTodoInput!) {
  updateTodo(input: $input) {
    clientMutationId
    todo {
      id
      content
    }
  }
}`

// UpdateTodoMutation replaces the content of a todo.
type UpdateTodoMutation struct {
	TodoID  string
	Content string
}

func (UpdateTodoMutation) Name() string     { return "updateTodo" }
func (UpdateTodoMutation) Document() string { return updateTodoDocument }

func (m UpdateTodoMutation) RequiredNodes() []string { return []string{m.TodoID} }

func (m UpdateTodoMutation) Variables() map[string]any {
	return map[string]any{"id": m.TodoID, "content": m.Content}
}

func (UpdateTodoMutation) AffectedFields() []Field {
	return []Field{{Type: graphql.KindTodo, Name: "content"}}
}

func (m UpdateTodoMutation) Configs() []Config {
	return []Config{{
		Type:     ConfigFieldsChange,
		FieldIDs: map[string]string{"todo": m.TodoID},
	}}
}

// OptimisticResponse shows the new content before the server confirms.
func (m UpdateTodoMutation) OptimisticResponse() map[string]any {
	return map[string]any{
		"todo": map[string]any{"id": m.TodoID, "content": m.Content},
	}
}
