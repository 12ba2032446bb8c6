package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestParseOperation(t *testing.T) {
	tests := map[string]struct {
		doc       string
		kind      ast.Operation
		rootField string
		wantName  string
		wantErr   string
	}{
		"add-todo": {
			doc:       addTodoDocument,
			kind:      ast.Mutation,
			rootField: "addTodo",
			wantName:  "AddTodoMutation",
		},
		"remove-todo": {
			doc:       removeTodoDocument,
			kind:      ast.Mutation,
			rootField: "removeTodo",
			wantName:  "RemoveTodoMutation",
		},
		"update-todo": {
			doc:       updateTodoDocument,
			kind:      ast.Mutation,
			rootField: "updateTodo",
			wantName:  "UpdateTodoMutation",
		},
		"viewer-query": {
			doc:       viewerQuery,
			kind:      ast.Query,
			rootField: "viewer",
			wantName:  "ViewerTodos",
		},
		"unknown-field": {
			doc:     `mutation { deleteEverything }`,
			kind:    ast.Mutation,
			wantErr: "invalid document",
		},
		"syntax-error": {
			doc:     `mutation {`,
			kind:    ast.Mutation,
			wantErr: "invalid document",
		},
		"query-instead-of-mutation": {
			doc:       `query { viewer { id } }`,
			kind:      ast.Mutation,
			rootField: "viewer",
			wantErr:   "expected a mutation operation",
		},
		"wrong-root-field": {
			doc:       updateTodoDocument,
			kind:      ast.Mutation,
			rootField: "addTodo",
			wantErr:   `does not select "addTodo"`,
		},
		"two-operations": {
			doc:       updateTodoDocument + "\n" + removeTodoDocument,
			kind:      ast.Mutation,
			rootField: "updateTodo",
			wantErr:   "exactly one operation",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			op, err := parseOperation(tt.doc, tt.kind, tt.rootField)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, op.Name)
		})
	}
}
