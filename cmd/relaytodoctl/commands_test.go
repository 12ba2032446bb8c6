package main

import (
	"bytes"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cleitonmarx/relaytodo/internal/adapters/inbound/graphql"
	"github.com/cleitonmarx/relaytodo/internal/adapters/outbound/memory"
	timeadapter "github.com/cleitonmarx/relaytodo/internal/adapters/outbound/time"
	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	clock := timeadapter.CurrentTimeProvider{}
	store := memory.NewStore(domain.User{ID: domain.ViewerID, Name: "Anonymous"}, clock)

	s := &graphql.TodoGraphQLServer{
		Logger:             log.New(io.Discard, "", 0),
		AddTodoUsecase:     usecases.NewAddTodoImpl(store, clock),
		RemoveTodoUsecase:  usecases.NewRemoveTodoImpl(store, clock),
		UpdateTodoUsecase:  usecases.NewUpdateTodoImpl(store, clock),
		ListTodosUsecase:   usecases.NewListTodosImpl(store.Todo()),
		GetTodoUsecase:     usecases.NewGetTodoImpl(store.Todo()),
		GetViewerUsecase:   usecases.NewGetViewerImpl(store.Todo()),
		CorsAllowedOrigins: "*",
	}
	h, err := s.Handler()
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, endpoint string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--endpoint", endpoint}, args...))
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	srv := newTestServer(t)
	todo1 := string(graphql.ToTodoGlobalID(1))
	todo2 := string(graphql.ToTodoGlobalID(2))

	out, err := run(t, srv.URL, "add", "buy", "milk")
	require.NoError(t, err)
	assert.Equal(t, todo1+"  buy milk\n", out)

	out, err = run(t, srv.URL, "add", "walk dog", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+todo2+`","content":"walk dog","cursor":"`+domain.OffsetToCursor(1)+`"}`, out)

	out, err = run(t, srv.URL, "update", todo1, "buy", "oat", "milk")
	require.NoError(t, err)
	assert.Equal(t, todo1+"  buy oat milk\n", out)

	out, err = run(t, srv.URL, "list", "-o", "yaml")
	require.NoError(t, err)
	var listed struct {
		Name       string `yaml:"name"`
		TotalCount int    `yaml:"totalCount"`
		Todos      []struct {
			ID      string `yaml:"id"`
			Content string `yaml:"content"`
		} `yaml:"todos"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &listed))
	assert.Equal(t, "Anonymous", listed.Name)
	assert.Equal(t, 2, listed.TotalCount)
	require.Len(t, listed.Todos, 2)
	assert.Equal(t, "buy oat milk", listed.Todos[0].Content)

	out, err = run(t, srv.URL, "remove", todo2)
	require.NoError(t, err)
	assert.Equal(t, "removed "+todo2+"\n", out)

	out, err = run(t, srv.URL, "list", "--first", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Anonymous (1 todos)\n"), out)
	assert.Contains(t, out, "buy oat milk")
	assert.NotContains(t, out, "walk dog")
}

func TestCommands_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := map[string]struct {
		args []string
	}{
		"unknown-todo": {
			args: []string{"update", string(graphql.ToTodoGlobalID(42)), "nothing"},
		},
		"empty-content": {
			args: []string{"add", "   "},
		},
		"bad-output": {
			args: []string{"list", "-o", "xml"},
		},
		"missing-args": {
			args: []string{"remove"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, srv.URL, tt.args...)
			assert.Error(t, err)
		})
	}
}
