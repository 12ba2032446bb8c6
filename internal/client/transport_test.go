package client

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransport_Do(t *testing.T) {
	tests := map[string]struct {
		status       int
		body         string
		expectedResp Response
		wantErr      bool
	}{
		"data": {
			status:       http.StatusOK,
			body:         `{"data":{"viewer":{"id":"VXNlcjoibWUi"}}}`,
			expectedResp: Response{Data: json.RawMessage(`{"viewer":{"id":"VXNlcjoibWUi"}}`)},
		},
		"graphql-errors": {
			status: http.StatusOK,
			body:   `{"data":{"updateTodo":null},"errors":[{"message":"todo not found","path":["updateTodo"],"extensions":{"code":"NOT_FOUND"}}]}`,
			expectedResp: Response{
				Data: json.RawMessage(`{"updateTodo":null}`),
				Errors: []GraphQLError{{
					Message:    "todo not found",
					Path:       []any{"updateTodo"},
					Extensions: map[string]any{"code": "NOT_FOUND"},
				}},
			},
		},
		"bad-status": {
			status:  http.StatusBadGateway,
			body:    "upstream down",
			wantErr: true,
		},
		"bad-json": {
			status:  http.StatusOK,
			body:    "{",
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got Request
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			transport := NewHTTPTransport(srv.URL, srv.Client())
			resp, err := transport.Do(context.Background(), Request{
				Query:         viewerQuery,
				OperationName: "ViewerTodos",
				Variables:     map[string]any{"first": 20},
			})

			assert.Equal(t, "ViewerTodos", got.OperationName)
			assert.Equal(t, map[string]any{"first": float64(20)}, got.Variables)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResp, resp)
		})
	}
}

func TestResponseError_Error(t *testing.T) {
	err := &ResponseError{Errors: []GraphQLError{
		{Message: "content is required", Extensions: map[string]any{"code": "BAD_REQUEST"}},
		{Message: "plain"},
	}}
	assert.Equal(t, "graphql: content is required (BAD_REQUEST); plain", err.Error())
}

func TestHTTPTransport_MutationsAreNotRetried(t *testing.T) {
	var (
		mu    sync.Mutex
		posts = map[string]int{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		mu.Lock()
		posts[req.OperationName]++
		n := posts[req.OperationName]
		mu.Unlock()

		// The first query attempt fails to prove the query client retries.
		if req.OperationName == "AddTodoMutation" || n == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"data":` + string(viewerResponse().Data) + `}`))
	}))
	defer srv.Close()

	logger := log.New(io.Discard, "", 0)
	transport := NewHTTPTransport(srv.URL, tracing.NewHTTPClient(logger, 3)).
		WithMutationClient(tracing.NewHTTPClient(logger, 0))
	store := NewStore(transport, logger)

	id, err := store.FetchViewer(context.Background(), 20, "")
	require.NoError(t, err)

	tx, err := store.Commit(context.Background(), AddTodoMutation{ViewerID: id, Content: "walk dog"})
	assert.Error(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, StateRolledBack, tx.State())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, posts["ViewerTodos"])
	assert.Equal(t, 1, posts["AddTodoMutation"])
}
