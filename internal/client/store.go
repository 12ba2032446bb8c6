package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"sync"

	"github.com/google/uuid"
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/vektah/gqlparser/v2/ast"
)

const viewerQuery = `query ViewerTodos($first: Int, $after: String) {
  viewer {
    id
    name
    totalCount
    todos(first: $first, after: $after) {
      edges {
        cursor
        node {
          id
          content
        }
      }
      pageInfo {
        hasNextPage
        endCursor
      }
    }
  }
}`

// TodoConnectionName is the User field holding the todo list.
const TodoConnectionName = "todos"

// TodoView is a cached todo as seen through the viewer's connection.
type TodoView struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
	Cursor  string `json:"cursor" yaml:"cursor"`
}

// ViewerView is the cached viewer with its todo connection.
type ViewerView struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	TotalCount  int        `json:"totalCount" yaml:"totalCount"`
	Todos       []TodoView `json:"todos" yaml:"todos"`
	HasNextPage bool       `json:"hasNextPage" yaml:"hasNextPage"`
	EndCursor   string     `json:"endCursor,omitempty" yaml:"endCursor,omitempty"`
}

// Store is a normalized client cache that dispatches mutations.
type Store struct {
	transport Transport
	logger    *log.Logger
	newID     func() string

	mu    sync.Mutex
	cache cache
}

// NewStore creates an empty Store backed by transport.
func NewStore(transport Transport, logger *log.Logger) *Store {
	return &Store{
		transport: transport,
		logger:    logger,
		newID:     uuid.NewString,
		cache:     newCache(),
	}
}

// FetchViewer loads the viewer and one page of its todos into the cache and
// returns the viewer id. A non-empty after appends to the cached connection.
func (s *Store) FetchViewer(ctx context.Context, first int, after string) (string, error) {
	op, err := parseOperation(viewerQuery, ast.Query, "viewer")
	if err != nil {
		return "", err
	}

	vars := map[string]any{"first": first}
	if after != "" {
		vars["after"] = after
	}
	resp, err := s.transport.Do(ctx, Request{Query: viewerQuery, OperationName: op.Name, Variables: vars})
	if err != nil {
		return "", err
	}
	if len(resp.Errors) > 0 {
		return "", &ResponseError{Errors: resp.Errors}
	}

	var data struct {
		Viewer map[string]any `json:"viewer"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", fmt.Errorf("client: decoding viewer: %w", err)
	}
	viewerID, ok := data.Viewer["id"].(string)
	if !ok {
		return "", fmt.Errorf("client: viewer without id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todos, _ := data.Viewer[TodoConnectionName].(map[string]any)
	delete(data.Viewer, TodoConnectionName)
	s.cache.write(viewerID, data.Viewer)

	conn := &connection{}
	if after != "" {
		if cached, ok := s.cache.connections[connectionKey(viewerID, TodoConnectionName)]; ok {
			conn.edges = append(conn.edges, cached.edges...)
		}
	}
	edges, _ := todos["edges"].([]any)
	for _, e := range edges {
		edge, _ := e.(map[string]any)
		node, _ := edge["node"].(map[string]any)
		nodeID, _ := node["id"].(string)
		if nodeID == "" {
			continue
		}
		s.cache.write(nodeID, node)
		cursor, _ := edge["cursor"].(string)
		conn.edges = append(conn.edges, Edge{Cursor: cursor, NodeID: nodeID})
	}
	if pageInfo, ok := todos["pageInfo"].(map[string]any); ok {
		conn.hasNextPage, _ = pageInfo["hasNextPage"].(bool)
		conn.endCursor, _ = pageInfo["endCursor"].(string)
	}
	s.cache.setConnection(viewerID, TodoConnectionName, conn)

	return viewerID, nil
}

// Record returns a copy of the cached record with the given id.
func (s *Store) Record(id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.cache.records[id]
	if !ok {
		return nil, false
	}
	return maps.Clone(rec), true
}

// Edges returns the cached edges of a connection.
func (s *Store) Edges(parentID, connectionName string) ([]Edge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conn, ok := s.cache.connections[connectionKey(parentID, connectionName)]
	if !ok {
		return nil, false
	}
	return append([]Edge(nil), conn.edges...), true
}

// Viewer returns the cached viewer and its todos.
func (s *Store) Viewer(viewerID string) (ViewerView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.cache.records[viewerID]
	if !ok {
		return ViewerView{}, false
	}
	view := ViewerView{ID: viewerID}
	view.Name, _ = rec["name"].(string)
	if total, ok := rec["totalCount"].(float64); ok {
		view.TotalCount = int(total)
	}

	conn, ok := s.cache.connections[connectionKey(viewerID, TodoConnectionName)]
	if !ok {
		return view, true
	}
	view.HasNextPage = conn.hasNextPage
	view.EndCursor = conn.endCursor
	for _, e := range conn.edges {
		todo := TodoView{ID: e.NodeID, Cursor: e.Cursor}
		if node, ok := s.cache.records[e.NodeID]; ok {
			todo.Content, _ = node["content"].(string)
		}
		view.Todos = append(view.Todos, todo)
	}
	return view, true
}

// Invalidate implements Invalidator. Invalidated connections are dropped.
func (s *Store) Invalidate(entityID string, fields []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.invalidate(entityID, fields)
}

// Commit dispatches m and applies its payload to the cache.
// The returned Transaction is committed on success and rolled back otherwise.
func (s *Store) Commit(ctx context.Context, m Mutation) (*Transaction, error) {
	op, err := parseOperation(m.Document(), ast.Mutation, m.Name())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for _, id := range m.RequiredNodes() {
		if _, ok := s.cache.records[id]; !ok {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ErrMissingFragment, id)
		}
	}

	tx := newTransaction(s.newID(), m)
	var snapshot *cache
	if om, ok := m.(OptimisticMutation); ok {
		if optimistic := om.OptimisticResponse(); optimistic != nil {
			cp := s.cache.clone()
			snapshot = &cp
			s.applyPayload(m, optimistic)
			if err := tx.transition(StateApplied); err != nil {
				s.mu.Unlock()
				return nil, err
			}
		}
	}
	s.mu.Unlock()

	input := maps.Clone(m.Variables())
	if input == nil {
		input = make(map[string]any, 1)
	}
	input["clientMutationId"] = tx.ID()

	resp, err := s.transport.Do(ctx, Request{
		Query:         m.Document(),
		OperationName: op.Name,
		Variables:     map[string]any{"input": input},
		Mutation:      true,
	})
	payload, err := extractPayload(resp, err, m.Name(), tx.ID())

	s.mu.Lock()
	defer s.mu.Unlock()

	if snapshot != nil {
		s.cache = *snapshot
	}
	if err != nil {
		if rbErr := tx.rollback(err); rbErr != nil {
			return tx, rbErr
		}
		s.logger.Printf("client: %s %s rolled back: %v", m.Name(), tx.ID(), err)
		return tx, err
	}

	s.applyPayload(m, payload)
	if err := tx.commit(payload); err != nil {
		return tx, err
	}
	return tx, nil
}

func extractPayload(resp Response, err error, name, clientMutationID string) (map[string]any, error) {
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, &ResponseError{Errors: resp.Errors}
	}

	var data map[string]any
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("client: decoding payload: %w", err)
	}
	payload, _ := data[name].(map[string]any)
	if payload == nil {
		return nil, fmt.Errorf("client: %s returned no payload", name)
	}

	echoed, _ := payload["clientMutationId"].(string)
	if echoed != clientMutationID {
		return nil, fmt.Errorf("%w: sent %q, got %q", ErrClientMutationIDMismatch, clientMutationID, echoed)
	}
	return payload, nil
}

// applyPayload runs the range configs first so that FIELDS_CHANGE does not
// invalidate the connections they just updated. Callers hold s.mu.
func (s *Store) applyPayload(m Mutation, payload map[string]any) {
	handled := make(map[string]bool)
	for _, cfg := range m.Configs() {
		switch cfg.Type {
		case ConfigRangeAdd:
			handled[cfg.ConnectionName] = true
			edge, _ := payload[cfg.EdgeName].(map[string]any)
			node, _ := edge["node"].(map[string]any)
			nodeID, _ := node["id"].(string)
			if nodeID == "" {
				continue
			}
			s.cache.write(nodeID, node)
			cursor, _ := edge["cursor"].(string)
			s.cache.appendEdge(cfg.ParentID, cfg.ConnectionName, Edge{Cursor: cursor, NodeID: nodeID})
		case ConfigNodeDelete:
			handled[cfg.ConnectionName] = true
			if deletedID, ok := payload[cfg.DeletedIDFieldName].(string); ok {
				s.cache.removeNode(cfg.ParentID, cfg.ConnectionName, deletedID)
			}
		}
	}

	for _, cfg := range m.Configs() {
		if cfg.Type != ConfigFieldsChange {
			continue
		}
		for field, id := range cfg.FieldIDs {
			obj, _ := payload[field].(map[string]any)
			if obj == nil {
				continue
			}
			s.cache.write(id, obj)

			// Affected fields the payload did not carry are stale.
			kind := relay.UnmarshalKind(gql.ID(id))
			var stale []string
			for _, f := range m.AffectedFields() {
				if f.Type != kind || handled[f.Name] {
					continue
				}
				if _, ok := obj[f.Name]; !ok {
					stale = append(stale, f.Name)
				}
			}
			s.cache.invalidate(id, stale)
		}
	}
}
