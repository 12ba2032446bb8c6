package graphql

import (
	"context"
	"errors"

	"github.com/cleitonmarx/relaytodo/internal/common"
	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/usecases"
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// Viewer is the resolver for the viewer field.
func (s *TodoGraphQLServer) Viewer(ctx context.Context) (*userResolver, error) {
	viewer, err := s.GetViewerUsecase.Query(ctx)
	if err != nil {
		return nil, s.toGraphQLError(err)
	}
	return &userResolver{user: viewer, server: s}, nil
}

// Node is the resolver for the node field. Unknown or missing nodes resolve to null.
func (s *TodoGraphQLServer) Node(ctx context.Context, args struct{ ID gql.ID }) (*nodeResolver, error) {
	switch relay.UnmarshalKind(args.ID) {
	case KindTodo:
		id, err := FromTodoGlobalID(args.ID)
		if err != nil {
			return nil, s.toGraphQLError(err)
		}
		todo, err := s.GetTodoUsecase.Query(ctx, id)
		var notFound *domain.NotFoundErr
		if errors.As(err, &notFound) {
			return nil, nil
		}
		if err != nil {
			return nil, s.toGraphQLError(err)
		}
		return &nodeResolver{node: &todoResolver{todo: todo}}, nil

	case KindUser:
		id, err := FromUserGlobalID(args.ID)
		if err != nil {
			return nil, s.toGraphQLError(err)
		}
		viewer, err := s.GetViewerUsecase.Query(ctx)
		if err != nil {
			return nil, s.toGraphQLError(err)
		}
		if viewer.ID != id {
			return nil, nil
		}
		return &nodeResolver{node: &userResolver{user: viewer, server: s}}, nil
	}
	return nil, nil
}

type node interface {
	ID() gql.ID
}

type nodeResolver struct {
	node
}

func (r *nodeResolver) ToTodo() (*todoResolver, bool) {
	t, ok := r.node.(*todoResolver)
	return t, ok
}

func (r *nodeResolver) ToUser() (*userResolver, bool) {
	u, ok := r.node.(*userResolver)
	return u, ok
}

type userResolver struct {
	user   domain.User
	server *TodoGraphQLServer
}

func (r *userResolver) ID() gql.ID {
	return ToUserGlobalID(r.user.ID)
}

func (r *userResolver) Name() string {
	return r.user.Name
}

type todosArgs struct {
	First *int32
	After *string
}

func (r *userResolver) Todos(ctx context.Context, args todosArgs) (*todoConnectionResolver, error) {
	var opts []usecases.ListTodoOptions
	if args.First != nil {
		opts = append(opts, usecases.WithFirst(int(*args.First)))
	}
	if args.After != nil {
		opts = append(opts, usecases.WithAfter(*args.After))
	}

	conn, err := r.server.ListTodosUsecase.Query(ctx, opts...)
	if err != nil {
		return nil, r.server.toGraphQLError(err)
	}
	return &todoConnectionResolver{conn: conn}, nil
}

func (r *userResolver) TotalCount(ctx context.Context) (int32, error) {
	conn, err := r.server.ListTodosUsecase.Query(ctx, usecases.WithFirst(0))
	if err != nil {
		return 0, r.server.toGraphQLError(err)
	}
	return int32(conn.TotalCount), nil
}

type todoResolver struct {
	todo domain.Todo
}

func (r *todoResolver) ID() gql.ID {
	return ToTodoGlobalID(r.todo.ID)
}

func (r *todoResolver) Content() string {
	return r.todo.Content
}

type todoConnectionResolver struct {
	conn domain.TodoConnection
}

func (r *todoConnectionResolver) Edges() []*todoEdgeResolver {
	edges := make([]*todoEdgeResolver, len(r.conn.Edges))
	for i, e := range r.conn.Edges {
		edges[i] = &todoEdgeResolver{edge: e}
	}
	return edges
}

func (r *todoConnectionResolver) PageInfo() *pageInfoResolver {
	return &pageInfoResolver{conn: r.conn}
}

func (r *todoConnectionResolver) TotalCount() int32 {
	return int32(r.conn.TotalCount)
}

type todoEdgeResolver struct {
	edge domain.TodoEdge
}

func (r *todoEdgeResolver) Cursor() string {
	return r.edge.Cursor
}

func (r *todoEdgeResolver) Node() *todoResolver {
	return &todoResolver{todo: r.edge.Node}
}

type pageInfoResolver struct {
	conn domain.TodoConnection
}

func (r *pageInfoResolver) HasNextPage() bool {
	return r.conn.HasNextPage
}

func (r *pageInfoResolver) HasPreviousPage() bool {
	return r.conn.HasPreviousPage
}

func (r *pageInfoResolver) StartCursor() *string {
	if len(r.conn.Edges) == 0 {
		return nil
	}
	return common.Ptr(r.conn.Edges[0].Cursor)
}

func (r *pageInfoResolver) EndCursor() *string {
	if len(r.conn.Edges) == 0 {
		return nil
	}
	return common.Ptr(r.conn.Edges[len(r.conn.Edges)-1].Cursor)
}
