package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
)

type addTodoInput struct {
	Content          string
	ClientMutationID *string
}

type addTodoPayloadResolver struct {
	edge             *todoEdgeResolver
	viewer           *userResolver
	clientMutationID *string
}

func (r *addTodoPayloadResolver) NewTodoEdge() *todoEdgeResolver { return r.edge }
func (r *addTodoPayloadResolver) Viewer() *userResolver          { return r.viewer }
func (r *addTodoPayloadResolver) ClientMutationID() *string      { return r.clientMutationID }

// AddTodo is the resolver for the addTodo field.
func (s *TodoGraphQLServer) AddTodo(ctx context.Context, args struct{ Input addTodoInput }) (*addTodoPayloadResolver, error) {
	result, err := s.AddTodoUsecase.Execute(ctx, args.Input.Content)
	recordMutation(ctx, "addTodo", err)
	if err != nil {
		return nil, s.toGraphQLError(err)
	}

	return &addTodoPayloadResolver{
		edge:             &todoEdgeResolver{edge: result.Edge},
		viewer:           &userResolver{user: result.Viewer, server: s},
		clientMutationID: args.Input.ClientMutationID,
	}, nil
}

type removeTodoInput struct {
	ID               gql.ID
	ClientMutationID *string
}

type removeTodoPayloadResolver struct {
	deletedTodoID    gql.ID
	viewer           *userResolver
	clientMutationID *string
}

func (r *removeTodoPayloadResolver) DeletedTodoID() gql.ID     { return r.deletedTodoID }
func (r *removeTodoPayloadResolver) Viewer() *userResolver     { return r.viewer }
func (r *removeTodoPayloadResolver) ClientMutationID() *string { return r.clientMutationID }

// RemoveTodo is the resolver for the removeTodo field.
// The input id is echoed back so clients can drop the node from their cache.
func (s *TodoGraphQLServer) RemoveTodo(ctx context.Context, args struct{ Input removeTodoInput }) (*removeTodoPayloadResolver, error) {
	id, err := FromTodoGlobalID(args.Input.ID)
	if err != nil {
		recordMutation(ctx, "removeTodo", err)
		return nil, s.toGraphQLError(err)
	}

	viewer, err := s.RemoveTodoUsecase.Execute(ctx, id)
	recordMutation(ctx, "removeTodo", err)
	if err != nil {
		return nil, s.toGraphQLError(err)
	}

	return &removeTodoPayloadResolver{
		deletedTodoID:    args.Input.ID,
		viewer:           &userResolver{user: viewer, server: s},
		clientMutationID: args.Input.ClientMutationID,
	}, nil
}

type updateTodoInput struct {
	ID               gql.ID
	Content          string
	ClientMutationID *string
}

type updateTodoPayloadResolver struct {
	todo             *todoResolver
	clientMutationID *string
}

func (r *updateTodoPayloadResolver) Todo() *todoResolver       { return r.todo }
func (r *updateTodoPayloadResolver) ClientMutationID() *string { return r.clientMutationID }

// UpdateTodo is the resolver for the updateTodo field.
func (s *TodoGraphQLServer) UpdateTodo(ctx context.Context, args struct{ Input updateTodoInput }) (*updateTodoPayloadResolver, error) {
	id, err := FromTodoGlobalID(args.Input.ID)
	if err != nil {
		recordMutation(ctx, "updateTodo", err)
		return nil, s.toGraphQLError(err)
	}

	todo, err := s.UpdateTodoUsecase.Execute(ctx, id, args.Input.Content)
	recordMutation(ctx, "updateTodo", err)
	if err != nil {
		return nil, s.toGraphQLError(err)
	}

	return &updateTodoPayloadResolver{
		todo:             &todoResolver{todo: todo},
		clientMutationID: args.Input.ClientMutationID,
	}, nil
}
