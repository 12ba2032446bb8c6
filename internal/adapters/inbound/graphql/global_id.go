package graphql

import (
	"fmt"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// Type tags encoded into global ids.
const (
	KindTodo = "Todo"
	KindUser = "User"
)

// ToTodoGlobalID encodes a local todo id as an opaque global id.
func ToTodoGlobalID(id domain.TodoID) gql.ID {
	return relay.MarshalID(KindTodo, int64(id))
}

// ToUserGlobalID encodes a local user id as an opaque global id.
func ToUserGlobalID(id string) gql.ID {
	return relay.MarshalID(KindUser, id)
}

// FromTodoGlobalID decodes a global id that must carry the Todo type tag.
func FromTodoGlobalID(id gql.ID) (domain.TodoID, error) {
	var local int64
	if err := fromGlobalID(id, KindTodo, &local); err != nil {
		return 0, err
	}
	return domain.TodoID(local), nil
}

// FromUserGlobalID decodes a global id that must carry the User type tag.
func FromUserGlobalID(id gql.ID) (string, error) {
	var local string
	if err := fromGlobalID(id, KindUser, &local); err != nil {
		return "", err
	}
	return local, nil
}

func fromGlobalID(id gql.ID, kind string, local any) error {
	got := relay.UnmarshalKind(id)
	if got == "" {
		return domain.NewValidationErr(fmt.Sprintf("invalid global id %q", id))
	}
	if got != kind {
		return domain.NewValidationErr(fmt.Sprintf("global id %q is a %s, expected %s", id, got, kind))
	}
	if err := relay.UnmarshalSpec(id, local); err != nil {
		return domain.NewValidationErr(fmt.Sprintf("invalid global id %q", id))
	}
	return nil
}
