// Package client implements the client side of the todo GraphQL API: mutation
// descriptors and a normalized cache that dispatches them, applies their
// optimistic responses, and merges server payloads according to each
// descriptor's configs.
package client

import (
	"errors"
)

// ErrMissingFragment is returned when a mutation requires a node that is not
// resolved in the cache.
var ErrMissingFragment = errors.New("client: required fragment is not resolved")

// ErrClientMutationIDMismatch is returned when the payload echoes a different clientMutationId.
var ErrClientMutationIDMismatch = errors.New("client: clientMutationId mismatch")

// ConfigType names how a mutation payload updates the cache.
type ConfigType string

const (
	// ConfigFieldsChange merges payload fields into existing records.
	ConfigFieldsChange ConfigType = "FIELDS_CHANGE"
	// ConfigRangeAdd appends a payload edge to a parent's connection.
	ConfigRangeAdd ConfigType = "RANGE_ADD"
	// ConfigNodeDelete removes a deleted node from a parent's connection.
	ConfigNodeDelete ConfigType = "NODE_DELETE"
)

// Config tells the Store how to apply a mutation payload.
type Config struct {
	Type ConfigType

	// FieldIDs maps a payload field name to the node id it updates (FIELDS_CHANGE).
	FieldIDs map[string]string

	// ParentID and ConnectionName identify the connection (RANGE_ADD, NODE_DELETE).
	ParentID       string
	ConnectionName string

	// EdgeName is the payload field holding the new edge (RANGE_ADD).
	EdgeName string

	// DeletedIDFieldName is the payload field holding the removed node id (NODE_DELETE).
	DeletedIDFieldName string
}

// Field is an entity type and field pair a mutation may change.
type Field struct {
	Type string
	Name string
}

// Mutation describes a single GraphQL mutation from the client's point of view.
type Mutation interface {
	// Name is the mutation root field, e.g. "updateTodo".
	Name() string
	// Document is the GraphQL mutation document sent to the server.
	Document() string
	// RequiredNodes lists node ids that must be resolved before dispatch.
	RequiredNodes() []string
	// Variables maps the descriptor props to the mutation input.
	Variables() map[string]any
	// AffectedFields lists the fields the server response may change.
	AffectedFields() []Field
	// Configs describes how the payload updates the cache.
	Configs() []Config
}

// OptimisticMutation is a Mutation that can predict its payload.
type OptimisticMutation interface {
	Mutation
	OptimisticResponse() map[string]any
}

// Invalidator marks cached fields of an entity as stale.
type Invalidator interface {
	Invalidate(entityID string, fields []string)
}
