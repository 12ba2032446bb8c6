package client

import (
	"fmt"
	"sync"

	"github.com/cleitonmarx/relaytodo/internal/adapters/inbound/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

var (
	schemaOnce sync.Once
	schema     *ast.Schema
	schemaErr  error
)

func loadSchema() (*ast.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gqlparser.LoadSchema(&ast.Source{
			Name:  "schema.graphql",
			Input: graphql.SchemaSDL(),
		})
	})
	return schema, schemaErr
}

// parseOperation validates doc against the server schema and returns its single operation.
func parseOperation(doc string, kind ast.Operation, rootField string) (*ast.OperationDefinition, error) {
	s, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("client: loading schema: %w", err)
	}

	query, errs := gqlparser.LoadQuery(s, doc)
	if len(errs) > 0 {
		return nil, fmt.Errorf("client: invalid document: %w", errs)
	}
	if len(query.Operations) != 1 {
		return nil, fmt.Errorf("client: document must contain exactly one operation, got %d", len(query.Operations))
	}

	op := query.Operations[0]
	if op.Operation != kind {
		return nil, fmt.Errorf("client: expected a %s operation, got %s", kind, op.Operation)
	}
	if rootField == "" {
		return op, nil
	}
	for _, sel := range op.SelectionSet {
		if f, ok := sel.(*ast.Field); ok && f.Name == rootField {
			return op, nil
		}
	}
	return nil, fmt.Errorf("client: %s operation does not select %q", kind, rootField)
}
