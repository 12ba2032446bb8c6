package app

import (
	"context"
	"encoding/json"
	stdlog "log"

	"github.com/cleitonmarx/relaytodo/internal/adapters/inbound/graphql"
	"github.com/cleitonmarx/relaytodo/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/relaytodo/internal/adapters/outbound/log"
	"github.com/cleitonmarx/relaytodo/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/relaytodo/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/relaytodo/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/relaytodo/internal/adapters/outbound/time"
	"github.com/cleitonmarx/relaytodo/internal/adapters/outbound/vault"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/cleitonmarx/relaytodo/internal/usecases"
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// NewTodoApp creates and returns a new instance of the relaytodo application.
// Extra initializers run before the built-in ones.
func NewTodoApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&vault.InitVaultProvider{},
			&tracing.InitOpenTelemetry{},
			&time.InitCurrentTimeProvider{},
			&memory.InitStore{},
			&postgres.InitDB{},
			&log.InitTodoEventPublisher{},
			&pubsub.InitTodoEventPublisher{},
			&usecases.InitAddTodo{},
			&usecases.InitRemoveTodo{},
			&usecases.InitUpdateTodo{},
			&usecases.InitListTodos{},
			&usecases.InitGetNode{},
		).
		Host(
			&graphql.TodoGraphQLServer{},
			&workers.MessageRelay{},
		)
}

// ReportLoggerIntrospector is an implementation of introspection.Introspector that logs the introspection report.
type ReportLoggerIntrospector struct {
	Logger *stdlog.Logger `resolve:""`
}

// Introspect logs the introspection report and a Mermaid graph.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	i.Logger.Println("=== RELAYTODO INTROSPECTION REPORT ===")
	i.Logger.Println(string(b))
	i.Logger.Println("=== MERMAID GRAPH ===")
	i.Logger.Println(mermaid.GenerateIntrospectionGraph(r))
	i.Logger.Println("=== END OF REPORT ===")
	return nil
}
