package graphql

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/cleitonmarx/relaytodo/internal/usecases"
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	gqlotel "github.com/graph-gophers/graphql-go/trace/otel"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

//go:embed schema.graphql
var schemaSDL string

// SchemaSDL returns the GraphQL schema served by TodoGraphQLServer.
func SchemaSDL() string {
	return schemaSDL
}

// TodoGraphQLServer serves the Relay-compliant GraphQL API and is also its root resolver.
type TodoGraphQLServer struct {
	Logger             *log.Logger         `resolve:""`
	AddTodoUsecase     usecases.AddTodo    `resolve:""`
	RemoveTodoUsecase  usecases.RemoveTodo `resolve:""`
	UpdateTodoUsecase  usecases.UpdateTodo `resolve:""`
	ListTodosUsecase   usecases.ListTodos  `resolve:""`
	GetTodoUsecase     usecases.GetTodo    `resolve:""`
	GetViewerUsecase   usecases.GetViewer  `resolve:""`
	Port               int                 `config:"GRAPHQL_SERVER_PORT" default:"8085"`
	CorsAllowedOrigins string              `config:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Schema parses the schema and binds it to the server resolvers.
func (s *TodoGraphQLServer) Schema() (*gql.Schema, error) {
	return gql.ParseSchema(
		schemaSDL,
		s,
		gql.UseStringDescriptions(),
		gql.Tracer(&gqlotel.Tracer{Tracer: otel.Tracer("relaytodo/graphql")}),
	)
}

// Handler returns the HTTP handler for the GraphQL endpoint.
func (s *TodoGraphQLServer) Handler() (http.Handler, error) {
	schema, err := s.Schema()
	if err != nil {
		return nil, fmt.Errorf("failed to parse graphql schema: %w", err)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: strings.Split(s.CorsAllowedOrigins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(otelhttp.NewHandler(
		&relay.Handler{Schema: schema},
		"",
		otelhttp.WithSpanNameFormatter(tracing.SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(tracing.WithHttpMetricAttributes),
	)), nil
}

// Run starts the GraphQL server and blocks until ctx is done.
func (s *TodoGraphQLServer) Run(ctx context.Context) error {
	h, err := s.Handler()
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/query", h)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("relaytodo GraphQL endpoint: POST /query\n"))
	})

	svr := &http.Server{
		Handler: mux,
		Addr:    fmt.Sprintf(":%d", s.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("TodoGraphQLServer: Listening on port %d", s.Port)
		errCh <- svr.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.Logger.Print("TodoGraphQLServer: Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return svr.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the TodoGraphQLServer is ready by performing a health check.
func (s *TodoGraphQLServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d", s.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Error codes reported in the extensions of GraphQL errors.
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeInternal   = "INTERNAL"
)

// resolverError carries a code into the GraphQL error extensions.
type resolverError struct {
	err  error
	code string
}

func (e *resolverError) Error() string { return e.err.Error() }

func (e *resolverError) Unwrap() error { return e.err }

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func (s *TodoGraphQLServer) toGraphQLError(err error) error {
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
	)
	switch {
	case errors.As(err, &validationErr):
		return &resolverError{err: err, code: ErrCodeBadRequest}
	case errors.As(err, &notFoundErr):
		return &resolverError{err: err, code: ErrCodeNotFound}
	default:
		s.Logger.Printf("TodoGraphQLServer: internal error: %v", err)
		return &resolverError{err: errors.New("internal server error"), code: ErrCodeInternal}
	}
}

var mutationCounter, _ = otel.Meter("relaytodo/graphql").Int64Counter(
	"relaytodo.graphql.mutations",
	metric.WithDescription("Number of GraphQL mutations by operation and outcome"),
)

func recordMutation(ctx context.Context, operation string, err error) {
	if mutationCounter == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	mutationCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("graphql.operation", operation),
		attribute.String("outcome", outcome),
	))
}
