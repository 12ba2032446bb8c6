package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Request is a GraphQL request body.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`

	// Mutation marks a request that must not be replayed.
	Mutation bool `json:"-"`
}

// Response is a GraphQL response body.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError is a single entry of the response errors list.
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Code returns extensions.code, or "" when absent.
func (e GraphQLError) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// ResponseError wraps the errors returned in a GraphQL response.
type ResponseError struct {
	Errors []GraphQLError
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		if code := ge.Code(); code != "" {
			msgs = append(msgs, fmt.Sprintf("%s (%s)", ge.Message, code))
			continue
		}
		msgs = append(msgs, ge.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// Transport sends GraphQL requests to the server.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
}

// HTTPTransport posts GraphQL requests as JSON.
type HTTPTransport struct {
	endpoint       string
	client         *http.Client
	mutationClient *http.Client
}

// NewHTTPTransport creates a transport for the given endpoint, e.g. http://localhost:8085/query.
// client sends both queries and mutations until WithMutationClient is set.
func NewHTTPTransport(endpoint string, client *http.Client) HTTPTransport {
	return HTTPTransport{endpoint: endpoint, client: client, mutationClient: client}
}

// WithMutationClient returns a copy of t that sends mutations through c.
// Mutations are not idempotent, so c should not retry.
func (t HTTPTransport) WithMutationClient(c *http.Client) HTTPTransport {
	t.mutationClient = c
	return t
}

// Do implements Transport.
func (t HTTPTransport) Do(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("client: encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpClient := t.client
	if req.Mutation {
		httpClient = t.mutationClient
	}
	httpResp, err := httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("client: sending request: %w", err)
	}
	defer httpResp.Body.Close() //nolint:errcheck

	if httpResp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(httpResp.Body, 1024))
		return Response{}, fmt.Errorf("client: unexpected status %d: %s", httpResp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return Response{}, fmt.Errorf("client: decoding response: %w", err)
	}
	return resp, nil
}
