package tracing

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func TestSpanNameFormatter(t *testing.T) {
	req, _ := http.NewRequest("POST", "/query", nil)
	req.Pattern = "POST /query"
	assert.Equal(t, "POST /query", SpanNameFormatter("", req))

	req.Pattern = ""
	assert.Equal(t, "POST /query", SpanNameFormatter("", req))

	req, _ = http.NewRequest("GET", "/health", nil)
	assert.Equal(t, "GET /health", SpanNameFormatter("", req))
}

func TestWithHttpMetricAttributes(t *testing.T) {
	req, _ := http.NewRequest("POST", "/query", nil)
	attrs := WithHttpMetricAttributes(req)
	if assert.Len(t, attrs, 1) {
		assert.Equal(t, "POST /query", attrs[0].Value.AsString())
	}
}

func TestGetCallerName(t *testing.T) {
	name := getCallerName(1)
	assert.Equal(t, "tracing::TestGetCallerName", name)
}

func TestRecordErrorAndStatus(t *testing.T) {
	span := &mockSpan{}
	err := errors.New("fail")
	assert.True(t, RecordErrorAndStatus(span, err))
	assert.Equal(t, "fail", span.lastError)
	assert.Equal(t, "fail", span.statusMsg)
	assert.Equal(t, codes.Error, span.statusCode)

	span = &mockSpan{}
	assert.False(t, RecordErrorAndStatus(span, nil))
	assert.Equal(t, "OK", span.statusMsg)
	assert.Equal(t, codes.Ok, span.statusCode)
}

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	tests := map[string]bool{
		"enabled":  true,
		"disabled": false,
	}
	for name, enabled := range tests {
		t.Run(name, func(t *testing.T) {
			init := &InitOpenTelemetry{
				Logger:  log.New(&strings.Builder{}, "", 0),
				Enabled: enabled,
			}
			ctx, err := init.Initialize(context.Background())
			assert.NoError(t, err)
			assert.NotNil(t, ctx)
			assert.Equal(t, enabled, init.tp != nil)
			init.Close()
		})
	}
}

// --- Mocks ---

type mockSpan struct {
	trace.Span
	lastError  string
	statusCode codes.Code
	statusMsg  string
}

func (m *mockSpan) RecordError(err error, _ ...trace.EventOption) {
	m.lastError = err.Error()
}
func (m *mockSpan) SetStatus(code codes.Code, msg string) {
	m.statusCode = code
	m.statusMsg = msg
}

func TestNewHTTPClient_Retries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	client := NewHTTPClient(log.New(io.Discard, "", 0), 1)
	resp, err := client.Get(srv.URL)
	assert.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, int32(2), calls.Load())
}
