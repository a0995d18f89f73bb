package facts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/standardbeagle/boredom-mcp/internal/logging"
)

// tracedFetcher points provider name at handler and records its spans.
func tracedFetcher(t *testing.T, name string, handler http.HandlerFunc) (*HTTPFetcher, *tracetest.SpanRecorder) {
	t.Helper()

	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	p := providerByName(t, name)
	p.URL = srv.URL
	return NewHTTPFetcher(FetcherConfig{Provider: p, Logger: logging.Nop(), TracerProvider: tp}), sr
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) string {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value.AsString()
		}
	}
	return ""
}

func TestHTTPFetcher_SuccessSpan(t *testing.T) {
	headers := make(chan string, 1)
	f, sr := tracedFetcher(t, Advice, func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Get("traceparent")
		_, _ = w.Write([]byte(`{"slip":{"advice":"Sleep."}}`))
	})

	res := f.Fetch(context.Background())
	require.True(t, res.OK())

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]

	assert.Equal(t, "GET advice", span.Name())
	assert.Equal(t, trace.SpanKindClient, span.SpanKind())
	assert.Equal(t, "ok", spanAttr(span, "facts.kind"))
	assert.Equal(t, codes.Ok, span.Status().Code)

	traceparent := <-headers
	require.NotEmpty(t, traceparent)
	assert.Contains(t, traceparent, span.SpanContext().TraceID().String())
}

func TestHTTPFetcher_FailureSpan(t *testing.T) {
	f, sr := tracedFetcher(t, Kanye, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	res := f.Fetch(context.Background())
	require.Equal(t, KindBadStatus, res.Kind)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]

	assert.Equal(t, "bad_status", spanAttr(span, "facts.kind"))
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "bad_status", span.Status().Description)
	assert.NotEmpty(t, span.Events(), "error recorded as span event")
}
