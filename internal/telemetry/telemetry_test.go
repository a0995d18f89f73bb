package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

// restoreGlobals puts back the global tracer provider and propagator after t.
func restoreGlobals(t *testing.T) {
	t.Helper()
	tp := otel.GetTracerProvider()
	prop := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(prop)
	})
}

func TestNew_RecordsAndPropagates(t *testing.T) {
	restoreGlobals(t)

	p, err := New(context.Background(), Config{ServiceName: "boredom-mcp", Version: "test", SamplingRate: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	assert.True(t, span.IsRecording())
	assert.True(t, span.SpanContext().IsValid())
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}

func TestNew_ZeroSamplingDropsSpans(t *testing.T) {
	restoreGlobals(t)

	p, err := New(context.Background(), Config{ServiceName: "boredom-mcp", SamplingRate: 0})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	assert.False(t, span.IsRecording())
	assert.True(t, span.SpanContext().IsValid())
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		sampling string
		expected float64
	}{
		{"unset", "", 1},
		{"valid", "0.25", 0.25},
		{"clamped high", "3", 1},
		{"clamped low", "-1", 0},
		{"garbage", "lots", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(SamplingRateEnvVar, tt.sampling)
			t.Setenv(EndpointEnvVar, "collector:4317")

			cfg := ConfigFromEnv("boredom-mcp", "1.0")
			assert.Equal(t, tt.expected, cfg.SamplingRate)
			assert.Equal(t, "collector:4317", cfg.Endpoint)
			assert.Equal(t, "boredom-mcp", cfg.ServiceName)
		})
	}
}

func TestShutdown_NilProvider(t *testing.T) {
	var p *Provider
	assert.NoError(t, p.Shutdown(context.Background()))
}
