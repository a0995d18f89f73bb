// Package telemetry installs the OpenTelemetry tracer provider and W3C
// propagators used by outbound provider requests.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Environment variables read by ConfigFromEnv.
const (
	EndpointEnvVar     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	SamplingRateEnvVar = "BOREDOM_MCP_TRACE_SAMPLING"
)

const shutdownTimeout = 5 * time.Second

// Config holds telemetry configuration.
type Config struct {
	// Endpoint is the OTLP gRPC collector address. Empty means spans are
	// recorded and propagated but not exported.
	Endpoint     string
	ServiceName  string
	Version      string
	SamplingRate float64
}

// ConfigFromEnv builds a Config for service from the environment.
// The sampling rate defaults to 1 and is clamped to [0, 1].
func ConfigFromEnv(service, version string) Config {
	rate := 1.0
	if v, err := strconv.ParseFloat(os.Getenv(SamplingRateEnvVar), 64); err == nil {
		rate = min(max(v, 0), 1)
	}
	return Config{
		Endpoint:     os.Getenv(EndpointEnvVar),
		ServiceName:  service,
		Version:      version,
		SamplingRate: rate,
	}
}

// Provider owns the installed tracer provider.
type Provider struct {
	tracerProvider *sdktrace.TracerProvider
}

// New installs a global tracer provider and the TraceContext and Baggage
// propagators.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
	}

	if cfg.Endpoint != "" {
		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("creating trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Provider{tracerProvider: tp}, nil
}

// Shutdown flushes pending spans and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.tracerProvider == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := p.tracerProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down tracer provider: %w", err)
	}
	return nil
}
