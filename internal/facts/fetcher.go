package facts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/standardbeagle/boredom-mcp/internal/logging"
)

const (
	instrumentationName = "github.com/standardbeagle/boredom-mcp/internal/facts"

	// DefaultTimeout bounds a single provider request when no timeout is configured.
	DefaultTimeout = 10 * time.Second

	// maxBodyBytes caps how much of a provider response is read.
	maxBodyBytes = 64 << 10
)

// UserAgent is sent with every provider request.
var UserAgent = "boredom-mcp"

// Fetcher produces one fact per call.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) Result
}

// Observer receives the outcome of every HTTP fetch.
type Observer interface {
	ObserveFetch(provider, kind string, d time.Duration)
}

// FetcherConfig configures an HTTPFetcher.
type FetcherConfig struct {
	Provider Provider

	// Timeout bounds the whole request including the body read.
	// Zero uses DefaultTimeout.
	Timeout time.Duration

	// HTTPClient defaults to a client with no timeout of its own;
	// the per-request context deadline applies instead.
	HTTPClient *http.Client

	Logger logging.Logger

	// Observer is optional.
	Observer Observer

	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// HTTPFetcher fetches a fact from a Provider with a single GET.
type HTTPFetcher struct {
	provider Provider
	timeout  time.Duration
	client   *http.Client
	logger   logging.Logger
	observer Observer
	tracer   trace.Tracer
}

// NewHTTPFetcher creates a fetcher. Panics if the provider has no URL or
// Extract function.
func NewHTTPFetcher(cfg FetcherConfig) *HTTPFetcher {
	if cfg.Provider.URL == "" || cfg.Provider.Extract == nil {
		panic("facts: provider " + cfg.Provider.Name + " needs URL and Extract")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &HTTPFetcher{
		provider: cfg.Provider,
		timeout:  timeout,
		client:   client,
		logger:   logging.Component(cfg.Logger, "facts").With("provider", cfg.Provider.Name),
		observer: cfg.Observer,
		tracer:   tp.Tracer(instrumentationName),
	}
}

// Name returns the provider name.
func (f *HTTPFetcher) Name() string {
	return f.provider.Name
}

// Provider returns the provider this fetcher reads from.
func (f *HTTPFetcher) Provider() Provider {
	return f.provider
}

// Fetch performs the request and never returns a failure other than through
// the Result.
func (f *HTTPFetcher) Fetch(ctx context.Context) Result {
	ctx, span := f.tracer.Start(ctx, "GET "+f.provider.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", http.MethodGet),
			attribute.String("http.url", f.provider.URL),
			attribute.String("peer.service", f.provider.Name),
		),
	)
	defer span.End()

	start := time.Now()
	res := f.fetch(ctx)
	elapsed := time.Since(start)

	if f.observer != nil {
		f.observer.ObserveFetch(f.provider.Name, res.Kind.String(), elapsed)
	}

	span.SetAttributes(attribute.String("facts.kind", res.Kind.String()))
	if res.OK() {
		span.SetStatus(codes.Ok, "")
		f.logger.Debug("fetched fact", "duration", elapsed)
	} else {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Kind.String())
		f.logger.Warn("fetch failed", "kind", res.Kind.String(), "error", res.Err, "duration", elapsed)
	}

	return res
}

func (f *HTTPFetcher) fetch(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.provider.URL, nil)
	if err != nil {
		return f.unavailable(err)
	}
	if f.provider.Accept != "" {
		req.Header.Set("Accept", f.provider.Accept)
	}
	req.Header.Set("User-Agent", UserAgent)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := f.client.Do(req)
	if err != nil {
		return f.unavailable(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{
			Provider: f.provider.Name,
			Kind:     KindBadStatus,
			Text:     f.provider.Apology,
			Err:      fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return f.unavailable(err)
	}

	text, err := f.provider.Extract(body)
	if err != nil {
		if !errors.Is(err, ErrMalformed) {
			err = fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return Result{
			Provider: f.provider.Name,
			Kind:     KindMalformed,
			Text:     f.provider.ErrorPrefix + ": " + err.Error(),
			Err:      err,
		}
	}

	return Result{
		Provider: f.provider.Name,
		Kind:     KindOK,
		Text:     f.provider.Label + ": " + text,
	}
}

func (f *HTTPFetcher) unavailable(err error) Result {
	return Result{
		Provider: f.provider.Name,
		Kind:     KindUnavailable,
		Text:     f.provider.Apology,
		Err:      err,
	}
}
