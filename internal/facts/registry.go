package facts

import (
	"fmt"
	"net/http"

	"github.com/standardbeagle/boredom-mcp/internal/config"
	"github.com/standardbeagle/boredom-mcp/internal/logging"
)

// Registry holds the fetchers by provider name, in registration order.
// It is built once at startup and read-only afterwards.
type Registry struct {
	order    []string
	fetchers map[string]Fetcher
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		fetchers: make(map[string]Fetcher),
	}
}

// NewFromConfig builds HTTP fetchers for the default providers, applying the
// URL and timeout overrides in cfg. A nil cfg uses the defaults; observer may
// be nil.
func NewFromConfig(cfg *config.Config, client *http.Client, logger logging.Logger, observer Observer) *Registry {
	r := NewRegistry()
	for _, p := range DefaultProviders() {
		if override, ok := cfg.Provider(p.Name); ok && override.URL != "" {
			p.URL = override.URL
		}
		r.Register(NewHTTPFetcher(FetcherConfig{
			Provider:   p,
			Timeout:    cfg.TimeoutFor(p.Name),
			HTTPClient: client,
			Logger:     logger,
			Observer:   observer,
		}))
	}
	return r
}

// Register adds f, replacing any fetcher with the same name.
func (r *Registry) Register(f Fetcher) {
	if _, exists := r.fetchers[f.Name()]; !exists {
		r.order = append(r.order, f.Name())
	}
	r.fetchers[f.Name()] = f
}

// Get returns the fetcher for name.
func (r *Registry) Get(name string) (Fetcher, error) {
	f, ok := r.fetchers[name]
	if !ok {
		return nil, &ProviderNotFoundError{Name: name, Available: r.Names()}
	}
	return f, nil
}

// All returns every fetcher in registration order.
func (r *Registry) All() []Fetcher {
	out := make([]Fetcher, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.fetchers[name])
	}
	return out
}

// Names returns the registered provider names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// ProviderNotFoundError is returned by Get for an unregistered name.
type ProviderNotFoundError struct {
	Name      string
	Available []string
}

func (e *ProviderNotFoundError) Error() string {
	return fmt.Sprintf("provider not found: %s (available: %v)", e.Name, e.Available)
}
