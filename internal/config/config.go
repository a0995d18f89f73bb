package config

import (
	"fmt"
	"slices"
	"time"
)

// KnownProviders lists the fact provider names a config may override.
var KnownProviders = []string{"kanye", "chuck", "advice", "trivia"}

// Config is the merged configuration from user and project sources.
type Config struct {
	// Timeout bounds every outbound provider request. Zero means the
	// fetcher default.
	Timeout   time.Duration
	Providers map[string]ProviderConfig
}

// ProviderConfig overrides settings for a single fact provider.
type ProviderConfig struct {
	Name    string
	URL     string
	Timeout time.Duration
	Source  Source
}

// Source indicates where a setting came from.
type Source int

const (
	SourceDefault Source = iota
	SourceUser
	SourceProject
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceUser:
		return "user"
	case SourceProject:
		return "project"
	default:
		return "unknown"
	}
}

// NewConfig creates an empty config.
func NewConfig() *Config {
	return &Config{
		Providers: make(map[string]ProviderConfig),
	}
}

// Provider returns the override for name, if any.
func (c *Config) Provider(name string) (ProviderConfig, bool) {
	if c == nil {
		return ProviderConfig{}, false
	}
	p, ok := c.Providers[name]
	return p, ok
}

// TimeoutFor returns the effective timeout for a provider: its own override,
// then the global timeout, then zero.
func (c *Config) TimeoutFor(name string) time.Duration {
	if p, ok := c.Provider(name); ok && p.Timeout > 0 {
		return p.Timeout
	}
	if c == nil {
		return 0
	}
	return c.Timeout
}

// UnknownProviderError is returned when a config names a provider that does
// not exist.
type UnknownProviderError struct {
	Name string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider %q (known: %v)", e.Name, KnownProviders)
}

func isKnownProvider(name string) bool {
	return slices.Contains(KnownProviders, name)
}
