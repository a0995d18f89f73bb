package facts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/boredom-mcp/internal/config"
	"github.com/standardbeagle/boredom-mcp/internal/logging"
)

func TestDefaultProvidersMatchConfig(t *testing.T) {
	var names []string
	for _, p := range DefaultProviders() {
		names = append(names, p.Name)
	}
	assert.Equal(t, config.KnownProviders, names)
}

func TestNewFromConfig_Defaults(t *testing.T) {
	reg := NewFromConfig(nil, nil, logging.Nop(), nil)

	assert.Equal(t, []string{Kanye, Chuck, Advice, Trivia}, reg.Names())

	f, err := reg.Get(Advice)
	require.NoError(t, err)
	hf := f.(*HTTPFetcher)
	assert.Equal(t, AdviceURL, hf.Provider().URL)
	assert.Equal(t, DefaultTimeout, hf.timeout)
}

func TestNewFromConfig_Overrides(t *testing.T) {
	cfg := &config.Config{
		Timeout: 4 * time.Second,
		Providers: map[string]config.ProviderConfig{
			Kanye: {Name: Kanye, URL: "http://localhost:1/kanye", Timeout: time.Second},
		},
	}
	reg := NewFromConfig(cfg, nil, logging.Nop(), nil)

	kanye, err := reg.Get(Kanye)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:1/kanye", kanye.(*HTTPFetcher).Provider().URL)
	assert.Equal(t, time.Second, kanye.(*HTTPFetcher).timeout)

	chuck, err := reg.Get(Chuck)
	require.NoError(t, err)
	assert.Equal(t, ChuckURL, chuck.(*HTTPFetcher).Provider().URL)
	assert.Equal(t, 4*time.Second, chuck.(*HTTPFetcher).timeout)
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := NewRegistry()
	reg.Register(okStub(Kanye, "k"))

	_, err := reg.Get("dadjokes")

	var pnf *ProviderNotFoundError
	require.ErrorAs(t, err, &pnf)
	assert.Equal(t, "dadjokes", pnf.Name)
	assert.Equal(t, []string{Kanye}, pnf.Available)
}

func TestRegistry_RegisterReplacesKeepingOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(okStub(Kanye, "first"))
	reg.Register(okStub(Chuck, "c"))
	reg.Register(okStub(Kanye, "second"))

	assert.Equal(t, []string{Kanye, Chuck}, reg.Names())
	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].(*stubFetcher).result.Text)
}
