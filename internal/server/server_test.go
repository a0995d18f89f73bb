package server_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/boredom-mcp/internal/config"
	"github.com/standardbeagle/boredom-mcp/internal/facts"
	"github.com/standardbeagle/boredom-mcp/internal/logging"
	"github.com/standardbeagle/boredom-mcp/internal/metrics"
	"github.com/standardbeagle/boredom-mcp/internal/server"
)

// fakeAPIs serves all four providers from one httptest server.
func fakeAPIs(t *testing.T) *config.Config {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/kanye", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"quote":"I am a god"}`)
	})
	mux.HandleFunc("/chuck", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"value":"Chuck counted to infinity. Twice."}`)
	})
	mux.HandleFunc("/advice", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"slip":{"id":1,"advice":"Drink water."}}`)
	})
	mux.HandleFunc("/trivia", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "42 is the answer.")
	})
	api := httptest.NewServer(mux)
	t.Cleanup(api.Close)

	cfg := config.NewConfig()
	for _, name := range config.KnownProviders {
		cfg.Providers[name] = config.ProviderConfig{Name: name, URL: api.URL + "/" + name}
	}
	return cfg
}

func connect(t *testing.T, srv *mcp.Server, opts *mcp.ClientOptions) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverT, clientT := mcp.NewInMemoryTransports()
	ss, err := srv.Connect(ctx, serverT, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, opts)
	cs, err := client.Connect(ctx, clientT, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func callText(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) string {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestServer_ListTools(t *testing.T) {
	s := server.New(server.Options{Logger: logging.Nop()})
	cs := connect(t, s.MCPServer(), nil)

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"kanye_wast_quotes",
		"chuck_norris_joke",
		"get_advice",
		"number_trivia",
		"boredom_combo",
		"save_favorite",
		"get_favorites",
		"clear_favorites",
	}, names)
}

func TestServer_FetchToolsOverMCP(t *testing.T) {
	s := server.NewFromConfig(fakeAPIs(t))
	cs := connect(t, s.MCPServer(), nil)

	assert.Equal(t, "Kanye says: I am a god", callText(t, cs, "kanye_wast_quotes", nil))
	assert.Equal(t, "Joke: Chuck counted to infinity. Twice.", callText(t, cs, "chuck_norris_joke", nil))
	assert.Equal(t, "Advice: Drink water.", callText(t, cs, "get_advice", nil))
	assert.Equal(t, "Trivia: 42 is the answer.", callText(t, cs, "number_trivia", nil))

	combo := callText(t, cs, "boredom_combo", nil)
	assert.Contains(t, combo, "Kanye says: I am a god")
	assert.Contains(t, combo, "Trivia: 42 is the answer.")
}

func TestServer_FavoritesOverMCP(t *testing.T) {
	s := server.New(server.Options{Logger: logging.Nop()})
	cs := connect(t, s.MCPServer(), nil)

	assert.Equal(t, "Added to your favorite quotes!",
		callText(t, cs, "save_favorite", map[string]any{"category": "Quote", "content": "Stay hungry."}))
	assert.Equal(t, "Added to your favorite trivia!",
		callText(t, cs, "save_favorite", map[string]any{"category": "trivia", "content": "7 is prime."}))

	all := callText(t, cs, "get_favorites", map[string]any{})
	assert.Equal(t, "Your Favorites:\n\n--- QUOTES ---\n1. Stay hungry.\n\n--- TRIVIA ---\n1. 7 is prime.\n\n", all)

	assert.Equal(t, "Your favorite quotes have been cleared!",
		callText(t, cs, "clear_favorites", map[string]any{"category": "quote"}))
	assert.Equal(t, "You don't have any favorite quotes saved yet.",
		callText(t, cs, "get_favorites", map[string]any{"category": "quotes"}))
}

func TestServer_InvalidArgumentsIsError(t *testing.T) {
	s := server.New(server.Options{Logger: logging.Nop()})
	cs := connect(t, s.MCPServer(), nil)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_favorites",
		Arguments: map[string]any{"category": 12},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestServer_CountsToolCalls(t *testing.T) {
	m := metrics.New()
	s := server.New(server.Options{Facts: facts.NewRegistry(), Logger: logging.Nop(), Metrics: m})
	cs := connect(t, s.MCPServer(), nil)

	callText(t, cs, "get_favorites", nil)
	_, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "save_favorite",
		Arguments: map[string]any{"category": false},
	})
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(m.Registry(), "boredom_mcp_tool_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestServer_AboutResource(t *testing.T) {
	s := server.New(server.Options{Logger: logging.Nop()})
	cs := connect(t, s.MCPServer(), nil)

	res, err := cs.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: server.AboutURI})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, server.AboutText, res.Contents[0].Text)
	assert.Equal(t, "text/plain", res.Contents[0].MIMEType)
}

func TestServer_ProgressNotification(t *testing.T) {
	s := server.NewFromConfig(fakeAPIs(t))

	messages := make(chan any, 8)
	cs := connect(t, s.MCPServer(), &mcp.ClientOptions{
		LoggingMessageHandler: func(_ context.Context, req *mcp.LoggingMessageRequest) {
			messages <- req.Params.Data
		},
	})
	require.NoError(t, cs.SetLoggingLevel(context.Background(), &mcp.SetLoggingLevelParams{Level: "info"}))

	callText(t, cs, "get_advice", nil)

	select {
	case msg := <-messages:
		assert.Equal(t, facts.Progress(facts.Advice), msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no progress notification received")
	}
}

func TestSimpleServer(t *testing.T) {
	s := server.NewSimple(logging.Nop())
	cs := connect(t, s.MCPServer(), nil)

	tools, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 1)
	assert.Equal(t, "hello_world", tools.Tools[0].Name)

	assert.Equal(t, server.HelloText, callText(t, cs, "hello_world", nil))

	res, err := cs.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: server.AboutURI})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, server.SimpleAboutText, res.Contents[0].Text)
}
