package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"

	"github.com/standardbeagle/boredom-mcp/internal/config"
	"github.com/standardbeagle/boredom-mcp/internal/facts"
	"github.com/standardbeagle/boredom-mcp/internal/favorites"
	"github.com/standardbeagle/boredom-mcp/internal/logging"
	"github.com/standardbeagle/boredom-mcp/internal/metrics"
)

const (
	serverName    = "Boredom Killer"
	serverVersion = "0.4.0"

	// shutdownTimeout bounds graceful HTTP shutdown after the context ends.
	shutdownTimeout = 5 * time.Second
)

// Options wires a Server's collaborators. Nil fields get defaults.
type Options struct {
	Facts     *facts.Registry
	Favorites *favorites.Store
	Logger    logging.Logger

	// Metrics is optional. When set, tool calls are counted and HTTP mode
	// serves it on /metrics.
	Metrics *metrics.Metrics
}

// Server is the Boredom Killer MCP server.
type Server struct {
	mcpServer *mcp.Server
	facts     *facts.Registry
	combo     *facts.Aggregator
	favorites *favorites.Store
	logger    logging.Logger
	metrics   *metrics.Metrics
	tools     map[string]toolDef
}

// New creates a Server from opts and registers its tools and resources.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	reg := opts.Facts
	if reg == nil {
		reg = facts.NewFromConfig(nil, nil, logger, opts.Metrics)
	}
	store := opts.Favorites
	if store == nil {
		store = favorites.NewStore()
	}

	s := &Server{
		facts:     reg,
		combo:     facts.NewAggregator(reg.All(), logger),
		favorites: store,
		logger:    logger.With("server", serverName),
		metrics:   opts.Metrics,
	}

	s.mcpServer = mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		},
		&mcp.ServerOptions{
			Capabilities: &mcp.ServerCapabilities{
				Tools:     &mcp.ToolCapabilities{},
				Resources: &mcp.ResourceCapabilities{},
				Logging:   &mcp.LoggingCapabilities{},
			},
		},
	)

	s.registerTools()
	s.registerResources()

	return s
}

// NewFromConfig creates a Server whose fetchers honor cfg, with metrics
// enabled.
func NewFromConfig(cfg *config.Config) *Server {
	logger := logging.Default()
	m := metrics.New()
	return New(Options{
		Facts:   facts.NewFromConfig(cfg, nil, logger, m),
		Logger:  logger,
		Metrics: m,
	})
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcpServer
}

// Favorites returns the favorites store.
func (s *Server) Favorites() *favorites.Store {
	return s.favorites
}

// RunStdio runs the server using stdio transport.
func (s *Server) RunStdio(ctx context.Context) error {
	return runStdio(ctx, s.mcpServer)
}

// RunHTTP runs the server over HTTP on port until ctx ends.
func (s *Server) RunHTTP(ctx context.Context, port int) error {
	var extra map[string]http.Handler
	if s.metrics != nil {
		extra = map[string]http.Handler{"/metrics": s.metrics.Handler()}
	}
	return runHTTP(ctx, s.mcpServer, port, s.logger, extra)
}

func runStdio(ctx context.Context, srv *mcp.Server) error {
	return srv.Run(ctx, &mcp.StdioTransport{})
}

// runHTTP serves streamable HTTP on /mcp, the extra handlers on their own
// paths and SSE on every other path until ctx ends.
func runHTTP(ctx context.Context, srv *mcp.Server, port int, logger logging.Logger, extra map[string]http.Handler) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           newRouter(srv, extra),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// newRouter mounts the MCP handlers and extra on one router behind a
// permissive CORS policy so browser-based MCP clients can connect.
func newRouter(srv *mcp.Server, extra map[string]http.Handler) http.Handler {
	getServer := func(*http.Request) *mcp.Server { return srv }

	router := mux.NewRouter()
	router.Handle("/mcp", mcp.NewStreamableHTTPHandler(getServer, nil))
	for path, h := range extra {
		router.Handle(path, h).Methods(http.MethodGet)
	}
	router.PathPrefix("/").Handler(mcp.NewSSEHandler(getServer, nil))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
	})
	return c.Handler(router)
}
