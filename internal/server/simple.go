package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/boredom-mcp/internal/logging"
)

const (
	simpleServerName = "Simple Boredom Test"

	// HelloText is the reply of the hello_world tool.
	HelloText = "Hello from MCP server!"

	// SimpleAboutText is the info://about resource of the simple server.
	SimpleAboutText = "This is a simple test server."
)

// SimpleServer is a minimal MCP server used to check that a client can talk
// to this binary at all.
type SimpleServer struct {
	mcpServer *mcp.Server
	logger    logging.Logger
}

// NewSimple creates the smoke-test server.
func NewSimple(logger logging.Logger) *SimpleServer {
	if logger == nil {
		logger = logging.Default()
	}

	srv := mcp.NewServer(
		&mcp.Implementation{
			Name:    simpleServerName,
			Version: serverVersion,
		},
		&mcp.ServerOptions{
			Capabilities: &mcp.ServerCapabilities{
				Tools:     &mcp.ToolCapabilities{},
				Resources: &mcp.ResourceCapabilities{},
			},
		},
	)

	srv.AddTool(
		&mcp.Tool{
			Name:        "hello_world",
			Description: "A simple hello world test.",
			InputSchema: noArgsInputSchema,
		},
		func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return textResult(HelloText), nil
		},
	)
	addTextResource(srv, "about", "Get information about this MCP server.", SimpleAboutText)

	return &SimpleServer{
		mcpServer: srv,
		logger:    logger.With("server", simpleServerName),
	}
}

// MCPServer returns the underlying MCP server.
func (s *SimpleServer) MCPServer() *mcp.Server {
	return s.mcpServer
}

// RunStdio runs the server using stdio transport.
func (s *SimpleServer) RunStdio(ctx context.Context) error {
	return runStdio(ctx, s.mcpServer)
}

// RunHTTP runs the server over HTTP on port until ctx ends.
func (s *SimpleServer) RunHTTP(ctx context.Context, port int) error {
	return runHTTP(ctx, s.mcpServer, port, s.logger, nil)
}
