package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/standardbeagle/boredom-mcp/internal/config"
	"github.com/standardbeagle/boredom-mcp/internal/logging"
	"github.com/standardbeagle/boredom-mcp/internal/server"
	"github.com/standardbeagle/boredom-mcp/internal/telemetry"
)

// runner is implemented by both MCP servers.
type runner interface {
	RunStdio(ctx context.Context) error
	RunHTTP(ctx context.Context, port int) error
}

func cmdServe(args []string) {
	port, help := parseServeArgs(args)
	if help {
		printServeUsage()
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting current directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	run(server.NewFromConfig(cfg), "boredom-mcp", port)
}

func cmdSimple(args []string) {
	port, help := parseServeArgs(args)
	if help {
		printSimpleUsage()
		return
	}

	run(server.NewSimple(logging.Default()), "boredom-mcp-simple", port)
}

// parseServeArgs reads --port and --help. A missing or invalid port means stdio.
func parseServeArgs(args []string) (port int, help bool) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--port", "-p":
			if i+1 < len(args) {
				fmt.Sscanf(args[i+1], "%d", &port)
				i++
			}
		case "--help", "-h":
			help = true
		}
	}
	return port, help
}

func run(srv runner, service string, port int) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.New(ctx, telemetry.ConfigFromEnv(service, version))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up tracing: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			logging.Default().Warn("tracing shutdown failed", "error", err)
		}
	}()

	if port > 0 {
		err = srv.RunHTTP(ctx, port)
	} else {
		err = srv.RunStdio(ctx)
	}
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		stop()
		_ = tel.Shutdown(context.Background())
		os.Exit(1)
	}
}

func printServeUsage() {
	fmt.Print(`boredom-mcp serve - Start the Boredom Killer MCP server

Usage:
  boredom-mcp serve [options]

Options:
  --port, -p PORT    Serve over HTTP on PORT: streamable HTTP at /mcp,
                     SSE everywhere else (default: stdio transport)
  --help, -h         Show this help

Examples:
  boredom-mcp serve                 # Run with stdio transport
  boredom-mcp serve --port 8080     # Run with HTTP/SSE on port 8080

Configuration:
  Provider URLs and timeouts are read from:
  1. User config: ~/.config/boredom-mcp/config.kdl
  2. Project config: .boredom-mcp.kdl (in current directory)

Environment:
  BOREDOM_MCP_LOG_LEVEL     debug, info, warn (default), error
  BOREDOM_MCP_LOG_FORMAT    text (default) or json
  OTEL_EXPORTER_OTLP_ENDPOINT  OTLP gRPC collector for provider request spans
  BOREDOM_MCP_TRACE_SAMPLING   trace sampling ratio 0..1 (default 1)
`)
}

func printSimpleUsage() {
	fmt.Print(`boredom-mcp simple - Start the Simple Boredom Test server

Usage:
  boredom-mcp simple [options]

Exposes a single hello_world tool and an info://about resource.

Options:
  --port, -p PORT    Serve over HTTP on PORT (default: stdio transport)
  --help, -h         Show this help
`)
}
