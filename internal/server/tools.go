package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/boredom-mcp/internal/facts"
)

// toolHandler runs a tool against raw JSON arguments and returns the reply text.
// req is nil when the tool is invoked through CallTool.
type toolHandler func(ctx context.Context, req *mcp.CallToolRequest, args json.RawMessage) (string, error)

type toolDef struct {
	tool    *mcp.Tool
	handler toolHandler
}

// registerTools registers every Boredom Killer tool.
func (s *Server) registerTools() {
	defs := []toolDef{
		{
			tool: &mcp.Tool{
				Name:        "kanye_wast_quotes",
				Description: "Gets a random Kanye West quote to inspire or amuse.",
				InputSchema: noArgsInputSchema,
			},
			handler: s.fetchTool(facts.Kanye),
		},
		{
			tool: &mcp.Tool{
				Name:        "chuck_norris_joke",
				Description: "Gets a random Chuck Norris joke.",
				InputSchema: noArgsInputSchema,
			},
			handler: s.fetchTool(facts.Chuck),
		},
		{
			tool: &mcp.Tool{
				Name:        "get_advice",
				Description: "Gets a random piece of advice.",
				InputSchema: noArgsInputSchema,
			},
			handler: s.fetchTool(facts.Advice),
		},
		{
			tool: &mcp.Tool{
				Name:        "number_trivia",
				Description: "Gets a random number fact.",
				InputSchema: noArgsInputSchema,
			},
			handler: s.fetchTool(facts.Trivia),
		},
		{
			tool: &mcp.Tool{
				Name:        "boredom_combo",
				Description: "Gets a random combination of Kanye quote, joke, advice, and number trivia.",
				InputSchema: noArgsInputSchema,
			},
			handler: s.handleBoredomCombo,
		},
		{
			tool: &mcp.Tool{
				Name:        "save_favorite",
				Description: "Save a favorite quote, joke, advice, or trivia.",
				InputSchema: saveFavoriteInputSchema,
			},
			handler: typed(s.handleSaveFavorite),
		},
		{
			tool: &mcp.Tool{
				Name:        "get_favorites",
				Description: "Get your saved favorites by category or all.",
				InputSchema: categoryInputSchema,
			},
			handler: typed(s.handleGetFavorites),
		},
		{
			tool: &mcp.Tool{
				Name:        "clear_favorites",
				Description: "Clear your saved favorites by category or all.",
				InputSchema: categoryInputSchema,
			},
			handler: typed(s.handleClearFavorites),
		},
	}

	s.tools = make(map[string]toolDef, len(defs))
	for _, def := range defs {
		s.tools[def.tool.Name] = def
		s.mcpServer.AddTool(def.tool, s.wrap(def))
	}
}

// wrap adapts a toolHandler to the SDK. Argument errors become IsError
// results; domain failures are already plain text.
func (s *Server) wrap(def toolDef) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := def.handler(ctx, req, req.Params.Arguments)
		s.metrics.ObserveToolCall(def.tool.Name, err != nil)
		if err != nil {
			s.logger.Debug("tool call rejected", "tool", def.tool.Name, "error", err)
			return errorResult(err), nil
		}
		return textResult(text), nil
	}
}

// CallTool calls a tool directly (for testing purposes).
func (s *Server) CallTool(ctx context.Context, toolName string, args map[string]any) (string, error) {
	def, ok := s.tools[toolName]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", toolName)
	}

	var raw json.RawMessage
	if args != nil {
		data, err := json.Marshal(args)
		if err != nil {
			return "", fmt.Errorf("marshal arguments: %w", err)
		}
		raw = data
	}

	return def.handler(ctx, nil, raw)
}

// typed decodes arguments into In before calling h.
func typed[In any](h func(ctx context.Context, req *mcp.CallToolRequest, input In) (string, error)) toolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest, args json.RawMessage) (string, error) {
		var input In
		if len(args) > 0 {
			if err := json.Unmarshal(args, &input); err != nil {
				return "", fmt.Errorf("invalid arguments: %w", err)
			}
		}
		return h(ctx, req, input)
	}
}

// errorResult creates an error CallToolResult.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
