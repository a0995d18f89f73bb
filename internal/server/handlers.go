package server

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/boredom-mcp/internal/facts"
)

const comboProgress = "Preparing the ultimate boredom killer combo..."

// SaveFavoriteInput is the input for the save_favorite tool.
type SaveFavoriteInput struct {
	Category string `json:"category" jsonschema:"One of: quote, joke, advice, trivia"`
	Content  string `json:"content" jsonschema:"The text to save"`
}

// CategoryInput is the input for get_favorites and clear_favorites.
type CategoryInput struct {
	Category string `json:"category,omitempty" jsonschema:"Category to target; empty means all"`
}

// fetchTool returns a handler that fetches one fact from the named provider.
func (s *Server) fetchTool(provider string) toolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest, _ json.RawMessage) (string, error) {
		f, err := s.facts.Get(provider)
		if err != nil {
			return "", err
		}
		s.notify(ctx, req, facts.Progress(provider))
		return f.Fetch(ctx).Text, nil
	}
}

func (s *Server) handleBoredomCombo(ctx context.Context, req *mcp.CallToolRequest, _ json.RawMessage) (string, error) {
	s.notify(ctx, req, comboProgress)
	return s.combo.Combo(ctx), nil
}

func (s *Server) handleSaveFavorite(_ context.Context, _ *mcp.CallToolRequest, input SaveFavoriteInput) (string, error) {
	return s.favorites.SaveFavorite(input.Category, input.Content), nil
}

func (s *Server) handleGetFavorites(_ context.Context, _ *mcp.CallToolRequest, input CategoryInput) (string, error) {
	return s.favorites.GetFavorites(input.Category), nil
}

func (s *Server) handleClearFavorites(_ context.Context, _ *mcp.CallToolRequest, input CategoryInput) (string, error) {
	return s.favorites.ClearFavorites(input.Category), nil
}

// notify sends an info log message to the calling session. Clients that have
// not set a log level never see it; failures are only logged locally.
func (s *Server) notify(ctx context.Context, req *mcp.CallToolRequest, msg string) {
	if req == nil || req.Session == nil || msg == "" {
		return
	}
	err := req.Session.Log(ctx, &mcp.LoggingMessageParams{
		Level:  "info",
		Logger: serverName,
		Data:   msg,
	})
	if err != nil {
		s.logger.Debug("failed to send progress notification", "error", err)
	}
}
