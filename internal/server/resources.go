package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AboutURI is the URI of the informational resource both servers expose.
const AboutURI = "info://about"

// AboutText describes the Boredom Killer server and its tools.
const AboutText = `Boredom Killer MCP Server

This server helps cure boredom with Kanye West quotes, Chuck Norris jokes,
life advice, and number trivia.

Available tools:

- kanye_wast_quotes() - Gets a Kanye West quote
- chuck_norris_joke() - Tells a Chuck Norris joke
- get_advice() - Offers a piece of wisdom
- number_trivia() - Shares an interesting fact about a random number
- boredom_combo() - Gives you all of the above at once!

Favorites Management:
- save_favorite(category, content) - Save a favorite item
- get_favorites(category) - View your saved favorites
- clear_favorites(category) - Clear your favorites

Example categories: "quote", "joke", "advice", "trivia"
Leave category blank to affect all categories.
`

func (s *Server) registerResources() {
	addTextResource(s.mcpServer, "about", "Get information about this MCP server.", AboutText)
}

// addTextResource registers a static text/plain resource at AboutURI.
func addTextResource(srv *mcp.Server, name, description, text string) {
	srv.AddResource(
		&mcp.Resource{
			URI:         AboutURI,
			Name:        name,
			Description: description,
			MIMEType:    "text/plain",
		},
		func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "text/plain",
					Text:     text,
				}},
			}, nil
		},
	)
}
