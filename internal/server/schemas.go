package server

import "encoding/json"

// Tool input schemas are written by hand so that every client validator
// accepts them, including the ones that reject "type": ["null", ...] unions.

// noArgsInputSchema is shared by every tool without parameters.
var noArgsInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {},
	"additionalProperties": false
}`)

// saveFavoriteInputSchema is the input schema for save_favorite.
var saveFavoriteInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"category": {
			"type": "string",
			"description": "One of: quote, joke, advice, trivia"
		},
		"content": {
			"type": "string",
			"description": "The text to save"
		}
	},
	"required": ["category", "content"],
	"additionalProperties": false
}`)

// categoryInputSchema is the input schema for get_favorites and clear_favorites.
var categoryInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"category": {
			"type": "string",
			"description": "One of: quote, joke, advice, trivia. Leave empty for all categories"
		}
	},
	"additionalProperties": false
}`)
