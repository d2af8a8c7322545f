package narrator

import "github.com/abhisek/cognitrain/internal/llm"

// ProfileSchema defines the JSON schema for profile narrative responses.
var ProfileSchema = &llm.Schema{
	Name:        "profile-narrative",
	Description: "A short personalized cognitive profile message based on assessment scores",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "The personalized message, 2-3 sentences, warm and encouraging",
			},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}
