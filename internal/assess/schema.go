package assess

import "github.com/asante/codeweave/internal/llm"

// AssessmentSchema defines the JSON schema for LLM skill assessments.
var AssessmentSchema = &llm.Schema{
	Name:        "skill-assessment",
	Description: "Per-concept skill levels, a learning-style label and next-concept suggestions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skills": map[string]any{
				"type":        "array",
				"description": "One entry per assessed concept",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"conceptId": map[string]any{
							"type":        "string",
							"description": "A concept ID from the provided catalog",
						},
						"level": map[string]any{
							"type": "string",
							"enum": []any{"beginner", "developing", "proficient", "advanced"},
						},
					},
					"required":             []any{"conceptId", "level"},
					"additionalProperties": false,
				},
			},
			"styleLabel": map[string]any{
				"type": "string",
				"enum": []any{"visual", "logical", "practical", "verbal", "social", "reflective"},
			},
			"nextConcepts": map[string]any{
				"type":        "array",
				"description": "Concept IDs to study next, strongest recommendation first",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required":             []any{"skills", "styleLabel", "nextConcepts"},
		"additionalProperties": false,
	},
}

// EnrichmentSchema defines the JSON schema for path-item enrichment.
var EnrichmentSchema = &llm.Schema{
	Name:        "path-enrichment",
	Description: "A short cultural framing for one coding concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"enrichment": map[string]any{
				"type":        "string",
				"description": "Two or three sentences connecting the concept to a textile pattern tradition",
			},
		},
		"required":             []any{"enrichment"},
		"additionalProperties": false,
	},
}
