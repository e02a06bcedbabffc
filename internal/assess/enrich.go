package assess

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/asante/codeweave/internal/concepts"
	"github.com/asante/codeweave/internal/llm"
)

// LLMEnricher produces cultural framings for path items through the
// generative collaborator. It satisfies paths.Enricher.
type LLMEnricher struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewLLMEnricher creates an enricher over a provider.
func NewLLMEnricher(provider llm.Provider) *LLMEnricher {
	return &LLMEnricher{
		provider:    provider,
		maxTokens:   256,
		temperature: 0.7,
	}
}

const enrichmentSystemPrompt = `You write short cultural framings for a coding course that teaches programming through textile patterns (kente, adinkra, mudcloth and similar traditions). Given one coding concept, connect it to a concrete weaving or pattern-making practice in two or three sentences. Plain language for young learners, no jargon.`

// Enrich returns a framing for the concept, or an error the caller
// treats as "no enrichment available".
func (e *LLMEnricher) Enrich(ctx context.Context, c concepts.Concept) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeEnrichment)

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: enrichmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Concept: %s\nDescription: %s\nKeywords: %v", c.Name, c.Description, c.Keywords)},
		},
		Schema:      EnrichmentSchema,
		MaxTokens:   e.maxTokens,
		Temperature: e.temperature,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Enrichment string `json:"enrichment"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse enrichment response: %w", err)
	}
	if out.Enrichment == "" {
		return "", fmt.Errorf("empty enrichment in response")
	}
	return out.Enrichment, nil
}

// NoopEnricher returns no enrichment. Used when no provider is
// configured so path generation stays fully deterministic.
type NoopEnricher struct{}

func (NoopEnricher) Enrich(context.Context, concepts.Concept) (string, error) {
	return "", nil
}
