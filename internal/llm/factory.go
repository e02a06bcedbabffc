package llm

import (
	"context"
	"fmt"

	"github.com/asante/codeweave/internal/storage"
)

// NewProvider creates a Provider from configuration, wrapped with the
// retry and logging middleware. The store receives a log record per
// request; pass nil to skip durable logging.
func NewProvider(ctx context.Context, cfg Config, store storage.Store) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base, so every
	// attempt is logged individually.
	logged := WithLogging(base, store)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}
