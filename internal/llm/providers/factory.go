// Package providers contains the model-provider adapters behind the
// llm.Service interface.
package providers

import (
	"fmt"
	"strings"

	"github.com/prdhouse/prdhouse/internal/llm"
)

// Provider names accepted by New.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
)

// New creates the handler for the named provider. The API key must be set;
// a handler with an empty key would fail on every call with a worse message.
func New(provider string, options llm.HandlerOptions) (llm.Service, error) {
	if options.APIKey == "" {
		return nil, fmt.Errorf("provider %s: missing API key", provider)
	}

	switch strings.ToLower(provider) {
	case ProviderAnthropic:
		return NewAnthropicHandler(options), nil
	case ProviderOpenAI:
		return NewOpenAIHandler(options), nil
	case ProviderOpenRouter:
		return NewOpenRouterHandler(options), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
