// Package llm defines the model-service abstraction the generation pipeline
// calls. Provider adapters live in the providers subpackage; the pipeline only
// sees this interface.
package llm

import "context"

// Default generation limits. Prototype HTML runs long, so the token ceiling
// is generous.
const (
	DefaultMaxTokens = 8192
)

// HandlerOptions configures a provider handler.
type HandlerOptions struct {
	APIKey    string
	ModelID   string
	MaxTokens int
}

// MaxTokensOrDefault returns the configured ceiling, or the default when the
// option is unset.
func (o HandlerOptions) MaxTokensOrDefault() int {
	if o.MaxTokens > 0 {
		return o.MaxTokens
	}
	return DefaultMaxTokens
}

// Service produces a single completion for an assembled prompt. One call, one
// response; the pipeline never streams partial documents.
type Service interface {
	// Name identifies the backing provider for logs and API responses.
	Name() string

	// GenerateResponse sends the prompt and returns the full completion text.
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}
