package providers

import (
	"context"
	"fmt"

	openrouter "github.com/revrost/go-openrouter"

	"github.com/prdhouse/prdhouse/internal/llm"
)

const defaultOpenRouterModel = "anthropic/claude-sonnet-4"

// OpenRouterHandler implements the llm.Service interface using the OpenRouter
// Go SDK, giving access to every model behind one API key.
type OpenRouterHandler struct {
	options llm.HandlerOptions
	client  *openrouter.Client
}

// NewOpenRouterHandler creates a new OpenRouter handler.
func NewOpenRouterHandler(options llm.HandlerOptions) *OpenRouterHandler {
	client := openrouter.NewClient(options.APIKey)

	return &OpenRouterHandler{
		options: options,
		client:  client,
	}
}

func (h *OpenRouterHandler) Name() string { return "openrouter" }

// GenerateResponse sends the prompt as a single user message and returns the
// first choice's content.
func (h *OpenRouterHandler) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	model := h.options.ModelID
	if model == "" {
		model = defaultOpenRouterModel
	}

	response, err := h.client.CreateChatCompletion(ctx, openrouter.ChatCompletionRequest{
		Model: model,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role:    openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{Text: prompt},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter completion failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("openrouter returned no choices")
	}
	return response.Choices[0].Message.Content.Text, nil
}
