package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/prdhouse/prdhouse/internal/llm"
)

const defaultAnthropicModel = "claude-sonnet-4-20250514"

// AnthropicHandler implements the llm.Service interface using the official
// Anthropic SDK.
type AnthropicHandler struct {
	options llm.HandlerOptions
	client  *anthropic.Client
}

// NewAnthropicHandler creates a new Anthropic handler.
func NewAnthropicHandler(options llm.HandlerOptions) *AnthropicHandler {
	client := anthropic.NewClient(
		option.WithAPIKey(options.APIKey),
	)

	return &AnthropicHandler{
		options: options,
		client:  &client,
	}
}

func (h *AnthropicHandler) Name() string { return "anthropic" }

// GenerateResponse sends the prompt as a single user message and concatenates
// the text blocks of the reply.
func (h *AnthropicHandler) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	model := h.options.ModelID
	if model == "" {
		model = defaultAnthropicModel
	}

	message, err := h.client.Messages.New(ctx, anthropic.MessageNewParams{
		MaxTokens: int64(h.options.MaxTokensOrDefault()),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Model: anthropic.Model(model),
	})
	if err != nil {
		return "", fmt.Errorf("anthropic completion failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(textBlock.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("anthropic returned no text content")
	}
	return sb.String(), nil
}
