package providers

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/prdhouse/prdhouse/internal/llm"
)

const defaultOpenAIModel = "gpt-4o"

// OpenAIHandler implements the llm.Service interface using the official
// OpenAI Go SDK.
type OpenAIHandler struct {
	options llm.HandlerOptions
	client  *openai.Client
}

// NewOpenAIHandler creates a new OpenAI handler.
func NewOpenAIHandler(options llm.HandlerOptions) *OpenAIHandler {
	client := openai.NewClient(
		option.WithAPIKey(options.APIKey),
	)

	return &OpenAIHandler{
		options: options,
		client:  &client,
	}
}

func (h *OpenAIHandler) Name() string { return "openai" }

// GenerateResponse sends the prompt as a single user message and returns the
// first choice's content.
func (h *OpenAIHandler) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	model := h.options.ModelID
	if model == "" {
		model = defaultOpenAIModel
	}

	completion, err := h.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(model),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
