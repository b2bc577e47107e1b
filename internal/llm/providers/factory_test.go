package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prdhouse/prdhouse/internal/llm"
)

func TestNew(t *testing.T) {
	options := llm.HandlerOptions{APIKey: "test-key"}

	t.Run("known providers", func(t *testing.T) {
		for _, name := range []string{ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter} {
			service, err := New(name, options)
			require.NoError(t, err, name)
			assert.Equal(t, name, service.Name())
		}
	})

	t.Run("provider name is case insensitive", func(t *testing.T) {
		service, err := New("Anthropic", options)
		require.NoError(t, err)
		assert.Equal(t, ProviderAnthropic, service.Name())
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New("gemini-ultra", options)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown provider")
	})

	t.Run("missing api key", func(t *testing.T) {
		_, err := New(ProviderAnthropic, llm.HandlerOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing API key")
	})
}

func TestMaxTokensOrDefault(t *testing.T) {
	assert.Equal(t, llm.DefaultMaxTokens, llm.HandlerOptions{}.MaxTokensOrDefault())
	assert.Equal(t, 2048, llm.HandlerOptions{MaxTokens: 2048}.MaxTokensOrDefault())
}
