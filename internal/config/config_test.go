package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *Config {
	return &Config{
		Server:     ServerConfig{Host: "127.0.0.1", Port: 47823},
		Generation: GenerationConfig{Provider: "anthropic", MaxTokens: 8192},
		Providers:  map[string]Provider{},
	}
}

func TestValidate(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		assert.NoError(t, Validate(baseConfig()))
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Generation.Provider = "bard"
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown generation provider")
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Server.Port = 0
		assert.Error(t, Validate(cfg))

		cfg.Server.Port = 70000
		assert.Error(t, Validate(cfg))
	})

	t.Run("disabled active provider", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Providers["anthropic"] = Provider{APIKey: "k", Disabled: true}
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disabled")
	})
}

func TestApplyProviderEnv(t *testing.T) {
	t.Run("env key fills empty provider entry", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "sk-from-env")
		cfg := baseConfig()

		applyProviderEnv(cfg)

		assert.Equal(t, "sk-from-env", cfg.Providers["anthropic"].APIKey)
	})

	t.Run("config file key wins over env", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-from-env")
		cfg := baseConfig()
		cfg.Providers["openai"] = Provider{APIKey: "sk-from-file"}

		applyProviderEnv(cfg)

		assert.Equal(t, "sk-from-file", cfg.Providers["openai"].APIKey)
	})

	t.Run("model override targets the active provider", func(t *testing.T) {
		t.Setenv("PRDHOUSE_MODEL", "claude-opus-4-20250514")
		cfg := baseConfig()

		applyProviderEnv(cfg)

		assert.Equal(t, "claude-opus-4-20250514", cfg.Providers["anthropic"].Model)
	})
}

func TestActiveProvider(t *testing.T) {
	cfg := baseConfig()
	cfg.Providers["anthropic"] = Provider{APIKey: "k", Model: "claude-sonnet-4-20250514"}

	name, entry := cfg.ActiveProvider()

	assert.Equal(t, "anthropic", name)
	assert.Equal(t, "k", entry.APIKey)
}
