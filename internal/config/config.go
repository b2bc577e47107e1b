// Package config loads application configuration from a JSON config file and
// PRDHOUSE_* environment variables, with env taking precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const appName = "prdhouse"

// Provider defines configuration for one LLM provider.
type Provider struct {
	APIKey   string `json:"apiKey"`
	Model    string `json:"model,omitempty"`
	Disabled bool   `json:"disabled"`
}

// ServerConfig defines the HTTP API server settings.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// GenerationConfig defines pipeline settings.
type GenerationConfig struct {
	// Provider selects the model backend: anthropic, openai or openrouter.
	Provider  string `json:"provider"`
	MaxTokens int    `json:"maxTokens"`
}

// Config is the main configuration structure for the application.
type Config struct {
	Debug      bool                `json:"debug"`
	LogLevel   string              `json:"logLevel"`
	Server     ServerConfig        `json:"server"`
	Generation GenerationConfig    `json:"generation"`
	Providers  map[string]Provider `json:"providers"`
}

// Load reads configuration from ~/.prdhouse.json (or $XDG_CONFIG_HOME) and
// the environment. A missing config file is fine; defaults plus env cover
// everything.
func Load() (*Config, error) {
	configureViper()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyProviderEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configureViper() {
	viper.SetConfigName(fmt.Sprintf(".%s", appName))
	viper.SetConfigType("json")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(fmt.Sprintf("$XDG_CONFIG_HOME/%s", appName))
	viper.AddConfigPath(fmt.Sprintf("$HOME/.config/%s", appName))
	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func setDefaults() {
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 47823)
	viper.SetDefault("generation.provider", "anthropic")
	viper.SetDefault("generation.maxTokens", 8192)

	if os.Getenv("PRDHOUSE_DEBUG") == "true" {
		viper.SetDefault("debug", true)
		viper.Set("logLevel", "debug")
	} else {
		viper.SetDefault("debug", false)
		viper.SetDefault("logLevel", "info")
	}
}

// applyProviderEnv folds well-known provider key variables into the provider
// map, so the common case needs no config file at all.
func applyProviderEnv(cfg *Config) {
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]Provider)
	}

	envKeys := map[string]string{
		"anthropic":  "ANTHROPIC_API_KEY",
		"openai":     "OPENAI_API_KEY",
		"openrouter": "OPENROUTER_API_KEY",
	}
	for provider, envKey := range envKeys {
		value := os.Getenv(envKey)
		if value == "" {
			continue
		}
		entry := cfg.Providers[provider]
		if entry.APIKey == "" {
			entry.APIKey = value
		}
		cfg.Providers[provider] = entry
	}

	if model := os.Getenv("PRDHOUSE_MODEL"); model != "" {
		entry := cfg.Providers[cfg.Generation.Provider]
		entry.Model = model
		cfg.Providers[cfg.Generation.Provider] = entry
	}
}

// Validate checks the loaded configuration for contradictions. A missing API
// key is not an error here; commands that never call a model still work.
func Validate(cfg *Config) error {
	switch cfg.Generation.Provider {
	case "anthropic", "openai", "openrouter":
	default:
		return fmt.Errorf("unknown generation provider: %s", cfg.Generation.Provider)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	if entry, ok := cfg.Providers[cfg.Generation.Provider]; ok && entry.Disabled {
		return fmt.Errorf("generation provider %s is disabled", cfg.Generation.Provider)
	}
	return nil
}

// ActiveProvider returns the configured generation provider entry.
func (c *Config) ActiveProvider() (string, Provider) {
	return c.Generation.Provider, c.Providers[c.Generation.Provider]
}
