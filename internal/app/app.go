// Package app wires configuration, the model provider and the generation
// pipeline into one application object shared by the CLI and the API server.
package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/prdhouse/prdhouse/internal/config"
	"github.com/prdhouse/prdhouse/internal/generator"
	"github.com/prdhouse/prdhouse/internal/llm"
	"github.com/prdhouse/prdhouse/internal/llm/providers"
	"github.com/prdhouse/prdhouse/internal/prd"
)

// App is the assembled application.
type App struct {
	Config  *config.Config
	Service llm.Service

	logger *log.Logger
}

// New builds the application from configuration, creating the model handler
// for the active provider.
func New(cfg *config.Config) (*App, error) {
	provider, entry := cfg.ActiveProvider()
	service, err := providers.New(provider, llm.HandlerOptions{
		APIKey:    entry.APIKey,
		ModelID:   entry.Model,
		MaxTokens: cfg.Generation.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize model provider: %w", err)
	}
	return NewWithService(cfg, service), nil
}

// NewWithService builds the application around an existing model service.
// Used by tests and by commands that inject their own handler.
func NewWithService(cfg *config.Config, service llm.Service) *App {
	return &App{
		Config:  cfg,
		Service: service,
		logger:  log.WithPrefix("app"),
	}
}

// GeneratePrototype runs the full PRD-to-prototype pipeline. The progress
// callback may be nil.
func (a *App) GeneratePrototype(ctx context.Context, data *prd.Data, userQuery string, progress generator.ProgressFunc) (*generator.Result, error) {
	opts := []generator.Option{generator.WithLogger(a.logger.WithPrefix("generator"))}
	if progress != nil {
		opts = append(opts, generator.WithProgress(progress))
	}
	gen := generator.New(a.Service, opts...)
	return gen.Generate(ctx, data, userQuery)
}

// RenderDocument renders the PRD payload as the five-chapter markdown
// document. Pure text transformation, no model call.
func (a *App) RenderDocument(data *prd.Data) string {
	return prd.GenerateDocument(data)
}
