// Package generator orchestrates the PRD-to-prototype pipeline: requirement
// analysis, template matching, prompt assembly, the model call, and extraction
// plus validation of the returned document.
package generator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/prdhouse/prdhouse/internal/instructions"
	"github.com/prdhouse/prdhouse/internal/llm"
	"github.com/prdhouse/prdhouse/internal/prd"
	"github.com/prdhouse/prdhouse/internal/prompt"
	"github.com/prdhouse/prdhouse/internal/templates"
)

// Pipeline stages reported through the progress callback, in execution order.
const (
	StageAnalyzing  = "analyzing"
	StageMatching   = "matching"
	StagePrompting  = "prompting"
	StageGenerating = "generating"
	StageExtracting = "extracting"
	StageDone       = "done"
)

// ProgressFunc receives stage transitions while a generation runs. Callbacks
// fire on the calling goroutine; keep them fast.
type ProgressFunc func(stage string, percent int, message string)

// Result is the outcome of one prototype generation.
type Result struct {
	HTMLContent         string                         `json:"htmlContent"`
	Instructions        instructions.BuildInstructions `json:"buildInstructions"`
	InstructionsSummary string                         `json:"instructionsSummary"`
	Match               templates.MatchResult          `json:"templateMatchResult"`
	Validation          Validation                     `json:"validation"`
}

// Generator runs the pipeline against a configured model service.
type Generator struct {
	service  llm.Service
	logger   *log.Logger
	progress ProgressFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger replaces the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) { g.progress = fn }
}

// New creates a Generator backed by the given model service.
func New(service llm.Service, opts ...Option) *Generator {
	g := &Generator{
		service: service,
		logger:  log.WithPrefix("generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) report(stage string, percent int, message string) {
	if g.progress != nil {
		g.progress(stage, percent, message)
	}
}

// Generate runs the full pipeline. The analysis stages are deterministic and
// cannot fail; errors come only from the model call and HTML extraction. On
// those errors the returned Result still carries the build instructions and
// the template match so callers can surface them alongside the failure. The
// validation report is advisory and never rejects a result.
func (g *Generator) Generate(ctx context.Context, data *prd.Data, userQuery string) (*Result, error) {
	g.report(StageAnalyzing, 10, "转换PRD数据为构建指令")
	productType := instructions.Classify(data)
	built := instructions.Synthesize(data, productType, instructions.BestPracticeFor(productType))
	summary := instructions.ToText(built)
	g.logger.Info("build instructions ready", "productType", productType)

	g.report(StageMatching, 30, "执行智能模板匹配")
	match := templates.Match(data)
	g.logger.Info("template match complete",
		"type", match.MatchType,
		"confidence", fmt.Sprintf("%d%%", int(match.Confidence*100+0.5)),
		"templates", len(match.Templates))

	partial := &Result{
		Instructions:        built,
		InstructionsSummary: summary,
		Match:               match,
	}

	g.report(StagePrompting, 45, "构建增强提示词")
	assembled, err := prompt.Build(prompt.Input{
		PRD:          data,
		Instructions: built,
		Match:        match,
		UserQuery:    userQuery,
	})
	if err != nil {
		return partial, fmt.Errorf("assemble prompt: %w", err)
	}
	g.logger.Debug("prompt assembled", "length", len(assembled))

	g.report(StageGenerating, 60, "调用AI生成HTML原型")
	response, err := g.service.GenerateResponse(ctx, assembled)
	if err != nil {
		return partial, fmt.Errorf("model call failed: %w", err)
	}

	g.report(StageExtracting, 85, "提取和验证HTML内容")
	htmlContent, ok := ExtractHTML(response)
	if !ok {
		return partial, fmt.Errorf("无法从AI响应中提取有效的HTML代码")
	}

	validation := ValidateHTML(htmlContent)
	if !validation.Valid {
		g.logger.Warn("html validation issues", "issues", validation.Issues)
	}

	g.report(StageDone, 100, "生成完成")
	g.logger.Info("generation complete",
		"htmlLength", len(htmlContent),
		"matchType", match.MatchType,
		"valid", validation.Valid)

	return &Result{
		HTMLContent:         htmlContent,
		Instructions:        built,
		InstructionsSummary: summary,
		Match:               match,
		Validation:          validation,
	}, nil
}
