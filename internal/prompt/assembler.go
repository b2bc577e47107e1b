// Package prompt assembles the generation prompt sent to the model: base
// system rules, the raw PRD payload, the synthesized build instructions, the
// template match rationale and reference detail, and the closing constraints.
// Assembly is deterministic; identical inputs produce the identical prompt.
package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/prdhouse/prdhouse/internal/instructions"
	"github.com/prdhouse/prdhouse/internal/prd"
	"github.com/prdhouse/prdhouse/internal/templates"
)

// Input carries everything the assembler folds into the final prompt.
type Input struct {
	PRD          *prd.Data
	Instructions instructions.BuildInstructions
	Match        templates.MatchResult
	// UserQuery is an optional free-form note from the requester, inserted
	// verbatim into its own section.
	UserQuery string
}

// basePrompt states the role, output format and hard technical rules. The
// image rules exist because other placeholder services are unreachable from
// some networks; Picsum is the only allowed source.
const basePrompt = `# 角色定义
你是一位资深的前端工程师和UX设计师，你的任务是将接收到的 JSON 格式的产品需求文档（PRD）数据转换成一个真实可交互的产品应用原型，而不是需求文档的展示页面。

# 输出要求

## 格式要求
- 必须生成一个完整的 HTML 文件，包含 HTML 结构、CSS 样式和 JavaScript 交互代码
- 使用 Tailwind CSS CDN 来进行样式设计，避免复杂的编译环境
- 确保页面在现代浏览器中能够正常显示和交互

## 技术栈要求
- HTML5 语义化标签
- Tailwind CSS v3.x (通过CDN引入)
- 原生 JavaScript (ES6+)
- 响应式设计，适配桌面和移动设备

## 图片要求（重要）
- **强制使用Picsum Photos**：https://picsum.photos/width/height
- **禁止使用其他图片服务**：via.placeholder.com、placeholder.com等可能无法访问
- **标准URL格式**：https://picsum.photos/800/400、https://picsum.photos/400/300等
- **示例**：<img src="https://picsum.photos/400/300" alt="产品展示图" class="w-full h-48 object-cover">
- 图片尺寸要合适且加载快速，建议宽度不超过1200px
- 所有图片必须带有意义的alt文本

## 交互要求
1. **真实操作**：核心功能模块必须可以点击、输入、切换，体现真实的产品行为
2. **悬停效果**：为卡片和按钮添加适当的悬停效果
3. **响应式导航**：在移动设备上提供合适的导航体验
4. **交互反馈**：提供直观的状态变化和操作反馈

## 设计原则
1. **简洁现代**：使用干净的设计风格，突出内容
2. **层次清晰**：通过字体大小、颜色、间距建立清晰的信息层次
3. **产品优先**：呈现产品本身的界面和功能，而不是文档内容

# 响应指令
请根据提供的PRD数据，生成一个完整的HTML页面。直接返回HTML代码，不需要额外的解释文字。确保代码完整可运行。`

var matchTypeLabels = map[string]string{
	templates.MatchExact:      "🎯 精确匹配",
	templates.MatchFunctional: "🔧 功能相似性匹配",
	templates.MatchLayout:     "📐 布局适配匹配",
	templates.MatchHybrid:     "🔀 多模板融合匹配",
	templates.MatchFallback:   "🌟 通用最佳实践匹配",
}

func matchTypeLabel(matchType string) string {
	if label, ok := matchTypeLabels[matchType]; ok {
		return label
	}
	return matchType
}

// Build assembles the full generation prompt. The only error source is PRD
// serialization, which fails only on non-marshalable payloads.
func Build(in Input) (string, error) {
	prdJSON, err := json.MarshalIndent(in.PRD, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize prd payload: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(basePrompt)

	sb.WriteString("\n\n# PRD数据输入\n\n")
	sb.WriteString("以下是需要转换的PRD数据（JSON格式）：\n\n")
	fmt.Fprintf(&sb, "```json\n%s\n```\n", prdJSON)

	if in.UserQuery != "" {
		fmt.Fprintf(&sb, "\n# 用户特殊要求\n\n%s\n", in.UserQuery)
	}

	sb.WriteString("\n# 🎯 智能产品构建系统\n\n")
	sb.WriteString("**重要说明**：本系统基于参考模板进行智能生成，以下分析和模板信息用于提升生成质量和设计一致性。\n")

	sb.WriteString("\n## 📊 第一步：产品构建指令分析\n\n")
	sb.WriteString("以下是基于PRD数据智能分析得出的产品构建指令，已将文档化需求转换为具体的产品功能描述：\n\n")
	sb.WriteString(instructions.ToText(in.Instructions))
	sb.WriteString("\n")

	sb.WriteString(matchSuggestion(in.Match))
	sb.WriteString(templateReference(in.Match.Templates))

	sb.WriteString("\n---\n")
	sb.WriteString(executionSection(in.Instructions, in.Match))
	sb.WriteString(closingSection(in.Instructions, in.Match))

	return sb.String(), nil
}

// matchSuggestion renders the match rationale: type, confidence and reason,
// plus adaptation guidance when the match is indirect.
func matchSuggestion(match templates.MatchResult) string {
	var sb strings.Builder

	sb.WriteString("\n## 🎯 参考模板匹配结果\n\n")
	fmt.Fprintf(&sb, "**匹配类型**: %s\n", matchTypeLabel(match.MatchType))
	fmt.Fprintf(&sb, "**匹配度**: %d%%\n", percent(match.Confidence))
	fmt.Fprintf(&sb, "**分析**: %s\n\n", match.Reason)

	if len(match.Templates) == 1 {
		template := match.Templates[0]
		fmt.Fprintf(&sb, "**参考模板**: %s\n", template.Name)
		fmt.Fprintf(&sb, "**布局类型**: %s\n", template.LayoutType)
		fmt.Fprintf(&sb, "**设计风格**: %s\n\n", strings.Join(template.Tags, ", "))

		if match.MatchType == templates.MatchFallback || match.MatchType == templates.MatchLayout {
			sb.WriteString("⚠️ **重要提示**: 由于没有找到完全匹配的模板，请重点关注以下适配要求：\n")
			sb.WriteString("1. 保留参考模板的整体布局结构和交互模式\n")
			sb.WriteString("2. 根据PRD的具体需求调整内容组织方式\n")
			sb.WriteString("3. 适配产品特定的功能模块和用户场景\n")
			sb.WriteString("4. 保持设计的一致性和可用性\n\n")
		}
	} else if len(match.Templates) > 1 {
		fmt.Fprintf(&sb, "**融合模板** (%d个):\n", len(match.Templates))
		for i, template := range match.Templates {
			fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, template.Name, template.LayoutType)
		}
		sb.WriteString("\n💡 **融合策略**: 结合多个模板的优势，取各模板的最佳实践进行融合设计。\n\n")
	}

	if match.FallbackStrategy != "" {
		fmt.Fprintf(&sb, "**回退策略**: %s\n\n", match.FallbackStrategy)
	}

	return sb.String()
}

// templateReference renders the full design detail of a single template, or a
// compact fusion brief when several templates are selected.
func templateReference(selected []templates.ReferenceTemplate) string {
	if len(selected) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n## 🎨 设计参考模板\n\n")

	if len(selected) == 1 {
		template := selected[0]
		fmt.Fprintf(&sb, "**参考模板**: %s\n", template.Name)
		fmt.Fprintf(&sb, "**说明**: %s\n", template.Description)
		fmt.Fprintf(&sb, "**布局类型**: %s\n", template.LayoutType)
		fmt.Fprintf(&sb, "**产品类型**: %s\n", template.ProductType)
		fmt.Fprintf(&sb, "**行业类型**: %s\n", template.IndustryType)
		fmt.Fprintf(&sb, "**信任评分**: %d/10\n\n", template.TrustScore)

		palette := template.DesignSystem.ColorPalette
		sb.WriteString("### 🎨 设计系统配置\n\n")
		sb.WriteString("**配色方案**:\n")
		fmt.Fprintf(&sb, "- 主色调: %s\n", palette.Primary)
		fmt.Fprintf(&sb, "- 副色调: %s\n", palette.Secondary)
		fmt.Fprintf(&sb, "- 背景色: %s\n", palette.Background)
		fmt.Fprintf(&sb, "- 主要文字色: %s\n", palette.Text.Primary)
		fmt.Fprintf(&sb, "- 次要文字色: %s\n", palette.Text.Secondary)
		if palette.Accent != "" {
			fmt.Fprintf(&sb, "- 强调色: %s\n", palette.Accent)
		}
		fmt.Fprintf(&sb, "- 边框色: %s\n\n", palette.Border)

		typography := template.DesignSystem.Typography
		sb.WriteString("**字体系统**:\n")
		fmt.Fprintf(&sb, "- 主字体: %s\n", typography.FontFamily.Primary)
		fmt.Fprintf(&sb, "- H1标题: %s\n", typography.Scale.H1)
		fmt.Fprintf(&sb, "- H2标题: %s\n", typography.Scale.H2)
		fmt.Fprintf(&sb, "- H3标题: %s\n", typography.Scale.H3)
		fmt.Fprintf(&sb, "- 正文: %s\n", typography.Scale.Body)
		fmt.Fprintf(&sb, "- 小字: %s\n\n", typography.Scale.Small)

		spacing := template.DesignSystem.Spacing
		sb.WriteString("**间距系统**:\n")
		fmt.Fprintf(&sb, "- 超小: %s\n", spacing.XS)
		fmt.Fprintf(&sb, "- 小: %s\n", spacing.SM)
		fmt.Fprintf(&sb, "- 中: %s\n", spacing.MD)
		fmt.Fprintf(&sb, "- 大: %s\n", spacing.LG)
		fmt.Fprintf(&sb, "- 超大: %s\n", spacing.XL)
		fmt.Fprintf(&sb, "- 特大: %s\n\n", spacing.XXL)

		sb.WriteString("### 📐 布局结构参考\n\n")
		fmt.Fprintf(&sb, "**布局类型**: %s\n", template.LayoutType)
		fmt.Fprintf(&sb, "**结构配置**: %s\n\n", compactJSON(template.LayoutStructure))

		if len(template.InteractionPatterns) > 0 {
			sb.WriteString("### 🔄 交互模式\n\n")
			for _, key := range sortedKeys(template.InteractionPatterns) {
				fmt.Fprintf(&sb, "- **%s**: %s\n", key, template.InteractionPatterns[key])
			}
			sb.WriteString("\n")
		}

		sb.WriteString("### 🏷️ 设计标签\n")
		fmt.Fprintf(&sb, "%s\n\n", strings.Join(template.Tags, ", "))
		return sb.String()
	}

	fmt.Fprintf(&sb, "**融合模板策略**: 结合%d个参考模板的优势\n\n", len(selected))
	for i, template := range selected {
		fmt.Fprintf(&sb, "**模板%d**: %s\n", i+1, template.Name)
		fmt.Fprintf(&sb, "- 布局类型: %s\n", template.LayoutType)
		fmt.Fprintf(&sb, "- 评分: %d/10\n", template.TrustScore)
		fmt.Fprintf(&sb, "- 特色: %s\n\n", strings.Join(firstN(template.Tags, 3), ", "))
	}

	sb.WriteString("### 💡 融合建议\n\n")
	sb.WriteString("1. 采用评分最高的模板作为主要布局框架\n")
	sb.WriteString("2. 借鉴其他模板的色彩搭配和组件设计\n")
	sb.WriteString("3. 结合各模板的交互模式创造最佳用户体验\n")
	sb.WriteString("4. 保持设计一致性和品牌统一性\n\n")
	return sb.String()
}

var strategyTexts = map[string]string{
	templates.MatchExact:      "🎯 **精确匹配策略**：参考模板与产品需求高度匹配，请严格按照模板的设计系统和布局结构实现。",
	templates.MatchFunctional: "🔧 **功能相似性策略**：参考模板在功能特征上与需求相似，请采用模板的交互模式并适配具体功能。",
	templates.MatchLayout:     "📐 **布局适配策略**：根据产品复杂度选择了合适的布局类型，请保持模板的整体结构并调整内容组织。",
	templates.MatchHybrid:     "🔀 **多模板融合策略**：结合多个模板的优势，取各模板的最佳实践进行融合设计。",
	templates.MatchFallback:   "🌟 **通用最佳实践策略**：使用高质量通用模板，确保产品的设计质量和可用性。",
}

// executionSection renders the build-requirement reinforcement: product type
// adaptation, the per-match-type execution strategy, and the feature, user
// and design-spec checklists.
func executionSection(b instructions.BuildInstructions, match templates.MatchResult) string {
	var sb strings.Builder

	sb.WriteString("\n## 🚀 第二步：构建要求强化\n\n")
	sb.WriteString("### 产品类型适配\n")
	fmt.Fprintf(&sb, "基于分析，这是一个 **%s** 类型的产品，请采用相应的界面模式和交互设计。\n\n", b.ProductType)

	sb.WriteString("### 🎨 设计执行策略\n\n")
	fmt.Fprintf(&sb, "**模板匹配类型**: %s\n", match.MatchType)
	fmt.Fprintf(&sb, "**匹配置信度**: %d%%\n\n", percent(match.Confidence))
	if strategy, ok := strategyTexts[match.MatchType]; ok {
		sb.WriteString(strategy)
		sb.WriteString("\n\n")
	}

	sb.WriteString("### 核心构建指令\n")
	fmt.Fprintf(&sb, "1. **构建目标**：%s\n", b.ProductVision.CoreValue)
	fmt.Fprintf(&sb, "2. **解决方案**：为 %s 提供解决方案\n", b.ProductVision.ProblemSolved)
	fmt.Fprintf(&sb, "3. **目标用户**：服务于 %s\n", b.ProductVision.TargetMarket)
	fmt.Fprintf(&sb, "4. **差异化特色**：%s\n\n", b.ProductVision.Differentiation)

	sb.WriteString("### 必须实现的功能模块\n")
	for i, feature := range b.KeyFeatures {
		fmt.Fprintf(&sb, "%d. **%s** (优先级: %s)\n", i+1, feature.FeatureName, feature.Priority)
		fmt.Fprintf(&sb, "   - 用户操作流程：%s\n", feature.UserFlow)
		fmt.Fprintf(&sb, "   - 需要的UI组件：%s\n", strings.Join(feature.UIComponents, "、"))
		fmt.Fprintf(&sb, "   - 交互方式：%s\n", strings.Join(feature.Interactions, "、"))
	}

	sb.WriteString("\n### 用户体验设计重点\n")
	for _, user := range b.TargetUsers {
		fmt.Fprintf(&sb, "- **%s场景**：%s\n", user.UserType, user.UsageScenario)
		fmt.Fprintf(&sb, "  - 必须解决的痛点：%s\n", strings.Join(user.PainPoints, "、"))
		fmt.Fprintf(&sb, "  - 设计考虑：%s\n", user.DesignImplications)
	}

	sb.WriteString("\n### 设计规范要求\n")
	for _, spec := range b.DesignSpecs {
		fmt.Fprintf(&sb, "- **%s**：%s\n", spec.Category, strings.Join(spec.Requirements, "、"))
	}

	return sb.String()
}

// closingSection restates the hard constraints last, where models weight them
// most: no document page, a real operable prototype, template fidelity.
func closingSection(b instructions.BuildInstructions, match templates.MatchResult) string {
	var sb strings.Builder

	sb.WriteString("\n## 🎨 第三步：设计实施指南\n\n")
	sb.WriteString("### 颜色与样式\n")
	if len(match.Templates) > 0 {
		palette := match.Templates[0].DesignSystem.ColorPalette
		sb.WriteString("- 请严格按照参考模板的配色方案实施\n")
		fmt.Fprintf(&sb, "- 主色调：%s\n", palette.Primary)
		fmt.Fprintf(&sb, "- 辅助色调：%s\n", palette.Secondary)
		sb.WriteString("- 保持与参考模板一致的视觉风格\n")
	} else {
		sb.WriteString("- 采用现代、专业的配色方案\n")
		sb.WriteString("- 确保良好的对比度和可读性\n")
		sb.WriteString("- 使用Tailwind CSS的配色系统\n")
	}

	sb.WriteString("\n### 布局与结构\n")
	if len(match.Templates) > 0 {
		fmt.Fprintf(&sb, "- 布局类型：%s\n", match.Templates[0].LayoutType)
		sb.WriteString("- 严格遵循参考模板的布局结构\n")
		sb.WriteString("- 保持模板的组件层次和空间关系\n")
	} else {
		sb.WriteString("- 采用响应式设计\n")
		sb.WriteString("- 确保清晰的信息层次\n")
		sb.WriteString("- 优化用户操作流程\n")
	}

	sb.WriteString("\n### 交互与动效\n")
	if len(match.Templates) > 0 && len(match.Templates[0].InteractionPatterns) > 0 {
		fmt.Fprintf(&sb, "- 交互模式：%s\n", compactJSON(match.Templates[0].InteractionPatterns))
		sb.WriteString("- 保持与参考模板一致的交互体验\n")
	} else {
		sb.WriteString("- 提供直观的交互反馈\n")
		sb.WriteString("- 使用适度的动效增强体验\n")
		sb.WriteString("- 确保操作的一致性\n")
	}

	sb.WriteString("\n## ⚠️ 最终提醒\n\n")
	sb.WriteString("**绝对禁止**：\n")
	sb.WriteString("- 不要创建任何形式的PRD文档展示页面\n")
	sb.WriteString("- 不要展示用户画像卡片或竞品对比表格\n")
	sb.WriteString("- 不要生成文档阅读界面\n\n")

	sb.WriteString("**必须做到**：\n")
	fmt.Fprintf(&sb, "- 构建一个真实的、可操作的%s产品原型\n", b.ProductType)
	sb.WriteString("- 用户可以实际体验核心功能\n")
	sb.WriteString("- 严格按照参考模板的设计系统实施\n")
	sb.WriteString("- 保持高质量的设计标准\n\n")

	scores := make([]string, 0, len(match.Templates))
	for _, template := range match.Templates {
		scores = append(scores, fmt.Sprintf("%d", template.TrustScore))
	}
	sb.WriteString("**参考模板质量保证**：\n")
	fmt.Fprintf(&sb, "- 所选模板评分：%s/10\n", strings.Join(scores, "、"))
	fmt.Fprintf(&sb, "- 匹配置信度：%d%%\n", percent(match.Confidence))
	fmt.Fprintf(&sb, "- 推荐理由：%s\n\n", match.Reason)

	sb.WriteString("现在请基于以上完整的分析、指令和模板参考，构建一个高质量的产品应用原型！\n")
	return sb.String()
}

func percent(confidence float64) int {
	return int(confidence*100 + 0.5)
}

func compactJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// map order is random; the prompt must be byte-stable
	sort.Strings(keys)
	return keys
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
