package instructions

import (
	"fmt"
	"strings"
)

// summaryLabels translates the product type into the phrase used by the
// building summary. Types without a dedicated phrase render as the generic
// application label.
var summaryLabels = map[ProductType]string{
	ProductSaaSTool:       "SaaS工具类",
	ProductSocialPlatform: "社交平台类",
	ProductEcommerce:      "电商平台类",
	ProductDashboard:      "数据仪表盘类",
}

func summaryLabel(productType ProductType) string {
	if label, ok := summaryLabels[productType]; ok {
		return label
	}
	return "应用类"
}

// renderBuildingSummary produces the one-paragraph construction brief that
// closes the build instructions. Deterministic text template, no clock or
// randomness.
func renderBuildingSummary(vision ProductVision, productType ProductType, features []FeatureSpec) string {
	names := make([]string, 0, len(features))
	for _, f := range features {
		names = append(names, f.FeatureName)
	}

	return strings.TrimSpace(fmt.Sprintf(`
构建一个%s产品原型。

核心价值：%s

主要功能模块：%s

构建重点：
1. 解决用户痛点：%s
2. 体现差异化优势：%s
3. 提供完整的用户交互体验
4. 确保界面专业且易用

这不是一个文档展示页面，而是一个真正的产品应用原型，用户可以通过它体验产品的核心功能和价值。
`, summaryLabel(productType), vision.CoreValue, strings.Join(names, "、"),
		vision.ProblemSolved, vision.Differentiation))
}

// ToText renders the full build instructions as a readable markdown document
// for embedding into the generation prompt.
func ToText(b BuildInstructions) string {
	var sb strings.Builder

	sb.WriteString("# 产品构建指令\n\n")
	sb.WriteString("## 产品愿景\n")
	fmt.Fprintf(&sb, "- 核心价值：%s\n", b.ProductVision.CoreValue)
	fmt.Fprintf(&sb, "- 解决问题：%s\n", b.ProductVision.ProblemSolved)
	fmt.Fprintf(&sb, "- 目标市场：%s\n", b.ProductVision.TargetMarket)
	fmt.Fprintf(&sb, "- 差异化优势：%s\n\n", b.ProductVision.Differentiation)

	fmt.Fprintf(&sb, "## 产品类型\n%s\n\n", b.ProductType)

	sb.WriteString("## 目标用户\n")
	for _, user := range b.TargetUsers {
		fmt.Fprintf(&sb, "\n### %s\n", user.UserType)
		fmt.Fprintf(&sb, "- 使用场景：%s\n", user.UsageScenario)
		fmt.Fprintf(&sb, "- 主要痛点：%s\n", strings.Join(user.PainPoints, "、"))
		fmt.Fprintf(&sb, "- 目标：%s\n", strings.Join(user.Goals, "、"))
		fmt.Fprintf(&sb, "- 设计启示：%s\n", user.DesignImplications)
	}

	sb.WriteString("\n## 核心功能\n")
	for _, feature := range b.KeyFeatures {
		fmt.Fprintf(&sb, "\n### %s (%s优先级)\n", feature.FeatureName, feature.Priority)
		fmt.Fprintf(&sb, "- UI组件：%s\n", strings.Join(feature.UIComponents, "、"))
		fmt.Fprintf(&sb, "- 交互需求：%s\n", strings.Join(feature.Interactions, "、"))
		fmt.Fprintf(&sb, "- 用户流程：%s\n", feature.UserFlow)
	}

	sb.WriteString("\n## 用户流程\n")
	for _, flow := range b.UserFlows {
		fmt.Fprintf(&sb, "\n### %s\n", flow.FlowName)
		sb.WriteString("步骤：\n")
		for i, step := range flow.Steps {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
		}
		fmt.Fprintf(&sb, "页面需求：%s\n", strings.Join(flow.PageNeeds, "、"))
	}

	sb.WriteString("\n## 设计规格\n")
	for _, spec := range b.DesignSpecs {
		fmt.Fprintf(&sb, "\n### %s\n", spec.Category)
		for _, req := range spec.Requirements {
			fmt.Fprintf(&sb, "- %s\n", req)
		}
	}

	fmt.Fprintf(&sb, "\n## 构建摘要\n%s", b.BuildingSummary)
	return strings.TrimSpace(sb.String())
}
