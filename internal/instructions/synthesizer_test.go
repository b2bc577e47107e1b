package instructions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prdhouse/prdhouse/internal/prd"
)

func taskBoardPRD() *prd.Data {
	return &prd.Data{
		UserScenarios: []prd.UserScenario{
			{UserType: "团队负责人", Scenario: "协作分配和跟踪任务", PainPoint: "任务状态不透明"},
			{UserType: "忙碌的职场人", Scenario: "快速记录待办事项", PainPoint: "记录入口太深"},
		},
		Competitors: []prd.CompetitorItem{
			{Name: "竞品A", Advantages: "界面简洁"},
		},
		RequirementSolution: prd.RequirementSolution{
			SharedPrototype: "一个帮助团队管理任务的看板工具",
			Requirements: []prd.RequirementItem{
				{Name: "任务管理", Features: "任务列表和状态切换"},
				{Name: "创建任务", Features: "表单填写任务信息"},
			},
		},
	}
}

func synthesized() BuildInstructions {
	data := taskBoardPRD()
	productType := Classify(data)
	return Synthesize(data, productType, BestPracticeFor(productType))
}

func TestSynthesizeVision(t *testing.T) {
	b := synthesized()

	assert.Equal(t, "一个帮助团队管理任务的看板工具", b.ProductVision.CoreValue)
	assert.Equal(t, "任务状态不透明，记录入口太深", b.ProductVision.ProblemSolved)
	assert.Equal(t, "团队负责人、忙碌的职场人", b.ProductVision.TargetMarket)
	assert.Contains(t, b.ProductVision.Differentiation, "界面简洁")
}

func TestSynthesizeVisionDefaults(t *testing.T) {
	b := Synthesize(&prd.Data{}, ProductSaaSTool, BestPracticeFor(ProductSaaSTool))

	assert.Equal(t, "提供高效便捷的解决方案", b.ProductVision.CoreValue)
	assert.Equal(t, "效率和便利性问题", b.ProductVision.ProblemSolved)
	assert.Equal(t, "目标用户群体", b.ProductVision.TargetMarket)
	assert.Contains(t, b.ProductVision.Differentiation, "AI技术")
}

func TestSynthesizePersonas(t *testing.T) {
	b := synthesized()
	require.Len(t, b.TargetUsers, 2)

	t.Run("collaboration hint drives the implication", func(t *testing.T) {
		assert.Contains(t, b.TargetUsers[0].DesignImplications, "协作")
	})

	t.Run("busy user gets the efficiency implication", func(t *testing.T) {
		assert.Contains(t, b.TargetUsers[1].DesignImplications, "快速操作路径")
	})

	t.Run("empty scenario fields fall back to defaults", func(t *testing.T) {
		only := Synthesize(&prd.Data{
			UserScenarios: []prd.UserScenario{{}},
		}, ProductSaaSTool, BestPracticeFor(ProductSaaSTool))
		require.Len(t, only.TargetUsers, 1)
		assert.Equal(t, "目标用户", only.TargetUsers[0].UserType)
		assert.Equal(t, "日常使用场景", only.TargetUsers[0].UsageScenario)
		assert.Equal(t, defaultImplication, only.TargetUsers[0].DesignImplications)
	})
}

func TestSynthesizeFeatures(t *testing.T) {
	b := synthesized()
	catalog := BestPracticeFor(ProductSaaSTool)

	t.Run("every requirement becomes a high priority feature", func(t *testing.T) {
		names := make(map[string]FeatureSpec)
		for _, f := range b.KeyFeatures {
			names[f.FeatureName] = f
		}
		require.Contains(t, names, "任务管理")
		require.Contains(t, names, "创建任务")
		assert.Equal(t, FeaturePriorityHigh, names["任务管理"].Priority)
	})

	t.Run("component rules contribute matching ui components", func(t *testing.T) {
		var manage FeatureSpec
		for _, f := range b.KeyFeatures {
			if f.FeatureName == "任务管理" {
				manage = f
			}
		}
		assert.Contains(t, manage.UIComponents, "数据表格")
		assert.Contains(t, manage.Interactions, "批量操作")
	})

	t.Run("catalog components are fused into every feature", func(t *testing.T) {
		for _, f := range b.KeyFeatures {
			if f.Priority != FeaturePriorityHigh {
				continue
			}
			for _, component := range catalog.CoreComponents {
				assert.Contains(t, f.UIComponents, component, f.FeatureName)
			}
		}
	})

	t.Run("missing essentials are appended at medium priority", func(t *testing.T) {
		var medium []string
		for _, f := range b.KeyFeatures {
			if f.Priority == FeaturePriorityMedium {
				medium = append(medium, f.FeatureName)
			}
		}
		assert.Contains(t, medium, "用户权限管理")
		assert.Contains(t, medium, "通知系统")
	})

	t.Run("no duplicate components after fusion", func(t *testing.T) {
		for _, f := range b.KeyFeatures {
			seen := make(map[string]bool)
			for _, c := range f.UIComponents {
				assert.False(t, seen[c], "%s duplicated in %s", c, f.FeatureName)
				seen[c] = true
			}
		}
	})
}

func TestSynthesizeUserFlows(t *testing.T) {
	b := synthesized()

	require.NotEmpty(t, b.UserFlows)
	assert.Equal(t, "核心功能使用流程", b.UserFlows[0].FlowName)
	assert.Len(t, b.UserFlows[0].Steps, 5)

	// one flow per scenario with non-empty text, after the core flow
	require.Len(t, b.UserFlows, 3)
	assert.Equal(t, "团队负责人的使用流程", b.UserFlows[1].FlowName)
	assert.Contains(t, b.UserFlows[1].Steps[0], "任务状态不透明")
}

func TestSynthesizeDesignSpecs(t *testing.T) {
	b := synthesized()

	categories := make(map[string][]string)
	for _, spec := range b.DesignSpecs {
		categories[spec.Category] = spec.Requirements
	}

	t.Run("baseline categories always present", func(t *testing.T) {
		assert.Contains(t, categories, "整体视觉风格")
		assert.Contains(t, categories, "响应式设计")
		assert.Contains(t, categories, "无障碍访问")
	})

	t.Run("saas type adds its own category", func(t *testing.T) {
		assert.Contains(t, categories, "SaaS工具特定要求")
	})

	t.Run("team persona adds enterprise requirements", func(t *testing.T) {
		assert.Contains(t, categories, "企业级用户要求")
	})

	t.Run("catalog derived categories", func(t *testing.T) {
		require.Contains(t, categories, "核心组件要求")
		assert.Contains(t, categories["核心组件要求"], "必须实现侧边栏导航组件")
		require.Contains(t, categories, "UX交互模式")
		assert.Contains(t, categories["UX交互模式"], "实现面包屑导航交互模式")
	})
}

func TestToTextRendersAllSections(t *testing.T) {
	text := ToText(synthesized())

	for _, heading := range []string{
		"# 产品构建指令", "## 产品愿景", "## 产品类型", "## 目标用户",
		"## 核心功能", "## 用户流程", "## 设计规格", "## 构建摘要",
	} {
		assert.Contains(t, text, heading)
	}
	assert.Contains(t, text, "任务管理")
	assert.True(t, strings.Contains(text, "这不是一个文档展示页面"))
}

func TestRenderBuildingSummaryLabels(t *testing.T) {
	vision := ProductVision{CoreValue: "v", ProblemSolved: "p", Differentiation: "d"}

	t.Run("mapped type", func(t *testing.T) {
		summary := renderBuildingSummary(vision, ProductEcommerce, nil)
		assert.Contains(t, summary, "电商平台类")
	})

	t.Run("unmapped type uses the generic label", func(t *testing.T) {
		summary := renderBuildingSummary(vision, ProductHealthFitness, nil)
		assert.Contains(t, summary, "应用类")
	})
}
