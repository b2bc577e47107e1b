package instructions

import (
	"fmt"
	"strings"

	"github.com/prdhouse/prdhouse/internal/prd"
)

// implicationRule maps scenario/user-type wording to a design implication.
// The list is priority-ordered and evaluated first-match-wins.
type implicationRule struct {
	userTypeHints []string
	scenarioHints []string
	implication   string
}

var implicationRules = []implicationRule{
	{
		userTypeHints: []string{"忙碌"},
		scenarioHints: []string{"快速"},
		implication:   "需要简洁高效的界面，快速操作路径，减少认知负担",
	},
	{
		userTypeHints: []string{"团队"},
		scenarioHints: []string{"协作"},
		implication:   "需要协作功能强调，实时状态展示，多人交互设计",
	},
	{
		userTypeHints: []string{"新手"},
		scenarioHints: []string{"学习"},
		implication:   "需要清晰的引导流程，帮助文档，渐进式功能披露",
	},
}

const defaultImplication = "需要直观易用的界面，符合用户直觉的交互设计"

// componentRule accumulates UI components and interactions when the
// requirement's name or feature text contains any of its hints. Unlike the
// implication rules, every matching rule contributes.
type componentRule struct {
	nameHints    []string
	featureHints []string
	components   []string
	interactions []string
}

var componentRules = []componentRule{
	{
		nameHints:    []string{"管理"},
		featureHints: []string{"列表"},
		components:   []string{"数据表格", "搜索框", "筛选器", "操作按钮"},
		interactions: []string{"排序", "筛选", "批量操作", "详情查看"},
	},
	{
		nameHints:    []string{"创建", "添加"},
		featureHints: []string{"表单"},
		components:   []string{"表单组件", "输入框", "下拉选择", "提交按钮"},
		interactions: []string{"表单验证", "自动保存", "提交反馈"},
	},
	{
		nameHints:    []string{"分析", "统计"},
		featureHints: []string{"数据"},
		components:   []string{"图表组件", "仪表盘", "数据卡片", "筛选控件"},
		interactions: []string{"数据钻取", "时间范围选择", "图表交互"},
	},
	{
		nameHints:    []string{"协作", "分享"},
		featureHints: nil,
		components:   []string{"用户头像", "权限设置", "共享链接", "评论区域"},
		interactions: []string{"权限管理", "实时协作", "消息通知"},
	},
}

var (
	fallbackComponents   = []string{"卡片组件", "按钮", "图标"}
	fallbackInteractions = []string{"点击操作", "状态切换"}
)

// Synthesize combines PRD content, the classified product type and the
// matching best-practice entry into a complete BuildInstructions document.
// Pure function: no I/O, deterministic for identical input.
func Synthesize(data *prd.Data, productType ProductType, catalog BestPracticeTemplate) BuildInstructions {
	vision := extractVision(data)
	personas := derivePersonas(data.UserScenarios)
	features := fuseBestPractices(deriveFeatureSpecs(data.RequirementSolution), catalog)
	flows := generateUserFlows(data.UserScenarios)
	specs := generateDesignSpecs(productType, personas, catalog)
	summary := renderBuildingSummary(vision, productType, features)

	return BuildInstructions{
		ProductVision:   vision,
		ProductType:     productType,
		TargetUsers:     personas,
		KeyFeatures:     features,
		UserFlows:       flows,
		DesignSpecs:     specs,
		BuildingSummary: summary,
	}
}

func extractVision(data *prd.Data) ProductVision {
	painPoints := make([]string, 0, len(data.UserScenarios))
	userTypes := make([]string, 0, len(data.UserScenarios))
	for _, s := range data.UserScenarios {
		if s.PainPoint != "" {
			painPoints = append(painPoints, s.PainPoint)
		}
		if s.UserType != "" {
			userTypes = append(userTypes, s.UserType)
		}
	}

	problemSolved := strings.Join(painPoints, "，")
	if problemSolved == "" {
		problemSolved = "效率和便利性问题"
	}

	targetMarket := strings.Join(userTypes, "、")
	if targetMarket == "" {
		targetMarket = "目标用户群体"
	}

	advantages := make([]string, 0, len(data.Competitors))
	for _, c := range data.Competitors {
		if c.Advantages != "" {
			advantages = append(advantages, c.Advantages)
		}
	}
	differentiation := "通过AI技术和用户体验优化提供更好的解决方案"
	if len(advantages) > 0 {
		differentiation = "融合并超越现有解决方案的优势：" + strings.Join(advantages, "，")
	}

	coreValue := data.RequirementSolution.SharedPrototype
	if strings.TrimSpace(coreValue) == "" {
		coreValue = "提供高效便捷的解决方案"
	}

	return ProductVision{
		CoreValue:       coreValue,
		ProblemSolved:   problemSolved,
		TargetMarket:    targetMarket,
		Differentiation: differentiation,
	}
}

func derivePersonas(scenarios []prd.UserScenario) []UserPersona {
	personas := make([]UserPersona, 0, len(scenarios))
	for _, scenario := range scenarios {
		var painPoints, goals []string
		if scenario.PainPoint != "" {
			painPoints = []string{scenario.PainPoint}
		}
		if scenario.Scenario != "" {
			goals = []string{scenario.Scenario}
		}

		userType := scenario.UserType
		if userType == "" {
			userType = "目标用户"
		}
		usageScenario := scenario.Scenario
		if usageScenario == "" {
			usageScenario = "日常使用场景"
		}

		personas = append(personas, UserPersona{
			UserType:           userType,
			UsageScenario:      usageScenario,
			PainPoints:         painPoints,
			Goals:              goals,
			DesignImplications: inferDesignImplication(scenario),
		})
	}
	return personas
}

// inferDesignImplication walks the priority-ordered rule list; the first rule
// whose user-type or scenario hint matches wins.
func inferDesignImplication(scenario prd.UserScenario) string {
	for _, rule := range implicationRules {
		if containsAny(scenario.UserType, rule.userTypeHints) || containsAny(scenario.Scenario, rule.scenarioHints) {
			return rule.implication
		}
	}
	return defaultImplication
}

func deriveFeatureSpecs(solution prd.RequirementSolution) []FeatureSpec {
	specs := make([]FeatureSpec, 0, len(solution.Requirements))
	for _, req := range solution.Requirements {
		var components, interactions []string
		for _, rule := range componentRules {
			if containsAny(req.Name, rule.nameHints) || containsAny(req.Features, rule.featureHints) {
				components = append(components, rule.components...)
				interactions = append(interactions, rule.interactions...)
			}
		}
		if len(components) == 0 {
			components = append(components, fallbackComponents...)
			interactions = append(interactions, fallbackInteractions...)
		}
		components = dedupe(components)
		interactions = dedupe(interactions)

		specs = append(specs, FeatureSpec{
			FeatureName:  req.Name,
			Priority:     FeaturePriorityHigh,
			UIComponents: components,
			Interactions: interactions,
			UserFlow:     fmt.Sprintf("用户通过%s来完成%s功能", strings.Join(components, "、"), req.Name),
		})
	}
	return specs
}

// fuseBestPractices unions the catalog's core components and UX patterns into
// every derived spec, then appends a medium-priority spec for each essential
// catalog feature the PRD does not already cover. Fusion only adds features,
// never removes them.
func fuseBestPractices(features []FeatureSpec, catalog BestPracticeTemplate) []FeatureSpec {
	fused := make([]FeatureSpec, 0, len(features)+len(catalog.EssentialFeatures))
	for _, feature := range features {
		feature.UIComponents = dedupe(append(append([]string{}, feature.UIComponents...), catalog.CoreComponents...))
		feature.Interactions = dedupe(append(append([]string{}, feature.Interactions...), catalog.UXPatterns...))
		fused = append(fused, feature)
	}

	for _, essential := range catalog.EssentialFeatures {
		if hasFeatureNamed(features, essential) {
			continue
		}
		fused = append(fused, FeatureSpec{
			FeatureName:  essential,
			Priority:     FeaturePriorityMedium,
			UIComponents: prefix(catalog.CoreComponents, 3),
			Interactions: prefix(catalog.UXPatterns, 3),
			UserFlow:     fmt.Sprintf("用户通过%s访问%s功能", first(catalog.CoreComponents), essential),
		})
	}
	return fused
}

// hasFeatureNamed reports whether any existing feature name contains the
// candidate or vice versa, case-insensitively.
func hasFeatureNamed(features []FeatureSpec, name string) bool {
	lowered := strings.ToLower(name)
	for _, feature := range features {
		existing := strings.ToLower(feature.FeatureName)
		if existing == "" {
			continue
		}
		if strings.Contains(existing, lowered) || strings.Contains(lowered, existing) {
			return true
		}
	}
	return false
}

func generateUserFlows(scenarios []prd.UserScenario) []UserFlow {
	flows := []UserFlow{{
		FlowName: "核心功能使用流程",
		Steps: []string{
			"用户登录或注册",
			"浏览主界面，了解功能布局",
			"使用主要功能完成任务",
			"查看结果或保存工作",
			"需要时进行设置或配置",
		},
		PageNeeds: []string{
			"登录注册页面",
			"主界面/仪表盘",
			"功能操作页面",
			"结果展示页面",
			"设置配置页面",
		},
	}}

	for _, scenario := range scenarios {
		if scenario.Scenario == "" {
			continue
		}
		flows = append(flows, UserFlow{
			FlowName: fmt.Sprintf("%s的使用流程", scenario.UserType),
			Steps: []string{
				fmt.Sprintf("%s面临%s", scenario.UserType, scenario.PainPoint),
				"打开应用寻找解决方案",
				"使用相应功能解决问题",
				"查看处理结果",
				"完成任务或继续其他操作",
			},
			PageNeeds: []string{
				"问题识别界面",
				"功能导航界面",
				"操作执行界面",
				"结果反馈界面",
			},
		})
	}
	return flows
}

func generateDesignSpecs(productType ProductType, personas []UserPersona, catalog BestPracticeTemplate) []DesignSpec {
	specs := []DesignSpec{
		{
			Category: "整体视觉风格",
			Requirements: []string{
				"现代简洁的设计语言",
				"一致的颜色系统和字体层级",
				"支持明暗两种主题模式",
				"品牌色彩的合理运用",
			},
		},
		{
			Category: "响应式设计",
			Requirements: []string{
				"移动端优先的响应式布局",
				"适配桌面、平板、手机三种设备",
				"触控友好的交互设计",
				"合理的信息密度控制",
			},
		},
		{
			Category: "无障碍访问",
			Requirements: []string{
				"所有交互元素可键盘访问",
				"适当的颜色对比度",
				"语义化的HTML结构",
				"屏幕阅读器支持",
			},
		},
	}

	switch productType {
	case ProductSaaSTool:
		specs = append(specs, DesignSpec{
			Category:     "SaaS工具特定要求",
			Requirements: []string{"清晰的导航结构", "高效的数据展示", "快速的操作反馈", "专业的商务风格"},
		})
	case ProductSocialPlatform:
		specs = append(specs, DesignSpec{
			Category:     "社交平台特定要求",
			Requirements: []string{"友好的社交元素设计", "内容流的优雅展示", "互动功能的突出设计", "个性化的用户体验"},
		})
	case ProductEcommerce:
		specs = append(specs, DesignSpec{
			Category:     "电商平台特定要求",
			Requirements: []string{"商品展示的视觉吸引力", "清晰的购买流程设计", "信任感的建立", "转化导向的界面设计"},
		})
	}

	if hasBusinessPersona(personas) {
		specs = append(specs, DesignSpec{
			Category:     "企业级用户要求",
			Requirements: []string{"专业可信的视觉设计", "数据安全的视觉暗示", "高效的批量操作设计", "权限控制的清晰展示"},
		})
	}

	specs = append(specs,
		DesignSpec{Category: "技术实现要求", Requirements: catalog.TechnicalRequirements},
		DesignSpec{Category: "核心组件要求", Requirements: mapEach(catalog.CoreComponents, "必须实现%s组件")},
		DesignSpec{Category: "UX交互模式", Requirements: mapEach(catalog.UXPatterns, "实现%s交互模式")},
	)
	return specs
}

func hasBusinessPersona(personas []UserPersona) bool {
	for _, p := range personas {
		if strings.Contains(p.UserType, "企业") || strings.Contains(p.UserType, "商务") || strings.Contains(p.UserType, "团队") {
			return true
		}
	}
	return false
}

func containsAny(text string, hints []string) bool {
	if text == "" {
		return false
	}
	for _, hint := range hints {
		if strings.Contains(text, hint) {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func prefix(values []string, n int) []string {
	if len(values) < n {
		n = len(values)
	}
	out := make([]string, n)
	copy(out, values[:n])
	return out
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func mapEach(values []string, format string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprintf(format, v))
	}
	return out
}
