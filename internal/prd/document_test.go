package prd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullPRD() *Data {
	return &Data{
		Answers: map[string]string{
			"c1_requirement_intro": "团队任务看板",
			"c1_business_line":     "协作工具",
			"c1_product_manager":   "王明",
			"c2_requirement_goal":  "提升任务透明度",
			"c5_related_docs":      "https://docs.example.com/prd",
		},
		ChangeRecords: []ChangeRecord{
			{Version: "1.1", Modifier: "王明", Date: "2025-03-01", Reason: "补充竞品"},
		},
		UserScenarios: []UserScenario{
			{UserType: "团队负责人", Scenario: "分配并跟踪任务", PainPoint: "状态不透明"},
		},
		Competitors: []CompetitorItem{
			{Name: "竞品A", Features: "看板", Advantages: "简洁", Disadvantages: "缺少报表", MarketPosition: "领先"},
		},
		IterationHistory: []IterationHistory{
			{Version: "0.9", Date: "2025-01-15", Content: "内测版本", Author: "李雷"},
		},
		RequirementSolution: RequirementSolution{
			SharedPrototype: "看板原型",
			Requirements: []RequirementItem{
				{
					Name: "任务管理", Features: "列表与看板", BusinessLogic: "状态流转",
					DataRequirements: "任务表", EdgeCases: "并发编辑", PainPoints: "状态不透明",
					Modules: "看板模块", Priority: PriorityHigh, OpenIssues: "离线同步策略待定",
				},
			},
		},
	}
}

func TestGenerateDocument(t *testing.T) {
	doc := GenerateDocument(fullPRD())

	t.Run("five chapters in order", func(t *testing.T) {
		chapters := []string{
			"## 1. 需求介绍", "## 2. 需求分析", "## 3. 竞品分析",
			"## 4. 需求方案", "## 5. 其余事项",
		}
		last := -1
		for _, chapter := range chapters {
			idx := strings.Index(doc, chapter)
			require.Greater(t, idx, last, chapter)
			last = idx
		}
	})

	t.Run("answers are substituted", func(t *testing.T) {
		assert.Contains(t, doc, "**产品背景和需求概述：** 团队任务看板")
		assert.Contains(t, doc, "**需求目标：** 提升任务透明度")
		assert.Contains(t, doc, "https://docs.example.com/prd")
	})

	t.Run("table rows carry the data", func(t *testing.T) {
		assert.Contains(t, doc, "| 1.1 | 王明 | 2025-03-01 | 补充竞品 |")
		assert.Contains(t, doc, "| 团队负责人 | 分配并跟踪任务 | 状态不透明 |")
		assert.Contains(t, doc, "| 竞品A | 看板 | 简洁 | 缺少报表 | 领先 |")
		assert.Contains(t, doc, "| 0.9 | 李雷 | 2025-01-15 | 内测版本 |")
	})

	t.Run("requirement row includes priority and modules", func(t *testing.T) {
		assert.Contains(t, doc, "| 任务管理 | High | 列表与看板 | 状态流转 | 任务表 | 并发编辑 | 状态不透明 | 看板模块 |")
	})

	t.Run("open issues are aggregated", func(t *testing.T) {
		assert.Contains(t, doc, "**开放问题：** 离线同步策略待定")
	})
}

func TestGenerateDocumentEmpty(t *testing.T) {
	doc := GenerateDocument(&Data{})

	t.Run("placeholders fill every blank field", func(t *testing.T) {
		assert.Contains(t, doc, "**产品背景和需求概述：** 暂未提及")
		assert.Contains(t, doc, "| 暂未提及 | 暂未提及 | 暂未提及 |")
	})

	t.Run("change record table keeps a default row", func(t *testing.T) {
		assert.Contains(t, doc, "| 1.0 | 暂未提及 | 暂未提及 | 暂未提及 |")
	})

	t.Run("open issues default", func(t *testing.T) {
		assert.Contains(t, doc, "**开放问题：** 暂无")
	})

	t.Run("deterministic output", func(t *testing.T) {
		assert.Equal(t, doc, GenerateDocument(&Data{}))
	})
}

func TestAnswer(t *testing.T) {
	data := &Data{Answers: map[string]string{"k": "v"}}
	assert.Equal(t, "v", data.Answer("k"))
	assert.Equal(t, "", data.Answer("missing"))
	assert.Equal(t, "", (&Data{}).Answer("k"))
}
