package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prdhouse/prdhouse/internal/instructions"
	"github.com/prdhouse/prdhouse/internal/prd"
	"github.com/prdhouse/prdhouse/internal/templates"
)

func sampleInput() Input {
	data := &prd.Data{
		Answers: map[string]string{"c1_requirement_intro": "团队任务看板"},
		RequirementSolution: prd.RequirementSolution{
			SharedPrototype: "帮助团队管理协作任务",
			Requirements: []prd.RequirementItem{
				{Name: "任务管理", Features: "创建和指派任务"},
			},
		},
	}
	productType := instructions.Classify(data)
	built := instructions.Synthesize(data, productType, instructions.BestPracticeFor(productType))
	return Input{
		PRD:          data,
		Instructions: built,
		Match:        templates.Match(data),
	}
}

func TestBuildContainsAllSections(t *testing.T) {
	out, err := Build(sampleInput())
	require.NoError(t, err)

	t.Run("base rules come first", func(t *testing.T) {
		assert.True(t, len(out) > 0)
		assert.Contains(t, out, "cdn.tailwindcss.com")
		assert.Contains(t, out, "picsum.photos")
		assert.Less(t, indexOf(out, "# 角色定义"), indexOf(out, "# PRD数据输入"))
	})

	t.Run("prd payload is embedded as json", func(t *testing.T) {
		assert.Contains(t, out, "```json")
		assert.Contains(t, out, `"sharedPrototype"`)
		assert.Contains(t, out, "帮助团队管理协作任务")
	})

	t.Run("instructions precede match rationale", func(t *testing.T) {
		assert.Less(t, indexOf(out, "产品构建指令分析"), indexOf(out, "参考模板匹配结果"))
	})

	t.Run("closing constraints come last", func(t *testing.T) {
		assert.Contains(t, out, "不要创建任何形式的PRD文档展示页面")
		assert.Greater(t, indexOf(out, "最终提醒"), indexOf(out, "设计实施指南"))
	})
}

func TestBuildUserQuerySection(t *testing.T) {
	in := sampleInput()

	t.Run("present when set", func(t *testing.T) {
		in.UserQuery = "界面整体使用深色主题"
		out, err := Build(in)
		require.NoError(t, err)
		assert.Contains(t, out, "# 用户特殊要求")
		assert.Contains(t, out, "界面整体使用深色主题")
	})

	t.Run("absent when empty", func(t *testing.T) {
		in.UserQuery = ""
		out, err := Build(in)
		require.NoError(t, err)
		assert.NotContains(t, out, "# 用户特殊要求")
	})
}

func TestBuildDeterministic(t *testing.T) {
	in := sampleInput()

	first, err := Build(in)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Build(in)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBuildFusionGuidance(t *testing.T) {
	in := sampleInput()
	in.Match = templates.MatchResult{
		MatchType:        templates.MatchHybrid,
		Templates:        templates.HighQuality(8)[:3],
		Confidence:       0.56,
		Reason:           "混合策略",
		FallbackStrategy: "multi-template-fusion",
	}

	out, err := Build(in)
	require.NoError(t, err)

	assert.Contains(t, out, "融合模板策略")
	assert.Contains(t, out, "融合建议")
	assert.Contains(t, out, "多模板融合策略")
	assert.NotContains(t, out, "间距系统")
}

func indexOf(haystack, needle string) int {
	return strings.Index(haystack, needle)
}
