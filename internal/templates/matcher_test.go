package templates

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prdhouse/prdhouse/internal/prd"
)

func prdWithRequirements(prototype string, reqs ...prd.RequirementItem) *prd.Data {
	return &prd.Data{
		RequirementSolution: prd.RequirementSolution{
			SharedPrototype: prototype,
			Requirements:    reqs,
		},
	}
}

func genericRequirements(n int) []prd.RequirementItem {
	reqs := make([]prd.RequirementItem, 0, n)
	for i := 0; i < n; i++ {
		reqs = append(reqs, prd.RequirementItem{
			Name:     fmt.Sprintf("模块%d", i+1),
			Features: "基础展示",
		})
	}
	return reqs
}

func TestMatchExactTier(t *testing.T) {
	t.Run("ecommerce keywords select the ecommerce template", func(t *testing.T) {
		data := prdWithRequirements("一个在线商城",
			prd.RequirementItem{Name: "购物车", Features: "商品加入购物车并结算"},
			prd.RequirementItem{Name: "订单管理", Features: "查看订单状态"},
			prd.RequirementItem{Name: "支付", Features: "在线支付"},
		)

		result := Match(data)

		assert.Equal(t, MatchExact, result.MatchType)
		require.Len(t, result.Templates, 1)
		assert.Equal(t, "ecommerce-grid", result.Templates[0].ID)
		assert.GreaterOrEqual(t, result.Confidence, 0.8)
		assert.Contains(t, result.Reason, "ecommerce")
	})

	t.Run("single keyword is not enough", func(t *testing.T) {
		data := prdWithRequirements("记录购物清单的小工具备忘录", genericRequirements(3)...)

		result := Match(data)

		assert.NotEqual(t, MatchExact, result.MatchType)
	})

	t.Run("confidence caps at 0.9", func(t *testing.T) {
		data := prdWithRequirements("电商 购物 商城 商品 交易 订单 支付", genericRequirements(3)...)

		result := Match(data)

		require.Equal(t, MatchExact, result.MatchType)
		assert.InDelta(t, 0.9, result.Confidence, 1e-9)
	})
}

func TestMatchFunctionalTier(t *testing.T) {
	t.Run("tag overlap matches without domain keywords", func(t *testing.T) {
		data := prdWithRequirements("dashboard with analytics cards", genericRequirements(3)...)

		result := Match(data)

		require.Equal(t, MatchFunctional, result.MatchType)
		require.Len(t, result.Templates, 1)
		assert.Equal(t, "analytics-dashboard", result.Templates[0].ID)
		assert.Greater(t, result.Confidence, functionalThreshold)
	})

	t.Run("weak overlap falls through", func(t *testing.T) {
		data := prdWithRequirements("simple notes for daily memo", genericRequirements(3)...)

		result := Match(data)

		assert.NotEqual(t, MatchFunctional, result.MatchType)
	})
}

func TestMatchLayoutTier(t *testing.T) {
	t.Run("visualization heavy product gets the dashboard grid", func(t *testing.T) {
		reqs := append(genericRequirements(6),
			prd.RequirementItem{Name: "数据概览", Features: "图表展示核心指标"})
		data := prdWithRequirements("内部运营平台", reqs...)

		result := Match(data)

		require.Equal(t, MatchLayout, result.MatchType)
		require.Len(t, result.Templates, 1)
		assert.Equal(t, LayoutDashboardGrid, result.Templates[0].LayoutType)
		assert.InDelta(t, 0.9, result.Confidence, 1e-9)
	})

	t.Run("simple product gets top navigation", func(t *testing.T) {
		data := prdWithRequirements("一个展示页面", genericRequirements(3)...)

		result := Match(data)

		require.Equal(t, MatchLayout, result.MatchType)
		require.Len(t, result.Templates, 1)
		assert.Equal(t, LayoutTopNavigation, result.Templates[0].LayoutType)
		// the highest trust top-navigation entry wins
		assert.Equal(t, "neura-ai-landing", result.Templates[0].ID)
	})

	t.Run("empty requirement list still matches", func(t *testing.T) {
		result := Match(&prd.Data{})

		assert.NotEmpty(t, result.Templates)
		assert.NotEmpty(t, result.Reason)
	})
}

func TestMatchHybridTier(t *testing.T) {
	t.Run("medium complexity fuses layout and quality picks", func(t *testing.T) {
		data := prdWithRequirements("内部流程平台", genericRequirements(5)...)

		result := Match(data)

		require.Equal(t, MatchHybrid, result.MatchType)
		assert.GreaterOrEqual(t, len(result.Templates), 2)
		assert.LessOrEqual(t, len(result.Templates), maxHybridSize)
		assert.Equal(t, "multi-template-fusion", result.FallbackStrategy)
		assert.Greater(t, result.Confidence, hybridThreshold)

		for i := 1; i < len(result.Templates); i++ {
			assert.GreaterOrEqual(t, result.Templates[i-1].TrustScore, result.Templates[i].TrustScore)
		}
	})
}

func TestGenericFallback(t *testing.T) {
	result := genericFallback()

	assert.Equal(t, MatchFallback, result.MatchType)
	require.Len(t, result.Templates, 1)
	assert.InDelta(t, fallbackConfidence, result.Confidence, 1e-9)
	assert.Equal(t, "best-practice-template", result.FallbackStrategy)
	assert.Contains(t, result.Reason, "未找到")

	best := result.Templates[0]
	for _, tpl := range Library {
		assert.LessOrEqual(t, tpl.TrustScore, best.TrustScore)
	}
}

func TestAnalyzeLayoutComplexity(t *testing.T) {
	t.Run("management scenarios force sidebar navigation", func(t *testing.T) {
		data := prdWithRequirements("后台", genericRequirements(5)...)
		data.UserScenarios = []prd.UserScenario{{UserType: "运营", Scenario: "管理所有内容条目"}}

		layout := analyzeLayoutComplexity(data)

		assert.Equal(t, LayoutSidebarMain, layout.layoutType)
		assert.InDelta(t, 0.8, layout.confidence, 1e-9)
	})

	t.Run("many requirements imply complex navigation", func(t *testing.T) {
		data := prdWithRequirements("平台", genericRequirements(9)...)

		layout := analyzeLayoutComplexity(data)

		assert.Equal(t, LayoutSidebarMain, layout.layoutType)
	})
}
