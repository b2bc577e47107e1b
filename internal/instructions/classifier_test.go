package instructions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prdhouse/prdhouse/internal/prd"
)

func prdWithText(prototype string, reqs ...prd.RequirementItem) *prd.Data {
	return &prd.Data{
		RequirementSolution: prd.RequirementSolution{
			SharedPrototype: prototype,
			Requirements:    reqs,
		},
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		data *prd.Data
		want ProductType
	}{
		{
			name: "ecommerce keywords outweigh generic tool words",
			data: prdWithText("一个购物商城，支持订单和支付管理"),
			want: ProductEcommerce,
		},
		{
			name: "social wording",
			data: prdWithText("用户可以发布动态、点赞和评论，关注感兴趣的朋友"),
			want: ProductSocialPlatform,
		},
		{
			name: "dashboard wording",
			data: prdWithText("实时数据监控平台",
				prd.RequirementItem{Name: "指标报表", Features: "统计图表和可视化"}),
			want: ProductDashboard,
		},
		{
			name: "education wording",
			data: prdWithText("在线课程学习平台，提供培训和考试"),
			want: ProductEducation,
		},
		{
			name: "empty prd falls back to saas tool",
			data: &prd.Data{},
			want: ProductSaaSTool,
		},
		{
			name: "no keyword hits fall back to saas tool",
			data: prdWithText("一个没有特定领域词汇的产品"),
			want: ProductSaaSTool,
		},
		{
			name: "requirement text participates in scoring",
			data: prdWithText("一个应用",
				prd.RequirementItem{Name: "记账", Features: "预算和财务管理"}),
			want: ProductFinance,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.data))
		})
	}
}

func TestClassifyTieBreak(t *testing.T) {
	// one weight-3 hit each for social and ecommerce; the earlier declared
	// type must win
	data := prdWithText("一个支持聊天和购物的应用")

	first := Classify(data)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(data))
	}
	assert.Equal(t, ProductSocialPlatform, first)
}

func TestBestPracticeFor(t *testing.T) {
	t.Run("known type", func(t *testing.T) {
		entry := BestPracticeFor(ProductEcommerce)
		assert.Equal(t, ProductEcommerce, entry.Type)
		assert.NotEmpty(t, entry.CoreComponents)
		assert.NotEmpty(t, entry.EssentialFeatures)
	})

	t.Run("unmapped type gets the generic entry", func(t *testing.T) {
		entry := BestPracticeFor(ProductType("something-new"))
		assert.Equal(t, ProductOther, entry.Type)
		assert.NotEmpty(t, entry.CoreComponents)
	})
}
