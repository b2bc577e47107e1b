package instructions

import (
	"strings"

	"github.com/prdhouse/prdhouse/internal/prd"
)

// keywordRule ties a keyword list to the weight each hit contributes.
type keywordRule struct {
	keywords []string
	weight   int
}

// Keyword tables per product type. Stronger signal words carry weight 3,
// generic ones 1-2. The tables are read-only for the process lifetime and may
// be shared across concurrent classifications.
var typeKeywords = map[ProductType]keywordRule{
	ProductSaaSTool:         {[]string{"任务", "项目", "管理", "系统", "crm", "erp", "工作流", "workflow"}, 2},
	ProductSocialPlatform:   {[]string{"社交", "聊天", "分享", "社区", "朋友", "关注", "点赞", "评论", "动态"}, 3},
	ProductEcommerce:        {[]string{"购物", "电商", "商城", "支付", "订单", "商品", "购买", "库存", "店铺"}, 3},
	ProductContentPlatform:  {[]string{"内容", "文章", "视频", "媒体", "创作", "发布", "编辑", "博客"}, 2},
	ProductDashboard:        {[]string{"数据", "分析", "报表", "统计", "图表", "监控", "指标", "可视化"}, 3},
	ProductProductivityTool: {[]string{"效率", "工具", "自动化", "优化", "便捷", "快速"}, 1},
	ProductCommunication:    {[]string{"协作", "团队", "会议", "通讯", "消息", "讨论", "共享"}, 2},
	ProductFinance:          {[]string{"金融", "理财", "投资", "记账", "预算", "财务", "银行"}, 3},
	ProductHealthFitness:    {[]string{"健康", "运动", "健身", "医疗", "养生", "锻炼", "体重"}, 3},
	ProductEducation:        {[]string{"学习", "教育", "课程", "培训", "考试", "知识", "教学"}, 3},
}

// Classify scores the PRD's user-visible text against the keyword tables and
// returns the best-matching product type. It is total: any well-formed PRD
// yields a type, and an all-zero score falls back to saas-tool as the safe
// default rather than an arbitrary pick. Ties go to the type declared first.
func Classify(data *prd.Data) ProductType {
	haystack := classifierHaystack(data)

	bestType := ProductSaaSTool
	bestScore := 0
	for _, productType := range productTypeOrder {
		rule, ok := typeKeywords[productType]
		if !ok {
			continue
		}
		score := 0
		for _, keyword := range rule.keywords {
			if strings.Contains(haystack, keyword) {
				score += rule.weight
			}
		}
		// Strictly greater keeps the earliest-declared type on ties.
		if score > bestScore {
			bestScore = score
			bestType = productType
		}
	}
	return bestType
}

// classifierHaystack concatenates the shared prototype note and every
// requirement's name and feature text, lower-cased.
func classifierHaystack(data *prd.Data) string {
	var sb strings.Builder
	sb.WriteString(data.RequirementSolution.SharedPrototype)
	for _, req := range data.RequirementSolution.Requirements {
		sb.WriteString(" ")
		sb.WriteString(req.Name)
		sb.WriteString(" ")
		sb.WriteString(req.Features)
	}
	return strings.ToLower(sb.String())
}
