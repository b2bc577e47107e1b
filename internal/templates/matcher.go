package templates

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/prdhouse/prdhouse/internal/prd"
)

// Tier thresholds. A tier's result is used only when its confidence clears
// the threshold; otherwise matching falls through to the next tier.
const (
	functionalThreshold = 0.7
	layoutThreshold     = 0.6
	hybridThreshold     = 0.5
	fallbackConfidence  = 0.4

	minExactKeywords = 2
	maxHybridSize    = 3
	highQualityScore = 8
)

// productTypeVocabulary maps catalog product types to the PRD wording that
// signals them. Extended types re-use an existing catalog layout, so a PRD in
// those domains still finds a structurally close template.
var productTypeVocabulary = []struct {
	productType string
	keywords    []string
}{
	{"saas-tools", []string{"工具", "效率", "自动化", "ai", "智能"}},
	{"data-analytics", []string{"数据", "分析", "报表", "仪表盘", "统计"}},
	{"project-management", []string{"项目", "管理", "协作", "任务", "团队"}},
	{"social-media", []string{"社交", "分享", "社区", "评论", "互动"}},
	{"ecommerce", []string{"电商", "购物", "商城", "商品", "交易", "订单", "支付"}},
}

// featurePatterns drive the functional-similarity tier: keyword vocabularies
// mapped to the template that serves the same job, with a per-pattern base
// confidence. Evaluated in declared order for determinism.
var featurePatterns = []struct {
	name       string
	keywords   []string
	templateID string
	base       float64
}{
	{"data-visualization", []string{"图表", "统计", "报表", "可视化", "仪表盘", "数据分析"}, "analytics-dashboard", 0.9},
	{"content-management", []string{"内容", "文章", "发布", "编辑", "管理"}, "project-management", 0.8},
	{"social-interaction", []string{"评论", "点赞", "分享", "关注", "社交", "互动"}, "social-media-feed", 0.9},
	{"ecommerce-shopping", []string{"购买", "购物车", "商品", "支付", "订单"}, "ecommerce-grid", 0.9},
	{"user-dashboard", []string{"个人中心", "用户资料", "设置", "账户"}, "project-management", 0.7},
}

// Match scores the PRD against the template library and returns a ranked
// selection with a confidence and a human-readable justification. It never
// fails and never returns an empty template list: when no tier clears its
// threshold the generic fallback supplies the highest-quality entry.
func Match(data *prd.Data) MatchResult {
	haystack := matcherHaystack(data)

	if result, ok := exactMatch(haystack); ok {
		return result
	}
	if result, ok := functionalMatch(haystack); ok {
		return result
	}
	layout := analyzeLayoutComplexity(data)
	if result, ok := layoutMatch(layout); ok {
		return result
	}
	if result, ok := hybridMatch(layout); ok {
		return result
	}
	return genericFallback()
}

// matcherHaystack joins the shared prototype, requirement text and scenario
// narratives, lower-cased.
func matcherHaystack(data *prd.Data) string {
	parts := []string{data.RequirementSolution.SharedPrototype}
	for _, req := range data.RequirementSolution.Requirements {
		parts = append(parts, req.Name, req.Features)
	}
	for _, s := range data.UserScenarios {
		parts = append(parts, s.Scenario)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// exactMatch fires when the PRD hits at least two keywords of one catalog
// product type and the library carries entries of that type. The first type
// in declaration order that qualifies wins; within the type the highest
// trust-score entry is selected.
func exactMatch(haystack string) (MatchResult, bool) {
	for _, entry := range productTypeVocabulary {
		matched := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(haystack, strings.ToLower(keyword)) {
				matched++
			}
		}
		if matched < minExactKeywords {
			continue
		}
		candidates := ByProductType(entry.productType)
		if len(candidates) == 0 {
			continue
		}
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.TrustScore > best.TrustScore {
				best = c
			}
		}
		confidence := 0.6 + 0.1*float64(matched)
		if confidence > 0.9 {
			confidence = 0.9
		}
		return MatchResult{
			MatchType:  MatchExact,
			Templates:  []ReferenceTemplate{best},
			Confidence: confidence,
			Reason:     fmt.Sprintf("产品类型直接匹配：%s，匹配关键词：%d个，选用评分最高的模板（%d/10）", entry.productType, matched, best.TrustScore),
		}, true
	}
	return MatchResult{}, false
}

// functionalMatch scores feature-pattern vocabularies and, as a second
// signal, fuzzy-matches latin tokens from the PRD against template tag sets.
// The stronger of the two signals wins; the tier fires above 0.7.
func functionalMatch(haystack string) (MatchResult, bool) {
	bestConfidence := 0.0
	var bestTemplate ReferenceTemplate
	var bestReason string

	for _, pattern := range featurePatterns {
		matched := 0
		for _, keyword := range pattern.keywords {
			if strings.Contains(haystack, strings.ToLower(keyword)) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		confidence := float64(matched) / float64(len(pattern.keywords)) * pattern.base
		if confidence <= bestConfidence {
			continue
		}
		if template, ok := ByID(pattern.templateID); ok {
			bestConfidence = confidence
			bestTemplate = template
			bestReason = fmt.Sprintf("功能特征匹配：%s，相似度：%d%%", pattern.name, int(confidence*100+0.5))
		}
	}

	for _, template := range Library {
		overlap := tagOverlap(haystack, template.Tags)
		if overlap < 2 {
			continue
		}
		confidence := 0.5 + 0.1*float64(overlap)
		if confidence > 0.85 {
			confidence = 0.85
		}
		if confidence > bestConfidence {
			bestConfidence = confidence
			bestTemplate = template
			bestReason = fmt.Sprintf("标签重合匹配：%s，共享标签：%d个", template.Name, overlap)
		}
	}

	if bestConfidence <= functionalThreshold {
		return MatchResult{}, false
	}
	return MatchResult{
		MatchType:  MatchFunctional,
		Templates:  []ReferenceTemplate{bestTemplate},
		Confidence: bestConfidence,
		Reason:     bestReason,
	}, true
}

// tagOverlap counts template tags matched by any latin token from the PRD
// text, tolerating minor wording drift via fuzzy subsequence matching.
func tagOverlap(haystack string, tags []string) int {
	tokens := latinTokens(haystack)
	if len(tokens) == 0 {
		return 0
	}
	overlap := 0
	for _, tag := range tags {
		for _, token := range tokens {
			if fuzzy.MatchFold(token, tag) {
				overlap++
				break
			}
		}
	}
	return overlap
}

// latinTokens extracts lower-cased ASCII word tokens of length >= 3.
func latinTokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var tokens []string
	for _, f := range fields {
		if len(f) >= 3 && f == strings.ToLower(f) && isASCII(f) {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// layoutComplexity is the inferred interface complexity of a PRD.
type layoutComplexity struct {
	layoutType string
	reason     string
	confidence float64
}

// analyzeLayoutComplexity infers which layout shape fits the PRD: dense
// dashboards for visualization-heavy products, sidebar navigation for
// feature-rich ones, top navigation for simple displays.
func analyzeLayoutComplexity(data *prd.Data) layoutComplexity {
	requirements := data.RequirementSolution.Requirements
	featureCount := len(requirements)

	hasDataVisualization := false
	for _, req := range requirements {
		text := req.Name + " " + req.Features
		if strings.Contains(text, "数据") || strings.Contains(text, "统计") ||
			strings.Contains(text, "报表") || strings.Contains(text, "图表") {
			hasDataVisualization = true
			break
		}
	}

	hasComplexNavigation := featureCount > 8
	if !hasComplexNavigation {
		for _, s := range data.UserScenarios {
			if strings.Contains(s.Scenario, "管理") || strings.Contains(s.Scenario, "配置") ||
				strings.Contains(s.Scenario, "设置") {
				hasComplexNavigation = true
				break
			}
		}
	}

	switch {
	case hasDataVisualization && featureCount > 6:
		return layoutComplexity{LayoutDashboardGrid, "包含数据可视化和多功能模块，适合仪表盘布局", 0.9}
	case hasComplexNavigation || featureCount > 6:
		return layoutComplexity{LayoutSidebarMain, "功能复杂，需要侧边栏导航来组织内容", 0.8}
	case featureCount <= 4 && !hasDataVisualization:
		return layoutComplexity{LayoutTopNavigation, "功能相对简单，顶部导航即可满足需求", 0.7}
	default:
		return layoutComplexity{LayoutSidebarMain, "中等复杂度产品，使用侧边栏布局", 0.6}
	}
}

// layoutMatch selects the best-scored template of the inferred layout type.
func layoutMatch(layout layoutComplexity) (MatchResult, bool) {
	if layout.confidence <= layoutThreshold {
		return MatchResult{}, false
	}
	candidates := ByLayoutType(layout.layoutType)
	if len(candidates) == 0 {
		return MatchResult{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.TrustScore > best.TrustScore {
			best = c
		}
	}
	return MatchResult{
		MatchType:  MatchLayout,
		Templates:  []ReferenceTemplate{best},
		Confidence: layout.confidence,
		Reason:     fmt.Sprintf("布局类型匹配：%s。%s", layout.layoutType, layout.reason),
	}, true
}

// hybridMatch fuses the layout-matching templates with the top high-quality
// entries. Each candidate carries its own score (the layout confidence, or a
// trust-derived score for quality picks); the result's confidence is their
// average.
func hybridMatch(layout layoutComplexity) (MatchResult, bool) {
	type scored struct {
		template ReferenceTemplate
		score    float64
	}
	var candidates []scored
	seen := make(map[string]struct{})

	for _, t := range ByLayoutType(layout.layoutType) {
		candidates = append(candidates, scored{t, layout.confidence})
		seen[t.ID] = struct{}{}
	}
	quality := HighQuality(highQualityScore)
	for i := 0; i < len(quality) && i < 2; i++ {
		if _, ok := seen[quality[i].ID]; ok {
			continue
		}
		candidates = append(candidates, scored{quality[i], 0.06 * float64(quality[i].TrustScore)})
		seen[quality[i].ID] = struct{}{}
	}

	if len(candidates) > maxHybridSize {
		candidates = candidates[:maxHybridSize]
	}
	if len(candidates) < 2 {
		return MatchResult{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].template.TrustScore > candidates[j].template.TrustScore
	})

	sum := 0.0
	selection := make([]ReferenceTemplate, 0, len(candidates))
	for _, c := range candidates {
		sum += c.score
		selection = append(selection, c.template)
	}
	confidence := sum / float64(len(candidates))
	if confidence <= hybridThreshold {
		return MatchResult{}, false
	}

	return MatchResult{
		MatchType:        MatchHybrid,
		Templates:        selection,
		Confidence:       confidence,
		Reason:           fmt.Sprintf("混合策略：使用%d个模板融合，包含%s布局和高质量模板", len(selection), layout.layoutType),
		FallbackStrategy: "multi-template-fusion",
	}, true
}

// genericFallback selects the single highest-scored catalog entry. The reason
// explicitly states that no domain-specific match was found.
func genericFallback() MatchResult {
	best := Library[0]
	for _, t := range Library[1:] {
		if t.TrustScore > best.TrustScore {
			best = t
		}
	}
	return MatchResult{
		MatchType:        MatchFallback,
		Templates:        []ReferenceTemplate{best},
		Confidence:       fallbackConfidence,
		Reason:           fmt.Sprintf("未找到与产品领域匹配的参考模板，使用最佳实践模板：%s（评分：%d），适用于各类产品的通用布局", best.Name, best.TrustScore),
		FallbackStrategy: "best-practice-template",
	}
}
