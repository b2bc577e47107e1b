package generator

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Validation is the advisory quality report for an extracted document. Issues
// never block delivery; callers surface them alongside the result.
type Validation struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}

// documentVocabulary marks responses that render the PRD as a document page
// instead of building the product it describes.
var documentVocabulary = []string{"prd", "产品需求文档", "竞品分析", "用户画像"}

// ValidateHTML runs the structural and content checks over an extracted
// document. Structure checks are plain substring checks on the raw text, since
// an HTML parser would repair exactly the omissions being checked for. The
// parser is used where it is reliable: locating the Tailwind CDN script and
// auditing image sources.
func ValidateHTML(htmlContent string) Validation {
	var issues []string

	if !strings.Contains(htmlContent, "<!DOCTYPE") {
		issues = append(issues, "缺少DOCTYPE声明")
	}
	if !strings.Contains(htmlContent, "<html") {
		issues = append(issues, "缺少html标签")
	}
	if !strings.Contains(htmlContent, "<head>") || !strings.Contains(htmlContent, "</head>") {
		issues = append(issues, "缺少head标签")
	}
	if !strings.Contains(htmlContent, "<body>") || !strings.Contains(htmlContent, "</body>") {
		issues = append(issues, "缺少body标签")
	}

	issues = append(issues, parsedChecks(htmlContent)...)

	lowered := strings.ToLower(htmlContent)
	for _, term := range documentVocabulary {
		if strings.Contains(lowered, term) {
			issues = append(issues, "⚠️ 警告：生成的HTML可能是文档展示页面而非产品原型")
			break
		}
	}

	hasModernDesign := strings.Contains(htmlContent, "flex") ||
		strings.Contains(htmlContent, "grid") ||
		strings.Contains(htmlContent, "bg-gradient")
	if !hasModernDesign {
		issues = append(issues, "⚠️ 建议：添加更多现代化的设计元素（flex、grid、渐变等）")
	}

	return Validation{Valid: len(issues) == 0, Issues: issues}
}

// parsedChecks inspects script and img elements of the parsed document.
func parsedChecks(htmlContent string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		// unparsable content falls back to the substring CDN check
		if !strings.Contains(htmlContent, "tailwindcss.com") {
			return []string{"缺少Tailwind CSS CDN链接"}
		}
		return nil
	}

	var issues []string

	hasTailwind := false
	doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && strings.Contains(src, "tailwindcss.com") {
			hasTailwind = true
		}
	})
	if !hasTailwind {
		issues = append(issues, "缺少Tailwind CSS CDN链接")
	}

	badImages := 0
	missingAlt := 0
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if strings.HasPrefix(src, "http") && !strings.Contains(src, "picsum.photos") {
			badImages++
		}
		if alt, ok := s.Attr("alt"); !ok || strings.TrimSpace(alt) == "" {
			missingAlt++
		}
	})
	if badImages > 0 {
		issues = append(issues, "⚠️ 警告：存在非Picsum图片源，可能无法加载")
	}
	if missingAlt > 0 {
		issues = append(issues, "⚠️ 建议：为所有图片补充alt文本")
	}

	return issues
}
