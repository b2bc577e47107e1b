package templates

import "sort"

// Library is the built-in reference template catalog, derived from analyzed
// production sites and screenshots. Read-only for the process lifetime.
var Library = []ReferenceTemplate{
	{
		ID:           "neura-ai-landing",
		Name:         "Neura AI 落地页",
		Description:  "现代AI产品落地页，基于neura.framer.ai分析",
		LayoutType:   LayoutTopNavigation,
		ProductType:  "saas-tools",
		IndustryType: "ai-tech",
		DesignSystem: DesignSystem{
			ColorPalette: ColorPalette{
				Primary:    "#007AFF",
				Secondary:  "#FF6B6B",
				Background: "#FFFFFF",
				Surface:    "#F8F9FA",
				Text:       TextColors{Primary: "#1C1C1E", Secondary: "#8E8E93", Inverse: "#FFFFFF"},
				Accent:     "#34C759",
				Border:     "#E5E5E7",
			},
			Typography: Typography{
				FontFamily: FontFamily{Primary: "SF Pro Display, -apple-system, BlinkMacSystemFont, sans-serif"},
				Scale:      TypeScale{H1: "3.5rem", H2: "2.5rem", H3: "1.75rem", Body: "1rem", Small: "0.875rem"},
				Weights:    map[string]int{"regular": 400, "medium": 500, "bold": 700},
			},
			Spacing: Spacing{XS: "0.5rem", SM: "1rem", MD: "1.5rem", LG: "2rem", XL: "3rem", XXL: "4rem"},
			Components: map[string]any{
				"button": map[string]any{
					"primary": map[string]any{
						"background":   "#007AFF",
						"text":         "#FFFFFF",
						"borderRadius": "12px",
						"padding":      "12px 24px",
					},
				},
			},
		},
		LayoutStructure: map[string]any{
			"header": map[string]any{
				"height":         "80px",
				"position":       "fixed",
				"background":     "rgba(255, 255, 255, 0.95)",
				"backdropFilter": "blur(20px)",
			},
			"hero": map[string]any{
				"padding":    "120px 0 80px",
				"background": "linear-gradient(135deg, #F8F9FA 0%, #E3F2FD 100%)",
			},
			"sections": []any{"features", "testimonials", "pricing", "cta"},
		},
		InteractionPatterns: map[string]string{
			"navigation": "smooth-scroll",
			"buttons":    "scale-on-hover",
			"animations": "fade-in-on-scroll",
		},
		TrustScore: 9,
		SourceURL:  "https://neura.framer.ai",
		Tags:       []string{"ai", "landing-page", "modern", "blue-theme"},
	},
	{
		ID:           "adaptify-marketing",
		Name:         "Adaptify 营销站点",
		Description:  "营销导向的产品展示页面，基于adaptify.framer.website分析",
		LayoutType:   LayoutTopNavigation,
		ProductType:  "saas-tools",
		IndustryType: "marketing-tech",
		DesignSystem: DesignSystem{
			ColorPalette: ColorPalette{
				Primary:    "#6366F1",
				Secondary:  "#EC4899",
				Background: "#FFFFFF",
				Surface:    "#F9FAFB",
				Text:       TextColors{Primary: "#111827", Secondary: "#6B7280", Inverse: "#FFFFFF"},
				Accent:     "#10B981",
				Border:     "#E5E7EB",
			},
			Typography: Typography{
				FontFamily: FontFamily{Primary: "Inter, -apple-system, BlinkMacSystemFont, sans-serif"},
				Scale:      TypeScale{H1: "4rem", H2: "3rem", H3: "2rem", Body: "1.125rem", Small: "1rem"},
			},
			Spacing: Spacing{XS: "0.5rem", SM: "1rem", MD: "1.5rem", LG: "2.5rem", XL: "4rem", XXL: "6rem"},
		},
		LayoutStructure: map[string]any{
			"header": map[string]any{"height": "72px", "position": "sticky", "background": "#FFFFFF"},
			"hero": map[string]any{
				"padding":    "100px 0",
				"background": "radial-gradient(ellipse at center, #F3F4F6 0%, #FFFFFF 100%)",
			},
		},
		TrustScore: 8,
		SourceURL:  "https://adaptify.framer.website",
		Tags:       []string{"marketing", "purple-theme", "gradient"},
	},
	{
		ID:           "analytics-dashboard",
		Name:         "数据分析仪表盘",
		Description:  "基于截图分析的现代化数据仪表盘设计",
		LayoutType:   LayoutDashboardGrid,
		ProductType:  "data-analytics",
		IndustryType: "analytics",
		DesignSystem: DesignSystem{
			ColorPalette: ColorPalette{
				Primary:    "#2563EB",
				Secondary:  "#7C3AED",
				Background: "#F8FAFC",
				Surface:    "#FFFFFF",
				Text:       TextColors{Primary: "#1E293B", Secondary: "#64748B", Inverse: "#FFFFFF"},
				Success:    "#10B981",
				Warning:    "#F59E0B",
				Error:      "#EF4444",
				Border:     "#E2E8F0",
			},
			Typography: Typography{
				FontFamily: FontFamily{
					Primary: "system-ui, -apple-system, sans-serif",
					Mono:    "ui-monospace, Menlo, Monaco, monospace",
				},
				Scale: TypeScale{H1: "2rem", H2: "1.5rem", H3: "1.25rem", Body: "0.875rem", Small: "0.75rem"},
			},
			Spacing: Spacing{XS: "0.5rem", SM: "1rem", MD: "1.5rem", LG: "2rem", XL: "2.5rem", XXL: "3rem"},
			Components: map[string]any{
				"card": map[string]any{
					"background":   "#FFFFFF",
					"border":       "1px solid #E2E8F0",
					"borderRadius": "8px",
					"shadow":       "0 1px 3px rgba(0, 0, 0, 0.1)",
					"padding":      "20px",
				},
				"metric": map[string]any{
					"value": map[string]any{"fontSize": "2rem", "fontWeight": "700", "color": "#1E293B"},
				},
			},
		},
		LayoutStructure: map[string]any{
			"sidebar": map[string]any{"width": "256px", "background": "#FFFFFF"},
			"main": map[string]any{
				"padding":      "24px",
				"gridTemplate": "repeat(auto-fit, minmax(320px, 1fr))",
				"gap":          "24px",
			},
			"cards": []any{"metric", "chart", "table", "activity"},
		},
		TrustScore: 9,
		Tags:       []string{"dashboard", "analytics", "grid", "cards", "blue-theme"},
	},
	{
		ID:           "project-management",
		Name:         "项目管理界面",
		Description:  "基于截图分析的项目管理工具界面",
		LayoutType:   LayoutSidebarMain,
		ProductType:  "project-management",
		IndustryType: "productivity",
		DesignSystem: DesignSystem{
			ColorPalette: ColorPalette{
				Primary:    "#5B21B6",
				Secondary:  "#3B82F6",
				Background: "#FAFAFA",
				Surface:    "#FFFFFF",
				Text:       TextColors{Primary: "#1F2937", Secondary: "#6B7280", Inverse: "#FFFFFF"},
				Accent:     "#8B5CF6",
				Border:     "#E5E7EB",
			},
			Typography: Typography{
				FontFamily: FontFamily{Primary: "-apple-system, BlinkMacSystemFont, Segoe UI, sans-serif"},
				Scale:      TypeScale{H1: "1.875rem", H2: "1.5rem", H3: "1.25rem", Body: "0.875rem", Small: "0.75rem"},
			},
			Spacing: Spacing{XS: "0.5rem", SM: "1rem", MD: "1.5rem", LG: "2rem", XL: "3rem", XXL: "4rem"},
		},
		LayoutStructure: map[string]any{
			"sidebar": map[string]any{
				"width":      "280px",
				"background": "#F9FAFB",
				"components": []any{"navigation", "user-profile", "project-switcher"},
			},
			"header": map[string]any{
				"height":     "64px",
				"background": "#FFFFFF",
				"components": []any{"breadcrumb", "search", "actions"},
			},
			"main": map[string]any{"padding": "24px", "background": "#FFFFFF"},
		},
		TrustScore: 8,
		Tags:       []string{"project-management", "sidebar", "purple-theme"},
	},
	{
		ID:           "social-media-feed",
		Name:         "社交媒体信息流",
		Description:  "基于截图分析的社交媒体信息流界面",
		LayoutType:   LayoutTopNavigation,
		ProductType:  "social-media",
		IndustryType: "social-tech",
		DesignSystem: DesignSystem{
			ColorPalette: ColorPalette{
				Primary:    "#1DA1F2",
				Secondary:  "#657786",
				Background: "#FFFFFF",
				Surface:    "#F7F9FA",
				Text:       TextColors{Primary: "#14171A", Secondary: "#657786", Inverse: "#FFFFFF"},
				Accent:     "#E1E8ED",
				Border:     "#E1E8ED",
			},
			Typography: Typography{
				FontFamily: FontFamily{Primary: "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif"},
				Scale:      TypeScale{H1: "1.5rem", H2: "1.25rem", H3: "1rem", Body: "0.9375rem", Small: "0.8125rem"},
			},
			Spacing: Spacing{XS: "0.25rem", SM: "0.5rem", MD: "1rem", LG: "1.5rem", XL: "2rem", XXL: "3rem"},
			Components: map[string]any{
				"post": map[string]any{
					"background": "#FFFFFF",
					"border":     "1px solid #E1E8ED",
					"padding":    "12px 16px",
				},
				"button": map[string]any{
					"primary": map[string]any{
						"background":   "#1DA1F2",
						"text":         "#FFFFFF",
						"borderRadius": "9999px",
						"padding":      "8px 16px",
					},
				},
			},
		},
		LayoutStructure: map[string]any{
			"header":  map[string]any{"height": "56px", "position": "sticky", "background": "#FFFFFF"},
			"layout":  "three-column",
			"sidebar": map[string]any{"width": "275px", "components": []any{"navigation", "trending"}},
			"main":    map[string]any{"width": "600px", "components": []any{"compose", "feed"}},
			"rightPanel": map[string]any{
				"width":      "350px",
				"components": []any{"search", "trends", "suggestions"},
			},
		},
		InteractionPatterns: map[string]string{
			"posts":      "infinite-scroll",
			"buttons":    "subtle-hover",
			"navigation": "instant",
		},
		TrustScore: 9,
		Tags:       []string{"social-media", "feed", "three-column", "blue-theme"},
	},
	{
		ID:           "ecommerce-grid",
		Name:         "电商产品网格",
		Description:  "基于截图分析的电商产品展示网格",
		LayoutType:   LayoutTopNavigation,
		ProductType:  "ecommerce",
		IndustryType: "retail",
		DesignSystem: DesignSystem{
			ColorPalette: ColorPalette{
				Primary:    "#FF6B6B",
				Secondary:  "#4ECDC4",
				Background: "#FFFFFF",
				Surface:    "#F8F9FA",
				Text:       TextColors{Primary: "#2C3E50", Secondary: "#7F8C8D", Inverse: "#FFFFFF"},
				Accent:     "#F39C12",
				Border:     "#E9ECEF",
			},
			Typography: Typography{
				FontFamily: FontFamily{Primary: "'Inter', -apple-system, BlinkMacSystemFont, sans-serif"},
				Scale:      TypeScale{H1: "2.5rem", H2: "2rem", H3: "1.5rem", Body: "1rem", Small: "0.875rem"},
			},
			Spacing: Spacing{XS: "0.5rem", SM: "1rem", MD: "1.5rem", LG: "2rem", XL: "3rem", XXL: "4rem"},
			Components: map[string]any{
				"productCard": map[string]any{
					"background":   "#FFFFFF",
					"border":       "1px solid #E9ECEF",
					"borderRadius": "8px",
					"shadow":       "0 2px 8px rgba(0, 0, 0, 0.1)",
					"padding":      "16px",
				},
			},
		},
		LayoutStructure: map[string]any{
			"header": map[string]any{
				"height":     "80px",
				"background": "#FFFFFF",
				"components": []any{"logo", "search", "navigation", "cart"},
			},
			"layout": "sidebar-main",
			"filters": map[string]any{
				"width":      "280px",
				"background": "#F8F9FA",
				"components": []any{"categories", "price-range", "brand-filter"},
			},
			"main": map[string]any{
				"padding":      "24px",
				"gridTemplate": "repeat(auto-fill, minmax(280px, 1fr))",
				"gap":          "24px",
			},
		},
		InteractionPatterns: map[string]string{
			"cards":   "scale-on-hover",
			"filters": "instant-filter",
			"search":  "autocomplete",
		},
		TrustScore: 8,
		Tags:       []string{"ecommerce", "product-grid", "filters", "coral-theme"},
	},
}

// ByLayoutType returns the catalog entries declaring the given layout type.
func ByLayoutType(layoutType string) []ReferenceTemplate {
	var out []ReferenceTemplate
	for _, t := range Library {
		if t.LayoutType == layoutType {
			out = append(out, t)
		}
	}
	return out
}

// ByProductType returns the catalog entries declaring the given product type.
func ByProductType(productType string) []ReferenceTemplate {
	var out []ReferenceTemplate
	for _, t := range Library {
		if t.ProductType == productType {
			out = append(out, t)
		}
	}
	return out
}

// ByTags returns entries sharing at least one tag with the given set.
func ByTags(tags []string) []ReferenceTemplate {
	want := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		want[tag] = struct{}{}
	}
	var out []ReferenceTemplate
	for _, t := range Library {
		for _, tag := range t.Tags {
			if _, ok := want[tag]; ok {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// HighQuality returns entries with trust score >= minScore, ranked best first.
func HighQuality(minScore int) []ReferenceTemplate {
	var out []ReferenceTemplate
	for _, t := range Library {
		if t.TrustScore >= minScore {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TrustScore > out[j].TrustScore })
	return out
}

// ByID looks up a single entry; ok is false when no entry matches.
func ByID(id string) (ReferenceTemplate, bool) {
	for _, t := range Library {
		if t.ID == id {
			return t, true
		}
	}
	return ReferenceTemplate{}, false
}

// Stats summarizes catalog composition for diagnostics endpoints.
type Stats struct {
	Total        int            `json:"total"`
	LayoutTypes  map[string]int `json:"layoutTypes"`
	ProductTypes map[string]int `json:"productTypes"`
	AverageScore float64        `json:"averageScore"`
}

// LibraryStats computes the catalog summary.
func LibraryStats() Stats {
	stats := Stats{
		Total:        len(Library),
		LayoutTypes:  make(map[string]int),
		ProductTypes: make(map[string]int),
	}
	total := 0
	for _, t := range Library {
		stats.LayoutTypes[t.LayoutType]++
		stats.ProductTypes[t.ProductType]++
		total += t.TrustScore
	}
	if stats.Total > 0 {
		stats.AverageScore = float64(total) / float64(stats.Total)
	}
	return stats
}
