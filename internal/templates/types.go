// Package templates holds the static reference template library and the
// multi-tier matcher that selects templates for a PRD. The library is a
// versioned data asset: adding or editing entries is a data change and never
// alters the matcher's tier logic.
package templates

// Layout types declared by reference templates.
const (
	LayoutTopNavigation = "top-navigation"
	LayoutSidebarMain   = "sidebar-main"
	LayoutDashboardGrid = "dashboard-grid"
)

// TextColors is the text portion of a color palette.
type TextColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Inverse   string `json:"inverse"`
}

// ColorPalette is a template's color scheme.
type ColorPalette struct {
	Primary    string     `json:"primary"`
	Secondary  string     `json:"secondary"`
	Background string     `json:"background"`
	Surface    string     `json:"surface"`
	Text       TextColors `json:"text"`
	Accent     string     `json:"accent,omitempty"`
	Border     string     `json:"border"`
	Success    string     `json:"success,omitempty"`
	Warning    string     `json:"warning,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// FontFamily names the font stacks a template uses.
type FontFamily struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	Mono      string `json:"mono,omitempty"`
}

// TypeScale is the font-size scale of a template.
type TypeScale struct {
	H1    string `json:"h1"`
	H2    string `json:"h2"`
	H3    string `json:"h3"`
	Body  string `json:"body"`
	Small string `json:"small"`
}

// Typography bundles font families with the type scale.
type Typography struct {
	FontFamily FontFamily     `json:"fontFamily"`
	Scale      TypeScale      `json:"scale"`
	Weights    map[string]int `json:"weights,omitempty"`
}

// Spacing is the spacing scale of a template.
type Spacing struct {
	XS  string `json:"xs"`
	SM  string `json:"sm"`
	MD  string `json:"md"`
	LG  string `json:"lg"`
	XL  string `json:"xl"`
	XXL string `json:"2xl"`
}

// DesignSystem is the design configuration a template carries.
type DesignSystem struct {
	ColorPalette ColorPalette   `json:"colorPalette"`
	Typography   Typography     `json:"typography"`
	Spacing      Spacing        `json:"spacing"`
	Components   map[string]any `json:"components,omitempty"`
}

// ReferenceTemplate is one static catalog entry. Entries are never mutated by
// the pipeline and may be shared across concurrent generations.
type ReferenceTemplate struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	LayoutType          string            `json:"layoutType"`
	ProductType         string            `json:"productType"`
	IndustryType        string            `json:"industryType"`
	DesignSystem        DesignSystem      `json:"designSystem"`
	LayoutStructure     map[string]any    `json:"layoutStructure"`
	InteractionPatterns map[string]string `json:"interactionPatterns,omitempty"`
	TrustScore          int               `json:"trustScore"`
	SourceURL           string            `json:"sourceUrl,omitempty"`
	Tags                []string          `json:"tags"`
}

// Match types, in tier order.
const (
	MatchExact      = "exact"
	MatchFunctional = "functional"
	MatchLayout     = "layout"
	MatchHybrid     = "hybrid"
	MatchFallback   = "fallback"
)

// MatchResult is the outcome of template matching. Templates is never empty:
// exact/functional/layout carry exactly one entry, hybrid at least two, and
// fallback at least one generic high-quality entry.
type MatchResult struct {
	MatchType        string              `json:"matchType"`
	Templates        []ReferenceTemplate `json:"templates"`
	Confidence       float64             `json:"confidence"`
	Reason           string              `json:"reason"`
	FallbackStrategy string              `json:"fallbackStrategy,omitempty"`
}
