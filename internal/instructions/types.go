// Package instructions turns structured PRD data into a normalized build
// instruction document: it classifies the product type, derives design-ready
// personas and feature specs, fuses in per-type best practices, and renders
// the result as prompt-ready text.
package instructions

// ProductType is the closed classification of the product described by a PRD.
type ProductType string

const (
	ProductSaaSTool         ProductType = "saas-tool"
	ProductSocialPlatform   ProductType = "social-platform"
	ProductEcommerce        ProductType = "ecommerce"
	ProductContentPlatform  ProductType = "content-platform"
	ProductDashboard        ProductType = "dashboard"
	ProductProductivityTool ProductType = "productivity-tool"
	ProductCommunication    ProductType = "communication"
	ProductFinance          ProductType = "finance"
	ProductHealthFitness    ProductType = "health-fitness"
	ProductEducation        ProductType = "education"
	ProductOther            ProductType = "other"
)

// productTypeOrder is the fixed declaration order. Classification ties are
// broken by position here, so the order is part of the contract.
var productTypeOrder = []ProductType{
	ProductSaaSTool,
	ProductSocialPlatform,
	ProductEcommerce,
	ProductContentPlatform,
	ProductDashboard,
	ProductProductivityTool,
	ProductCommunication,
	ProductFinance,
	ProductHealthFitness,
	ProductEducation,
	ProductOther,
}

// ProductTypes returns the enumeration in declaration order.
func ProductTypes() []ProductType {
	out := make([]ProductType, len(productTypeOrder))
	copy(out, productTypeOrder)
	return out
}

// ProductVision is the core value proposition extracted from the PRD.
type ProductVision struct {
	CoreValue       string `json:"coreValue"`
	ProblemSolved   string `json:"problemSolved"`
	TargetMarket    string `json:"targetMarket"`
	Differentiation string `json:"differentiation"`
}

// UserPersona is a design-oriented view of one user scenario.
type UserPersona struct {
	UserType           string   `json:"userType"`
	UsageScenario      string   `json:"usageScenario"`
	PainPoints         []string `json:"painPoints"`
	Goals              []string `json:"goals"`
	DesignImplications string   `json:"designImplications"`
}

// Feature spec priorities. PRD-declared requirements are always high; specs
// injected from the best-practice catalog are medium.
const (
	FeaturePriorityHigh   = "high"
	FeaturePriorityMedium = "medium"
	FeaturePriorityLow    = "low"
)

// FeatureSpec is a UI-implementation-oriented view of one requirement.
type FeatureSpec struct {
	FeatureName  string   `json:"featureName"`
	Priority     string   `json:"priority"`
	UIComponents []string `json:"uiComponents"`
	Interactions []string `json:"interactions"`
	UserFlow     string   `json:"userFlow"`
}

// UserFlow is one core task flow with its page needs.
type UserFlow struct {
	FlowName  string   `json:"flowName"`
	Steps     []string `json:"steps"`
	PageNeeds []string `json:"pageNeeds"`
}

// DesignSpec groups visual/interaction requirements under a named category.
type DesignSpec struct {
	Category     string   `json:"category"`
	Requirements []string `json:"requirements"`
}

// BuildInstructions is the complete construction blueprint handed to prompt
// assembly. It is immutable once produced.
type BuildInstructions struct {
	ProductVision   ProductVision `json:"productVision"`
	ProductType     ProductType   `json:"productType"`
	TargetUsers     []UserPersona `json:"targetUsers"`
	KeyFeatures     []FeatureSpec `json:"keyFeatures"`
	UserFlows       []UserFlow    `json:"userFlows"`
	DesignSpecs     []DesignSpec  `json:"designSpecs"`
	BuildingSummary string        `json:"buildingSummary"`
}

// BestPracticeTemplate is one static catalog entry of expected components,
// features and patterns for a product type.
type BestPracticeTemplate struct {
	Type                  ProductType `json:"type"`
	CoreComponents        []string    `json:"coreComponents"`
	EssentialFeatures     []string    `json:"essentialFeatures"`
	UXPatterns            []string    `json:"uxPatterns"`
	TechnicalRequirements []string    `json:"technicalRequirements"`
}
