// Package prd defines the structured product-requirement data collected by
// the wizard UI, plus the markdown document renderer for it. The shapes
// mirror the JSON the wizard exports, so PRD payloads round-trip unchanged.
package prd

// ChangeRecord tracks a single revision of the requirement document.
type ChangeRecord struct {
	Version  string `json:"version"`
	Modifier string `json:"modifier"`
	Content  string `json:"content"`
	Reason   string `json:"reason"`
	Date     string `json:"date"`
}

// UserScenario describes one user type, what they are trying to do, and what
// hurts today.
type UserScenario struct {
	UserType  string `json:"userType"`
	Scenario  string `json:"scenario"`
	PainPoint string `json:"painPoint"`
}

// IterationHistory records a shipped iteration of the feature.
type IterationHistory struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// CompetitorItem captures one competitor from the competitive analysis step.
type CompetitorItem struct {
	Name           string `json:"name"`
	Features       string `json:"features"`
	Advantages     string `json:"advantages"`
	Disadvantages  string `json:"disadvantages"`
	MarketPosition string `json:"marketPosition"`
}

// Requirement priorities as entered in the wizard.
const (
	PriorityHigh   = "High"
	PriorityMiddle = "Middle"
	PriorityLow    = "Low"
)

// RequirementItem is a single requirement row from the solution table.
type RequirementItem struct {
	Name             string `json:"name"`
	Features         string `json:"features"`
	BusinessLogic    string `json:"businessLogic"`
	DataRequirements string `json:"dataRequirements"`
	EdgeCases        string `json:"edgeCases"`
	PainPoints       string `json:"painPoints"`
	Modules          string `json:"modules"`
	Priority         string `json:"priority"`
	OpenIssues       string `json:"openIssues"`
}

// RequirementSolution groups the shared prototype note with the requirement
// list. An empty requirement list is valid input; downstream stages degrade
// to defaults instead of failing.
type RequirementSolution struct {
	SharedPrototype string            `json:"sharedPrototype"`
	Requirements    []RequirementItem `json:"requirements"`
}

// Data is the complete PRD payload produced by the wizard UI.
type Data struct {
	Answers             map[string]string   `json:"answers"`
	ChangeRecords       []ChangeRecord      `json:"changeRecords"`
	UserScenarios       []UserScenario      `json:"userScenarios"`
	IterationHistory    []IterationHistory  `json:"iterationHistory"`
	Competitors         []CompetitorItem    `json:"competitors"`
	RequirementSolution RequirementSolution `json:"requirementSolution"`
}

// Answer returns the wizard answer for id, or the empty string.
func (d *Data) Answer(id string) string {
	if d.Answers == nil {
		return ""
	}
	return d.Answers[id]
}
