package entity

// PricingModel is the normalized pricing classification of a tool.
type PricingModel string

const (
	PricingFree       PricingModel = "Free"
	PricingFreemium   PricingModel = "Freemium"
	PricingPaid       PricingModel = "Paid"
	PricingEnterprise PricingModel = "Enterprise"
	PricingUnknown    PricingModel = "Unknown"
)

// TrendStatus classifies market momentum of a tool.
type TrendStatus string

const (
	TrendRising    TrendStatus = "Rising"
	TrendStable    TrendStatus = "Stable"
	TrendDeclining TrendStatus = "Declining"
	TrendHot       TrendStatus = "Hot"
	TrendEmerging  TrendStatus = "Emerging"
)

// ToolRecord is the structured profile of a developer tool produced by the
// research pipeline. Tri-state booleans use nil for "unclear from sources".
type ToolRecord struct {
	Name                    string       `json:"name"`
	Description             string       `json:"description"`
	Website                 string       `json:"website"`
	PricingModel            PricingModel `json:"pricing_model"`
	IsOpenSource            *bool        `json:"is_open_source"`
	APIAvailable            *bool        `json:"api_available"`
	TechStack               []string     `json:"tech_stack"`
	LanguageSupport         []string     `json:"language_support"`
	IntegrationCapabilities []string     `json:"integration_capabilities"`
	TrendStatus             TrendStatus  `json:"trend_status,omitempty"`
	PopularityScore         int          `json:"popularity_score,omitempty"`
	CommunityActivity       string       `json:"community_activity,omitempty"`
	RecentUpdates           string       `json:"recent_updates,omitempty"`
	MarketPosition          string       `json:"market_position,omitempty"`
}

// SearchResult is one hit returned by the search/scrape service.
type SearchResult struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}

// ResearchState accumulates the output of each pipeline stage. A state is
// owned by exactly one pipeline run.
type ResearchState struct {
	Query          string            `json:"query"`
	ExtractedTools []string          `json:"extracted_tools"`
	Tools          []ToolRecord      `json:"tools"`
	SearchResults  []SearchResult    `json:"search_results,omitempty"`
	Analysis       string            `json:"analysis,omitempty"`
	Report         string            `json:"report,omitempty"`
	Matrix         *ComparisonMatrix `json:"comparison_matrix,omitempty"`
}
