package entity

// CompanyProfile is the JSON-persisted company record used to answer
// application form questions.
type CompanyProfile struct {
	CompanyName          string             `json:"company_name"`
	Industry             string             `json:"industry"`
	FoundingDate         string             `json:"founding_date"`
	TeamSize             int                `json:"team_size"`
	FundingStage         string             `json:"funding_stage"`
	Revenue              float64            `json:"revenue,omitempty"`
	GrowthRate           float64            `json:"growth_rate,omitempty"`
	TargetMarket         string             `json:"target_market"`
	CompetitiveAdvantage string             `json:"competitive_advantage"`
	UseOfFunds           string             `json:"use_of_funds"`
	Website              string             `json:"website,omitempty"`
	Email                string             `json:"email,omitempty"`
	Phone                string             `json:"phone,omitempty"`
	Address              string             `json:"address,omitempty"`
	Founders             []string           `json:"founders,omitempty"`
	Investors            []string           `json:"investors,omitempty"`
	TractionMetrics      map[string]float64 `json:"traction_metrics,omitempty"`
	Financials           map[string]float64 `json:"financials,omitempty"`
}

// VCFirm is one entry of the VC database.
type VCFirm struct {
	Name                string   `json:"name"`
	Website             string   `json:"website"`
	ApplicationURL      string   `json:"application_url"`
	FocusAreas          []string `json:"focus_areas"`
	InvestmentStages    []string `json:"investment_stages"`
	CheckSize           string   `json:"check_size"`
	ContactEmail        string   `json:"contact_email,omitempty"`
	ContactPhone        string   `json:"contact_phone,omitempty"`
	ApplicationDeadline string   `json:"application_deadline,omitempty"`
	Notes               string   `json:"notes,omitempty"`
}

// FormTemplate maps the fields of a known application form to company
// profile keys.
type FormTemplate struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	URLPattern     string            `json:"url_pattern"`
	FieldMappings  map[string]string `json:"field_mappings"`
	RequiredFields []string          `json:"required_fields"`
	OptionalFields []string          `json:"optional_fields"`
}
